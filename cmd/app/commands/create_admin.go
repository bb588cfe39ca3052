package commands

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/epicevents/crm/internal/crm/domain"
	crmUseCase "github.com/epicevents/crm/internal/crm/usecase"
)

// RunCreateAdmin creates a management user without requiring a session.
// It exists to bootstrap a fresh installation: the first management user
// cannot be created through the application since nobody can log in yet.
// The password is prompted so it never appears in shell history.
//
// Requirements: Database must be migrated and accessible.
func RunCreateAdmin(
	ctx context.Context,
	userUseCase crmUseCase.UserUseCase,
	logger *slog.Logger,
	io IOTuple,
	employeeNumber int,
	firstName string,
	lastName string,
	email string,
) error {
	logger.Info("creating management user", slog.String("email", email))

	password, err := readPassword(io)
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	input := &domain.CreateUserInput{
		EmployeeNumber: employeeNumber,
		FirstName:      firstName,
		LastName:       lastName,
		Email:          email,
		Password:       password,
	}

	user, err := userUseCase.CreateAdmin(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to create management user: %w", err)
	}

	fmt.Fprintf(io.Writer, "Management user %s created (employee number %d).\n",
		user.ID, user.EmployeeNumber)

	logger.Info("management user created",
		slog.String("user_id", user.ID.String()),
		slog.Int("employee_number", user.EmployeeNumber),
	)

	return nil
}

// readPassword prompts for the password, without echo when reading from an
// interactive terminal.
func readPassword(io IOTuple) (string, error) {
	fmt.Fprint(io.Writer, "Password: ")

	if file, ok := io.Reader.(*os.File); ok && term.IsTerminal(int(file.Fd())) {
		passwordBytes, err := term.ReadPassword(int(file.Fd()))
		fmt.Fprintln(io.Writer)
		if err != nil {
			return "", err
		}
		return string(passwordBytes), nil
	}

	text, err := bufio.NewReader(io.Reader).ReadString('\n')
	if err != nil && text == "" {
		return "", err
	}
	return strings.TrimSpace(text), nil
}
