package screens

import (
	"context"
	"errors"
	"fmt"
	"io"

	authDomain "github.com/epicevents/crm/internal/auth/domain"
	authUseCase "github.com/epicevents/crm/internal/auth/usecase"
	"github.com/epicevents/crm/internal/crm/controller"
)

// LoginScreen authenticates the user and hands the freshly minted token
// pair to the controller. Failed attempts stay on the login screen; an
// empty email quits the application.
type LoginScreen struct {
	tokens authUseCase.TokenUseCase
	prompt *prompter
	out    io.Writer
}

// NewLoginScreen creates the login screen.
func NewLoginScreen(tokens authUseCase.TokenUseCase, in io.Reader, out io.Writer) *LoginScreen {
	return &LoginScreen{
		tokens: tokens,
		prompt: newPrompter(in, out),
		out:    out,
	}
}

// Name implements controller.Screen.
func (s *LoginScreen) Name() string {
	return controller.ScreenLogin
}

// Render prompts for credentials and attempts a login.
func (s *LoginScreen) Render(ctx context.Context, _ string) (string, *authDomain.TokenPair, error) {
	printTitle(s.out, "Epic Events CRM")

	email, err := s.prompt.line("Email (leave empty to quit)")
	if err != nil {
		return "", nil, err
	}
	if email == "" {
		return controller.ScreenQuit, nil, nil
	}

	password, err := s.prompt.password("Password")
	if err != nil {
		return "", nil, err
	}

	pair, err := s.tokens.Login(ctx, email, password)
	if err != nil {
		switch {
		case errors.Is(err, authDomain.ErrTooManyAttempts):
			fmt.Fprintln(s.out, errorStyle.Render("Too many attempts, please wait before retrying."))
		case errors.Is(err, authDomain.ErrInvalidCredentials):
			fmt.Fprintln(s.out, errorStyle.Render("Wrong email or password."))
		default:
			return "", nil, err
		}
		return controller.ScreenLogin, nil, nil
	}

	printNotice(s.out, "You are connected.")
	return controller.ScreenHome, pair, nil
}
