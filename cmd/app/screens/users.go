package screens

import (
	"context"
	"fmt"
	"io"

	authDomain "github.com/epicevents/crm/internal/auth/domain"
	"github.com/epicevents/crm/internal/crm/controller"
	"github.com/epicevents/crm/internal/crm/domain"
	crmUseCase "github.com/epicevents/crm/internal/crm/usecase"
)

// UsersScreen is the management-only user administration screen.
type UsersScreen struct {
	users  crmUseCase.UserUseCase
	prompt *prompter
	out    io.Writer
}

// NewUsersScreen creates the user administration screen.
func NewUsersScreen(users crmUseCase.UserUseCase, in io.Reader, out io.Writer) *UsersScreen {
	return &UsersScreen{
		users:  users,
		prompt: newPrompter(in, out),
		out:    out,
	}
}

// Name implements controller.Screen.
func (s *UsersScreen) Name() string {
	return ScreenUsers
}

// Render shows the administration menu and handles one action.
func (s *UsersScreen) Render(ctx context.Context, accessToken string) (string, *authDomain.TokenPair, error) {
	printTitle(s.out, "Administration")
	printMenu(s.out, []menuAction{
		{key: "l", label: "List users"},
		{key: "d", label: "User details"},
		{key: "c", label: "Create user"},
		{key: "u", label: "Update user"},
		{key: "x", label: "Deactivate user"},
		{key: "r", label: "Back"},
		{key: "q", label: "Quit"},
	})

	choice, err := s.prompt.line("What is your choice?")
	if err != nil {
		return "", nil, err
	}

	switch choice {
	case "l":
		err = s.list(ctx, accessToken)
	case "d":
		err = s.details(ctx, accessToken)
	case "c":
		err = s.create(ctx, accessToken)
	case "u":
		err = s.update(ctx, accessToken)
	case "x":
		err = s.deactivate(ctx, accessToken)
	case "r":
		return controller.ScreenHome, nil, nil
	case "q":
		return controller.ScreenQuit, nil, nil
	}

	if err := reportError(s.out, err); err != nil {
		return "", nil, err
	}
	return ScreenUsers, nil, nil
}

func (s *UsersScreen) list(ctx context.Context, accessToken string) error {
	users, err := s.users.List(ctx, accessToken)
	if err != nil {
		return err
	}

	fmt.Fprintln(s.out, headerStyle.Render("User list"))
	for _, user := range users {
		state := "active"
		if !user.Active {
			state = "inactive"
		}
		fmt.Fprintf(s.out, "%s  %6d  %-30s %-30s %s\n",
			user.ID, user.EmployeeNumber, user.FullName(), user.Email, state)
	}
	return nil
}

func (s *UsersScreen) details(ctx context.Context, accessToken string) error {
	userID, err := s.prompt.uuidField("User ID")
	if err != nil {
		return err
	}

	user, err := s.users.Get(ctx, accessToken, userID)
	if err != nil {
		return err
	}

	team := "none"
	if user.TeamID != nil {
		team = user.TeamID.String()
	}

	fmt.Fprintln(s.out, headerStyle.Render("User details"))
	fmt.Fprintf(s.out, "ID:              %s\n", user.ID)
	fmt.Fprintf(s.out, "Employee number: %d\n", user.EmployeeNumber)
	fmt.Fprintf(s.out, "Name:            %s\n", user.FullName())
	fmt.Fprintf(s.out, "Email:           %s\n", user.Email)
	fmt.Fprintf(s.out, "Team:            %s\n", team)
	fmt.Fprintf(s.out, "Active:          %t\n", user.Active)
	return nil
}

func (s *UsersScreen) create(ctx context.Context, accessToken string) error {
	input := &domain.CreateUserInput{}
	var err error

	if input.EmployeeNumber, err = s.prompt.intField("Employee number"); err != nil {
		return err
	}
	if input.LastName, err = s.prompt.line("Last name"); err != nil {
		return err
	}
	if input.FirstName, err = s.prompt.line("First name"); err != nil {
		return err
	}
	if input.Email, err = s.prompt.line("Email"); err != nil {
		return err
	}
	if input.Password, err = s.prompt.password("Password"); err != nil {
		return err
	}
	if input.TeamID, err = s.prompt.optionalUUIDField("Team ID"); err != nil {
		return err
	}

	confirmed, err := s.prompt.yesNo("Create the user?")
	if err != nil {
		return err
	}
	if !confirmed {
		return nil
	}

	user, err := s.users.Create(ctx, accessToken, input)
	if err != nil {
		return err
	}
	printNotice(s.out, fmt.Sprintf("User %s created.", user.ID))
	return nil
}

func (s *UsersScreen) update(ctx context.Context, accessToken string) error {
	userID, err := s.prompt.uuidField("User ID")
	if err != nil {
		return err
	}

	user, err := s.users.Get(ctx, accessToken, userID)
	if err != nil {
		return err
	}

	input := &domain.UpdateUserInput{
		Active: user.Active,
		TeamID: user.TeamID,
	}
	if input.LastName, err = s.prompt.lineDefault("Last name", user.LastName); err != nil {
		return err
	}
	if input.FirstName, err = s.prompt.lineDefault("First name", user.FirstName); err != nil {
		return err
	}
	if input.Email, err = s.prompt.lineDefault("Email", user.Email); err != nil {
		return err
	}

	team, err := s.prompt.optionalUUIDField("Team ID")
	if err != nil {
		return err
	}
	if team != nil {
		input.TeamID = team
	}

	updated, err := s.users.Update(ctx, accessToken, userID, input)
	if err != nil {
		return err
	}
	printNotice(s.out, fmt.Sprintf("User %s updated.", updated.ID))
	return nil
}

func (s *UsersScreen) deactivate(ctx context.Context, accessToken string) error {
	userID, err := s.prompt.uuidField("User ID")
	if err != nil {
		return err
	}

	confirmed, err := s.prompt.yesNo("Deactivate the user?")
	if err != nil {
		return err
	}
	if !confirmed {
		return nil
	}

	if err := s.users.Deactivate(ctx, accessToken, userID); err != nil {
		return err
	}
	printNotice(s.out, fmt.Sprintf("User %s deactivated.", userID))
	return nil
}
