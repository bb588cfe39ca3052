package screens

import (
	"context"
	"io"

	authDomain "github.com/epicevents/crm/internal/auth/domain"
	authUseCase "github.com/epicevents/crm/internal/auth/usecase"
	"github.com/epicevents/crm/internal/crm/controller"
)

// HomeScreen is the main menu. The administration entry is only shown to
// management users.
type HomeScreen struct {
	tokens authUseCase.TokenUseCase
	prompt *prompter
	out    io.Writer
}

// NewHomeScreen creates the home screen.
func NewHomeScreen(tokens authUseCase.TokenUseCase, in io.Reader, out io.Writer) *HomeScreen {
	return &HomeScreen{
		tokens: tokens,
		prompt: newPrompter(in, out),
		out:    out,
	}
}

// Name implements controller.Screen.
func (s *HomeScreen) Name() string {
	return controller.ScreenHome
}

// Render shows the main menu and routes to the selected screen.
func (s *HomeScreen) Render(ctx context.Context, accessToken string) (string, *authDomain.TokenPair, error) {
	principal, err := s.principal(ctx, accessToken)
	if err != nil {
		return "", nil, err
	}

	printTitle(s.out, "Home")

	actions := []menuAction{
		{key: "c", label: "Clients"},
		{key: "o", label: "Contracts"},
		{key: "e", label: "Events"},
	}
	if principal.Role == authDomain.ManagementRole {
		actions = append(actions, menuAction{key: "a", label: "Administration"})
	}
	actions = append(actions,
		menuAction{key: "d", label: "Log out"},
		menuAction{key: "q", label: "Quit"},
	)
	printMenu(s.out, actions)

	choice, err := s.prompt.line("What is your choice?")
	if err != nil {
		return "", nil, err
	}

	switch choice {
	case "c":
		return ScreenClients, nil, nil
	case "o":
		return ScreenContracts, nil, nil
	case "e":
		return ScreenEvents, nil, nil
	case "a":
		if principal.Role == authDomain.ManagementRole {
			return ScreenUsers, nil, nil
		}
	case "d":
		return controller.ScreenLogin, nil, nil
	case "q":
		return controller.ScreenQuit, nil, nil
	}

	return controller.ScreenHome, nil, nil
}

// principal resolves the connected user, collapsing token problems into a
// session expiry so the controller redirects to the login screen.
func (s *HomeScreen) principal(ctx context.Context, accessToken string) (*authDomain.Principal, error) {
	userID, err := s.tokens.IntrospectAccess(ctx, accessToken)
	if err != nil {
		return nil, authDomain.ErrSessionExpired
	}
	principal, err := s.tokens.PrincipalFor(ctx, userID)
	if err != nil {
		return nil, authDomain.ErrSessionExpired
	}
	return principal, nil
}
