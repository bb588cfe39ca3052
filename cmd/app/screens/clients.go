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

// ClientsScreen lists, shows, creates and updates clients.
type ClientsScreen struct {
	clients crmUseCase.ClientUseCase
	prompt  *prompter
	out     io.Writer
}

// NewClientsScreen creates the clients screen.
func NewClientsScreen(clients crmUseCase.ClientUseCase, in io.Reader, out io.Writer) *ClientsScreen {
	return &ClientsScreen{
		clients: clients,
		prompt:  newPrompter(in, out),
		out:     out,
	}
}

// Name implements controller.Screen.
func (s *ClientsScreen) Name() string {
	return ScreenClients
}

// Render shows the clients menu and handles one action.
func (s *ClientsScreen) Render(ctx context.Context, accessToken string) (string, *authDomain.TokenPair, error) {
	printTitle(s.out, "Clients")
	printMenu(s.out, []menuAction{
		{key: "l", label: "List clients"},
		{key: "d", label: "Client details"},
		{key: "c", label: "Create client"},
		{key: "u", label: "Update client"},
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
	case "r":
		return controller.ScreenHome, nil, nil
	case "q":
		return controller.ScreenQuit, nil, nil
	}

	if err := reportError(s.out, err); err != nil {
		return "", nil, err
	}
	return ScreenClients, nil, nil
}

func (s *ClientsScreen) list(ctx context.Context, accessToken string) error {
	clients, err := s.clients.List(ctx, accessToken)
	if err != nil {
		return err
	}

	fmt.Fprintln(s.out, headerStyle.Render("Client list"))
	for _, client := range clients {
		fmt.Fprintf(s.out, "%s  %-30s %-30s %s\n",
			client.ID, client.FullName(), client.Email, client.Enterprise)
	}
	return nil
}

func (s *ClientsScreen) details(ctx context.Context, accessToken string) error {
	clientID, err := s.prompt.uuidField("Client ID")
	if err != nil {
		return err
	}

	client, err := s.clients.Get(ctx, accessToken, clientID)
	if err != nil {
		return err
	}

	fmt.Fprintln(s.out, headerStyle.Render("Client details"))
	fmt.Fprintf(s.out, "ID:                 %s\n", client.ID)
	fmt.Fprintf(s.out, "Name:               %s\n", client.FullName())
	fmt.Fprintf(s.out, "Email:              %s\n", client.Email)
	fmt.Fprintf(s.out, "Telephone:          %s\n", client.Telephone)
	fmt.Fprintf(s.out, "Enterprise:         %s\n", client.Enterprise)
	fmt.Fprintf(s.out, "Commercial contact: %s\n", client.CommercialContactID)
	fmt.Fprintf(s.out, "Created:            %s\n", client.CreatedAt.Format(dateFormat))
	return nil
}

func (s *ClientsScreen) create(ctx context.Context, accessToken string) error {
	input := &domain.CreateClientInput{}
	var err error

	if input.LastName, err = s.prompt.line("Client last name"); err != nil {
		return err
	}
	if input.FirstName, err = s.prompt.line("Client first name"); err != nil {
		return err
	}
	if input.Email, err = s.prompt.line("Email"); err != nil {
		return err
	}
	if input.Telephone, err = s.prompt.line("Telephone"); err != nil {
		return err
	}
	if input.Enterprise, err = s.prompt.line("Enterprise"); err != nil {
		return err
	}

	confirmed, err := s.prompt.yesNo("Create the client?")
	if err != nil {
		return err
	}
	if !confirmed {
		return nil
	}

	client, err := s.clients.Create(ctx, accessToken, input)
	if err != nil {
		return err
	}
	printNotice(s.out, fmt.Sprintf("Client %s created.", client.ID))
	return nil
}

func (s *ClientsScreen) update(ctx context.Context, accessToken string) error {
	clientID, err := s.prompt.uuidField("Client ID")
	if err != nil {
		return err
	}

	client, err := s.clients.Get(ctx, accessToken, clientID)
	if err != nil {
		return err
	}

	input := &domain.UpdateClientInput{Active: client.Active}
	if input.LastName, err = s.prompt.lineDefault("Client last name", client.LastName); err != nil {
		return err
	}
	if input.FirstName, err = s.prompt.lineDefault("Client first name", client.FirstName); err != nil {
		return err
	}
	if input.Email, err = s.prompt.lineDefault("Email", client.Email); err != nil {
		return err
	}
	if input.Telephone, err = s.prompt.lineDefault("Telephone", client.Telephone); err != nil {
		return err
	}
	if input.Enterprise, err = s.prompt.lineDefault("Enterprise", client.Enterprise); err != nil {
		return err
	}

	updated, err := s.clients.Update(ctx, accessToken, clientID, input)
	if err != nil {
		return err
	}
	printNotice(s.out, fmt.Sprintf("Client %s updated.", updated.ID))
	return nil
}
