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

// EventsScreen lists, filters, shows, creates and updates events.
type EventsScreen struct {
	events crmUseCase.EventUseCase
	prompt *prompter
	out    io.Writer
}

// NewEventsScreen creates the events screen.
func NewEventsScreen(events crmUseCase.EventUseCase, in io.Reader, out io.Writer) *EventsScreen {
	return &EventsScreen{
		events: events,
		prompt: newPrompter(in, out),
		out:    out,
	}
}

// Name implements controller.Screen.
func (s *EventsScreen) Name() string {
	return ScreenEvents
}

// Render shows the events menu and handles one action.
func (s *EventsScreen) Render(ctx context.Context, accessToken string) (string, *authDomain.TokenPair, error) {
	printTitle(s.out, "Events")
	printMenu(s.out, []menuAction{
		{key: "l", label: "List events"},
		{key: "n", label: "List events without support contact"},
		{key: "m", label: "List my events"},
		{key: "d", label: "Event details"},
		{key: "c", label: "Create event"},
		{key: "u", label: "Update event"},
		{key: "r", label: "Back"},
		{key: "q", label: "Quit"},
	})

	choice, err := s.prompt.line("What is your choice?")
	if err != nil {
		return "", nil, err
	}

	switch choice {
	case "l":
		err = s.list(ctx, accessToken, "Event list", s.events.List)
	case "n":
		err = s.list(ctx, accessToken, "Events without support contact", s.events.ListUnassigned)
	case "m":
		err = s.list(ctx, accessToken, "My events", s.events.ListMine)
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
	return ScreenEvents, nil, nil
}

func (s *EventsScreen) list(
	ctx context.Context,
	accessToken string,
	title string,
	fetch func(ctx context.Context, accessToken string) ([]*domain.Event, error),
) error {
	events, err := fetch(ctx, accessToken)
	if err != nil {
		return err
	}

	fmt.Fprintln(s.out, headerStyle.Render(title))
	for _, event := range events {
		support := "unassigned"
		if event.SupportContactID != nil {
			support = event.SupportContactID.String()
		}
		fmt.Fprintf(s.out, "%s  %-30s %s  %s\n",
			event.ID, event.Title, event.StartDate.Format(dateFormat), support)
	}
	return nil
}

func (s *EventsScreen) details(ctx context.Context, accessToken string) error {
	eventID, err := s.prompt.uuidField("Event ID")
	if err != nil {
		return err
	}

	event, err := s.events.Get(ctx, accessToken, eventID)
	if err != nil {
		return err
	}

	support := "unassigned"
	if event.SupportContactID != nil {
		support = event.SupportContactID.String()
	}

	fmt.Fprintln(s.out, headerStyle.Render("Event details"))
	fmt.Fprintf(s.out, "ID:              %s\n", event.ID)
	fmt.Fprintf(s.out, "Title:           %s\n", event.Title)
	fmt.Fprintf(s.out, "Contract:        %s\n", event.ContractID)
	fmt.Fprintf(s.out, "Start:           %s\n", event.StartDate.Format(dateFormat))
	fmt.Fprintf(s.out, "End:             %s\n", event.EndDate.Format(dateFormat))
	fmt.Fprintf(s.out, "Support contact: %s\n", support)
	fmt.Fprintf(s.out, "Location:        %s\n", event.Location)
	fmt.Fprintf(s.out, "Attendees:       %d\n", event.Attendees)
	fmt.Fprintf(s.out, "Notes:           %s\n", event.Notes)
	return nil
}

func (s *EventsScreen) create(ctx context.Context, accessToken string) error {
	input := &domain.CreateEventInput{}
	var err error

	if input.Title, err = s.prompt.line("Event title"); err != nil {
		return err
	}
	if input.ContractID, err = s.prompt.uuidField("Contract ID"); err != nil {
		return err
	}
	if input.StartDate, err = s.prompt.dateField("Start date"); err != nil {
		return err
	}
	if input.EndDate, err = s.prompt.dateField("End date"); err != nil {
		return err
	}
	if input.Location, err = s.prompt.line("Location"); err != nil {
		return err
	}
	if input.Attendees, err = s.prompt.intField("Number of attendees"); err != nil {
		return err
	}
	if input.Notes, err = s.prompt.line("Notes"); err != nil {
		return err
	}

	confirmed, err := s.prompt.yesNo("Create the event?")
	if err != nil {
		return err
	}
	if !confirmed {
		return nil
	}

	event, err := s.events.Create(ctx, accessToken, input)
	if err != nil {
		return err
	}
	printNotice(s.out, fmt.Sprintf("Event %s created.", event.ID))
	return nil
}

func (s *EventsScreen) update(ctx context.Context, accessToken string) error {
	eventID, err := s.prompt.uuidField("Event ID")
	if err != nil {
		return err
	}

	event, err := s.events.Get(ctx, accessToken, eventID)
	if err != nil {
		return err
	}

	input := &domain.UpdateEventInput{
		SupportContactID: event.SupportContactID,
		Active:           event.Active,
	}
	if input.Title, err = s.prompt.lineDefault("Event title", event.Title); err != nil {
		return err
	}
	if input.StartDate, err = s.prompt.dateFieldDefault("Start date", event.StartDate); err != nil {
		return err
	}
	if input.EndDate, err = s.prompt.dateFieldDefault("End date", event.EndDate); err != nil {
		return err
	}
	if input.Location, err = s.prompt.lineDefault("Location", event.Location); err != nil {
		return err
	}
	if input.Attendees, err = s.prompt.intFieldDefault("Number of attendees", event.Attendees); err != nil {
		return err
	}
	if input.Notes, err = s.prompt.lineDefault("Notes", event.Notes); err != nil {
		return err
	}

	support, err := s.prompt.optionalUUIDField("Support contact ID")
	if err != nil {
		return err
	}
	if support != nil {
		input.SupportContactID = support
	}

	updated, err := s.events.Update(ctx, accessToken, eventID, input)
	if err != nil {
		return err
	}
	printNotice(s.out, fmt.Sprintf("Event %s updated.", updated.ID))
	return nil
}
