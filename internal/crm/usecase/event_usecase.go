package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	authDomain "github.com/epicevents/crm/internal/auth/domain"
	authUseCase "github.com/epicevents/crm/internal/auth/usecase"
	"github.com/epicevents/crm/internal/crm/domain"
	"github.com/epicevents/crm/internal/database"
	apperrors "github.com/epicevents/crm/internal/errors"
)

// eventUseCase implements the EventUseCase interface.
type eventUseCase struct {
	guard
	txManager    database.TxManager
	eventRepo    EventRepository
	contractRepo ContractRepository
}

// Create adds a new event for a signed contract. A commercial user may only
// create events for contracts of clients they own.
func (e *eventUseCase) Create(
	ctx context.Context,
	accessToken string,
	input *domain.CreateEventInput,
) (*domain.Event, error) {
	principal, err := e.authorize(ctx, accessToken, authDomain.ActionEventCreate, uuid.Nil)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	contract, err := e.contractRepo.Get(ctx, input.ContractID)
	if err != nil {
		return nil, err
	}
	if contract.Status != domain.ContractSigned {
		return nil, apperrors.Wrap(apperrors.ErrInvalidInput, "contract is not signed")
	}
	if !e.authz.OwnsClient(ctx, principal.UserID, contract.ClientID) {
		return nil, apperrors.Wrap(apperrors.ErrForbidden, "client belongs to another commercial contact")
	}

	event := &domain.Event{
		ID:               uuid.Must(uuid.NewV7()),
		Title:            input.Title,
		ContractID:       input.ContractID,
		StartDate:        input.StartDate,
		EndDate:          input.EndDate,
		SupportContactID: input.SupportContactID,
		Location:         input.Location,
		Attendees:        input.Attendees,
		Notes:            input.Notes,
		Active:           true,
		CreatedAt:        time.Now().UTC(),
	}

	err = e.txManager.WithTx(ctx, func(txCtx context.Context) error {
		return e.eventRepo.Create(txCtx, event)
	})
	if err != nil {
		return nil, err
	}

	return event, nil
}

// Update overwrites the mutable fields of an event. Management may update any
// event, support users those they are assigned to, and commercial users those
// reached through a client they own.
func (e *eventUseCase) Update(
	ctx context.Context,
	accessToken string,
	eventID uuid.UUID,
	input *domain.UpdateEventInput,
) (*domain.Event, error) {
	if _, err := e.authorize(ctx, accessToken, authDomain.ActionEventUpdate, eventID); err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var event *domain.Event
	err := e.txManager.WithTx(ctx, func(txCtx context.Context) error {
		var err error
		event, err = e.eventRepo.Get(txCtx, eventID)
		if err != nil {
			return err
		}

		event.Title = input.Title
		event.StartDate = input.StartDate
		event.EndDate = input.EndDate
		event.SupportContactID = input.SupportContactID
		event.Location = input.Location
		event.Attendees = input.Attendees
		event.Notes = input.Notes
		event.Active = input.Active

		return e.eventRepo.Update(txCtx, event)
	})
	if err != nil {
		return nil, err
	}

	return event, nil
}

// Get retrieves an event. Any authenticated user may read events.
func (e *eventUseCase) Get(
	ctx context.Context,
	accessToken string,
	eventID uuid.UUID,
) (*domain.Event, error) {
	if _, err := e.identify(ctx, accessToken); err != nil {
		return nil, err
	}
	return e.eventRepo.Get(ctx, eventID)
}

// List returns all events.
func (e *eventUseCase) List(ctx context.Context, accessToken string) ([]*domain.Event, error) {
	if _, err := e.identify(ctx, accessToken); err != nil {
		return nil, err
	}
	return e.eventRepo.List(ctx)
}

// ListUnassigned returns events with no support contact yet.
func (e *eventUseCase) ListUnassigned(ctx context.Context, accessToken string) ([]*domain.Event, error) {
	if _, err := e.identify(ctx, accessToken); err != nil {
		return nil, err
	}
	return e.eventRepo.ListUnassigned(ctx)
}

// ListMine returns the events assigned to the connected support user.
func (e *eventUseCase) ListMine(ctx context.Context, accessToken string) ([]*domain.Event, error) {
	principal, err := e.identify(ctx, accessToken)
	if err != nil {
		return nil, err
	}
	return e.eventRepo.ListBySupportContact(ctx, principal.UserID)
}

// NewEventUseCase creates a new event use case instance.
func NewEventUseCase(
	txManager database.TxManager,
	eventRepo EventRepository,
	contractRepo ContractRepository,
	tokens authUseCase.TokenUseCase,
	authz authUseCase.AuthorizationUseCase,
) EventUseCase {
	return &eventUseCase{
		guard:        guard{tokens: tokens, authz: authz},
		txManager:    txManager,
		eventRepo:    eventRepo,
		contractRepo: contractRepo,
	}
}
