package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	authDomain "github.com/epicevents/crm/internal/auth/domain"
	authUseCase "github.com/epicevents/crm/internal/auth/usecase"
	"github.com/epicevents/crm/internal/crm/domain"
	"github.com/epicevents/crm/internal/database"
)

// clientUseCase implements the ClientUseCase interface.
type clientUseCase struct {
	guard
	txManager  database.TxManager
	clientRepo ClientRepository
}

// Create adds a new client owned by the connected commercial user.
func (c *clientUseCase) Create(
	ctx context.Context,
	accessToken string,
	input *domain.CreateClientInput,
) (*domain.Client, error) {
	principal, err := c.authorize(ctx, accessToken, authDomain.ActionClientCreate, uuid.Nil)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	client := &domain.Client{
		ID:                  uuid.Must(uuid.NewV7()),
		FirstName:           input.FirstName,
		LastName:            input.LastName,
		Email:               strings.ToLower(strings.TrimSpace(input.Email)),
		Telephone:           input.Telephone,
		Enterprise:          input.Enterprise,
		CommercialContactID: principal.UserID,
		Active:              true,
		CreatedAt:           time.Now().UTC(),
	}

	err = c.txManager.WithTx(ctx, func(txCtx context.Context) error {
		return c.clientRepo.Create(txCtx, client)
	})
	if err != nil {
		return nil, err
	}

	return client, nil
}

// Update overwrites the mutable fields of a client. Only the owning
// commercial contact passes the authorization check.
func (c *clientUseCase) Update(
	ctx context.Context,
	accessToken string,
	clientID uuid.UUID,
	input *domain.UpdateClientInput,
) (*domain.Client, error) {
	if _, err := c.authorize(ctx, accessToken, authDomain.ActionClientUpdate, clientID); err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var client *domain.Client
	err := c.txManager.WithTx(ctx, func(txCtx context.Context) error {
		var err error
		client, err = c.clientRepo.Get(txCtx, clientID)
		if err != nil {
			return err
		}

		client.FirstName = input.FirstName
		client.LastName = input.LastName
		client.Email = strings.ToLower(strings.TrimSpace(input.Email))
		client.Telephone = input.Telephone
		client.Enterprise = input.Enterprise
		client.Active = input.Active

		return c.clientRepo.Update(txCtx, client)
	})
	if err != nil {
		return nil, err
	}

	return client, nil
}

// Get retrieves a client. Any authenticated user may read clients.
func (c *clientUseCase) Get(
	ctx context.Context,
	accessToken string,
	clientID uuid.UUID,
) (*domain.Client, error) {
	if _, err := c.identify(ctx, accessToken); err != nil {
		return nil, err
	}
	return c.clientRepo.Get(ctx, clientID)
}

// List returns all clients. Any authenticated user may read clients.
func (c *clientUseCase) List(ctx context.Context, accessToken string) ([]*domain.Client, error) {
	if _, err := c.identify(ctx, accessToken); err != nil {
		return nil, err
	}
	return c.clientRepo.List(ctx)
}

// NewClientUseCase creates a new client use case instance.
func NewClientUseCase(
	txManager database.TxManager,
	clientRepo ClientRepository,
	tokens authUseCase.TokenUseCase,
	authz authUseCase.AuthorizationUseCase,
) ClientUseCase {
	return &clientUseCase{
		guard:      guard{tokens: tokens, authz: authz},
		txManager:  txManager,
		clientRepo: clientRepo,
	}
}
