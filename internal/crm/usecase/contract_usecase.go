package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	authDomain "github.com/epicevents/crm/internal/auth/domain"
	authUseCase "github.com/epicevents/crm/internal/auth/usecase"
	"github.com/epicevents/crm/internal/crm/domain"
	"github.com/epicevents/crm/internal/database"
)

// contractUseCase implements the ContractUseCase interface.
type contractUseCase struct {
	guard
	txManager    database.TxManager
	contractRepo ContractRepository
	clientRepo   ClientRepository
}

// Create adds a new contract for an existing client.
func (c *contractUseCase) Create(
	ctx context.Context,
	accessToken string,
	input *domain.CreateContractInput,
) (*domain.Contract, error) {
	if _, err := c.authorize(ctx, accessToken, authDomain.ActionContractCreate, uuid.Nil); err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	// The client must exist before a contract can reference it.
	if _, err := c.clientRepo.Get(ctx, input.ClientID); err != nil {
		return nil, err
	}

	contract := &domain.Contract{
		ID:           uuid.Must(uuid.NewV7()),
		ClientID:     input.ClientID,
		TotalAmount:  input.TotalAmount,
		AmountUnpaid: input.AmountUnpaid,
		Status:       input.Status,
		Active:       true,
		CreatedAt:    time.Now().UTC(),
	}

	err := c.txManager.WithTx(ctx, func(txCtx context.Context) error {
		return c.contractRepo.Create(txCtx, contract)
	})
	if err != nil {
		return nil, err
	}

	return contract, nil
}

// Update overwrites the mutable fields of a contract. Management may update
// any contract; a commercial user only those of clients they own.
func (c *contractUseCase) Update(
	ctx context.Context,
	accessToken string,
	contractID uuid.UUID,
	input *domain.UpdateContractInput,
) (*domain.Contract, error) {
	if _, err := c.authorize(ctx, accessToken, authDomain.ActionContractUpdate, contractID); err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var contract *domain.Contract
	err := c.txManager.WithTx(ctx, func(txCtx context.Context) error {
		var err error
		contract, err = c.contractRepo.Get(txCtx, contractID)
		if err != nil {
			return err
		}

		contract.TotalAmount = input.TotalAmount
		contract.AmountUnpaid = input.AmountUnpaid
		contract.Status = input.Status
		contract.Active = input.Active

		return c.contractRepo.Update(txCtx, contract)
	})
	if err != nil {
		return nil, err
	}

	return contract, nil
}

// Get retrieves a contract. Any authenticated user may read contracts.
func (c *contractUseCase) Get(
	ctx context.Context,
	accessToken string,
	contractID uuid.UUID,
) (*domain.Contract, error) {
	if _, err := c.identify(ctx, accessToken); err != nil {
		return nil, err
	}
	return c.contractRepo.Get(ctx, contractID)
}

// List returns all contracts.
func (c *contractUseCase) List(ctx context.Context, accessToken string) ([]*domain.Contract, error) {
	if _, err := c.identify(ctx, accessToken); err != nil {
		return nil, err
	}
	return c.contractRepo.List(ctx)
}

// ListUnsigned returns contracts still waiting for signature.
func (c *contractUseCase) ListUnsigned(ctx context.Context, accessToken string) ([]*domain.Contract, error) {
	if _, err := c.identify(ctx, accessToken); err != nil {
		return nil, err
	}
	return c.contractRepo.ListUnsigned(ctx)
}

// ListUnpaid returns contracts with an outstanding amount.
func (c *contractUseCase) ListUnpaid(ctx context.Context, accessToken string) ([]*domain.Contract, error) {
	if _, err := c.identify(ctx, accessToken); err != nil {
		return nil, err
	}
	return c.contractRepo.ListUnpaid(ctx)
}

// NewContractUseCase creates a new contract use case instance.
func NewContractUseCase(
	txManager database.TxManager,
	contractRepo ContractRepository,
	clientRepo ClientRepository,
	tokens authUseCase.TokenUseCase,
	authz authUseCase.AuthorizationUseCase,
) ContractUseCase {
	return &contractUseCase{
		guard:        guard{tokens: tokens, authz: authz},
		txManager:    txManager,
		contractRepo: contractRepo,
		clientRepo:   clientRepo,
	}
}
