package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	authDomain "github.com/epicevents/crm/internal/auth/domain"
	authService "github.com/epicevents/crm/internal/auth/service"
	authUseCase "github.com/epicevents/crm/internal/auth/usecase"
	"github.com/epicevents/crm/internal/crm/domain"
	"github.com/epicevents/crm/internal/database"
)

// userUseCase implements the UserUseCase interface.
type userUseCase struct {
	guard
	txManager   database.TxManager
	userRepo    UserRepository
	teamRepo    TeamRepository
	credentials authService.CredentialService
}

// Create adds a new user account with a hashed password.
func (u *userUseCase) Create(
	ctx context.Context,
	accessToken string,
	input *domain.CreateUserInput,
) (*domain.User, error) {
	if _, err := u.authorize(ctx, accessToken, authDomain.ActionUserCreate, uuid.Nil); err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	return u.createUser(ctx, input)
}

// CreateAdmin creates a management user without a token, for bootstrap.
func (u *userUseCase) CreateAdmin(
	ctx context.Context,
	input *domain.CreateUserInput,
) (*domain.User, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	team, err := u.teamRepo.GetByRole(ctx, authDomain.ManagementRole)
	if err != nil {
		return nil, err
	}
	input.TeamID = &team.ID

	return u.createUser(ctx, input)
}

func (u *userUseCase) createUser(
	ctx context.Context,
	input *domain.CreateUserInput,
) (*domain.User, error) {
	hash, err := u.credentials.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:             uuid.Must(uuid.NewV7()),
		EmployeeNumber: input.EmployeeNumber,
		FirstName:      input.FirstName,
		LastName:       input.LastName,
		Email:          strings.ToLower(strings.TrimSpace(input.Email)),
		PasswordHash:   hash,
		Active:         true,
		TeamID:         input.TeamID,
		CreatedAt:      time.Now().UTC(),
	}

	err = u.txManager.WithTx(ctx, func(txCtx context.Context) error {
		return u.userRepo.Create(txCtx, user)
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

// Update overwrites the mutable fields of a user account.
func (u *userUseCase) Update(
	ctx context.Context,
	accessToken string,
	userID uuid.UUID,
	input *domain.UpdateUserInput,
) (*domain.User, error) {
	if _, err := u.authorize(ctx, accessToken, authDomain.ActionUserUpdate, uuid.Nil); err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var user *domain.User
	err := u.txManager.WithTx(ctx, func(txCtx context.Context) error {
		var err error
		user, err = u.userRepo.Get(txCtx, userID)
		if err != nil {
			return err
		}

		user.FirstName = input.FirstName
		user.LastName = input.LastName
		user.Email = strings.ToLower(strings.TrimSpace(input.Email))
		user.Active = input.Active
		user.TeamID = input.TeamID

		return u.userRepo.Update(txCtx, user)
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

// Deactivate soft-deletes a user account. The record is kept so historical
// ownership links stay resolvable.
func (u *userUseCase) Deactivate(ctx context.Context, accessToken string, userID uuid.UUID) error {
	if _, err := u.authorize(ctx, accessToken, authDomain.ActionUserUpdate, uuid.Nil); err != nil {
		return err
	}

	return u.txManager.WithTx(ctx, func(txCtx context.Context) error {
		user, err := u.userRepo.Get(txCtx, userID)
		if err != nil {
			return err
		}
		user.Deactivate()
		return u.userRepo.Update(txCtx, user)
	})
}

// Get retrieves a user account.
func (u *userUseCase) Get(
	ctx context.Context,
	accessToken string,
	userID uuid.UUID,
) (*domain.User, error) {
	if _, err := u.authorize(ctx, accessToken, authDomain.ActionUserRead, uuid.Nil); err != nil {
		return nil, err
	}
	return u.userRepo.Get(ctx, userID)
}

// List returns all user accounts.
func (u *userUseCase) List(ctx context.Context, accessToken string) ([]*domain.User, error) {
	if _, err := u.authorize(ctx, accessToken, authDomain.ActionUserRead, uuid.Nil); err != nil {
		return nil, err
	}
	return u.userRepo.List(ctx)
}

// NewUserUseCase creates a new user use case instance.
func NewUserUseCase(
	txManager database.TxManager,
	userRepo UserRepository,
	teamRepo TeamRepository,
	credentials authService.CredentialService,
	tokens authUseCase.TokenUseCase,
	authz authUseCase.AuthorizationUseCase,
) UserUseCase {
	return &userUseCase{
		guard:       guard{tokens: tokens, authz: authz},
		txManager:   txManager,
		userRepo:    userRepo,
		teamRepo:    teamRepo,
		credentials: credentials,
	}
}
