package usecase

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	authDomain "github.com/epicevents/crm/internal/auth/domain"
	"github.com/epicevents/crm/internal/crm/domain"
	apperrors "github.com/epicevents/crm/internal/errors"
)

const testAccessToken = "access-token"

// grantAccess wires the token mocks so the guard resolves the given principal
// and the authorization engine answers allowed.
func grantAccess(tokens *mockTokenUseCase, authz *mockAuthorizationUseCase, principal *authDomain.Principal, allowed bool) {
	tokens.On("IntrospectAccess", mock.Anything, testAccessToken).Return(principal.UserID, nil)
	tokens.On("PrincipalFor", mock.Anything, principal.UserID).Return(principal, nil)
	authz.On("IsActionAllowed", mock.Anything, mock.Anything, principal.UserID, principal.Role, mock.Anything).
		Return(allowed).Maybe()
}

func managementPrincipal() *authDomain.Principal {
	return &authDomain.Principal{UserID: uuid.Must(uuid.NewV7()), Role: authDomain.ManagementRole}
}

func validCreateUserInput() *domain.CreateUserInput {
	return &domain.CreateUserInput{
		EmployeeNumber: 7,
		FirstName:      "Grace",
		LastName:       "Hopper",
		Email:          "Grace@EpicEvents.com",
		Password:       "Sup3rSecret",
	}
}

func TestUserUseCase_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success hashes the password and persists", func(t *testing.T) {
		tokens := &mockTokenUseCase{}
		authz := &mockAuthorizationUseCase{}
		userRepo := &mockUserRepository{}
		credentials := &mockCredentialService{}
		grantAccess(tokens, authz, managementPrincipal(), true)

		credentials.On("Hash", "Sup3rSecret").Return("argon2id-hash", nil)
		userRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
			return u.PasswordHash == "argon2id-hash" && u.Email == "grace@epicevents.com" && u.Active
		})).Return(nil)

		uc := NewUserUseCase(&fakeTxManager{}, userRepo, &mockTeamRepository{}, credentials, tokens, authz)
		user, err := uc.Create(ctx, testAccessToken, validCreateUserInput())
		require.NoError(t, err)

		assert.Equal(t, "argon2id-hash", user.PasswordHash)
		assert.Equal(t, "grace@epicevents.com", user.Email)
		assert.NotEqual(t, uuid.Nil, user.ID)
		userRepo.AssertExpectations(t)
	})

	t.Run("denied action yields forbidden", func(t *testing.T) {
		tokens := &mockTokenUseCase{}
		authz := &mockAuthorizationUseCase{}
		principal := &authDomain.Principal{UserID: uuid.Must(uuid.NewV7()), Role: authDomain.SupportRole}
		grantAccess(tokens, authz, principal, false)

		uc := NewUserUseCase(&fakeTxManager{}, &mockUserRepository{}, &mockTeamRepository{}, &mockCredentialService{}, tokens, authz)
		user, err := uc.Create(ctx, testAccessToken, validCreateUserInput())

		assert.Nil(t, user)
		assert.ErrorIs(t, err, apperrors.ErrForbidden)
	})

	t.Run("expired token yields session expired", func(t *testing.T) {
		tokens := &mockTokenUseCase{}
		tokens.On("IntrospectAccess", mock.Anything, testAccessToken).
			Return(uuid.Nil, authDomain.ErrInvalidToken)

		uc := NewUserUseCase(&fakeTxManager{}, &mockUserRepository{}, &mockTeamRepository{}, &mockCredentialService{}, tokens, &mockAuthorizationUseCase{})
		user, err := uc.Create(ctx, testAccessToken, validCreateUserInput())

		assert.Nil(t, user)
		assert.ErrorIs(t, err, authDomain.ErrSessionExpired)
	})

	t.Run("weak password is rejected before any write", func(t *testing.T) {
		tokens := &mockTokenUseCase{}
		authz := &mockAuthorizationUseCase{}
		userRepo := &mockUserRepository{}
		grantAccess(tokens, authz, managementPrincipal(), true)

		input := validCreateUserInput()
		input.Password = "short"

		uc := NewUserUseCase(&fakeTxManager{}, userRepo, &mockTeamRepository{}, &mockCredentialService{}, tokens, authz)
		user, err := uc.Create(ctx, testAccessToken, input)

		assert.Nil(t, user)
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
		userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestUserUseCase_CreateAdmin(t *testing.T) {
	ctx := context.Background()

	t.Run("assigns the management team", func(t *testing.T) {
		teamRepo := &mockTeamRepository{}
		userRepo := &mockUserRepository{}
		credentials := &mockCredentialService{}

		teamID := uuid.Must(uuid.NewV7())
		teamRepo.On("GetByRole", mock.Anything, authDomain.ManagementRole).
			Return(&domain.Team{ID: teamID, Name: "Management", Role: authDomain.ManagementRole, Active: true}, nil)
		credentials.On("Hash", mock.Anything).Return("argon2id-hash", nil)
		userRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
			return u.TeamID != nil && *u.TeamID == teamID
		})).Return(nil)

		uc := NewUserUseCase(&fakeTxManager{}, userRepo, teamRepo, credentials, &mockTokenUseCase{}, &mockAuthorizationUseCase{})
		user, err := uc.CreateAdmin(ctx, validCreateUserInput())
		require.NoError(t, err)

		require.NotNil(t, user.TeamID)
		assert.Equal(t, teamID, *user.TeamID)
	})

	t.Run("missing management team", func(t *testing.T) {
		teamRepo := &mockTeamRepository{}
		teamRepo.On("GetByRole", mock.Anything, authDomain.ManagementRole).
			Return(nil, domain.ErrTeamNotFound)

		uc := NewUserUseCase(&fakeTxManager{}, &mockUserRepository{}, teamRepo, &mockCredentialService{}, &mockTokenUseCase{}, &mockAuthorizationUseCase{})
		user, err := uc.CreateAdmin(ctx, validCreateUserInput())

		assert.Nil(t, user)
		assert.ErrorIs(t, err, domain.ErrTeamNotFound)
	})
}

func TestUserUseCase_Deactivate(t *testing.T) {
	ctx := context.Background()

	tokens := &mockTokenUseCase{}
	authz := &mockAuthorizationUseCase{}
	userRepo := &mockUserRepository{}
	grantAccess(tokens, authz, managementPrincipal(), true)

	targetID := uuid.Must(uuid.NewV7())
	userRepo.On("Get", mock.Anything, targetID).
		Return(&domain.User{ID: targetID, Active: true}, nil)
	userRepo.On("Update", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
		return u.ID == targetID && !u.Active
	})).Return(nil)

	uc := NewUserUseCase(&fakeTxManager{}, userRepo, &mockTeamRepository{}, &mockCredentialService{}, tokens, authz)
	require.NoError(t, uc.Deactivate(ctx, testAccessToken, targetID))
	userRepo.AssertExpectations(t)
}

func TestUserUseCase_List(t *testing.T) {
	ctx := context.Background()

	t.Run("management reads all users", func(t *testing.T) {
		tokens := &mockTokenUseCase{}
		authz := &mockAuthorizationUseCase{}
		userRepo := &mockUserRepository{}
		grantAccess(tokens, authz, managementPrincipal(), true)

		userRepo.On("List", mock.Anything).Return([]*domain.User{{FirstName: "Ada"}}, nil)

		uc := NewUserUseCase(&fakeTxManager{}, userRepo, &mockTeamRepository{}, &mockCredentialService{}, tokens, authz)
		users, err := uc.List(ctx, testAccessToken)
		require.NoError(t, err)
		assert.Len(t, users, 1)
	})

	t.Run("non-management is denied", func(t *testing.T) {
		tokens := &mockTokenUseCase{}
		authz := &mockAuthorizationUseCase{}
		principal := &authDomain.Principal{UserID: uuid.Must(uuid.NewV7()), Role: authDomain.CommercialRole}
		grantAccess(tokens, authz, principal, false)

		uc := NewUserUseCase(&fakeTxManager{}, &mockUserRepository{}, &mockTeamRepository{}, &mockCredentialService{}, tokens, authz)
		users, err := uc.List(ctx, testAccessToken)

		assert.Nil(t, users)
		assert.ErrorIs(t, err, apperrors.ErrForbidden)
	})
}
