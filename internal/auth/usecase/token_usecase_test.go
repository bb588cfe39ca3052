package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authDomain "github.com/epicevents/crm/internal/auth/domain"
	authService "github.com/epicevents/crm/internal/auth/service"
	"github.com/epicevents/crm/internal/config"
	crmDomain "github.com/epicevents/crm/internal/crm/domain"
)

func testConfig() *config.Config {
	return &config.Config{
		AuthSecretKey:       "test-secret",
		AuthAccessTokenTTL:  15 * time.Minute,
		AuthRefreshTokenTTL: 24 * time.Hour,
	}
}

func newTestTokenUseCase(
	userRepo UserRepository,
	credentials authService.CredentialService,
	limiter *LoginLimiter,
) (TokenUseCase, authService.TokenCodec) {
	cfg := testConfig()
	codec := authService.NewTokenCodec(cfg.AuthSecretKey)
	return NewTokenUseCase(cfg, userRepo, credentials, codec, limiter), codec
}

func TestTokenUseCase_Login(t *testing.T) {
	ctx := context.Background()
	userID := uuid.Must(uuid.NewV7())
	hashedPassword := "$argon2id$v=19$m=65536,t=3,p=4$test-hash" //nolint:gosec // test fixture, not a real credential

	user := &crmDomain.User{
		ID:           userID,
		Email:        "ada@epicevents.example",
		PasswordHash: hashedPassword,
		Active:       true,
	}

	t.Run("Success_LoginWithValidCredentials", func(t *testing.T) {
		mockUserRepo := &mockUserRepository{}
		mockCredentials := &mockCredentialService{}

		mockUserRepo.On("GetByEmail", ctx, user.Email).Return(user, nil).Once()
		mockCredentials.On("Verify", "Analytic4l", hashedPassword).Return(true).Once()

		uc, codec := newTestTokenUseCase(mockUserRepo, mockCredentials, nil)

		pair, err := uc.Login(ctx, user.Email, "Analytic4l")
		require.NoError(t, err)
		require.NotNil(t, pair)

		// Both members of the pair carry the user's identity and their kind.
		access, err := codec.Decode(pair.Access)
		require.NoError(t, err)
		assert.Equal(t, userID, access.Subject)
		assert.Equal(t, authDomain.AccessToken, access.Kind)

		refresh, err := codec.Decode(pair.Refresh)
		require.NoError(t, err)
		assert.Equal(t, userID, refresh.Subject)
		assert.Equal(t, authDomain.RefreshToken, refresh.Kind)

		mockUserRepo.AssertExpectations(t)
		mockCredentials.AssertExpectations(t)
	})

	t.Run("Error_UnknownEmail", func(t *testing.T) {
		mockUserRepo := &mockUserRepository{}
		mockCredentials := &mockCredentialService{}

		mockUserRepo.On("GetByEmail", ctx, "nobody@epicevents.example").
			Return(nil, crmDomain.ErrUserNotFound).
			Once()

		uc, _ := newTestTokenUseCase(mockUserRepo, mockCredentials, nil)

		_, err := uc.Login(ctx, "nobody@epicevents.example", "whatever")
		assert.ErrorIs(t, err, authDomain.ErrInvalidCredentials)

		mockUserRepo.AssertExpectations(t)
		// No credential check must run for an unknown email.
		mockCredentials.AssertNotCalled(t, "Verify")
	})

	t.Run("Error_WrongPassword", func(t *testing.T) {
		mockUserRepo := &mockUserRepository{}
		mockCredentials := &mockCredentialService{}

		mockUserRepo.On("GetByEmail", ctx, user.Email).Return(user, nil).Once()
		mockCredentials.On("Verify", "wrong", hashedPassword).Return(false).Once()

		uc, _ := newTestTokenUseCase(mockUserRepo, mockCredentials, nil)

		_, err := uc.Login(ctx, user.Email, "wrong")
		// Indistinguishable from the unknown-email failure.
		assert.ErrorIs(t, err, authDomain.ErrInvalidCredentials)
	})

	t.Run("Error_InactiveUser", func(t *testing.T) {
		mockUserRepo := &mockUserRepository{}
		mockCredentials := &mockCredentialService{}

		inactive := *user
		inactive.Active = false
		mockUserRepo.On("GetByEmail", ctx, user.Email).Return(&inactive, nil).Once()

		uc, _ := newTestTokenUseCase(mockUserRepo, mockCredentials, nil)

		_, err := uc.Login(ctx, user.Email, "Analytic4l")
		assert.ErrorIs(t, err, authDomain.ErrInvalidCredentials)
		mockCredentials.AssertNotCalled(t, "Verify")
	})

	t.Run("Error_ThrottledAttempts", func(t *testing.T) {
		mockUserRepo := &mockUserRepository{}
		mockCredentials := &mockCredentialService{}

		mockUserRepo.On("GetByEmail", ctx, user.Email).Return(user, nil)
		mockCredentials.On("Verify", "wrong", hashedPassword).Return(false)

		// One attempt per burst, effectively refilling never within the test.
		limiter := NewLoginLimiter(0.001, 1)
		uc, _ := newTestTokenUseCase(mockUserRepo, mockCredentials, limiter)

		_, err := uc.Login(ctx, user.Email, "wrong")
		assert.ErrorIs(t, err, authDomain.ErrInvalidCredentials)

		_, err = uc.Login(ctx, user.Email, "wrong")
		assert.ErrorIs(t, err, authDomain.ErrTooManyAttempts)
	})
}

func TestTokenUseCase_Refresh(t *testing.T) {
	ctx := context.Background()
	userID := uuid.Must(uuid.NewV7())

	uc, codec := newTestTokenUseCase(&mockUserRepository{}, &mockCredentialService{}, nil)

	t.Run("Success_RotatesPair", func(t *testing.T) {
		refresh, err := codec.Mint(userID, authDomain.RefreshToken, time.Hour)
		require.NoError(t, err)

		pair, err := uc.Refresh(ctx, refresh)
		require.NoError(t, err)

		access, err := codec.Decode(pair.Access)
		require.NoError(t, err)
		assert.Equal(t, userID, access.Subject)
		assert.Equal(t, authDomain.AccessToken, access.Kind)

		// The returned refresh token is newly minted, not the input.
		newRefresh, err := codec.Decode(pair.Refresh)
		require.NoError(t, err)
		assert.Equal(t, userID, newRefresh.Subject)
	})

	t.Run("Error_AccessTokenKind", func(t *testing.T) {
		access, err := codec.Mint(userID, authDomain.AccessToken, time.Hour)
		require.NoError(t, err)

		_, err = uc.Refresh(ctx, access)
		assert.ErrorIs(t, err, authDomain.ErrInvalidToken)
	})

	t.Run("Error_ExpiredRefreshToken", func(t *testing.T) {
		refresh, err := codec.Mint(userID, authDomain.RefreshToken, -time.Second)
		require.NoError(t, err)

		_, err = uc.Refresh(ctx, refresh)
		assert.ErrorIs(t, err, authDomain.ErrInvalidToken)
	})

	t.Run("Error_MalformedToken", func(t *testing.T) {
		_, err := uc.Refresh(ctx, "garbage")
		assert.ErrorIs(t, err, authDomain.ErrInvalidToken)
	})
}

func TestTokenUseCase_Introspect(t *testing.T) {
	ctx := context.Background()
	userID := uuid.Must(uuid.NewV7())

	uc, codec := newTestTokenUseCase(&mockUserRepository{}, &mockCredentialService{}, nil)

	t.Run("Success_BothKindsAccepted", func(t *testing.T) {
		for _, kind := range []authDomain.TokenKind{authDomain.AccessToken, authDomain.RefreshToken} {
			signed, err := codec.Mint(userID, kind, time.Minute)
			require.NoError(t, err)

			subject, err := uc.Introspect(ctx, signed)
			require.NoError(t, err)
			assert.Equal(t, userID, subject)
		}
	})

	t.Run("Error_ExpiredToken", func(t *testing.T) {
		signed, err := codec.Mint(userID, authDomain.AccessToken, -time.Second)
		require.NoError(t, err)

		_, err = uc.Introspect(ctx, signed)
		assert.ErrorIs(t, err, authDomain.ErrInvalidToken)
	})

	t.Run("Error_MalformedToken", func(t *testing.T) {
		_, err := uc.Introspect(ctx, "not-a-token")
		assert.ErrorIs(t, err, authDomain.ErrInvalidToken)
	})
}

func TestTokenUseCase_IntrospectAccess(t *testing.T) {
	ctx := context.Background()
	userID := uuid.Must(uuid.NewV7())

	uc, codec := newTestTokenUseCase(&mockUserRepository{}, &mockCredentialService{}, nil)

	t.Run("Success_AccessToken", func(t *testing.T) {
		signed, err := codec.Mint(userID, authDomain.AccessToken, time.Minute)
		require.NoError(t, err)

		subject, err := uc.IntrospectAccess(ctx, signed)
		require.NoError(t, err)
		assert.Equal(t, userID, subject)
	})

	t.Run("Error_RefreshTokenKind", func(t *testing.T) {
		// A refresh token is never accepted where an access token is required,
		// even though it carries a valid signature and subject.
		signed, err := codec.Mint(userID, authDomain.RefreshToken, time.Hour)
		require.NoError(t, err)

		subject, err := uc.IntrospectAccess(ctx, signed)
		assert.Equal(t, uuid.Nil, subject)
		assert.ErrorIs(t, err, authDomain.ErrInvalidToken)
	})

	t.Run("Error_ExpiredToken", func(t *testing.T) {
		signed, err := codec.Mint(userID, authDomain.AccessToken, -time.Second)
		require.NoError(t, err)

		_, err = uc.IntrospectAccess(ctx, signed)
		assert.ErrorIs(t, err, authDomain.ErrInvalidToken)
	})

	t.Run("Error_MalformedToken", func(t *testing.T) {
		_, err := uc.IntrospectAccess(ctx, "not-a-token")
		assert.ErrorIs(t, err, authDomain.ErrInvalidToken)
	})
}

func TestTokenUseCase_PrincipalFor(t *testing.T) {
	ctx := context.Background()
	userID := uuid.Must(uuid.NewV7())

	t.Run("Success_ResolvesRoleChain", func(t *testing.T) {
		mockUserRepo := &mockUserRepository{}
		mockUserRepo.On("GetRole", ctx, userID).Return(authDomain.CommercialRole, nil).Once()

		uc, _ := newTestTokenUseCase(mockUserRepo, &mockCredentialService{}, nil)

		principal, err := uc.PrincipalFor(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, userID, principal.UserID)
		assert.Equal(t, authDomain.CommercialRole, principal.Role)
	})

	t.Run("Error_BrokenChain", func(t *testing.T) {
		mockUserRepo := &mockUserRepository{}
		mockUserRepo.On("GetRole", ctx, userID).
			Return(authDomain.Role(""), crmDomain.ErrTeamNotFound).
			Once()

		uc, _ := newTestTokenUseCase(mockUserRepo, &mockCredentialService{}, nil)

		_, err := uc.PrincipalFor(ctx, userID)
		assert.ErrorIs(t, err, crmDomain.ErrTeamNotFound)
	})
}
