package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"

	authDomain "github.com/epicevents/crm/internal/auth/domain"
	authService "github.com/epicevents/crm/internal/auth/service"
	"github.com/epicevents/crm/internal/config"
	apperrors "github.com/epicevents/crm/internal/errors"
)

// tokenUseCase implements TokenUseCase on top of the credential service and
// the token codec.
type tokenUseCase struct {
	config            *config.Config
	userRepo          UserRepository
	credentialService authService.CredentialService
	tokenCodec        authService.TokenCodec
	loginLimiter      *LoginLimiter
}

// Login authenticates the email/password pair and mints a fresh token pair.
//
// Security notes:
//   - Returns ErrInvalidCredentials for unknown email, inactive account and
//     wrong password alike, to prevent email enumeration.
//   - Attempts per email are throttled; throttled attempts fail with
//     ErrTooManyAttempts before any credential check runs.
func (t *tokenUseCase) Login(
	ctx context.Context,
	email, password string,
) (*authDomain.TokenPair, error) {
	if t.loginLimiter != nil && !t.loginLimiter.Allow(email) {
		return nil, authDomain.ErrTooManyAttempts
	}

	user, err := t.userRepo.GetByEmail(ctx, email)
	if err != nil {
		// Unknown email collapses into the generic credential error.
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, authDomain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !user.Active {
		return nil, authDomain.ErrInvalidCredentials
	}

	if !t.credentialService.Verify(password, user.PasswordHash) {
		return nil, authDomain.ErrInvalidCredentials
	}

	return t.mintPair(user.ID)
}

// Refresh exchanges a valid refresh token for a brand-new pair. The old pair
// is not reusable in spirit even though the codec is stateless: the session
// store overwrites the only persisted copy.
func (t *tokenUseCase) Refresh(
	ctx context.Context,
	refreshToken string,
) (*authDomain.TokenPair, error) {
	token, err := t.tokenCodec.Decode(refreshToken)
	if err != nil {
		return nil, authDomain.ErrInvalidToken
	}

	// An access token is never accepted where a refresh token is required.
	if token.Kind != authDomain.RefreshToken {
		return nil, authDomain.ErrInvalidToken
	}

	return t.mintPair(token.Subject)
}

// Introspect accepts a token of either kind and returns the subject. Both
// kinds are valid bearer proof of identity for this check only; protected
// actions go through IntrospectAccess instead.
func (t *tokenUseCase) Introspect(ctx context.Context, tokenString string) (uuid.UUID, error) {
	token, err := t.tokenCodec.Decode(tokenString)
	if err != nil {
		return uuid.Nil, authDomain.ErrInvalidToken
	}
	return token.Subject, nil
}

// IntrospectAccess validates tokenString as an access token and returns the
// subject. A refresh token is never accepted where an access token is
// required.
func (t *tokenUseCase) IntrospectAccess(ctx context.Context, tokenString string) (uuid.UUID, error) {
	token, err := t.tokenCodec.Decode(tokenString)
	if err != nil {
		return uuid.Nil, authDomain.ErrInvalidToken
	}
	if token.Kind != authDomain.AccessToken {
		return uuid.Nil, authDomain.ErrInvalidToken
	}
	return token.Subject, nil
}

// PrincipalFor resolves the user's role through User -> Team -> Role.
func (t *tokenUseCase) PrincipalFor(
	ctx context.Context,
	userID uuid.UUID,
) (*authDomain.Principal, error) {
	role, err := t.userRepo.GetRole(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &authDomain.Principal{UserID: userID, Role: role}, nil
}

// mintPair mints the access and refresh tokens atomically: either both exist
// or neither does.
func (t *tokenUseCase) mintPair(subject uuid.UUID) (*authDomain.TokenPair, error) {
	access, err := t.tokenCodec.Mint(subject, authDomain.AccessToken, t.config.AuthAccessTokenTTL)
	if err != nil {
		return nil, err
	}

	refresh, err := t.tokenCodec.Mint(subject, authDomain.RefreshToken, t.config.AuthRefreshTokenTTL)
	if err != nil {
		return nil, err
	}

	return &authDomain.TokenPair{Access: access, Refresh: refresh}, nil
}

// NewTokenUseCase creates a TokenUseCase with the provided dependencies.
// limiter may be nil when login throttling is disabled.
func NewTokenUseCase(
	config *config.Config,
	userRepo UserRepository,
	credentialService authService.CredentialService,
	tokenCodec authService.TokenCodec,
	limiter *LoginLimiter,
) TokenUseCase {
	return &tokenUseCase{
		config:            config,
		userRepo:          userRepo,
		credentialService: credentialService,
		tokenCodec:        tokenCodec,
		loginLimiter:      limiter,
	}
}
