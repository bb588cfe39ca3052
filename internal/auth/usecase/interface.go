// Package usecase implements business logic orchestration for authentication
// and authorization operations.
package usecase

import (
	"context"

	"github.com/google/uuid"

	authDomain "github.com/epicevents/crm/internal/auth/domain"
	crmDomain "github.com/epicevents/crm/internal/crm/domain"
)

// UserRepository defines the user lookups needed by the token use case.
// Implementations must support transaction-aware operations via context
// propagation.
type UserRepository interface {
	// Get retrieves a user by ID. Returns ErrUserNotFound if not found.
	Get(ctx context.Context, userID uuid.UUID) (*crmDomain.User, error)

	// GetByEmail retrieves a user by email. Returns ErrUserNotFound if not found.
	GetByEmail(ctx context.Context, email string) (*crmDomain.User, error)

	// GetRole resolves the user's role through the User -> Team -> Role chain.
	// Returns ErrUserNotFound or ErrTeamNotFound when the chain is broken.
	GetRole(ctx context.Context, userID uuid.UUID) (authDomain.Role, error)
}

// ClientReader exposes the client lookup needed for ownership resolution.
type ClientReader interface {
	Get(ctx context.Context, clientID uuid.UUID) (*crmDomain.Client, error)
}

// ContractReader exposes the contract lookup needed for ownership resolution.
type ContractReader interface {
	Get(ctx context.Context, contractID uuid.UUID) (*crmDomain.Contract, error)
}

// EventReader exposes the event lookup needed for ownership resolution.
type EventReader interface {
	Get(ctx context.Context, eventID uuid.UUID) (*crmDomain.Event, error)
}

// TokenUseCase orchestrates login, token inspection and refresh.
//
// All operations are pure and local: no retries, no partial state. A failure
// is terminal for that call and must be handled by the caller, typically by
// forcing a fresh login.
type TokenUseCase interface {
	// Login verifies the email/password pair and mints a fresh token pair.
	// Unknown email, inactive account and wrong password all collapse into
	// ErrInvalidCredentials so callers cannot enumerate registered emails.
	Login(ctx context.Context, email, password string) (*authDomain.TokenPair, error)

	// Refresh exchanges a valid refresh token for a brand-new pair (rotation:
	// callers must discard the old pair). A token of the wrong kind, expired
	// or malformed yields ErrInvalidToken.
	Refresh(ctx context.Context, refreshToken string) (*authDomain.TokenPair, error)

	// Introspect accepts a token of either kind as bearer proof of identity
	// and returns the subject if unexpired and well-formed. Only the session
	// middleware may rely on this check; protected operations must use
	// IntrospectAccess.
	Introspect(ctx context.Context, tokenString string) (uuid.UUID, error)

	// IntrospectAccess is the strict variant guarding protected operations: a
	// refresh token is never accepted where an access token is required, so a
	// leaked refresh token alone cannot drive a mutation.
	IntrospectAccess(ctx context.Context, tokenString string) (uuid.UUID, error)

	// PrincipalFor resolves the connected user's role through the
	// User -> Team -> Role chain. Called once per login.
	PrincipalFor(ctx context.Context, userID uuid.UUID) (*authDomain.Principal, error)
}

// AuthorizationUseCase evaluates whether a (user, role, action, target) tuple
// is permitted. Pure functions of their inputs plus entity reads; every
// predicate is fail-closed: any lookup failure yields false, never an error
// that a careless caller could mistake for a grant.
type AuthorizationUseCase interface {
	// IsActionAllowed combines the static role table with the dynamic
	// ownership checks. targetID is ignored for actions whose grant is purely
	// static (create actions, user administration); pass uuid.Nil there.
	IsActionAllowed(
		ctx context.Context,
		action authDomain.Action,
		userID uuid.UUID,
		role authDomain.Role,
		targetID uuid.UUID,
	) bool

	// OwnsClient reports whether the user is the client's commercial contact.
	OwnsClient(ctx context.Context, userID, clientID uuid.UUID) bool

	// OwnsEvent reports whether the user is the event's support contact or
	// owns the client reached via Event -> Contract -> Client.
	OwnsEvent(ctx context.Context, userID, eventID uuid.UUID) bool
}
