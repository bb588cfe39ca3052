package usecase

import (
	"context"

	"github.com/google/uuid"

	authDomain "github.com/epicevents/crm/internal/auth/domain"
	authUseCase "github.com/epicevents/crm/internal/auth/usecase"
	apperrors "github.com/epicevents/crm/internal/errors"
)

// guard centralizes the two checks every protected operation performs: the
// access token is introspected immediately before the operation runs (a token
// validated at screen entry may have expired since), and the resulting
// principal is evaluated against the authorization engine.
type guard struct {
	tokens authUseCase.TokenUseCase
	authz  authUseCase.AuthorizationUseCase
}

// identify validates the access token and resolves the caller's principal.
// The check is kind-strict: a refresh token never authorizes an operation.
// An unusable token yields ErrSessionExpired; the caller must log in again.
func (g *guard) identify(ctx context.Context, accessToken string) (*authDomain.Principal, error) {
	userID, err := g.tokens.IntrospectAccess(ctx, accessToken)
	if err != nil {
		return nil, authDomain.ErrSessionExpired
	}

	principal, err := g.tokens.PrincipalFor(ctx, userID)
	if err != nil {
		return nil, err
	}
	return principal, nil
}

// authorize identifies the caller and checks the action against the
// authorization engine. targetID is uuid.Nil for actions with a purely
// static grant.
func (g *guard) authorize(
	ctx context.Context,
	accessToken string,
	action authDomain.Action,
	targetID uuid.UUID,
) (*authDomain.Principal, error) {
	principal, err := g.identify(ctx, accessToken)
	if err != nil {
		return nil, err
	}

	if !g.authz.IsActionAllowed(ctx, action, principal.UserID, principal.Role, targetID) {
		return nil, apperrors.Wrap(apperrors.ErrForbidden, "action not permitted")
	}
	return principal, nil
}
