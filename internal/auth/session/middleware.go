package session

import (
	"context"
	"log/slog"

	authDomain "github.com/epicevents/crm/internal/auth/domain"
	authUseCase "github.com/epicevents/crm/internal/auth/usecase"
)

// Middleware wraps each operation with session bookkeeping: it persists any
// freshly minted pair before the operation runs, then revalidates the access
// token after it returns, rotating the pair through the refresh token when
// the access token has expired in the meantime.
//
// Refresh failures are deliberately swallowed: whatever access token is left
// in the slot is returned as-is so the next authenticated operation fails
// its own token check instead of this wrapper guessing at the caller's
// error handling.
type Middleware struct {
	store  Store
	tokens authUseCase.TokenUseCase
	logger *slog.Logger
}

// NewMiddleware returns a session middleware over the given store.
func NewMiddleware(store Store, tokens authUseCase.TokenUseCase, logger *slog.Logger) *Middleware {
	return &Middleware{store: store, tokens: tokens, logger: logger}
}

// Run executes op inside the session protocol and returns the access token
// that is current once op has finished.
//
// When fresh is non-nil (the operation was a login) the pair is persisted
// first so op already sees it. After op returns, the persisted access token
// is introspected: if it is still valid it is returned unchanged, otherwise
// a silent refresh replaces the pair and the new access token is returned.
// If the refresh token has expired too, the stale access token is returned
// unchanged and the caller's own validation reports the expired session.
//
// The operation error is returned verbatim; session upkeep never masks it.
func (m *Middleware) Run(
	ctx context.Context,
	fresh *authDomain.TokenPair,
	op func(ctx context.Context) error,
) (string, error) {
	if fresh != nil {
		if err := m.store.Save(&authDomain.Session{Access: fresh.Access, Refresh: fresh.Refresh}); err != nil {
			m.logger.Error("failed to persist session", "error", err)
		}
	}

	opErr := op(ctx)

	current, err := m.store.Load()
	if err != nil {
		return "", opErr
	}

	if _, err := m.tokens.Introspect(ctx, current.Access); err == nil {
		return current.Access, opErr
	}

	pair, err := m.tokens.Refresh(ctx, current.Refresh)
	if err != nil {
		m.logger.Debug("session refresh failed", "error", err)
		return current.Access, opErr
	}

	if err := m.store.Save(&authDomain.Session{Access: pair.Access, Refresh: pair.Refresh}); err != nil {
		m.logger.Error("failed to persist refreshed session", "error", err)
	}
	return pair.Access, opErr
}

// Access returns the currently persisted access token, validating it and
// attempting one silent refresh when it has expired. Returns
// ErrSessionExpired when no usable token remains; callers must prompt for a
// fresh login.
func (m *Middleware) Access(ctx context.Context) (string, error) {
	current, err := m.store.Load()
	if err != nil {
		return "", authDomain.ErrSessionExpired
	}

	if _, err := m.tokens.Introspect(ctx, current.Access); err == nil {
		return current.Access, nil
	}

	pair, err := m.tokens.Refresh(ctx, current.Refresh)
	if err != nil {
		return "", authDomain.ErrSessionExpired
	}

	if err := m.store.Save(&authDomain.Session{Access: pair.Access, Refresh: pair.Refresh}); err != nil {
		m.logger.Error("failed to persist refreshed session", "error", err)
	}
	return pair.Access, nil
}

// Logout clears the persisted session.
func (m *Middleware) Logout() error {
	return m.store.Clear()
}
