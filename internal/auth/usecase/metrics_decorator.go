package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	authDomain "github.com/epicevents/crm/internal/auth/domain"
	"github.com/epicevents/crm/internal/metrics"
)

// tokenUseCaseWithMetrics decorates TokenUseCase with metrics instrumentation.
type tokenUseCaseWithMetrics struct {
	next    TokenUseCase
	metrics metrics.BusinessMetrics
}

// NewTokenUseCaseWithMetrics wraps a TokenUseCase with metrics recording.
func NewTokenUseCaseWithMetrics(useCase TokenUseCase, m metrics.BusinessMetrics) TokenUseCase {
	return &tokenUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Login records metrics for login attempts.
func (t *tokenUseCaseWithMetrics) Login(
	ctx context.Context,
	email, password string,
) (*authDomain.TokenPair, error) {
	start := time.Now()
	pair, err := t.next.Login(ctx, email, password)

	status := "success"
	if err != nil {
		status = "error"
	}

	t.metrics.RecordOperation(ctx, "auth", "login", status)
	t.metrics.RecordDuration(ctx, "auth", "login", time.Since(start), status)

	return pair, err
}

// Refresh records metrics for token rotations.
func (t *tokenUseCaseWithMetrics) Refresh(
	ctx context.Context,
	refreshToken string,
) (*authDomain.TokenPair, error) {
	start := time.Now()
	pair, err := t.next.Refresh(ctx, refreshToken)

	status := "success"
	if err != nil {
		status = "error"
	}

	t.metrics.RecordOperation(ctx, "auth", "refresh", status)
	t.metrics.RecordDuration(ctx, "auth", "refresh", time.Since(start), status)

	return pair, err
}

// Introspect records metrics for token inspections.
func (t *tokenUseCaseWithMetrics) Introspect(
	ctx context.Context,
	tokenString string,
) (uuid.UUID, error) {
	start := time.Now()
	subject, err := t.next.Introspect(ctx, tokenString)

	status := "success"
	if err != nil {
		status = "error"
	}

	t.metrics.RecordOperation(ctx, "auth", "introspect", status)
	t.metrics.RecordDuration(ctx, "auth", "introspect", time.Since(start), status)

	return subject, err
}

// IntrospectAccess records metrics for the strict access-token checks.
func (t *tokenUseCaseWithMetrics) IntrospectAccess(
	ctx context.Context,
	tokenString string,
) (uuid.UUID, error) {
	start := time.Now()
	subject, err := t.next.IntrospectAccess(ctx, tokenString)

	status := "success"
	if err != nil {
		status = "error"
	}

	t.metrics.RecordOperation(ctx, "auth", "introspect_access", status)
	t.metrics.RecordDuration(ctx, "auth", "introspect_access", time.Since(start), status)

	return subject, err
}

// PrincipalFor records metrics for principal resolutions.
func (t *tokenUseCaseWithMetrics) PrincipalFor(
	ctx context.Context,
	userID uuid.UUID,
) (*authDomain.Principal, error) {
	start := time.Now()
	principal, err := t.next.PrincipalFor(ctx, userID)

	status := "success"
	if err != nil {
		status = "error"
	}

	t.metrics.RecordOperation(ctx, "auth", "principal_for", status)
	t.metrics.RecordDuration(ctx, "auth", "principal_for", time.Since(start), status)

	return principal, err
}
