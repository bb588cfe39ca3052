package app

import (
	"fmt"

	authService "github.com/epicevents/crm/internal/auth/service"
	"github.com/epicevents/crm/internal/auth/session"
	authUseCase "github.com/epicevents/crm/internal/auth/usecase"
)

// CredentialService returns the password hashing service.
func (c *Container) CredentialService() authService.CredentialService {
	c.credentialServiceInit.Do(func() {
		c.credentialService = authService.NewCredentialService()
	})
	return c.credentialService
}

// TokenCodec returns the token codec used to mint and decode signed tokens.
func (c *Container) TokenCodec() authService.TokenCodec {
	c.tokenCodecInit.Do(func() {
		c.tokenCodec = authService.NewTokenCodec(c.config.AuthSecretKey)
	})
	return c.tokenCodec
}

// TokenUseCase returns the token use case.
func (c *Container) TokenUseCase() (authUseCase.TokenUseCase, error) {
	var err error
	c.tokenUseCaseInit.Do(func() {
		c.tokenUseCase, err = c.initTokenUseCase()
		if err != nil {
			c.initErrors["tokenUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["tokenUseCase"]; exists {
		return nil, storedErr
	}
	return c.tokenUseCase, nil
}

// AuthorizationUseCase returns the authorization use case.
func (c *Container) AuthorizationUseCase() (authUseCase.AuthorizationUseCase, error) {
	var err error
	c.authorizationUseCaseInit.Do(func() {
		c.authorizationUseCase, err = c.initAuthorizationUseCase()
		if err != nil {
			c.initErrors["authorizationUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["authorizationUseCase"]; exists {
		return nil, storedErr
	}
	return c.authorizationUseCase, nil
}

// SessionStore returns the file-backed session store.
func (c *Container) SessionStore() session.Store {
	c.sessionStoreInit.Do(func() {
		c.sessionStore = session.NewFileStore(c.config.SessionFilePath)
	})
	return c.sessionStore
}

// SessionMiddleware returns the session middleware that keeps the persisted
// token pair fresh across operations.
func (c *Container) SessionMiddleware() (*session.Middleware, error) {
	var err error
	c.sessionMiddlewareInit.Do(func() {
		c.sessionMiddleware, err = c.initSessionMiddleware()
		if err != nil {
			c.initErrors["sessionMiddleware"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["sessionMiddleware"]; exists {
		return nil, storedErr
	}
	return c.sessionMiddleware, nil
}

// initTokenUseCase creates the token use case with all its dependencies.
func (c *Container) initTokenUseCase() (authUseCase.TokenUseCase, error) {
	userRepo, err := c.UserRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get user repository for token use case: %w", err)
	}

	// A nil limiter disables login throttling
	var limiter *authUseCase.LoginLimiter
	if c.config.LoginRateLimitEnabled {
		limiter = authUseCase.NewLoginLimiter(c.config.LoginRateLimitPerSec, c.config.LoginRateLimitBurst)
	}

	baseUseCase := authUseCase.NewTokenUseCase(
		c.config,
		userRepo,
		c.CredentialService(),
		c.TokenCodec(),
		limiter,
	)

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for token use case: %w", err)
		}
		return authUseCase.NewTokenUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

// initAuthorizationUseCase creates the authorization use case with its entity readers.
func (c *Container) initAuthorizationUseCase() (authUseCase.AuthorizationUseCase, error) {
	clientRepo, err := c.ClientRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get client repository for authorization use case: %w", err)
	}

	contractRepo, err := c.ContractRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get contract repository for authorization use case: %w", err)
	}

	eventRepo, err := c.EventRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get event repository for authorization use case: %w", err)
	}

	return authUseCase.NewAuthorizationUseCase(clientRepo, contractRepo, eventRepo), nil
}

// initSessionMiddleware creates the session middleware with its dependencies.
func (c *Container) initSessionMiddleware() (*session.Middleware, error) {
	tokenUseCase, err := c.TokenUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get token use case for session middleware: %w", err)
	}

	return session.NewMiddleware(c.SessionStore(), tokenUseCase, c.Logger()), nil
}
