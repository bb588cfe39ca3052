// Package controller drives the terminal screen loop. Screens render a view
// and name their successor; the controller wraps every transition in the
// session middleware so tokens are refreshed between screens without the user
// noticing.
package controller

import (
	"context"
	"errors"
	"log/slog"

	authDomain "github.com/epicevents/crm/internal/auth/domain"
	apperrors "github.com/epicevents/crm/internal/errors"
)

// Well-known screen names.
const (
	ScreenLogin = "login"
	ScreenHome  = "home"
	ScreenQuit  = "quit"
)

// Screen renders one terminal view and returns the name of the next screen.
// A login screen additionally returns the freshly minted token pair so the
// controller can hand it to the session middleware before the next
// transition.
type Screen interface {
	Name() string
	Render(ctx context.Context, accessToken string) (next string, fresh *authDomain.TokenPair, err error)
}

// SessionRunner wraps one operation in the session protocol. Implemented by
// session.Middleware.
type SessionRunner interface {
	Run(ctx context.Context, fresh *authDomain.TokenPair, op func(ctx context.Context) error) (string, error)
	Access(ctx context.Context) (string, error)
	Logout() error
}

// Controller owns the screen registry and the navigation loop.
type Controller struct {
	screens map[string]Screen
	session SessionRunner
	logger  *slog.Logger
}

// NewController creates a controller over the given screens.
func NewController(screens []Screen, session SessionRunner, logger *slog.Logger) *Controller {
	registry := make(map[string]Screen, len(screens))
	for _, s := range screens {
		registry[s.Name()] = s
	}
	return &Controller{
		screens: registry,
		session: session,
		logger:  logger,
	}
}

// Run executes the screen loop starting at the login screen. It returns when
// a screen names ScreenQuit as its successor or fails with an error that is
// not a session problem.
//
// An expired session inside any screen redirects to the login screen instead
// of aborting; everything else is fatal for the loop.
func (c *Controller) Run(ctx context.Context) error {
	current := ScreenLogin
	var accessToken string
	var fresh *authDomain.TokenPair

	// A session persisted by a previous run skips the login screen.
	if token, err := c.session.Access(ctx); err == nil {
		c.logger.Info("resuming persisted session")
		accessToken = token
		current = ScreenHome
	}

	for current != ScreenQuit {
		screen, ok := c.screens[current]
		if !ok {
			return apperrors.Wrap(apperrors.ErrNotFound, "unknown screen "+current)
		}

		var next string
		var minted *authDomain.TokenPair
		token, err := c.session.Run(ctx, fresh, func(opCtx context.Context) error {
			var opErr error
			next, minted, opErr = screen.Render(opCtx, accessToken)
			return opErr
		})
		accessToken = token
		fresh = minted

		// A pair minted inside the operation is only persisted on the next
		// transition; its access token must reach the next screen now, or a
		// first login would render the home screen with an empty token.
		if minted != nil {
			accessToken = minted.Access
		}

		if err != nil {
			if errors.Is(err, authDomain.ErrSessionExpired) {
				c.logger.Info("session expired, returning to login")
				current = ScreenLogin
				continue
			}
			return err
		}

		// Navigating back to the login screen is an explicit logout.
		if next == ScreenLogin && current != ScreenLogin {
			if err := c.session.Logout(); err != nil {
				c.logger.Error("failed to clear session", "error", err)
			}
			accessToken = ""
		}

		current = next
	}

	return nil
}
