// Package screens contains the terminal implementations of the application
// screens. Each screen renders one view, handles one user choice and names
// its successor; navigation itself is owned by the controller.
package screens

import (
	"errors"
	"fmt"
	"io"

	authDomain "github.com/epicevents/crm/internal/auth/domain"
	apperrors "github.com/epicevents/crm/internal/errors"
)

// Screen names beyond the well-known controller ones.
const (
	ScreenClients   = "clients"
	ScreenContracts = "contracts"
	ScreenEvents    = "events"
	ScreenUsers     = "users"
)

// dateFormat is the display and input format for event dates.
const dateFormat = "02/01/2006 15:04"

// reportError prints recoverable errors to the user and keeps the screen
// loop going. Session expiry is propagated so the controller can redirect
// to the login screen.
func reportError(out io.Writer, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, authDomain.ErrSessionExpired) {
		return err
	}

	switch {
	case errors.Is(err, apperrors.ErrForbidden):
		fmt.Fprintln(out, errorStyle.Render("You are not allowed to perform this action."))
	case errors.Is(err, apperrors.ErrInvalidInput):
		fmt.Fprintln(out, errorStyle.Render(err.Error()))
	case errors.Is(err, apperrors.ErrNotFound):
		fmt.Fprintln(out, errorStyle.Render("No matching record was found."))
	case errors.Is(err, apperrors.ErrConflict):
		fmt.Fprintln(out, errorStyle.Render(err.Error()))
	default:
		fmt.Fprintln(out, errorStyle.Render("An error occurred, please try again."))
	}
	return nil
}
