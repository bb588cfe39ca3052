package domain

import (
	"github.com/epicevents/crm/internal/errors"
)

// Authentication and authorization errors.
var (
	// ErrInvalidCredentials conflates "no such user" and "wrong password" so a
	// caller cannot enumerate registered emails at login time.
	ErrInvalidCredentials = errors.Wrap(errors.ErrUnauthorized, "invalid credentials")

	// ErrInvalidToken covers malformed, mis-signed, wrong-kind and expired
	// tokens uniformly. The finer distinctions exist only inside the codec.
	ErrInvalidToken = errors.Wrap(errors.ErrUnauthorized, "invalid token")

	// ErrSessionExpired indicates both session tokens are unusable and a fresh
	// login is required.
	ErrSessionExpired = errors.Wrap(errors.ErrUnauthorized, "session expired")

	// ErrTooManyAttempts indicates login attempts for an email are being
	// throttled.
	ErrTooManyAttempts = errors.Wrap(errors.ErrUnauthorized, "too many login attempts")
)
