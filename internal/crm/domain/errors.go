package domain

import (
	"github.com/epicevents/crm/internal/errors"
)

// Entity lookup errors.
var (
	// ErrUserNotFound indicates a user with the specified ID or email was not found.
	ErrUserNotFound = errors.Wrap(errors.ErrNotFound, "user not found")

	// ErrTeamNotFound indicates a team with the specified ID was not found.
	ErrTeamNotFound = errors.Wrap(errors.ErrNotFound, "team not found")

	// ErrClientNotFound indicates a client with the specified ID was not found.
	ErrClientNotFound = errors.Wrap(errors.ErrNotFound, "client not found")

	// ErrContractNotFound indicates a contract with the specified ID was not found.
	ErrContractNotFound = errors.Wrap(errors.ErrNotFound, "contract not found")

	// ErrEventNotFound indicates an event with the specified ID was not found.
	ErrEventNotFound = errors.Wrap(errors.ErrNotFound, "event not found")
)

// Uniqueness violations.
var (
	// ErrUserAlreadyExists indicates the email or employee number is already taken.
	ErrUserAlreadyExists = errors.Wrap(errors.ErrConflict, "user already exists")

	// ErrClientAlreadyExists indicates a client with the same email already exists.
	ErrClientAlreadyExists = errors.Wrap(errors.ErrConflict, "client already exists")
)
