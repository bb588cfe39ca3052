// Package domain defines the CRM entities: users with their teams and roles,
// clients, contracts and events. Ownership between users and the entity
// hierarchy drives the authorization rules in the auth context.
package domain

import (
	"time"

	"github.com/google/uuid"
	validation "github.com/jellydator/validation"

	authDomain "github.com/epicevents/crm/internal/auth/domain"
	appValidation "github.com/epicevents/crm/internal/validation"
)

// User is an employee account. The password is stored as an Argon2id hash and
// is never recoverable.
type User struct {
	ID             uuid.UUID
	EmployeeNumber int
	FirstName      string
	LastName       string
	Email          string
	PasswordHash   string
	Active         bool
	TeamID         *uuid.UUID
	CreatedAt      time.Time
	UpdatedAt      *time.Time
}

// FullName returns the user's display name.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// Deactivate soft-deletes the user, keeping the record for audit purposes.
func (u *User) Deactivate() {
	u.Active = false
}

// Team groups users and carries the role that applies to all its members.
type Team struct {
	ID     uuid.UUID
	Name   string
	Role   authDomain.Role
	Active bool
}

// CreateUserInput contains the parameters for creating a new user account.
// The plaintext password is hashed by the use case before persistence.
type CreateUserInput struct {
	EmployeeNumber int
	FirstName      string
	LastName       string
	Email          string
	Password       string
	TeamID         *uuid.UUID
}

// Validate checks the input against the user field constraints.
func (i *CreateUserInput) Validate() error {
	err := validation.ValidateStruct(i,
		validation.Field(&i.EmployeeNumber, validation.Required, validation.Min(1)),
		validation.Field(&i.FirstName, validation.Required, validation.Length(1, 50)),
		validation.Field(&i.LastName, validation.Required, validation.Length(1, 50)),
		validation.Field(
			&i.Email,
			validation.Required,
			validation.Length(3, 50),
			appValidation.Email,
			appValidation.NoWhitespace,
		),
		validation.Field(&i.Password, validation.Required, appValidation.PasswordStrength{
			MinLength:     8,
			RequireUpper:  true,
			RequireLower:  true,
			RequireNumber: true,
		}),
	)
	return appValidation.WrapValidationError(err)
}

// UpdateUserInput contains the mutable fields of a user account. The password
// is changed through a dedicated flow, not through updates.
type UpdateUserInput struct {
	FirstName string
	LastName  string
	Email     string
	Active    bool
	TeamID    *uuid.UUID
}

// Validate checks the input against the user field constraints.
func (i *UpdateUserInput) Validate() error {
	err := validation.ValidateStruct(i,
		validation.Field(&i.FirstName, validation.Required, validation.Length(1, 50)),
		validation.Field(&i.LastName, validation.Required, validation.Length(1, 50)),
		validation.Field(
			&i.Email,
			validation.Required,
			validation.Length(3, 50),
			appValidation.Email,
			appValidation.NoWhitespace,
		),
	)
	return appValidation.WrapValidationError(err)
}
