package domain

import (
	"time"

	"github.com/google/uuid"
	validation "github.com/jellydator/validation"

	appValidation "github.com/epicevents/crm/internal/validation"
)

// Client is a customer account. The commercial contact is the owning user for
// authorization purposes: client updates and contract/event updates down the
// hierarchy flow through this assignment.
type Client struct {
	ID                  uuid.UUID
	FirstName           string
	LastName            string
	Email               string
	Telephone           string
	Enterprise          string
	CommercialContactID uuid.UUID
	Active              bool
	CreatedAt           time.Time
	UpdatedAt           *time.Time
}

// FullName returns the client's display name.
func (c *Client) FullName() string {
	return c.FirstName + " " + c.LastName
}

// Deactivate soft-deletes the client.
func (c *Client) Deactivate() {
	c.Active = false
}

// CreateClientInput contains the parameters for creating a new client. The
// commercial contact is set to the connected user by the use case.
type CreateClientInput struct {
	FirstName  string
	LastName   string
	Email      string
	Telephone  string
	Enterprise string
}

// Validate checks the input against the client field constraints.
func (i *CreateClientInput) Validate() error {
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
		validation.Field(&i.Telephone, validation.Required, validation.Length(1, 50)),
		validation.Field(&i.Enterprise, validation.Required, validation.Length(1, 50)),
	)
	return appValidation.WrapValidationError(err)
}

// UpdateClientInput contains the mutable fields of a client. Reassigning the
// commercial contact is a management concern and handled separately.
type UpdateClientInput struct {
	FirstName  string
	LastName   string
	Email      string
	Telephone  string
	Enterprise string
	Active     bool
}

// Validate checks the input against the client field constraints.
func (i *UpdateClientInput) Validate() error {
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
		validation.Field(&i.Telephone, validation.Required, validation.Length(1, 50)),
		validation.Field(&i.Enterprise, validation.Required, validation.Length(1, 50)),
	)
	return appValidation.WrapValidationError(err)
}
