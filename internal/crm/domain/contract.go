package domain

import (
	"time"

	"github.com/google/uuid"
	validation "github.com/jellydator/validation"

	appValidation "github.com/epicevents/crm/internal/validation"
)

// ContractStatus is the closed set of contract states.
type ContractStatus string

const (
	// ContractSigned marks a signed contract; events can be created for it.
	ContractSigned ContractStatus = "signed"

	// ContractUnsigned marks a contract still waiting for signature.
	ContractUnsigned ContractStatus = "unsigned"
)

// IsValid reports whether the status is one of the known values.
func (s ContractStatus) IsValid() bool {
	return s == ContractSigned || s == ContractUnsigned
}

// Contract binds a client to an amount of work. Its ownership for
// authorization purposes is derived from the client's commercial contact.
type Contract struct {
	ID           uuid.UUID
	ClientID     uuid.UUID
	TotalAmount  float64
	AmountUnpaid float64
	Status       ContractStatus
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}

// Deactivate soft-deletes the contract.
func (c *Contract) Deactivate() {
	c.Active = false
}

// CreateContractInput contains the parameters for creating a new contract.
type CreateContractInput struct {
	ClientID     uuid.UUID
	TotalAmount  float64
	AmountUnpaid float64
	Status       ContractStatus
}

// Validate checks the input against the contract field constraints.
func (i *CreateContractInput) Validate() error {
	err := validation.ValidateStruct(i,
		validation.Field(&i.ClientID, validation.Required),
		validation.Field(&i.TotalAmount, validation.Min(0.0)),
		validation.Field(&i.AmountUnpaid, validation.Min(0.0), validation.Max(i.TotalAmount)),
		validation.Field(&i.Status, validation.Required, validation.In(ContractSigned, ContractUnsigned)),
	)
	return appValidation.WrapValidationError(err)
}

// UpdateContractInput contains the mutable fields of a contract.
type UpdateContractInput struct {
	TotalAmount  float64
	AmountUnpaid float64
	Status       ContractStatus
	Active       bool
}

// Validate checks the input against the contract field constraints.
func (i *UpdateContractInput) Validate() error {
	err := validation.ValidateStruct(i,
		validation.Field(&i.TotalAmount, validation.Min(0.0)),
		validation.Field(&i.AmountUnpaid, validation.Min(0.0), validation.Max(i.TotalAmount)),
		validation.Field(&i.Status, validation.Required, validation.In(ContractSigned, ContractUnsigned)),
	)
	return appValidation.WrapValidationError(err)
}
