package domain

import (
	"time"

	"github.com/google/uuid"
	validation "github.com/jellydator/validation"

	appValidation "github.com/epicevents/crm/internal/validation"
)

// Event is a planned occasion attached to a contract. The support contact is
// the user running the event; it may be unassigned until management picks one.
type Event struct {
	ID               uuid.UUID
	Title            string
	ContractID       uuid.UUID
	StartDate        time.Time
	EndDate          time.Time
	SupportContactID *uuid.UUID
	Location         string
	Attendees        int
	Notes            string
	Active           bool
	CreatedAt        time.Time
	UpdatedAt        *time.Time
}

// Deactivate soft-deletes the event.
func (e *Event) Deactivate() {
	e.Active = false
}

// CreateEventInput contains the parameters for creating a new event.
type CreateEventInput struct {
	Title            string
	ContractID       uuid.UUID
	StartDate        time.Time
	EndDate          time.Time
	SupportContactID *uuid.UUID
	Location         string
	Attendees        int
	Notes            string
}

// Validate checks the input against the event field constraints.
func (i *CreateEventInput) Validate() error {
	err := validation.ValidateStruct(i,
		validation.Field(&i.Title, validation.Required, validation.Length(1, 100)),
		validation.Field(&i.ContractID, validation.Required),
		validation.Field(&i.StartDate, validation.Required),
		validation.Field(&i.EndDate, validation.Required, validation.By(afterStart(i.StartDate))),
		validation.Field(&i.Location, validation.Required, validation.Length(1, 100)),
		validation.Field(&i.Attendees, validation.Min(0)),
	)
	return appValidation.WrapValidationError(err)
}

// UpdateEventInput contains the mutable fields of an event.
type UpdateEventInput struct {
	Title            string
	StartDate        time.Time
	EndDate          time.Time
	SupportContactID *uuid.UUID
	Location         string
	Attendees        int
	Notes            string
	Active           bool
}

// Validate checks the input against the event field constraints.
func (i *UpdateEventInput) Validate() error {
	err := validation.ValidateStruct(i,
		validation.Field(&i.Title, validation.Required, validation.Length(1, 100)),
		validation.Field(&i.StartDate, validation.Required),
		validation.Field(&i.EndDate, validation.Required, validation.By(afterStart(i.StartDate))),
		validation.Field(&i.Location, validation.Required, validation.Length(1, 100)),
		validation.Field(&i.Attendees, validation.Min(0)),
	)
	return appValidation.WrapValidationError(err)
}

// afterStart validates that the end date does not precede the start date.
func afterStart(start time.Time) validation.RuleFunc {
	return func(value interface{}) error {
		end, ok := value.(time.Time)
		if !ok {
			return validation.NewError("validation_event_end_date", "end date must be a time")
		}
		if end.Before(start) {
			return validation.NewError("validation_event_end_date", "end date must not precede start date")
		}
		return nil
	}
}
