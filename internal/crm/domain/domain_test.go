package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	apperrors "github.com/epicevents/crm/internal/errors"
)

func TestCreateUserInputValidate(t *testing.T) {
	teamID := uuid.Must(uuid.NewV7())
	valid := CreateUserInput{
		EmployeeNumber: 1042,
		FirstName:      "Ada",
		LastName:       "Lovelace",
		Email:          "ada@epicevents.example",
		Password:       "Analytic4l",
		TeamID:         &teamID,
	}

	t.Run("valid input", func(t *testing.T) {
		assert.NoError(t, valid.Validate())
	})

	t.Run("rejects bad email", func(t *testing.T) {
		input := valid
		input.Email = "not-an-email"
		assert.ErrorIs(t, input.Validate(), apperrors.ErrInvalidInput)
	})

	t.Run("rejects weak password", func(t *testing.T) {
		input := valid
		input.Password = "weak"
		assert.ErrorIs(t, input.Validate(), apperrors.ErrInvalidInput)
	})

	t.Run("rejects zero employee number", func(t *testing.T) {
		input := valid
		input.EmployeeNumber = 0
		assert.ErrorIs(t, input.Validate(), apperrors.ErrInvalidInput)
	})
}

func TestCreateClientInputValidate(t *testing.T) {
	valid := CreateClientInput{
		FirstName:  "Marie",
		LastName:   "Curie",
		Email:      "marie@radium.example",
		Telephone:  "+33 1 23 45 67 89",
		Enterprise: "Radium Institute",
	}

	t.Run("valid input", func(t *testing.T) {
		assert.NoError(t, valid.Validate())
	})

	t.Run("rejects missing enterprise", func(t *testing.T) {
		input := valid
		input.Enterprise = ""
		assert.ErrorIs(t, input.Validate(), apperrors.ErrInvalidInput)
	})
}

func TestCreateContractInputValidate(t *testing.T) {
	valid := CreateContractInput{
		ClientID:     uuid.Must(uuid.NewV7()),
		TotalAmount:  1200.50,
		AmountUnpaid: 200,
		Status:       ContractUnsigned,
	}

	t.Run("valid input", func(t *testing.T) {
		assert.NoError(t, valid.Validate())
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		input := valid
		input.Status = ContractStatus("pending")
		assert.ErrorIs(t, input.Validate(), apperrors.ErrInvalidInput)
	})

	t.Run("rejects unpaid amount above total", func(t *testing.T) {
		input := valid
		input.AmountUnpaid = 5000
		assert.ErrorIs(t, input.Validate(), apperrors.ErrInvalidInput)
	})
}

func TestCreateEventInputValidate(t *testing.T) {
	start := time.Date(2026, 9, 12, 18, 0, 0, 0, time.UTC)
	valid := CreateEventInput{
		Title:      "Product launch",
		ContractID: uuid.Must(uuid.NewV7()),
		StartDate:  start,
		EndDate:    start.Add(4 * time.Hour),
		Location:   "53 rue du Château, Paris",
		Attendees:  75,
	}

	t.Run("valid input", func(t *testing.T) {
		assert.NoError(t, valid.Validate())
	})

	t.Run("rejects end before start", func(t *testing.T) {
		input := valid
		input.EndDate = start.Add(-time.Hour)
		assert.ErrorIs(t, input.Validate(), apperrors.ErrInvalidInput)
	})

	t.Run("rejects negative attendees", func(t *testing.T) {
		input := valid
		input.Attendees = -1
		assert.ErrorIs(t, input.Validate(), apperrors.ErrInvalidInput)
	})
}

func TestContractStatusIsValid(t *testing.T) {
	assert.True(t, ContractSigned.IsValid())
	assert.True(t, ContractUnsigned.IsValid())
	assert.False(t, ContractStatus("draft").IsValid())
}

func TestUserFullName(t *testing.T) {
	u := User{FirstName: "Ada", LastName: "Lovelace"}
	assert.Equal(t, "Ada Lovelace", u.FullName())
}

func TestDeactivate(t *testing.T) {
	u := User{Active: true}
	u.Deactivate()
	assert.False(t, u.Active)

	c := Client{Active: true}
	c.Deactivate()
	assert.False(t, c.Active)
}
