package repository

import (
	"strings"

	"github.com/google/uuid"

	apperrors "github.com/epicevents/crm/internal/errors"
)

// uuidBytes converts a UUID to its binary form for MySQL BINARY(16) columns.
func uuidBytes(id uuid.UUID) ([]byte, error) {
	b, err := id.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal UUID")
	}
	return b, nil
}

// nullableUUIDBytes converts an optional UUID to a driver value, mapping nil
// to SQL NULL.
func nullableUUIDBytes(id *uuid.UUID) (interface{}, error) {
	if id == nil {
		return nil, nil
	}
	return uuidBytes(*id)
}

// scanUUID converts BINARY(16) bytes back to a UUID.
func scanUUID(b []byte, id *uuid.UUID) error {
	if err := id.UnmarshalBinary(b); err != nil {
		return apperrors.Wrap(err, "failed to unmarshal UUID")
	}
	return nil
}

// scanNullableUUID converts optional BINARY(16) bytes back to an optional UUID.
func scanNullableUUID(b []byte, id **uuid.UUID) error {
	if b == nil {
		*id = nil
		return nil
	}
	var parsed uuid.UUID
	if err := parsed.UnmarshalBinary(b); err != nil {
		return apperrors.Wrap(err, "failed to unmarshal UUID")
	}
	*id = &parsed
	return nil
}

// isMySQLUniqueViolation checks if the error is a MySQL unique constraint violation.
func isMySQLUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	errMsg := strings.ToLower(err.Error())
	// MySQL: "Error 1062: Duplicate entry"
	return strings.Contains(errMsg, "duplicate entry") || strings.Contains(errMsg, "1062")
}
