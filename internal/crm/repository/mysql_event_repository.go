package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/epicevents/crm/internal/crm/domain"
	"github.com/epicevents/crm/internal/database"

	apperrors "github.com/epicevents/crm/internal/errors"
)

// MySQLEventRepository handles event persistence for MySQL.
type MySQLEventRepository struct {
	db *sql.DB
}

// NewMySQLEventRepository creates a new MySQLEventRepository.
func NewMySQLEventRepository(db *sql.DB) *MySQLEventRepository {
	return &MySQLEventRepository{
		db: db,
	}
}

// Create inserts a new event.
func (r *MySQLEventRepository) Create(ctx context.Context, event *domain.Event) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO events (id, title, contract_id, start_date, end_date, support_contact_id, location, attendees, notes, active, created_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NOW())`

	id, err := uuidBytes(event.ID)
	if err != nil {
		return err
	}
	contractID, err := uuidBytes(event.ContractID)
	if err != nil {
		return err
	}
	supportID, err := nullableUUIDBytes(event.SupportContactID)
	if err != nil {
		return err
	}

	_, err = querier.ExecContext(
		ctx,
		query,
		id,
		event.Title,
		contractID,
		event.StartDate,
		event.EndDate,
		supportID,
		event.Location,
		event.Attendees,
		event.Notes,
		event.Active,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create event")
	}
	return nil
}

// Get retrieves an event by ID.
func (r *MySQLEventRepository) Get(ctx context.Context, eventID uuid.UUID) (*domain.Event, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, title, contract_id, start_date, end_date, support_contact_id, location, attendees, notes, active, created_at, updated_at
			  FROM events WHERE id = ?`

	id, err := uuidBytes(eventID)
	if err != nil {
		return nil, err
	}

	var event domain.Event
	var idBytes, contractIDBytes, supportIDBytes []byte
	err = querier.QueryRowContext(ctx, query, id).Scan(
		&idBytes,
		&event.Title,
		&contractIDBytes,
		&event.StartDate,
		&event.EndDate,
		&supportIDBytes,
		&event.Location,
		&event.Attendees,
		&event.Notes,
		&event.Active,
		&event.CreatedAt,
		&event.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get event by id")
	}

	if err := scanUUID(idBytes, &event.ID); err != nil {
		return nil, err
	}
	if err := scanUUID(contractIDBytes, &event.ContractID); err != nil {
		return nil, err
	}
	if err := scanNullableUUID(supportIDBytes, &event.SupportContactID); err != nil {
		return nil, err
	}

	return &event, nil
}

// Update overwrites the mutable fields of an event.
func (r *MySQLEventRepository) Update(ctx context.Context, event *domain.Event) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE events
			  SET title = ?, start_date = ?, end_date = ?, support_contact_id = ?, location = ?, attendees = ?, notes = ?, active = ?, updated_at = NOW()
			  WHERE id = ?`

	id, err := uuidBytes(event.ID)
	if err != nil {
		return err
	}
	supportID, err := nullableUUIDBytes(event.SupportContactID)
	if err != nil {
		return err
	}

	result, err := querier.ExecContext(
		ctx,
		query,
		event.Title,
		event.StartDate,
		event.EndDate,
		supportID,
		event.Location,
		event.Attendees,
		event.Notes,
		event.Active,
		id,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to update event")
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get affected rows")
	}
	if rows == 0 {
		return domain.ErrEventNotFound
	}
	return nil
}

// List returns all events ordered by start date.
func (r *MySQLEventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	query := `SELECT id, title, contract_id, start_date, end_date, support_contact_id, location, attendees, notes, active, created_at, updated_at
			  FROM events ORDER BY start_date`
	return r.list(ctx, query)
}

// ListUnassigned returns events with no support contact yet.
func (r *MySQLEventRepository) ListUnassigned(ctx context.Context) ([]*domain.Event, error) {
	query := `SELECT id, title, contract_id, start_date, end_date, support_contact_id, location, attendees, notes, active, created_at, updated_at
			  FROM events WHERE support_contact_id IS NULL ORDER BY start_date`
	return r.list(ctx, query)
}

// ListBySupportContact returns the events assigned to the given support user.
func (r *MySQLEventRepository) ListBySupportContact(
	ctx context.Context,
	userID uuid.UUID,
) ([]*domain.Event, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, title, contract_id, start_date, end_date, support_contact_id, location, attendees, notes, active, created_at, updated_at
			  FROM events WHERE support_contact_id = ? ORDER BY start_date`

	id, err := uuidBytes(userID)
	if err != nil {
		return nil, err
	}

	rows, err := querier.QueryContext(ctx, query, id)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list events")
	}
	defer rows.Close()

	return scanMySQLEvents(rows)
}

func (r *MySQLEventRepository) list(ctx context.Context, query string) ([]*domain.Event, error) {
	querier := database.GetTx(ctx, r.db)

	rows, err := querier.QueryContext(ctx, query)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list events")
	}
	defer rows.Close()

	return scanMySQLEvents(rows)
}

func scanMySQLEvents(rows *sql.Rows) ([]*domain.Event, error) {
	var events []*domain.Event
	for rows.Next() {
		var event domain.Event
		var idBytes, contractIDBytes, supportIDBytes []byte
		err := rows.Scan(
			&idBytes,
			&event.Title,
			&contractIDBytes,
			&event.StartDate,
			&event.EndDate,
			&supportIDBytes,
			&event.Location,
			&event.Attendees,
			&event.Notes,
			&event.Active,
			&event.CreatedAt,
			&event.UpdatedAt,
		)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan event")
		}
		if err := scanUUID(idBytes, &event.ID); err != nil {
			return nil, err
		}
		if err := scanUUID(contractIDBytes, &event.ContractID); err != nil {
			return nil, err
		}
		if err := scanNullableUUID(supportIDBytes, &event.SupportContactID); err != nil {
			return nil, err
		}
		events = append(events, &event)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate events")
	}

	return events, nil
}
