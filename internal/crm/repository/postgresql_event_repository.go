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

// PostgreSQLEventRepository handles event persistence for PostgreSQL.
type PostgreSQLEventRepository struct {
	db *sql.DB
}

// NewPostgreSQLEventRepository creates a new PostgreSQLEventRepository.
func NewPostgreSQLEventRepository(db *sql.DB) *PostgreSQLEventRepository {
	return &PostgreSQLEventRepository{
		db: db,
	}
}

// Create inserts a new event.
func (r *PostgreSQLEventRepository) Create(ctx context.Context, event *domain.Event) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO events (id, title, contract_id, start_date, end_date, support_contact_id, location, attendees, notes, active, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW())`

	_, err := querier.ExecContext(
		ctx,
		query,
		event.ID,
		event.Title,
		event.ContractID,
		event.StartDate,
		event.EndDate,
		event.SupportContactID,
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
func (r *PostgreSQLEventRepository) Get(ctx context.Context, eventID uuid.UUID) (*domain.Event, error) {
	var event domain.Event
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, title, contract_id, start_date, end_date, support_contact_id, location, attendees, notes, active, created_at, updated_at
			  FROM events WHERE id = $1`

	err := querier.QueryRowContext(ctx, query, eventID).Scan(
		&event.ID,
		&event.Title,
		&event.ContractID,
		&event.StartDate,
		&event.EndDate,
		&event.SupportContactID,
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

	return &event, nil
}

// Update overwrites the mutable fields of an event.
func (r *PostgreSQLEventRepository) Update(ctx context.Context, event *domain.Event) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE events
			  SET title = $1, start_date = $2, end_date = $3, support_contact_id = $4, location = $5, attendees = $6, notes = $7, active = $8, updated_at = NOW()
			  WHERE id = $9`

	result, err := querier.ExecContext(
		ctx,
		query,
		event.Title,
		event.StartDate,
		event.EndDate,
		event.SupportContactID,
		event.Location,
		event.Attendees,
		event.Notes,
		event.Active,
		event.ID,
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
func (r *PostgreSQLEventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	query := `SELECT id, title, contract_id, start_date, end_date, support_contact_id, location, attendees, notes, active, created_at, updated_at
			  FROM events ORDER BY start_date`
	return r.list(ctx, query)
}

// ListUnassigned returns events with no support contact yet.
func (r *PostgreSQLEventRepository) ListUnassigned(ctx context.Context) ([]*domain.Event, error) {
	query := `SELECT id, title, contract_id, start_date, end_date, support_contact_id, location, attendees, notes, active, created_at, updated_at
			  FROM events WHERE support_contact_id IS NULL ORDER BY start_date`
	return r.list(ctx, query)
}

// ListBySupportContact returns the events assigned to the given support user.
func (r *PostgreSQLEventRepository) ListBySupportContact(
	ctx context.Context,
	userID uuid.UUID,
) ([]*domain.Event, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, title, contract_id, start_date, end_date, support_contact_id, location, attendees, notes, active, created_at, updated_at
			  FROM events WHERE support_contact_id = $1 ORDER BY start_date`

	rows, err := querier.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list events")
	}
	defer rows.Close()

	return scanEvents(rows)
}

func (r *PostgreSQLEventRepository) list(ctx context.Context, query string) ([]*domain.Event, error) {
	querier := database.GetTx(ctx, r.db)

	rows, err := querier.QueryContext(ctx, query)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list events")
	}
	defer rows.Close()

	return scanEvents(rows)
}

func scanEvents(rows *sql.Rows) ([]*domain.Event, error) {
	var events []*domain.Event
	for rows.Next() {
		var event domain.Event
		err := rows.Scan(
			&event.ID,
			&event.Title,
			&event.ContractID,
			&event.StartDate,
			&event.EndDate,
			&event.SupportContactID,
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
		events = append(events, &event)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate events")
	}

	return events, nil
}
