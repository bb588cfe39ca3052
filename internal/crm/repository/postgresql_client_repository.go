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

// PostgreSQLClientRepository handles client persistence for PostgreSQL.
type PostgreSQLClientRepository struct {
	db *sql.DB
}

// NewPostgreSQLClientRepository creates a new PostgreSQLClientRepository.
func NewPostgreSQLClientRepository(db *sql.DB) *PostgreSQLClientRepository {
	return &PostgreSQLClientRepository{
		db: db,
	}
}

// Create inserts a new client.
func (r *PostgreSQLClientRepository) Create(ctx context.Context, client *domain.Client) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO clients (id, first_name, last_name, email, telephone, enterprise, commercial_contact_id, active, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())`

	_, err := querier.ExecContext(
		ctx,
		query,
		client.ID,
		client.FirstName,
		client.LastName,
		client.Email,
		client.Telephone,
		client.Enterprise,
		client.CommercialContactID,
		client.Active,
	)
	if err != nil {
		if isPostgreSQLUniqueViolation(err) {
			return domain.ErrClientAlreadyExists
		}
		return apperrors.Wrap(err, "failed to create client")
	}
	return nil
}

// Get retrieves a client by ID.
func (r *PostgreSQLClientRepository) Get(ctx context.Context, clientID uuid.UUID) (*domain.Client, error) {
	var client domain.Client
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, first_name, last_name, email, telephone, enterprise, commercial_contact_id, active, created_at, updated_at
			  FROM clients WHERE id = $1`

	err := querier.QueryRowContext(ctx, query, clientID).Scan(
		&client.ID,
		&client.FirstName,
		&client.LastName,
		&client.Email,
		&client.Telephone,
		&client.Enterprise,
		&client.CommercialContactID,
		&client.Active,
		&client.CreatedAt,
		&client.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrClientNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get client by id")
	}

	return &client, nil
}

// Update overwrites the mutable fields of a client.
func (r *PostgreSQLClientRepository) Update(ctx context.Context, client *domain.Client) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE clients
			  SET first_name = $1, last_name = $2, email = $3, telephone = $4, enterprise = $5, commercial_contact_id = $6, active = $7, updated_at = NOW()
			  WHERE id = $8`

	result, err := querier.ExecContext(
		ctx,
		query,
		client.FirstName,
		client.LastName,
		client.Email,
		client.Telephone,
		client.Enterprise,
		client.CommercialContactID,
		client.Active,
		client.ID,
	)
	if err != nil {
		if isPostgreSQLUniqueViolation(err) {
			return domain.ErrClientAlreadyExists
		}
		return apperrors.Wrap(err, "failed to update client")
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get affected rows")
	}
	if rows == 0 {
		return domain.ErrClientNotFound
	}
	return nil
}

// List returns all clients ordered by enterprise name.
func (r *PostgreSQLClientRepository) List(ctx context.Context) ([]*domain.Client, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, first_name, last_name, email, telephone, enterprise, commercial_contact_id, active, created_at, updated_at
			  FROM clients ORDER BY enterprise, last_name`

	rows, err := querier.QueryContext(ctx, query)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list clients")
	}
	defer rows.Close()

	var clients []*domain.Client
	for rows.Next() {
		var client domain.Client
		err := rows.Scan(
			&client.ID,
			&client.FirstName,
			&client.LastName,
			&client.Email,
			&client.Telephone,
			&client.Enterprise,
			&client.CommercialContactID,
			&client.Active,
			&client.CreatedAt,
			&client.UpdatedAt,
		)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan client")
		}
		clients = append(clients, &client)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate clients")
	}

	return clients, nil
}
