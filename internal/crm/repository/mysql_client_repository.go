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

// MySQLClientRepository handles client persistence for MySQL.
type MySQLClientRepository struct {
	db *sql.DB
}

// NewMySQLClientRepository creates a new MySQLClientRepository.
func NewMySQLClientRepository(db *sql.DB) *MySQLClientRepository {
	return &MySQLClientRepository{
		db: db,
	}
}

// Create inserts a new client.
func (r *MySQLClientRepository) Create(ctx context.Context, client *domain.Client) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO clients (id, first_name, last_name, email, telephone, enterprise, commercial_contact_id, active, created_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?, NOW())`

	id, err := uuidBytes(client.ID)
	if err != nil {
		return err
	}
	contactID, err := uuidBytes(client.CommercialContactID)
	if err != nil {
		return err
	}

	_, err = querier.ExecContext(
		ctx,
		query,
		id,
		client.FirstName,
		client.LastName,
		client.Email,
		client.Telephone,
		client.Enterprise,
		contactID,
		client.Active,
	)
	if err != nil {
		if isMySQLUniqueViolation(err) {
			return domain.ErrClientAlreadyExists
		}
		return apperrors.Wrap(err, "failed to create client")
	}
	return nil
}

// Get retrieves a client by ID.
func (r *MySQLClientRepository) Get(ctx context.Context, clientID uuid.UUID) (*domain.Client, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, first_name, last_name, email, telephone, enterprise, commercial_contact_id, active, created_at, updated_at
			  FROM clients WHERE id = ?`

	id, err := uuidBytes(clientID)
	if err != nil {
		return nil, err
	}

	var client domain.Client
	var idBytes, contactIDBytes []byte
	err = querier.QueryRowContext(ctx, query, id).Scan(
		&idBytes,
		&client.FirstName,
		&client.LastName,
		&client.Email,
		&client.Telephone,
		&client.Enterprise,
		&contactIDBytes,
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

	if err := scanUUID(idBytes, &client.ID); err != nil {
		return nil, err
	}
	if err := scanUUID(contactIDBytes, &client.CommercialContactID); err != nil {
		return nil, err
	}

	return &client, nil
}

// Update overwrites the mutable fields of a client.
func (r *MySQLClientRepository) Update(ctx context.Context, client *domain.Client) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE clients
			  SET first_name = ?, last_name = ?, email = ?, telephone = ?, enterprise = ?, commercial_contact_id = ?, active = ?, updated_at = NOW()
			  WHERE id = ?`

	id, err := uuidBytes(client.ID)
	if err != nil {
		return err
	}
	contactID, err := uuidBytes(client.CommercialContactID)
	if err != nil {
		return err
	}

	result, err := querier.ExecContext(
		ctx,
		query,
		client.FirstName,
		client.LastName,
		client.Email,
		client.Telephone,
		client.Enterprise,
		contactID,
		client.Active,
		id,
	)
	if err != nil {
		if isMySQLUniqueViolation(err) {
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
func (r *MySQLClientRepository) List(ctx context.Context) ([]*domain.Client, error) {
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
		var idBytes, contactIDBytes []byte
		err := rows.Scan(
			&idBytes,
			&client.FirstName,
			&client.LastName,
			&client.Email,
			&client.Telephone,
			&client.Enterprise,
			&contactIDBytes,
			&client.Active,
			&client.CreatedAt,
			&client.UpdatedAt,
		)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan client")
		}
		if err := scanUUID(idBytes, &client.ID); err != nil {
			return nil, err
		}
		if err := scanUUID(contactIDBytes, &client.CommercialContactID); err != nil {
			return nil, err
		}
		clients = append(clients, &client)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate clients")
	}

	return clients, nil
}
