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

// MySQLContractRepository handles contract persistence for MySQL.
type MySQLContractRepository struct {
	db *sql.DB
}

// NewMySQLContractRepository creates a new MySQLContractRepository.
func NewMySQLContractRepository(db *sql.DB) *MySQLContractRepository {
	return &MySQLContractRepository{
		db: db,
	}
}

// Create inserts a new contract.
func (r *MySQLContractRepository) Create(ctx context.Context, contract *domain.Contract) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO contracts (id, client_id, total_amount, amount_unpaid, status, active, created_at)
			  VALUES (?, ?, ?, ?, ?, ?, NOW())`

	id, err := uuidBytes(contract.ID)
	if err != nil {
		return err
	}
	clientID, err := uuidBytes(contract.ClientID)
	if err != nil {
		return err
	}

	_, err = querier.ExecContext(
		ctx,
		query,
		id,
		clientID,
		contract.TotalAmount,
		contract.AmountUnpaid,
		contract.Status,
		contract.Active,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create contract")
	}
	return nil
}

// Get retrieves a contract by ID.
func (r *MySQLContractRepository) Get(ctx context.Context, contractID uuid.UUID) (*domain.Contract, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, client_id, total_amount, amount_unpaid, status, active, created_at, updated_at
			  FROM contracts WHERE id = ?`

	id, err := uuidBytes(contractID)
	if err != nil {
		return nil, err
	}

	var contract domain.Contract
	var idBytes, clientIDBytes []byte
	err = querier.QueryRowContext(ctx, query, id).Scan(
		&idBytes,
		&clientIDBytes,
		&contract.TotalAmount,
		&contract.AmountUnpaid,
		&contract.Status,
		&contract.Active,
		&contract.CreatedAt,
		&contract.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrContractNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get contract by id")
	}

	if err := scanUUID(idBytes, &contract.ID); err != nil {
		return nil, err
	}
	if err := scanUUID(clientIDBytes, &contract.ClientID); err != nil {
		return nil, err
	}

	return &contract, nil
}

// Update overwrites the mutable fields of a contract.
func (r *MySQLContractRepository) Update(ctx context.Context, contract *domain.Contract) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE contracts
			  SET total_amount = ?, amount_unpaid = ?, status = ?, active = ?, updated_at = NOW()
			  WHERE id = ?`

	id, err := uuidBytes(contract.ID)
	if err != nil {
		return err
	}

	result, err := querier.ExecContext(
		ctx,
		query,
		contract.TotalAmount,
		contract.AmountUnpaid,
		contract.Status,
		contract.Active,
		id,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to update contract")
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get affected rows")
	}
	if rows == 0 {
		return domain.ErrContractNotFound
	}
	return nil
}

// List returns all contracts ordered by creation date.
func (r *MySQLContractRepository) List(ctx context.Context) ([]*domain.Contract, error) {
	query := `SELECT id, client_id, total_amount, amount_unpaid, status, active, created_at, updated_at
			  FROM contracts ORDER BY created_at`
	return r.list(ctx, query)
}

// ListUnsigned returns contracts still waiting for signature.
func (r *MySQLContractRepository) ListUnsigned(ctx context.Context) ([]*domain.Contract, error) {
	query := `SELECT id, client_id, total_amount, amount_unpaid, status, active, created_at, updated_at
			  FROM contracts WHERE status = 'unsigned' ORDER BY created_at`
	return r.list(ctx, query)
}

// ListUnpaid returns contracts with an outstanding amount.
func (r *MySQLContractRepository) ListUnpaid(ctx context.Context) ([]*domain.Contract, error) {
	query := `SELECT id, client_id, total_amount, amount_unpaid, status, active, created_at, updated_at
			  FROM contracts WHERE amount_unpaid > 0 ORDER BY created_at`
	return r.list(ctx, query)
}

func (r *MySQLContractRepository) list(ctx context.Context, query string) ([]*domain.Contract, error) {
	querier := database.GetTx(ctx, r.db)

	rows, err := querier.QueryContext(ctx, query)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list contracts")
	}
	defer rows.Close()

	var contracts []*domain.Contract
	for rows.Next() {
		var contract domain.Contract
		var idBytes, clientIDBytes []byte
		err := rows.Scan(
			&idBytes,
			&clientIDBytes,
			&contract.TotalAmount,
			&contract.AmountUnpaid,
			&contract.Status,
			&contract.Active,
			&contract.CreatedAt,
			&contract.UpdatedAt,
		)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan contract")
		}
		if err := scanUUID(idBytes, &contract.ID); err != nil {
			return nil, err
		}
		if err := scanUUID(clientIDBytes, &contract.ClientID); err != nil {
			return nil, err
		}
		contracts = append(contracts, &contract)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate contracts")
	}

	return contracts, nil
}
