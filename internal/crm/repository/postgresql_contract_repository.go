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

// PostgreSQLContractRepository handles contract persistence for PostgreSQL.
type PostgreSQLContractRepository struct {
	db *sql.DB
}

// NewPostgreSQLContractRepository creates a new PostgreSQLContractRepository.
func NewPostgreSQLContractRepository(db *sql.DB) *PostgreSQLContractRepository {
	return &PostgreSQLContractRepository{
		db: db,
	}
}

// Create inserts a new contract.
func (r *PostgreSQLContractRepository) Create(ctx context.Context, contract *domain.Contract) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO contracts (id, client_id, total_amount, amount_unpaid, status, active, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, NOW())`

	_, err := querier.ExecContext(
		ctx,
		query,
		contract.ID,
		contract.ClientID,
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
func (r *PostgreSQLContractRepository) Get(ctx context.Context, contractID uuid.UUID) (*domain.Contract, error) {
	var contract domain.Contract
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, client_id, total_amount, amount_unpaid, status, active, created_at, updated_at
			  FROM contracts WHERE id = $1`

	err := querier.QueryRowContext(ctx, query, contractID).Scan(
		&contract.ID,
		&contract.ClientID,
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

	return &contract, nil
}

// Update overwrites the mutable fields of a contract.
func (r *PostgreSQLContractRepository) Update(ctx context.Context, contract *domain.Contract) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE contracts
			  SET total_amount = $1, amount_unpaid = $2, status = $3, active = $4, updated_at = NOW()
			  WHERE id = $5`

	result, err := querier.ExecContext(
		ctx,
		query,
		contract.TotalAmount,
		contract.AmountUnpaid,
		contract.Status,
		contract.Active,
		contract.ID,
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
func (r *PostgreSQLContractRepository) List(ctx context.Context) ([]*domain.Contract, error) {
	query := `SELECT id, client_id, total_amount, amount_unpaid, status, active, created_at, updated_at
			  FROM contracts ORDER BY created_at`
	return r.list(ctx, query)
}

// ListUnsigned returns contracts still waiting for signature.
func (r *PostgreSQLContractRepository) ListUnsigned(ctx context.Context) ([]*domain.Contract, error) {
	query := `SELECT id, client_id, total_amount, amount_unpaid, status, active, created_at, updated_at
			  FROM contracts WHERE status = 'unsigned' ORDER BY created_at`
	return r.list(ctx, query)
}

// ListUnpaid returns contracts with an outstanding amount.
func (r *PostgreSQLContractRepository) ListUnpaid(ctx context.Context) ([]*domain.Contract, error) {
	query := `SELECT id, client_id, total_amount, amount_unpaid, status, active, created_at, updated_at
			  FROM contracts WHERE amount_unpaid > 0 ORDER BY created_at`
	return r.list(ctx, query)
}

func (r *PostgreSQLContractRepository) list(ctx context.Context, query string) ([]*domain.Contract, error) {
	querier := database.GetTx(ctx, r.db)

	rows, err := querier.QueryContext(ctx, query)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list contracts")
	}
	defer rows.Close()

	var contracts []*domain.Contract
	for rows.Next() {
		var contract domain.Contract
		err := rows.Scan(
			&contract.ID,
			&contract.ClientID,
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
		contracts = append(contracts, &contract)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate contracts")
	}

	return contracts, nil
}
