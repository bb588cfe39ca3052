package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	authDomain "github.com/epicevents/crm/internal/auth/domain"
	"github.com/epicevents/crm/internal/crm/domain"
	"github.com/epicevents/crm/internal/database"

	apperrors "github.com/epicevents/crm/internal/errors"
)

// PostgreSQLTeamRepository handles team persistence for PostgreSQL.
type PostgreSQLTeamRepository struct {
	db *sql.DB
}

// NewPostgreSQLTeamRepository creates a new PostgreSQLTeamRepository.
func NewPostgreSQLTeamRepository(db *sql.DB) *PostgreSQLTeamRepository {
	return &PostgreSQLTeamRepository{
		db: db,
	}
}

// Get retrieves a team by ID.
func (r *PostgreSQLTeamRepository) Get(ctx context.Context, teamID uuid.UUID) (*domain.Team, error) {
	var team domain.Team
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, name, role, active FROM teams WHERE id = $1`

	err := querier.QueryRowContext(ctx, query, teamID).Scan(
		&team.ID,
		&team.Name,
		&team.Role,
		&team.Active,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTeamNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get team by id")
	}

	return &team, nil
}

// GetByRole retrieves the team carrying the given role.
func (r *PostgreSQLTeamRepository) GetByRole(ctx context.Context, role authDomain.Role) (*domain.Team, error) {
	var team domain.Team
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, name, role, active FROM teams WHERE role = $1`

	err := querier.QueryRowContext(ctx, query, role).Scan(
		&team.ID,
		&team.Name,
		&team.Role,
		&team.Active,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTeamNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get team by role")
	}

	return &team, nil
}
