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

// MySQLTeamRepository handles team persistence for MySQL.
type MySQLTeamRepository struct {
	db *sql.DB
}

// NewMySQLTeamRepository creates a new MySQLTeamRepository.
func NewMySQLTeamRepository(db *sql.DB) *MySQLTeamRepository {
	return &MySQLTeamRepository{
		db: db,
	}
}

// Get retrieves a team by ID.
func (r *MySQLTeamRepository) Get(ctx context.Context, teamID uuid.UUID) (*domain.Team, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, name, role, active FROM teams WHERE id = ?`

	id, err := uuidBytes(teamID)
	if err != nil {
		return nil, err
	}

	return r.scanTeam(querier.QueryRowContext(ctx, query, id), "failed to get team by id")
}

// GetByRole retrieves the team carrying the given role.
func (r *MySQLTeamRepository) GetByRole(ctx context.Context, role authDomain.Role) (*domain.Team, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, name, role, active FROM teams WHERE role = ?`

	return r.scanTeam(querier.QueryRowContext(ctx, query, role), "failed to get team by role")
}

func (r *MySQLTeamRepository) scanTeam(row *sql.Row, wrapMsg string) (*domain.Team, error) {
	var team domain.Team
	var idBytes []byte

	err := row.Scan(&idBytes, &team.Name, &team.Role, &team.Active)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTeamNotFound
		}
		return nil, apperrors.Wrap(err, wrapMsg)
	}

	if err := scanUUID(idBytes, &team.ID); err != nil {
		return nil, err
	}

	return &team, nil
}
