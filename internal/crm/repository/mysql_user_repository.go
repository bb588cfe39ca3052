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

// MySQLUserRepository handles user persistence for MySQL.
type MySQLUserRepository struct {
	db *sql.DB
}

// NewMySQLUserRepository creates a new MySQLUserRepository.
func NewMySQLUserRepository(db *sql.DB) *MySQLUserRepository {
	return &MySQLUserRepository{
		db: db,
	}
}

// Create inserts a new user.
func (r *MySQLUserRepository) Create(ctx context.Context, user *domain.User) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO users (id, employee_number, first_name, last_name, email, password_hash, active, team_id, created_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?, NOW())`

	id, err := uuidBytes(user.ID)
	if err != nil {
		return err
	}
	teamID, err := nullableUUIDBytes(user.TeamID)
	if err != nil {
		return err
	}

	_, err = querier.ExecContext(
		ctx,
		query,
		id,
		user.EmployeeNumber,
		user.FirstName,
		user.LastName,
		user.Email,
		user.PasswordHash,
		user.Active,
		teamID,
	)
	if err != nil {
		if isMySQLUniqueViolation(err) {
			return domain.ErrUserAlreadyExists
		}
		return apperrors.Wrap(err, "failed to create user")
	}
	return nil
}

// Get retrieves a user by ID.
func (r *MySQLUserRepository) Get(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, employee_number, first_name, last_name, email, password_hash, active, team_id, created_at, updated_at
			  FROM users WHERE id = ?`

	id, err := uuidBytes(userID)
	if err != nil {
		return nil, err
	}

	return r.scanUser(querier.QueryRowContext(ctx, query, id), "failed to get user by id")
}

// GetByEmail retrieves a user by email.
func (r *MySQLUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, employee_number, first_name, last_name, email, password_hash, active, team_id, created_at, updated_at
			  FROM users WHERE email = ?`

	return r.scanUser(querier.QueryRowContext(ctx, query, email), "failed to get user by email")
}

// GetRole resolves the user's role through the team the user belongs to.
func (r *MySQLUserRepository) GetRole(ctx context.Context, userID uuid.UUID) (authDomain.Role, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT t.role
			  FROM users u LEFT JOIN teams t ON u.team_id = t.id
			  WHERE u.id = ?`

	id, err := uuidBytes(userID)
	if err != nil {
		return "", err
	}

	var role sql.NullString
	err = querier.QueryRowContext(ctx, query, id).Scan(&role)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", domain.ErrUserNotFound
		}
		return "", apperrors.Wrap(err, "failed to get user role")
	}
	if !role.Valid {
		return "", domain.ErrTeamNotFound
	}

	return authDomain.Role(role.String), nil
}

// Update overwrites the mutable fields of a user.
func (r *MySQLUserRepository) Update(ctx context.Context, user *domain.User) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE users
			  SET first_name = ?, last_name = ?, email = ?, active = ?, team_id = ?, updated_at = NOW()
			  WHERE id = ?`

	id, err := uuidBytes(user.ID)
	if err != nil {
		return err
	}
	teamID, err := nullableUUIDBytes(user.TeamID)
	if err != nil {
		return err
	}

	result, err := querier.ExecContext(
		ctx,
		query,
		user.FirstName,
		user.LastName,
		user.Email,
		user.Active,
		teamID,
		id,
	)
	if err != nil {
		if isMySQLUniqueViolation(err) {
			return domain.ErrUserAlreadyExists
		}
		return apperrors.Wrap(err, "failed to update user")
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get affected rows")
	}
	if rows == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// List returns all users ordered by employee number.
func (r *MySQLUserRepository) List(ctx context.Context) ([]*domain.User, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, employee_number, first_name, last_name, email, password_hash, active, team_id, created_at, updated_at
			  FROM users ORDER BY employee_number`

	rows, err := querier.QueryContext(ctx, query)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list users")
	}
	defer rows.Close()

	var users []*domain.User
	for rows.Next() {
		var user domain.User
		var idBytes, teamIDBytes []byte
		err := rows.Scan(
			&idBytes,
			&user.EmployeeNumber,
			&user.FirstName,
			&user.LastName,
			&user.Email,
			&user.PasswordHash,
			&user.Active,
			&teamIDBytes,
			&user.CreatedAt,
			&user.UpdatedAt,
		)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan user")
		}
		if err := scanUUID(idBytes, &user.ID); err != nil {
			return nil, err
		}
		if err := scanNullableUUID(teamIDBytes, &user.TeamID); err != nil {
			return nil, err
		}
		users = append(users, &user)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate users")
	}

	return users, nil
}

func (r *MySQLUserRepository) scanUser(row *sql.Row, wrapMsg string) (*domain.User, error) {
	var user domain.User
	var idBytes, teamIDBytes []byte

	err := row.Scan(
		&idBytes,
		&user.EmployeeNumber,
		&user.FirstName,
		&user.LastName,
		&user.Email,
		&user.PasswordHash,
		&user.Active,
		&teamIDBytes,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, apperrors.Wrap(err, wrapMsg)
	}

	if err := scanUUID(idBytes, &user.ID); err != nil {
		return nil, err
	}
	if err := scanNullableUUID(teamIDBytes, &user.TeamID); err != nil {
		return nil, err
	}

	return &user, nil
}
