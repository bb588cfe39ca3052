package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/epicevents/crm/internal/crm/domain"
)

func clientColumns() []string {
	return []string{
		"id", "first_name", "last_name", "email", "telephone", "enterprise",
		"commercial_contact_id", "active", "created_at", "updated_at",
	}
}

func TestPostgreSQLClientRepository_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPostgreSQLClientRepository(db)

		client := &domain.Client{
			ID:                  uuid.Must(uuid.NewV7()),
			FirstName:           "Kevin",
			LastName:            "Casey",
			Email:               "kevin@startup.io",
			Telephone:           "+678 123 456 78",
			Enterprise:          "Cool Startup LLC",
			CommercialContactID: uuid.Must(uuid.NewV7()),
			Active:              true,
		}

		mock.ExpectExec(`(?s)INSERT INTO clients .+`).
			WithArgs(
				client.ID, client.FirstName, client.LastName, client.Email,
				client.Telephone, client.Enterprise, client.CommercialContactID, client.Active,
			).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Create(context.Background(), client))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate email", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPostgreSQLClientRepository(db)

		mock.ExpectExec(`(?s)INSERT INTO clients .+`).
			WillReturnError(errors.New(`pq: duplicate key value violates unique constraint "clients_email_key"`))

		err := repo.Create(context.Background(), &domain.Client{ID: uuid.Must(uuid.NewV7())})
		assert.ErrorIs(t, err, domain.ErrClientAlreadyExists)
	})
}

func TestPostgreSQLClientRepository_Get(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPostgreSQLClientRepository(db)

		clientID := uuid.Must(uuid.NewV7())
		contactID := uuid.Must(uuid.NewV7())

		mock.ExpectQuery(`(?s)SELECT .+ FROM clients WHERE id = \$1`).
			WithArgs(clientID).
			WillReturnRows(sqlmock.NewRows(clientColumns()).AddRow(
				clientID, "Kevin", "Casey", "kevin@startup.io", "+678 123 456 78",
				"Cool Startup LLC", contactID, true, time.Now(), nil,
			))

		client, err := repo.Get(context.Background(), clientID)
		require.NoError(t, err)

		assert.Equal(t, clientID, client.ID)
		assert.Equal(t, "Cool Startup LLC", client.Enterprise)
		assert.Equal(t, contactID, client.CommercialContactID)
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPostgreSQLClientRepository(db)

		mock.ExpectQuery(`(?s)SELECT .+ FROM clients WHERE id = \$1`).
			WillReturnError(sql.ErrNoRows)

		client, err := repo.Get(context.Background(), uuid.Must(uuid.NewV7()))
		assert.Nil(t, client)
		assert.ErrorIs(t, err, domain.ErrClientNotFound)
	})
}

func TestPostgreSQLClientRepository_Update(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPostgreSQLClientRepository(db)

		mock.ExpectExec(`(?s)UPDATE clients.+WHERE id = \$8`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Update(context.Background(), &domain.Client{ID: uuid.Must(uuid.NewV7())})
		assert.ErrorIs(t, err, domain.ErrClientNotFound)
	})
}

func TestPostgreSQLClientRepository_List(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgreSQLClientRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows(clientColumns()).
		AddRow(uuid.Must(uuid.NewV7()), "A", "One", "a@one.com", "1", "Acme", uuid.Must(uuid.NewV7()), true, now, nil).
		AddRow(uuid.Must(uuid.NewV7()), "B", "Two", "b@two.com", "2", "Beta", uuid.Must(uuid.NewV7()), true, now, nil)

	mock.ExpectQuery(`(?s)SELECT .+ FROM clients ORDER BY enterprise`).
		WillReturnRows(rows)

	clients, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, clients, 2)
	assert.Equal(t, "Acme", clients[0].Enterprise)
	assert.Equal(t, "Beta", clients[1].Enterprise)
}
