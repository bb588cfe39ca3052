package session

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	authDomain "github.com/epicevents/crm/internal/auth/domain"
	apperrors "github.com/epicevents/crm/internal/errors"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestFileStore(t *testing.T) {
	t.Run("load without a saved session returns not found", func(t *testing.T) {
		store := NewFileStore(filepath.Join(t.TempDir(), "session.json"))

		session, err := store.Load()
		assert.Nil(t, session)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("save then load round-trips the pair", func(t *testing.T) {
		store := NewFileStore(filepath.Join(t.TempDir(), "session.json"))

		err := store.Save(&authDomain.Session{Access: "access-token", Refresh: "refresh-token"})
		require.NoError(t, err)

		session, err := store.Load()
		require.NoError(t, err)
		assert.Equal(t, "access-token", session.Access)
		assert.Equal(t, "refresh-token", session.Refresh)
	})

	t.Run("save overwrites the previous session", func(t *testing.T) {
		store := NewFileStore(filepath.Join(t.TempDir(), "session.json"))

		require.NoError(t, store.Save(&authDomain.Session{Access: "old-access", Refresh: "old-refresh"}))
		require.NoError(t, store.Save(&authDomain.Session{Access: "new-access", Refresh: "new-refresh"}))

		session, err := store.Load()
		require.NoError(t, err)
		assert.Equal(t, "new-access", session.Access)
		assert.Equal(t, "new-refresh", session.Refresh)
	})

	t.Run("save creates missing parent directories", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "dir", "session.json")
		store := NewFileStore(path)

		require.NoError(t, store.Save(&authDomain.Session{Access: "a", Refresh: "r"}))

		_, err := os.Stat(path)
		assert.NoError(t, err)
	})

	t.Run("session file is private to the owner", func(t *testing.T) {
		if runtime.GOOS == "windows" {
			t.Skip("file modes are not meaningful on windows")
		}
		path := filepath.Join(t.TempDir(), "session.json")
		store := NewFileStore(path)

		require.NoError(t, store.Save(&authDomain.Session{Access: "a", Refresh: "r"}))

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
	})

	t.Run("load with a corrupted file returns an error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "session.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))
		store := NewFileStore(path)

		session, err := store.Load()
		assert.Nil(t, session)
		assert.Error(t, err)
	})

	t.Run("clear removes the session", func(t *testing.T) {
		store := NewFileStore(filepath.Join(t.TempDir(), "session.json"))
		require.NoError(t, store.Save(&authDomain.Session{Access: "a", Refresh: "r"}))

		require.NoError(t, store.Clear())

		_, err := store.Load()
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("clear without a session is a no-op", func(t *testing.T) {
		store := NewFileStore(filepath.Join(t.TempDir(), "session.json"))
		assert.NoError(t, store.Clear())
	})
}
