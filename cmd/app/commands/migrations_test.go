package commands

import (
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunMigrations(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	t.Run("unknown driver scheme", func(t *testing.T) {
		err := RunMigrations(logger, "invalid", "bogus://localhost")
		require.Error(t, err)
		require.Contains(t, err.Error(), "failed to create migrate instance")
	})

	t.Run("malformed connection string", func(t *testing.T) {
		err := RunMigrations(logger, "postgres", "not-a-connection-string")
		require.Error(t, err)
		require.Contains(t, err.Error(), "failed to create migrate instance")
	})

	t.Run("malformed mysql connection string", func(t *testing.T) {
		err := RunMigrations(logger, "mysql", "not-a-connection-string")
		require.Error(t, err)
		require.Contains(t, err.Error(), "failed to create migrate instance")
	})
}
