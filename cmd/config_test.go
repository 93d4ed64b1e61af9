package cmd_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kleberrossi/Procman/cmd"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("should fall back to defaults without an env file", func(t *testing.T) {
		for _, key := range []string{"DB_PORT", "LOG_LEVEL", "RUN_MIGRATIONS", "RECONCILE_SCHEDULE"} {
			t.Setenv(key, "")
		}

		cfg, err := cmd.LoadConfig(filepath.Join(t.TempDir(), "missing.env"))

		require.NoError(t, err)
		assert.Equal(t, "5432", cfg.DBPort)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.True(t, cfg.RunMigrations)
		assert.Empty(t, cfg.ReconcileSchedule)
	})

	t.Run("should prefer the environment over the env file", func(t *testing.T) {
		envFile := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(envFile,
			[]byte("DB_NAME=fromfile\nDB_HOST=filehost\nRUN_MIGRATIONS=false\n"), 0o600))
		t.Setenv("DB_HOST", "envhost")
		// t.Setenv restores the variables godotenv sets as well.
		t.Setenv("DB_NAME", "")
		t.Setenv("RUN_MIGRATIONS", "")
		require.NoError(t, os.Unsetenv("DB_NAME"))
		require.NoError(t, os.Unsetenv("RUN_MIGRATIONS"))

		cfg, err := cmd.LoadConfig(envFile)

		require.NoError(t, err)
		assert.Equal(t, "envhost", cfg.DBHost)
		assert.Equal(t, "fromfile", cfg.DBName)
		assert.False(t, cfg.RunMigrations)
		assert.Contains(t, cfg.DSN(), "dbname=fromfile")
	})
}
