package testdb

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/phrazzld/athlete-api/internal/config"
	"github.com/phrazzld/athlete-api/internal/platform/gormstore"
	"github.com/phrazzld/athlete-api/internal/platform/migrations"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// TestTimeout bounds database setup in tests.
const TestTimeout = 10 * time.Second

// Config returns a database configuration pointing at a new SQLite file in
// the test's temporary directory.
func Config(t *testing.T) config.DatabaseConfig {
	t.Helper()
	return config.DatabaseConfig{
		URL: "sqlite://" + filepath.Join(t.TempDir(), "athletes.db"),
	}
}

// Open returns a migrated database that is closed when the test finishes.
func Open(t *testing.T) *gorm.DB {
	t.Helper()
	return OpenWithConfig(t, Config(t))
}

// OpenWithConfig opens and migrates the database described by cfg.
func OpenWithConfig(t *testing.T, cfg config.DatabaseConfig) *gorm.DB {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
	defer cancel()

	log := DiscardLogger()

	db, err := gormstore.Open(ctx, cfg, log)
	require.NoError(t, err, "failed to open test database")
	t.Cleanup(func() {
		if err := gormstore.Close(db); err != nil {
			t.Logf("Warning: failed to close test database: %v", err)
		}
	})

	backend, err := cfg.Backend()
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	if backend == config.BackendPostgres {
		// A shared server keeps rows between runs.
		require.NoError(t, migrations.Run(ctx, sqlDB, backend, migrations.CommandReset, log),
			"failed to reset test database")
	}
	require.NoError(t, migrations.Run(ctx, sqlDB, backend, migrations.CommandUp, log),
		"failed to migrate test database")

	return db
}

// DiscardLogger returns a logger that drops everything.
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
