package gormstore

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	sloggorm "github.com/orandin/slog-gorm"
	"github.com/phrazzld/athlete-api/internal/config"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// pingTimeout bounds the connectivity check performed by Open.
const pingTimeout = 5 * time.Second

// Open connects to the database selected by cfg.URL and configures the pool.
// SQLite databases are opened with foreign keys enforced and a single
// connection, since SQLite serializes writers anyway.
func Open(ctx context.Context, cfg config.DatabaseConfig, log *slog.Logger) (*gorm.DB, error) {
	if log == nil {
		log = slog.Default()
	}

	backend, err := cfg.Backend()
	if err != nil {
		return nil, err
	}

	dialector, err := newDialector(backend, cfg)
	if err != nil {
		return nil, err
	}

	gormOpts := []sloggorm.Option{sloggorm.WithHandler(log.Handler())}
	if cfg.LogQueries {
		gormOpts = append(gormOpts, sloggorm.WithTraceAll())
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: sloggorm.New(gormOpts...),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", backend, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access connection pool: %w", err)
	}

	if backend == config.BackendSQLite {
		sqlDB.SetMaxOpenConns(1)
	} else {
		if cfg.MaxOpenConns > 0 {
			sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
		}
		if cfg.MaxIdleConns > 0 {
			sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
		}
	}
	if lifetime := cfg.ConnMaxLifetime(); lifetime > 0 {
		sqlDB.SetConnMaxLifetime(lifetime)
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := sqlDB.PingContext(pingCtx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Info("database connection established", slog.String("backend", backend))
	return db, nil
}

// Close releases the connection pool behind db.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func newDialector(backend string, cfg config.DatabaseConfig) (gorm.Dialector, error) {
	switch backend {
	case config.BackendPostgres:
		return postgres.Open(cfg.URL), nil
	case config.BackendSQLite:
		path, err := cfg.SQLitePath()
		if err != nil {
			return nil, err
		}
		return sqlite.Open(sqliteDSN(path)), nil
	default:
		return nil, fmt.Errorf("unsupported database backend %q", backend)
	}
}

func sqliteDSN(path string) string {
	return "file:" + path + "?_foreign_keys=on&_busy_timeout=5000"
}
