// Package main implements the entry point for the athlete API server, which
// registers CrossFit athletes together with the categories and training
// centers they belong to.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/phrazzld/athlete-api/internal/config"
	"github.com/phrazzld/athlete-api/internal/platform/gormstore"
	"github.com/phrazzld/athlete-api/internal/platform/logger"
	"github.com/phrazzld/athlete-api/internal/platform/migrations"
)

func main() {
	migrateCmd := flag.String("migrate", "",
		"run a migration command (up, down, reset, status, version) and exit")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, *migrateCmd); err != nil {
		slog.Error("athlete API exited with error", "error", err)
		os.Exit(1)
	}
}

// run loads configuration, connects to the database and then either runs the
// requested migration command or serves HTTP until ctx is cancelled.
func run(ctx context.Context, migrateCmd string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	log.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"migrate_on_start", cfg.Database.MigrateOnStart)

	db, err := gormstore.Open(ctx, cfg.Database, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := gormstore.Close(db); err != nil {
			log.Error("Error closing database connection", "error", err)
		}
	}()

	if migrateCmd != "" {
		return handleMigrations(ctx, cfg.Database, db, migrateCmd, log)
	}

	if cfg.Database.MigrateOnStart {
		if err := handleMigrations(ctx, cfg.Database, db, migrations.CommandUp, log); err != nil {
			return err
		}
	}

	app, err := newApplication(cfg, log, db)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.Run(ctx)
}
