package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/athlete-api/internal/config"
	"github.com/phrazzld/athlete-api/internal/platform/migrations"
	"gorm.io/gorm"
)

// handleMigrations runs a goose command against the database behind db.
func handleMigrations(
	ctx context.Context,
	cfg config.DatabaseConfig,
	db *gorm.DB,
	command string,
	log *slog.Logger,
) error {
	backend, err := cfg.Backend()
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database handle: %w", err)
	}

	log.Info("Executing migrations", "command", command, "backend", backend)
	if err := migrations.Run(ctx, sqlDB, backend, command, log); err != nil {
		return fmt.Errorf("migration %s failed: %w", command, err)
	}
	return nil
}
