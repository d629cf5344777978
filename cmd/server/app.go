package main

import (
	"context"
	"fmt"
	"log/slog"

	apiMiddleware "github.com/phrazzld/athlete-api/internal/api/middleware"
	"github.com/phrazzld/athlete-api/internal/config"
	"github.com/phrazzld/athlete-api/internal/platform/gormstore"
	"github.com/phrazzld/athlete-api/internal/service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"gorm.io/gorm"
)

// dbStatsName labels the connection pool metrics.
const dbStatsName = "athletes"

// application holds all the shared application dependencies to simplify management.
type application struct {
	// Configuration
	config *config.Config

	// Core services
	logger *slog.Logger
	db     *gorm.DB

	// Observability
	registry *prometheus.Registry
	metrics  *apiMiddleware.Metrics

	// Service interfaces
	athleteService        service.AthleteService
	categoryService       service.CategoryService
	trainingCenterService service.TrainingCenterService
}

// newApplication creates a new application instance with all dependencies initialized.
// The database connection must already be established and migrated.
func newApplication(cfg *config.Config, logger *slog.Logger, db *gorm.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	// Initialize stores
	categoryStore := gormstore.NewCategoryStore(db, logger)
	trainingCenterStore := gormstore.NewTrainingCenterStore(db, logger)
	athleteStore := gormstore.NewAthleteStore(db, logger)

	var err error
	app.categoryService, err = service.NewCategoryService(categoryStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create category service: %w", err)
	}

	app.trainingCenterService, err = service.NewTrainingCenterService(trainingCenterStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create training center service: %w", err)
	}

	app.athleteService, err = service.NewAthleteService(
		db,
		athleteStore,
		categoryStore,
		trainingCenterStore,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create athlete service: %w", err)
	}

	app.registry, err = newRegistry(db)
	if err != nil {
		return nil, err
	}
	app.metrics = apiMiddleware.NewMetrics(app.registry)

	logger.Info("Application initialized successfully")
	return app, nil
}

// newRegistry returns a Prometheus registry with runtime, process and
// connection pool collectors.
func newRegistry(db *gorm.DB) (*prometheus.Registry, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database handle: %w", err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewDBStatsCollector(sqlDB, dbStatsName),
	)
	return reg, nil
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}
