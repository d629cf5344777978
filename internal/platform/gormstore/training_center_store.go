package gormstore

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/athlete-api/internal/domain"
	"github.com/phrazzld/athlete-api/internal/platform/logger"
	"github.com/phrazzld/athlete-api/internal/store"
	"gorm.io/gorm"
)

// TrainingCenterStore implements store.TrainingCenterStore on top of gorm.
type TrainingCenterStore struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewTrainingCenterStore creates a TrainingCenterStore using db.
// If logger is nil, a default logger will be used.
func NewTrainingCenterStore(db *gorm.DB, logger *slog.Logger) *TrainingCenterStore {
	if db == nil {
		// ALLOW-PANIC: constructor misuse
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &TrainingCenterStore{
		db:     db,
		logger: logger.With(slog.String("component", "training_center_store")),
	}
}

var _ store.TrainingCenterStore = (*TrainingCenterStore)(nil)

// Create implements store.TrainingCenterStore.Create.
func (s *TrainingCenterStore) Create(ctx context.Context, center *domain.TrainingCenter) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	row := trainingCenterRow(center)
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		log.Error("failed to create training center",
			slog.String("error", err.Error()),
			slog.String("training_center_id", center.ID.String()))
		return persistenceError("training center", "create", err)
	}

	log.Info("training center created",
		slog.String("training_center_id", center.ID.String()),
		slog.String("name", center.Name))
	return nil
}

// GetByID implements store.TrainingCenterStore.GetByID.
func (s *TrainingCenterStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.TrainingCenter, error) {
	row, found, err := findOneBy[trainingCenterModel](ctx, s.db, columnID, id)
	if err != nil {
		return nil, MapError(err)
	}
	if !found {
		return nil, store.ErrTrainingCenterNotFound
	}
	return toTrainingCenter(row), nil
}

// List implements store.TrainingCenterStore.List.
func (s *TrainingCenterStore) List(ctx context.Context) ([]*domain.TrainingCenter, error) {
	rows, err := listAll[trainingCenterModel](ctx, s.db)
	if err != nil {
		return nil, MapError(err)
	}

	centers := make([]*domain.TrainingCenter, 0, len(rows))
	for i := range rows {
		centers = append(centers, toTrainingCenter(&rows[i]))
	}
	return centers, nil
}

// FindByName implements store.TrainingCenterStore.FindByName.
func (s *TrainingCenterStore) FindByName(
	ctx context.Context,
	name string,
) (*store.Ref[domain.TrainingCenter], bool, error) {
	row, found, err := findOneBy[trainingCenterModel](ctx, s.db, columnName, name)
	if err != nil || !found {
		return nil, false, MapError(err)
	}
	return &store.Ref[domain.TrainingCenter]{PK: row.PK, Entity: toTrainingCenter(row)}, true, nil
}

// WithTx implements store.TrainingCenterStore.WithTx.
func (s *TrainingCenterStore) WithTx(tx *gorm.DB) store.TrainingCenterStore {
	return &TrainingCenterStore{db: tx, logger: s.logger}
}
