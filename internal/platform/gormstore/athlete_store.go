package gormstore

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/athlete-api/internal/domain"
	"github.com/phrazzld/athlete-api/internal/platform/logger"
	"github.com/phrazzld/athlete-api/internal/store"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var athleteAssociations = []string{"Category", "TrainingCenter"}

// AthleteStore implements store.AthleteStore on top of gorm.
// Reads preload the owning category and training center so the domain
// entity carries their names.
type AthleteStore struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewAthleteStore creates an AthleteStore using db.
// If logger is nil, a default logger will be used.
func NewAthleteStore(db *gorm.DB, logger *slog.Logger) *AthleteStore {
	if db == nil {
		// ALLOW-PANIC: constructor misuse
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &AthleteStore{
		db:     db,
		logger: logger.With(slog.String("component", "athlete_store")),
	}
}

var _ store.AthleteStore = (*AthleteStore)(nil)

// Create implements store.AthleteStore.Create.
func (s *AthleteStore) Create(
	ctx context.Context,
	athlete *domain.Athlete,
	categoryPK, trainingCenterPK int64,
) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	row := athleteRow(athlete, categoryPK, trainingCenterPK)
	if err := s.db.WithContext(ctx).Omit(clause.Associations).Create(&row).Error; err != nil {
		log.Error("failed to create athlete",
			slog.String("error", err.Error()),
			slog.String("athlete_id", athlete.ID.String()))
		return persistenceError("athlete", "create", err)
	}

	log.Info("athlete created",
		slog.String("athlete_id", athlete.ID.String()),
		slog.Int64("category_pk", categoryPK),
		slog.Int64("training_center_pk", trainingCenterPK))
	return nil
}

// GetByID implements store.AthleteStore.GetByID.
func (s *AthleteStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Athlete, error) {
	row, found, err := findOneBy[athleteModel](ctx, s.db, columnID, id, athleteAssociations...)
	if err != nil {
		return nil, MapError(err)
	}
	if !found {
		return nil, store.ErrAthleteNotFound
	}
	return toAthlete(row), nil
}

// List implements store.AthleteStore.List.
func (s *AthleteStore) List(ctx context.Context) ([]*domain.Athlete, error) {
	rows, err := listAll[athleteModel](ctx, s.db, athleteAssociations...)
	if err != nil {
		return nil, MapError(err)
	}

	athletes := make([]*domain.Athlete, 0, len(rows))
	for i := range rows {
		athletes = append(athletes, toAthlete(&rows[i]))
	}
	return athletes, nil
}

// Update implements store.AthleteStore.Update.
// An empty patch only checks that the athlete exists.
func (s *AthleteStore) Update(ctx context.Context, id uuid.UUID, patch domain.AthletePatch) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if patch.IsEmpty() {
		_, found, err := findOneBy[athleteModel](ctx, s.db, columnID, id)
		if err != nil {
			return MapError(err)
		}
		if !found {
			return store.ErrAthleteNotFound
		}
		return nil
	}

	result := s.db.WithContext(ctx).
		Model(&athleteModel{}).
		Where(map[string]interface{}{columnID: id}).
		Updates(athletePatchColumns(patch))
	if result.Error != nil {
		log.Error("failed to update athlete",
			slog.String("error", result.Error.Error()),
			slog.String("athlete_id", id.String()))
		return persistenceError("athlete", "update", result.Error)
	}
	if result.RowsAffected == 0 {
		return store.ErrAthleteNotFound
	}

	log.Info("athlete updated", slog.String("athlete_id", id.String()))
	return nil
}

// Delete implements store.AthleteStore.Delete.
func (s *AthleteStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result := s.db.WithContext(ctx).
		Where(map[string]interface{}{columnID: id}).
		Delete(&athleteModel{})
	if result.Error != nil {
		log.Error("failed to delete athlete",
			slog.String("error", result.Error.Error()),
			slog.String("athlete_id", id.String()))
		return persistenceError("athlete", "delete", result.Error)
	}
	if result.RowsAffected == 0 {
		return store.ErrAthleteNotFound
	}

	log.Info("athlete deleted", slog.String("athlete_id", id.String()))
	return nil
}

// WithTx implements store.AthleteStore.WithTx.
func (s *AthleteStore) WithTx(tx *gorm.DB) store.AthleteStore {
	return &AthleteStore{db: tx, logger: s.logger}
}
