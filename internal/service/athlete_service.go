package service

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/athlete-api/internal/domain"
	"github.com/phrazzld/athlete-api/internal/platform/logger"
	"github.com/phrazzld/athlete-api/internal/store"
	"gorm.io/gorm"
)

// AthleteService provides athlete-related operations.
type AthleteService interface {
	// Create resolves the athlete's category and training center by name and
	// persists the athlete referencing them, all in one transaction.
	Create(ctx context.Context, draft domain.AthleteDraft) (*domain.Athlete, error)

	// List returns every athlete.
	List(ctx context.Context) ([]*domain.Athlete, error)

	// Get returns the athlete with the given ID.
	Get(ctx context.Context, id uuid.UUID) (*domain.Athlete, error)

	// Update applies the fields present in patch and returns the stored result.
	Update(ctx context.Context, id uuid.UUID, patch domain.AthletePatch) (*domain.Athlete, error)

	// Delete removes the athlete with the given ID.
	Delete(ctx context.Context, id uuid.UUID) error
}

type athleteServiceImpl struct {
	db              *gorm.DB
	athletes        store.AthleteStore
	categories      store.CategoryStore
	trainingCenters store.TrainingCenterStore
	logger          *slog.Logger
}

// NewAthleteService creates a new AthleteService.
// It returns an error if any of the required dependencies are nil.
func NewAthleteService(
	db *gorm.DB,
	athletes store.AthleteStore,
	categories store.CategoryStore,
	trainingCenters store.TrainingCenterStore,
	logger *slog.Logger,
) (AthleteService, error) {
	if db == nil {
		return nil, domain.NewValidationError("db", "cannot be nil", domain.ErrValidation)
	}
	if athletes == nil {
		return nil, domain.NewValidationError("athletes", "cannot be nil", domain.ErrValidation)
	}
	if categories == nil {
		return nil, domain.NewValidationError("categories", "cannot be nil", domain.ErrValidation)
	}
	if trainingCenters == nil {
		return nil, domain.NewValidationError("trainingCenters", "cannot be nil", domain.ErrValidation)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &athleteServiceImpl{
		db:              db,
		athletes:        athletes,
		categories:      categories,
		trainingCenters: trainingCenters,
		logger:          logger.With(slog.String("component", "athlete_service")),
	}, nil
}

// Create implements AthleteService.Create.
func (s *athleteServiceImpl) Create(
	ctx context.Context,
	draft domain.AthleteDraft,
) (*domain.Athlete, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	athlete, err := domain.NewAthlete(draft)
	if err != nil {
		log.Debug("athlete validation failed", slog.String("error", err.Error()))
		return nil, err
	}

	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *gorm.DB) error {
		category, err := resolveReference(ctx, s.categories.WithTx(tx).FindByName,
			"categoria", "Category", draft.CategoryName)
		if err != nil {
			return err
		}

		center, err := resolveReference(ctx, s.trainingCenters.WithTx(tx).FindByName,
			"centro_treinamento", "Training center", draft.TrainingCenterName)
		if err != nil {
			return err
		}

		athlete.CategoryName = category.Entity.Name
		athlete.TrainingCenterName = center.Entity.Name

		if err := s.athletes.WithTx(tx).Create(ctx, athlete, category.PK, center.PK); err != nil {
			logPersistenceFailure(ctx, log, "failed to persist athlete", err,
				slog.String("athlete_id", athlete.ID.String()))
			return NewPersistenceError("athlete", OperationCreate, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info("athlete registered",
		slog.String("athlete_id", athlete.ID.String()),
		slog.String("category", athlete.CategoryName),
		slog.String("training_center", athlete.TrainingCenterName))
	return athlete, nil
}

// List implements AthleteService.List.
func (s *athleteServiceImpl) List(ctx context.Context) ([]*domain.Athlete, error) {
	return s.athletes.List(ctx)
}

// Get implements AthleteService.Get.
func (s *athleteServiceImpl) Get(ctx context.Context, id uuid.UUID) (*domain.Athlete, error) {
	return s.athletes.GetByID(ctx, id)
}

// Update implements AthleteService.Update.
// The returned athlete is re-read inside the same transaction as the write.
func (s *athleteServiceImpl) Update(
	ctx context.Context,
	id uuid.UUID,
	patch domain.AthletePatch,
) (*domain.Athlete, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := patch.Validate(); err != nil {
		return nil, err
	}

	var updated *domain.Athlete
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *gorm.DB) error {
		athletes := s.athletes.WithTx(tx)

		if err := athletes.Update(ctx, id, patch); err != nil {
			if store.IsNotFoundError(err) {
				return err
			}
			logPersistenceFailure(ctx, log, "failed to update athlete", err,
				slog.String("athlete_id", id.String()))
			return NewPersistenceError("athlete", OperationUpdate, err)
		}

		a, err := athletes.GetByID(ctx, id)
		if err != nil {
			return err
		}
		updated = a
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info("athlete updated", slog.String("athlete_id", id.String()))
	return updated, nil
}

// Delete implements AthleteService.Delete.
func (s *athleteServiceImpl) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := s.athletes.Delete(ctx, id); err != nil {
		if store.IsNotFoundError(err) {
			return err
		}
		logPersistenceFailure(ctx, log, "failed to delete athlete", err,
			slog.String("athlete_id", id.String()))
		return NewPersistenceError("athlete", OperationDelete, err)
	}

	log.Info("athlete deleted", slog.String("athlete_id", id.String()))
	return nil
}
