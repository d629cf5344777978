package service

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/athlete-api/internal/domain"
	"github.com/phrazzld/athlete-api/internal/platform/logger"
	"github.com/phrazzld/athlete-api/internal/store"
)

// TrainingCenterService provides training-center-related operations.
type TrainingCenterService interface {
	Create(ctx context.Context, name, address, owner string) (*domain.TrainingCenter, error)
	List(ctx context.Context) ([]*domain.TrainingCenter, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.TrainingCenter, error)
}

type trainingCenterServiceImpl struct {
	trainingCenters store.TrainingCenterStore
	logger          *slog.Logger
}

// NewTrainingCenterService creates a new TrainingCenterService.
func NewTrainingCenterService(
	trainingCenters store.TrainingCenterStore,
	logger *slog.Logger,
) (TrainingCenterService, error) {
	if trainingCenters == nil {
		return nil, domain.NewValidationError("trainingCenters", "cannot be nil", domain.ErrValidation)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &trainingCenterServiceImpl{
		trainingCenters: trainingCenters,
		logger:          logger.With(slog.String("component", "training_center_service")),
	}, nil
}

// Create implements TrainingCenterService.Create.
func (s *trainingCenterServiceImpl) Create(
	ctx context.Context,
	name, address, owner string,
) (*domain.TrainingCenter, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	center, err := domain.NewTrainingCenter(name, address, owner)
	if err != nil {
		return nil, err
	}

	if err := s.trainingCenters.Create(ctx, center); err != nil {
		logPersistenceFailure(ctx, log, "failed to persist training center", err,
			slog.String("training_center_id", center.ID.String()))
		return nil, NewPersistenceError("training center", OperationCreate, err)
	}
	return center, nil
}

// List implements TrainingCenterService.List.
func (s *trainingCenterServiceImpl) List(ctx context.Context) ([]*domain.TrainingCenter, error) {
	return s.trainingCenters.List(ctx)
}

// Get implements TrainingCenterService.Get.
func (s *trainingCenterServiceImpl) Get(ctx context.Context, id uuid.UUID) (*domain.TrainingCenter, error) {
	return s.trainingCenters.GetByID(ctx, id)
}
