package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/athlete-api/internal/domain"
	"gorm.io/gorm"
)

// TrainingCenterStore defines the interface for training center data persistence.
type TrainingCenterStore interface {
	// Create saves a new training center.
	// A name collision surfaces as a *StoreError wrapping ErrDuplicate.
	Create(ctx context.Context, center *domain.TrainingCenter) error

	// GetByID retrieves a training center by its client-facing ID.
	// Returns ErrTrainingCenterNotFound if it does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.TrainingCenter, error)

	// List returns every training center in storage order.
	List(ctx context.Context) ([]*domain.TrainingCenter, error)

	// FindByName resolves a training center by name. When several rows share
	// the name the one with the lowest surrogate key is returned.
	// Absence is reported as found == false with a nil error.
	FindByName(ctx context.Context, name string) (ref *Ref[domain.TrainingCenter], found bool, err error)

	// WithTx returns a TrainingCenterStore bound to the given transaction.
	WithTx(tx *gorm.DB) TrainingCenterStore
}
