package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/athlete-api/internal/domain"
	"gorm.io/gorm"
)

// AthleteStore defines the interface for athlete data persistence.
type AthleteStore interface {
	// Create inserts a new athlete row referencing the given category and
	// training center surrogate keys. The nested names on athlete are not stored.
	// Constraint violations surface as a *StoreError.
	Create(ctx context.Context, athlete *domain.Athlete, categoryPK, trainingCenterPK int64) error

	// GetByID retrieves an athlete, with its category and training center names.
	// Returns ErrAthleteNotFound if the athlete does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Athlete, error)

	// List returns every athlete in storage order.
	List(ctx context.Context) ([]*domain.Athlete, error)

	// Update writes the fields present in patch.
	// Returns ErrAthleteNotFound if the athlete does not exist.
	Update(ctx context.Context, id uuid.UUID, patch domain.AthletePatch) error

	// Delete removes an athlete.
	// Returns ErrAthleteNotFound if the athlete does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// WithTx returns an AthleteStore bound to the given transaction.
	WithTx(tx *gorm.DB) AthleteStore
}
