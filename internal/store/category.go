package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/athlete-api/internal/domain"
	"gorm.io/gorm"
)

// CategoryStore defines the interface for category data persistence.
type CategoryStore interface {
	// Create saves a new category.
	// A name collision surfaces as a *StoreError wrapping ErrDuplicate.
	Create(ctx context.Context, category *domain.Category) error

	// GetByID retrieves a category by its client-facing ID.
	// Returns ErrCategoryNotFound if the category does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error)

	// List returns every category in storage order.
	List(ctx context.Context) ([]*domain.Category, error)

	// FindByName resolves a category by its unique name.
	// Absence is reported as found == false with a nil error.
	FindByName(ctx context.Context, name string) (ref *Ref[domain.Category], found bool, err error)

	// WithTx returns a CategoryStore bound to the given transaction.
	WithTx(tx *gorm.DB) CategoryStore
}
