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

// CategoryStore implements store.CategoryStore on top of gorm.
type CategoryStore struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewCategoryStore creates a CategoryStore using db, which may be a pool or a transaction.
// If logger is nil, a default logger will be used.
func NewCategoryStore(db *gorm.DB, logger *slog.Logger) *CategoryStore {
	if db == nil {
		// ALLOW-PANIC: constructor misuse
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &CategoryStore{
		db:     db,
		logger: logger.With(slog.String("component", "category_store")),
	}
}

var _ store.CategoryStore = (*CategoryStore)(nil)

// Create implements store.CategoryStore.Create.
func (s *CategoryStore) Create(ctx context.Context, category *domain.Category) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	row := categoryRow(category)
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		log.Error("failed to create category",
			slog.String("error", err.Error()),
			slog.String("category_id", category.ID.String()))
		return persistenceError("category", "create", err)
	}

	log.Info("category created",
		slog.String("category_id", category.ID.String()),
		slog.String("name", category.Name))
	return nil
}

// GetByID implements store.CategoryStore.GetByID.
func (s *CategoryStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	row, found, err := findOneBy[categoryModel](ctx, s.db, columnID, id)
	if err != nil {
		return nil, MapError(err)
	}
	if !found {
		return nil, store.ErrCategoryNotFound
	}
	return toCategory(row), nil
}

// List implements store.CategoryStore.List.
func (s *CategoryStore) List(ctx context.Context) ([]*domain.Category, error) {
	rows, err := listAll[categoryModel](ctx, s.db)
	if err != nil {
		return nil, MapError(err)
	}

	categories := make([]*domain.Category, 0, len(rows))
	for i := range rows {
		categories = append(categories, toCategory(&rows[i]))
	}
	return categories, nil
}

// FindByName implements store.CategoryStore.FindByName.
func (s *CategoryStore) FindByName(
	ctx context.Context,
	name string,
) (*store.Ref[domain.Category], bool, error) {
	row, found, err := findOneBy[categoryModel](ctx, s.db, columnName, name)
	if err != nil || !found {
		return nil, false, MapError(err)
	}
	return &store.Ref[domain.Category]{PK: row.PK, Entity: toCategory(row)}, true, nil
}

// WithTx implements store.CategoryStore.WithTx.
func (s *CategoryStore) WithTx(tx *gorm.DB) store.CategoryStore {
	return &CategoryStore{db: tx, logger: s.logger}
}
