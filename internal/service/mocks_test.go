package service

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/phrazzld/athlete-api/internal/domain"
	"github.com/phrazzld/athlete-api/internal/store"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newMockDB returns a gorm handle backed by sqlmock, used only to drive
// transaction begin/commit/rollback expectations.
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: gormlogger.Discard,
	})
	require.NoError(t, err)

	return db, sqlMock
}

// MockAthleteStore mocks the store.AthleteStore interface
type MockAthleteStore struct {
	mock.Mock
}

func (m *MockAthleteStore) Create(
	ctx context.Context,
	athlete *domain.Athlete,
	categoryPK, trainingCenterPK int64,
) error {
	args := m.Called(ctx, athlete, categoryPK, trainingCenterPK)
	return args.Error(0)
}

func (m *MockAthleteStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Athlete, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Athlete), args.Error(1)
}

func (m *MockAthleteStore) List(ctx context.Context) ([]*domain.Athlete, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*domain.Athlete), args.Error(1)
}

func (m *MockAthleteStore) Update(ctx context.Context, id uuid.UUID, patch domain.AthletePatch) error {
	args := m.Called(ctx, id, patch)
	return args.Error(0)
}

func (m *MockAthleteStore) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockAthleteStore) WithTx(_ *gorm.DB) store.AthleteStore {
	return m
}

// MockCategoryStore mocks the store.CategoryStore interface
type MockCategoryStore struct {
	mock.Mock
}

func (m *MockCategoryStore) Create(ctx context.Context, category *domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryStore) List(ctx context.Context) ([]*domain.Category, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*domain.Category), args.Error(1)
}

func (m *MockCategoryStore) FindByName(
	ctx context.Context,
	name string,
) (*store.Ref[domain.Category], bool, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*store.Ref[domain.Category]), args.Bool(1), args.Error(2)
}

func (m *MockCategoryStore) WithTx(_ *gorm.DB) store.CategoryStore {
	return m
}

// MockTrainingCenterStore mocks the store.TrainingCenterStore interface
type MockTrainingCenterStore struct {
	mock.Mock
}

func (m *MockTrainingCenterStore) Create(ctx context.Context, center *domain.TrainingCenter) error {
	args := m.Called(ctx, center)
	return args.Error(0)
}

func (m *MockTrainingCenterStore) GetByID(
	ctx context.Context,
	id uuid.UUID,
) (*domain.TrainingCenter, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TrainingCenter), args.Error(1)
}

func (m *MockTrainingCenterStore) List(ctx context.Context) ([]*domain.TrainingCenter, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*domain.TrainingCenter), args.Error(1)
}

func (m *MockTrainingCenterStore) FindByName(
	ctx context.Context,
	name string,
) (*store.Ref[domain.TrainingCenter], bool, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*store.Ref[domain.TrainingCenter]), args.Bool(1), args.Error(2)
}

func (m *MockTrainingCenterStore) WithTx(_ *gorm.DB) store.TrainingCenterStore {
	return m
}
