package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/phrazzld/athlete-api/internal/domain"
)

// MockAthleteService is a mock implementation of service.AthleteService for testing
type MockAthleteService struct {
	CreateFn func(ctx context.Context, draft domain.AthleteDraft) (*domain.Athlete, error)
	ListFn   func(ctx context.Context) ([]*domain.Athlete, error)
	GetFn    func(ctx context.Context, id uuid.UUID) (*domain.Athlete, error)
	UpdateFn func(ctx context.Context, id uuid.UUID, patch domain.AthletePatch) (*domain.Athlete, error)
	DeleteFn func(ctx context.Context, id uuid.UUID) error
}

func (m *MockAthleteService) Create(ctx context.Context, draft domain.AthleteDraft) (*domain.Athlete, error) {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, draft)
	}
	return nil, nil
}

func (m *MockAthleteService) List(ctx context.Context) ([]*domain.Athlete, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}

func (m *MockAthleteService) Get(ctx context.Context, id uuid.UUID) (*domain.Athlete, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, id)
	}
	return nil, nil
}

func (m *MockAthleteService) Update(
	ctx context.Context,
	id uuid.UUID,
	patch domain.AthletePatch,
) (*domain.Athlete, error) {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, id, patch)
	}
	return nil, nil
}

func (m *MockAthleteService) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}

// MockCategoryService is a mock implementation of service.CategoryService for testing
type MockCategoryService struct {
	CreateFn func(ctx context.Context, name string) (*domain.Category, error)
	ListFn   func(ctx context.Context) ([]*domain.Category, error)
	GetFn    func(ctx context.Context, id uuid.UUID) (*domain.Category, error)
}

func (m *MockCategoryService) Create(ctx context.Context, name string) (*domain.Category, error) {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, name)
	}
	return nil, nil
}

func (m *MockCategoryService) List(ctx context.Context) ([]*domain.Category, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}

func (m *MockCategoryService) Get(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, id)
	}
	return nil, nil
}

// MockTrainingCenterService is a mock implementation of service.TrainingCenterService for testing
type MockTrainingCenterService struct {
	CreateFn func(ctx context.Context, name, address, owner string) (*domain.TrainingCenter, error)
	ListFn   func(ctx context.Context) ([]*domain.TrainingCenter, error)
	GetFn    func(ctx context.Context, id uuid.UUID) (*domain.TrainingCenter, error)
}

func (m *MockTrainingCenterService) Create(
	ctx context.Context,
	name, address, owner string,
) (*domain.TrainingCenter, error) {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, name, address, owner)
	}
	return nil, nil
}

func (m *MockTrainingCenterService) List(ctx context.Context) ([]*domain.TrainingCenter, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}

func (m *MockTrainingCenterService) Get(ctx context.Context, id uuid.UUID) (*domain.TrainingCenter, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, id)
	}
	return nil, nil
}

// newRequest builds a request carrying the chi "id" URL parameter when id is non-empty.
func newRequest(method, target, body, id string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if id != "" {
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add(idParam, id)
		req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	}
	return req
}
