package api

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/phrazzld/athlete-api/internal/api/shared"
	"github.com/phrazzld/athlete-api/internal/service"
)

// CategoryHandler handles category-related HTTP requests
type CategoryHandler struct {
	categoryService service.CategoryService
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(categoryService service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// CreateCategory handles POST /api/categorias requests
func (h *CategoryHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req CategoryRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	category, err := h.categoryService.Create(r.Context(), shared.SanitizeText(req.Nome))
	if err != nil {
		handleServiceError(w, r, err, uuid.Nil)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, categoryToResponse(category))
}

// ListCategories handles GET /api/categorias requests
func (h *CategoryHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categoryService.List(r.Context())
	if err != nil {
		handleServiceError(w, r, err, uuid.Nil)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, mapSlice(categories, categoryToResponse))
}

// GetCategory handles GET /api/categorias/{id} requests
func (h *CategoryHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := handlePathUUID(w, r)
	if !ok {
		return
	}

	category, err := h.categoryService.Get(r.Context(), id)
	if err != nil {
		handleServiceError(w, r, err, id)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, categoryToResponse(category))
}
