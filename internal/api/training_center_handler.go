package api

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/phrazzld/athlete-api/internal/api/shared"
	"github.com/phrazzld/athlete-api/internal/service"
)

// TrainingCenterHandler handles training-center-related HTTP requests
type TrainingCenterHandler struct {
	trainingCenterService service.TrainingCenterService
}

// NewTrainingCenterHandler creates a new TrainingCenterHandler
func NewTrainingCenterHandler(trainingCenterService service.TrainingCenterService) *TrainingCenterHandler {
	return &TrainingCenterHandler{trainingCenterService: trainingCenterService}
}

// CreateTrainingCenter handles POST /api/centros_treinamento requests
func (h *TrainingCenterHandler) CreateTrainingCenter(w http.ResponseWriter, r *http.Request) {
	var req TrainingCenterRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	center, err := h.trainingCenterService.Create(
		r.Context(),
		shared.SanitizeText(req.Nome),
		shared.SanitizeText(req.Endereco),
		shared.SanitizeText(req.Proprietario),
	)
	if err != nil {
		handleServiceError(w, r, err, uuid.Nil)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, trainingCenterToResponse(center))
}

// ListTrainingCenters handles GET /api/centros_treinamento requests
func (h *TrainingCenterHandler) ListTrainingCenters(w http.ResponseWriter, r *http.Request) {
	centers, err := h.trainingCenterService.List(r.Context())
	if err != nil {
		handleServiceError(w, r, err, uuid.Nil)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, mapSlice(centers, trainingCenterToResponse))
}

// GetTrainingCenter handles GET /api/centros_treinamento/{id} requests
func (h *TrainingCenterHandler) GetTrainingCenter(w http.ResponseWriter, r *http.Request) {
	id, ok := handlePathUUID(w, r)
	if !ok {
		return
	}

	center, err := h.trainingCenterService.Get(r.Context(), id)
	if err != nil {
		handleServiceError(w, r, err, id)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, trainingCenterToResponse(center))
}
