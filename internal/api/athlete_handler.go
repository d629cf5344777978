package api

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/phrazzld/athlete-api/internal/api/shared"
	"github.com/phrazzld/athlete-api/internal/platform/logger"
	"github.com/phrazzld/athlete-api/internal/service"
)

// AthleteHandler handles athlete-related HTTP requests
type AthleteHandler struct {
	athleteService service.AthleteService
}

// NewAthleteHandler creates a new AthleteHandler
func NewAthleteHandler(athleteService service.AthleteService) *AthleteHandler {
	return &AthleteHandler{athleteService: athleteService}
}

// CreateAthlete handles POST /api/atletas requests.
// The category and training center are referenced by name; unknown names
// are reported as 400.
func (h *AthleteHandler) CreateAthlete(w http.ResponseWriter, r *http.Request) {
	var req AthleteRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	athlete, err := h.athleteService.Create(r.Context(), req.toDraft())
	if err != nil {
		handleServiceError(w, r, err, uuid.Nil)
		return
	}

	logger.FromContext(r.Context()).Debug("athlete created via API",
		slog.String("athlete_id", athlete.ID.String()))

	shared.RespondWithJSON(w, r, http.StatusCreated, athleteToResponse(athlete))
}

// ListAthletes handles GET /api/atletas requests
func (h *AthleteHandler) ListAthletes(w http.ResponseWriter, r *http.Request) {
	athletes, err := h.athleteService.List(r.Context())
	if err != nil {
		handleServiceError(w, r, err, uuid.Nil)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, mapSlice(athletes, athleteToResponse))
}

// GetAthlete handles GET /api/atletas/{id} requests
func (h *AthleteHandler) GetAthlete(w http.ResponseWriter, r *http.Request) {
	id, ok := handlePathUUID(w, r)
	if !ok {
		return
	}

	athlete, err := h.athleteService.Get(r.Context(), id)
	if err != nil {
		handleServiceError(w, r, err, id)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, athleteToResponse(athlete))
}

// UpdateAthlete handles PATCH /api/atletas/{id} requests
func (h *AthleteHandler) UpdateAthlete(w http.ResponseWriter, r *http.Request) {
	id, ok := handlePathUUID(w, r)
	if !ok {
		return
	}

	var req AthleteUpdateRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	athlete, err := h.athleteService.Update(r.Context(), id, req.toPatch())
	if err != nil {
		handleServiceError(w, r, err, id)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, athleteToResponse(athlete))
}

// DeleteAthlete handles DELETE /api/atletas/{id} requests
func (h *AthleteHandler) DeleteAthlete(w http.ResponseWriter, r *http.Request) {
	id, ok := handlePathUUID(w, r)
	if !ok {
		return
	}

	if err := h.athleteService.Delete(r.Context(), id); err != nil {
		handleServiceError(w, r, err, id)
		return
	}

	shared.RespondWithNoContent(w)
}
