package api

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/phrazzld/athlete-api/internal/api/shared"
	"github.com/phrazzld/athlete-api/internal/domain"
	"github.com/phrazzld/athlete-api/internal/store"
)

// idParam is the path parameter holding an entity's client-facing ID.
const idParam = "id"

// getPathUUID extracts and parses a UUID from the URL path parameters.
func getPathUUID(r *http.Request, paramName string) (uuid.UUID, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return uuid.Nil, domain.NewValidationError(paramName, "is required", domain.ErrValidation)
	}

	id, err := uuid.Parse(pathParam)
	if err != nil {
		return uuid.Nil, domain.NewValidationError(paramName, "has invalid format", domain.ErrInvalidID)
	}

	return id, nil
}

// handlePathUUID extracts the ID path parameter, writing a 422 response when
// it is missing or malformed.
func handlePathUUID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := getPathUUID(r, idParam)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return uuid.Nil, false
	}
	return id, true
}

// decodeAndValidate decodes the JSON body into dst and validates it,
// writing a 422 response on failure.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := shared.DecodeJSON(r, dst); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusUnprocessableEntity, SanitizeValidationError(err), err)
		return false
	}
	if err := shared.ValidateRequest(dst); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusUnprocessableEntity, SanitizeValidationError(err), err)
		return false
	}
	return true
}

// handleServiceError writes the response for a failed service call. A
// not-found error for a known id names it in the message.
func handleServiceError(w http.ResponseWriter, r *http.Request, err error, id uuid.UUID) {
	status := MapErrorToStatusCode(err)
	message := GetSafeErrorMessage(err)
	if id != uuid.Nil && store.IsNotFoundError(err) {
		message = fmt.Sprintf("%s with id %s", message, id)
	}
	shared.RespondWithErrorAndLog(w, r, status, message, err)
}
