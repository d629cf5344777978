package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/athlete-api/internal/domain"
	"github.com/phrazzld/athlete-api/internal/service"
	"github.com/phrazzld/athlete-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// A reference by name to an entity that does not exist
	case errors.Is(err, domain.ErrUnknownReference):
		return http.StatusBadRequest

	// Payloads and identifiers that fail validation
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidID):
		return http.StatusUnprocessableEntity

	case store.IsNotFoundError(err):
		return http.StatusNotFound

	// Writes rejected by the database, including unique violations, and
	// anything unexpected
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	var verr *domain.ValidationError
	var perr *service.PersistenceError

	switch {
	case errors.As(err, &verr) && errors.Is(err, domain.ErrUnknownReference):
		return verr.Message

	case errors.As(err, &verr):
		if verr.Field == "" {
			return verr.Message
		}
		return fmt.Sprintf("Invalid %s: %s", verr.Field, verr.Message)

	case errors.Is(err, store.ErrAthleteNotFound):
		return "Athlete not found"

	case errors.Is(err, store.ErrCategoryNotFound):
		return "Category not found"

	case errors.Is(err, store.ErrTrainingCenterNotFound):
		return "Training center not found"

	case store.IsNotFoundError(err):
		return "Resource not found"

	case errors.As(err, &perr):
		return fmt.Sprintf("%s %s: %s", persistenceVerb(perr.Operation), perr.Entity, perr.Detail)

	default:
		return "An unexpected error occurred"
	}
}

func persistenceVerb(operation string) string {
	switch operation {
	case service.OperationUpdate:
		return "Error updating"
	case service.OperationDelete:
		return "Error deleting"
	default:
		return "Error adding"
	}
}

// SanitizeValidationError turns a validator or JSON decoding error into a
// short message naming the offending JSON field.
func SanitizeValidationError(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return fmt.Sprintf("Invalid %s: %s", fieldPath(fe), getValidationTagMessage(fe))
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return fmt.Sprintf("Invalid %s: must be a %s", typeErr.Field, jsonKind(typeErr.Type.Kind().String()))
	}

	return "Invalid request format"
}

// fieldPath returns the JSON path of the failing field without the Go struct name,
// e.g. "categoria.nome".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return fe.Field()
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "required field"
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of %s", fe.Param())
	case "numeric":
		return "must contain only digits"
	default:
		return "validation failed"
	}
}

func jsonKind(goKind string) string {
	switch {
	case strings.HasPrefix(goKind, "int"), strings.HasPrefix(goKind, "uint"),
		strings.HasPrefix(goKind, "float"):
		return "number"
	case goKind == "string":
		return "string"
	case goKind == "struct":
		return "object"
	default:
		return "valid value"
	}
}
