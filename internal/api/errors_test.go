package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/phrazzld/athlete-api/internal/api/shared"
	"github.com/phrazzld/athlete-api/internal/domain"
	"github.com/phrazzld/athlete-api/internal/service"
	"github.com/phrazzld/athlete-api/internal/store"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func duplicateCPFError() error {
	storeErr := store.NewStoreError("athlete", "create", "atletas.cpf",
		fmt.Errorf("%w: UNIQUE constraint failed: atletas.cpf", store.ErrDuplicate))
	return service.NewPersistenceError("athlete", service.OperationCreate, storeErr)
}

func TestMapErrorToStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"unknown reference", domain.NewUnknownReferenceError("categoria", "Category", "X"), http.StatusBadRequest},
		{"validation", domain.NewValidationError("nome", "too long", domain.ErrValidation), http.StatusUnprocessableEntity},
		{"invalid id", domain.NewValidationError("id", "has invalid format", domain.ErrInvalidID), http.StatusUnprocessableEntity},
		{"athlete not found", store.ErrAthleteNotFound, http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("get: %w", store.ErrCategoryNotFound), http.StatusNotFound},
		{"persistence", duplicateCPFError(), http.StatusInternalServerError},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, MapErrorToStatusCode(tc.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, "An unexpected error occurred"},
		{
			"unknown reference",
			domain.NewUnknownReferenceError("centro_treinamento", "Training center", "CT Nowhere"),
			"Training center CT Nowhere was not found",
		},
		{"field validation", domain.NewValidationError("idade", "must be positive", domain.ErrValidation), "Invalid idade: must be positive"},
		{"athlete not found", store.ErrAthleteNotFound, "Athlete not found"},
		{"category not found", store.ErrCategoryNotFound, "Category not found"},
		{"training center not found", store.ErrTrainingCenterNotFound, "Training center not found"},
		{"generic not found", store.ErrNotFound, "Resource not found"},
		{"duplicate cpf", duplicateCPFError(), "Error adding athlete: atletas.cpf"},
		{
			"update failure",
			service.NewPersistenceError("athlete", service.OperationUpdate, errors.New("driver")),
			"Error updating athlete: unexpected database error",
		},
		{
			"delete failure",
			service.NewPersistenceError("athlete", service.OperationDelete, errors.New("driver")),
			"Error deleting athlete: unexpected database error",
		},
		{"internal details hidden", errors.New("pq: connection refused at 10.0.0.1:5432"), "An unexpected error occurred"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, GetSafeErrorMessage(tc.err))
		})
	}
}

func validAthleteRequest() AthleteRequest {
	return AthleteRequest{
		Nome:              "Joao Silva",
		CPF:               "12345678900",
		Idade:             25,
		Peso:              decimal.RequireFromString("75.5"),
		Altura:            decimal.RequireFromString("1.70"),
		Sexo:              "M",
		Categoria:         CategoryName{Nome: "Scale"},
		CentroTreinamento: TrainingCenterName{Nome: "CT King"},
	}
}

func TestSanitizeValidationError(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*AthleteRequest)
		want   string
	}{
		{"missing name", func(r *AthleteRequest) { r.Nome = "" }, "Invalid nome: required field"},
		{"long name", func(r *AthleteRequest) { r.Nome = strings.Repeat("a", 51) }, "Invalid nome: must be at most 50 characters"},
		{"cpf letters", func(r *AthleteRequest) { r.CPF = "123abc" }, "Invalid cpf: must contain only digits"},
		{"negative weight", func(r *AthleteRequest) { r.Peso = decimal.NewFromInt(-2) }, "Invalid peso: must be greater than 0"},
		{"bad sex", func(r *AthleteRequest) { r.Sexo = "X" }, "Invalid sexo: must be one of M F"},
		{"missing center", func(r *AthleteRequest) { r.CentroTreinamento.Nome = "" }, "Invalid centro_treinamento.nome: required field"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := validAthleteRequest()
			tc.mutate(&req)
			err := shared.ValidateRequest(&req)
			require.Error(t, err)
			assert.Equal(t, tc.want, SanitizeValidationError(err))
		})
	}

	t.Run("valid request", func(t *testing.T) {
		req := validAthleteRequest()
		assert.NoError(t, shared.ValidateRequest(&req))
	})

	t.Run("long reference names pass schema validation", func(t *testing.T) {
		req := validAthleteRequest()
		req.Categoria.Nome = "Nonexistent"
		req.CentroTreinamento.Nome = strings.Repeat("x", 25)
		assert.NoError(t, shared.ValidateRequest(&req))
	})

	t.Run("type mismatch", func(t *testing.T) {
		var req AthleteRequest
		err := json.Unmarshal([]byte(`{"idade":"twenty"}`), &req)
		require.Error(t, err)
		assert.Equal(t, "Invalid idade: must be a number", SanitizeValidationError(err))
	})

	t.Run("malformed json", func(t *testing.T) {
		var req AthleteRequest
		err := json.Unmarshal([]byte(`{"nome":`), &req)
		require.Error(t, err)
		assert.Equal(t, "Invalid request format", SanitizeValidationError(err))
	})
}
