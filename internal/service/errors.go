package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/athlete-api/internal/redact"
	"github.com/phrazzld/athlete-api/internal/store"
)

// Operations reported by PersistenceError.
const (
	OperationCreate = "create"
	OperationUpdate = "update"
	OperationDelete = "delete"
)

// fallbackDetail is used when the failure carries no sanitized description.
const fallbackDetail = "unexpected database error"

// PersistenceError reports a write that the database rejected. Detail is a
// short sanitized fragment of the driver message and is safe to show to
// clients; Err keeps the full error for logs.
type PersistenceError struct {
	Entity    string
	Operation string
	Detail    string
	Err       error
}

// Error implements the error interface for PersistenceError.
func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s %s failed: %s", e.Entity, e.Operation, e.Detail)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// NewPersistenceError creates a PersistenceError, taking the detail from a
// wrapped *store.StoreError when there is one.
func NewPersistenceError(entity, operation string, err error) *PersistenceError {
	detail := fallbackDetail
	var storeErr *store.StoreError
	if errors.As(err, &storeErr) && storeErr.Message != "" {
		detail = storeErr.Message
	}
	return &PersistenceError{
		Entity:    entity,
		Operation: operation,
		Detail:    detail,
		Err:       err,
	}
}

// logPersistenceFailure logs a rejected write with the redacted error.
// Unique violations are caused by the request, so they are logged at WARN.
func logPersistenceFailure(ctx context.Context, log *slog.Logger, msg string, err error, attrs ...slog.Attr) {
	level := slog.LevelError
	if store.IsDuplicateError(err) {
		level = slog.LevelWarn
	}
	attrs = append([]slog.Attr{slog.String("error", redact.Error(err))}, attrs...)
	log.LogAttrs(ctx, level, msg, attrs...)
}
