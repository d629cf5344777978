package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when an ID is malformed or invalid.
	ErrInvalidID = errors.New("invalid ID")

	// ErrUnknownReference is returned when an entity refers to another entity,
	// by natural key, that does not exist.
	ErrUnknownReference = errors.New("unknown reference")
)

// ValidationError describes a validation failure on a single field.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// Unwrap returns the category of the failure (ErrValidation, ErrUnknownReference, ...).
func (e *ValidationError) Unwrap() error {
	if e.Err == nil {
		return ErrValidation
	}
	return e.Err
}

// NewValidationError creates a ValidationError for field.
func NewValidationError(field, message string, err error) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
		Err:     err,
	}
}

// NewUnknownReferenceError reports that field names an entity that does not exist.
// label is the human-readable entity name used in the message.
func NewUnknownReferenceError(field, label, value string) *ValidationError {
	return NewValidationError(field, fmt.Sprintf("%s %s was not found", label, value), ErrUnknownReference)
}
