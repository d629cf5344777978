package domain

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// requireText checks that value is non-blank and at most max characters long.
func requireText(field, value string, max int) error {
	if err := requireNonBlank(field, value); err != nil {
		return err
	}
	if utf8.RuneCountInString(value) > max {
		return NewValidationError(field, fmt.Sprintf("must be at most %d characters", max), ErrValidation)
	}
	return nil
}

func requireNonBlank(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return NewValidationError(field, "cannot be empty", ErrValidation)
	}
	return nil
}
