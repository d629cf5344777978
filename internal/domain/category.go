package domain

import (
	"github.com/google/uuid"
)

// MaxCategoryNameLength is the longest category name accepted.
const MaxCategoryNameLength = 10

// Category groups athletes (e.g. "Scale", "RX"). Names are unique.
// Categories are immutable once created.
type Category struct {
	ID   uuid.UUID
	Name string
}

// NewCategory creates a Category with a fresh client-facing identifier.
func NewCategory(name string) (*Category, error) {
	c := &Category{
		ID:   uuid.New(),
		Name: name,
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate checks if the Category has valid data.
func (c *Category) Validate() error {
	if c.ID == uuid.Nil {
		return NewValidationError("id", "cannot be empty", ErrInvalidID)
	}
	return requireText("nome", c.Name, MaxCategoryNameLength)
}
