package domain

import (
	"github.com/google/uuid"
)

// Field limits for training centers.
const (
	MaxTrainingCenterNameLength    = 20
	MaxTrainingCenterAddressLength = 60
	MaxTrainingCenterOwnerLength   = 30
)

// TrainingCenter is the gym where an athlete trains.
type TrainingCenter struct {
	ID      uuid.UUID
	Name    string
	Address string
	Owner   string
}

// NewTrainingCenter creates a TrainingCenter with a fresh client-facing identifier.
func NewTrainingCenter(name, address, owner string) (*TrainingCenter, error) {
	tc := &TrainingCenter{
		ID:      uuid.New(),
		Name:    name,
		Address: address,
		Owner:   owner,
	}

	if err := tc.Validate(); err != nil {
		return nil, err
	}

	return tc, nil
}

// Validate checks if the TrainingCenter has valid data.
func (tc *TrainingCenter) Validate() error {
	if tc.ID == uuid.Nil {
		return NewValidationError("id", "cannot be empty", ErrInvalidID)
	}
	if err := requireText("nome", tc.Name, MaxTrainingCenterNameLength); err != nil {
		return err
	}
	if err := requireText("endereco", tc.Address, MaxTrainingCenterAddressLength); err != nil {
		return err
	}
	return requireText("proprietario", tc.Owner, MaxTrainingCenterOwnerLength)
}
