package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Field limits for athletes.
const (
	MaxAthleteNameLength = 50
	MaxAthleteCPFLength  = 11
)

// Accepted values for Athlete.Sex.
const (
	SexMale   = "M"
	SexFemale = "F"
)

// AthleteDraft holds the client-supplied attributes of an athlete before an
// identity is assigned. Category and training center are referenced by name.
type AthleteDraft struct {
	Name               string
	CPF                string
	Age                int
	Weight             decimal.Decimal
	Height             decimal.Decimal
	Sex                string
	CategoryName       string
	TrainingCenterName string
}

// Athlete is a competitor registered at one training center in one category.
type Athlete struct {
	ID                 uuid.UUID
	Name               string
	CPF                string
	Age                int
	Weight             decimal.Decimal
	Height             decimal.Decimal
	Sex                string
	CreatedAt          time.Time
	CategoryName       string
	TrainingCenterName string
}

// NewAthlete creates an Athlete from d with a fresh identifier and the current
// UTC time at the microsecond precision the database keeps.
// Returns an error if validation fails.
func NewAthlete(d AthleteDraft) (*Athlete, error) {
	a := &Athlete{
		ID:                 uuid.New(),
		Name:               d.Name,
		CPF:                d.CPF,
		Age:                d.Age,
		Weight:             d.Weight,
		Height:             d.Height,
		Sex:                d.Sex,
		CreatedAt:          creationTime(),
		CategoryName:       d.CategoryName,
		TrainingCenterName: d.TrainingCenterName,
	}

	if err := a.Validate(); err != nil {
		return nil, err
	}

	return a, nil
}

// creationTime returns the current UTC time rounded up to the next
// microsecond, so it is never earlier than a clock reading taken before it.
func creationTime() time.Time {
	now := time.Now().UTC()
	if t := now.Truncate(time.Microsecond); t.Before(now) {
		return t.Add(time.Microsecond)
	}
	return now
}

// Validate checks if the Athlete has valid data.
func (a *Athlete) Validate() error {
	if a.ID == uuid.Nil {
		return NewValidationError("id", "cannot be empty", ErrInvalidID)
	}
	if err := requireText("nome", a.Name, MaxAthleteNameLength); err != nil {
		return err
	}
	if err := validateCPF(a.CPF); err != nil {
		return err
	}
	if a.Age <= 0 {
		return NewValidationError("idade", "must be positive", ErrValidation)
	}
	if !a.Weight.IsPositive() {
		return NewValidationError("peso", "must be positive", ErrValidation)
	}
	if !a.Height.IsPositive() {
		return NewValidationError("altura", "must be positive", ErrValidation)
	}
	if a.Sex != SexMale && a.Sex != SexFemale {
		return NewValidationError("sexo", "must be M or F", ErrValidation)
	}
	// References are looked up by name; an over-long name is simply unknown.
	if err := requireNonBlank("categoria", a.CategoryName); err != nil {
		return err
	}
	return requireNonBlank("centro_treinamento", a.TrainingCenterName)
}

func validateCPF(cpf string) error {
	if err := requireText("cpf", cpf, MaxAthleteCPFLength); err != nil {
		return err
	}
	if strings.IndexFunc(cpf, func(r rune) bool { return r < '0' || r > '9' }) >= 0 {
		return NewValidationError("cpf", "must contain only digits", ErrValidation)
	}
	return nil
}

// AthletePatch is a partial update. Nil fields are left unchanged.
type AthletePatch struct {
	Name   *string
	Age    *int
	Weight *decimal.Decimal
	Height *decimal.Decimal
}

// IsEmpty reports whether the patch changes nothing.
func (p AthletePatch) IsEmpty() bool {
	return p.Name == nil && p.Age == nil && p.Weight == nil && p.Height == nil
}

// Validate checks the present fields of p against the athlete limits.
func (p AthletePatch) Validate() error {
	if p.Name != nil {
		if err := requireText("nome", *p.Name, MaxAthleteNameLength); err != nil {
			return err
		}
	}
	if p.Age != nil && *p.Age <= 0 {
		return NewValidationError("idade", "must be positive", ErrValidation)
	}
	if p.Weight != nil && !p.Weight.IsPositive() {
		return NewValidationError("peso", "must be positive", ErrValidation)
	}
	if p.Height != nil && !p.Height.IsPositive() {
		return NewValidationError("altura", "must be positive", ErrValidation)
	}
	return nil
}
