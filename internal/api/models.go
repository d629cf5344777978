package api

import (
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/athlete-api/internal/api/shared"
	"github.com/phrazzld/athlete-api/internal/domain"
	"github.com/shopspring/decimal"
)

// CategoryRequest is the payload for creating a category.
type CategoryRequest struct {
	Nome string `json:"nome" validate:"required,max=10"`
}

// CategoryResponse is a stored category.
type CategoryResponse struct {
	ID   uuid.UUID `json:"id"`
	Nome string    `json:"nome"`
}

// TrainingCenterRequest is the payload for creating a training center.
type TrainingCenterRequest struct {
	Nome         string `json:"nome"         validate:"required,max=20"`
	Endereco     string `json:"endereco"     validate:"required,max=60"`
	Proprietario string `json:"proprietario" validate:"required,max=30"`
}

// TrainingCenterResponse is a stored training center.
type TrainingCenterResponse struct {
	ID           uuid.UUID `json:"id"`
	Nome         string    `json:"nome"`
	Endereco     string    `json:"endereco"`
	Proprietario string    `json:"proprietario"`
}

// CategoryName references a category by its unique name.
// Length is not checked: a name no category can have is an unknown reference.
type CategoryName struct {
	Nome string `json:"nome" validate:"required"`
}

// TrainingCenterName references a training center by its name.
type TrainingCenterName struct {
	Nome string `json:"nome" validate:"required"`
}

// AthleteRequest is the payload for registering an athlete.
type AthleteRequest struct {
	Nome              string             `json:"nome"               validate:"required,max=50"`
	CPF               string             `json:"cpf"                validate:"required,max=11,numeric"`
	Idade             int                `json:"idade"              validate:"required,gt=0"`
	Peso              decimal.Decimal    `json:"peso"               validate:"required,gt=0"`
	Altura            decimal.Decimal    `json:"altura"             validate:"required,gt=0"`
	Sexo              string             `json:"sexo"               validate:"required,oneof=M F"`
	Categoria         CategoryName       `json:"categoria"`
	CentroTreinamento TrainingCenterName `json:"centro_treinamento"`
}

// AthleteUpdateRequest is the partial update payload. Absent fields are left unchanged.
type AthleteUpdateRequest struct {
	Nome   *string          `json:"nome"   validate:"omitempty,max=50"`
	Idade  *int             `json:"idade"  validate:"omitempty,gt=0"`
	Peso   *decimal.Decimal `json:"peso"   validate:"omitempty,gt=0"`
	Altura *decimal.Decimal `json:"altura" validate:"omitempty,gt=0"`
}

// AthleteResponse is a stored athlete with its category and training center names.
type AthleteResponse struct {
	ID                uuid.UUID          `json:"id"`
	CreatedAt         time.Time          `json:"created_at"`
	Nome              string             `json:"nome"`
	CPF               string             `json:"cpf"`
	Idade             int                `json:"idade"`
	Peso              float64            `json:"peso"`
	Altura            float64            `json:"altura"`
	Sexo              string             `json:"sexo"`
	Categoria         CategoryName       `json:"categoria"`
	CentroTreinamento TrainingCenterName `json:"centro_treinamento"`
}

func categoryToResponse(c *domain.Category) CategoryResponse {
	return CategoryResponse{
		ID:   c.ID,
		Nome: c.Name,
	}
}

func trainingCenterToResponse(tc *domain.TrainingCenter) TrainingCenterResponse {
	return TrainingCenterResponse{
		ID:           tc.ID,
		Nome:         tc.Name,
		Endereco:     tc.Address,
		Proprietario: tc.Owner,
	}
}

func athleteToResponse(a *domain.Athlete) AthleteResponse {
	return AthleteResponse{
		ID:                a.ID,
		CreatedAt:         a.CreatedAt,
		Nome:              a.Name,
		CPF:               a.CPF,
		Idade:             a.Age,
		Peso:              a.Weight.InexactFloat64(),
		Altura:            a.Height.InexactFloat64(),
		Sexo:              a.Sex,
		Categoria:         CategoryName{Nome: a.CategoryName},
		CentroTreinamento: TrainingCenterName{Nome: a.TrainingCenterName},
	}
}

// mapSlice converts each element of in with fn, never returning nil.
func mapSlice[T any, R any](in []*T, fn func(*T) R) []R {
	out := make([]R, 0, len(in))
	for _, v := range in {
		out = append(out, fn(v))
	}
	return out
}

// toDraft builds the domain draft, stripping markup from free-text fields.
func (req AthleteRequest) toDraft() domain.AthleteDraft {
	return domain.AthleteDraft{
		Name:               shared.SanitizeText(req.Nome),
		CPF:                req.CPF,
		Age:                req.Idade,
		Weight:             req.Peso,
		Height:             req.Altura,
		Sex:                req.Sexo,
		CategoryName:       shared.SanitizeText(req.Categoria.Nome),
		TrainingCenterName: shared.SanitizeText(req.CentroTreinamento.Nome),
	}
}

func (req AthleteUpdateRequest) toPatch() domain.AthletePatch {
	patch := domain.AthletePatch{
		Age:    req.Idade,
		Weight: req.Peso,
		Height: req.Altura,
	}
	if req.Nome != nil {
		name := shared.SanitizeText(*req.Nome)
		patch.Name = &name
	}
	return patch
}
