package gormstore

import (
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/athlete-api/internal/domain"
	"github.com/shopspring/decimal"
)

// Table and column names shared by the models and the migrations.
const (
	categoryTable       = "categorias"
	trainingCenterTable = "centros_treinamento"
	athleteTable        = "atletas"

	columnPK   = "pk_id"
	columnID   = "id"
	columnName = "nome"
)

type categoryModel struct {
	PK       int64     `gorm:"column:pk_id;primaryKey;autoIncrement"`
	PublicID uuid.UUID `gorm:"column:id;not null;uniqueIndex"`
	Name     string    `gorm:"column:nome;size:10;not null;uniqueIndex"`
}

func (categoryModel) TableName() string { return categoryTable }

type trainingCenterModel struct {
	PK       int64     `gorm:"column:pk_id;primaryKey;autoIncrement"`
	PublicID uuid.UUID `gorm:"column:id;not null;uniqueIndex"`
	Name     string    `gorm:"column:nome;size:20;not null;uniqueIndex"`
	Address  string    `gorm:"column:endereco;size:60;not null"`
	Owner    string    `gorm:"column:proprietario;size:30;not null"`
}

func (trainingCenterModel) TableName() string { return trainingCenterTable }

type athleteModel struct {
	PK               int64           `gorm:"column:pk_id;primaryKey;autoIncrement"`
	PublicID         uuid.UUID       `gorm:"column:id;not null;uniqueIndex"`
	Name             string          `gorm:"column:nome;size:50;not null"`
	CPF              string          `gorm:"column:cpf;size:11;not null;uniqueIndex"`
	Age              int             `gorm:"column:idade;not null"`
	Weight           decimal.Decimal `gorm:"column:peso;type:numeric;not null"`
	Height           decimal.Decimal `gorm:"column:altura;type:numeric;not null"`
	Sex              string          `gorm:"column:sexo;size:1;not null"`
	CreatedAt        time.Time       `gorm:"column:created_at;not null"`
	CategoryPK       int64           `gorm:"column:categoria_id;not null"`
	TrainingCenterPK int64           `gorm:"column:centro_treinamento_id;not null"`

	Category       categoryModel       `gorm:"foreignKey:CategoryPK;references:PK"`
	TrainingCenter trainingCenterModel `gorm:"foreignKey:TrainingCenterPK;references:PK"`
}

func (athleteModel) TableName() string { return athleteTable }

func categoryRow(c *domain.Category) categoryModel {
	return categoryModel{
		PublicID: c.ID,
		Name:     c.Name,
	}
}

func toCategory(m *categoryModel) *domain.Category {
	return &domain.Category{
		ID:   m.PublicID,
		Name: m.Name,
	}
}

func trainingCenterRow(tc *domain.TrainingCenter) trainingCenterModel {
	return trainingCenterModel{
		PublicID: tc.ID,
		Name:     tc.Name,
		Address:  tc.Address,
		Owner:    tc.Owner,
	}
}

func toTrainingCenter(m *trainingCenterModel) *domain.TrainingCenter {
	return &domain.TrainingCenter{
		ID:      m.PublicID,
		Name:    m.Name,
		Address: m.Address,
		Owner:   m.Owner,
	}
}

// athleteRow copies the scalar athlete fields and sets the foreign keys.
// The category and training center names are deliberately not copied.
func athleteRow(a *domain.Athlete, categoryPK, trainingCenterPK int64) athleteModel {
	return athleteModel{
		PublicID:         a.ID,
		Name:             a.Name,
		CPF:              a.CPF,
		Age:              a.Age,
		Weight:           a.Weight,
		Height:           a.Height,
		Sex:              a.Sex,
		CreatedAt:        a.CreatedAt,
		CategoryPK:       categoryPK,
		TrainingCenterPK: trainingCenterPK,
	}
}

// toAthlete expects Category and TrainingCenter to be preloaded.
func toAthlete(m *athleteModel) *domain.Athlete {
	return &domain.Athlete{
		ID:                 m.PublicID,
		Name:               m.Name,
		CPF:                m.CPF,
		Age:                m.Age,
		Weight:             m.Weight,
		Height:             m.Height,
		Sex:                m.Sex,
		CreatedAt:          m.CreatedAt.UTC(),
		CategoryName:       m.Category.Name,
		TrainingCenterName: m.TrainingCenter.Name,
	}
}

// athletePatchColumns maps the present fields of p to column updates.
func athletePatchColumns(p domain.AthletePatch) map[string]interface{} {
	cols := make(map[string]interface{}, 4)
	if p.Name != nil {
		cols["nome"] = *p.Name
	}
	if p.Age != nil {
		cols["idade"] = *p.Age
	}
	if p.Weight != nil {
		cols["peso"] = *p.Weight
	}
	if p.Height != nil {
		cols["altura"] = *p.Height
	}
	return cols
}
