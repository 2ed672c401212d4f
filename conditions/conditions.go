package conditions

import (
	"context"
	"time"

	"github.com/LuizaMunis/HealthCare-sub000/store"
)

const (
	IntensityMild     = "LEVE"
	IntensityModerate = "MODERADA"
	IntensityIntense  = "INTENSA"
)

type Service interface {
	CreateCondition(ctx context.Context, userId int64, create *ConditionPayload) (*Condition, error)
	ListConditions(ctx context.Context, userId int64, pagination store.Pagination) ([]*Condition, error)
	GetCondition(ctx context.Context, userId int64, id int64) (*Condition, error)
	UpdateCondition(ctx context.Context, userId int64, id int64, patch *ConditionPayload) (*Condition, error)
	DeleteCondition(ctx context.Context, userId int64, id int64) error

	CreateSymptom(ctx context.Context, userId int64, conditionId int64, create *SymptomPayload) (*Symptom, error)
	ListSymptoms(ctx context.Context, userId int64, conditionId int64, pagination store.Pagination) ([]*Symptom, error)
	GetSymptom(ctx context.Context, userId int64, id int64) (*Symptom, error)
	UpdateSymptom(ctx context.Context, userId int64, id int64, patch *SymptomPayload) (*Symptom, error)
	DeleteSymptom(ctx context.Context, userId int64, id int64) error

	DeleteAllForProfile(ctx context.Context, profileId int64) error
}

type Condition struct {
	Id               int64   `bson:"_id,omitempty" json:"id"`
	ProfileId        int64   `bson:"perfil_id,omitempty" json:"perfil_id"`
	Name             *string `bson:"nome,omitempty" json:"nome,omitempty"`
	Type             *string `bson:"tipo,omitempty" json:"tipo,omitempty"`
	DiagnosisDate    *string `bson:"data_diagnostico,omitempty" json:"data_diagnostico,omitempty"`
	SymptomOnsetDate *string `bson:"data_inicio_sintomas,omitempty" json:"data_inicio_sintomas,omitempty"`
	CureDate         *string `bson:"data_cura,omitempty" json:"data_cura,omitempty"`
	Notes            *string `bson:"observacoes,omitempty" json:"observacoes,omitempty"`
}

// Symptom hangs off a condition, not off the profile directly. Ownership is
// established by walking doenca_id up to the condition's profile.
type Symptom struct {
	Id          int64      `bson:"_id,omitempty" json:"id"`
	ConditionId int64      `bson:"doenca_id,omitempty" json:"doenca_id"`
	Description *string    `bson:"descricao,omitempty" json:"descricao,omitempty"`
	Intensity   *string    `bson:"intensidade,omitempty" json:"intensidade,omitempty"`
	OccurredAt  *time.Time `bson:"data_ocorrencia,omitempty" json:"data_ocorrencia,omitempty"`
}

type ConditionPayload struct {
	Name             *string `json:"nome"`
	Type             *string `json:"tipo"`
	DiagnosisDate    *string `json:"data_diagnostico"`
	SymptomOnsetDate *string `json:"data_inicio_sintomas"`
	CureDate         *string `json:"data_cura"`
	Notes            *string `json:"observacoes"`
}

func (p *ConditionPayload) Empty() bool {
	return p.Name == nil &&
		p.Type == nil &&
		p.DiagnosisDate == nil &&
		p.SymptomOnsetDate == nil &&
		p.CureDate == nil &&
		p.Notes == nil
}

type SymptomPayload struct {
	Description *string    `json:"descricao"`
	Intensity   *string    `json:"intensidade"`
	OccurredAt  *time.Time `json:"data_ocorrencia"`
}

func (p *SymptomPayload) Empty() bool {
	return p.Description == nil && p.Intensity == nil && p.OccurredAt == nil
}
