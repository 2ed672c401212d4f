package medications

import (
	"context"
	"time"

	"github.com/LuizaMunis/HealthCare-sub000/store"
)

const (
	UseStatusTaken   = "TOMADO"
	UseStatusSkipped = "PULADO"
	UseStatusLate    = "ATRASADO"
)

type Service interface {
	CreateMedication(ctx context.Context, userId int64, create *MedicationPayload) (*Medication, error)
	ListMedications(ctx context.Context, userId int64, pagination store.Pagination) ([]*Medication, error)
	GetMedication(ctx context.Context, userId int64, id int64) (*Medication, error)
	UpdateMedication(ctx context.Context, userId int64, id int64, patch *MedicationPayload) (*Medication, error)
	DeleteMedication(ctx context.Context, userId int64, id int64) error

	CreateUseLog(ctx context.Context, userId int64, medicationId int64, create *UseLogPayload) (*UseLog, error)
	ListUseLogs(ctx context.Context, userId int64, medicationId int64, pagination store.Pagination) ([]*UseLog, error)
	GetUseLog(ctx context.Context, userId int64, id int64) (*UseLog, error)
	UpdateUseLog(ctx context.Context, userId int64, id int64, patch *UseLogPayload) (*UseLog, error)
	DeleteUseLog(ctx context.Context, userId int64, id int64) error

	DeleteAllForProfile(ctx context.Context, profileId int64) error
}

type Medication struct {
	Id             int64   `bson:"_id,omitempty" json:"id"`
	ProfileId      int64   `bson:"perfil_id,omitempty" json:"perfil_id"`
	Name           *string `bson:"nome,omitempty" json:"nome,omitempty"`
	Dosage         *string `bson:"dosagem,omitempty" json:"dosagem,omitempty"`
	Unit           *string `bson:"unidade_medida,omitempty" json:"unidade_medida,omitempty"`
	Form           *string `bson:"forma_farmaceutica,omitempty" json:"forma_farmaceutica,omitempty"`
	FrequencyHours *int    `bson:"frequencia_horas,omitempty" json:"frequencia_horas,omitempty"`
	StartDate      *string `bson:"data_inicio_tratamento,omitempty" json:"data_inicio_tratamento,omitempty"`
	DurationDays   *int    `bson:"duracao_dias,omitempty" json:"duracao_dias,omitempty"`
	ContinuousUse  *bool   `bson:"uso_continuo,omitempty" json:"uso_continuo,omitempty"`
	ReminderActive *bool   `bson:"lembrete_ativo,omitempty" json:"lembrete_ativo,omitempty"`
}

// UseLog records a single intake event for a medication. Ownership is
// established by walking medicamento_id up to the medication's profile.
type UseLog struct {
	Id           int64      `bson:"_id,omitempty" json:"id"`
	MedicationId int64      `bson:"medicamento_id,omitempty" json:"medicamento_id"`
	TakenAt      *time.Time `bson:"data_hora,omitempty" json:"data_hora,omitempty"`
	Status       *string    `bson:"status,omitempty" json:"status,omitempty"`
}

type MedicationPayload struct {
	Name           *string `json:"nome"`
	Dosage         *string `json:"dosagem"`
	Unit           *string `json:"unidade_medida"`
	Form           *string `json:"forma_farmaceutica"`
	FrequencyHours *int    `json:"frequencia_horas"`
	StartDate      *string `json:"data_inicio_tratamento"`
	DurationDays   *int    `json:"duracao_dias"`
	ContinuousUse  *bool   `json:"uso_continuo"`
	ReminderActive *bool   `json:"lembrete_ativo"`
}

func (p *MedicationPayload) Empty() bool {
	return p.Name == nil &&
		p.Dosage == nil &&
		p.Unit == nil &&
		p.Form == nil &&
		p.FrequencyHours == nil &&
		p.StartDate == nil &&
		p.DurationDays == nil &&
		p.ContinuousUse == nil &&
		p.ReminderActive == nil
}

type UseLogPayload struct {
	TakenAt *time.Time `json:"data_hora"`
	Status  *string    `json:"status"`
}

func (p *UseLogPayload) Empty() bool {
	return p.TakenAt == nil && p.Status == nil
}
