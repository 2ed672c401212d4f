package consultations

import (
	"context"
	"time"

	"github.com/LuizaMunis/HealthCare-sub000/store"
)

type Service interface {
	Create(ctx context.Context, userId int64, create *ConsultationPayload) (*Consultation, error)
	List(ctx context.Context, userId int64, pagination store.Pagination) ([]*Consultation, error)
	Get(ctx context.Context, userId int64, id int64) (*Consultation, error)
	Update(ctx context.Context, userId int64, id int64, patch *ConsultationPayload) (*Consultation, error)
	Delete(ctx context.Context, userId int64, id int64) error

	DeleteAllForProfile(ctx context.Context, profileId int64) error
}

type Consultation struct {
	Id          int64      `bson:"_id,omitempty" json:"id"`
	ProfileId   int64      `bson:"perfil_id,omitempty" json:"perfil_id"`
	DoctorName  *string    `bson:"nome_medico,omitempty" json:"nome_medico,omitempty"`
	Specialty   *string    `bson:"especialidade,omitempty" json:"especialidade,omitempty"`
	ScheduledAt *time.Time `bson:"data_hora,omitempty" json:"data_hora,omitempty"`
	Location    *string    `bson:"local,omitempty" json:"local,omitempty"`
	Notes       *string    `bson:"observacoes,omitempty" json:"observacoes,omitempty"`
}

type ConsultationPayload struct {
	DoctorName  *string    `json:"nome_medico"`
	Specialty   *string    `json:"especialidade"`
	ScheduledAt *time.Time `json:"data_hora"`
	Location    *string    `json:"local"`
	Notes       *string    `json:"observacoes"`
}

func (p *ConsultationPayload) Empty() bool {
	return p.DoctorName == nil &&
		p.Specialty == nil &&
		p.ScheduledAt == nil &&
		p.Location == nil &&
		p.Notes == nil
}
