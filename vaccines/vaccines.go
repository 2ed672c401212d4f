package vaccines

import (
	"context"

	"github.com/LuizaMunis/HealthCare-sub000/store"
)

type Service interface {
	Create(ctx context.Context, userId int64, create *VaccinePayload) (*Vaccine, error)
	List(ctx context.Context, userId int64, pagination store.Pagination) ([]*Vaccine, error)
	Get(ctx context.Context, userId int64, id int64) (*Vaccine, error)
	Update(ctx context.Context, userId int64, id int64, patch *VaccinePayload) (*Vaccine, error)
	Delete(ctx context.Context, userId int64, id int64) error

	DeleteAllForProfile(ctx context.Context, profileId int64) error
}

type Vaccine struct {
	Id          int64   `bson:"_id,omitempty" json:"id"`
	ProfileId   int64   `bson:"perfil_id,omitempty" json:"perfil_id"`
	Name        *string `bson:"nome,omitempty" json:"nome,omitempty"`
	Dose        *string `bson:"dose,omitempty" json:"dose,omitempty"`
	AppliedDate *string `bson:"data_aplicacao,omitempty" json:"data_aplicacao,omitempty"`
}

type VaccinePayload struct {
	Name        *string `json:"nome"`
	Dose        *string `json:"dose"`
	AppliedDate *string `json:"data_aplicacao"`
}

func (p *VaccinePayload) Empty() bool {
	return p.Name == nil && p.Dose == nil && p.AppliedDate == nil
}
