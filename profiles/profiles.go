package profiles

import (
	"context"
	"time"

	"github.com/LuizaMunis/HealthCare-sub000/measurements"
)

const (
	GenderMale        = "MASCULINO"
	GenderFemale      = "FEMININO"
	GenderOther       = "OUTRO"
	GenderUnspecified = "NAO_INFORMADO"
)

type Service interface {
	Create(ctx context.Context, userId int64, create *NewProfile) (*Profile, error)
	GetByUserId(ctx context.Context, userId int64) (*Profile, error)
	Update(ctx context.Context, userId int64, patch *ProfileUpdate) (*Profile, error)
	Delete(ctx context.Context, userId int64) error
	BodyMassIndex(ctx context.Context, userId int64) (*measurements.BMIReport, error)
}

// Profile is the single medical-record root owned by one user. Every other
// record in the system is reachable from exactly one profile.
type Profile struct {
	Id        int64     `bson:"_id,omitempty" json:"id"`
	UserId    int64     `bson:"usuario_id,omitempty" json:"usuario_id"`
	BirthDate *string   `bson:"data_nascimento,omitempty" json:"data_nascimento,omitempty"`
	Phone     *string   `bson:"telefone,omitempty" json:"telefone,omitempty"`
	Gender    *string   `bson:"genero,omitempty" json:"genero,omitempty"`
	Cpf       *string   `bson:"cpf,omitempty" json:"cpf,omitempty"`
	WeightKg  *float64  `bson:"peso,omitempty" json:"peso,omitempty"`
	HeightCm  *int      `bson:"altura,omitempty" json:"altura,omitempty"`
	UpdatedAt time.Time `bson:"atualizado_em,omitempty" json:"atualizado_em"`
}

type NewProfile struct {
	BirthDate *string  `json:"data_nascimento"`
	Phone     *string  `json:"telefone"`
	Gender    *string  `json:"genero"`
	Cpf       *string  `json:"cpf"`
	WeightKg  *float64 `json:"peso"`
	HeightCm  *int     `json:"altura"`
}

type ProfileUpdate struct {
	BirthDate *string  `json:"data_nascimento"`
	Phone     *string  `json:"telefone"`
	Gender    *string  `json:"genero"`
	Cpf       *string  `json:"cpf"`
	WeightKg  *float64 `json:"peso"`
	HeightCm  *int     `json:"altura"`
}

func (u *ProfileUpdate) Empty() bool {
	return u.BirthDate == nil &&
		u.Phone == nil &&
		u.Gender == nil &&
		u.Cpf == nil &&
		u.WeightKg == nil &&
		u.HeightCm == nil
}
