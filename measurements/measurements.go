package measurements

import (
	"context"
	"time"

	"github.com/LuizaMunis/HealthCare-sub000/store"
)

type Service interface {
	CreateBloodPressure(ctx context.Context, userId int64, create *BloodPressurePayload) (*BloodPressureReading, error)
	ListBloodPressure(ctx context.Context, userId int64, pagination store.Pagination) ([]*BloodPressureReading, error)
	GetBloodPressure(ctx context.Context, userId int64, id int64) (*BloodPressureReading, error)
	UpdateBloodPressure(ctx context.Context, userId int64, id int64, patch *BloodPressurePayload) (*BloodPressureReading, error)
	DeleteBloodPressure(ctx context.Context, userId int64, id int64) error
	BloodPressureReport(ctx context.Context, userId int64) (*BloodPressureReport, error)

	CreateHeartRate(ctx context.Context, userId int64, create *HeartRatePayload) (*HeartRateReading, error)
	ListHeartRate(ctx context.Context, userId int64, pagination store.Pagination) ([]*HeartRateReading, error)
	GetHeartRate(ctx context.Context, userId int64, id int64) (*HeartRateReading, error)
	UpdateHeartRate(ctx context.Context, userId int64, id int64, patch *HeartRatePayload) (*HeartRateReading, error)
	DeleteHeartRate(ctx context.Context, userId int64, id int64) error

	CreateTemperature(ctx context.Context, userId int64, create *TemperaturePayload) (*TemperatureReading, error)
	ListTemperature(ctx context.Context, userId int64, pagination store.Pagination) ([]*TemperatureReading, error)
	GetTemperature(ctx context.Context, userId int64, id int64) (*TemperatureReading, error)
	UpdateTemperature(ctx context.Context, userId int64, id int64, patch *TemperaturePayload) (*TemperatureReading, error)
	DeleteTemperature(ctx context.Context, userId int64, id int64) error
}

// Reading is implemented by all measurement documents so the repository and
// the ownership checks can be written once.
type Reading interface {
	GetId() int64
	SetId(id int64)
	GetProfileId() int64
	SetProfileId(id int64)
}

type BloodPressureReading struct {
	Id         int64      `bson:"_id,omitempty" json:"id"`
	ProfileId  int64      `bson:"perfil_id,omitempty" json:"perfil_id"`
	Systolic   *int       `bson:"sistolica,omitempty" json:"sistolica,omitempty"`
	Diastolic  *int       `bson:"diastolica,omitempty" json:"diastolica,omitempty"`
	MeasuredAt *time.Time `bson:"data_medicao,omitempty" json:"data_medicao,omitempty"`
}

func (r *BloodPressureReading) GetId() int64          { return r.Id }
func (r *BloodPressureReading) SetId(id int64)        { r.Id = id }
func (r *BloodPressureReading) GetProfileId() int64   { return r.ProfileId }
func (r *BloodPressureReading) SetProfileId(id int64) { r.ProfileId = id }

type HeartRateReading struct {
	Id         int64      `bson:"_id,omitempty" json:"id"`
	ProfileId  int64      `bson:"perfil_id,omitempty" json:"perfil_id"`
	Bpm        *int       `bson:"valor_bpm,omitempty" json:"valor_bpm,omitempty"`
	MeasuredAt *time.Time `bson:"data_medicao,omitempty" json:"data_medicao,omitempty"`
}

func (r *HeartRateReading) GetId() int64          { return r.Id }
func (r *HeartRateReading) SetId(id int64)        { r.Id = id }
func (r *HeartRateReading) GetProfileId() int64   { return r.ProfileId }
func (r *HeartRateReading) SetProfileId(id int64) { r.ProfileId = id }

type TemperatureReading struct {
	Id         int64      `bson:"_id,omitempty" json:"id"`
	ProfileId  int64      `bson:"perfil_id,omitempty" json:"perfil_id"`
	Celsius    *float64   `bson:"valor_celsius,omitempty" json:"valor_celsius,omitempty"`
	MeasuredAt *time.Time `bson:"data_medicao,omitempty" json:"data_medicao,omitempty"`
}

func (r *TemperatureReading) GetId() int64          { return r.Id }
func (r *TemperatureReading) SetId(id int64)        { r.Id = id }
func (r *TemperatureReading) GetProfileId() int64   { return r.ProfileId }
func (r *TemperatureReading) SetProfileId(id int64) { r.ProfileId = id }

type BloodPressurePayload struct {
	Systolic   *int       `json:"sistolica"`
	Diastolic  *int       `json:"diastolica"`
	MeasuredAt *time.Time `json:"data_medicao"`
}

func (p *BloodPressurePayload) Empty() bool {
	return p.Systolic == nil && p.Diastolic == nil && p.MeasuredAt == nil
}

type HeartRatePayload struct {
	Bpm        *int       `json:"valor_bpm"`
	MeasuredAt *time.Time `json:"data_medicao"`
}

func (p *HeartRatePayload) Empty() bool {
	return p.Bpm == nil && p.MeasuredAt == nil
}

type TemperaturePayload struct {
	Celsius    *float64   `json:"valor_celsius"`
	MeasuredAt *time.Time `json:"data_medicao"`
}

func (p *TemperaturePayload) Empty() bool {
	return p.Celsius == nil && p.MeasuredAt == nil
}
