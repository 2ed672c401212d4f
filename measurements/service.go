package measurements

import (
	"context"
	"time"

	"github.com/mohae/deepcopy"
	"go.uber.org/zap"

	"github.com/LuizaMunis/HealthCare-sub000/authz"
	"github.com/LuizaMunis/HealthCare-sub000/errors"
	"github.com/LuizaMunis/HealthCare-sub000/store"
)

type service struct {
	bloodPressure BloodPressureRepository
	heartRate     HeartRateRepository
	temperature   TemperatureRepository
	guard         authz.Guard
	logger        *zap.SugaredLogger
}

var _ Service = &service{}

func NewService(bloodPressure BloodPressureRepository, heartRate HeartRateRepository, temperature TemperatureRepository, guard authz.Guard, logger *zap.SugaredLogger) (Service, error) {
	return &service{
		bloodPressure: bloodPressure,
		heartRate:     heartRate,
		temperature:   temperature,
		guard:         guard,
		logger:        logger,
	}, nil
}

// getOwned fetches a reading and confirms it is reachable from the caller's
// profile before handing it back. A caller without a profile sees
// ProfileNotFound before the record lookup can reveal whether the id exists.
func getOwned[PT Reading](ctx context.Context, guard authz.Guard, repo Repository[PT], userId int64, id int64) (PT, error) {
	var zero PT
	if _, err := guard.ResolveProfile(ctx, userId); err != nil {
		return zero, err
	}

	reading, err := repo.Get(ctx, id)
	if err != nil {
		return zero, err
	}
	if _, err := guard.Authorize(ctx, userId, authz.Ref{Type: authz.EntityProfile, Id: reading.GetProfileId()}); err != nil {
		return zero, err
	}
	return reading, nil
}

func (s *service) CreateBloodPressure(ctx context.Context, userId int64, create *BloodPressurePayload) (*BloodPressureReading, error) {
	profileId, err := s.guard.ResolveProfile(ctx, userId)
	if err != nil {
		return nil, err
	}

	reading := &BloodPressureReading{
		ProfileId:  profileId,
		Systolic:   create.Systolic,
		Diastolic:  create.Diastolic,
		MeasuredAt: create.MeasuredAt,
	}
	if reading.MeasuredAt == nil {
		now := time.Now().UTC()
		reading.MeasuredAt = &now
	}
	if err := validateBloodPressure(reading); err != nil {
		return nil, err
	}

	return s.bloodPressure.Create(ctx, reading)
}

func (s *service) ListBloodPressure(ctx context.Context, userId int64, pagination store.Pagination) ([]*BloodPressureReading, error) {
	profileId, err := s.guard.ResolveProfile(ctx, userId)
	if err != nil {
		return nil, err
	}
	return s.bloodPressure.ListForProfile(ctx, profileId, pagination)
}

func (s *service) GetBloodPressure(ctx context.Context, userId int64, id int64) (*BloodPressureReading, error) {
	return getOwned(ctx, s.guard, s.bloodPressure, userId, id)
}

func (s *service) UpdateBloodPressure(ctx context.Context, userId int64, id int64, patch *BloodPressurePayload) (*BloodPressureReading, error) {
	existing, err := getOwned(ctx, s.guard, s.bloodPressure, userId, id)
	if err != nil {
		return nil, err
	}
	if patch.Empty() {
		return nil, errors.EmptyPatch
	}

	merged := deepcopy.Copy(existing).(*BloodPressureReading)
	if patch.Systolic != nil {
		merged.Systolic = patch.Systolic
	}
	if patch.Diastolic != nil {
		merged.Diastolic = patch.Diastolic
	}
	if patch.MeasuredAt != nil {
		merged.MeasuredAt = patch.MeasuredAt
	}
	if err := validateBloodPressure(merged); err != nil {
		return nil, err
	}

	return s.bloodPressure.Update(ctx, id, merged)
}

func (s *service) DeleteBloodPressure(ctx context.Context, userId int64, id int64) error {
	if _, err := getOwned(ctx, s.guard, s.bloodPressure, userId, id); err != nil {
		return err
	}
	return s.bloodPressure.Delete(ctx, id)
}

func (s *service) BloodPressureReport(ctx context.Context, userId int64) (*BloodPressureReport, error) {
	profileId, err := s.guard.ResolveProfile(ctx, userId)
	if err != nil {
		return nil, err
	}

	// The report averages the profile's full history, not a page of it.
	readings, err := s.bloodPressure.AllForProfile(ctx, profileId)
	if err != nil {
		return nil, err
	}

	return ClassifyBloodPressure(readings), nil
}

func (s *service) CreateHeartRate(ctx context.Context, userId int64, create *HeartRatePayload) (*HeartRateReading, error) {
	profileId, err := s.guard.ResolveProfile(ctx, userId)
	if err != nil {
		return nil, err
	}

	reading := &HeartRateReading{
		ProfileId:  profileId,
		Bpm:        create.Bpm,
		MeasuredAt: create.MeasuredAt,
	}
	if reading.MeasuredAt == nil {
		now := time.Now().UTC()
		reading.MeasuredAt = &now
	}
	if err := validateHeartRate(reading); err != nil {
		return nil, err
	}

	return s.heartRate.Create(ctx, reading)
}

func (s *service) ListHeartRate(ctx context.Context, userId int64, pagination store.Pagination) ([]*HeartRateReading, error) {
	profileId, err := s.guard.ResolveProfile(ctx, userId)
	if err != nil {
		return nil, err
	}
	return s.heartRate.ListForProfile(ctx, profileId, pagination)
}

func (s *service) GetHeartRate(ctx context.Context, userId int64, id int64) (*HeartRateReading, error) {
	return getOwned(ctx, s.guard, s.heartRate, userId, id)
}

func (s *service) UpdateHeartRate(ctx context.Context, userId int64, id int64, patch *HeartRatePayload) (*HeartRateReading, error) {
	existing, err := getOwned(ctx, s.guard, s.heartRate, userId, id)
	if err != nil {
		return nil, err
	}
	if patch.Empty() {
		return nil, errors.EmptyPatch
	}

	merged := deepcopy.Copy(existing).(*HeartRateReading)
	if patch.Bpm != nil {
		merged.Bpm = patch.Bpm
	}
	if patch.MeasuredAt != nil {
		merged.MeasuredAt = patch.MeasuredAt
	}
	if err := validateHeartRate(merged); err != nil {
		return nil, err
	}

	return s.heartRate.Update(ctx, id, merged)
}

func (s *service) DeleteHeartRate(ctx context.Context, userId int64, id int64) error {
	if _, err := getOwned(ctx, s.guard, s.heartRate, userId, id); err != nil {
		return err
	}
	return s.heartRate.Delete(ctx, id)
}

func (s *service) CreateTemperature(ctx context.Context, userId int64, create *TemperaturePayload) (*TemperatureReading, error) {
	profileId, err := s.guard.ResolveProfile(ctx, userId)
	if err != nil {
		return nil, err
	}

	reading := &TemperatureReading{
		ProfileId:  profileId,
		Celsius:    create.Celsius,
		MeasuredAt: create.MeasuredAt,
	}
	if reading.MeasuredAt == nil {
		now := time.Now().UTC()
		reading.MeasuredAt = &now
	}
	if err := validateTemperature(reading); err != nil {
		return nil, err
	}

	return s.temperature.Create(ctx, reading)
}

func (s *service) ListTemperature(ctx context.Context, userId int64, pagination store.Pagination) ([]*TemperatureReading, error) {
	profileId, err := s.guard.ResolveProfile(ctx, userId)
	if err != nil {
		return nil, err
	}
	return s.temperature.ListForProfile(ctx, profileId, pagination)
}

func (s *service) GetTemperature(ctx context.Context, userId int64, id int64) (*TemperatureReading, error) {
	return getOwned(ctx, s.guard, s.temperature, userId, id)
}

func (s *service) UpdateTemperature(ctx context.Context, userId int64, id int64, patch *TemperaturePayload) (*TemperatureReading, error) {
	existing, err := getOwned(ctx, s.guard, s.temperature, userId, id)
	if err != nil {
		return nil, err
	}
	if patch.Empty() {
		return nil, errors.EmptyPatch
	}

	merged := deepcopy.Copy(existing).(*TemperatureReading)
	if patch.Celsius != nil {
		merged.Celsius = patch.Celsius
	}
	if patch.MeasuredAt != nil {
		merged.MeasuredAt = patch.MeasuredAt
	}
	if err := validateTemperature(merged); err != nil {
		return nil, err
	}

	return s.temperature.Update(ctx, id, merged)
}

func (s *service) DeleteTemperature(ctx context.Context, userId int64, id int64) error {
	if _, err := getOwned(ctx, s.guard, s.temperature, userId, id); err != nil {
		return err
	}
	return s.temperature.Delete(ctx, id)
}
