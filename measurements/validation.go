package measurements

import (
	"github.com/LuizaMunis/HealthCare-sub000/errors"
)

const (
	minSystolic  = 70
	maxSystolic  = 300
	minDiastolic = 40
	maxDiastolic = 200
	minBpm       = 40
	maxBpm       = 200
)

// Blood pressure is validated on the merged document, so a partial update
// that would leave systolic below diastolic is rejected even when the patch
// itself only touches one of the two values.
func validateBloodPressure(reading *BloodPressureReading) error {
	if reading.Systolic == nil {
		return errors.Validation("sistolica", "is required")
	}
	if reading.Diastolic == nil {
		return errors.Validation("diastolica", "is required")
	}
	if *reading.Systolic < minSystolic || *reading.Systolic > maxSystolic {
		return errors.Validation("sistolica", "must be between 70 and 300 mmHg")
	}
	if *reading.Diastolic < minDiastolic || *reading.Diastolic > maxDiastolic {
		return errors.Validation("diastolica", "must be between 40 and 200 mmHg")
	}
	if *reading.Systolic < *reading.Diastolic {
		return errors.Validation("sistolica", "must be greater than or equal to diastolica")
	}
	if reading.MeasuredAt == nil {
		return errors.Validation("data_medicao", "is required")
	}
	return nil
}

func validateHeartRate(reading *HeartRateReading) error {
	if reading.Bpm == nil {
		return errors.Validation("valor_bpm", "is required")
	}
	if *reading.Bpm < minBpm || *reading.Bpm > maxBpm {
		return errors.Validation("valor_bpm", "must be between 40 and 200 bpm")
	}
	if reading.MeasuredAt == nil {
		return errors.Validation("data_medicao", "is required")
	}
	return nil
}

func validateTemperature(reading *TemperatureReading) error {
	if reading.Celsius == nil {
		return errors.Validation("valor_celsius", "is required")
	}
	if reading.MeasuredAt == nil {
		return errors.Validation("data_medicao", "is required")
	}
	return nil
}
