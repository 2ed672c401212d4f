package test

import (
	"time"

	"github.com/LuizaMunis/HealthCare-sub000/measurements"
	"github.com/LuizaMunis/HealthCare-sub000/pointer"
	"github.com/LuizaMunis/HealthCare-sub000/test"
)

func RandomMeasuredAt() *time.Time {
	return pointer.FromAny(test.PastTimestamp())
}

func RandomBloodPressurePayload() *measurements.BloodPressurePayload {
	return &measurements.BloodPressurePayload{
		Systolic:   pointer.FromAny(test.Faker.IntBetween(90, 180)),
		Diastolic:  pointer.FromAny(test.Faker.IntBetween(60, 89)),
		MeasuredAt: RandomMeasuredAt(),
	}
}

func RandomHeartRatePayload() *measurements.HeartRatePayload {
	return &measurements.HeartRatePayload{
		Bpm:        pointer.FromAny(test.Faker.IntBetween(50, 150)),
		MeasuredAt: RandomMeasuredAt(),
	}
}

func RandomTemperaturePayload() *measurements.TemperaturePayload {
	return &measurements.TemperaturePayload{
		Celsius:    pointer.FromAny(test.Faker.Float64(1, 35, 41)),
		MeasuredAt: RandomMeasuredAt(),
	}
}
