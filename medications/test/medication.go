package test

import (
	"github.com/LuizaMunis/HealthCare-sub000/medications"
	"github.com/LuizaMunis/HealthCare-sub000/pointer"
	"github.com/LuizaMunis/HealthCare-sub000/test"
)

func RandomMedicationPayload() *medications.MedicationPayload {
	return &medications.MedicationPayload{
		Name:           pointer.FromAny(test.Faker.Lorem().Word()),
		Dosage:         pointer.FromAny("500"),
		Unit:           pointer.FromAny("mg"),
		Form:           pointer.FromAny("COMPRIMIDO"),
		FrequencyHours: pointer.FromAny(test.Faker.IntBetween(4, 24)),
		StartDate:      pointer.FromAny("2025-06-01"),
		DurationDays:   pointer.FromAny(test.Faker.IntBetween(5, 30)),
		ContinuousUse:  pointer.FromAny(false),
		ReminderActive: pointer.FromAny(true),
	}
}

func RandomUseLogPayload() *medications.UseLogPayload {
	return &medications.UseLogPayload{
		TakenAt: pointer.FromAny(test.PastTimestamp()),
		Status: pointer.FromAny(test.Faker.RandomStringElement([]string{
			medications.UseStatusTaken,
			medications.UseStatusSkipped,
			medications.UseStatusLate,
		})),
	}
}
