package test

import (
	"github.com/LuizaMunis/HealthCare-sub000/conditions"
	"github.com/LuizaMunis/HealthCare-sub000/pointer"
	"github.com/LuizaMunis/HealthCare-sub000/test"
)

func RandomConditionPayload() *conditions.ConditionPayload {
	return &conditions.ConditionPayload{
		Name:          pointer.FromAny(test.Faker.Lorem().Sentence(2)),
		Type:          pointer.FromAny(test.Faker.RandomStringElement([]string{"CRONICA", "AGUDA", "INFECCIOSA"})),
		DiagnosisDate: pointer.FromAny("2024-03-10"),
		Notes:         pointer.FromAny(test.Faker.Lorem().Sentence(6)),
	}
}

func RandomSymptomPayload() *conditions.SymptomPayload {
	return &conditions.SymptomPayload{
		Description: pointer.FromAny(test.Faker.Lorem().Sentence(3)),
		Intensity: pointer.FromAny(test.Faker.RandomStringElement([]string{
			conditions.IntensityMild,
			conditions.IntensityModerate,
			conditions.IntensityIntense,
		})),
	}
}
