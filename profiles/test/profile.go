package test

import (
	"fmt"
	"time"

	"github.com/LuizaMunis/HealthCare-sub000/pointer"
	"github.com/LuizaMunis/HealthCare-sub000/profiles"
	"github.com/LuizaMunis/HealthCare-sub000/test"
)

func RandomBirthDate() *string {
	age := test.Faker.IntBetween(18, 60)
	birthDate := time.Now().AddDate(-age, 0, -test.Faker.IntBetween(0, 300))
	return pointer.FromAny(birthDate.Format("2006-01-02"))
}

// RandomCpf returns 11 digits with a fixed prefix so it can never collapse
// into a single repeated digit.
func RandomCpf() *string {
	return pointer.FromAny(fmt.Sprintf("52%09d", test.Faker.IntBetween(0, 999999999)))
}

func RandomPhone() *string {
	return pointer.FromAny(fmt.Sprintf("119%08d", test.Faker.IntBetween(0, 99999999)))
}

func RandomNewProfile() *profiles.NewProfile {
	return &profiles.NewProfile{
		BirthDate: RandomBirthDate(),
		Phone:     RandomPhone(),
		Gender:    pointer.FromAny(profiles.GenderFemale),
		Cpf:       RandomCpf(),
		WeightKg:  pointer.FromAny(test.Faker.Float64(1, 50, 120)),
		HeightCm:  pointer.FromAny(test.Faker.IntBetween(150, 200)),
	}
}
