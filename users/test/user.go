package test

import (
	"github.com/LuizaMunis/HealthCare-sub000/test"
	"github.com/LuizaMunis/HealthCare-sub000/users"
)

func RandomNewUser() *users.NewUser {
	return &users.NewUser{
		FullName: test.Faker.Person().Name(),
		Email:    test.Faker.Internet().Email(),
		Password: test.Faker.Internet().Password(),
	}
}
