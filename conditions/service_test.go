package conditions_test

import (
	"context"
	stderrors "errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/fx/fxtest"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/LuizaMunis/HealthCare-sub000/authz"
	authzTest "github.com/LuizaMunis/HealthCare-sub000/authz/test"
	"github.com/LuizaMunis/HealthCare-sub000/conditions"
	conditionsTest "github.com/LuizaMunis/HealthCare-sub000/conditions/test"
	"github.com/LuizaMunis/HealthCare-sub000/errors"
	"github.com/LuizaMunis/HealthCare-sub000/pointer"
	"github.com/LuizaMunis/HealthCare-sub000/profiles"
	"github.com/LuizaMunis/HealthCare-sub000/store"
	dbTest "github.com/LuizaMunis/HealthCare-sub000/store/test"
	"github.com/LuizaMunis/HealthCare-sub000/test"
)

// The suite wires a real guard over real repositories so the ownership walk
// from symptom to condition to profile is exercised end to end.
type conditionsFixture struct {
	ctx          context.Context
	service      conditions.Service
	profilesRepo profiles.Repository
}

func newConditionsFixture() *conditionsFixture {
	tb := GinkgoT()
	ctrl := gomock.NewController(tb)
	lifecycle := fxtest.NewLifecycle(tb)
	db := dbTest.GetTestDatabase()

	profilesRepo, err := profiles.NewRepository(db, lifecycle)
	Expect(err).ToNot(HaveOccurred())
	conditionsRepo, err := conditions.NewConditionRepository(db, lifecycle)
	Expect(err).ToNot(HaveOccurred())
	symptomsRepo, err := conditions.NewSymptomRepository(db, lifecycle)
	Expect(err).ToNot(HaveOccurred())

	guard, err := authz.NewGuard(profilesRepo, conditionsRepo, authzTest.NewMockMedicationResolver(ctrl), zap.NewNop().Sugar())
	Expect(err).ToNot(HaveOccurred())

	service, err := conditions.NewService(conditionsRepo, symptomsRepo, db.Client(), guard, zap.NewNop().Sugar())
	Expect(err).ToNot(HaveOccurred())
	lifecycle.RequireStart()

	return &conditionsFixture{
		ctx:          context.Background(),
		service:      service,
		profilesRepo: profilesRepo,
	}
}

func (f *conditionsFixture) newUserWithProfile() (int64, int64) {
	userId := int64(test.Faker.IntBetween(1, 1000000))
	profile, err := f.profilesRepo.Create(f.ctx, &profiles.Profile{UserId: userId})
	Expect(err).ToNot(HaveOccurred())
	return userId, profile.Id
}

var _ = Describe("Conditions Service", func() {
	var fixture *conditionsFixture
	var userId int64

	BeforeEach(func() {
		fixture = newConditionsFixture()
		userId, _ = fixture.newUserWithProfile()
	})

	Describe("CreateCondition", func() {
		It("fails with profile not found when the user has no profile", func() {
			_, err := fixture.service.CreateCondition(fixture.ctx, int64(test.Faker.IntBetween(2000000, 3000000)), conditionsTest.RandomConditionPayload())
			Expect(err).To(MatchError(errors.ProfileNotFound))
		})

		It("requires a name", func() {
			create := conditionsTest.RandomConditionPayload()
			create.Name = nil

			_, err := fixture.service.CreateCondition(fixture.ctx, userId, create)

			validationErr := errors.ValidationError{}
			Expect(stderrors.As(err, &validationErr)).To(BeTrue())
			Expect(validationErr.Field).To(Equal("nome"))
		})

		It("requires a type", func() {
			create := conditionsTest.RandomConditionPayload()
			create.Type = nil

			_, err := fixture.service.CreateCondition(fixture.ctx, userId, create)

			validationErr := errors.ValidationError{}
			Expect(stderrors.As(err, &validationErr)).To(BeTrue())
			Expect(validationErr.Field).To(Equal("tipo"))
		})

		It("rejects malformed dates", func() {
			create := conditionsTest.RandomConditionPayload()
			create.CureDate = pointer.FromAny("10/03/2024")

			_, err := fixture.service.CreateCondition(fixture.ctx, userId, create)
			Expect(err).To(MatchError(errors.ConstraintViolation))
		})

		It("persists the condition under the caller's profile", func() {
			created, err := fixture.service.CreateCondition(fixture.ctx, userId, conditionsTest.RandomConditionPayload())
			Expect(err).ToNot(HaveOccurred())
			Expect(created.Id).To(BeNumerically(">", 0))

			list, err := fixture.service.ListConditions(fixture.ctx, userId, store.DefaultPagination())
			Expect(err).ToNot(HaveOccurred())
			Expect(list).To(ContainElement(created))
		})
	})

	Describe("GetCondition", func() {
		It("returns the caller's own condition and denies everyone else", func() {
			created, err := fixture.service.CreateCondition(fixture.ctx, userId, conditionsTest.RandomConditionPayload())
			Expect(err).ToNot(HaveOccurred())

			fetched, err := fixture.service.GetCondition(fixture.ctx, userId, created.Id)
			Expect(err).ToNot(HaveOccurred())
			Expect(fetched).To(Equal(created))

			otherUserId, _ := fixture.newUserWithProfile()
			_, err = fixture.service.GetCondition(fixture.ctx, otherUserId, created.Id)
			Expect(err).To(MatchError(errors.AccessDenied))
		})

		It("fails with record not found for unknown ids", func() {
			_, err := fixture.service.GetCondition(fixture.ctx, userId, 99999999)
			Expect(err).To(MatchError(errors.RecordNotFound))
		})

		It("reports the missing profile before the record lookup", func() {
			created, err := fixture.service.CreateCondition(fixture.ctx, userId, conditionsTest.RandomConditionPayload())
			Expect(err).ToNot(HaveOccurred())

			userWithoutProfile := int64(test.Faker.IntBetween(2000000, 3000000))
			_, err = fixture.service.GetCondition(fixture.ctx, userWithoutProfile, created.Id)
			Expect(err).To(MatchError(errors.ProfileNotFound))

			// An unknown id must not leak through as record not found either
			_, err = fixture.service.GetCondition(fixture.ctx, userWithoutProfile, 99999999)
			Expect(err).To(MatchError(errors.ProfileNotFound))

			_, err = fixture.service.GetSymptom(fixture.ctx, userWithoutProfile, 99999999)
			Expect(err).To(MatchError(errors.ProfileNotFound))
		})
	})

	Describe("UpdateCondition", func() {
		It("rejects an empty patch", func() {
			created, err := fixture.service.CreateCondition(fixture.ctx, userId, conditionsTest.RandomConditionPayload())
			Expect(err).ToNot(HaveOccurred())

			_, err = fixture.service.UpdateCondition(fixture.ctx, userId, created.Id, &conditions.ConditionPayload{})
			Expect(err).To(MatchError(errors.EmptyPatch))
		})

		It("applies a partial patch and keeps the remaining fields", func() {
			created, err := fixture.service.CreateCondition(fixture.ctx, userId, conditionsTest.RandomConditionPayload())
			Expect(err).ToNot(HaveOccurred())

			updated, err := fixture.service.UpdateCondition(fixture.ctx, userId, created.Id, &conditions.ConditionPayload{
				CureDate: pointer.FromAny("2025-01-20"),
			})
			Expect(err).ToNot(HaveOccurred())
			Expect(*updated.CureDate).To(Equal("2025-01-20"))
			Expect(updated.Name).To(Equal(created.Name))
			Expect(updated.ProfileId).To(Equal(created.ProfileId))
		})
	})

	Describe("DeleteCondition", func() {
		It("cascades to all of the condition's symptoms", func() {
			created, err := fixture.service.CreateCondition(fixture.ctx, userId, conditionsTest.RandomConditionPayload())
			Expect(err).ToNot(HaveOccurred())

			first, err := fixture.service.CreateSymptom(fixture.ctx, userId, created.Id, conditionsTest.RandomSymptomPayload())
			Expect(err).ToNot(HaveOccurred())
			second, err := fixture.service.CreateSymptom(fixture.ctx, userId, created.Id, conditionsTest.RandomSymptomPayload())
			Expect(err).ToNot(HaveOccurred())

			Expect(fixture.service.DeleteCondition(fixture.ctx, userId, created.Id)).To(Succeed())

			_, err = fixture.service.GetCondition(fixture.ctx, userId, created.Id)
			Expect(err).To(MatchError(errors.RecordNotFound))
			_, err = fixture.service.GetSymptom(fixture.ctx, userId, first.Id)
			Expect(err).To(MatchError(errors.RecordNotFound))
			_, err = fixture.service.GetSymptom(fixture.ctx, userId, second.Id)
			Expect(err).To(MatchError(errors.RecordNotFound))
		})
	})

	Describe("Symptoms", func() {
		var condition *conditions.Condition

		BeforeEach(func() {
			var err error
			condition, err = fixture.service.CreateCondition(fixture.ctx, userId, conditionsTest.RandomConditionPayload())
			Expect(err).ToNot(HaveOccurred())
		})

		It("authorizes the parent condition before a nested create", func() {
			otherUserId, _ := fixture.newUserWithProfile()

			_, err := fixture.service.CreateSymptom(fixture.ctx, otherUserId, condition.Id, conditionsTest.RandomSymptomPayload())
			Expect(err).To(MatchError(errors.AccessDenied))

			list, err := fixture.service.ListSymptoms(fixture.ctx, userId, condition.Id, store.DefaultPagination())
			Expect(err).ToNot(HaveOccurred())
			Expect(list).To(BeEmpty())
		})

		It("requires a description", func() {
			create := conditionsTest.RandomSymptomPayload()
			create.Description = nil

			_, err := fixture.service.CreateSymptom(fixture.ctx, userId, condition.Id, create)

			validationErr := errors.ValidationError{}
			Expect(stderrors.As(err, &validationErr)).To(BeTrue())
			Expect(validationErr.Field).To(Equal("descricao"))
		})

		It("rejects intensities outside the enumeration", func() {
			create := conditionsTest.RandomSymptomPayload()
			create.Intensity = pointer.FromAny("EXTREMA")

			_, err := fixture.service.CreateSymptom(fixture.ctx, userId, condition.Id, create)
			Expect(err).To(MatchError(errors.ConstraintViolation))
		})

		It("normalizes the intensity to uppercase", func() {
			create := conditionsTest.RandomSymptomPayload()
			create.Intensity = pointer.FromAny("moderada")

			symptom, err := fixture.service.CreateSymptom(fixture.ctx, userId, condition.Id, create)
			Expect(err).ToNot(HaveOccurred())
			Expect(*symptom.Intensity).To(Equal(conditions.IntensityModerate))
			Expect(*symptom.OccurredAt).ToNot(BeZero())
		})

		It("walks the ownership chain for direct symptom access", func() {
			symptom, err := fixture.service.CreateSymptom(fixture.ctx, userId, condition.Id, conditionsTest.RandomSymptomPayload())
			Expect(err).ToNot(HaveOccurred())

			fetched, err := fixture.service.GetSymptom(fixture.ctx, userId, symptom.Id)
			Expect(err).ToNot(HaveOccurred())
			Expect(fetched).To(Equal(symptom))

			otherUserId, _ := fixture.newUserWithProfile()
			_, err = fixture.service.GetSymptom(fixture.ctx, otherUserId, symptom.Id)
			Expect(err).To(MatchError(errors.AccessDenied))
		})

		It("updates the merged symptom state", func() {
			symptom, err := fixture.service.CreateSymptom(fixture.ctx, userId, condition.Id, conditionsTest.RandomSymptomPayload())
			Expect(err).ToNot(HaveOccurred())

			updated, err := fixture.service.UpdateSymptom(fixture.ctx, userId, symptom.Id, &conditions.SymptomPayload{
				Intensity: pointer.FromAny(conditions.IntensityIntense),
			})
			Expect(err).ToNot(HaveOccurred())
			Expect(*updated.Intensity).To(Equal(conditions.IntensityIntense))
			Expect(updated.Description).To(Equal(symptom.Description))
			Expect(updated.ConditionId).To(Equal(condition.Id))
		})
	})

	Describe("DeleteAllForProfile", func() {
		It("removes the profile's conditions and their symptoms", func() {
			otherUserId, otherProfileId := fixture.newUserWithProfile()
			condition, err := fixture.service.CreateCondition(fixture.ctx, otherUserId, conditionsTest.RandomConditionPayload())
			Expect(err).ToNot(HaveOccurred())
			symptom, err := fixture.service.CreateSymptom(fixture.ctx, otherUserId, condition.Id, conditionsTest.RandomSymptomPayload())
			Expect(err).ToNot(HaveOccurred())

			Expect(fixture.service.DeleteAllForProfile(fixture.ctx, otherProfileId)).To(Succeed())

			_, err = fixture.service.GetCondition(fixture.ctx, otherUserId, condition.Id)
			Expect(err).To(MatchError(errors.RecordNotFound))
			_, err = fixture.service.GetSymptom(fixture.ctx, otherUserId, symptom.Id)
			Expect(err).To(MatchError(errors.RecordNotFound))
		})
	})
})
