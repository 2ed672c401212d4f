package vaccines_test

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
	"github.com/LuizaMunis/HealthCare-sub000/errors"
	"github.com/LuizaMunis/HealthCare-sub000/pointer"
	"github.com/LuizaMunis/HealthCare-sub000/profiles"
	"github.com/LuizaMunis/HealthCare-sub000/store"
	dbTest "github.com/LuizaMunis/HealthCare-sub000/store/test"
	"github.com/LuizaMunis/HealthCare-sub000/test"
	"github.com/LuizaMunis/HealthCare-sub000/vaccines"
)

var _ = Describe("Vaccines Service", func() {
	var service vaccines.Service
	var profilesRepo profiles.Repository
	var ctx context.Context
	var userId int64

	newUserWithProfile := func() int64 {
		id := int64(test.Faker.IntBetween(1, 1000000))
		_, err := profilesRepo.Create(ctx, &profiles.Profile{UserId: id})
		Expect(err).ToNot(HaveOccurred())
		return id
	}

	randomPayload := func() *vaccines.VaccinePayload {
		return &vaccines.VaccinePayload{
			Name:        pointer.FromAny(test.Faker.Lorem().Word()),
			Dose:        pointer.FromAny("2a dose"),
			AppliedDate: pointer.FromAny("2025-04-22"),
		}
	}

	BeforeEach(func() {
		ctx = context.Background()
		ctrl := gomock.NewController(GinkgoT())
		lifecycle := fxtest.NewLifecycle(GinkgoT())
		db := dbTest.GetTestDatabase()

		var err error
		profilesRepo, err = profiles.NewRepository(db, lifecycle)
		Expect(err).ToNot(HaveOccurred())
		repo, err := vaccines.NewRepository(db, lifecycle)
		Expect(err).ToNot(HaveOccurred())

		guard, err := authz.NewGuard(profilesRepo, authzTest.NewMockConditionResolver(ctrl), authzTest.NewMockMedicationResolver(ctrl), zap.NewNop().Sugar())
		Expect(err).ToNot(HaveOccurred())

		service, err = vaccines.NewService(repo, guard, zap.NewNop().Sugar())
		Expect(err).ToNot(HaveOccurred())
		lifecycle.RequireStart()

		userId = newUserWithProfile()
	})

	It("requires a name and an application date", func() {
		create := randomPayload()
		create.Name = nil
		_, err := service.Create(ctx, userId, create)

		validationErr := errors.ValidationError{}
		Expect(stderrors.As(err, &validationErr)).To(BeTrue())
		Expect(validationErr.Field).To(Equal("nome"))

		create = randomPayload()
		create.AppliedDate = nil
		_, err = service.Create(ctx, userId, create)
		Expect(err).To(MatchError(errors.ConstraintViolation))
	})

	It("stores and lists vaccines under the caller's profile", func() {
		created, err := service.Create(ctx, userId, randomPayload())
		Expect(err).ToNot(HaveOccurred())
		Expect(created.Id).To(BeNumerically(">", 0))

		list, err := service.List(ctx, userId, store.DefaultPagination())
		Expect(err).ToNot(HaveOccurred())
		Expect(list).To(ContainElement(created))
	})

	It("reports the missing profile before the record lookup", func() {
		created, err := service.Create(ctx, userId, randomPayload())
		Expect(err).ToNot(HaveOccurred())

		userWithoutProfile := int64(test.Faker.IntBetween(2000000, 3000000))
		_, err = service.Get(ctx, userWithoutProfile, created.Id)
		Expect(err).To(MatchError(errors.ProfileNotFound))

		// An unknown id must not leak through as record not found either
		_, err = service.Get(ctx, userWithoutProfile, 99999999)
		Expect(err).To(MatchError(errors.ProfileNotFound))
	})

	It("denies access to another user's vaccine", func() {
		created, err := service.Create(ctx, userId, randomPayload())
		Expect(err).ToNot(HaveOccurred())

		otherUserId := newUserWithProfile()
		_, err = service.Get(ctx, otherUserId, created.Id)
		Expect(err).To(MatchError(errors.AccessDenied))
	})

	It("updates the merged vaccine state", func() {
		created, err := service.Create(ctx, userId, randomPayload())
		Expect(err).ToNot(HaveOccurred())

		updated, err := service.Update(ctx, userId, created.Id, &vaccines.VaccinePayload{
			Dose: pointer.FromAny("reforco"),
		})
		Expect(err).ToNot(HaveOccurred())
		Expect(*updated.Dose).To(Equal("reforco"))
		Expect(updated.Name).To(Equal(created.Name))

		_, err = service.Update(ctx, userId, created.Id, &vaccines.VaccinePayload{})
		Expect(err).To(MatchError(errors.EmptyPatch))
	})

	It("deletes vaccines and removes all records for a profile", func() {
		created, err := service.Create(ctx, userId, randomPayload())
		Expect(err).ToNot(HaveOccurred())

		Expect(service.Delete(ctx, userId, created.Id)).To(Succeed())
		_, err = service.Get(ctx, userId, created.Id)
		Expect(err).To(MatchError(errors.RecordNotFound))
	})
})
