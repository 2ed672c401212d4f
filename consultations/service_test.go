package consultations_test

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
	"github.com/LuizaMunis/HealthCare-sub000/consultations"
	"github.com/LuizaMunis/HealthCare-sub000/errors"
	"github.com/LuizaMunis/HealthCare-sub000/pointer"
	"github.com/LuizaMunis/HealthCare-sub000/profiles"
	"github.com/LuizaMunis/HealthCare-sub000/store"
	dbTest "github.com/LuizaMunis/HealthCare-sub000/store/test"
	"github.com/LuizaMunis/HealthCare-sub000/test"
)

var _ = Describe("Consultations Service", func() {
	var service consultations.Service
	var profilesRepo profiles.Repository
	var ctx context.Context
	var userId int64

	newUserWithProfile := func() int64 {
		id := int64(test.Faker.IntBetween(1, 1000000))
		_, err := profilesRepo.Create(ctx, &profiles.Profile{UserId: id})
		Expect(err).ToNot(HaveOccurred())
		return id
	}

	randomPayload := func() *consultations.ConsultationPayload {
		return &consultations.ConsultationPayload{
			DoctorName:  pointer.FromAny(test.Faker.Person().Name()),
			Specialty:   pointer.FromAny("Cardiologia"),
			ScheduledAt: pointer.FromAny(test.PastTimestamp()),
			Location:    pointer.FromAny(test.Faker.Address().City()),
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
		repo, err := consultations.NewRepository(db, lifecycle)
		Expect(err).ToNot(HaveOccurred())

		guard, err := authz.NewGuard(profilesRepo, authzTest.NewMockConditionResolver(ctrl), authzTest.NewMockMedicationResolver(ctrl), zap.NewNop().Sugar())
		Expect(err).ToNot(HaveOccurred())

		service, err = consultations.NewService(repo, guard, zap.NewNop().Sugar())
		Expect(err).ToNot(HaveOccurred())
		lifecycle.RequireStart()

		userId = newUserWithProfile()
	})

	It("requires the doctor's name and a date", func() {
		create := randomPayload()
		create.DoctorName = nil
		_, err := service.Create(ctx, userId, create)

		validationErr := errors.ValidationError{}
		Expect(stderrors.As(err, &validationErr)).To(BeTrue())
		Expect(validationErr.Field).To(Equal("nome_medico"))

		create = randomPayload()
		create.ScheduledAt = nil
		_, err = service.Create(ctx, userId, create)
		Expect(err).To(MatchError(errors.ConstraintViolation))
	})

	It("fails with profile not found before any record operation", func() {
		userWithoutProfile := int64(test.Faker.IntBetween(2000000, 3000000))
		_, err := service.Create(ctx, userWithoutProfile, randomPayload())
		Expect(err).To(MatchError(errors.ProfileNotFound))

		_, err = service.List(ctx, userWithoutProfile, store.DefaultPagination())
		Expect(err).To(MatchError(errors.ProfileNotFound))

		// An unknown id must not leak through as record not found
		_, err = service.Get(ctx, userWithoutProfile, 99999999)
		Expect(err).To(MatchError(errors.ProfileNotFound))

		Expect(service.Delete(ctx, userWithoutProfile, 99999999)).
			To(MatchError(errors.ProfileNotFound))
	})

	It("stores and lists consultations under the caller's profile", func() {
		created, err := service.Create(ctx, userId, randomPayload())
		Expect(err).ToNot(HaveOccurred())

		list, err := service.List(ctx, userId, store.DefaultPagination())
		Expect(err).ToNot(HaveOccurred())
		Expect(list).To(ContainElement(created))
	})

	It("denies access to another user's consultation", func() {
		created, err := service.Create(ctx, userId, randomPayload())
		Expect(err).ToNot(HaveOccurred())

		otherUserId := newUserWithProfile()
		_, err = service.Get(ctx, otherUserId, created.Id)
		Expect(err).To(MatchError(errors.AccessDenied))
	})

	It("updates the merged consultation state", func() {
		created, err := service.Create(ctx, userId, randomPayload())
		Expect(err).ToNot(HaveOccurred())

		updated, err := service.Update(ctx, userId, created.Id, &consultations.ConsultationPayload{
			Location: pointer.FromAny("Hospital Central"),
		})
		Expect(err).ToNot(HaveOccurred())
		Expect(*updated.Location).To(Equal("Hospital Central"))
		Expect(updated.DoctorName).To(Equal(created.DoctorName))

		_, err = service.Update(ctx, userId, created.Id, &consultations.ConsultationPayload{})
		Expect(err).To(MatchError(errors.EmptyPatch))
	})

	It("deletes consultations", func() {
		created, err := service.Create(ctx, userId, randomPayload())
		Expect(err).ToNot(HaveOccurred())

		Expect(service.Delete(ctx, userId, created.Id)).To(Succeed())
		_, err = service.Get(ctx, userId, created.Id)
		Expect(err).To(MatchError(errors.RecordNotFound))
	})
})
