package measurements_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/fx/fxtest"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/LuizaMunis/HealthCare-sub000/authz"
	authzTest "github.com/LuizaMunis/HealthCare-sub000/authz/test"
	"github.com/LuizaMunis/HealthCare-sub000/errors"
	"github.com/LuizaMunis/HealthCare-sub000/measurements"
	measurementsTest "github.com/LuizaMunis/HealthCare-sub000/measurements/test"
	"github.com/LuizaMunis/HealthCare-sub000/pointer"
	"github.com/LuizaMunis/HealthCare-sub000/store"
	dbTest "github.com/LuizaMunis/HealthCare-sub000/store/test"
	"github.com/LuizaMunis/HealthCare-sub000/test"
)

type measurementsGuardFixture struct {
	ctx       context.Context
	guard     *authzTest.MockGuard
	service   measurements.Service
	userId    int64
	profileId int64
}

func newServiceFixture() *measurementsGuardFixture {
	tb := GinkgoT()
	ctrl := gomock.NewController(tb)
	lifecycle := fxtest.NewLifecycle(tb)

	db := dbTest.GetTestDatabase()
	bloodPressure, err := measurements.NewBloodPressureRepository(db, lifecycle)
	Expect(err).ToNot(HaveOccurred())
	heartRate, err := measurements.NewHeartRateRepository(db, lifecycle)
	Expect(err).ToNot(HaveOccurred())
	temperature, err := measurements.NewTemperatureRepository(db, lifecycle)
	Expect(err).ToNot(HaveOccurred())

	guard := authzTest.NewMockGuard(ctrl)
	service, err := measurements.NewService(bloodPressure, heartRate, temperature, guard, zap.NewNop().Sugar())
	Expect(err).ToNot(HaveOccurred())
	lifecycle.RequireStart()

	return &measurementsGuardFixture{
		ctx:       context.Background(),
		guard:     guard,
		service:   service,
		userId:    int64(test.Faker.IntBetween(1, 1000000)),
		profileId: int64(test.Faker.IntBetween(1, 1000000)),
	}
}

func (f *measurementsGuardFixture) expectResolve() {
	f.guard.EXPECT().
		ResolveProfile(gomock.Any(), f.userId).
		Return(f.profileId, nil).
		AnyTimes()
}

func (f *measurementsGuardFixture) expectAuthorize() {
	f.guard.EXPECT().
		Authorize(gomock.Any(), f.userId, test.Match(func(ref authz.Ref) bool {
			return ref.Type == authz.EntityProfile && ref.Id == f.profileId
		})).
		Return(f.profileId, nil).
		AnyTimes()
}

func (f *measurementsGuardFixture) denyResolve() {
	f.guard.EXPECT().
		ResolveProfile(gomock.Any(), f.userId).
		Return(int64(0), errors.ProfileNotFound).
		AnyTimes()
}

func (f *measurementsGuardFixture) denyAuthorize() {
	f.guard.EXPECT().
		Authorize(gomock.Any(), f.userId, gomock.Any()).
		Return(int64(0), errors.AccessDenied).
		AnyTimes()
}

var _ = Describe("Measurements Service", func() {
	var fixture *measurementsGuardFixture

	BeforeEach(func() {
		fixture = newServiceFixture()
	})

	Describe("Blood pressure", func() {
		It("creates a reading scoped to the caller's profile", func() {
			fixture.expectResolve()

			created, err := fixture.service.CreateBloodPressure(fixture.ctx, fixture.userId, measurementsTest.RandomBloodPressurePayload())
			Expect(err).ToNot(HaveOccurred())
			Expect(created.Id).To(BeNumerically(">", 0))
			Expect(created.ProfileId).To(Equal(fixture.profileId))
		})

		It("returns identical data on consecutive reads", func() {
			fixture.expectResolve()
			fixture.expectAuthorize()

			created, err := fixture.service.CreateBloodPressure(fixture.ctx, fixture.userId, measurementsTest.RandomBloodPressurePayload())
			Expect(err).ToNot(HaveOccurred())

			first, err := fixture.service.GetBloodPressure(fixture.ctx, fixture.userId, created.Id)
			Expect(err).ToNot(HaveOccurred())
			second, err := fixture.service.GetBloodPressure(fixture.ctx, fixture.userId, created.Id)
			Expect(err).ToNot(HaveOccurred())
			Expect(first).To(Equal(second))
		})

		It("denies access to readings outside the caller's profile", func() {
			fixture.expectResolve()

			created, err := fixture.service.CreateBloodPressure(fixture.ctx, fixture.userId, measurementsTest.RandomBloodPressurePayload())
			Expect(err).ToNot(HaveOccurred())

			fixture.denyAuthorize()
			_, err = fixture.service.GetBloodPressure(fixture.ctx, fixture.userId, created.Id)
			Expect(err).To(MatchError(errors.AccessDenied))
		})

		It("fails with record not found for unknown ids", func() {
			fixture.expectResolve()
			_, err := fixture.service.GetBloodPressure(fixture.ctx, fixture.userId, 99999999)
			Expect(err).To(MatchError(errors.RecordNotFound))
		})

		It("reports the missing profile before the record lookup", func() {
			fixture.denyResolve()

			_, err := fixture.service.GetBloodPressure(fixture.ctx, fixture.userId, 99999999)
			Expect(err).To(MatchError(errors.ProfileNotFound))

			_, err = fixture.service.UpdateBloodPressure(fixture.ctx, fixture.userId, 99999999, &measurements.BloodPressurePayload{})
			Expect(err).To(MatchError(errors.ProfileNotFound))

			Expect(fixture.service.DeleteBloodPressure(fixture.ctx, fixture.userId, 99999999)).
				To(MatchError(errors.ProfileNotFound))
		})

		It("rejects an empty patch", func() {
			fixture.expectResolve()
			fixture.expectAuthorize()

			created, err := fixture.service.CreateBloodPressure(fixture.ctx, fixture.userId, measurementsTest.RandomBloodPressurePayload())
			Expect(err).ToNot(HaveOccurred())

			_, err = fixture.service.UpdateBloodPressure(fixture.ctx, fixture.userId, created.Id, &measurements.BloodPressurePayload{})
			Expect(err).To(MatchError(errors.EmptyPatch))
		})

		It("validates the merged state of a partial update", func() {
			fixture.expectResolve()
			fixture.expectAuthorize()

			create := measurementsTest.RandomBloodPressurePayload()
			create.Systolic = pointer.FromAny(100)
			create.Diastolic = pointer.FromAny(80)
			created, err := fixture.service.CreateBloodPressure(fixture.ctx, fixture.userId, create)
			Expect(err).ToNot(HaveOccurred())

			// Patch only diastolic above the stored systolic
			_, err = fixture.service.UpdateBloodPressure(fixture.ctx, fixture.userId, created.Id, &measurements.BloodPressurePayload{
				Diastolic: pointer.FromAny(110),
			})
			Expect(err).To(MatchError(errors.ConstraintViolation))
		})

		It("applies valid partial updates and returns the stored state", func() {
			fixture.expectResolve()
			fixture.expectAuthorize()

			created, err := fixture.service.CreateBloodPressure(fixture.ctx, fixture.userId, measurementsTest.RandomBloodPressurePayload())
			Expect(err).ToNot(HaveOccurred())

			updated, err := fixture.service.UpdateBloodPressure(fixture.ctx, fixture.userId, created.Id, &measurements.BloodPressurePayload{
				Systolic: pointer.FromAny(190),
			})
			Expect(err).ToNot(HaveOccurred())
			Expect(*updated.Systolic).To(Equal(190))
			Expect(updated.Diastolic).To(Equal(created.Diastolic))
			Expect(updated.ProfileId).To(Equal(fixture.profileId))
		})

		It("deletes readings after re-verifying ownership", func() {
			fixture.expectResolve()
			fixture.expectAuthorize()

			created, err := fixture.service.CreateBloodPressure(fixture.ctx, fixture.userId, measurementsTest.RandomBloodPressurePayload())
			Expect(err).ToNot(HaveOccurred())

			Expect(fixture.service.DeleteBloodPressure(fixture.ctx, fixture.userId, created.Id)).To(Succeed())

			_, err = fixture.service.GetBloodPressure(fixture.ctx, fixture.userId, created.Id)
			Expect(err).To(MatchError(errors.RecordNotFound))
		})

		It("builds the classification report from the stored readings", func() {
			fixture.expectResolve()

			create := measurementsTest.RandomBloodPressurePayload()
			create.Systolic = pointer.FromAny(150)
			create.Diastolic = pointer.FromAny(95)
			_, err := fixture.service.CreateBloodPressure(fixture.ctx, fixture.userId, create)
			Expect(err).ToNot(HaveOccurred())

			report, err := fixture.service.BloodPressureReport(fixture.ctx, fixture.userId)
			Expect(err).ToNot(HaveOccurred())
			Expect(report.Classification).To(Equal(measurements.ClassificationHypertension))
			Expect(report.ReadingCount).To(Equal(1))
		})

		It("averages the full history, not a single page", func() {
			fixture.expectResolve()

			for i := 0; i < store.DefaultPaginationLimit+1; i++ {
				create := measurementsTest.RandomBloodPressurePayload()
				create.Systolic = pointer.FromAny(115)
				create.Diastolic = pointer.FromAny(75)
				_, err := fixture.service.CreateBloodPressure(fixture.ctx, fixture.userId, create)
				Expect(err).ToNot(HaveOccurred())
			}

			report, err := fixture.service.BloodPressureReport(fixture.ctx, fixture.userId)
			Expect(err).ToNot(HaveOccurred())
			Expect(report.ReadingCount).To(Equal(store.DefaultPaginationLimit + 1))
			Expect(report.Classification).To(Equal(measurements.ClassificationNormal))
		})
	})

	Describe("Heart rate", func() {
		It("creates and lists readings for the caller's profile", func() {
			fixture.expectResolve()

			created, err := fixture.service.CreateHeartRate(fixture.ctx, fixture.userId, measurementsTest.RandomHeartRatePayload())
			Expect(err).ToNot(HaveOccurred())

			list, err := fixture.service.ListHeartRate(fixture.ctx, fixture.userId, store.DefaultPagination())
			Expect(err).ToNot(HaveOccurred())
			Expect(list).To(ContainElement(created))
		})
	})

	Describe("Temperature", func() {
		It("creates readings with the measurement timestamp", func() {
			fixture.expectResolve()

			payload := measurementsTest.RandomTemperaturePayload()
			created, err := fixture.service.CreateTemperature(fixture.ctx, fixture.userId, payload)
			Expect(err).ToNot(HaveOccurred())
			Expect(created.MeasuredAt).ToNot(BeNil())
			Expect(*created.Celsius).To(Equal(*payload.Celsius))
		})
	})
})
