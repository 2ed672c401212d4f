package measurements_test

import (
	stderrors "errors"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/LuizaMunis/HealthCare-sub000/errors"
	"github.com/LuizaMunis/HealthCare-sub000/measurements"
	measurementsTest "github.com/LuizaMunis/HealthCare-sub000/measurements/test"
	"github.com/LuizaMunis/HealthCare-sub000/pointer"
)

var _ = Describe("Blood pressure validation", func() {
	var guard *measurementsGuardFixture

	BeforeEach(func() {
		guard = newServiceFixture()
	})

	It("rejects systolic below diastolic regardless of the individual ranges", func() {
		create := measurementsTest.RandomBloodPressurePayload()
		create.Systolic = pointer.FromAny(80)
		create.Diastolic = pointer.FromAny(120)

		guard.expectResolve()
		_, err := guard.service.CreateBloodPressure(guard.ctx, guard.userId, create)

		validationErr := errors.ValidationError{}
		Expect(stderrors.As(err, &validationErr)).To(BeTrue())
		Expect(validationErr.Field).To(Equal("sistolica"))
	})

	It("rejects systolic outside 70-300", func() {
		create := measurementsTest.RandomBloodPressurePayload()
		create.Systolic = pointer.FromAny(350)

		guard.expectResolve()
		_, err := guard.service.CreateBloodPressure(guard.ctx, guard.userId, create)
		Expect(err).To(MatchError(errors.ConstraintViolation))
	})

	It("rejects diastolic outside 40-200", func() {
		create := measurementsTest.RandomBloodPressurePayload()
		create.Diastolic = pointer.FromAny(30)

		guard.expectResolve()
		_, err := guard.service.CreateBloodPressure(guard.ctx, guard.userId, create)
		Expect(err).To(MatchError(errors.ConstraintViolation))
	})

	It("requires both values", func() {
		guard.expectResolve()
		_, err := guard.service.CreateBloodPressure(guard.ctx, guard.userId, &measurements.BloodPressurePayload{
			MeasuredAt: pointer.FromAny(time.Now()),
		})
		Expect(err).To(MatchError(errors.ConstraintViolation))
	})
})

var _ = Describe("Heart rate validation", func() {
	var guard *measurementsGuardFixture

	BeforeEach(func() {
		guard = newServiceFixture()
	})

	It("rejects values outside 40-200 bpm", func() {
		create := measurementsTest.RandomHeartRatePayload()
		create.Bpm = pointer.FromAny(250)

		guard.expectResolve()
		_, err := guard.service.CreateHeartRate(guard.ctx, guard.userId, create)
		Expect(err).To(MatchError(errors.ConstraintViolation))
	})
})

var _ = Describe("Temperature validation", func() {
	var guard *measurementsGuardFixture

	BeforeEach(func() {
		guard = newServiceFixture()
	})

	It("requires a value", func() {
		guard.expectResolve()
		_, err := guard.service.CreateTemperature(guard.ctx, guard.userId, &measurements.TemperaturePayload{})

		validationErr := errors.ValidationError{}
		Expect(stderrors.As(err, &validationErr)).To(BeTrue())
		Expect(validationErr.Field).To(Equal("valor_celsius"))
	})
})
