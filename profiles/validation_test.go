package profiles_test

import (
	stderrors "errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/LuizaMunis/HealthCare-sub000/errors"
	"github.com/LuizaMunis/HealthCare-sub000/profiles"
)

var _ = Describe("ValidateCpf", func() {
	It("accepts a plain 11 digit document", func() {
		Expect(profiles.ValidateCpf("52998224725")).To(Succeed())
	})

	It("accepts formatted documents", func() {
		Expect(profiles.ValidateCpf("529.982.247-25")).To(Succeed())
	})

	It("rejects documents that are too short or too long", func() {
		Expect(profiles.ValidateCpf("5299822472")).To(MatchError(errors.ConstraintViolation))
		Expect(profiles.ValidateCpf("529982247255")).To(MatchError(errors.ConstraintViolation))
	})

	It("rejects every single repeated digit sequence", func() {
		for digit := '0'; digit <= '9'; digit++ {
			cpf := ""
			for i := 0; i < 11; i++ {
				cpf += string(digit)
			}
			Expect(profiles.ValidateCpf(cpf)).To(MatchError(errors.ConstraintViolation))
		}
	})

	It("names the failed field", func() {
		err := profiles.ValidateCpf("123")

		validationErr := errors.ValidationError{}
		Expect(stderrors.As(err, &validationErr)).To(BeTrue())
		Expect(validationErr.Field).To(Equal("cpf"))
	})
})
