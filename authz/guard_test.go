package authz_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/LuizaMunis/HealthCare-sub000/authz"
	authzTest "github.com/LuizaMunis/HealthCare-sub000/authz/test"
	"github.com/LuizaMunis/HealthCare-sub000/errors"
)

var _ = Describe("Guard", func() {
	var ctrl *gomock.Controller
	var profiles *authzTest.MockProfileResolver
	var conditions *authzTest.MockConditionResolver
	var medications *authzTest.MockMedicationResolver
	var guard authz.Guard

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		profiles = authzTest.NewMockProfileResolver(ctrl)
		conditions = authzTest.NewMockConditionResolver(ctrl)
		medications = authzTest.NewMockMedicationResolver(ctrl)

		var err error
		guard, err = authz.NewGuard(profiles, conditions, medications, zap.NewNop().Sugar())
		Expect(err).ToNot(HaveOccurred())
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	Describe("ResolveProfile", func() {
		It("fails when the user has no profile", func() {
			profiles.EXPECT().
				ProfileIdForUser(gomock.Any(), int64(10)).
				Return(int64(0), errors.ProfileNotFound)

			_, err := guard.ResolveProfile(context.Background(), 10)
			Expect(err).To(MatchError(errors.ProfileNotFound))
		})
	})

	Describe("Authorize", func() {
		It("fails fast with profile not found before resolving the chain", func() {
			profiles.EXPECT().
				ProfileIdForUser(gomock.Any(), int64(10)).
				Return(int64(0), errors.ProfileNotFound)

			_, err := guard.Authorize(context.Background(), 10, authz.Ref{Type: authz.EntityCondition, Id: 55})
			Expect(err).To(MatchError(errors.ProfileNotFound))
		})

		It("allows direct profile references owned by the caller", func() {
			profiles.EXPECT().
				ProfileIdForUser(gomock.Any(), int64(10)).
				Return(int64(3), nil)

			profileId, err := guard.Authorize(context.Background(), 10, authz.Ref{Type: authz.EntityProfile, Id: 3})
			Expect(err).ToNot(HaveOccurred())
			Expect(profileId).To(Equal(int64(3)))
		})

		It("denies direct profile references owned by somebody else", func() {
			profiles.EXPECT().
				ProfileIdForUser(gomock.Any(), int64(10)).
				Return(int64(3), nil)

			_, err := guard.Authorize(context.Background(), 10, authz.Ref{Type: authz.EntityProfile, Id: 4})
			Expect(err).To(MatchError(errors.AccessDenied))
		})

		It("walks symptom references through the owning condition", func() {
			profiles.EXPECT().
				ProfileIdForUser(gomock.Any(), int64(10)).
				Return(int64(3), nil)
			conditions.EXPECT().
				ConditionParent(gomock.Any(), int64(55)).
				Return(int64(3), nil)

			profileId, err := guard.Authorize(context.Background(), 10, authz.Ref{Type: authz.EntityCondition, Id: 55})
			Expect(err).ToNot(HaveOccurred())
			Expect(profileId).To(Equal(int64(3)))
		})

		It("denies conditions owned by another profile", func() {
			profiles.EXPECT().
				ProfileIdForUser(gomock.Any(), int64(10)).
				Return(int64(3), nil)
			conditions.EXPECT().
				ConditionParent(gomock.Any(), int64(55)).
				Return(int64(9), nil)

			_, err := guard.Authorize(context.Background(), 10, authz.Ref{Type: authz.EntityCondition, Id: 55})
			Expect(err).To(MatchError(errors.AccessDenied))
		})

		It("propagates record not found from the chain", func() {
			profiles.EXPECT().
				ProfileIdForUser(gomock.Any(), int64(10)).
				Return(int64(3), nil)
			medications.EXPECT().
				MedicationParent(gomock.Any(), int64(77)).
				Return(int64(0), errors.RecordNotFound)

			_, err := guard.Authorize(context.Background(), 10, authz.Ref{Type: authz.EntityMedication, Id: 77})
			Expect(err).To(MatchError(errors.RecordNotFound))
		})
	})
})
