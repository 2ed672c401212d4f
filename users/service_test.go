package users_test

import (
	"context"
	stderrors "errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/fx/fxtest"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/LuizaMunis/HealthCare-sub000/errors"
	dbTest "github.com/LuizaMunis/HealthCare-sub000/store/test"
	"github.com/LuizaMunis/HealthCare-sub000/users"
	usersTest "github.com/LuizaMunis/HealthCare-sub000/users/test"
)

var _ = Describe("Users Service", func() {
	var service users.Service

	BeforeEach(func() {
		lifecycle := fxtest.NewLifecycle(GinkgoT())
		repo, err := users.NewRepository(dbTest.GetTestDatabase(), lifecycle)
		Expect(err).ToNot(HaveOccurred())

		service, err = users.NewService(repo, zap.NewNop().Sugar())
		Expect(err).ToNot(HaveOccurred())
		lifecycle.RequireStart()
	})

	Describe("Create", func() {
		It("assigns a positive id and hashes the password", func() {
			create := usersTest.RandomNewUser()
			user, err := service.Create(context.Background(), create)

			Expect(err).ToNot(HaveOccurred())
			Expect(user.Id).To(BeNumerically(">", 0))
			Expect(user.PasswordHash).ToNot(BeEmpty())
			Expect(bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(create.Password))).To(Succeed())
		})

		It("rejects duplicate emails", func() {
			create := usersTest.RandomNewUser()
			_, err := service.Create(context.Background(), create)
			Expect(err).ToNot(HaveOccurred())

			second := usersTest.RandomNewUser()
			second.Email = create.Email
			_, err = service.Create(context.Background(), second)
			Expect(err).To(MatchError(errors.Duplicate))
		})

		It("rejects a missing name", func() {
			create := usersTest.RandomNewUser()
			create.FullName = " "

			_, err := service.Create(context.Background(), create)

			validationErr := errors.ValidationError{}
			Expect(stderrors.As(err, &validationErr)).To(BeTrue())
			Expect(validationErr.Field).To(Equal("nome_completo"))
		})

		It("rejects malformed emails", func() {
			create := usersTest.RandomNewUser()
			create.Email = "not-an-email"

			_, err := service.Create(context.Background(), create)
			Expect(err).To(MatchError(errors.ConstraintViolation))
		})
	})

	Describe("Get", func() {
		It("returns the created user", func() {
			created, err := service.Create(context.Background(), usersTest.RandomNewUser())
			Expect(err).ToNot(HaveOccurred())

			fetched, err := service.Get(context.Background(), created.Id)
			Expect(err).ToNot(HaveOccurred())
			Expect(fetched.Email).To(Equal(created.Email))
		})

		It("fails with record not found for unknown ids", func() {
			_, err := service.Get(context.Background(), 999999)
			Expect(err).To(MatchError(errors.RecordNotFound))
		})
	})
})
