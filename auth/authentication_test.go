package auth_test

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/LuizaMunis/HealthCare-sub000/auth"
	"github.com/LuizaMunis/HealthCare-sub000/test"
)

var _ = Describe("Authenticator", func() {
	var config *auth.Config
	var authenticator auth.Authenticator
	var ec echo.Context

	signedToken := func(subject string, expiry time.Duration) string {
		claims := jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    config.JwtIssuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiry)),
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(config.JwtSecret))
		Expect(err).ToNot(HaveOccurred())
		return token
	}

	BeforeEach(func() {
		config = &auth.Config{
			JwtSecret: test.Faker.UUID().V4(),
			JwtIssuer: "healthcare",
		}

		var err error
		authenticator, err = auth.NewAuthenticator(config)
		Expect(err).ToNot(HaveOccurred())

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		ec = echo.New().NewContext(req, httptest.NewRecorder())
	})

	It("accepts a valid token and sets the auth data", func() {
		userId := int64(test.Faker.IntBetween(1, 10000))
		valid, err := authenticator.ValidateAndSetAuthData(signedToken(strconv.FormatInt(userId, 10), time.Hour), ec)

		Expect(err).ToNot(HaveOccurred())
		Expect(valid).To(BeTrue())

		authData := auth.GetAuthData(ec.Request().Context())
		Expect(authData).ToNot(BeNil())
		Expect(authData.UserId).To(Equal(userId))
	})

	It("rejects tokens signed with a different secret", func() {
		other := &auth.Config{JwtSecret: test.Faker.UUID().V4(), JwtIssuer: "healthcare"}
		otherAuthenticator := auth.NewJwtAuthenticator(other)

		valid, err := otherAuthenticator.ValidateAndSetAuthData(signedToken("1", time.Hour), ec)
		Expect(err).To(MatchError(auth.ErrUnauthenticated))
		Expect(valid).To(BeFalse())
	})

	It("rejects expired tokens", func() {
		valid, err := authenticator.ValidateAndSetAuthData(signedToken("1", -time.Hour), ec)
		Expect(err).To(MatchError(auth.ErrUnauthenticated))
		Expect(valid).To(BeFalse())
	})

	It("rejects tokens without a numeric subject", func() {
		valid, err := authenticator.ValidateAndSetAuthData(signedToken("not-a-number", time.Hour), ec)
		Expect(err).To(MatchError(auth.ErrUnauthenticated))
		Expect(valid).To(BeFalse())
	})

	It("serves repeated validations of the same token from the cache", func() {
		token := signedToken("42", time.Hour)

		valid, err := authenticator.ValidateAndSetAuthData(token, ec)
		Expect(err).ToNot(HaveOccurred())
		Expect(valid).To(BeTrue())

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		second := echo.New().NewContext(req, httptest.NewRecorder())

		valid, err = authenticator.ValidateAndSetAuthData(token, second)
		Expect(err).ToNot(HaveOccurred())
		Expect(valid).To(BeTrue())
		Expect(auth.GetAuthData(second.Request().Context())).ToNot(BeNil())
	})
})
