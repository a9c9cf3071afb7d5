package jwt_test

import (
	"time"

	"feedbacker/pkg/jwt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("JWTService", func() {
	var (
		service *jwt.JWTService
		info    jwt.TokenInfo
	)

	BeforeEach(func() {
		service = jwt.NewJWTService([]byte("test-secret"))
		info = jwt.TokenInfo{
			Username:   "alice",
			Expiration: 24,
		}
		jwt.TimeNow = time.Now
	})

	AfterEach(func() {
		jwt.TimeNow = time.Now
	})

	Describe("Generate and Sign", func() {
		It("should produce a signed token string", func() {
			token := service.Generate(info)
			signed, err := service.Sign(token)

			Expect(err).NotTo(HaveOccurred())
			Expect(signed).NotTo(BeEmpty())
		})
	})

	Describe("Validate", func() {
		When("the token is valid", func() {
			It("should return the claims", func() {
				signed, err := service.Sign(service.Generate(info))
				Expect(err).NotTo(HaveOccurred())

				claims, err := service.Validate(signed)
				Expect(err).NotTo(HaveOccurred())
				Expect(claims["sub"]).To(Equal("alice"))
			})
		})

		When("the token is signed with a different secret", func() {
			It("should return token not valid error", func() {
				other := jwt.NewJWTService([]byte("other-secret"))
				signed, err := other.Sign(other.Generate(info))
				Expect(err).NotTo(HaveOccurred())

				_, err = service.Validate(signed)
				Expect(err).To(MatchError(jwt.ErrTokenNotValid))
			})
		})

		When("the token is garbage", func() {
			It("should return token not valid error", func() {
				_, err := service.Validate("not.a.token")
				Expect(err).To(MatchError(jwt.ErrTokenNotValid))
			})
		})

		When("the token has expired", func() {
			It("should reject the token", func() {
				jwt.TimeNow = func() time.Time {
					return time.Now().Add(-48 * time.Hour)
				}
				signed, err := service.Sign(service.Generate(info))
				Expect(err).NotTo(HaveOccurred())

				jwt.TimeNow = time.Now
				_, err = service.Validate(signed)
				Expect(err).To(MatchError(jwt.ErrTokenNotValid))
			})
		})
	})
})
