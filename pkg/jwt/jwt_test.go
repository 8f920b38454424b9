package jwt_test

import (
	"time"

	tokenIssuer "communify/pkg/jwt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("JWTService", func() {
	var (
		service *tokenIssuer.JWTService
		secret  []byte
	)

	BeforeEach(func() {
		secret = []byte("test-secret")
		service = tokenIssuer.NewJWTService(secret)
		tokenIssuer.TimeNow = time.Now
	})

	Describe("Generate and Sign", func() {
		It("should produce a token that validates back to its claims", func() {
			token := service.Generate(tokenIssuer.TokenInfo{
				UserName:   "admin",
				Subject:    "17",
				Expiration: 24,
			})

			signed, err := service.Sign(token)
			Expect(err).NotTo(HaveOccurred())
			Expect(signed).NotTo(BeEmpty())

			claims, err := service.Validate(signed)
			Expect(err).NotTo(HaveOccurred())
			Expect(claims["sub"]).To(Equal("17"))
			Expect(claims["username"]).To(Equal("admin"))
		})
	})

	Describe("Validate", func() {
		When("the token is garbage", func() {
			It("should return ErrTokenNotValid", func() {
				_, err := service.Validate("not.a.token")
				Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
			})
		})

		When("the token is signed with a different secret", func() {
			It("should return ErrTokenNotValid", func() {
				other := tokenIssuer.NewJWTService([]byte("other-secret"))
				signed, err := other.Sign(other.Generate(tokenIssuer.TokenInfo{
					UserName:   "admin",
					Subject:    "17",
					Expiration: 24,
				}))
				Expect(err).NotTo(HaveOccurred())

				_, err = service.Validate(signed)
				Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
			})
		})

		When("the token has expired", func() {
			It("should return an expiration error", func() {
				signed, err := service.Sign(service.Generate(tokenIssuer.TokenInfo{
					UserName:   "admin",
					Subject:    "17",
					Expiration: 1,
				}))
				Expect(err).NotTo(HaveOccurred())

				tokenIssuer.TimeNow = func() time.Time {
					return time.Now().Add(2 * time.Hour)
				}

				_, err = service.Validate(signed)
				Expect(err).To(HaveOccurred())
			})
		})
	})
})
