package config_test

import (
	"communify/internal/config"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Config", func() {
	Describe("NewAppConfig", func() {
		When("environment variables are set", func() {
			BeforeEach(func() {
				GinkgoT().Setenv("HTTP_PORT", "9999")
				GinkgoT().Setenv("DB_CONNECTION_URL", "host=db")
				GinkgoT().Setenv("SESSION_SECRET", "super-secret")
			})

			It("should use the environment values", func() {
				cfg, err := config.NewAppConfig()
				Expect(err).NotTo(HaveOccurred())
				Expect(cfg.Port).To(Equal("9999"))
				Expect(cfg.DBConnectionURL).To(Equal("host=db"))
				Expect(cfg.SessionSecret).To(Equal("super-secret"))
			})
		})

		When("the environment is empty", func() {
			It("should fall back to development defaults", func() {
				cfg, err := config.NewAppConfig()
				Expect(err).NotTo(HaveOccurred())
				Expect(cfg.Port).To(Equal("8080"))
				Expect(cfg.SessionSecret).To(Equal("dev-secret-key"))
				Expect(cfg.DBConnectionURL).To(ContainSubstring("dbname=community"))
			})
		})
	})
})
