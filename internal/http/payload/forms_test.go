package payload_test

import (
	"net/http/httptest"
	"net/url"
	"strings"
	"time"

	"communify/internal/http/payload"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("LoginForm", func() {
	It("should parse the posted fields", func() {
		body := url.Values{"username": {"admin"}, "password": {"password123"}}
		req := httptest.NewRequest("POST", "/login", strings.NewReader(body.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		form := payload.LoginFormFromRequest(req)
		Expect(form.Username).To(Equal("admin"))
		Expect(form.Password).To(Equal("password123"))
		Expect(form.Validate()).To(Succeed())

		creds := form.ToCredentials()
		Expect(creds.Username).To(Equal("admin"))
	})

	It("should reject missing fields", func() {
		form := payload.LoginForm{Username: "admin"}
		Expect(form.Validate()).To(HaveOccurred())

		form = payload.LoginForm{Password: "password123"}
		Expect(form.Validate()).To(HaveOccurred())
	})
})

var _ = Describe("MemberForm", func() {
	var form payload.MemberForm

	BeforeEach(func() {
		form = payload.MemberForm{
			Name:    "Ana",
			Email:   "ana@example.com",
			Phone:   "555-0101",
			Address: "1 Main St",
		}
	})

	It("should accept a complete form", func() {
		Expect(form.Validate()).To(Succeed())

		record := form.ToRecord()
		Expect(record.Name).To(Equal("Ana"))
		Expect(record.Email).To(Equal("ana@example.com"))
	})

	It("should reject a malformed email", func() {
		form.Email = "not-an-email"
		Expect(form.Validate()).To(HaveOccurred())
	})

	It("should reject missing required fields", func() {
		form.Address = ""
		Expect(form.Validate()).To(HaveOccurred())
	})
})

var _ = Describe("AttendanceForm", func() {
	var form payload.AttendanceForm

	BeforeEach(func() {
		form = payload.AttendanceForm{
			MemberID: "3",
			Date:     "2025-06-01",
		}
	})

	It("should accept a valid form and convert it", func() {
		Expect(form.Validate()).To(Succeed())

		record, err := form.ToRecord()
		Expect(err).NotTo(HaveOccurred())
		Expect(record.MemberID).To(Equal(uint(3)))
		Expect(record.Date).To(Equal(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)))
	})

	It("should reject a non-numeric member id", func() {
		form.MemberID = "abc"
		Expect(form.Validate()).To(HaveOccurred())
	})

	It("should reject a malformed date", func() {
		form.Date = "01/06/2025"
		Expect(form.Validate()).To(HaveOccurred())
	})
})
