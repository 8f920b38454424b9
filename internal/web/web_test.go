package web_test

import (
	"bytes"

	"communify/internal/web"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Renderer", func() {
	var renderer *web.Renderer

	BeforeEach(func() {
		var err error
		renderer, err = web.NewRenderer()
		Expect(err).NotTo(HaveOccurred())
	})

	It("should render the home view", func() {
		var buf bytes.Buffer
		Expect(renderer.Render(&buf, "home.html", nil)).To(Succeed())
		Expect(buf.String()).To(ContainSubstring("Welcome to the BLD Community System"))
	})

	It("should render the login view with a notice", func() {
		var buf bytes.Buffer
		data := struct {
			Notice   string
			Error    string
			Username string
		}{Notice: "Invalid username or password"}

		Expect(renderer.Render(&buf, "login.html", data)).To(Succeed())
		Expect(buf.String()).To(ContainSubstring("Invalid username or password"))
	})

	It("should escape user-controlled values", func() {
		var buf bytes.Buffer
		data := struct {
			Notice   string
			Error    string
			Username string
		}{Username: `"><script>alert(1)</script>`}

		Expect(renderer.Render(&buf, "login.html", data)).To(Succeed())
		Expect(buf.String()).NotTo(ContainSubstring("<script>alert(1)</script>"))
	})

	It("should fail on an unknown view without writing output", func() {
		var buf bytes.Buffer
		err := renderer.Render(&buf, "missing.html", nil)
		Expect(err).To(HaveOccurred())
		Expect(buf.Len()).To(BeZero())
	})
})
