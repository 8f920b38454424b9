package session_test

import (
	"errors"
	"net/http"
	"net/http/httptest"

	"communify/internal/session"
	"communify/internal/session/fake"
	tokenIssuer "communify/pkg/jwt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

// carry cookies set on a recorder over to a follow-up request
func requestWithCookies(w *httptest.ResponseRecorder, target string) *http.Request {
	req := httptest.NewRequest("GET", target, nil)
	for _, cookie := range w.Result().Cookies() {
		req.AddCookie(cookie)
	}
	return req
}

var _ = Describe("Manager", func() {
	var (
		manager *session.Manager
		issuer  *tokenIssuer.JWTService
		w       *httptest.ResponseRecorder
	)

	BeforeEach(func() {
		issuer = tokenIssuer.NewJWTService([]byte("test-secret"))
		manager = session.NewManager(zap.NewNop().Sugar(), issuer)
		w = httptest.NewRecorder()
	})

	Describe("Issue and CurrentUser", func() {
		It("should resolve an issued session back to its identity", func() {
			err := manager.Issue(w, session.Identity{UserID: 7, Username: "admin"})
			Expect(err).NotTo(HaveOccurred())

			req := requestWithCookies(w, "/dashboard")
			identity, ok := manager.CurrentUser(req)
			Expect(ok).To(BeTrue())
			Expect(identity.UserID).To(Equal(uint(7)))
			Expect(identity.Username).To(Equal("admin"))
		})

		When("signing fails", func() {
			It("should return the error", func() {
				fakeIssuer := new(fake.TokenIssuer)
				fakeIssuer.SignReturns("", errors.New("sign error"))
				broken := session.NewManager(zap.NewNop().Sugar(), fakeIssuer)

				err := broken.Issue(w, session.Identity{UserID: 7, Username: "admin"})
				Expect(err).To(MatchError("sign error"))
			})
		})
	})

	Describe("CurrentUser", func() {
		When("no cookie is present", func() {
			It("should resolve to anonymous", func() {
				req := httptest.NewRequest("GET", "/dashboard", nil)
				_, ok := manager.CurrentUser(req)
				Expect(ok).To(BeFalse())
			})
		})

		When("the cookie is tampered with", func() {
			It("should resolve to anonymous", func() {
				err := manager.Issue(w, session.Identity{UserID: 7, Username: "admin"})
				Expect(err).NotTo(HaveOccurred())

				req := httptest.NewRequest("GET", "/dashboard", nil)
				for _, cookie := range w.Result().Cookies() {
					cookie.Value += "tampered"
					req.AddCookie(cookie)
				}

				_, ok := manager.CurrentUser(req)
				Expect(ok).To(BeFalse())
			})
		})

		When("the token was signed with another secret", func() {
			It("should resolve to anonymous", func() {
				otherIssuer := tokenIssuer.NewJWTService([]byte("other-secret"))
				other := session.NewManager(zap.NewNop().Sugar(), otherIssuer)
				Expect(other.Issue(w, session.Identity{UserID: 7, Username: "admin"})).To(Succeed())

				req := requestWithCookies(w, "/dashboard")
				_, ok := manager.CurrentUser(req)
				Expect(ok).To(BeFalse())
			})
		})
	})

	Describe("Clear", func() {
		It("should expire the session cookie", func() {
			manager.Clear(w)

			cookies := w.Result().Cookies()
			Expect(cookies).To(HaveLen(1))
			Expect(cookies[0].Value).To(BeEmpty())
			Expect(cookies[0].MaxAge).To(BeNumerically("<", 0))
		})
	})
})

var _ = Describe("Flash", func() {
	It("should surface a notice exactly once", func() {
		w := httptest.NewRecorder()
		session.SetFlash(w, "Invalid username or password")

		req := requestWithCookies(w, "/login")
		next := httptest.NewRecorder()
		Expect(session.PopFlash(next, req)).To(Equal("Invalid username or password"))

		// the pop response clears the cookie
		followUp := requestWithCookies(next, "/login")
		Expect(session.PopFlash(httptest.NewRecorder(), followUp)).To(BeEmpty())
	})

	It("should return empty when no notice is pending", func() {
		req := httptest.NewRequest("GET", "/login", nil)
		Expect(session.PopFlash(httptest.NewRecorder(), req)).To(BeEmpty())
	})
})
