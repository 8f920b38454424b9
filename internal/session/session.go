package session

import (
	"net/http"
	"strconv"

	tokenIssuer "communify/pkg/jwt"

	"go.uber.org/zap"
)

const (
	sessionCookieName = "community_session"
	// matches the token service's hour-based expiration
	sessionTTLHours = 24
)

// Identity is the authenticated user bound to a client session.
type Identity struct {
	UserID   uint
	Username string
}

// Manager resolves and issues cookie-backed sessions. The cookie value is a
// signed token, so sessions carry no server-side state.
type Manager struct {
	logs   *zap.SugaredLogger
	issuer TokenIssuer
}

func NewManager(logger *zap.SugaredLogger, issuer TokenIssuer) *Manager {
	return &Manager{
		logs:   logger,
		issuer: issuer,
	}
}

// CurrentUser resolves the session cookie to an identity. A missing,
// malformed, tampered or expired cookie resolves to anonymous.
func (m *Manager) CurrentUser(r *http.Request) (Identity, bool) {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil || cookie.Value == "" {
		return Identity{}, false
	}

	claims, err := m.issuer.Validate(cookie.Value)
	if err != nil {
		m.logs.Infow("rejected session token", "error", err)
		return Identity{}, false
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return Identity{}, false
	}
	userID, err := strconv.ParseUint(sub, 10, 64)
	if err != nil {
		return Identity{}, false
	}

	username, _ := claims["username"].(string)

	return Identity{
		UserID:   uint(userID),
		Username: username,
	}, true
}

// Issue binds the session to the given identity by setting a signed cookie.
func (m *Manager) Issue(w http.ResponseWriter, identity Identity) error {
	token := m.issuer.Generate(tokenIssuer.TokenInfo{
		UserName:   identity.Username,
		Subject:    strconv.FormatUint(uint64(identity.UserID), 10),
		Expiration: sessionTTLHours,
	})

	signed, err := m.issuer.Sign(token)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    signed,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return nil
}

// Clear drops the session binding.
func (m *Manager) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
