package session

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/http"
	"time"

	"github.com/erazemk/lostfound/internal/auth"
)

// CookieName is the name of the session cookie.
const CookieName = "lostfound_session"

// Manager issues, checks and destroys admin sessions.
type Manager struct {
	Store  Store
	Secret string
	TTL    time.Duration
	// Secure marks the cookie HTTPS-only.
	Secure bool
}

// NewManager returns a Manager with the default session lifetime.
func NewManager(st Store, secret string, secure bool) *Manager {
	return &Manager{Store: st, Secret: secret, TTL: auth.SessionTTL, Secure: secure}
}

// Start creates a new authenticated session and sets its cookie. Any session
// the request already carried is deleted first.
func (m *Manager) Start(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()
	if old, ok := m.sessionID(r); ok {
		if err := m.Store.Delete(ctx, old); err != nil {
			return err
		}
	}

	id, err := newSessionID()
	if err != nil {
		return err
	}

	token, err := auth.GenerateToken(m.Secret, id, m.TTL)
	if err != nil {
		return err
	}

	if err := m.Store.Create(ctx, id, m.TTL); err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(m.TTL / time.Second),
		HttpOnly: true,
		Secure:   m.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Check reports whether the request carries a live admin session. A missing,
// forged or expired cookie is simply not authenticated; only store failures
// are returned as errors.
func (m *Manager) Check(r *http.Request) (bool, error) {
	id, ok := m.sessionID(r)
	if !ok {
		return false, nil
	}
	return m.Store.Exists(r.Context(), id)
}

// Destroy removes the request's session, if any, and clears the cookie. The
// cookie is cleared even when the store fails.
func (m *Manager) Destroy(w http.ResponseWriter, r *http.Request) error {
	var err error
	if id, ok := m.sessionID(r); ok {
		err = m.Store.Delete(r.Context(), id)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	return err
}

func (m *Manager) sessionID(r *http.Request) (string, bool) {
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return "", false
	}

	id, err := auth.ValidateToken(m.Secret, cookie.Value)
	if err != nil {
		return "", false
	}
	return id, true
}

func newSessionID() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generating session id: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
