package api

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/erazemk/lostfound/internal/auth"
	"github.com/erazemk/lostfound/internal/metrics"
	"github.com/erazemk/lostfound/internal/session"
	"github.com/erazemk/lostfound/internal/store"
)

// AuthHandler handles admin login, logout and session checks.
type AuthHandler struct {
	DB       *sql.DB
	Sessions *session.Manager
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type checkResponse struct {
	LoggedIn bool `json:"loggedIn"`
}

// Login handles POST /api/admin/login. Every credential failure gets the same
// response, whether the username or the password was wrong.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	admin, err := store.GetAdminByUsername(r.Context(), h.DB, req.Username)
	if err != nil {
		serverError(w, r, "internal error", err)
		return
	}

	var valid bool
	if admin != nil {
		valid = auth.CheckPassword(admin.PasswordHash, req.Password)
	} else {
		valid = auth.BurnCheck(req.Password)
	}

	if !valid {
		metrics.LoginAttempts.WithLabelValues(metrics.LoginFailure).Inc()
		slog.Warn("login failed", "username", req.Username, "remote", r.RemoteAddr)
		jsonError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	if err := h.Sessions.Start(w, r); err != nil {
		serverError(w, r, "failed to start session", err)
		return
	}

	metrics.LoginAttempts.WithLabelValues(metrics.LoginSuccess).Inc()
	slog.Info("admin logged in", "user", admin.Username)
	ok(w)
}

// Logout handles POST /api/admin/logout. It succeeds even without a session.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.Sessions.Destroy(w, r); err != nil {
		slog.Error("failed to delete session", "error", err)
	}
	ok(w)
}

// Check handles GET /api/admin/check.
func (h *AuthHandler) Check(w http.ResponseWriter, r *http.Request) {
	loggedIn, err := h.Sessions.Check(r)
	if err != nil {
		serverError(w, r, "failed to check session", err)
		return
	}
	jsonResponse(w, http.StatusOK, checkResponse{LoggedIn: loggedIn})
}
