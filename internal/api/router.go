package api

import (
	"database/sql"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/erazemk/lostfound/internal/metrics"
	"github.com/erazemk/lostfound/internal/session"
	"github.com/erazemk/lostfound/web"
)

// NewRouter creates the HTTP router with all endpoints registered.
func NewRouter(db *sql.DB, sessions *session.Manager) (http.Handler, error) {
	shell, err := NewShellHandler(web.PublicFS())
	if err != nil {
		return nil, err
	}

	authHandler := &AuthHandler{DB: db, Sessions: sessions}
	itemsHandler := &ItemsHandler{DB: db, Sessions: sessions}
	reservationsHandler := &ReservationsHandler{DB: db}

	requireAdmin := RequireAdmin(sessions)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(LoggingMiddleware)
	r.Use(metrics.Middleware)
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.NotFound(func(w http.ResponseWriter, r *http.Request) {
			jsonError(w, http.StatusNotFound, "not found")
		})
		r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
			jsonError(w, http.StatusMethodNotAllowed, "method not allowed")
		})

		// Items: read (public), write (admin).
		r.Get("/items", itemsHandler.List)
		r.With(requireAdmin).Post("/items", itemsHandler.Create)
		r.With(requireAdmin).Patch("/items/{id}", itemsHandler.UpdateStatus)
		r.With(requireAdmin).Delete("/items/{id}", itemsHandler.Delete)

		// Reservations: submit (public), list (admin).
		r.Post("/reservations", reservationsHandler.Create)
		r.With(requireAdmin).Get("/reservations", reservationsHandler.List)

		// Admin session.
		r.Post("/admin/login", authHandler.Login)
		r.Post("/admin/logout", authHandler.Logout)
		r.Get("/admin/check", authHandler.Check)
	})

	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	// Client shells.
	r.Get("/manage.html", shell.Manage)
	r.Get("/*", shell.Public)

	return r, nil
}
