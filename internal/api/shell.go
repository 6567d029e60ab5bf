package api

import (
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/erazemk/lostfound/web"
)

// ShellHandler serves the single-page client shells.
type ShellHandler struct {
	index  []byte
	manage []byte
}

// NewShellHandler reads both shells from fsys once.
func NewShellHandler(fsys fs.FS) (*ShellHandler, error) {
	index, err := fs.ReadFile(fsys, web.IndexPage)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", web.IndexPage, err)
	}
	manage, err := fs.ReadFile(fsys, web.ManagePage)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", web.ManagePage, err)
	}
	return &ShellHandler{index: index, manage: manage}, nil
}

// Public handles GET /* with the public listing page.
func (h *ShellHandler) Public(w http.ResponseWriter, r *http.Request) {
	writeHTML(w, h.index)
}

// Manage handles GET /manage.html with the admin page.
func (h *ShellHandler) Manage(w http.ResponseWriter, r *http.Request) {
	writeHTML(w, h.manage)
}

func writeHTML(w http.ResponseWriter, page []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	if _, err := w.Write(page); err != nil {
		slog.Error("failed to write page", "error", err)
	}
}
