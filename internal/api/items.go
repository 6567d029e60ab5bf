package api

import (
	"database/sql"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/erazemk/lostfound/internal/metrics"
	"github.com/erazemk/lostfound/internal/model"
	"github.com/erazemk/lostfound/internal/session"
	"github.com/erazemk/lostfound/internal/store"
)

// ItemsHandler handles item endpoints.
type ItemsHandler struct {
	DB       *sql.DB
	Sessions *session.Manager
}

type createItemRequest struct {
	Name         string `json:"name" validate:"required,max=200"`
	IconClass    string `json:"iconClass" validate:"max=64"`
	Location     string `json:"location" validate:"required,max=200"`
	Date         string `json:"date" validate:"required,max=64"`
	Status       string `json:"status" validate:"omitempty,oneof=active claimed"`
	Description  string `json:"description" validate:"max=2000"`
	AdminDetails string `json:"adminDetails" validate:"max=2000"`
}

func (req *createItemRequest) normalize() {
	req.Name = strings.TrimSpace(req.Name)
	req.IconClass = strings.TrimSpace(req.IconClass)
	req.Location = strings.TrimSpace(req.Location)
	req.Date = strings.TrimSpace(req.Date)
}

type createItemResponse struct {
	Success bool        `json:"success"`
	Item    *model.Item `json:"item"`
}

type updateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=active claimed"`
}

// List handles GET /api/items. Admin-only details are included only for a
// logged-in admin.
func (h *ItemsHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := store.ListItems(r.Context(), h.DB)
	if err != nil {
		serverError(w, r, "failed to list items", err)
		return
	}
	if items == nil {
		items = []model.Item{}
	}

	// Only admin-only fields depend on the session, so a failed lookup
	// degrades to the public view.
	isAdmin, err := h.Sessions.Check(r)
	if err != nil {
		slog.Warn("session check failed, serving public items",
			"error", err, "request_id", middleware.GetReqID(r.Context()))
		isAdmin = false
	}
	if !isAdmin {
		for i := range items {
			items[i] = items[i].Public()
		}
	}

	jsonResponse(w, http.StatusOK, items)
}

// Create handles POST /api/items.
func (h *ItemsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createItemRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	item, err := store.CreateItem(r.Context(), h.DB, model.Item{
		Name:         req.Name,
		IconClass:    req.IconClass,
		Location:     req.Location,
		Date:         req.Date,
		Status:       req.Status,
		Description:  req.Description,
		AdminDetails: req.AdminDetails,
	})
	if err != nil {
		serverError(w, r, "failed to create item", err)
		return
	}

	metrics.ItemsPublished.Inc()
	jsonResponse(w, http.StatusOK, createItemResponse{Success: true, Item: item})
}

// UpdateStatus handles PATCH /api/items/{id}.
func (h *ItemsHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req updateStatusRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := store.UpdateItemStatus(r.Context(), h.DB, id, req.Status); err != nil {
		serverError(w, r, "failed to update item", err)
		return
	}

	ok(w)
}

// Delete handles DELETE /api/items/{id}. Reservations for the item are
// removed with it.
func (h *ItemsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := store.DeleteItem(r.Context(), h.DB, id); err != nil {
		serverError(w, r, "failed to delete item", err)
		return
	}

	ok(w)
}
