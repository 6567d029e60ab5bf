package api

import (
	"database/sql"
	"net/http"
	"strings"

	"github.com/erazemk/lostfound/internal/metrics"
	"github.com/erazemk/lostfound/internal/model"
	"github.com/erazemk/lostfound/internal/store"
)

// ReservationsHandler handles reservation endpoints.
type ReservationsHandler struct {
	DB *sql.DB
}

type createReservationRequest struct {
	ItemID      string `json:"itemId" validate:"required,max=64"`
	ItemName    string `json:"itemName" validate:"max=200"`
	FullName    string `json:"fullName" validate:"required,max=200"`
	UserType    string `json:"userType" validate:"max=32"`
	ContactInfo string `json:"contactInfo" validate:"required,max=200"`
	Comment     string `json:"comment" validate:"max=2000"`
}

func (req *createReservationRequest) normalize() {
	req.ItemID = strings.TrimSpace(req.ItemID)
	req.FullName = strings.TrimSpace(req.FullName)
	req.ContactInfo = strings.TrimSpace(req.ContactInfo)
}

// Create handles POST /api/reservations.
func (h *ReservationsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createReservationRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	_, err := store.CreateReservation(r.Context(), h.DB, model.Reservation{
		ItemID:      req.ItemID,
		ItemName:    req.ItemName,
		FullName:    req.FullName,
		UserType:    req.UserType,
		ContactInfo: req.ContactInfo,
		Comment:     req.Comment,
	})
	if err != nil {
		serverError(w, r, "could not save reservation", err)
		return
	}

	metrics.ReservationsSubmitted.Inc()
	ok(w)
}

// List handles GET /api/reservations.
func (h *ReservationsHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := store.ListReservations(r.Context(), h.DB)
	if err != nil {
		serverError(w, r, "failed to list reservations", err)
		return
	}
	if list == nil {
		list = []model.Reservation{}
	}
	jsonResponse(w, http.StatusOK, list)
}
