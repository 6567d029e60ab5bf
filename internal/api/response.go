package api

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
)

// jsonResponse writes a JSON response with the given status code.
func jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			slog.Error("failed to encode response", "error", err)
		}
	}
}

// jsonError writes a JSON error response.
func jsonError(w http.ResponseWriter, status int, message string) {
	jsonResponse(w, status, map[string]string{"error": message})
}

// serverError logs err with the request ID and answers with a generic 500.
func serverError(w http.ResponseWriter, r *http.Request, message string, err error) {
	slog.Error(message, "error", err, "request_id", middleware.GetReqID(r.Context()))
	jsonError(w, http.StatusInternalServerError, message)
}

// successResponse is the body of every mutating endpoint.
type successResponse struct {
	Success bool `json:"success"`
}

func ok(w http.ResponseWriter) {
	jsonResponse(w, http.StatusOK, successResponse{Success: true})
}

// maxBodyBytes caps every JSON request body.
const maxBodyBytes = 64 << 10

// errTrailingData is returned when a body holds more than one JSON value.
var errTrailingData = errors.New("unexpected data after JSON body")

// decodeJSON decodes a single JSON value from the request body into target.
// Oversized bodies and anything after the value are rejected.
func decodeJSON(w http.ResponseWriter, r *http.Request, target any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	defer r.Body.Close()

	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(target); err != nil {
		return err
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return errTrailingData
	}
	return nil
}
