package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"calc-service/internal/calculator"
	"calc-service/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type errorResponse struct {
	Error      string   `json:"error"`
	ValidTypes []string `json:"valid_types,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// writeDomainError maps a calculator error to its HTTP shape. An unsupported
// operation additionally carries the valid-name list.
func writeDomainError(w http.ResponseWriter, err error) {
	var unsupported *calculator.UnsupportedOperationError
	if errors.As(err, &unsupported) {
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error:      unsupported.Error(),
			ValidTypes: unsupported.ValidNames,
		})
		return
	}
	writeError(w, http.StatusBadRequest, err.Error())
}

// idParam parses the {id} chi route parameter. A malformed identifier is
// treated like a missing record.
func idParam(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, storage.ErrNotFound
	}
	return id, nil
}

// listParams reads skip/limit query parameters with the defaults the
// listing endpoints use.
func listParams(r *http.Request) (offset, limit int) {
	offset, limit = 0, 10
	if v := r.URL.Query().Get("skip"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			offset = n
		}
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}
	return offset, limit
}
