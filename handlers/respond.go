package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/psatpute/HOA-OPs-AI/logging"
	"github.com/psatpute/HOA-OPs-AI/repositories"
)

const (
	defaultPageLimit = 50
	maxPageLimit     = 100
)

type errorResponse struct {
	Error string `json:"error"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logging.Logger.Errorf("Failed to encode response: %v", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, errorResponse{Error: message})
}

// respondLookupError maps repository errors for id lookups: malformed ids
// and missing documents both read as not-found at the HTTP boundary.
func respondLookupError(w http.ResponseWriter, err error, notFoundMessage string) {
	switch {
	case err == repositories.ErrNotFound, err == repositories.ErrInvalidID:
		respondError(w, http.StatusNotFound, notFoundMessage)
	default:
		respondError(w, http.StatusInternalServerError, err.Error())
	}
}

// parsePagination reads skip/limit query params, clamping limit to
// [1, 100] with a default of 50 and skip to >= 0.
func parsePagination(r *http.Request) (skip, limit int64) {
	limit = defaultPageLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if parsed, err := strconv.ParseInt(raw, 10, 64); err == nil {
			limit = parsed
		}
	}
	if limit < 1 {
		limit = 1
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	if raw := r.URL.Query().Get("skip"); raw != "" {
		if parsed, err := strconv.ParseInt(raw, 10, 64); err == nil && parsed > 0 {
			skip = parsed
		}
	}
	return skip, limit
}

func parseBoolParam(r *http.Request, name string) bool {
	value, err := strconv.ParseBool(r.URL.Query().Get(name))
	return err == nil && value
}
