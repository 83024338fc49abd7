package handlers

import (
	"net/http"
	"time"

	"github.com/psatpute/HOA-OPs-AI/db"
)

type HealthHandler struct {
	Mongo *db.Mongo
}

func NewHealthHandler(mongo *db.Mongo) *HealthHandler {
	return &HealthHandler{Mongo: mongo}
}

func (h *HealthHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	database := "connected"
	if err := h.Mongo.Ping(r.Context()); err != nil {
		database = "disconnected"
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"status":    "ok",
		"database":  database,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
