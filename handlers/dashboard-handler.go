package handlers

import (
	"net/http"

	"github.com/psatpute/HOA-OPs-AI/services"
)

type DashboardHandler struct {
	Service *services.DashboardService
}

func NewDashboardHandler(service *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{Service: service}
}

func (h *DashboardHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.Service.Summary(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to retrieve dashboard summary: "+err.Error())
		return
	}
	respondJSON(w, http.StatusOK, summary)
}
