package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/psatpute/HOA-OPs-AI/logging"
	"github.com/psatpute/HOA-OPs-AI/middleware"
	"github.com/psatpute/HOA-OPs-AI/models"
	"github.com/psatpute/HOA-OPs-AI/services"
)

type ProjectHandler struct {
	Service *services.ProjectService
}

func NewProjectHandler(service *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{Service: service}
}

func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.ProjectCreate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if err := req.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	user := middleware.CurrentUser(r.Context())
	project, err := h.Service.Create(r.Context(), req, user.ID.Hex())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to create project: "+err.Error())
		return
	}

	logging.Logger.Infof("Project %s created by %s", project.ID.Hex(), user.Email)
	respondJSON(w, http.StatusCreated, project)
}

func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	skip, limit := parsePagination(r)
	projects, total, err := h.Service.List(
		r.Context(),
		r.URL.Query().Get("status"),
		r.URL.Query().Get("search"),
		parseBoolParam(r, "archived"),
		skip, limit,
	)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to retrieve projects: "+err.Error())
		return
	}

	respondJSON(w, http.StatusOK, models.ProjectListResponse{Projects: projects, Total: total})
}

func (h *ProjectHandler) Get(w http.ResponseWriter, r *http.Request) {
	detail, err := h.Service.GetDetail(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondLookupError(w, err, "Project not found")
		return
	}
	respondJSON(w, http.StatusOK, detail)
}

func (h *ProjectHandler) Comparison(w http.ResponseWriter, r *http.Request) {
	comparison, err := h.Service.GetComparison(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondLookupError(w, err, "Project not found")
		return
	}
	respondJSON(w, http.StatusOK, comparison)
}

func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req models.ProjectUpdate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if err := req.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	project, err := h.Service.Update(r.Context(), mux.Vars(r)["id"], req)
	if err != nil {
		respondLookupError(w, err, "Project not found")
		return
	}
	respondJSON(w, http.StatusOK, project)
}

func (h *ProjectHandler) Archive(w http.ResponseWriter, r *http.Request) {
	archived, err := h.Service.Archive(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondLookupError(w, err, "Project not found")
		return
	}
	if !archived {
		respondError(w, http.StatusNotFound, "Project not found")
		return
	}
	respondJSON(w, http.StatusOK, messageResponse{Message: "Project archived successfully"})
}
