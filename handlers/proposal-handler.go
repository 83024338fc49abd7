package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/psatpute/HOA-OPs-AI/logging"
	"github.com/psatpute/HOA-OPs-AI/middleware"
	"github.com/psatpute/HOA-OPs-AI/models"
	"github.com/psatpute/HOA-OPs-AI/services"
	"github.com/psatpute/HOA-OPs-AI/utils"
)

// multipartMemoryLimit is how much of a multipart body is held in memory
// before spilling to temp files.
const multipartMemoryLimit = 10 << 20

type ProposalHandler struct {
	Service   *services.ProposalService
	FileStore *utils.FileStore
}

func NewProposalHandler(service *services.ProposalService, fileStore *utils.FileStore) *ProposalHandler {
	return &ProposalHandler{Service: service, FileStore: fileStore}
}

// Create accepts multipart form data with an optional proposal file.
func (h *ProposalHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(multipartMemoryLimit); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	bidAmount, err := strconv.ParseFloat(r.FormValue("bidAmount"), 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "bid amount must be a number")
		return
	}

	req := models.ProposalCreate{
		ProjectID:    r.FormValue("projectId"),
		VendorName:   r.FormValue("vendorName"),
		BidAmount:    bidAmount,
		Timeline:     r.FormValue("timeline"),
		Warranty:     r.FormValue("warranty"),
		ScopeSummary: r.FormValue("scopeSummary"),
		Status:       r.FormValue("status"),
	}
	if err := req.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	fileURL := ""
	if file, header, fileErr := r.FormFile("file"); fileErr == nil {
		defer file.Close()
		fileURL, err = h.FileStore.SaveFile(file, header.Filename, "proposals")
		if err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	user := middleware.CurrentUser(r.Context())
	proposal, err := h.Service.Create(r.Context(), req, user.ID.Hex(), fileURL)
	if err != nil {
		// The upload is orphaned if the insert fails; remove it.
		if fileURL != "" {
			h.FileStore.DeleteFile(fileURL)
		}
		respondLookupError(w, err, "Project not found")
		return
	}

	logging.Logger.Infof("Proposal %s created for project %s", proposal.ID.Hex(), proposal.ProjectID)
	respondJSON(w, http.StatusCreated, proposal)
}

func (h *ProposalHandler) List(w http.ResponseWriter, r *http.Request) {
	skip, limit := parsePagination(r)
	proposals, total, err := h.Service.List(
		r.Context(),
		r.URL.Query().Get("projectId"),
		r.URL.Query().Get("vendorName"),
		parseBoolParam(r, "archived"),
		skip, limit,
	)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to retrieve proposals: "+err.Error())
		return
	}

	respondJSON(w, http.StatusOK, models.ProposalListResponse{Proposals: proposals, Total: total})
}

func (h *ProposalHandler) Get(w http.ResponseWriter, r *http.Request) {
	proposal, err := h.Service.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondLookupError(w, err, "Proposal not found")
		return
	}
	respondJSON(w, http.StatusOK, proposal)
}

func (h *ProposalHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req models.ProposalUpdate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if err := req.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	proposal, err := h.Service.Update(r.Context(), mux.Vars(r)["id"], req)
	if err != nil {
		respondLookupError(w, err, "Proposal not found")
		return
	}
	respondJSON(w, http.StatusOK, proposal)
}

func (h *ProposalHandler) Archive(w http.ResponseWriter, r *http.Request) {
	archived, err := h.Service.Archive(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondLookupError(w, err, "Proposal not found")
		return
	}
	if !archived {
		respondError(w, http.StatusNotFound, "Proposal not found")
		return
	}
	respondJSON(w, http.StatusOK, messageResponse{Message: "Proposal archived successfully"})
}
