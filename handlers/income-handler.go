package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/psatpute/HOA-OPs-AI/logging"
	"github.com/psatpute/HOA-OPs-AI/middleware"
	"github.com/psatpute/HOA-OPs-AI/models"
	"github.com/psatpute/HOA-OPs-AI/services"
)

type IncomeHandler struct {
	Service       *services.IncomeService
	MaxImportSize int64
}

func NewIncomeHandler(service *services.IncomeService, maxImportSize int64) *IncomeHandler {
	return &IncomeHandler{Service: service, MaxImportSize: maxImportSize}
}

func (h *IncomeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.IncomeCreate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if err := req.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	user := middleware.CurrentUser(r.Context())
	income, err := h.Service.Create(r.Context(), req, user.ID.Hex())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to create income: "+err.Error())
		return
	}
	respondJSON(w, http.StatusCreated, income)
}

func (h *IncomeHandler) List(w http.ResponseWriter, r *http.Request) {
	skip, limit := parsePagination(r)
	records, total, err := h.Service.List(
		r.Context(),
		r.URL.Query().Get("source"),
		r.URL.Query().Get("search"),
		skip, limit,
	)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to retrieve income: "+err.Error())
		return
	}

	respondJSON(w, http.StatusOK, models.IncomeListResponse{Income: records, Total: total})
}

// Import bulk-loads income records from an uploaded CSV or Excel file.
func (h *IncomeHandler) Import(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(multipartMemoryLimit); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		respondError(w, http.StatusBadRequest, "No file provided")
		return
	}
	defer file.Close()

	if !hasImportExtension(header.Filename) {
		respondError(w, http.StatusBadRequest, "Invalid file type. Only CSV and Excel files are supported.")
		return
	}

	// Read one byte past the cap so an oversized file is detected without
	// buffering all of it.
	content, err := io.ReadAll(io.LimitReader(file, h.MaxImportSize+1))
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to read file: "+err.Error())
		return
	}
	if int64(len(content)) > h.MaxImportSize {
		respondError(w, http.StatusBadRequest, "File size exceeds 10MB limit")
		return
	}

	user := middleware.CurrentUser(r.Context())
	result, err := h.Service.Import(r.Context(), content, header.Filename, user.ID.Hex())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to process import: "+err.Error())
		return
	}

	logging.Logger.Infof("Income import by %s: %d imported, %d errors", user.Email, result.Imported, len(result.Errors))
	respondJSON(w, http.StatusOK, result)
}

func hasImportExtension(filename string) bool {
	for _, ext := range []string{".csv", ".xlsx", ".xls"} {
		if strings.HasSuffix(filename, ext) {
			return true
		}
	}
	return false
}
