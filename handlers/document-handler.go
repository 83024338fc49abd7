package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/psatpute/HOA-OPs-AI/logging"
	"github.com/psatpute/HOA-OPs-AI/middleware"
	"github.com/psatpute/HOA-OPs-AI/models"
	"github.com/psatpute/HOA-OPs-AI/services"
	"github.com/psatpute/HOA-OPs-AI/utils"
)

type DocumentHandler struct {
	Service   *services.DocumentService
	FileStore *utils.FileStore
}

func NewDocumentHandler(service *services.DocumentService, fileStore *utils.FileStore) *DocumentHandler {
	return &DocumentHandler{Service: service, FileStore: fileStore}
}

// Create accepts multipart form data; the file is required.
func (h *DocumentHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(multipartMemoryLimit); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	req := models.DocumentCreate{
		Title:       r.FormValue("title"),
		Category:    r.FormValue("category"),
		Description: r.FormValue("description"),
	}
	if err := req.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		respondError(w, http.StatusBadRequest, "No file provided")
		return
	}
	defer file.Close()

	fileURL, err := h.FileStore.SaveFile(file, header.Filename, "documents")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	fileType := utils.GetFileExtension(header.Filename)
	fileSize := utils.FormatFileSize(h.FileStore.FileSizeOnDisk(fileURL))

	user := middleware.CurrentUser(r.Context())
	document, err := h.Service.Create(r.Context(), req, user.ID.Hex(), fileURL, fileType, fileSize)
	if err != nil {
		h.FileStore.DeleteFile(fileURL)
		respondError(w, http.StatusInternalServerError, "Failed to create document: "+err.Error())
		return
	}

	logging.Logger.Infof("Document %s uploaded by %s", document.ID.Hex(), user.Email)
	respondJSON(w, http.StatusCreated, document)
}

func (h *DocumentHandler) List(w http.ResponseWriter, r *http.Request) {
	skip, limit := parsePagination(r)
	documents, total, err := h.Service.List(
		r.Context(),
		r.URL.Query().Get("category"),
		r.URL.Query().Get("search"),
		parseBoolParam(r, "archived"),
		skip, limit,
	)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to retrieve documents: "+err.Error())
		return
	}

	respondJSON(w, http.StatusOK, models.DocumentListResponse{Documents: documents, Total: total})
}

func (h *DocumentHandler) Get(w http.ResponseWriter, r *http.Request) {
	document, err := h.Service.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondLookupError(w, err, "Document not found")
		return
	}
	respondJSON(w, http.StatusOK, document)
}

// Update changes metadata only; the stored file is immutable. To change the
// file, archive this document and create a new one.
func (h *DocumentHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req models.DocumentUpdate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if err := req.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	document, err := h.Service.Update(r.Context(), mux.Vars(r)["id"], req)
	if err != nil {
		respondLookupError(w, err, "Document not found")
		return
	}
	respondJSON(w, http.StatusOK, document)
}

func (h *DocumentHandler) Archive(w http.ResponseWriter, r *http.Request) {
	archived, err := h.Service.Archive(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondLookupError(w, err, "Document not found")
		return
	}
	if !archived {
		respondError(w, http.StatusNotFound, "Document not found")
		return
	}
	respondJSON(w, http.StatusOK, messageResponse{Message: "Document archived successfully"})
}
