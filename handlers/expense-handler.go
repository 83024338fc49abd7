package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/psatpute/HOA-OPs-AI/middleware"
	"github.com/psatpute/HOA-OPs-AI/models"
	"github.com/psatpute/HOA-OPs-AI/services"
)

type ExpenseHandler struct {
	Service *services.ExpenseService
}

func NewExpenseHandler(service *services.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{Service: service}
}

func (h *ExpenseHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.ExpenseCreate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if err := req.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	user := middleware.CurrentUser(r.Context())
	expense, err := h.Service.Create(r.Context(), req, user.ID.Hex())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to create expense: "+err.Error())
		return
	}
	respondJSON(w, http.StatusCreated, expense)
}

func (h *ExpenseHandler) List(w http.ResponseWriter, r *http.Request) {
	skip, limit := parsePagination(r)
	expenses, total, err := h.Service.List(
		r.Context(),
		r.URL.Query().Get("category"),
		r.URL.Query().Get("vendor"),
		r.URL.Query().Get("projectId"),
		r.URL.Query().Get("search"),
		skip, limit,
	)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to retrieve expenses: "+err.Error())
		return
	}

	respondJSON(w, http.StatusOK, models.ExpenseListResponse{Expenses: expenses, Total: total})
}

func (h *ExpenseHandler) Get(w http.ResponseWriter, r *http.Request) {
	expense, err := h.Service.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondLookupError(w, err, "Expense not found")
		return
	}
	respondJSON(w, http.StatusOK, expense)
}
