package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/psatpute/HOA-OPs-AI/services"
)

type AIHandler struct {
	Service *services.AIService
}

func NewAIHandler(service *services.AIService) *AIHandler {
	return &AIHandler{Service: service}
}

type chatRequest struct {
	Message string `json:"message"`
}

type chatResponse struct {
	Message string `json:"message"`
}

// Chat forwards the message to the AI assistant. Publicly accessible.
func (h *AIHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		respondError(w, http.StatusBadRequest, "Message is required")
		return
	}

	reply, err := h.Service.Chat(r.Context(), req.Message)
	switch {
	case errors.Is(err, services.ErrAINotConfigured):
		respondError(w, http.StatusInternalServerError,
			"OpenAI API key is not configured. Please set OPENAI_API_KEY environment variable.")
	case errors.Is(err, services.ErrUnavailable):
		respondError(w, http.StatusServiceUnavailable,
			"The AI chatbot service is temporarily unavailable. Please try again later.")
	case errors.Is(err, services.ErrUpstream):
		respondError(w, http.StatusBadGateway, err.Error())
	case err != nil:
		respondError(w, http.StatusInternalServerError, err.Error())
	default:
		respondJSON(w, http.StatusOK, chatResponse{Message: reply})
	}
}
