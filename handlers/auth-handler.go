package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/psatpute/HOA-OPs-AI/logging"
	"github.com/psatpute/HOA-OPs-AI/middleware"
	"github.com/psatpute/HOA-OPs-AI/models"
	"github.com/psatpute/HOA-OPs-AI/repositories"
	"github.com/psatpute/HOA-OPs-AI/services"
	"github.com/psatpute/HOA-OPs-AI/utils"
)

type AuthHandler struct {
	UserService *services.UserService
	JWTSecret   []byte
	TokenTTL    time.Duration
}

func NewAuthHandler(userService *services.UserService, jwtSecret []byte, tokenTTL time.Duration) *AuthHandler {
	return &AuthHandler{
		UserService: userService,
		JWTSecret:   jwtSecret,
		TokenTTL:    tokenTTL,
	}
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req models.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if err := req.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to hash password")
		return
	}

	user, err := h.UserService.Register(r.Context(), req, hash)
	if errors.Is(err, services.ErrEmailTaken) {
		respondError(w, http.StatusBadRequest, "Email already registered")
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	token, err := utils.GenerateToken(h.JWTSecret, user.ID.Hex(), h.TokenTTL)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	logging.Logger.Infof("New account registered for %s", user.Email)
	respondJSON(w, http.StatusCreated, models.UserWithToken{
		ID:        user.ID.Hex(),
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Role:      user.Role,
		Token:     token,
	})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	user, err := h.UserService.GetByEmail(r.Context(), req.Email)
	if errors.Is(err, repositories.ErrNotFound) {
		respondError(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if !utils.CheckPassword(user.PasswordHash, req.Password) {
		respondError(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	h.UserService.StampLastLogin(r.Context(), user)

	token, err := utils.GenerateToken(h.JWTSecret, user.ID.Hex(), h.TokenTTL)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	respondJSON(w, http.StatusOK, models.UserWithToken{
		ID:        user.ID.Hex(),
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Role:      user.Role,
		Token:     token,
	})
}

// Logout confirms the action; token invalidation is handled client-side by
// discarding the token.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, messageResponse{Message: "Logged out successfully"})
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user := middleware.CurrentUser(r.Context())
	if user == nil {
		respondError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}
	respondJSON(w, http.StatusOK, user)
}
