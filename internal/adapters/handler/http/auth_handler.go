package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/mulozi/api/internal/core/domain"
	"github.com/mulozi/api/internal/core/ports"
)

type AuthHandler struct {
	service ports.AuthService
	logger  *slog.Logger
}

func NewAuthHandler(service ports.AuthService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		logger:  logger,
	}
}

type registeredUserResponse struct {
	Email string `json:"email"`
	UUID  string `json:"uuid"`
}

// Register godoc
// @Summary      Registers a new user account
// @Description  Validates the payload, hashes the password and creates the user. Only email and uuid are echoed back.
// @Tags         auth
// @Accept       json
// @Success      200
// @Failure      400
// @Failure      403
// @Router       /auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req domain.UnregisteredUser
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	user, err := h.service.Register(r.Context(), req)
	if err != nil {
		h.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]registeredUserResponse{
		"user": {Email: user.Email, UUID: user.UUID.String()},
	})
}

// Login godoc
// @Summary      Authenticates a user
// @Description  Verifies email and password and returns an access/refresh token pair.
// @Tags         auth
// @Accept       json
// @Success      200
// @Failure      400
// @Failure      401
// @Router       /auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req domain.LoginCredentials
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	tokens, err := h.service.Login(r.Context(), req)
	if err != nil {
		h.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]*domain.TokenPair{"tokens": tokens})
}

// Refresh godoc
// @Summary      Rotates a refresh token
// @Description  Exchanges the refresh token presented to the refresh guard for a new token pair. The old refresh token is revoked.
// @Tags         auth
// @Accept       json
// @Success      200
// @Failure      401
// @Router       /auth/refresh [post]
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	refreshToken, ok := r.Context().Value(refreshTokenKey).(string)
	if !ok || refreshToken == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	tokens, err := h.service.Refresh(r.Context(), refreshToken)
	if err != nil {
		h.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, tokens)
}

// writeError maps service errors to HTTP statuses. Internal failures are
// logged with context but never detailed to the caller.
func (h *AuthHandler) writeError(w http.ResponseWriter, err error) {
	switch {
	case domain.IsValidation(err):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, domain.ErrEmailExists):
		http.Error(w, "Email already exists", http.StatusForbidden)
	case errors.Is(err, domain.ErrInvalidLogin):
		http.Error(w, "Invalid login", http.StatusUnauthorized)
	case errors.Is(err, domain.ErrUnauthorized):
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
	default:
		h.logger.Error("request failed", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}
