package http

import (
	"net/http"

	"github.com/mulozi/api/internal/core/domain"
	"github.com/mulozi/api/internal/core/ports"
)

type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{
		service: service,
	}
}

// GetMe godoc
// @Summary      Returns the authenticated user's profile
// @Description  Reads the current record for the user the guard authenticated, so the response reflects the store rather than the token claims.
// @Tags         users
// @Accept       json
// @Success      200
// @Failure      401
// @Router       /api/me [get]
func (h *UserHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	profile, ok := r.Context().Value(ProfileKey).(domain.PublicProfile)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	user, err := h.service.GetByUUID(r.Context(), profile.UUID)
	if err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	if user == nil {
		http.Error(w, "User not found", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, user.Profile())
}
