package get_profile

import (
	"errors"
	"net/http"

	"github.com/venuebook/VB-BookingService/internal/api/handlers"
	"github.com/venuebook/VB-BookingService/internal/api/middleware"
	"github.com/venuebook/VB-BookingService/internal/service/users"
	userModels "github.com/venuebook/VB-BookingService/internal/service/users/models"
)

const (
	msgUnauthorized = "требуется аутентификация"
	msgUserNotFound = "пользователь не найден"
)

type Handler struct {
	service UserService
	logger  Logger
}

func NewHandler(service UserService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// profileResponse ответ с конвертом success
type profileResponse struct {
	Success bool                     `json:"success"`
	User    *userModels.UserResponse `json:"user"`
}

// Handle GET /api/v1/auth/me
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.GetPrincipal(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	result, err := h.service.GetMe(r.Context(), principal.ID)
	if err != nil {
		switch {
		case errors.Is(err, users.ErrUserNotFound):
			h.logger.Warn("GET /auth/me - Not found: user_id=%s", principal.ID)
			handlers.RespondNotFound(w, msgUserNotFound)

		default:
			h.logger.Error("GET /auth/me - Failed: user_id=%s, error=%v", principal.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, profileResponse{
		Success: true,
		User:    result,
	})
}
