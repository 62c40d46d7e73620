package register

import (
	"errors"
	"net/http"

	"github.com/venuebook/VB-BookingService/internal/api/handlers"
	"github.com/venuebook/VB-BookingService/internal/service/users"
	userModels "github.com/venuebook/VB-BookingService/internal/service/users/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgEmailTaken         = "пользователь с таким email уже зарегистрирован"
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

// registerResponse ответ с конвертом success
type registerResponse struct {
	Success bool `json:"success"`
	*userModels.AuthResponse
}

// Handle POST /api/v1/auth/register
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req userModels.RegisterRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/register - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Register(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, users.ErrValidation):
			h.logger.Warn("POST /auth/register - Validation failed: email=%s, error=%v", req.Email, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, users.ErrEmailTaken):
			h.logger.Warn("POST /auth/register - Email taken: email=%s", req.Email)
			handlers.RespondConflict(w, msgEmailTaken)

		default:
			h.logger.Error("POST /auth/register - Failed: email=%s, error=%v", req.Email, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /auth/register - User registered: user_id=%s", result.User.ID)
	handlers.RespondJSON(w, http.StatusCreated, registerResponse{
		Success:      true,
		AuthResponse: result,
	})
}
