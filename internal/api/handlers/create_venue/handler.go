package create_venue

import (
	"errors"
	"net/http"

	"github.com/venuebook/VB-BookingService/internal/api/handlers"
	"github.com/venuebook/VB-BookingService/internal/api/middleware"
	createVenue "github.com/venuebook/VB-BookingService/internal/usecase/create_venue"
)

const (
	msgUnauthorized = "требуется аутентификация"
	msgInvalidForm  = "некорректная multipart-форма запроса"
	msgImageUpload  = "не удалось загрузить изображение площадки"
)

type Handler struct {
	useCase CreateVenueUseCase
	logger  Logger
}

func NewHandler(useCase CreateVenueUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/venues
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.GetPrincipal(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	req, err := parseMultipartRequest(r, principal.ID)
	if err != nil {
		h.logger.Warn("POST /venues - Invalid multipart form: %v", err)
		handlers.RespondBadRequest(w, msgInvalidForm)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, createVenue.ErrValidation):
			h.logger.Warn("POST /venues - Validation failed: owner_id=%s, error=%v", principal.ID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, createVenue.ErrImageUpload):
			h.logger.Error("POST /venues - Image upload failed: owner_id=%s, error=%v", principal.ID, err)
			handlers.RespondError(w, http.StatusBadGateway, msgImageUpload)

		default:
			h.logger.Error("POST /venues - Failed to create venue: owner_id=%s, error=%v", principal.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /venues - Venue created: venue_id=%s, owner_id=%s", result.ID, principal.ID)
	handlers.RespondJSON(w, http.StatusCreated, createVenueResponse{
		Success:       true,
		VenueResponse: result,
	})
}
