package get_owner_venues

import (
	"net/http"

	"github.com/venuebook/VB-BookingService/internal/api/handlers"
	"github.com/venuebook/VB-BookingService/internal/api/middleware"
	venueModels "github.com/venuebook/VB-BookingService/internal/service/venues/models"
)

const msgUnauthorized = "требуется аутентификация"

type Handler struct {
	service VenueService
	logger  Logger
}

func NewHandler(service VenueService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// ownerVenuesResponse ответ с конвертом success
type ownerVenuesResponse struct {
	Success bool `json:"success"`
	*venueModels.VenueListResponse
}

// Handle GET /api/v1/venues/owner
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.GetPrincipal(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	result, err := h.service.GetByOwner(r.Context(), principal.ID)
	if err != nil {
		h.logger.Error("GET /venues/owner - Failed: owner_id=%s, error=%v", principal.ID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, ownerVenuesResponse{
		Success:           true,
		VenueListResponse: result,
	})
}
