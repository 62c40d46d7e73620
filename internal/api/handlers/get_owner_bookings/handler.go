package get_owner_bookings

import (
	"net/http"

	"github.com/venuebook/VB-BookingService/internal/api/handlers"
	"github.com/venuebook/VB-BookingService/internal/api/middleware"
	bookingModels "github.com/venuebook/VB-BookingService/internal/service/bookings/models"
)

const msgUnauthorized = "требуется аутентификация"

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// ownerBookingsResponse ответ с конвертом success
type ownerBookingsResponse struct {
	Success bool `json:"success"`
	*bookingModels.BookingListResponse
}

// Handle GET /api/v1/bookings/owner
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.GetPrincipal(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	result, err := h.service.GetByOwner(r.Context(), principal.ID)
	if err != nil {
		h.logger.Error("GET /bookings/owner - Failed: owner_id=%s, error=%v", principal.ID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, ownerBookingsResponse{
		Success:             true,
		BookingListResponse: result,
	})
}
