package get_customer_bookings

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

// customerBookingsResponse ответ с конвертом success
type customerBookingsResponse struct {
	Success bool `json:"success"`
	*bookingModels.BookingListResponse
}

// Handle GET /api/v1/bookings/customer
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.GetPrincipal(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	result, err := h.service.GetByCustomer(r.Context(), principal.ID)
	if err != nil {
		h.logger.Error("GET /bookings/customer - Failed: customer_id=%s, error=%v", principal.ID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, customerBookingsResponse{
		Success:             true,
		BookingListResponse: result,
	})
}
