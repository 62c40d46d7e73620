package accept_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/venuebook/VB-BookingService/internal/api/handlers"
	"github.com/venuebook/VB-BookingService/internal/service/bookings"
	bookingModels "github.com/venuebook/VB-BookingService/internal/service/bookings/models"
)

const (
	msgBookingNotFound = "бронирование не найдено"
	msgCannotAccept    = "бронирование нельзя подтвердить в текущем статусе"
)

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

// acceptBookingResponse ответ с конвертом success
type acceptBookingResponse struct {
	Success bool `json:"success"`
	*bookingModels.BookingResponse
}

// Handle PATCH /api/v1/bookings/{bookingId}/accept
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["bookingId"]

	result, err := h.service.Accept(r.Context(), bookingID)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{bookingId}/accept - Not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, bookings.ErrCannotAccept):
			h.logger.Warn("PATCH /bookings/{bookingId}/accept - Invalid transition: booking_id=%s", bookingID)
			handlers.RespondConflict(w, msgCannotAccept)

		default:
			h.logger.Error("PATCH /bookings/{bookingId}/accept - Failed: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{bookingId}/accept - Accepted: booking_id=%s", bookingID)
	handlers.RespondJSON(w, http.StatusOK, acceptBookingResponse{
		Success:         true,
		BookingResponse: result,
	})
}
