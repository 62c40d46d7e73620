package delete_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/venuebook/VB-BookingService/internal/api/handlers"
	"github.com/venuebook/VB-BookingService/internal/service/bookings"
)

const (
	msgBookingNotFound = "бронирование не найдено"
	msgBookingDeleted  = "бронирование удалено"
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

// deleteBookingResponse ответ удаления
type deleteBookingResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Handle DELETE /api/v1/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["bookingId"]

	if err := h.service.Delete(r.Context(), bookingID); err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("DELETE /bookings/{bookingId} - Not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		default:
			h.logger.Error("DELETE /bookings/{bookingId} - Failed: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /bookings/{bookingId} - Deleted: booking_id=%s", bookingID)
	handlers.RespondJSON(w, http.StatusOK, deleteBookingResponse{
		Success: true,
		Message: msgBookingDeleted,
	})
}
