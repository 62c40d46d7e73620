package cancel_booking

import (
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/venuebook/VB-BookingService/internal/api/handlers"
	"github.com/venuebook/VB-BookingService/internal/api/middleware"
	"github.com/venuebook/VB-BookingService/internal/service/bookings"
	bookingModels "github.com/venuebook/VB-BookingService/internal/service/bookings/models"
)

const (
	msgUnauthorized    = "требуется аутентификация"
	msgInvalidBody     = "некорректное тело запроса"
	msgBookingNotFound = "бронирование не найдено"
	msgCannotCancel    = "бронирование нельзя отменить в текущем статусе"
	msgReasonTooLong   = "причина отмены слишком длинная"
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

// cancelBookingBody тело запроса; причина опциональна
type cancelBookingBody struct {
	Reason *string `json:"reason"`
}

// cancelBookingResponse ответ с конвертом success
type cancelBookingResponse struct {
	Success bool `json:"success"`
	*bookingModels.BookingResponse
}

// Handle PATCH /api/v1/bookings/{bookingId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.GetPrincipal(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	bookingID := mux.Vars(r)["bookingId"]

	// Тело может отсутствовать целиком
	var body cancelBookingBody
	if err := handlers.DecodeJSON(r, &body); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Warn("PATCH /bookings/{bookingId}/cancel - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	result, err := h.service.Cancel(r.Context(), bookingID, &bookingModels.CancelBookingRequest{
		Reason:    body.Reason,
		ActorRole: principal.Role,
	})
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{bookingId}/cancel - Not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, bookings.ErrCannotCancel):
			h.logger.Warn("PATCH /bookings/{bookingId}/cancel - Invalid transition: booking_id=%s", bookingID)
			handlers.RespondConflict(w, msgCannotCancel)

		case errors.Is(err, bookings.ErrReasonTooLong):
			h.logger.Warn("PATCH /bookings/{bookingId}/cancel - Reason too long: booking_id=%s", bookingID)
			handlers.RespondBadRequest(w, msgReasonTooLong)

		default:
			h.logger.Error("PATCH /bookings/{bookingId}/cancel - Failed: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{bookingId}/cancel - Cancelled: booking_id=%s, actor=%s", bookingID, principal.Role)
	handlers.RespondJSON(w, http.StatusOK, cancelBookingResponse{
		Success:         true,
		BookingResponse: result,
	})
}
