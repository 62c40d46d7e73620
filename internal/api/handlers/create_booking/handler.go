package create_booking

import (
	"errors"
	"net/http"

	"github.com/venuebook/VB-BookingService/internal/api/handlers"
	"github.com/venuebook/VB-BookingService/internal/api/middleware"
	createBooking "github.com/venuebook/VB-BookingService/internal/usecase/create_booking"
)

const (
	msgInvalidForm      = "некорректная multipart-форма запроса"
	msgUnauthorized     = "требуется аутентификация"
	msgVenueNotFound    = "площадка не найдена"
	msgSlotNotAvailable = "выбранный слот уже занят"
	msgReceiptUpload    = "не удалось загрузить чек об оплате"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.GetPrincipal(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	req, err := parseMultipartRequest(r, principal.ID)
	if err != nil {
		h.logger.Warn("POST /bookings - Invalid multipart form: %v", err)
		handlers.RespondBadRequest(w, msgInvalidForm)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrValidation):
			h.logger.Warn("POST /bookings - Validation failed: customer_id=%s, error=%v", principal.ID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, createBooking.ErrVenueNotFound):
			h.logger.Warn("POST /bookings - Venue not found: venue_id=%s", req.VenueID)
			handlers.RespondNotFound(w, msgVenueNotFound)

		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /bookings - Slot not available: venue_id=%s, date=%s, slot=%s",
				req.VenueID, req.Date, req.TimeSlot)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, createBooking.ErrReceiptUpload):
			h.logger.Error("POST /bookings - Receipt upload failed: customer_id=%s, error=%v", principal.ID, err)
			handlers.RespondError(w, http.StatusBadGateway, msgReceiptUpload)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: customer_id=%s, error=%v", principal.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: booking_id=%s, customer_id=%s", result.ID, principal.ID)
	handlers.RespondJSON(w, http.StatusCreated, createBookingResponse{
		Success:         true,
		BookingResponse: result,
	})
}
