package check_availability

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/venuebook/VB-BookingService/internal/api/handlers"
	checkAvailability "github.com/venuebook/VB-BookingService/internal/usecase/check_availability"
)

const msgInvalidQuery = "некорректные параметры запроса доступности"

type Handler struct {
	useCase CheckAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// availabilityResponse ответ с конвертом success
type availabilityResponse struct {
	Success bool `json:"success"`
	*checkAvailability.CheckAvailabilityResponse
}

// Handle GET /api/v1/venues/{venueId}/availability?date=YYYY-MM-DD&timeSlot=noon|evening
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	query := r.URL.Query()

	req := &checkAvailability.CheckAvailabilityRequest{
		VenueID:  vars["venueId"],
		Date:     query.Get("date"),
		TimeSlot: query.Get("timeSlot"),
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, checkAvailability.ErrValidation):
			h.logger.Warn("GET /venues/{venueId}/availability - Invalid query: %v", err)
			handlers.RespondBadRequest(w, msgInvalidQuery)
		default:
			h.logger.Error("GET /venues/{venueId}/availability - Failed: venue_id=%s, error=%v", req.VenueID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, availabilityResponse{
		Success:                   true,
		CheckAvailabilityResponse: result,
	})
}
