package get_venue

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/venuebook/VB-BookingService/internal/api/handlers"
	"github.com/venuebook/VB-BookingService/internal/service/venues"
	venueModels "github.com/venuebook/VB-BookingService/internal/service/venues/models"
)

const msgVenueNotFound = "площадка не найдена"

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

// getVenueResponse ответ с конвертом success
type getVenueResponse struct {
	Success bool `json:"success"`
	*venueModels.VenueResponse
}

// Handle GET /api/v1/venues/{venueId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	venueID := mux.Vars(r)["venueId"]

	result, err := h.service.GetByID(r.Context(), venueID)
	if err != nil {
		switch {
		case errors.Is(err, venues.ErrVenueNotFound):
			h.logger.Warn("GET /venues/{venueId} - Not found: venue_id=%s", venueID)
			handlers.RespondNotFound(w, msgVenueNotFound)

		default:
			h.logger.Error("GET /venues/{venueId} - Failed: venue_id=%s, error=%v", venueID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, getVenueResponse{
		Success:       true,
		VenueResponse: result,
	})
}
