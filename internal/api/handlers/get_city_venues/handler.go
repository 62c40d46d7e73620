package get_city_venues

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/venuebook/VB-BookingService/internal/api/handlers"
	venueModels "github.com/venuebook/VB-BookingService/internal/service/venues/models"
)

const msgCityRequired = "не указан город"

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

// cityVenuesResponse ответ с конвертом success
type cityVenuesResponse struct {
	Success bool `json:"success"`
	*venueModels.VenueListResponse
}

// Handle GET /api/v1/venues/city/{city}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	city := mux.Vars(r)["city"]
	if city == "" {
		handlers.RespondBadRequest(w, msgCityRequired)
		return
	}

	result, err := h.service.GetByCity(r.Context(), city)
	if err != nil {
		h.logger.Error("GET /venues/city/{city} - Failed: city=%q, error=%v", city, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, cityVenuesResponse{
		Success:           true,
		VenueListResponse: result,
	})
}
