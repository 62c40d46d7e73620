package delete_venue

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/venuebook/VB-BookingService/internal/api/handlers"
	"github.com/venuebook/VB-BookingService/internal/api/middleware"
	deleteVenue "github.com/venuebook/VB-BookingService/internal/usecase/delete_venue"
)

const (
	msgUnauthorized  = "требуется аутентификация"
	msgVenueNotFound = "площадка не найдена"
	msgNotOwner      = "площадка принадлежит другому владельцу"
)

type Handler struct {
	useCase DeleteVenueUseCase
	logger  Logger
}

func NewHandler(useCase DeleteVenueUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// deleteVenueResponse ответ каскадного удаления
type deleteVenueResponse struct {
	Success         bool  `json:"success"`
	DeletedBookings int64 `json:"deletedBookings"`
}

// Handle DELETE /api/v1/venues/{venueId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.GetPrincipal(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	venueID := mux.Vars(r)["venueId"]

	result, err := h.useCase.Execute(r.Context(), &deleteVenue.DeleteVenueRequest{
		VenueID: venueID,
		OwnerID: principal.ID,
	})
	if err != nil {
		switch {
		case errors.Is(err, deleteVenue.ErrVenueNotFound):
			h.logger.Warn("DELETE /venues/{venueId} - Not found: venue_id=%s", venueID)
			handlers.RespondNotFound(w, msgVenueNotFound)

		case errors.Is(err, deleteVenue.ErrNotOwner):
			h.logger.Warn("DELETE /venues/{venueId} - Forbidden: venue_id=%s, owner_id=%s", venueID, principal.ID)
			handlers.RespondForbidden(w, msgNotOwner)

		default:
			h.logger.Error("DELETE /venues/{venueId} - Failed: venue_id=%s, error=%v", venueID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /venues/{venueId} - Deleted: venue_id=%s, bookings=%d", venueID, result.DeletedBookings)
	handlers.RespondJSON(w, http.StatusOK, deleteVenueResponse{
		Success:         true,
		DeletedBookings: result.DeletedBookings,
	})
}
