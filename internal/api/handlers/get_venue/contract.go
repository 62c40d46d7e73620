package get_venue

import (
	"context"

	venueModels "github.com/venuebook/VB-BookingService/internal/service/venues/models"
)

// VenueService интерфейс сервиса площадок
type VenueService interface {
	GetByID(ctx context.Context, venueID string) (*venueModels.VenueResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
