package get_owner_venues

import (
	"context"

	venueModels "github.com/venuebook/VB-BookingService/internal/service/venues/models"
)

// VenueService интерфейс сервиса площадок
type VenueService interface {
	GetByOwner(ctx context.Context, ownerID string) (*venueModels.VenueListResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
