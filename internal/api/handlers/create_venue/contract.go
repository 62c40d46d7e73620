package create_venue

import (
	"context"

	venueModels "github.com/venuebook/VB-BookingService/internal/service/venues/models"
	createVenue "github.com/venuebook/VB-BookingService/internal/usecase/create_venue"
)

// CreateVenueUseCase интерфейс сценария создания площадки
type CreateVenueUseCase interface {
	Execute(ctx context.Context, req *createVenue.CreateVenueRequest) (*venueModels.VenueResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
