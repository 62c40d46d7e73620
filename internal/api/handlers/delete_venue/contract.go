package delete_venue

import (
	"context"

	deleteVenue "github.com/venuebook/VB-BookingService/internal/usecase/delete_venue"
)

// DeleteVenueUseCase интерфейс сценария каскадного удаления площадки
type DeleteVenueUseCase interface {
	Execute(ctx context.Context, req *deleteVenue.DeleteVenueRequest) (*deleteVenue.DeleteVenueResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
