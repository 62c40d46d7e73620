package get_owner_bookings

import (
	"context"

	bookingModels "github.com/venuebook/VB-BookingService/internal/service/bookings/models"
)

// BookingService интерфейс сервиса бронирований
type BookingService interface {
	GetByOwner(ctx context.Context, ownerID string) (*bookingModels.BookingListResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
