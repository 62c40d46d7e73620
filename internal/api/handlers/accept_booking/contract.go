package accept_booking

import (
	"context"

	bookingModels "github.com/venuebook/VB-BookingService/internal/service/bookings/models"
)

// BookingService интерфейс сервиса бронирований
type BookingService interface {
	Accept(ctx context.Context, bookingID string) (*bookingModels.BookingResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
