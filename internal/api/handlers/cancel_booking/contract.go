package cancel_booking

import (
	"context"

	bookingModels "github.com/venuebook/VB-BookingService/internal/service/bookings/models"
)

// BookingService интерфейс сервиса бронирований
type BookingService interface {
	Cancel(ctx context.Context, bookingID string, req *bookingModels.CancelBookingRequest) (*bookingModels.BookingResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
