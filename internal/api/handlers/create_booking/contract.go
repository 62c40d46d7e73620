package create_booking

import (
	"context"

	bookingModels "github.com/venuebook/VB-BookingService/internal/service/bookings/models"
	createBooking "github.com/venuebook/VB-BookingService/internal/usecase/create_booking"
)

// CreateBookingUseCase интерфейс сценария создания бронирования
type CreateBookingUseCase interface {
	Execute(ctx context.Context, req *createBooking.CreateBookingRequest) (*bookingModels.BookingResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
