package check_availability

import (
	"context"
	"time"

	"github.com/venuebook/VB-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	CountActiveBySlot(ctx context.Context, venueID string, date time.Time, slot domain.TimeSlot) (int, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
