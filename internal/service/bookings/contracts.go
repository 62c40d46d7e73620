package bookings

import (
	"context"

	"github.com/venuebook/VB-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	GetByOwnerID(ctx context.Context, ownerID string) ([]*domain.Booking, error)
	GetByCustomerID(ctx context.Context, customerID string) ([]*domain.Booking, error)
	Accept(ctx context.Context, id string) error
	Cancel(ctx context.Context, id string, reason string) error
	Delete(ctx context.Context, id string) error
}

// AssetStore интерфейс внешнего хранилища файлов
type AssetStore interface {
	Destroy(ctx context.Context, publicID string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
