package venues

import (
	"context"

	"github.com/venuebook/VB-BookingService/internal/domain"
)

// VenueRepository интерфейс репозитория площадок
type VenueRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Venue, error)
	GetByOwnerID(ctx context.Context, ownerID string) ([]*domain.Venue, error)
	GetByCity(ctx context.Context, city string) ([]*domain.Venue, error)
}

// UserRepository интерфейс репозитория пользователей для данных владельца
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
