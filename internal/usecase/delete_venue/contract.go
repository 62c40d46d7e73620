package delete_venue

import (
	"context"

	"github.com/venuebook/VB-BookingService/internal/domain"
)

// VenueRepository интерфейс репозитория площадок
type VenueRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Venue, error)
	Delete(ctx context.Context, id string) error
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	ReceiptPublicIDsByVenueID(ctx context.Context, venueID string) ([]string, error)
	DeleteByVenueID(ctx context.Context, venueID string) (int64, error)
}

// AssetStore интерфейс внешнего хранилища файлов
type AssetStore interface {
	Destroy(ctx context.Context, publicID string) error
}

// TxManager интерфейс менеджера транзакций
type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
