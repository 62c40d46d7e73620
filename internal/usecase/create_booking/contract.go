package create_booking

import (
	"context"
	"time"

	"github.com/venuebook/VB-BookingService/internal/domain"
	"github.com/venuebook/VB-BookingService/internal/integrations/cloudinary"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	CountActiveBySlot(ctx context.Context, venueID string, date time.Time, slot domain.TimeSlot) (int, error)
}

// VenueRepository интерфейс репозитория площадок для пересчета стоимости
type VenueRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Venue, error)
}

// AssetStore интерфейс внешнего хранилища файлов чеков
type AssetStore interface {
	Upload(ctx context.Context, data []byte, subfolder string) (*cloudinary.UploadResult, error)
	Destroy(ctx context.Context, publicID string) error
}

// TxManager интерфейс менеджера транзакций
type TxManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
