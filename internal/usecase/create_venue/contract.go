package create_venue

import (
	"context"

	"github.com/venuebook/VB-BookingService/internal/domain"
	"github.com/venuebook/VB-BookingService/internal/integrations/cloudinary"
)

// VenueRepository интерфейс репозитория площадок
type VenueRepository interface {
	Create(ctx context.Context, venue *domain.Venue) (*domain.Venue, error)
}

// AssetStore интерфейс внешнего хранилища файлов изображений
type AssetStore interface {
	Upload(ctx context.Context, data []byte, subfolder string) (*cloudinary.UploadResult, error)
	Destroy(ctx context.Context, publicID string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
