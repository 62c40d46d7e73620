package check_availability

import (
	"context"

	checkAvailability "github.com/venuebook/VB-BookingService/internal/usecase/check_availability"
)

// CheckAvailabilityUseCase интерфейс сценария проверки доступности
type CheckAvailabilityUseCase interface {
	Execute(ctx context.Context, req *checkAvailability.CheckAvailabilityRequest) (*checkAvailability.CheckAvailabilityResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
