package get_profile

import (
	"context"

	userModels "github.com/venuebook/VB-BookingService/internal/service/users/models"
)

// UserService интерфейс сервиса пользователей
type UserService interface {
	GetMe(ctx context.Context, userID string) (*userModels.UserResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
