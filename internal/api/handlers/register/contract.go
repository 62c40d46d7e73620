package register

import (
	"context"

	userModels "github.com/venuebook/VB-BookingService/internal/service/users/models"
)

// UserService интерфейс сервиса пользователей
type UserService interface {
	Register(ctx context.Context, req *userModels.RegisterRequest) (*userModels.AuthResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
