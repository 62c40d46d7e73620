package login

import (
	"context"

	userModels "github.com/venuebook/VB-BookingService/internal/service/users/models"
)

// UserService интерфейс сервиса пользователей
type UserService interface {
	Login(ctx context.Context, req *userModels.LoginRequest) (*userModels.AuthResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
