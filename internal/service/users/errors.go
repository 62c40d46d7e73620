package users

import "errors"

var (
	// ErrValidation возвращается при некорректных данных регистрации
	ErrValidation = errors.New("invalid registration data")

	// ErrEmailTaken возвращается при попытке зарегистрировать занятый email
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials возвращается при неверном email или пароле.
	// Ошибка одна для обоих случаев, чтобы не раскрывать существование аккаунта.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrUserNotFound возвращается, когда пользователь не найден
	ErrUserNotFound = errors.New("user not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
