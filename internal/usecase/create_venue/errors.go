package create_venue

import "errors"

var (
	// ErrValidation возвращается при некорректных данных площадки
	ErrValidation = errors.New("invalid venue data")

	// ErrImageUpload возвращается при ошибке загрузки изображения
	ErrImageUpload = errors.New("failed to upload venue image")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("usecase: internal error")
)
