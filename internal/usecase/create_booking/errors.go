package create_booking

import "errors"

var (
	// ErrValidation возвращается при некорректных данных запроса
	ErrValidation = errors.New("invalid booking data")

	// ErrVenueNotFound возвращается, когда площадка не найдена
	ErrVenueNotFound = errors.New("venue not found")

	// ErrSlotNotAvailable возвращается, когда слот уже занят активным бронированием
	ErrSlotNotAvailable = errors.New("slot is not available")

	// ErrReceiptUpload возвращается при ошибке загрузки чека во внешнее хранилище
	ErrReceiptUpload = errors.New("failed to upload payment receipt")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("usecase: internal error")
)
