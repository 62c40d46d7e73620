package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking not found")

	// ErrCannotAccept возвращается, когда переход в accepted запрещен жизненным циклом
	ErrCannotAccept = errors.New("booking cannot be accepted")

	// ErrCannotCancel возвращается, когда переход в canceled запрещен жизненным циклом
	ErrCannotCancel = errors.New("booking cannot be cancelled")

	// ErrReasonTooLong возвращается, когда причина отмены превышает допустимую длину
	ErrReasonTooLong = errors.New("cancellation reason too long")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
