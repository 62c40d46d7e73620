package check_availability

import "errors"

var (
	// ErrValidation возвращается при некорректных параметрах запроса
	ErrValidation = errors.New("invalid availability query")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("usecase: internal error")
)
