package delete_venue

import "errors"

var (
	// ErrVenueNotFound возвращается, когда площадка не найдена
	ErrVenueNotFound = errors.New("venue not found")

	// ErrNotOwner возвращается, когда площадка принадлежит другому владельцу
	ErrNotOwner = errors.New("venue belongs to another owner")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("usecase: internal error")
)
