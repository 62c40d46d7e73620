package create_booking

import (
	"github.com/venuebook/VB-BookingService/internal/domain"
)

// CreateBookingRequest запрос на создание бронирования.
// CustomerID берется из токена, не из тела запроса.
type CreateBookingRequest struct {
	VenueID      string
	CustomerID   string
	CustomerName string
	Date         string // "2025-12-01"
	TimeSlot     string
	Guests       int

	// Customizations нативный список позиций
	Customizations []domain.Customization
	// CustomizationsRaw сериализованный JSON список; используется, когда
	// клиент передает позиции строкой в multipart-форме
	CustomizationsRaw string

	// TotalAmount подсказка клиента; итоговая сумма пересчитывается по ценам сервера
	TotalAmount float64

	// Receipt содержимое файла чека, nil если чек не прикреплен
	Receipt []byte
}

// FieldError ошибка валидации конкретного поля
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
