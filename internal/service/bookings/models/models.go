package models

import (
	"time"

	"github.com/venuebook/VB-BookingService/internal/domain"
)

// Request модели

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	// Reason причина отмены; если не указана, подставляется
	// "Canceled by <actor>" в зависимости от роли инициатора
	Reason *string
	// ActorRole роль инициатора отмены (customer или owner)
	ActorRole domain.Role
}

// Response модели

// ReceiptResponse чек об оплате в ответе API.
// Все три поля заполнены одновременно или одновременно null.
type ReceiptResponse struct {
	URL        *string `json:"url"`
	PublicID   *string `json:"publicId"`
	UploadedAt *string `json:"uploadedAt"` // ISO 8601
}

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID           string  `json:"id"`
	VenueID      string  `json:"venueId"`
	OwnerID      string  `json:"ownerId"`
	CustomerID   string  `json:"customerId"`
	CustomerName string  `json:"customer"`
	Date         string  `json:"date"` // "2025-12-01"
	TimeSlot     string  `json:"timeSlot"`
	Guests       int     `json:"guests"`
	TotalAmount  float64 `json:"totalAmount"`

	Customizations []domain.Customization `json:"customizations"`
	PaymentReceipt ReceiptResponse        `json:"paymentReceipt"`

	Status             string  `json:"status"`
	CancellationReason *string `json:"cancellationReason,omitempty"`
	AcceptedAt         *string `json:"acceptedAt,omitempty"`  // ISO 8601
	CanceledAt         *string `json:"canceledAt,omitempty"`  // ISO 8601
	CompletedAt        *string `json:"completedAt,omitempty"` // ISO 8601

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	customizations := b.Customizations
	if customizations == nil {
		customizations = []domain.Customization{}
	}

	resp := &BookingResponse{
		ID:                 b.ID,
		VenueID:            b.VenueID,
		OwnerID:            b.OwnerID,
		CustomerID:         b.CustomerID,
		CustomerName:       b.CustomerName,
		Date:               b.EventDate.Format(domain.DateFormat),
		TimeSlot:           string(b.TimeSlot),
		Guests:             b.Guests,
		TotalAmount:        b.TotalAmount,
		Customizations:     customizations,
		Status:             string(b.Status),
		CancellationReason: b.CancellationReason,
		AcceptedAt:         timePtrToISO(b.AcceptedAt),
		CanceledAt:         timePtrToISO(b.CanceledAt),
		CompletedAt:        timePtrToISO(b.CompletedAt),
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}

	if b.Receipt != nil {
		uploadedAt := b.Receipt.UploadedAt.Format(time.RFC3339)
		resp.PaymentReceipt = ReceiptResponse{
			URL:        &b.Receipt.URL,
			PublicID:   &b.Receipt.PublicID,
			UploadedAt: &uploadedAt,
		}
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}

func timePtrToISO(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}
