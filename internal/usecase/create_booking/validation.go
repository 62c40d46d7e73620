package create_booking

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/venuebook/VB-BookingService/internal/domain"
)

// validatedInput результат валидации запроса с распарсенными полями
type validatedInput struct {
	EventDate      time.Time
	TimeSlot       domain.TimeSlot
	Customizations []domain.Customization
}

// validate проверяет запрос и возвращает распарсенные поля.
// Все найденные ошибки собираются в одно сообщение с именами полей.
func validate(req *CreateBookingRequest) (*validatedInput, error) {
	var fieldErrs []FieldError

	addErr := func(field, message string) {
		fieldErrs = append(fieldErrs, FieldError{Field: field, Message: message})
	}

	if strings.TrimSpace(req.VenueID) == "" {
		addErr("venueId", "is required")
	}
	if strings.TrimSpace(req.CustomerID) == "" {
		addErr("customerId", "is required")
	}
	if strings.TrimSpace(req.CustomerName) == "" {
		addErr("customer", "is required")
	}

	out := &validatedInput{}

	if strings.TrimSpace(req.Date) == "" {
		addErr("date", "is required")
	} else {
		eventDate, err := time.Parse(domain.DateFormat, req.Date)
		if err != nil {
			addErr("date", "must be in YYYY-MM-DD format")
		} else {
			out.EventDate = eventDate
		}
	}

	out.TimeSlot = domain.TimeSlot(req.TimeSlot)
	if !out.TimeSlot.IsValid() {
		addErr("timeSlot", "must be noon or evening")
	}

	if req.Guests < domain.MinGuests || req.Guests > domain.MaxGuests {
		addErr("guests", fmt.Sprintf("must be between %d and %d", domain.MinGuests, domain.MaxGuests))
	}

	customizations, err := parseCustomizations(req)
	if err != nil {
		addErr("customizations", err.Error())
	} else {
		out.Customizations = customizations
	}

	if len(fieldErrs) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrValidation, formatFieldErrors(fieldErrs))
	}
	return out, nil
}

// parseCustomizations принимает позиции либо нативным списком, либо
// сериализованной JSON строкой из multipart-формы
func parseCustomizations(req *CreateBookingRequest) ([]domain.Customization, error) {
	customizations := req.Customizations

	if customizations == nil && strings.TrimSpace(req.CustomizationsRaw) != "" {
		if err := json.Unmarshal([]byte(req.CustomizationsRaw), &customizations); err != nil {
			return nil, fmt.Errorf("malformed customizations payload")
		}
	}

	if len(customizations) > domain.MaxCustomizations {
		return nil, fmt.Errorf("at most %d entries allowed", domain.MaxCustomizations)
	}

	for i, c := range customizations {
		if strings.TrimSpace(c.Type) == "" {
			return nil, fmt.Errorf("entry %d: type is required", i)
		}
		if c.Price < 0 {
			return nil, fmt.Errorf("entry %d: price must be non-negative", i)
		}
	}

	return customizations, nil
}

func formatFieldErrors(fieldErrs []FieldError) string {
	parts := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		parts = append(parts, fmt.Sprintf("%s %s", fe.Field, fe.Message))
	}
	return strings.Join(parts, "; ")
}
