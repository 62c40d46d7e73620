package check_availability

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/venuebook/VB-BookingService/internal/domain"
)

// Usecase сценарий проверки доступности слота.
// Слот доступен, когда у площадки нет активных (pending/accepted) бронирований
// на эту дату и время. Ошибка валидации и занятый слот - разные ответы:
// первый это некорректный запрос, второй корректный отрицательный результат.
type Usecase struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewUsecase создает новый экземпляр сценария
func NewUsecase(bookingRepo BookingRepository, logger Logger) *Usecase {
	return &Usecase{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// Execute проверяет доступность слота площадки
func (u *Usecase) Execute(ctx context.Context, req *CheckAvailabilityRequest) (*CheckAvailabilityResponse, error) {
	u.logger.Info("CheckAvailability: venue=%s date=%s slot=%s", req.VenueID, req.Date, req.TimeSlot)

	if _, err := uuid.Parse(req.VenueID); err != nil {
		return nil, fmt.Errorf("%w: venueId must be a valid uuid", ErrValidation)
	}

	eventDate, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: date must be in YYYY-MM-DD format", ErrValidation)
	}

	slot := domain.TimeSlot(req.TimeSlot)
	if !slot.IsValid() {
		return nil, fmt.Errorf("%w: timeSlot must be noon or evening", ErrValidation)
	}

	active, err := u.bookingRepo.CountActiveBySlot(ctx, req.VenueID, eventDate, slot)
	if err != nil {
		u.logger.Error("CheckAvailability: repository error for venue=%s: %v", req.VenueID, err)
		return nil, fmt.Errorf("%w: Execute - count active bookings: %v", ErrInternal, err)
	}

	available := active == 0
	u.logger.Info("CheckAvailability: venue=%s date=%s slot=%s available=%t",
		req.VenueID, req.Date, req.TimeSlot, available)

	return &CheckAvailabilityResponse{
		VenueID:   req.VenueID,
		Date:      req.Date,
		TimeSlot:  req.TimeSlot,
		Available: available,
	}, nil
}
