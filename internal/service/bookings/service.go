package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/venuebook/VB-BookingService/internal/domain"
	bookingRepo "github.com/venuebook/VB-BookingService/internal/infra/storage/booking"
	"github.com/venuebook/VB-BookingService/internal/service/bookings/models"
)

// Service сервис для работы с жизненным циклом бронирований
type Service struct {
	bookingRepo BookingRepository
	assetStore  AssetStore
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	assetStore AssetStore,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		assetStore:  assetStore,
		logger:      logger,
	}
}

// GetByOwner получает все бронирования площадок владельца
func (s *Service) GetByOwner(ctx context.Context, ownerID string) (*models.BookingListResponse, error) {
	s.logger.Info("GetByOwner: fetching bookings for owner=%s", ownerID)

	bookings, err := s.bookingRepo.GetByOwnerID(ctx, ownerID)
	if err != nil {
		s.logger.Error("GetByOwner: repository error for owner=%s: %v", ownerID, err)
		return nil, fmt.Errorf("%w: GetByOwner - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByOwner: successfully fetched %d bookings for owner=%s", len(bookings), ownerID)
	return models.FromDomainBookingList(bookings), nil
}

// GetByCustomer получает все бронирования клиента
func (s *Service) GetByCustomer(ctx context.Context, customerID string) (*models.BookingListResponse, error) {
	s.logger.Info("GetByCustomer: fetching bookings for customer=%s", customerID)

	bookings, err := s.bookingRepo.GetByCustomerID(ctx, customerID)
	if err != nil {
		s.logger.Error("GetByCustomer: repository error for customer=%s: %v", customerID, err)
		return nil, fmt.Errorf("%w: GetByCustomer - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByCustomer: successfully fetched %d bookings for customer=%s", len(bookings), customerID)
	return models.FromDomainBookingList(bookings), nil
}

// Accept переводит бронирование в accepted.
// Разрешен только переход pending -> accepted; из терминального состояния
// (canceled/completed) и из accepted переход отклоняется.
func (s *Service) Accept(ctx context.Context, bookingID string) (*models.BookingResponse, error) {
	s.logger.Info("Accept: accepting booking id=%s", bookingID)

	booking, err := s.getBooking(ctx, bookingID, "Accept")
	if err != nil {
		return nil, err
	}

	if !booking.CanBeAccepted() {
		s.logger.Warn("Accept: booking id=%s cannot be accepted, status=%s", bookingID, booking.Status)
		return nil, ErrCannotAccept
	}

	if err := s.bookingRepo.Accept(ctx, bookingID); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Accept: repository error for booking id=%s: %v", bookingID, err)
		return nil, fmt.Errorf("%w: Accept - repository error: %v", ErrInternal, err)
	}

	// Перечитываем, чтобы вернуть проставленную отметку accepted_at
	accepted, err := s.getBooking(ctx, bookingID, "Accept")
	if err != nil {
		return nil, err
	}

	s.logger.Info("Accept: successfully accepted booking id=%s", bookingID)
	return models.FromDomainBooking(accepted), nil
}

// Cancel переводит бронирование в canceled.
// Если к бронированию прикреплен чек, файл удаляется из внешнего хранилища
// по принципу best-effort: неудача удаления логируется и не блокирует отмену.
func (s *Service) Cancel(ctx context.Context, bookingID string, req *models.CancelBookingRequest) (*models.BookingResponse, error) {
	s.logger.Info("Cancel: cancelling booking id=%s by %s", bookingID, req.ActorRole)

	booking, err := s.getBooking(ctx, bookingID, "Cancel")
	if err != nil {
		return nil, err
	}

	if !booking.CanBeCanceled() {
		s.logger.Warn("Cancel: booking id=%s cannot be cancelled, status=%s", bookingID, booking.Status)
		return nil, ErrCannotCancel
	}

	reason := fmt.Sprintf("Canceled by %s", req.ActorRole)
	if req.Reason != nil && *req.Reason != "" {
		reason = *req.Reason
	}
	if len(reason) > domain.MaxCancellationReasonLength {
		return nil, ErrReasonTooLong
	}

	s.cleanupReceipt(ctx, booking)

	if err := s.bookingRepo.Cancel(ctx, bookingID, reason); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%s: %v", bookingID, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	canceled, err := s.getBooking(ctx, bookingID, "Cancel")
	if err != nil {
		return nil, err
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%s, reason=%q", bookingID, reason)
	return models.FromDomainBooking(canceled), nil
}

// Delete удаляет бронирование физически вместе с чеком во внешнем хранилище.
// Удаление чека best-effort, удаление записи обязательно.
func (s *Service) Delete(ctx context.Context, bookingID string) error {
	s.logger.Info("Delete: deleting booking id=%s", bookingID)

	booking, err := s.getBooking(ctx, bookingID, "Delete")
	if err != nil {
		return err
	}

	s.cleanupReceipt(ctx, booking)

	if err := s.bookingRepo.Delete(ctx, bookingID); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		s.logger.Error("Delete: repository error for booking id=%s: %v", bookingID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted booking id=%s", bookingID)
	return nil
}

// Вспомогательные методы

func (s *Service) getBooking(ctx context.Context, bookingID, method string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking id=%s not found", method, bookingID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking id=%s: %v", method, bookingID, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, method, err)
	}
	return booking, nil
}

// cleanupReceipt удаляет чек из внешнего хранилища, если он есть.
// Отсутствие чека - no-op; ошибка удаления логируется и подавляется.
func (s *Service) cleanupReceipt(ctx context.Context, booking *domain.Booking) {
	if !booking.HasReceipt() {
		return
	}

	if err := s.assetStore.Destroy(ctx, booking.Receipt.PublicID); err != nil {
		s.logger.Error("cleanupReceipt: failed to destroy receipt %s for booking id=%s: %v",
			booking.Receipt.PublicID, booking.ID, err)
		return
	}

	s.logger.Info("cleanupReceipt: destroyed receipt %s for booking id=%s",
		booking.Receipt.PublicID, booking.ID)
}
