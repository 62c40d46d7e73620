package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/venuebook/VB-BookingService/internal/domain"
	bookingRepo "github.com/venuebook/VB-BookingService/internal/infra/storage/booking"
	venueRepo "github.com/venuebook/VB-BookingService/internal/infra/storage/venue"
	bookingModels "github.com/venuebook/VB-BookingService/internal/service/bookings/models"
)

// receiptSubfolder папка чеков во внешнем хранилище
const receiptSubfolder = "receipts"

// Usecase сценарий создания бронирования
type Usecase struct {
	bookingRepo BookingRepository
	venueRepo   VenueRepository
	assetStore  AssetStore
	txManager   TxManager
	logger      Logger
}

// NewUsecase создает новый экземпляр сценария
func NewUsecase(
	bookingRepo BookingRepository,
	venueRepo VenueRepository,
	assetStore AssetStore,
	txManager TxManager,
	logger Logger,
) *Usecase {
	return &Usecase{
		bookingRepo: bookingRepo,
		venueRepo:   venueRepo,
		assetStore:  assetStore,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute создает бронирование в статусе pending.
//
// Порядок шагов фиксирован: валидация -> чтение площадки -> пересчет суммы ->
// загрузка чека -> сериализуемая транзакция (повторная проверка слота + вставка).
// Если транзакция не удалась после загрузки чека, загруженный файл удаляется
// компенсирующим запросом.
func (u *Usecase) Execute(ctx context.Context, req *CreateBookingRequest) (*bookingModels.BookingResponse, error) {
	u.logger.Info("CreateBooking: customer=%s venue=%s date=%s slot=%s",
		req.CustomerID, req.VenueID, req.Date, req.TimeSlot)

	input, err := validate(req)
	if err != nil {
		u.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	venue, err := u.venueRepo.GetByID(ctx, req.VenueID)
	if err != nil {
		if errors.Is(err, venueRepo.ErrVenueNotFound) {
			u.logger.Warn("CreateBooking: venue %s not found", req.VenueID)
			return nil, ErrVenueNotFound
		}
		u.logger.Error("CreateBooking: failed to load venue %s: %v", req.VenueID, err)
		return nil, fmt.Errorf("%w: Execute - load venue: %v", ErrInternal, err)
	}

	// Сумма клиента - подсказка для UI; платежная сумма считается по ценам сервера
	totalAmount := venue.PricePerDay
	for _, c := range input.Customizations {
		totalAmount += c.Price
	}

	booking := &domain.Booking{
		VenueID:        venue.ID,
		OwnerID:        venue.OwnerID,
		CustomerID:     req.CustomerID,
		CustomerName:   req.CustomerName,
		EventDate:      input.EventDate,
		TimeSlot:       input.TimeSlot,
		Guests:         req.Guests,
		Customizations: input.Customizations,
		TotalAmount:    totalAmount,
		Status:         domain.StatusPending,
	}

	if len(req.Receipt) > 0 {
		uploaded, err := u.assetStore.Upload(ctx, req.Receipt, receiptSubfolder)
		if err != nil {
			u.logger.Error("CreateBooking: receipt upload failed: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrReceiptUpload, err)
		}
		booking.Receipt = &domain.PaymentReceipt{
			URL:        uploaded.URL,
			PublicID:   uploaded.PublicID,
			UploadedAt: time.Now(),
		}
		u.logger.Info("CreateBooking: receipt uploaded, publicId=%s", uploaded.PublicID)
	}

	var created *domain.Booking
	err = u.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		active, err := u.bookingRepo.CountActiveBySlot(txCtx, booking.VenueID, booking.EventDate, booking.TimeSlot)
		if err != nil {
			return fmt.Errorf("%w: Execute - count active bookings: %w", ErrInternal, err)
		}
		if active > 0 {
			return ErrSlotNotAvailable
		}

		created, err = u.bookingRepo.Create(txCtx, booking)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrSlotTaken) {
				return ErrSlotNotAvailable
			}
			return fmt.Errorf("%w: Execute - insert booking: %w", ErrInternal, err)
		}
		return nil
	})

	if err != nil {
		u.compensateReceipt(ctx, booking)
		if errors.Is(err, ErrSlotNotAvailable) {
			u.logger.Warn("CreateBooking: slot taken, venue=%s date=%s slot=%s",
				booking.VenueID, req.Date, req.TimeSlot)
			return nil, ErrSlotNotAvailable
		}
		u.logger.Error("CreateBooking: transaction failed: %v", err)
		if errors.Is(err, ErrInternal) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: Execute - transaction: %v", ErrInternal, err)
	}

	u.logger.Info("CreateBooking: successfully created booking id=%s", created.ID)
	return bookingModels.FromDomainBooking(created), nil
}

// compensateReceipt удаляет загруженный чек, если запись не была создана.
// Ошибка удаления только логируется, исходная ошибка транзакции важнее.
func (u *Usecase) compensateReceipt(ctx context.Context, booking *domain.Booking) {
	if booking.Receipt == nil {
		return
	}

	if err := u.assetStore.Destroy(ctx, booking.Receipt.PublicID); err != nil {
		u.logger.Error("CreateBooking: failed to destroy orphaned receipt %s: %v",
			booking.Receipt.PublicID, err)
		return
	}
	u.logger.Info("CreateBooking: destroyed orphaned receipt %s", booking.Receipt.PublicID)
}
