package delete_venue

import (
	"context"
	"errors"
	"fmt"

	"github.com/venuebook/VB-BookingService/internal/domain"
	venueRepo "github.com/venuebook/VB-BookingService/internal/infra/storage/venue"
)

// Usecase сценарий каскадного удаления площадки.
// Записи (бронирования и сама площадка) удаляются в одной транзакции;
// файлы во внешнем хранилище удаляются после коммита по принципу best-effort.
type Usecase struct {
	venueRepo   VenueRepository
	bookingRepo BookingRepository
	assetStore  AssetStore
	txManager   TxManager
	logger      Logger
}

// NewUsecase создает новый экземпляр сценария
func NewUsecase(
	venueRepo VenueRepository,
	bookingRepo BookingRepository,
	assetStore AssetStore,
	txManager TxManager,
	logger Logger,
) *Usecase {
	return &Usecase{
		venueRepo:   venueRepo,
		bookingRepo: bookingRepo,
		assetStore:  assetStore,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute удаляет площадку вместе со всеми её бронированиями
func (u *Usecase) Execute(ctx context.Context, req *DeleteVenueRequest) (*DeleteVenueResponse, error) {
	u.logger.Info("DeleteVenue: venue=%s owner=%s", req.VenueID, req.OwnerID)

	venue, err := u.venueRepo.GetByID(ctx, req.VenueID)
	if err != nil {
		if errors.Is(err, venueRepo.ErrVenueNotFound) {
			u.logger.Warn("DeleteVenue: venue %s not found", req.VenueID)
			return nil, ErrVenueNotFound
		}
		u.logger.Error("DeleteVenue: failed to load venue %s: %v", req.VenueID, err)
		return nil, fmt.Errorf("%w: Execute - load venue: %v", ErrInternal, err)
	}

	if venue.OwnerID != req.OwnerID {
		u.logger.Warn("DeleteVenue: venue %s belongs to %s, not %s", req.VenueID, venue.OwnerID, req.OwnerID)
		return nil, ErrNotOwner
	}

	// Идентификаторы чеков снимаем до удаления записей
	receiptIDs, err := u.bookingRepo.ReceiptPublicIDsByVenueID(ctx, req.VenueID)
	if err != nil {
		u.logger.Error("DeleteVenue: failed to collect receipt ids for venue %s: %v", req.VenueID, err)
		return nil, fmt.Errorf("%w: Execute - collect receipt ids: %v", ErrInternal, err)
	}

	var deletedBookings int64
	err = u.txManager.Do(ctx, func(txCtx context.Context) error {
		deletedBookings, err = u.bookingRepo.DeleteByVenueID(txCtx, req.VenueID)
		if err != nil {
			return fmt.Errorf("%w: Execute - delete bookings: %v", ErrInternal, err)
		}

		if err := u.venueRepo.Delete(txCtx, req.VenueID); err != nil {
			return fmt.Errorf("%w: Execute - delete venue: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		u.logger.Error("DeleteVenue: transaction failed for venue %s: %v", req.VenueID, err)
		if errors.Is(err, ErrInternal) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: Execute - transaction: %v", ErrInternal, err)
	}

	u.cleanupAssets(ctx, venue, receiptIDs)

	u.logger.Info("DeleteVenue: successfully deleted venue %s with %d bookings", req.VenueID, deletedBookings)
	return &DeleteVenueResponse{DeletedBookings: deletedBookings}, nil
}

// cleanupAssets удаляет чеки бронирований и изображения площадки.
// Ошибки удаления логируются и не влияют на результат.
func (u *Usecase) cleanupAssets(ctx context.Context, venue *domain.Venue, receiptIDs []string) {
	for _, publicID := range receiptIDs {
		u.destroyAsset(ctx, "receipt", publicID)
	}
	for _, img := range venue.Images {
		u.destroyAsset(ctx, "image", img.PublicID)
	}
}

func (u *Usecase) destroyAsset(ctx context.Context, kind, publicID string) {
	if err := u.assetStore.Destroy(ctx, publicID); err != nil {
		u.logger.Error("DeleteVenue: failed to destroy %s %s: %v", kind, publicID, err)
		return
	}
	u.logger.Info("DeleteVenue: destroyed %s %s", kind, publicID)
}
