package create_venue

import (
	"context"
	"fmt"
	"strings"

	"github.com/venuebook/VB-BookingService/internal/domain"
	venueModels "github.com/venuebook/VB-BookingService/internal/service/venues/models"
)

// imageSubfolder папка изображений площадок во внешнем хранилище
const imageSubfolder = "venues"

// Usecase сценарий создания площадки
type Usecase struct {
	venueRepo  VenueRepository
	assetStore AssetStore
	logger     Logger
}

// NewUsecase создает новый экземпляр сценария
func NewUsecase(venueRepo VenueRepository, assetStore AssetStore, logger Logger) *Usecase {
	return &Usecase{
		venueRepo:  venueRepo,
		assetStore: assetStore,
		logger:     logger,
	}
}

// Execute создает площадку. Изображения загружаются до вставки записи;
// если вставка не удалась, загруженные файлы удаляются компенсирующими
// запросами (ошибки удаления только логируются).
func (u *Usecase) Execute(ctx context.Context, req *CreateVenueRequest) (*venueModels.VenueResponse, error) {
	u.logger.Info("CreateVenue: owner=%s name=%q city=%q", req.OwnerID, req.Name, req.City)

	if err := validate(req); err != nil {
		u.logger.Warn("CreateVenue: validation failed: %v", err)
		return nil, err
	}

	images, err := u.uploadImages(ctx, req.Images)
	if err != nil {
		return nil, err
	}

	venue := &domain.Venue{
		OwnerID:     req.OwnerID,
		Name:        strings.TrimSpace(req.Name),
		Description: strings.TrimSpace(req.Description),
		Address:     strings.TrimSpace(req.Address),
		City:        strings.TrimSpace(req.City),
		Capacity:    req.Capacity,
		PricePerDay: req.PricePerDay,
		Images:      images,
		Amenities:   req.Amenities,
	}

	created, err := u.venueRepo.Create(ctx, venue)
	if err != nil {
		u.compensateImages(ctx, images)
		u.logger.Error("CreateVenue: insert failed for owner=%s: %v", req.OwnerID, err)
		return nil, fmt.Errorf("%w: Execute - insert venue: %v", ErrInternal, err)
	}

	u.logger.Info("CreateVenue: successfully created venue id=%s", created.ID)
	return venueModels.FromDomainVenue(created), nil
}

// uploadImages загружает изображения по порядку; первый файл помечается primary.
// При ошибке на любом файле уже загруженные удаляются.
func (u *Usecase) uploadImages(ctx context.Context, files [][]byte) ([]domain.VenueImage, error) {
	images := make([]domain.VenueImage, 0, len(files))

	for i, data := range files {
		uploaded, err := u.assetStore.Upload(ctx, data, imageSubfolder)
		if err != nil {
			u.logger.Error("CreateVenue: image %d upload failed: %v", i, err)
			u.compensateImages(ctx, images)
			return nil, fmt.Errorf("%w: %v", ErrImageUpload, err)
		}
		images = append(images, domain.VenueImage{
			URL:       uploaded.URL,
			PublicID:  uploaded.PublicID,
			IsPrimary: i == 0,
		})
	}

	return images, nil
}

func (u *Usecase) compensateImages(ctx context.Context, images []domain.VenueImage) {
	for _, img := range images {
		if err := u.assetStore.Destroy(ctx, img.PublicID); err != nil {
			u.logger.Error("CreateVenue: failed to destroy orphaned image %s: %v", img.PublicID, err)
			continue
		}
		u.logger.Info("CreateVenue: destroyed orphaned image %s", img.PublicID)
	}
}
