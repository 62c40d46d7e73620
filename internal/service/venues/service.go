package venues

import (
	"context"
	"errors"
	"fmt"

	venueRepo "github.com/venuebook/VB-BookingService/internal/infra/storage/venue"
	"github.com/venuebook/VB-BookingService/internal/service/venues/models"
)

// Service сервис каталога площадок
type Service struct {
	venueRepo VenueRepository
	userRepo  UserRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса площадок
func NewService(
	venueRepo VenueRepository,
	userRepo UserRepository,
	logger Logger,
) *Service {
	return &Service{
		venueRepo: venueRepo,
		userRepo:  userRepo,
		logger:    logger,
	}
}

// GetByID получает площадку по id вместе с данными владельца.
// Если владелец не найден, площадка возвращается без блока owner.
func (s *Service) GetByID(ctx context.Context, venueID string) (*models.VenueResponse, error) {
	s.logger.Info("GetByID: fetching venue id=%s", venueID)

	venue, err := s.venueRepo.GetByID(ctx, venueID)
	if err != nil {
		if errors.Is(err, venueRepo.ErrVenueNotFound) {
			s.logger.Warn("GetByID: venue id=%s not found", venueID)
			return nil, ErrVenueNotFound
		}
		s.logger.Error("GetByID: repository error for venue id=%s: %v", venueID, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	resp := models.FromDomainVenue(venue)

	owner, err := s.userRepo.GetByID(ctx, venue.OwnerID)
	if err != nil {
		s.logger.Warn("GetByID: failed to load owner %s for venue id=%s: %v", venue.OwnerID, venueID, err)
	} else {
		resp.Owner = models.OwnerInfoFromUser(owner)
	}

	s.logger.Info("GetByID: successfully fetched venue id=%s", venueID)
	return resp, nil
}

// GetByCity получает площадки города, сортировка от новых к старым
func (s *Service) GetByCity(ctx context.Context, city string) (*models.VenueListResponse, error) {
	s.logger.Info("GetByCity: fetching venues for city=%q", city)

	venuesList, err := s.venueRepo.GetByCity(ctx, city)
	if err != nil {
		s.logger.Error("GetByCity: repository error for city=%q: %v", city, err)
		return nil, fmt.Errorf("%w: GetByCity - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByCity: successfully fetched %d venues for city=%q", len(venuesList), city)
	return models.FromDomainVenueList(venuesList), nil
}

// GetByOwner получает площадки владельца, сортировка от новых к старым
func (s *Service) GetByOwner(ctx context.Context, ownerID string) (*models.VenueListResponse, error) {
	s.logger.Info("GetByOwner: fetching venues for owner=%s", ownerID)

	venuesList, err := s.venueRepo.GetByOwnerID(ctx, ownerID)
	if err != nil {
		s.logger.Error("GetByOwner: repository error for owner=%s: %v", ownerID, err)
		return nil, fmt.Errorf("%w: GetByOwner - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByOwner: successfully fetched %d venues for owner=%s", len(venuesList), ownerID)
	return models.FromDomainVenueList(venuesList), nil
}
