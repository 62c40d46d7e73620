package models

import (
	"time"

	"github.com/venuebook/VB-BookingService/internal/domain"
)

// OwnerInfo отображаемые данные владельца площадки
type OwnerInfo struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

// VenueResponse ответ с данными площадки
type VenueResponse struct {
	ID          string  `json:"id"`
	OwnerID     string  `json:"ownerId"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Address     string  `json:"address"`
	City        string  `json:"city"`
	Capacity    int     `json:"capacity"`
	PricePerDay float64 `json:"pricePerDay"`

	Images    []domain.VenueImage `json:"images"`
	Amenities []string            `json:"amenities"`

	// Owner заполняется только в ответе по id
	Owner *OwnerInfo `json:"owner,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// VenueListResponse ответ со списком площадок
type VenueListResponse struct {
	Venues []VenueResponse `json:"venues"`
}

// FromDomainVenue конвертирует domain модель в DTO
func FromDomainVenue(v *domain.Venue) *VenueResponse {
	if v == nil {
		return nil
	}

	images := v.Images
	if images == nil {
		images = []domain.VenueImage{}
	}
	amenities := v.Amenities
	if amenities == nil {
		amenities = []string{}
	}

	return &VenueResponse{
		ID:          v.ID,
		OwnerID:     v.OwnerID,
		Name:        v.Name,
		Description: v.Description,
		Address:     v.Address,
		City:        v.City,
		Capacity:    v.Capacity,
		PricePerDay: v.PricePerDay,
		Images:      images,
		Amenities:   amenities,
		CreatedAt:   v.CreatedAt,
		UpdatedAt:   v.UpdatedAt,
	}
}

// FromDomainVenueList конвертирует список domain моделей в DTO
func FromDomainVenueList(venuesList []*domain.Venue) *VenueListResponse {
	resp := &VenueListResponse{
		Venues: make([]VenueResponse, 0, len(venuesList)),
	}

	for _, venue := range venuesList {
		if venueResp := FromDomainVenue(venue); venueResp != nil {
			resp.Venues = append(resp.Venues, *venueResp)
		}
	}

	return resp
}

// OwnerInfoFromUser конвертирует пользователя в отображаемые данные владельца
func OwnerInfoFromUser(u *domain.User) *OwnerInfo {
	if u == nil {
		return nil
	}

	return &OwnerInfo{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Phone: u.Phone,
	}
}
