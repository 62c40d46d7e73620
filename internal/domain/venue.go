package domain

import "time"

// VenueImage is a stored venue photo referenced by URL and deletion handle
type VenueImage struct {
	URL       string `json:"url"`
	PublicID  string `json:"publicId"`
	IsPrimary bool   `json:"isPrimary"`
}

// Venue represents a bookable space listed by an owner
type Venue struct {
	ID          string
	OwnerID     string
	Name        string
	Description string
	Address     string
	City        string
	Capacity    int
	PricePerDay float64
	Images      []VenueImage
	Amenities   []string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// PrimaryImage returns the primary image, or the first one if none is marked
func (v *Venue) PrimaryImage() *VenueImage {
	for i := range v.Images {
		if v.Images[i].IsPrimary {
			return &v.Images[i]
		}
	}
	if len(v.Images) > 0 {
		return &v.Images[0]
	}
	return nil
}
