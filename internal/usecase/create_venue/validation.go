package create_venue

import (
	"fmt"
	"strings"

	"github.com/venuebook/VB-BookingService/internal/domain"
)

func validate(req *CreateVenueRequest) error {
	var problems []string

	if len(strings.TrimSpace(req.Name)) < domain.MinVenueNameLength {
		problems = append(problems, fmt.Sprintf("name must be at least %d characters", domain.MinVenueNameLength))
	}
	if len(strings.TrimSpace(req.Description)) < domain.MinVenueDescriptionLength {
		problems = append(problems, fmt.Sprintf("description must be at least %d characters", domain.MinVenueDescriptionLength))
	}
	if strings.TrimSpace(req.Address) == "" {
		problems = append(problems, "address is required")
	}
	if strings.TrimSpace(req.City) == "" {
		problems = append(problems, "city is required")
	}
	if req.Capacity < 1 {
		problems = append(problems, "capacity must be at least 1")
	}
	if req.PricePerDay < 0 {
		problems = append(problems, "pricePerDay must be non-negative")
	}
	if len(req.Images) > domain.MaxVenueImages {
		problems = append(problems, fmt.Sprintf("at most %d images allowed", domain.MaxVenueImages))
	}

	for _, amenity := range req.Amenities {
		if !domain.IsAllowedAmenity(amenity) {
			problems = append(problems, fmt.Sprintf("unknown amenity %q", amenity))
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrValidation, strings.Join(problems, "; "))
	}
	return nil
}
