package domain

// Business validation constants
const (
	MinGuests = 1
	MaxGuests = 500

	MaxCustomizations           = 20
	MaxCancellationReasonLength = 500

	MinVenueNameLength        = 3
	MinVenueDescriptionLength = 10
	MaxVenueImages            = 10

	MinPasswordLength = 6
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ActiveStatuses are the statuses under which a booking holds its slot
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusAccepted,
}

// AllowedAmenities is the closed catalog of venue amenities
var AllowedAmenities = []string{
	"Parking",
	"Wi-Fi",
	"Air Conditioning",
	"Catering",
	"Stage",
	"Lighting",
	"Security",
	"Sound System",
	"Restrooms",
	"Generator Backup",
}

// IsAllowedAmenity returns true if the amenity is part of the catalog
func IsAllowedAmenity(a string) bool {
	for _, allowed := range AllowedAmenities {
		if a == allowed {
			return true
		}
	}
	return false
}
