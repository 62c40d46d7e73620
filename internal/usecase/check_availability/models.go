package check_availability

// CheckAvailabilityRequest параметры проверки доступности слота
type CheckAvailabilityRequest struct {
	VenueID  string
	Date     string // "2025-12-01"
	TimeSlot string
}

// CheckAvailabilityResponse ответ проверки доступности
type CheckAvailabilityResponse struct {
	VenueID   string `json:"venueId"`
	Date      string `json:"date"`
	TimeSlot  string `json:"timeSlot"`
	Available bool   `json:"available"`
}
