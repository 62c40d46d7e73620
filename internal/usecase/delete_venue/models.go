package delete_venue

// DeleteVenueRequest запрос на удаление площадки
type DeleteVenueRequest struct {
	VenueID string
	// OwnerID id владельца из токена; должен совпадать с владельцем площадки
	OwnerID string
}

// DeleteVenueResponse результат каскадного удаления
type DeleteVenueResponse struct {
	DeletedBookings int64 `json:"deletedBookings"`
}
