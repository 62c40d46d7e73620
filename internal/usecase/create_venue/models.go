package create_venue

// CreateVenueRequest запрос на создание площадки.
// OwnerID берется из токена, не из тела запроса.
type CreateVenueRequest struct {
	OwnerID     string
	Name        string
	Description string
	Address     string
	City        string
	Capacity    int
	PricePerDay float64
	Amenities   []string

	// Images содержимое загружаемых файлов; первый становится primary
	Images [][]byte
}
