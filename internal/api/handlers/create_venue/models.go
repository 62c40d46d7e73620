package create_venue

import (
	"io"
	"net/http"
	"strconv"

	venueModels "github.com/venuebook/VB-BookingService/internal/service/venues/models"
	createVenue "github.com/venuebook/VB-BookingService/internal/usecase/create_venue"
)

// maxMultipartMemory лимит буферизации multipart-формы в памяти
const maxMultipartMemory = 32 << 20 // 32 MB

// createVenueResponse ответ с конвертом success
type createVenueResponse struct {
	Success bool `json:"success"`
	*venueModels.VenueResponse
}

// parseMultipartRequest собирает модель use case из multipart-формы.
// Поля формы: name, description, address, city, capacity, pricePerDay,
// amenities (повторяющееся поле), файлы images (до 10).
func parseMultipartRequest(r *http.Request, ownerID string) (*createVenue.CreateVenueRequest, error) {
	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		return nil, err
	}

	req := &createVenue.CreateVenueRequest{
		OwnerID:     ownerID,
		Name:        r.FormValue("name"),
		Description: r.FormValue("description"),
		Address:     r.FormValue("address"),
		City:        r.FormValue("city"),
		Amenities:   r.MultipartForm.Value["amenities"],
	}

	if capacity := r.FormValue("capacity"); capacity != "" {
		req.Capacity, _ = strconv.Atoi(capacity)
	}
	if price := r.FormValue("pricePerDay"); price != "" {
		req.PricePerDay, _ = strconv.ParseFloat(price, 64)
	}

	for _, header := range r.MultipartForm.File["images"] {
		file, err := header.Open()
		if err != nil {
			return nil, err
		}
		data, err := io.ReadAll(file)
		file.Close()
		if err != nil {
			return nil, err
		}
		req.Images = append(req.Images, data)
	}

	return req, nil
}
