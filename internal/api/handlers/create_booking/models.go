package create_booking

import (
	"io"
	"net/http"
	"strconv"

	bookingModels "github.com/venuebook/VB-BookingService/internal/service/bookings/models"
	createBooking "github.com/venuebook/VB-BookingService/internal/usecase/create_booking"
)

// maxMultipartMemory лимит буферизации multipart-формы в памяти
const maxMultipartMemory = 10 << 20 // 10 MB

// createBookingResponse ответ с конвертом success
type createBookingResponse struct {
	Success bool `json:"success"`
	*bookingModels.BookingResponse
}

// parseMultipartRequest собирает модель use case из multipart-формы.
// Поля формы: venueId, customer, date, timeSlot, guests, totalAmount,
// customizations (JSON строка), файл paymentReceipt (опционально).
func parseMultipartRequest(r *http.Request, customerID string) (*createBooking.CreateBookingRequest, error) {
	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		return nil, err
	}

	req := &createBooking.CreateBookingRequest{
		VenueID:           r.FormValue("venueId"),
		CustomerID:        customerID,
		CustomerName:      r.FormValue("customer"),
		Date:              r.FormValue("date"),
		TimeSlot:          r.FormValue("timeSlot"),
		CustomizationsRaw: r.FormValue("customizations"),
	}

	// Числовые поля приходят строками; ошибки парсинга оставляем нулями,
	// валидация use case вернет осмысленное сообщение по полю
	if guests := r.FormValue("guests"); guests != "" {
		req.Guests, _ = strconv.Atoi(guests)
	}
	if total := r.FormValue("totalAmount"); total != "" {
		req.TotalAmount, _ = strconv.ParseFloat(total, 64)
	}

	file, _, err := r.FormFile("paymentReceipt")
	if err == nil {
		defer file.Close()
		data, err := io.ReadAll(file)
		if err != nil {
			return nil, err
		}
		req.Receipt = data
	} else if err != http.ErrMissingFile {
		return nil, err
	}

	return req, nil
}
