package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusAccepted  BookingStatus = "accepted"
	StatusCanceled  BookingStatus = "canceled"
	StatusCompleted BookingStatus = "completed"
)

// TimeSlot represents the part of the day an event occupies.
// Closed set: a venue hosts at most one event per slot per date.
type TimeSlot string

const (
	SlotNoon    TimeSlot = "noon"
	SlotEvening TimeSlot = "evening"
)

// IsValid returns true if the time slot is one of the known values
func (s TimeSlot) IsValid() bool {
	return s == SlotNoon || s == SlotEvening
}

// Customization is a flexible line item attached to a booking
type Customization struct {
	Type  string  `json:"type"`
	Value string  `json:"value"`
	Price float64 `json:"price"`
}

// PaymentReceipt is an uploaded proof-of-payment image stored externally.
// All three fields are present together or the receipt is absent entirely.
type PaymentReceipt struct {
	URL        string
	PublicID   string
	UploadedAt time.Time
}

// Booking represents a venue booking in the system
type Booking struct {
	ID         string
	VenueID    string
	OwnerID    string
	CustomerID string

	// Denormalized customer display name captured at creation time
	CustomerName string

	EventDate time.Time
	TimeSlot  TimeSlot
	Guests    int

	Customizations []Customization
	TotalAmount    float64

	Receipt *PaymentReceipt

	Status             BookingStatus
	CancellationReason *string
	AcceptedAt         *time.Time
	CanceledAt         *time.Time
	CompletedAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// transitions is the explicit state machine of the booking lifecycle.
// Any transition not listed here is rejected.
var transitions = map[BookingStatus][]BookingStatus{
	StatusPending:  {StatusAccepted, StatusCanceled},
	StatusAccepted: {StatusCanceled},
}

// CanTransition reports whether a status change is allowed by the lifecycle
func CanTransition(from, to BookingStatus) bool {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// IsActive returns true if the booking holds its slot
func (b *Booking) IsActive() bool {
	return b.Status == StatusPending || b.Status == StatusAccepted
}

// IsTerminal returns true if the booking reached a final state
func (b *Booking) IsTerminal() bool {
	return b.Status == StatusCanceled || b.Status == StatusCompleted
}

// CanBeAccepted returns true if the booking may transition to accepted
func (b *Booking) CanBeAccepted() bool {
	return CanTransition(b.Status, StatusAccepted)
}

// CanBeCanceled returns true if the booking may transition to canceled
func (b *Booking) CanBeCanceled() bool {
	return CanTransition(b.Status, StatusCanceled)
}

// HasReceipt returns true if a payment receipt is attached
func (b *Booking) HasReceipt() bool {
	return b.Receipt != nil && b.Receipt.PublicID != ""
}
