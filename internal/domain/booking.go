package domain

import "time"

type BookingStatus string

const (
	BookingStatusInquiry   BookingStatus = "Inquiry"
	BookingStatusPending   BookingStatus = "Pending"
	BookingStatusRequested BookingStatus = "Requested"
	BookingStatusConfirmed BookingStatus = "Confirmed"
	BookingStatusBooked    BookingStatus = "Booked"
	BookingStatusCancelled BookingStatus = "Cancelled"
	BookingStatusRejected  BookingStatus = "Rejected"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingStatusInquiry, BookingStatusPending, BookingStatusRequested,
		BookingStatusConfirmed, BookingStatusBooked,
		BookingStatusCancelled, BookingStatusRejected:
		return true
	}
	return false
}

// Terminal bookings are kept for audit and never transition again.
func (s BookingStatus) Terminal() bool {
	return s == BookingStatusCancelled || s == BookingStatusRejected
}

type Booking struct {
	BookingID           string        `json:"booking_id"`
	GuestEmail          string        `json:"guest_email"`
	GuestName           string        `json:"guest_name"`
	Club                string        `json:"club"`
	Dates               []string      `json:"dates"`
	Date                *string       `json:"date"`
	TeeTime             *string       `json:"tee_time"`
	Players             int           `json:"players"`
	Total               float64       `json:"total"`
	Status              BookingStatus `json:"status"`
	Note                string        `json:"note"`
	UpdatedBy           string        `json:"updated_by"`
	CustomerConfirmedAt *time.Time    `json:"customer_confirmed_at"`
	CreatedAt           time.Time     `json:"created_at"`
	UpdatedAt           time.Time     `json:"updated_at"`
}

// SlotKey resolves the tee-time key this booking points at.
// Bookings still in Inquiry may not have one yet.
func (b *Booking) SlotKey() (SlotKey, bool) {
	if b.Date == nil || b.TeeTime == nil || *b.Date == "" || *b.TeeTime == "" {
		return SlotKey{}, false
	}
	return SlotKey{Club: b.Club, Date: *b.Date, Time: *b.TeeTime}, true
}

type CreateBookingInput struct {
	GuestEmail string
	GuestName  string
	Club       string
	Dates      []string
	Players    int
	Note       string
}

// StatusChangeResult reports one committed transition.
type StatusChangeResult struct {
	BookingID      string        `json:"booking_id"`
	From           BookingStatus `json:"from"`
	To             BookingStatus `json:"to"`
	Effect         SlotEffect    `json:"effect"`
	AvailableSlots int           `json:"available_slots"`
	// SlotMissing is set when a release found no tee-time record to
	// credit back; the status change still applied.
	SlotMissing bool `json:"slot_missing,omitempty"`
}
