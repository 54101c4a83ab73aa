package domain

import "time"

// SlotKey identifies one tee time on the sheet.
type SlotKey struct {
	Club string
	Date string // YYYY-MM-DD
	Time string // HH:MM
}

type TeeTime struct {
	ID             int64     `json:"id"`
	Club           string    `json:"club"`
	Date           string    `json:"date"`
	Time           string    `json:"time"`
	MaxPlayers     int       `json:"max_players"`
	AvailableSlots int       `json:"available_slots"`
	IsAvailable    bool      `json:"is_available"`
	GreenFee       *float64  `json:"green_fee"`
	Notes          string    `json:"notes"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// SlotAvailability is the read-side snapshot for one slot.
type SlotAvailability struct {
	Key              SlotKey  `json:"-"`
	Exists           bool     `json:"exists"`
	MaxPlayers       int      `json:"max_players"`
	AvailableSlots   int      `json:"available_slots"`
	Bookable         bool     `json:"bookable"`
	CanAccommodate   bool     `json:"can_accommodate"`
	RequestedPlayers int      `json:"requested_players"`
	GreenFee         *float64 `json:"green_fee"`
}

// DailyAvailability is one row of the date-range report.
type DailyAvailability struct {
	Date           string  `json:"date"`
	Day            string  `json:"day"`
	SlotCount      int     `json:"slot_count"`
	TotalCapacity  int     `json:"total_capacity"`
	TotalAvailable int     `json:"total_available"`
	TotalBooked    int     `json:"total_booked"`
	UtilizationPct float64 `json:"utilization_pct"`
}
