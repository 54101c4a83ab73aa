package dto

import (
	"time"

	"github.com/jimbobirecode/RPGC-Mail/internal/domain"
)

type BookingResponse struct {
	BookingID  string   `json:"booking_id"`
	GuestEmail string   `json:"guest_email"`
	GuestName  string   `json:"guest_name,omitempty"`
	Club       string   `json:"club"`
	Dates      []string `json:"dates,omitempty"`
	Date       *string  `json:"date,omitempty"`
	TeeTime    *string  `json:"tee_time,omitempty"`
	Players    int      `json:"players"`
	Total      float64  `json:"total"`
	Status     string   `json:"status"`
	Note       string   `json:"note,omitempty"`
	CreatedAt  string   `json:"created_at"`
	UpdatedAt  string   `json:"updated_at"`
}

type StatusChangeResponse struct {
	BookingID      string `json:"booking_id"`
	From           string `json:"from"`
	To             string `json:"to"`
	Effect         string `json:"effect"`
	AvailableSlots int    `json:"available_slots"`
	Warning        string `json:"warning,omitempty"`
}

type TeeTimeResponse struct {
	Date           string   `json:"date"`
	Time           string   `json:"time"`
	MaxPlayers     int      `json:"max_players"`
	AvailableSlots int      `json:"available_slots"`
	GreenFee       *float64 `json:"green_fee,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		BookingID:  b.BookingID,
		GuestEmail: b.GuestEmail,
		GuestName:  b.GuestName,
		Club:       b.Club,
		Dates:      b.Dates,
		Date:       b.Date,
		TeeTime:    b.TeeTime,
		Players:    b.Players,
		Total:      b.Total,
		Status:     string(b.Status),
		Note:       b.Note,
		CreatedAt:  b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  b.UpdatedAt.Format(time.RFC3339),
	}
}

func ToStatusChangeResponse(r *domain.StatusChangeResult) StatusChangeResponse {
	resp := StatusChangeResponse{
		BookingID:      r.BookingID,
		From:           string(r.From),
		To:             string(r.To),
		Effect:         string(r.Effect),
		AvailableSlots: r.AvailableSlots,
	}
	if r.SlotMissing {
		resp.Warning = "no tee time record to update"
	}
	return resp
}

func ToTeeTimeResponse(t *domain.TeeTime) TeeTimeResponse {
	return TeeTimeResponse{
		Date:           t.Date,
		Time:           t.Time,
		MaxPlayers:     t.MaxPlayers,
		AvailableSlots: t.AvailableSlots,
		GreenFee:       t.GreenFee,
	}
}
