package ports

import (
	"context"

	"github.com/jimbobirecode/RPGC-Mail/internal/domain"
)

// ReservationRepo runs the booking-status and slot-capacity writes as one
// atomic unit of work.
type ReservationRepo interface {
	ReserveAndSetStatus(
		ctx context.Context,
		bookingID string,
		to domain.BookingStatus,
		actor string,
		expected []domain.BookingStatus,
		key domain.SlotKey,
		players int,
	) (int, error)
	ReleaseAndSetStatus(
		ctx context.Context,
		bookingID string,
		to domain.BookingStatus,
		actor string,
		expected []domain.BookingStatus,
		key domain.SlotKey,
		players int,
	) (available int, slotMissing bool, err error)
}
