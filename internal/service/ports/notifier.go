package ports

import (
	"context"

	"github.com/jimbobirecode/RPGC-Mail/internal/domain"
)

// StaffNotifier pushes booking updates to the club staff channel. Callers
// fire it after a committed transition; delivery is best effort and never
// affects the result.
type StaffNotifier interface {
	NotifyBookingConfirmed(ctx context.Context, b *domain.Booking, remaining int)
	NotifyBookingReleased(ctx context.Context, b *domain.Booking, to domain.BookingStatus)
	NotifyBookingCancelled(ctx context.Context, b *domain.Booking)
}
