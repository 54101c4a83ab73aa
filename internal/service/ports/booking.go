package ports

import (
	"context"
	"time"

	"github.com/jimbobirecode/RPGC-Mail/internal/domain"
)

type BookingRepo interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, bookingID string) (*domain.Booking, error)
	SetStatus(ctx context.Context, bookingID string, to domain.BookingStatus, actor string, expected []domain.BookingStatus) error
	AssignSlot(ctx context.Context, bookingID, date, teeTime string, total float64, expected []domain.BookingStatus) error
	List(ctx context.Context, status *domain.BookingStatus, guestEmail string) ([]*domain.Booking, error)
	CancelStale(ctx context.Context, before time.Time) ([]*domain.Booking, error)
}
