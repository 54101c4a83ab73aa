package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"

	"github.com/jimbobirecode/RPGC-Mail/internal/domain"
	"github.com/jimbobirecode/RPGC-Mail/internal/service/ports"
)

type statusChanger interface {
	ChangeStatus(ctx context.Context, bookingID string, target domain.BookingStatus, actor string) (*domain.StatusChangeResult, error)
}

type BookingService struct {
	bookingRepo ports.BookingRepo
	teeTimeRepo ports.TeeTimeRepo
	status      statusChanger
	notifier    ports.StaffNotifier
	logger      logger.Logger
	defaultClub string
}

func NewBookingService(
	bookingRepo ports.BookingRepo,
	teeTimeRepo ports.TeeTimeRepo,
	status statusChanger,
	notifier ports.StaffNotifier,
	logger logger.Logger,
	defaultClub string,
) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		teeTimeRepo: teeTimeRepo,
		status:      status,
		notifier:    notifier,
		logger:      logger,
		defaultClub: defaultClub,
	}
}

// Create registers a fresh guest inquiry. Field extraction from the inbound
// message happens upstream; this only takes structured values.
func (s *BookingService) Create(ctx context.Context, input domain.CreateBookingInput) (*domain.Booking, error) {
	if input.GuestEmail == "" {
		return nil, fmt.Errorf("%w: guest_email is required", domain.ErrValidation)
	}
	if input.Players <= 0 {
		return nil, fmt.Errorf("%w: players must be positive", domain.ErrValidation)
	}
	if len(input.Dates) == 0 {
		return nil, fmt.Errorf("%w: at least one requested date is required", domain.ErrValidation)
	}
	for _, d := range input.Dates {
		if _, err := time.Parse("2006-01-02", d); err != nil {
			return nil, fmt.Errorf("%w: invalid date %q, expected YYYY-MM-DD", domain.ErrValidation, d)
		}
	}

	club := input.Club
	if club == "" {
		club = s.defaultClub
	}

	now := time.Now().UTC()
	booking := &domain.Booking{
		BookingID:  newBookingID(now),
		GuestEmail: input.GuestEmail,
		GuestName:  input.GuestName,
		Club:       club,
		Dates:      input.Dates,
		Players:    input.Players,
		Status:     domain.BookingStatusInquiry,
		Note:       input.Note,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.logger.Info("inquiry created",
		logger.String("booking_id", booking.BookingID),
		logger.String("guest_email", booking.GuestEmail),
		logger.Int("players", booking.Players),
	)

	return booking, nil
}

// RequestSlot pins the booking to a concrete tee time and moves it to
// Requested — the "Book Now" step. The slot must exist on the sheet; its
// capacity is not consumed until staff confirm.
func (s *BookingService) RequestSlot(ctx context.Context, bookingID, date, teeTime, actor string) (*domain.Booking, error) {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, fmt.Errorf("%w: invalid date %q, expected YYYY-MM-DD", domain.ErrValidation, date)
	}

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	if booking.Status.Reserving() || booking.Status.Terminal() {
		return nil, fmt.Errorf("%w: cannot repoint a %s booking", domain.ErrInvalidTransition, booking.Status)
	}

	slot, err := s.teeTimeRepo.GetByKey(ctx, domain.SlotKey{Club: booking.Club, Date: date, Time: teeTime})
	if err != nil {
		return nil, fmt.Errorf("get tee time: %w", err)
	}

	var total float64
	if slot.GreenFee != nil {
		total = *slot.GreenFee * float64(booking.Players)
	}

	assignable := []domain.BookingStatus{
		domain.BookingStatusInquiry, domain.BookingStatusPending, domain.BookingStatusRequested,
	}
	if err = s.bookingRepo.AssignSlot(ctx, bookingID, date, teeTime, total, assignable); err != nil {
		return nil, fmt.Errorf("assign slot: %w", err)
	}

	if booking.Status != domain.BookingStatusRequested {
		if _, err = s.status.ChangeStatus(ctx, bookingID, domain.BookingStatusRequested, actor); err != nil {
			return nil, err
		}
	}

	return s.bookingRepo.GetByID(ctx, bookingID)
}

func (s *BookingService) Get(ctx context.Context, bookingID string) (*domain.Booking, error) {
	return s.bookingRepo.GetByID(ctx, bookingID)
}

func (s *BookingService) List(ctx context.Context, status *domain.BookingStatus, guestEmail string) ([]*domain.Booking, error) {
	return s.bookingRepo.List(ctx, status, guestEmail)
}

// CancelStale cancels never-confirmed bookings whose tee date has passed.
func (s *BookingService) CancelStale(ctx context.Context) ([]*domain.Booking, error) {
	cancelled, err := s.bookingRepo.CancelStale(ctx, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("cancel stale: %w", err)
	}

	if len(cancelled) > 0 {
		s.logger.Info("stale bookings cancelled",
			logger.Int("count", len(cancelled)),
		)

		go s.notifyCancelled(context.WithoutCancel(ctx), cancelled)
	}

	return cancelled, nil
}

func (s *BookingService) notifyCancelled(ctx context.Context, bookings []*domain.Booking) {
	for _, b := range bookings {
		s.notifier.NotifyBookingCancelled(ctx, b)
	}
}

// Booking ids look like RP-20251124-9F3A01BC: date prefix for the staff,
// random suffix for uniqueness.
func newBookingID(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:8])
	return fmt.Sprintf("RP-%s-%s", now.Format("20060102"), suffix)
}
