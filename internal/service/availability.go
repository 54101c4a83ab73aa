package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/wb-go/wbf/logger"

	"github.com/jimbobirecode/RPGC-Mail/internal/domain"
	"github.com/jimbobirecode/RPGC-Mail/internal/service/ports"
)

// AvailabilityService is the single entry point for booking status changes.
// Any transition that touches tee-time capacity goes through the reservation
// repo's atomic unit of work; everything else is a plain guarded update.
type AvailabilityService struct {
	bookingRepo     ports.BookingRepo
	teeTimeRepo     ports.TeeTimeRepo
	reservationRepo ports.ReservationRepo
	notifier        ports.StaffNotifier
	logger          logger.Logger
}

func NewAvailabilityService(
	bookingRepo ports.BookingRepo,
	teeTimeRepo ports.TeeTimeRepo,
	reservationRepo ports.ReservationRepo,
	notifier ports.StaffNotifier,
	logger logger.Logger,
) *AvailabilityService {
	return &AvailabilityService{
		bookingRepo:     bookingRepo,
		teeTimeRepo:     teeTimeRepo,
		reservationRepo: reservationRepo,
		notifier:        notifier,
		logger:          logger,
	}
}

func (s *AvailabilityService) ChangeStatus(
	ctx context.Context,
	bookingID string,
	target domain.BookingStatus,
	actor string,
) (*domain.StatusChangeResult, error) {
	if !target.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrValidation, target)
	}

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	if !domain.CanTransition(booking.Status, target) {
		return nil, fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, booking.Status, target)
	}

	result := &domain.StatusChangeResult{
		BookingID: bookingID,
		From:      booking.Status,
		To:        target,
		Effect:    domain.TransitionEffect(booking.Status, target),
	}

	switch result.Effect {
	case domain.SlotEffectReserve:
		if err = s.reserve(ctx, booking, target, actor, result); err != nil {
			return nil, err
		}
	case domain.SlotEffectRelease:
		if err = s.release(ctx, booking, target, actor, result); err != nil {
			return nil, err
		}
	default:
		// Guard on the status snapshot the effect was computed from. A wider
		// guard would let a cancel land on a booking a concurrent caller just
		// confirmed, stranding the reserved capacity; with the snapshot an
		// interleaved transition matches zero rows and surfaces as a conflict.
		if err = s.bookingRepo.SetStatus(ctx, bookingID, target, actor, []domain.BookingStatus{booking.Status}); err != nil {
			return nil, fmt.Errorf("set status: %w", err)
		}
	}

	s.logger.Info("booking status changed",
		logger.String("booking_id", bookingID),
		logger.String("from", string(result.From)),
		logger.String("to", string(target)),
		logger.String("effect", string(result.Effect)),
		logger.String("actor", actor),
	)

	s.notifyAfter(ctx, booking, target, result)

	return result, nil
}

// Confirm moves a booking into Confirmed, consuming slot capacity.
func (s *AvailabilityService) Confirm(ctx context.Context, bookingID, actor string) (*domain.StatusChangeResult, error) {
	return s.ChangeStatus(ctx, bookingID, domain.BookingStatusConfirmed, actor)
}

// Release reverts a reserving booking to the given non-reserving status,
// crediting capacity back.
func (s *AvailabilityService) Release(
	ctx context.Context,
	bookingID, actor string,
	target domain.BookingStatus,
) (*domain.StatusChangeResult, error) {
	if target.Reserving() {
		return nil, fmt.Errorf("%w: release target %s still reserves the slot", domain.ErrValidation, target)
	}
	return s.ChangeStatus(ctx, bookingID, target, actor)
}

func (s *AvailabilityService) reserve(
	ctx context.Context,
	booking *domain.Booking,
	target domain.BookingStatus,
	actor string,
	result *domain.StatusChangeResult,
) error {
	key, ok := booking.SlotKey()
	if !ok {
		return domain.ErrMissingSlotAssignment
	}

	available, err := s.reservationRepo.ReserveAndSetStatus(
		ctx, booking.BookingID, target, actor,
		domain.LegalSources(target), key, booking.Players,
	)
	if err != nil {
		return fmt.Errorf("reserve: %w", err)
	}

	result.AvailableSlots = available
	return nil
}

func (s *AvailabilityService) release(
	ctx context.Context,
	booking *domain.Booking,
	target domain.BookingStatus,
	actor string,
	result *domain.StatusChangeResult,
) error {
	// Only a still-reserving booking may release; this is the guard that
	// keeps a duplicate release from crediting capacity twice.
	expected := reservingSources(target)

	key, ok := booking.SlotKey()
	if !ok {
		// Administrative drift: a reserving booking lost its slot fields.
		// The status change must still land; only the bookkeeping is skipped.
		if err := s.bookingRepo.SetStatus(ctx, booking.BookingID, target, actor, expected); err != nil {
			return fmt.Errorf("set status: %w", err)
		}
		result.SlotMissing = true
		s.logger.Warn("release without slot assignment",
			logger.String("booking_id", booking.BookingID),
		)
		return nil
	}

	available, slotMissing, err := s.reservationRepo.ReleaseAndSetStatus(
		ctx, booking.BookingID, target, actor, expected, key, booking.Players,
	)
	if err != nil {
		return fmt.Errorf("release: %w", err)
	}

	result.AvailableSlots = available
	result.SlotMissing = slotMissing
	if slotMissing {
		s.logger.Warn("release found no tee time record",
			logger.String("booking_id", booking.BookingID),
			logger.String("date", key.Date),
			logger.String("time", key.Time),
		)
	}
	return nil
}

func (s *AvailabilityService) notifyAfter(
	ctx context.Context,
	booking *domain.Booking,
	target domain.BookingStatus,
	result *domain.StatusChangeResult,
) {
	updated := *booking
	updated.Status = target

	switch {
	case result.Effect == domain.SlotEffectReserve:
		go s.notifier.NotifyBookingConfirmed(context.WithoutCancel(ctx), &updated, result.AvailableSlots)
	case target == domain.BookingStatusCancelled:
		go s.notifier.NotifyBookingCancelled(context.WithoutCancel(ctx), &updated)
	case result.Effect == domain.SlotEffectRelease:
		go s.notifier.NotifyBookingReleased(context.WithoutCancel(ctx), &updated, target)
	}
}

// CheckSlot is the read-only availability snapshot for one tee time.
func (s *AvailabilityService) CheckSlot(ctx context.Context, key domain.SlotKey, players int) (*domain.SlotAvailability, error) {
	t, err := s.teeTimeRepo.GetByKey(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrSlotNotFound) {
			return &domain.SlotAvailability{Key: key, RequestedPlayers: players}, nil
		}
		return nil, fmt.Errorf("check slot: %w", err)
	}

	return &domain.SlotAvailability{
		Key:              key,
		Exists:           true,
		MaxPlayers:       t.MaxPlayers,
		AvailableSlots:   t.AvailableSlots,
		Bookable:         t.IsAvailable && t.AvailableSlots > 0,
		CanAccommodate:   t.IsAvailable && t.AvailableSlots >= players,
		RequestedPlayers: players,
		GreenFee:         t.GreenFee,
	}, nil
}

// AvailableTimes lists open slots for a date. Blocked dates and Wednesdays
// (no visitor play) are refused up front.
func (s *AvailabilityService) AvailableTimes(ctx context.Context, club, date string, minPlayers int) ([]*domain.TeeTime, error) {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date %q, expected YYYY-MM-DD", domain.ErrValidation, date)
	}
	if day.Weekday() == time.Wednesday {
		return nil, fmt.Errorf("%w: no visitor bookings on Wednesdays", domain.ErrDateBlocked)
	}

	blocked, reason, err := s.teeTimeRepo.IsDateBlocked(ctx, club, date)
	if err != nil {
		return nil, fmt.Errorf("check blocked date: %w", err)
	}
	if blocked {
		if reason == "" {
			reason = "no reason given"
		}
		return nil, fmt.Errorf("%w: %s", domain.ErrDateBlocked, reason)
	}

	return s.teeTimeRepo.ListAvailableByDate(ctx, club, date, minPlayers)
}

func (s *AvailabilityService) DailyReport(ctx context.Context, club, from, to string) ([]*domain.DailyAvailability, error) {
	for _, d := range []string{from, to} {
		if _, err := time.Parse("2006-01-02", d); err != nil {
			return nil, fmt.Errorf("%w: invalid date %q, expected YYYY-MM-DD", domain.ErrValidation, d)
		}
	}
	return s.teeTimeRepo.DailyReport(ctx, club, from, to)
}

func reservingSources(target domain.BookingStatus) []domain.BookingStatus {
	var res []domain.BookingStatus
	for _, st := range domain.LegalSources(target) {
		if st.Reserving() {
			res = append(res, st)
		}
	}
	return res
}
