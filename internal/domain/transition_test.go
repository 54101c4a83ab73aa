package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReservingStatuses(t *testing.T) {
	assert.True(t, BookingStatusConfirmed.Reserving())
	assert.True(t, BookingStatusBooked.Reserving())

	for _, s := range []BookingStatus{
		BookingStatusInquiry, BookingStatusPending, BookingStatusRequested,
		BookingStatusCancelled, BookingStatusRejected,
	} {
		assert.False(t, s.Reserving(), "status %s must not reserve", s)
	}
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to BookingStatus
		want     bool
	}{
		{BookingStatusInquiry, BookingStatusRequested, true},
		{BookingStatusInquiry, BookingStatusPending, true},
		{BookingStatusInquiry, BookingStatusConfirmed, true},
		{BookingStatusPending, BookingStatusConfirmed, true},
		{BookingStatusRequested, BookingStatusConfirmed, true},
		{BookingStatusConfirmed, BookingStatusBooked, true},
		{BookingStatusConfirmed, BookingStatusRequested, true},
		{BookingStatusBooked, BookingStatusRequested, true},
		{BookingStatusConfirmed, BookingStatusCancelled, true},
		{BookingStatusBooked, BookingStatusCancelled, true},
		{BookingStatusRequested, BookingStatusRejected, true},

		// re-entering the same status is never legal
		{BookingStatusConfirmed, BookingStatusConfirmed, false},
		{BookingStatusRequested, BookingStatusRequested, false},
		{BookingStatusCancelled, BookingStatusCancelled, false},

		// terminal statuses never transition again
		{BookingStatusCancelled, BookingStatusRequested, false},
		{BookingStatusRejected, BookingStatusConfirmed, false},

		{BookingStatusRequested, BookingStatusBooked, false},
		{BookingStatusBooked, BookingStatusConfirmed, false},
		{BookingStatusConfirmed, BookingStatusRejected, false},
		{BookingStatusRequested, BookingStatusInquiry, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CanTransition(tt.from, tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func TestTransitionEffect(t *testing.T) {
	assert.Equal(t, SlotEffectReserve, TransitionEffect(BookingStatusRequested, BookingStatusConfirmed))
	assert.Equal(t, SlotEffectReserve, TransitionEffect(BookingStatusInquiry, BookingStatusConfirmed))
	assert.Equal(t, SlotEffectRelease, TransitionEffect(BookingStatusConfirmed, BookingStatusRequested))
	assert.Equal(t, SlotEffectRelease, TransitionEffect(BookingStatusBooked, BookingStatusCancelled))

	// payment received: reservation stays held
	assert.Equal(t, SlotEffectNone, TransitionEffect(BookingStatusConfirmed, BookingStatusBooked))
	assert.Equal(t, SlotEffectNone, TransitionEffect(BookingStatusInquiry, BookingStatusRejected))
	assert.Equal(t, SlotEffectNone, TransitionEffect(BookingStatusInquiry, BookingStatusRequested))
}

func TestLegalSources_NeverContainsSelf(t *testing.T) {
	for _, target := range []BookingStatus{
		BookingStatusInquiry, BookingStatusPending, BookingStatusRequested,
		BookingStatusConfirmed, BookingStatusBooked,
		BookingStatusCancelled, BookingStatusRejected,
	} {
		for _, src := range LegalSources(target) {
			assert.NotEqual(t, target, src, "legal sources of %s contain itself", target)
		}
	}
}

func TestBookingSlotKey(t *testing.T) {
	date, teeTime := "2025-11-24", "10:00"
	b := &Booking{Club: "royalportrush", Date: &date, TeeTime: &teeTime}

	key, ok := b.SlotKey()
	assert.True(t, ok)
	assert.Equal(t, SlotKey{Club: "royalportrush", Date: "2025-11-24", Time: "10:00"}, key)

	_, ok = (&Booking{Club: "royalportrush", Date: &date}).SlotKey()
	assert.False(t, ok)

	empty := ""
	_, ok = (&Booking{Club: "royalportrush", Date: &date, TeeTime: &empty}).SlotKey()
	assert.False(t, ok)
}
