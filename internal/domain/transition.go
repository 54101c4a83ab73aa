package domain

// SlotEffect is what a transition does to tee-time capacity.
type SlotEffect string

const (
	SlotEffectNone    SlotEffect = "none"
	SlotEffectReserve SlotEffect = "reserve"
	SlotEffectRelease SlotEffect = "release"
)

// ReservingStatuses consume tee-time capacity while held.
var ReservingStatuses = []BookingStatus{BookingStatusConfirmed, BookingStatusBooked}

func (s BookingStatus) Reserving() bool {
	return s == BookingStatusConfirmed || s == BookingStatusBooked
}

// legalSources: which statuses each status may be entered from.
// Self-transitions are deliberately absent, so re-applying a status is an
// invalid transition rather than a silent success.
var legalSources = map[BookingStatus][]BookingStatus{
	BookingStatusPending: {BookingStatusInquiry},
	BookingStatusRequested: {
		BookingStatusInquiry, BookingStatusPending,
		BookingStatusConfirmed, BookingStatusBooked,
	},
	BookingStatusConfirmed: {
		BookingStatusRequested, BookingStatusInquiry, BookingStatusPending,
	},
	BookingStatusBooked: {BookingStatusConfirmed},
	BookingStatusRejected: {
		BookingStatusInquiry, BookingStatusPending, BookingStatusRequested,
	},
	BookingStatusCancelled: {
		BookingStatusInquiry, BookingStatusPending, BookingStatusRequested,
		BookingStatusConfirmed, BookingStatusBooked,
	},
}

// LegalSources returns the statuses from which target may be entered.
// Inquiry is the initial status and is never re-entered.
func LegalSources(target BookingStatus) []BookingStatus {
	return legalSources[target]
}

func CanTransition(from, to BookingStatus) bool {
	for _, s := range legalSources[to] {
		if s == from {
			return true
		}
	}
	return false
}

// TransitionEffect classifies what the move does to the slot. Both
// directions between two reserving statuses (Confirmed→Booked) keep the
// reservation held, so the effect is none.
func TransitionEffect(from, to BookingStatus) SlotEffect {
	switch {
	case !from.Reserving() && to.Reserving():
		return SlotEffectReserve
	case from.Reserving() && !to.Reserving():
		return SlotEffectRelease
	default:
		return SlotEffectNone
	}
}
