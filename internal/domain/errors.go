package domain

import "errors"

var (
	ErrBookingNotFound = errors.New("booking not found")
	ErrSlotNotFound    = errors.New("tee time slot not found")
)

var (
	// ErrInvalidTransition: the target status is not reachable from the
	// booking's current status.
	ErrInvalidTransition = errors.New("invalid status transition")
	// ErrInsufficientCapacity: the slot cannot seat the requested players,
	// including the case where a concurrent confirmation took the last spots.
	ErrInsufficientCapacity = errors.New("not enough available slots")
	// ErrStatusConflict: the conditional update matched no row because a
	// concurrent change won the race; re-read and decide.
	ErrStatusConflict = errors.New("booking status changed concurrently")
	// ErrMissingSlotAssignment: a reserving transition was requested before
	// the booking had a date and tee time.
	ErrMissingSlotAssignment = errors.New("booking has no date or tee time set")
)

var (
	ErrAlreadyBooked = errors.New("guest already has an active booking for this tee time")
	ErrDateBlocked   = errors.New("date is blocked for visitor bookings")
)

var ErrValidation = errors.New("validation error")
