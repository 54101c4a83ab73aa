package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jimbobirecode/RPGC-Mail/internal/domain"
	servicemocks "github.com/jimbobirecode/RPGC-Mail/internal/service/mocks"
	"github.com/jimbobirecode/RPGC-Mail/internal/service/ports/mocks"
)

type bookingMocks struct {
	bookingRepo *mocks.MockBookingRepo
	teeTimeRepo *mocks.MockTeeTimeRepo
	status      *servicemocks.MockStatusChanger
	notifier    *mocks.MockStaffNotifier
}

func newBookingService(t *testing.T) (*BookingService, bookingMocks) {
	t.Helper()
	m := bookingMocks{
		bookingRepo: mocks.NewMockBookingRepo(t),
		teeTimeRepo: mocks.NewMockTeeTimeRepo(t),
		status:      servicemocks.NewMockStatusChanger(t),
		notifier:    mocks.NewMockStaffNotifier(t),
	}
	svc := NewBookingService(m.bookingRepo, m.teeTimeRepo, m.status, m.notifier, newTestLogger(t), "royalportrush")
	return svc, m
}

func TestBookingService_Create_Success(t *testing.T) {
	svc, m := newBookingService(t)

	m.bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	booking, err := svc.Create(context.Background(), domain.CreateBookingInput{
		GuestEmail: "guest@example.com",
		GuestName:  "J. Smith",
		Dates:      []string{"2025-11-24", "2025-11-25"},
		Players:    4,
		Note:       "prefers morning",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusInquiry, booking.Status)
	assert.Equal(t, "royalportrush", booking.Club)
	assert.Regexp(t, `^RP-\d{8}-[0-9A-F]{8}$`, booking.BookingID)
	assert.Nil(t, booking.Date)
	assert.Nil(t, booking.TeeTime)
}

func TestBookingService_Create_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input domain.CreateBookingInput
	}{
		{
			name:  "missing email",
			input: domain.CreateBookingInput{Dates: []string{"2025-11-24"}, Players: 2},
		},
		{
			name:  "non-positive players",
			input: domain.CreateBookingInput{GuestEmail: "g@example.com", Dates: []string{"2025-11-24"}, Players: 0},
		},
		{
			name:  "no dates",
			input: domain.CreateBookingInput{GuestEmail: "g@example.com", Players: 2},
		},
		{
			name:  "malformed date",
			input: domain.CreateBookingInput{GuestEmail: "g@example.com", Dates: []string{"24/11/2025"}, Players: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newBookingService(t)

			_, err := svc.Create(context.Background(), tt.input)

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestBookingService_RequestSlot_Success(t *testing.T) {
	svc, m := newBookingService(t)

	booking := requestedBooking()
	booking.Status = domain.BookingStatusInquiry
	booking.Date = nil
	booking.TeeTime = nil

	fee := 150.0
	key := domain.SlotKey{Club: "royalportrush", Date: "2025-11-24", Time: "10:00"}
	assignable := []domain.BookingStatus{
		domain.BookingStatusInquiry, domain.BookingStatusPending, domain.BookingStatusRequested,
	}

	m.bookingRepo.EXPECT().GetByID(mock.Anything, booking.BookingID).Return(booking, nil).Once()
	m.teeTimeRepo.EXPECT().GetByKey(mock.Anything, key).
		Return(&domain.TeeTime{Club: key.Club, Date: key.Date, Time: key.Time, MaxPlayers: 4, AvailableSlots: 4, IsAvailable: true, GreenFee: &fee}, nil)
	m.bookingRepo.EXPECT().AssignSlot(mock.Anything, booking.BookingID, "2025-11-24", "10:00", 600.0, assignable).Return(nil)
	m.status.EXPECT().ChangeStatus(mock.Anything, booking.BookingID, domain.BookingStatusRequested, "guest").
		Return(&domain.StatusChangeResult{}, nil)
	m.bookingRepo.EXPECT().GetByID(mock.Anything, booking.BookingID).Return(requestedBooking(), nil).Once()

	updated, err := svc.RequestSlot(context.Background(), booking.BookingID, "2025-11-24", "10:00", "guest")

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusRequested, updated.Status)
}

// Repointing an already-Requested booking updates the slot fields without a
// second status change.
func TestBookingService_RequestSlot_AlreadyRequested(t *testing.T) {
	svc, m := newBookingService(t)

	booking := requestedBooking()
	key := domain.SlotKey{Club: "royalportrush", Date: "2025-11-25", Time: "14:00"}

	m.bookingRepo.EXPECT().GetByID(mock.Anything, booking.BookingID).Return(booking, nil).Twice()
	m.teeTimeRepo.EXPECT().GetByKey(mock.Anything, key).
		Return(&domain.TeeTime{Club: key.Club, Date: key.Date, Time: key.Time, MaxPlayers: 4, AvailableSlots: 2, IsAvailable: true}, nil)
	m.bookingRepo.EXPECT().AssignSlot(mock.Anything, booking.BookingID, "2025-11-25", "14:00", 0.0, mock.Anything).Return(nil)

	_, err := svc.RequestSlot(context.Background(), booking.BookingID, "2025-11-25", "14:00", "guest")

	require.NoError(t, err)
}

func TestBookingService_RequestSlot_ConfirmedBooking(t *testing.T) {
	svc, m := newBookingService(t)

	booking := requestedBooking()
	booking.Status = domain.BookingStatusConfirmed

	m.bookingRepo.EXPECT().GetByID(mock.Anything, booking.BookingID).Return(booking, nil)

	_, err := svc.RequestSlot(context.Background(), booking.BookingID, "2025-11-24", "10:00", "guest")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestBookingService_RequestSlot_UnknownTeeTime(t *testing.T) {
	svc, m := newBookingService(t)

	booking := requestedBooking()
	booking.Status = domain.BookingStatusInquiry

	m.bookingRepo.EXPECT().GetByID(mock.Anything, booking.BookingID).Return(booking, nil)
	m.teeTimeRepo.EXPECT().GetByKey(mock.Anything, mock.Anything).Return(nil, domain.ErrSlotNotFound)

	_, err := svc.RequestSlot(context.Background(), booking.BookingID, "2025-11-24", "06:00", "guest")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSlotNotFound)
}

func TestBookingService_RequestSlot_BadDate(t *testing.T) {
	svc, _ := newBookingService(t)

	_, err := svc.RequestSlot(context.Background(), "RP-X", "tomorrow", "10:00", "guest")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_CancelStale(t *testing.T) {
	svc, m := newBookingService(t)

	stale := []*domain.Booking{
		{BookingID: "RP-1", Status: domain.BookingStatusCancelled},
		{BookingID: "RP-2", Status: domain.BookingStatusCancelled},
	}

	m.bookingRepo.EXPECT().CancelStale(mock.Anything, mock.AnythingOfType("time.Time")).Return(stale, nil)
	m.notifier.EXPECT().NotifyBookingCancelled(mock.Anything, stale[0]).Return()
	m.notifier.EXPECT().NotifyBookingCancelled(mock.Anything, stale[1]).Return()

	cancelled, err := svc.CancelStale(context.Background())

	require.NoError(t, err)
	assert.Len(t, cancelled, 2)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestBookingService_CancelStale_Empty(t *testing.T) {
	svc, m := newBookingService(t)

	m.bookingRepo.EXPECT().CancelStale(mock.Anything, mock.AnythingOfType("time.Time")).Return(nil, nil)

	cancelled, err := svc.CancelStale(context.Background())

	require.NoError(t, err)
	assert.Empty(t, cancelled)
}
