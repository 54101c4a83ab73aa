package service

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jimbobirecode/RPGC-Mail/internal/domain"
	"github.com/jimbobirecode/RPGC-Mail/internal/service/ports/mocks"
)

// fakeStore is a mutex-guarded in-memory stand-in for the Postgres repos.
// Its conditional writes mirror the SQL guards, which lets the race tests
// below exercise the service's concurrency contract without a database.
type fakeStore struct {
	mu       sync.Mutex
	bookings map[string]*domain.Booking
	slots    map[domain.SlotKey]*domain.TeeTime

	// beforeSetStatus, when set, runs before the plain guarded update takes
	// the lock; tests use it to interleave a competing transition.
	beforeSetStatus func()
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		bookings: make(map[string]*domain.Booking),
		slots:    make(map[domain.SlotKey]*domain.TeeTime),
	}
}

func statusIn(s domain.BookingStatus, expected []domain.BookingStatus) bool {
	for _, e := range expected {
		if s == e {
			return true
		}
	}
	return false
}

func (f *fakeStore) Create(_ context.Context, b *domain.Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *b
	f.bookings[b.BookingID] = &cp
	return nil
}

func (f *fakeStore) GetByID(_ context.Context, bookingID string) (*domain.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.bookings[bookingID]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	cp := *b
	return &cp, nil
}

func (f *fakeStore) SetStatus(
	_ context.Context,
	bookingID string,
	to domain.BookingStatus,
	actor string,
	expected []domain.BookingStatus,
) error {
	if f.beforeSetStatus != nil {
		f.beforeSetStatus()
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.setStatusLocked(bookingID, to, actor, expected)
}

func (f *fakeStore) setStatusLocked(
	bookingID string,
	to domain.BookingStatus,
	actor string,
	expected []domain.BookingStatus,
) error {
	b, ok := f.bookings[bookingID]
	if !ok {
		return domain.ErrBookingNotFound
	}
	if !statusIn(b.Status, expected) {
		return fmt.Errorf("%w: booking %s is %s", domain.ErrStatusConflict, bookingID, b.Status)
	}
	b.Status = to
	b.UpdatedBy = actor
	return nil
}

func (f *fakeStore) AssignSlot(_ context.Context, bookingID, date, teeTime string, total float64, expected []domain.BookingStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.bookings[bookingID]
	if !ok {
		return domain.ErrBookingNotFound
	}
	if !statusIn(b.Status, expected) {
		return fmt.Errorf("%w: booking %s is %s", domain.ErrStatusConflict, bookingID, b.Status)
	}
	b.Date, b.TeeTime, b.Total = &date, &teeTime, total
	return nil
}

func (f *fakeStore) List(context.Context, *domain.BookingStatus, string) ([]*domain.Booking, error) {
	return nil, nil
}

func (f *fakeStore) CancelStale(context.Context, time.Time) ([]*domain.Booking, error) {
	return nil, nil
}

func (f *fakeStore) ReserveAndSetStatus(
	_ context.Context,
	bookingID string,
	to domain.BookingStatus,
	actor string,
	expected []domain.BookingStatus,
	key domain.SlotKey,
	players int,
) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	slot, ok := f.slots[key]
	if !ok {
		return 0, domain.ErrSlotNotFound
	}
	if !slot.IsAvailable || slot.AvailableSlots < players {
		return 0, fmt.Errorf("%w: %d available, need %d", domain.ErrInsufficientCapacity, slot.AvailableSlots, players)
	}
	if err := f.setStatusLocked(bookingID, to, actor, expected); err != nil {
		return 0, err
	}
	slot.AvailableSlots -= players
	if slot.AvailableSlots == 0 {
		slot.IsAvailable = false
	}
	return slot.AvailableSlots, nil
}

func (f *fakeStore) ReleaseAndSetStatus(
	_ context.Context,
	bookingID string,
	to domain.BookingStatus,
	actor string,
	expected []domain.BookingStatus,
	key domain.SlotKey,
	players int,
) (int, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.setStatusLocked(bookingID, to, actor, expected); err != nil {
		return 0, false, err
	}
	slot, ok := f.slots[key]
	if !ok {
		return 0, true, nil
	}
	slot.AvailableSlots += players
	if slot.AvailableSlots > slot.MaxPlayers {
		slot.AvailableSlots = slot.MaxPlayers
	}
	slot.IsAvailable = true
	return slot.AvailableSlots, false, nil
}

type noopNotifier struct{}

func (noopNotifier) NotifyBookingConfirmed(context.Context, *domain.Booking, int) {}

func (noopNotifier) NotifyBookingReleased(context.Context, *domain.Booking, domain.BookingStatus) {}

func (noopNotifier) NotifyBookingCancelled(context.Context, *domain.Booking) {}

func newRaceService(t *testing.T, store *fakeStore) *AvailabilityService {
	t.Helper()
	return NewAvailabilityService(store, mocks.NewMockTeeTimeRepo(t), store, noopNotifier{}, newTestLogger(t))
}

func seedBooking(store *fakeStore, id string, status domain.BookingStatus, players int) {
	date, teeTime := "2025-11-24", "10:00"
	store.bookings[id] = &domain.Booking{
		BookingID: id,
		Club:      "royalportrush",
		Date:      &date,
		TeeTime:   &teeTime,
		Players:   players,
		Status:    status,
	}
}

func seedSlot(store *fakeStore, maxPlayers, available int) domain.SlotKey {
	key := domain.SlotKey{Club: "royalportrush", Date: "2025-11-24", Time: "10:00"}
	store.slots[key] = &domain.TeeTime{
		Club: key.Club, Date: key.Date, Time: key.Time,
		MaxPlayers: maxPlayers, AvailableSlots: available, IsAvailable: available > 0,
	}
	return key
}

// Two staff members confirm two competing three-player bookings for the same
// four-slot tee time at once. Exactly one may win.
func TestConcurrentConfirms_SingleWinner(t *testing.T) {
	store := newFakeStore()
	key := seedSlot(store, 4, 4)
	seedBooking(store, "RP-A", domain.BookingStatusRequested, 3)
	seedBooking(store, "RP-B", domain.BookingStatusRequested, 3)
	svc := newRaceService(t, store)

	errs := make([]error, 2)
	var wg sync.WaitGroup
	for i, id := range []string{"RP-A", "RP-B"} {
		wg.Add(1)
		go func(i int, id string) {
			defer wg.Done()
			_, errs[i] = svc.Confirm(context.Background(), id, "staff")
		}(i, id)
	}
	wg.Wait()

	var wins, losses int
	for _, err := range errs {
		if err == nil {
			wins++
		} else {
			assert.ErrorIs(t, err, domain.ErrInsufficientCapacity)
			losses++
		}
	}
	assert.Equal(t, 1, wins)
	assert.Equal(t, 1, losses)
	assert.Equal(t, 1, store.slots[key].AvailableSlots)
}

// With more single-player bookings than capacity, the number of confirmed
// bookings must equal the capacity and the slot must end exactly empty.
func TestConcurrentConfirms_ConservesCapacity(t *testing.T) {
	store := newFakeStore()
	key := seedSlot(store, 4, 4)
	ids := []string{"RP-1", "RP-2", "RP-3", "RP-4", "RP-5", "RP-6"}
	for _, id := range ids {
		seedBooking(store, id, domain.BookingStatusRequested, 1)
	}
	svc := newRaceService(t, store)

	var wg sync.WaitGroup
	for _, id := range ids {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			_, _ = svc.Confirm(context.Background(), id, "staff")
		}(id)
	}
	wg.Wait()

	var confirmed int
	for _, b := range store.bookings {
		if b.Status == domain.BookingStatusConfirmed {
			confirmed++
		}
	}
	slot := store.slots[key]
	assert.Equal(t, 4, confirmed)
	assert.Equal(t, 0, slot.AvailableSlots)
	assert.False(t, slot.IsAvailable)
	assert.Equal(t, slot.MaxPlayers, confirmed+slot.AvailableSlots)
}

// A cancel computed from a stale Requested read must not land on a booking a
// concurrent caller confirmed in between: it would strand the reserved
// capacity with nothing holding it. The snapshot guard turns it into a
// status conflict instead.
func TestCancelInterleavedWithConfirm_NoCapacityLeak(t *testing.T) {
	store := newFakeStore()
	key := seedSlot(store, 4, 4)
	seedBooking(store, "RP-A", domain.BookingStatusRequested, 3)
	svc := newRaceService(t, store)

	store.beforeSetStatus = func() {
		store.beforeSetStatus = nil
		_, err := svc.Confirm(context.Background(), "RP-A", "staff")
		require.NoError(t, err)
	}

	_, err := svc.ChangeStatus(context.Background(), "RP-A", domain.BookingStatusCancelled, "staff")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrStatusConflict)
	assert.Equal(t, domain.BookingStatusConfirmed, store.bookings["RP-A"].Status)
	assert.Equal(t, 1, store.slots[key].AvailableSlots)
}

func TestConfirmThenCancel_RestoresCapacity(t *testing.T) {
	store := newFakeStore()
	key := seedSlot(store, 4, 4)
	seedBooking(store, "RP-A", domain.BookingStatusRequested, 3)
	svc := newRaceService(t, store)

	result, err := svc.Confirm(context.Background(), "RP-A", "staff")
	require.NoError(t, err)
	assert.Equal(t, 1, result.AvailableSlots)

	result, err = svc.Release(context.Background(), "RP-A", "staff", domain.BookingStatusCancelled)
	require.NoError(t, err)
	assert.Equal(t, 4, result.AvailableSlots)
	assert.True(t, store.slots[key].IsAvailable)

	// A second release must not credit the slot again.
	_, err = svc.Release(context.Background(), "RP-A", "staff", domain.BookingStatusCancelled)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	assert.Equal(t, 4, store.slots[key].AvailableSlots)
}

// Two racing releases of the same booking: the status guard lets only one
// through, so capacity is credited exactly once.
func TestConcurrentReleases_CreditOnce(t *testing.T) {
	store := newFakeStore()
	key := seedSlot(store, 8, 2)
	seedBooking(store, "RP-A", domain.BookingStatusConfirmed, 3)
	svc := newRaceService(t, store)

	errs := make([]error, 2)
	var wg sync.WaitGroup
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.Release(context.Background(), "RP-A", "staff", domain.BookingStatusCancelled)
		}(i)
	}
	wg.Wait()

	var wins int
	for _, err := range errs {
		if err == nil {
			wins++
		}
	}
	assert.Equal(t, 1, wins)
	assert.Equal(t, 5, store.slots[key].AvailableSlots)
}

// Releasing onto a slot whose counter drifted back to full must clamp at
// max_players rather than overshoot.
func TestRelease_ClampsAtCapacity(t *testing.T) {
	store := newFakeStore()
	key := seedSlot(store, 4, 3)
	seedBooking(store, "RP-A", domain.BookingStatusBooked, 2)
	svc := newRaceService(t, store)

	result, err := svc.Release(context.Background(), "RP-A", "staff", domain.BookingStatusCancelled)

	require.NoError(t, err)
	assert.Equal(t, 4, result.AvailableSlots)
	assert.Equal(t, 4, store.slots[key].AvailableSlots)
}
