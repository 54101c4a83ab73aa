package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"

	"github.com/jimbobirecode/RPGC-Mail/internal/domain"
)

// ReservationRepository owns the two multi-statement units of work where
// booking status and tee-time capacity must move together. Everything runs
// inside a single transaction: a crash between the statements can never
// leave capacity consumed without a booking reflecting it, or the reverse.
type ReservationRepository struct {
	db *dbpg.DB
}

func NewReservationRepo(db *dbpg.DB) *ReservationRepository {
	return &ReservationRepository{db: db}
}

// ReserveAndSetStatus moves the booking into a reserving status and
// decrements the slot in one transaction. Both writes are guarded: the
// booking update matches only the expected prior statuses, the slot update
// only when enough capacity remains. Either guard failing rolls back both.
func (r *ReservationRepository) ReserveAndSetStatus(
	ctx context.Context,
	bookingID string,
	to domain.BookingStatus,
	actor string,
	expected []domain.BookingStatus,
	key domain.SlotKey,
	players int,
) (int, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	bookingQuery := `UPDATE bookings
			  SET status = $2, updated_by = $3, customer_confirmed_at = NOW(), updated_at = NOW()
			  WHERE booking_id = $1
			    AND status = ANY($4)`
	res, err := tx.ExecContext(ctx, bookingQuery, bookingID, to, actor, pq.Array(expected))
	if err != nil {
		return 0, fmt.Errorf("confirm booking: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("booking rows affected: %w", err)
	}
	if rows == 0 {
		return 0, r.bookingNoMatch(ctx, tx, bookingID)
	}

	var available int
	if err = tx.QueryRowContext(ctx, reserveSlotQuery, key.Club, key.Date, key.Time, players).Scan(&available); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, r.slotNoMatch(ctx, tx, key, players)
		}
		return 0, fmt.Errorf("reserve slot: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit reserve: %w", err)
	}

	return available, nil
}

// ReleaseAndSetStatus moves the booking out of a reserving status and
// credits the slot back, clamped to max_players. The booking update is the
// guard against double release: a second concurrent call matches zero rows
// and rolls back before any capacity is credited. A missing tee-time record
// does not fail the operation — the status change still commits and the
// caller is told the bookkeeping was skipped.
func (r *ReservationRepository) ReleaseAndSetStatus(
	ctx context.Context,
	bookingID string,
	to domain.BookingStatus,
	actor string,
	expected []domain.BookingStatus,
	key domain.SlotKey,
	players int,
) (available int, slotMissing bool, err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, false, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	bookingQuery := `UPDATE bookings
			  SET status = $2, updated_by = $3, updated_at = NOW()
			  WHERE booking_id = $1
			    AND status = ANY($4)`
	res, err := tx.ExecContext(ctx, bookingQuery, bookingID, to, actor, pq.Array(expected))
	if err != nil {
		return 0, false, fmt.Errorf("release booking: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return 0, false, fmt.Errorf("booking rows affected: %w", err)
	}
	if rows == 0 {
		return 0, false, r.bookingNoMatch(ctx, tx, bookingID)
	}

	if err = tx.QueryRowContext(ctx, releaseSlotQuery, key.Club, key.Date, key.Time, players).Scan(&available); err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			return 0, false, fmt.Errorf("release slot: %w", err)
		}
		slotMissing = true
	}

	if err = tx.Commit(); err != nil {
		return 0, false, fmt.Errorf("commit release: %w", err)
	}

	return available, slotMissing, nil
}

func (r *ReservationRepository) bookingNoMatch(ctx context.Context, tx *sql.Tx, bookingID string) error {
	var status string
	err := tx.QueryRowContext(ctx, `SELECT status FROM bookings WHERE booking_id = $1`, bookingID).Scan(&status)
	if err != nil {
		return domain.ErrBookingNotFound
	}
	return fmt.Errorf("%w: booking is now %s", domain.ErrStatusConflict, status)
}

func (r *ReservationRepository) slotNoMatch(ctx context.Context, tx *sql.Tx, key domain.SlotKey, players int) error {
	var available int
	err := tx.QueryRowContext(
		ctx,
		`SELECT available_slots FROM tee_times WHERE club = $1 AND date = $2 AND time = $3`,
		key.Club, key.Date, key.Time,
	).Scan(&available)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrSlotNotFound
		}
		return fmt.Errorf("classify reserve failure: %w", err)
	}
	return fmt.Errorf("%w: %d available, need %d", domain.ErrInsufficientCapacity, available, players)
}
