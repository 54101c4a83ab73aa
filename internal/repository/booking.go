package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/jimbobirecode/RPGC-Mail/internal/domain"
)

const bookingColumns = `booking_id, guest_email, guest_name, club, dates, date::text, tee_time,
			  players, total, status, note, updated_by, customer_confirmed_at, created_at, updated_at`

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	query := `INSERT INTO bookings (booking_id, guest_email, guest_name, club, dates,
				players, total, status, note, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		b.BookingID, b.GuestEmail, b.GuestName, b.Club, pq.Array(b.Dates),
		b.Players, b.Total, b.Status, b.Note, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrAlreadyBooked
		}
		return fmt.Errorf("insert booking: %w", err)
	}

	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, bookingID string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE booking_id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, bookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	return b, nil
}

// SetStatus applies a conditional status update: the write lands only if the
// booking is still in one of the expected statuses. A zero-row match means a
// concurrent change won the race.
func (r *BookingRepository) SetStatus(
	ctx context.Context,
	bookingID string,
	to domain.BookingStatus,
	actor string,
	expected []domain.BookingStatus,
) error {
	query := `UPDATE bookings
			  SET status = $2, updated_by = $3, updated_at = NOW()
			  WHERE booking_id = $1
			    AND status = ANY($4)`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, bookingID, to, actor, pq.Array(expected))
	if err != nil {
		return fmt.Errorf("set booking status: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("booking rows affected: %w", err)
	}
	if rows == 0 {
		return r.classifyNoMatch(ctx, bookingID)
	}

	return nil
}

// AssignSlot pins the booking to a concrete tee time. Guarded by status so a
// reserving booking cannot be silently repointed at another slot.
func (r *BookingRepository) AssignSlot(
	ctx context.Context,
	bookingID, date, teeTime string,
	total float64,
	expected []domain.BookingStatus,
) error {
	query := `UPDATE bookings
			  SET date = $2, tee_time = $3, total = $4, updated_at = NOW()
			  WHERE booking_id = $1
			    AND status = ANY($5)`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, bookingID, date, teeTime, total, pq.Array(expected))
	if err != nil {
		return fmt.Errorf("assign slot: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("assign rows affected: %w", err)
	}
	if rows == 0 {
		return r.classifyNoMatch(ctx, bookingID)
	}

	return nil
}

func (r *BookingRepository) List(ctx context.Context, status *domain.BookingStatus, guestEmail string) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE ($1::text IS NULL OR status = $1)
			    AND ($2 = '' OR guest_email = $2)
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, status, guestEmail)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, b)
	}

	return res, rows.Err()
}

// CancelStale sweeps bookings that never reached a reserving status and whose
// tee date is already in the past. Reserving bookings are never touched here.
func (r *BookingRepository) CancelStale(ctx context.Context, before time.Time) ([]*domain.Booking, error) {
	stale := []domain.BookingStatus{
		domain.BookingStatusInquiry, domain.BookingStatusPending, domain.BookingStatusRequested,
	}
	query := `UPDATE bookings
			  SET status = $1, updated_by = 'scheduler', updated_at = NOW()
			  WHERE status = ANY($2)
			    AND date IS NOT NULL
			    AND date < $3
			  RETURNING ` + bookingColumns

	rows, err := r.db.QueryWithRetry(
		ctx, r.strategy, query,
		domain.BookingStatusCancelled, pq.Array(stale), before.Format("2006-01-02"),
	)
	if err != nil {
		return nil, fmt.Errorf("cancel stale: %w", err)
	}
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan stale booking: %w", err)
		}
		res = append(res, b)
	}

	return res, rows.Err()
}

func (r *BookingRepository) classifyNoMatch(ctx context.Context, bookingID string) error {
	query := `SELECT status FROM bookings WHERE booking_id = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, bookingID)
	if err != nil {
		return fmt.Errorf("classify no-match: %w", err)
	}

	var status string
	if err = row.Scan(&status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrBookingNotFound
		}
		return fmt.Errorf("classify no-match scan: %w", err)
	}

	return fmt.Errorf("%w: booking is now %s", domain.ErrStatusConflict, status)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var b domain.Booking
	err := row.Scan(
		&b.BookingID, &b.GuestEmail, &b.GuestName, &b.Club, pq.Array(&b.Dates),
		&b.Date, &b.TeeTime, &b.Players, &b.Total, &b.Status, &b.Note,
		&b.UpdatedBy, &b.CustomerConfirmedAt, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}
