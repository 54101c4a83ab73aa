package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/jimbobirecode/RPGC-Mail/internal/domain"
)

type TeeTimeRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewTeeTimeRepo(db *dbpg.DB) *TeeTimeRepository {
	return &TeeTimeRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *TeeTimeRepository) GetByKey(ctx context.Context, key domain.SlotKey) (*domain.TeeTime, error) {
	query := `SELECT id, club, date::text, time, max_players, available_slots,
					 is_available, green_fee, notes, created_at, updated_at
			  FROM tee_times
			  WHERE club = $1 AND date = $2 AND time = $3`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, key.Club, key.Date, key.Time)
	if err != nil {
		return nil, fmt.Errorf("get tee time: %w", err)
	}

	var t domain.TeeTime
	if err = row.Scan(
		&t.ID, &t.Club, &t.Date, &t.Time, &t.MaxPlayers, &t.AvailableSlots,
		&t.IsAvailable, &t.GreenFee, &t.Notes, &t.CreatedAt, &t.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSlotNotFound
		}
		return nil, fmt.Errorf("scan tee time: %w", err)
	}

	return &t, nil
}

// The two capacity writes are shared with the reservation transaction:
// the decrement guard and the clamp must stay identical whichever write
// path runs them. Parameters are (club, date, time, count).
const (
	reserveSlotQuery = `UPDATE tee_times
			  SET available_slots = available_slots - $4,
			      is_available = CASE WHEN available_slots - $4 <= 0 THEN FALSE ELSE TRUE END,
			      updated_at = NOW()
			  WHERE club = $1 AND date = $2 AND time = $3
			    AND available_slots >= $4
			  RETURNING available_slots`

	releaseSlotQuery = `UPDATE tee_times
			  SET available_slots = LEAST(available_slots + $4, max_players),
			      is_available = TRUE,
			      updated_at = NOW()
			  WHERE club = $1 AND date = $2 AND time = $3
			  RETURNING available_slots`
)

// TryReserve decrements available_slots only if enough remain at write time.
// Two concurrent callers racing for the last spots cannot both pass the
// guard; the loser gets ErrInsufficientCapacity, never a negative count.
func (r *TeeTimeRepository) TryReserve(ctx context.Context, key domain.SlotKey, count int) (int, error) {
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, reserveSlotQuery, key.Club, key.Date, key.Time, count)
	if err != nil {
		return 0, fmt.Errorf("reserve slot: %w", err)
	}

	var available int
	if err = row.Scan(&available); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, r.classifyReserveFailure(ctx, key, count)
		}
		return 0, fmt.Errorf("scan reserved slot: %w", err)
	}

	return available, nil
}

// Release credits capacity back, clamped to max_players so a duplicate or
// post-shrink release can never inflate the slot past its ceiling.
func (r *TeeTimeRepository) Release(ctx context.Context, key domain.SlotKey, count int) (int, error) {
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, releaseSlotQuery, key.Club, key.Date, key.Time, count)
	if err != nil {
		return 0, fmt.Errorf("release slot: %w", err)
	}

	var available int
	if err = row.Scan(&available); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, domain.ErrSlotNotFound
		}
		return 0, fmt.Errorf("scan released slot: %w", err)
	}

	return available, nil
}

func (r *TeeTimeRepository) ListAvailableByDate(ctx context.Context, club, date string, minPlayers int) ([]*domain.TeeTime, error) {
	query := `SELECT id, club, date::text, time, max_players, available_slots,
					 is_available, green_fee, notes, created_at, updated_at
			  FROM tee_times
			  WHERE club = $1 AND date = $2
			    AND is_available = TRUE
			    AND available_slots >= $3
			  ORDER BY time ASC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, club, date, minPlayers)
	if err != nil {
		return nil, fmt.Errorf("list tee times: %w", err)
	}
	defer rows.Close()

	var res []*domain.TeeTime
	for rows.Next() {
		var t domain.TeeTime
		if err = rows.Scan(
			&t.ID, &t.Club, &t.Date, &t.Time, &t.MaxPlayers, &t.AvailableSlots,
			&t.IsAvailable, &t.GreenFee, &t.Notes, &t.CreatedAt, &t.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan tee time: %w", err)
		}
		res = append(res, &t)
	}

	return res, rows.Err()
}

func (r *TeeTimeRepository) DailyReport(ctx context.Context, club, from, to string) ([]*domain.DailyAvailability, error) {
	query := `SELECT date::text,
					 trim(to_char(date, 'Day')),
					 COUNT(*),
					 COALESCE(SUM(max_players), 0),
					 COALESCE(SUM(available_slots), 0),
					 COALESCE(SUM(max_players - available_slots), 0)
			  FROM tee_times
			  WHERE club = $1 AND date >= $2 AND date <= $3
			  GROUP BY date
			  ORDER BY date ASC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, club, from, to)
	if err != nil {
		return nil, fmt.Errorf("daily report: %w", err)
	}
	defer rows.Close()

	var res []*domain.DailyAvailability
	for rows.Next() {
		var d domain.DailyAvailability
		if err = rows.Scan(
			&d.Date, &d.Day, &d.SlotCount,
			&d.TotalCapacity, &d.TotalAvailable, &d.TotalBooked,
		); err != nil {
			return nil, fmt.Errorf("scan report row: %w", err)
		}
		if d.TotalCapacity > 0 {
			pct := float64(d.TotalBooked) / float64(d.TotalCapacity) * 100
			d.UtilizationPct = float64(int(pct*10+0.5)) / 10
		}
		res = append(res, &d)
	}

	return res, rows.Err()
}

func (r *TeeTimeRepository) IsDateBlocked(ctx context.Context, club, date string) (bool, string, error) {
	query := `SELECT reason FROM blocked_dates WHERE club = $1 AND date = $2`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, club, date)
	if err != nil {
		return false, "", fmt.Errorf("check blocked date: %w", err)
	}

	var reason string
	if err = row.Scan(&reason); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, "", nil
		}
		return false, "", fmt.Errorf("scan blocked date: %w", err)
	}

	return true, reason, nil
}

func (r *TeeTimeRepository) classifyReserveFailure(ctx context.Context, key domain.SlotKey, count int) error {
	t, err := r.GetByKey(ctx, key)
	if err != nil {
		return err
	}
	return fmt.Errorf("%w: %d available, need %d", domain.ErrInsufficientCapacity, t.AvailableSlots, count)
}
