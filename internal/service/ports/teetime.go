package ports

import (
	"context"

	"github.com/jimbobirecode/RPGC-Mail/internal/domain"
)

type TeeTimeRepo interface {
	GetByKey(ctx context.Context, key domain.SlotKey) (*domain.TeeTime, error)
	TryReserve(ctx context.Context, key domain.SlotKey, count int) (int, error)
	Release(ctx context.Context, key domain.SlotKey, count int) (int, error)
	ListAvailableByDate(ctx context.Context, club, date string, minPlayers int) ([]*domain.TeeTime, error)
	DailyReport(ctx context.Context, club, from, to string) ([]*domain.DailyAvailability, error)
	IsDateBlocked(ctx context.Context, club, date string) (bool, string, error)
}
