package storage

import (
	"context"
)

// ClickStorage is the append-only click event store plus the read-only
// aggregates computed from it. Events are never updated or deleted.
type ClickStorage interface {
	Insert(ctx context.Context, click *ClickEvent) error
	TotalCount(ctx context.Context) (int64, error)
	CountByLink(ctx context.Context) ([]LinkClickCount, error)
	Recent(ctx context.Context, limit int) ([]ClickEvent, error)
	CountByDay(ctx context.Context, windowDays int) ([]DayClickCount, error)
}

// LinkStorage holds the admin-curated link registry. Update and Delete on a
// missing id are silent no-ops: the affected row count is deliberately
// ignored.
type LinkStorage interface {
	Create(ctx context.Context, link *Link) (int64, error)
	Update(ctx context.Context, link *Link) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]Link, error)
}
