package storage

import (
	"context"
	"ledger/pkg/domain"
	"time"
)

// RollupStorage defines persistence operations for monthly rollups.
type RollupStorage interface {
	// UpsertRollup inserts the rollup or, when a rollup for the same user and
	// month exists, replaces its totals and computed_at. Returns the stored row.
	UpsertRollup(ctx context.Context, rollup domain.MonthlyRollup) (*domain.MonthlyRollup, error)
	// RollupByMonth fetches the rollup for the given user and month (first day
	// of month, UTC). Returns nil when no rollup has been computed yet.
	RollupByMonth(ctx context.Context, userID domain.UserID, month time.Time) (*domain.MonthlyRollup, error)
}
