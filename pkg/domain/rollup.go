package domain

import (
	"time"

	"github.com/google/uuid"
)

// RollupID uniquely identifies a stored monthly rollup.
type RollupID uuid.UUID

// MonthLayout is the wire format for rollup months, e.g. "2026-08".
const MonthLayout = "2006-01"

// MonthlyRollup is a precomputed per-category spending breakdown for one
// user and one calendar month. It is recomputed in the background whenever
// an expense in that month changes.
type MonthlyRollup struct {
	// ID is the unique identifier of the rollup row.
	ID RollupID `json:"-"`
	// UserID is the owner of the rollup.
	UserID UserID `json:"userId"`

	// Month is the first day of the covered month (UTC, day precision).
	Month time.Time `json:"month"`
	// CategoryTotals holds the per-category sums, ordered by total descending.
	CategoryTotals []CategoryTotal `json:"categoryTotals"`
	// TotalCents is the sum over all categories.
	TotalCents int64 `json:"totalCents"`

	// ComputedAt is when this rollup was last recomputed.
	ComputedAt time.Time `json:"computedAt"`
}

// MonthOf truncates t to the first day of its month in UTC, the canonical
// form used as rollup key.
func MonthOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}
