package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"ledger/pkg/domain"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	rollupsTable = "monthly_rollups"
)

// UpsertRollup stores the rollup, replacing any existing row for the same
// user and month. computed_at is always set to the database clock.
func (p *PgSQL) UpsertRollup(ctx context.Context, rollup domain.MonthlyRollup) (*domain.MonthlyRollup, error) {
	totals := rollup.CategoryTotals
	if totals == nil {
		totals = []domain.CategoryTotal{}
	}
	b, err := json.Marshal(totals)
	if err != nil {
		return nil, fmt.Errorf("could not marshal rollup totals: %w", err)
	}

	rec := goqu.Record{
		"user_id":         uuid.UUID(rollup.UserID),
		"month":           domain.MonthOf(rollup.Month),
		"category_totals": b,
		"total_cents":     rollup.TotalCents,
		"computed_at":     goqu.L("CURRENT_TIMESTAMP"),
	}

	var row PgRollup
	found, err := p.Builder.Insert(rollupsTable).
		Rows(rec).
		OnConflict(goqu.DoUpdate("user_id, month", goqu.Record{
			"category_totals": b,
			"total_cents":     rollup.TotalCents,
			"computed_at":     goqu.L("CURRENT_TIMESTAMP"),
		})).
		Returning(&PgRollup{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not upsert rollup into pg: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("upsert returned no row")
	}

	return row.ToDomain()
}

// RollupByMonth returns the stored rollup for a user and month, or nil when
// none has been computed.
func (p *PgSQL) RollupByMonth(ctx context.Context,
	userID domain.UserID,
	month time.Time) (*domain.MonthlyRollup, error) {
	var row PgRollup
	found, err := p.Builder.From(rollupsTable).
		Where(
			goqu.I("user_id").Eq(uuid.UUID(userID)),
			goqu.I("month").Eq(domain.MonthOf(month)),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch rollup from pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}
