package postgres_test

import (
	"context"
	"ledger/pkg/domain"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestPgSQL_UpsertRollup(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	ctx := context.Background()
	userID := domain.UserID(uuid.New())
	month := day(2026, time.August, 1)

	t.Run("insert then replace", func(t *testing.T) {
		first, err := pgSQL.UpsertRollup(ctx, domain.MonthlyRollup{
			UserID: userID,
			Month:  month,
			CategoryTotals: []domain.CategoryTotal{
				{Category: domain.CategoryFood, TotalCents: 1200},
			},
			TotalCents: 1200,
		})
		require.NoError(t, err)
		require.Equal(t, int64(1200), first.TotalCents)
		require.False(t, first.ComputedAt.IsZero())

		second, err := pgSQL.UpsertRollup(ctx, domain.MonthlyRollup{
			UserID: userID,
			Month:  month,
			CategoryTotals: []domain.CategoryTotal{
				{Category: domain.CategoryFood, TotalCents: 1200},
				{Category: domain.CategoryHealth, TotalCents: 800},
			},
			TotalCents: 2000,
		})
		require.NoError(t, err)
		require.Equal(t, first.ID, second.ID, "upsert should keep the same row")
		require.Equal(t, int64(2000), second.TotalCents)
		require.Len(t, second.CategoryTotals, 2)
	})

	t.Run("empty totals round-trip", func(t *testing.T) {
		res, err := pgSQL.UpsertRollup(ctx, domain.MonthlyRollup{
			UserID: domain.UserID(uuid.New()),
			Month:  month,
		})
		require.NoError(t, err)
		require.Empty(t, res.CategoryTotals)
		require.Zero(t, res.TotalCents)
	})
}

func TestPgSQL_RollupByMonth(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	ctx := context.Background()
	userID := domain.UserID(uuid.New())
	month := day(2026, time.February, 1)

	_, err := pgSQL.UpsertRollup(ctx, domain.MonthlyRollup{
		UserID:         userID,
		Month:          month,
		CategoryTotals: []domain.CategoryTotal{{Category: domain.CategoryOther, TotalCents: 100}},
		TotalCents:     100,
	})
	require.NoError(t, err)

	t.Run("found, month normalized", func(t *testing.T) {
		// any day within the month resolves to the same rollup
		got, err := pgSQL.RollupByMonth(ctx, userID, day(2026, time.February, 17))
		require.NoError(t, err)
		require.NotNil(t, got)
		require.True(t, got.Month.Equal(month))
		require.Equal(t, int64(100), got.TotalCents)
	})

	t.Run("missing month", func(t *testing.T) {
		got, err := pgSQL.RollupByMonth(ctx, userID, day(2026, time.March, 1))
		require.NoError(t, err)
		require.Nil(t, got)
	})

	t.Run("scoped by user", func(t *testing.T) {
		got, err := pgSQL.RollupByMonth(ctx, domain.UserID(uuid.New()), month)
		require.NoError(t, err)
		require.Nil(t, got)
	})
}
