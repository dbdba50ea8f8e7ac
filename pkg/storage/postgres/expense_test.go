package postgres_test

import (
	"context"
	"ledger/pkg/domain"
	"ledger/pkg/storage"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func testExpense(userID domain.UserID, date time.Time, cents int64, cat domain.Category) domain.Expense {
	return domain.Expense{
		UserID:      userID,
		Date:        date,
		AmountCents: cents,
		Category:    cat,
	}
}

func TestPgSQL_StoreExpense(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	ctx := context.Background()
	userID := domain.UserID(uuid.New())

	t.Run("store and return generated fields", func(t *testing.T) {
		e := testExpense(userID, day(2026, time.August, 12), 1250, domain.CategoryFood)
		e.Subcategory = "Groceries"
		e.Note = "weekly shop"

		res, err := pgSQL.StoreExpense(ctx, e)
		require.NoError(t, err)
		require.NotEqual(t, domain.ExpenseID(uuid.Nil), res.ID)
		require.Equal(t, int64(1250), res.AmountCents)
		require.Equal(t, domain.CategoryFood, res.Category)
		require.Equal(t, "Groceries", res.Subcategory)
		require.Equal(t, "weekly shop", res.Note)
		require.False(t, res.CreatedAt.IsZero())
		require.True(t, res.Date.Equal(day(2026, time.August, 12)))
	})

	t.Run("amount must be positive", func(t *testing.T) {
		e := testExpense(userID, day(2026, time.August, 12), 0, domain.CategoryFood)
		_, err := pgSQL.StoreExpense(ctx, e)
		require.Error(t, err)
	})
}

func TestPgSQL_ExpenseByID(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	ctx := context.Background()
	userID := domain.UserID(uuid.New())
	otherUser := domain.UserID(uuid.New())

	stored, err := pgSQL.StoreExpense(ctx, testExpense(userID, day(2026, time.March, 1), 500, domain.CategoryHealth))
	require.NoError(t, err)

	t.Run("found", func(t *testing.T) {
		got, err := pgSQL.ExpenseByID(ctx, userID, stored.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		require.Equal(t, stored.ID, got.ID)
	})

	t.Run("scoped by user", func(t *testing.T) {
		got, err := pgSQL.ExpenseByID(ctx, otherUser, stored.ID)
		require.NoError(t, err)
		require.Nil(t, got)
	})

	t.Run("missing id", func(t *testing.T) {
		got, err := pgSQL.ExpenseByID(ctx, userID, domain.ExpenseID(uuid.New()))
		require.NoError(t, err)
		require.Nil(t, got)
	})
}

func TestPgSQL_UserExpenses(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	ctx := context.Background()
	userID := domain.UserID(uuid.New())

	// five expenses over three days, one of them deleted
	dates := []time.Time{
		day(2026, time.July, 1),
		day(2026, time.July, 2),
		day(2026, time.July, 2),
		day(2026, time.July, 3),
		day(2026, time.July, 4),
	}
	var stored []domain.Expense
	for i, d := range dates {
		e, err := pgSQL.StoreExpense(ctx, testExpense(userID, d, int64(100*(i+1)), domain.CategoryOther))
		require.NoError(t, err)
		stored = append(stored, *e)
	}
	_, err := pgSQL.DeleteExpense(ctx, userID, stored[4].ID)
	require.NoError(t, err)

	t.Run("orders by date desc and excludes deleted", func(t *testing.T) {
		page, err := pgSQL.UserExpenses(ctx, userID, time.Time{}, time.Time{}, storage.ExpenseCursor{}, 10)
		require.NoError(t, err)
		require.Len(t, page.Expenses, 4)
		require.Nil(t, page.NextCursor)
		for i := 1; i < len(page.Expenses); i++ {
			require.False(t, page.Expenses[i].Date.After(page.Expenses[i-1].Date))
		}
	})

	t.Run("inclusive date range", func(t *testing.T) {
		page, err := pgSQL.UserExpenses(ctx, userID,
			day(2026, time.July, 2), day(2026, time.July, 3), storage.ExpenseCursor{}, 10)
		require.NoError(t, err)
		require.Len(t, page.Expenses, 3)
	})

	t.Run("cursor pagination walks all rows exactly once", func(t *testing.T) {
		seen := map[domain.ExpenseID]bool{}
		cursor := storage.ExpenseCursor{}
		for {
			page, err := pgSQL.UserExpenses(ctx, userID, time.Time{}, time.Time{}, cursor, 2)
			require.NoError(t, err)
			for _, e := range page.Expenses {
				require.False(t, seen[e.ID], "expense returned twice")
				seen[e.ID] = true
			}
			if page.NextCursor == nil {
				break
			}
			cursor = *page.NextCursor
		}
		require.Len(t, seen, 4)
	})

	t.Run("other user sees nothing", func(t *testing.T) {
		page, err := pgSQL.UserExpenses(ctx, domain.UserID(uuid.New()),
			time.Time{}, time.Time{}, storage.ExpenseCursor{}, 10)
		require.NoError(t, err)
		require.Empty(t, page.Expenses)
	})
}

func TestPgSQL_DeleteExpense(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	ctx := context.Background()
	userID := domain.UserID(uuid.New())

	stored, err := pgSQL.StoreExpense(ctx, testExpense(userID, day(2026, time.May, 5), 999, domain.CategoryUtilities))
	require.NoError(t, err)

	t.Run("soft delete returns the row", func(t *testing.T) {
		deleted, err := pgSQL.DeleteExpense(ctx, userID, stored.ID)
		require.NoError(t, err)
		require.NotNil(t, deleted)
		require.False(t, deleted.DeletedAt.IsZero())

		// no longer visible
		got, err := pgSQL.ExpenseByID(ctx, userID, stored.ID)
		require.NoError(t, err)
		require.Nil(t, got)
	})

	t.Run("double delete reports not found", func(t *testing.T) {
		deleted, err := pgSQL.DeleteExpense(ctx, userID, stored.ID)
		require.NoError(t, err)
		require.Nil(t, deleted)
	})
}

func TestPgSQL_CategoryTotals(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	ctx := context.Background()
	userID := domain.UserID(uuid.New())

	seed := []struct {
		cents int64
		cat   domain.Category
		date  time.Time
	}{
		{1000, domain.CategoryFood, day(2026, time.June, 1)},
		{2500, domain.CategoryFood, day(2026, time.June, 10)},
		{4000, domain.CategoryTransportation, day(2026, time.June, 15)},
		{300, domain.CategoryHealth, day(2026, time.July, 1)}, // outside range
	}
	for _, s := range seed {
		_, err := pgSQL.StoreExpense(ctx, testExpense(userID, s.date, s.cents, s.cat))
		require.NoError(t, err)
	}

	totals, err := pgSQL.CategoryTotals(ctx, userID, day(2026, time.June, 1), day(2026, time.June, 30))
	require.NoError(t, err)
	require.Len(t, totals, 2)

	// ordered by total descending
	require.Equal(t, domain.CategoryTransportation, totals[0].Category)
	require.Equal(t, int64(4000), totals[0].TotalCents)
	require.Equal(t, domain.CategoryFood, totals[1].Category)
	require.Equal(t, int64(3500), totals[1].TotalCents)
}
