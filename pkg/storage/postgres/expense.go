package postgres

import (
	"context"
	"fmt"
	"ledger/pkg/domain"
	"ledger/pkg/storage"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	expensesTable = "expenses"
)

func (p *PgSQL) StoreExpense(ctx context.Context, expense domain.Expense) (*domain.Expense, error) {
	var pgExpense PgExpense
	pgExpense.FromDomain(expense)

	var row PgExpense
	found, err := p.Builder.Insert(expensesTable).
		Rows(pgExpense).
		Returning(&PgExpense{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not store expense into pg: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("insert returned no row")
	}

	return row.ToDomain(), nil
}

// ExpenseByID returns an expense by its ID, excluding soft-deleted rows.
func (p *PgSQL) ExpenseByID(ctx context.Context,
	userID domain.UserID,
	id domain.ExpenseID) (*domain.Expense, error) {
	var row PgExpense
	found, err := p.Builder.From(expensesTable).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("user_id").Eq(uuid.UUID(userID)),
			goqu.I("deleted_at").IsNull(),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch expense by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// UserExpenses returns a page of a user's expenses within the inclusive date
// range, ordered by expense_date DESC, id DESC. A zero from/to disables that
// bound. The cursor continues a previous listing; the returned NextCursor is
// nil on the last page.
func (p *PgSQL) UserExpenses(ctx context.Context,
	userID domain.UserID,
	from, to time.Time,
	cursor storage.ExpenseCursor,
	limit uint) (storage.ExpensePage, error) {
	w := []goqu.Expression{
		goqu.I("user_id").Eq(uuid.UUID(userID)),
		goqu.I("deleted_at").IsNull(),
	}
	if !from.IsZero() {
		w = append(w, goqu.I("expense_date").Gte(from))
	}
	if !to.IsZero() {
		w = append(w, goqu.I("expense_date").Lte(to))
	}
	if !cursor.IsZero() {
		// rows strictly after the cursor in (expense_date DESC, id DESC) order
		w = append(w, goqu.L("(expense_date, id) < (?, ?)", cursor.Date, uuid.UUID(cursor.ID)))
	}

	// fetch one extra to determine if there is a next page
	fetch := limit + 1
	ds := p.Builder.From(expensesTable).
		Where(w...).
		Order(goqu.I("expense_date").Desc(), goqu.I("id").Desc()).
		Limit(fetch)

	var rows []PgExpense
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.ExpensePage{}, fmt.Errorf("could not fetch user expenses from pg: %w", err)
	}

	// if we fetched more than the limit, there is a next page
	var nextCursor *storage.ExpenseCursor
	if uint(len(rows)) > limit {
		trimmed := rows[:limit]
		last := trimmed[len(trimmed)-1]
		nextCursor = &storage.ExpenseCursor{
			Date: last.Date.UTC(),
			ID:   domain.ExpenseID(last.ID),
		}
		rows = trimmed
	}

	return storage.ExpensePage{
		Expenses:   pgExpensesToDomain(rows),
		NextCursor: nextCursor,
	}, nil
}

// DeleteExpense performs a soft delete by setting deleted_at for a given
// expense id and user, returning the deleted record.
func (p *PgSQL) DeleteExpense(ctx context.Context,
	userID domain.UserID,
	id domain.ExpenseID) (*domain.Expense, error) {
	var row PgExpense
	found, err := p.Builder.Update(expensesTable).
		Set(goqu.Record{
			"deleted_at": goqu.L("CURRENT_TIMESTAMP"),
			"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		}).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("user_id").Eq(uuid.UUID(userID)),
		goqu.I("deleted_at").IsNull(),
	).Returning(&PgExpense{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not delete expense in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// CategoryTotals returns the user's per-category spending for the inclusive
// date range, ordered by total descending.
func (p *PgSQL) CategoryTotals(ctx context.Context,
	userID domain.UserID,
	from, to time.Time) ([]domain.CategoryTotal, error) {
	w := []goqu.Expression{
		goqu.I("user_id").Eq(uuid.UUID(userID)),
		goqu.I("deleted_at").IsNull(),
	}
	if !from.IsZero() {
		w = append(w, goqu.I("expense_date").Gte(from))
	}
	if !to.IsZero() {
		w = append(w, goqu.I("expense_date").Lte(to))
	}

	var rows []PgCategoryTotal
	err := p.Builder.From(expensesTable).
		Select(goqu.I("category"), goqu.SUM(goqu.I("amount_cents")).As("total_cents")).
		Where(w...).
		GroupBy(goqu.I("category")).
		Order(goqu.I("total_cents").Desc()).
		Executor().ScanStructsContext(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("could not fetch category totals from pg: %w", err)
	}

	return pgCategoryTotalsToDomain(rows), nil
}
