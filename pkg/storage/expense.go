package storage

import (
	"context"
	"ledger/pkg/domain"
	"time"
)

// ExpenseCursor identifies a position within the (expense_date DESC, id DESC)
// listing order. The zero value means "start from the newest expense".
type ExpenseCursor struct {
	// Date is the expense date of the last row of the previous page.
	Date time.Time
	// ID is the expense ID of the last row of the previous page, used to break
	// ties between expenses on the same date.
	ID domain.ExpenseID
}

// IsZero reports whether the cursor points at the start of the listing.
func (c ExpenseCursor) IsZero() bool {
	return c.Date.IsZero()
}

// ExpensePage groups a page of expenses returned for a user together with an
// optional NextCursor used for pagination.
type ExpensePage struct {
	// Expenses contains the current page of expense records.
	Expenses []domain.Expense
	// NextCursor points at the last row of this page and is passed back to
	// fetch the next one. It is nil when there is no next page.
	NextCursor *ExpenseCursor
}

// ExpenseStorage defines CRUD and query operations related to expenses. All
// operations are scoped by user and exclude soft-deleted rows.
type ExpenseStorage interface {
	// StoreExpense inserts a new expense and returns the stored row as it
	// exists in the database (including generated fields).
	StoreExpense(ctx context.Context, expense domain.Expense) (*domain.Expense, error)
	// ExpenseByID fetches an expense by its ID for the given user. Returns nil
	// when not found.
	ExpenseByID(ctx context.Context, userID domain.UserID, id domain.ExpenseID) (*domain.Expense, error)
	// UserExpenses returns a page of the user's expenses with dates between
	// from and to (inclusive on both ends; a zero bound disables that end),
	// ordered by expense_date DESC then id DESC, starting after the optional
	// cursor and limited by limit.
	UserExpenses(ctx context.Context,
		userID domain.UserID,
		from, to time.Time,
		cursor ExpenseCursor,
		limit uint) (ExpensePage, error)
	// DeleteExpense performs a soft delete for the given expense ID and user ID
	// and returns the deleted expense, or nil if it was not found.
	DeleteExpense(ctx context.Context, userID domain.UserID, id domain.ExpenseID) (*domain.Expense, error)
	// CategoryTotals returns the sum of the user's expense amounts per category
	// for dates between from and to (inclusive), ordered by total descending.
	CategoryTotals(ctx context.Context,
		userID domain.UserID,
		from, to time.Time) ([]domain.CategoryTotal, error)
}
