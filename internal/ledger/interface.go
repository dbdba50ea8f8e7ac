package ledger

import (
	"context"
	"time"

	"ledger/pkg/domain"
)

// NewExpense carries the caller-provided fields for recording an expense.
type NewExpense struct {
	// Date is the day the expense occurred.
	Date time.Time `validate:"required"`
	// AmountCents is the expense amount in cents. Must be positive.
	AmountCents int64 `validate:"required,gt=0"`
	// Category must be one of the known expense categories.
	Category domain.Category `validate:"required"`
	// Subcategory is an optional free-form refinement of the category.
	Subcategory string `validate:"max=100"`
	// Note is an optional free-form description.
	Note string `validate:"max=500"`
}

// ExpenseFilter narrows and pages an expense listing.
type ExpenseFilter struct {
	// From, when non-zero, excludes expenses dated before it.
	From time.Time
	// To, when non-zero, excludes expenses dated after it.
	To time.Time
	// Cursor is an opaque pagination token from a previous page.
	Cursor string
	// Limit caps the page size. Zero means the configured default.
	Limit uint
}

// Summary aggregates a user's spending per category over a date range.
type Summary struct {
	// From and To echo the range the summary covers. Zero values mean unbounded.
	From time.Time
	To   time.Time
	// Totals holds per-category sums ordered from largest to smallest.
	Totals []domain.CategoryTotal
	// TotalCents is the sum across all categories.
	TotalCents int64
}

//go:generate mockgen -package mockledger -source=interface.go -destination=mock/mockledger.go *
type Ledger interface {
	Record(ctx context.Context, userID domain.UserID, input NewExpense) (*domain.Expense, error)
	Expenses(ctx context.Context, userID domain.UserID, filter ExpenseFilter) ([]domain.Expense, string, error)
	Expense(ctx context.Context, userID domain.UserID, expenseID domain.ExpenseID) (*domain.Expense, error)
	Delete(ctx context.Context, userID domain.UserID, expenseID domain.ExpenseID) error
	Categories() []domain.Category
	Summary(ctx context.Context, userID domain.UserID, from, to time.Time) (*Summary, error)
	Report(ctx context.Context, userID domain.UserID, month time.Time) (*domain.MonthlyRollup, error)
}
