package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"ledger/internal/config"
	"ledger/pkg/domain"
	"ledger/pkg/serrors"
	"ledger/pkg/storage"
)

// Options configure listing page sizes and how rollup jobs are enqueued.
// These settings are typically derived from application configuration.
type Options struct {
	// DefaultPageSize is the page size used when the caller does not ask for one.
	DefaultPageSize uint
	// MaxPageSize caps the page size a caller may ask for.
	MaxPageSize uint
	// RollupMaxAttempts is the maximum number of attempts the background worker
	// should make when recomputing a monthly rollup before marking it failed.
	RollupMaxAttempts int
	// RollupDebouncePeriod is the window during which repeated writes to the
	// same user and month reuse the already queued rollup job instead of
	// enqueueing a duplicate.
	RollupDebouncePeriod time.Duration
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		DefaultPageSize:      cfg.Ledger.DefaultPageSize,
		MaxPageSize:          cfg.Ledger.MaxPageSize,
		RollupMaxAttempts:    cfg.Ledger.RollupMaxAttempts,
		RollupDebouncePeriod: cfg.Ledger.RollupDebouncePeriod,
	}
}

// ledger is the concrete implementation of the Ledger interface.
// It coordinates persistence with the storage layer and rollup job enqueueing.
type ledger struct {
	// options holds runtime configuration that affects paging and job enqueueing.
	options Options
	// storage is the persistence layer used to store expenses and manage jobs.
	storage storage.Storage
	// validate checks structural constraints on caller-provided input.
	validate *validator.Validate
}

// Record stores a new expense for the given user and enqueues a background
// job to recompute the monthly rollup of the affected month. Both happen in
// one transaction so a stored expense always has a rollup recomputation
// queued behind it.
func (l ledger) Record(ctx context.Context, userID domain.UserID, input NewExpense) (*domain.Expense, error) {
	if err := l.validate.Struct(input); err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid expense")
	}
	if !input.Category.Valid() {
		return nil, serrors.With(serrors.ErrBadRequest, "unknown category %q", input.Category)
	}

	// store dates at day precision in UTC so range queries and rollup keys
	// are independent of the caller's timezone.
	date := time.Date(input.Date.Year(), input.Date.Month(), input.Date.Day(), 0, 0, 0, 0, time.UTC)

	var expense *domain.Expense
	if err := l.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		res, err := tx.StoreExpense(ctx, domain.Expense{
			UserID:      userID,
			Date:        date,
			AmountCents: input.AmountCents,
			Category:    input.Category,
			Subcategory: input.Subcategory,
			Note:        input.Note,
		})
		if err != nil {
			return fmt.Errorf("could not store expense: %w", err)
		}
		expense = res

		// a skipped insert means a rollup for this month is already queued,
		// which is fine: it runs after this transaction commits and will see
		// the new row.
		if _, err := tx.AddJob(ctx, l.rollupJob(userID, date), nil); err != nil {
			return fmt.Errorf("could not add rollup job: %w", err)
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not record expense: %w", err)
	}

	return expense, nil
}

// Expenses returns a page of the user's expenses, newest first, optionally
// restricted to a date range. It supports cursor-based pagination using an
// opaque token and returns the next token when more results are available.
func (l ledger) Expenses(ctx context.Context,
	userID domain.UserID,
	filter ExpenseFilter) ([]domain.Expense, string, error) {
	if !filter.From.IsZero() && !filter.To.IsZero() && filter.To.Before(filter.From) {
		return nil, "", serrors.With(serrors.ErrBadRequest, "date range end precedes start")
	}

	var cursor storage.ExpenseCursor
	if filter.Cursor != "" {
		c, err := DecodeCursor(filter.Cursor)
		if err != nil {
			return nil, "", serrors.Wrap(serrors.ErrBadRequest, err, "invalid cursor")
		}
		cursor = c
	}

	limit := filter.Limit
	if limit == 0 {
		limit = l.options.DefaultPageSize
	}
	if limit > l.options.MaxPageSize {
		limit = l.options.MaxPageSize
	}

	page, err := l.storage.UserExpenses(ctx, userID, filter.From, filter.To, cursor, limit)
	if err != nil {
		return nil, "", fmt.Errorf("could not get user expenses: %w", err)
	}

	var next string
	if page.NextCursor != nil {
		next = EncodeCursor(*page.NextCursor)
	}

	return page.Expenses, next, nil
}

// Expense fetches a single expense by ID for the given user. It returns a
// not-found error when no matching expense exists.
func (l ledger) Expense(ctx context.Context,
	userID domain.UserID,
	expenseID domain.ExpenseID) (*domain.Expense, error) {
	res, err := l.storage.ExpenseByID(ctx, userID, expenseID)
	if err != nil {
		return nil, fmt.Errorf("could not get expense: %w", err)
	}
	if res == nil {
		return nil, serrors.With(serrors.ErrNotFound, "expense not found")
	}

	return res, nil
}

// Delete soft-deletes an expense belonging to the given user and enqueues a
// rollup recomputation for the month the expense was in. If the expense does
// not exist, a not-found error is returned.
func (l ledger) Delete(ctx context.Context, userID domain.UserID, expenseID domain.ExpenseID) error {
	if err := l.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		res, err := tx.DeleteExpense(ctx, userID, expenseID)
		if err != nil {
			return fmt.Errorf("could not delete expense: %w", err)
		}
		if res == nil {
			return serrors.With(serrors.ErrNotFound, "expense not found")
		}

		if _, err := tx.AddJob(ctx, l.rollupJob(userID, res.Date), nil); err != nil {
			return fmt.Errorf("could not add rollup job: %w", err)
		}

		return nil
	}); err != nil {
		return fmt.Errorf("could not delete expense: %w", err)
	}

	return nil
}

// Categories returns the fixed list of categories an expense may be filed under.
func (l ledger) Categories() []domain.Category {
	return domain.Categories()
}

// Summary computes the user's per-category spending over the given date range
// directly from the expense rows. Zero bounds leave that end of the range open.
func (l ledger) Summary(ctx context.Context, userID domain.UserID, from, to time.Time) (*Summary, error) {
	if !from.IsZero() && !to.IsZero() && to.Before(from) {
		return nil, serrors.With(serrors.ErrBadRequest, "date range end precedes start")
	}

	totals, err := l.storage.CategoryTotals(ctx, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("could not get category totals: %w", err)
	}

	summary := Summary{From: from, To: to, Totals: totals}
	for _, t := range totals {
		summary.TotalCents += t.TotalCents
	}

	return &summary, nil
}

// Report returns the precomputed monthly rollup for the given user and month.
// It returns a not-found error when the month has never been rolled up, which
// happens when the user has no expenses in it.
func (l ledger) Report(ctx context.Context,
	userID domain.UserID,
	month time.Time) (*domain.MonthlyRollup, error) {
	res, err := l.storage.RollupByMonth(ctx, userID, domain.MonthOf(month))
	if err != nil {
		return nil, fmt.Errorf("could not get rollup: %w", err)
	}
	if res == nil {
		return nil, serrors.With(serrors.ErrNotFound, "no report for month")
	}

	return res, nil
}

func (l ledger) rollupJob(userID domain.UserID, date time.Time) RollupJobArgs {
	return RollupJobArgs{
		UserID:         userID,
		Month:          domain.MonthOf(date),
		maxAttempts:    l.options.RollupMaxAttempts,
		debouncePeriod: l.options.RollupDebouncePeriod,
	}
}

// New creates a new Ledger instance backed by the provided storage and
// configured with the given options.
func New(storage storage.Storage, options Options) Ledger {
	return &ledger{
		options:  options,
		storage:  storage,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}
