package postgres

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"ledger/pkg/domain"
	"time"

	"github.com/google/uuid"
)

type PgExpense struct {
	ID     uuid.UUID `db:"id"      goqu:"skipinsert"`
	UserID uuid.UUID `db:"user_id"`

	Date        time.Time `db:"expense_date"`
	AmountCents int64     `db:"amount_cents"`
	Category    string    `db:"category"`
	Subcategory string    `db:"subcategory"`
	Note        string    `db:"note"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
	DeletedAt sql.NullTime `db:"deleted_at" goqu:"skipinsert"`
}

func (p *PgExpense) ToDomain() *domain.Expense {
	return &domain.Expense{
		ID:          domain.ExpenseID(p.ID),
		UserID:      domain.UserID(p.UserID),
		Date:        p.Date.UTC(),
		AmountCents: p.AmountCents,
		Category:    domain.Category(p.Category),
		Subcategory: p.Subcategory,
		Note:        p.Note,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt.Time,
		DeletedAt:   p.DeletedAt.Time,
	}
}

func (p *PgExpense) FromDomain(expense domain.Expense) {
	*p = PgExpense{
		ID:          uuid.UUID(expense.ID),
		UserID:      uuid.UUID(expense.UserID),
		Date:        expense.Date,
		AmountCents: expense.AmountCents,
		Category:    string(expense.Category),
		Subcategory: expense.Subcategory,
		Note:        expense.Note,
		CreatedAt:   expense.CreatedAt,
		UpdatedAt: sql.NullTime{
			Time:  expense.UpdatedAt,
			Valid: !expense.UpdatedAt.IsZero(),
		},
		DeletedAt: sql.NullTime{
			Time:  expense.DeletedAt,
			Valid: !expense.DeletedAt.IsZero(),
		},
	}
}

func pgExpensesToDomain(expenses []PgExpense) []domain.Expense {
	out := make([]domain.Expense, 0, len(expenses))
	for i := range expenses {
		out = append(out, *expenses[i].ToDomain())
	}

	return out
}

type PgCategoryTotal struct {
	Category   string `db:"category"`
	TotalCents int64  `db:"total_cents"`
}

func pgCategoryTotalsToDomain(totals []PgCategoryTotal) []domain.CategoryTotal {
	out := make([]domain.CategoryTotal, 0, len(totals))
	for _, t := range totals {
		out = append(out, domain.CategoryTotal{
			Category:   domain.Category(t.Category),
			TotalCents: t.TotalCents,
		})
	}

	return out
}

type PgRollup struct {
	ID     uuid.UUID `db:"id" goqu:"skipinsert"`
	UserID uuid.UUID `db:"user_id"`

	Month          time.Time       `db:"month"`
	CategoryTotals json.RawMessage `db:"category_totals"`
	TotalCents     int64           `db:"total_cents"`

	ComputedAt time.Time `db:"computed_at"`
}

func (p *PgRollup) ToDomain() (*domain.MonthlyRollup, error) {
	var totals []domain.CategoryTotal
	if err := json.Unmarshal(p.CategoryTotals, &totals); err != nil {
		return nil, fmt.Errorf("could not unmarshal rollup totals: %w", err)
	}

	return &domain.MonthlyRollup{
		ID:             domain.RollupID(p.ID),
		UserID:         domain.UserID(p.UserID),
		Month:          domain.MonthOf(p.Month),
		CategoryTotals: totals,
		TotalCents:     p.TotalCents,
		ComputedAt:     p.ComputedAt,
	}, nil
}

func (p *PgRollup) FromDomain(rollup domain.MonthlyRollup) error {
	totals := rollup.CategoryTotals
	if totals == nil {
		totals = []domain.CategoryTotal{}
	}
	b, err := json.Marshal(totals)
	if err != nil {
		return fmt.Errorf("could not marshal rollup totals: %w", err)
	}

	*p = PgRollup{
		ID:             uuid.UUID(rollup.ID),
		UserID:         uuid.UUID(rollup.UserID),
		Month:          domain.MonthOf(rollup.Month),
		CategoryTotals: b,
		TotalCents:     rollup.TotalCents,
		ComputedAt:     rollup.ComputedAt,
	}

	return nil
}
