package v1handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"ledger/internal/ledger"
	"ledger/pkg/domain"
	"ledger/pkg/serrors"
)

// Expense is the wire representation of a recorded expense. Amounts are
// carried both as a decimal string and as integer cents.
type Expense struct {
	ID          string    `json:"id"`
	Date        string    `json:"date"`
	Amount      string    `json:"amount"`
	AmountCents int64     `json:"amountCents"`
	Category    string    `json:"category"`
	Subcategory string    `json:"subcategory,omitempty"`
	Note        string    `json:"note,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CategoryTotal is the wire representation of a per-category sum.
type CategoryTotal struct {
	Category   string `json:"category"`
	Total      string `json:"total"`
	TotalCents int64  `json:"totalCents"`
}

// CreateExpenseRequest is the body of POST /v1/expenses.
type CreateExpenseRequest struct {
	Date        string `json:"date"`
	Amount      string `json:"amount"`
	Category    string `json:"category"`
	Subcategory string `json:"subcategory"`
	Note        string `json:"note"`
}

// ExpenseList is the body of GET /v1/expenses.
type ExpenseList struct {
	Items      []Expense `json:"items"`
	NextCursor string    `json:"nextCursor,omitempty"`
}

// SummaryResponse is the body of GET /v1/summary.
type SummaryResponse struct {
	From       string          `json:"from,omitempty"`
	To         string          `json:"to,omitempty"`
	Total      string          `json:"total"`
	TotalCents int64           `json:"totalCents"`
	Categories []CategoryTotal `json:"categories"`
}

// ReportResponse is the body of GET /v1/reports/{month}.
type ReportResponse struct {
	Month      string          `json:"month"`
	Total      string          `json:"total"`
	TotalCents int64           `json:"totalCents"`
	Categories []CategoryTotal `json:"categories"`
	ComputedAt time.Time       `json:"computedAt"`
}

// CategoryList is the body of GET /v1/categories.
type CategoryList struct {
	Categories []string `json:"categories"`
}

func DomainExpenseToV1(in *domain.Expense) Expense {
	return Expense{
		ID:          uuid.UUID(in.ID).String(),
		Date:        in.Date.Format(domain.DateLayout),
		Amount:      domain.FormatCents(in.AmountCents),
		AmountCents: in.AmountCents,
		Category:    string(in.Category),
		Subcategory: in.Subcategory,
		Note:        in.Note,
		CreatedAt:   in.CreatedAt,
		UpdatedAt:   in.UpdatedAt,
	}
}

func domainTotalsToV1(in []domain.CategoryTotal) []CategoryTotal {
	out := make([]CategoryTotal, 0, len(in))
	for _, t := range in {
		out = append(out, CategoryTotal{
			Category:   string(t.Category),
			Total:      domain.FormatCents(t.TotalCents),
			TotalCents: t.TotalCents,
		})
	}

	return out
}

// dateParam parses an optional YYYY-MM-DD query parameter. A missing
// parameter yields a zero time.
func dateParam(r *http.Request, name string) (time.Time, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return time.Time{}, nil
	}

	t, err := time.Parse(domain.DateLayout, raw)
	if err != nil {
		return time.Time{}, serrors.Wrap(serrors.ErrBadRequest, err, "invalid %q date", name)
	}

	return t, nil
}

// ListCategories returns the fixed set of categories expenses may use.
func (h Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories := h.deps.Ledger.Categories()
	out := CategoryList{Categories: make([]string, 0, len(categories))}
	for _, c := range categories {
		out.Categories = append(out.Categories, string(c))
	}

	writeJSON(w, http.StatusOK, out)
}

// CreateExpense records a new expense from the provided request payload.
func (h Handler) CreateExpense(w http.ResponseWriter, r *http.Request) {
	var req CreateExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body"))

		return
	}

	date, err := time.Parse(domain.DateLayout, req.Date)
	if err != nil {
		writeError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "invalid date"))

		return
	}

	cents, err := domain.ParseCents(req.Amount)
	if err != nil {
		writeError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "invalid amount"))

		return
	}

	expense, err := h.deps.Ledger.Record(r.Context(), GetUserIDFromContext(r.Context()), ledger.NewExpense{
		Date:        date,
		AmountCents: cents,
		Category:    domain.Category(req.Category),
		Subcategory: req.Subcategory,
		Note:        req.Note,
	})
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusCreated, DomainExpenseToV1(expense))
}

// ListExpenses returns a paginated list of the user's expenses.
func (h Handler) ListExpenses(w http.ResponseWriter, r *http.Request) {
	from, err := dateParam(r, "from")
	if err != nil {
		writeError(w, r, err)

		return
	}
	to, err := dateParam(r, "to")
	if err != nil {
		writeError(w, r, err)

		return
	}

	var limit uint
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			writeError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "invalid limit"))

			return
		}
		limit = uint(parsed)
	}

	expenses, nextCursor, err := h.deps.Ledger.Expenses(r.Context(), GetUserIDFromContext(r.Context()),
		ledger.ExpenseFilter{
			From:   from,
			To:     to,
			Cursor: r.URL.Query().Get("cursor"),
			Limit:  limit,
		})
	if err != nil {
		writeError(w, r, err)

		return
	}

	out := ExpenseList{Items: make([]Expense, 0, len(expenses)), NextCursor: nextCursor}
	for i := range expenses {
		out.Items = append(out.Items, DomainExpenseToV1(&expenses[i]))
	}

	writeJSON(w, http.StatusOK, out)
}

// GetExpense returns details of an expense by ID.
func (h Handler) GetExpense(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "invalid expense ID"))

		return
	}

	expense, err := h.deps.Ledger.Expense(r.Context(), GetUserIDFromContext(r.Context()), domain.ExpenseID(id))
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, DomainExpenseToV1(expense))
}

// DeleteExpense deletes an expense by ID.
func (h Handler) DeleteExpense(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "invalid expense ID"))

		return
	}

	if err := h.deps.Ledger.Delete(r.Context(), GetUserIDFromContext(r.Context()), domain.ExpenseID(id)); err != nil {
		writeError(w, r, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetSummary returns per-category spending over an optional date range.
func (h Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	from, err := dateParam(r, "from")
	if err != nil {
		writeError(w, r, err)

		return
	}
	to, err := dateParam(r, "to")
	if err != nil {
		writeError(w, r, err)

		return
	}

	summary, err := h.deps.Ledger.Summary(r.Context(), GetUserIDFromContext(r.Context()), from, to)
	if err != nil {
		writeError(w, r, err)

		return
	}

	out := SummaryResponse{
		Total:      domain.FormatCents(summary.TotalCents),
		TotalCents: summary.TotalCents,
		Categories: domainTotalsToV1(summary.Totals),
	}
	if !summary.From.IsZero() {
		out.From = summary.From.Format(domain.DateLayout)
	}
	if !summary.To.IsZero() {
		out.To = summary.To.Format(domain.DateLayout)
	}

	writeJSON(w, http.StatusOK, out)
}

// GetReport returns the precomputed rollup for one calendar month.
func (h Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	month, err := time.Parse(domain.MonthLayout, r.PathValue("month"))
	if err != nil {
		writeError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "invalid month"))

		return
	}

	rollup, err := h.deps.Ledger.Report(r.Context(), GetUserIDFromContext(r.Context()), month)
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, ReportResponse{
		Month:      rollup.Month.Format(domain.MonthLayout),
		Total:      domain.FormatCents(rollup.TotalCents),
		TotalCents: rollup.TotalCents,
		Categories: domainTotalsToV1(rollup.CategoryTotals),
		ComputedAt: rollup.ComputedAt,
	})
}
