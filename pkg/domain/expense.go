package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ExpenseID uniquely identifies a recorded expense.
// It wraps uuid.UUID to provide type safety at the domain layer.
type ExpenseID uuid.UUID

// Category classifies an expense. The set of valid categories is fixed
// server-side; see Categories.
type Category string

const (
	CategoryFood           Category = "Food"
	CategoryTransportation Category = "Transportation"
	CategoryUtilities      Category = "Utilities"
	CategoryPersonalCare   Category = "Personal Care"
	CategoryEntertainment  Category = "Entertainment"
	CategoryHealth         Category = "Health"
	CategoryOther          Category = "Other"
)

// Categories returns the list of categories an expense may be filed under,
// in display order.
func Categories() []Category {
	return []Category{
		CategoryFood,
		CategoryTransportation,
		CategoryUtilities,
		CategoryPersonalCare,
		CategoryEntertainment,
		CategoryHealth,
		CategoryOther,
	}
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}

	return false
}

// DateLayout is the wire and storage format for expense dates (day precision).
const DateLayout = "2006-01-02"

// Expense represents a single recorded expense belonging to a user.
// Amounts are carried as integer cents end to end so they stay exact.
type Expense struct {
	// ID is the unique identifier of the expense.
	ID ExpenseID `json:"id"`
	// UserID is the identifier of the user who recorded the expense.
	UserID UserID `json:"userId"`

	// Date is the day the expense occurred (time component is always zero, UTC).
	Date time.Time `json:"date"`
	// AmountCents is the expense amount in cents. Always positive.
	AmountCents int64 `json:"amountCents"`
	// Category is the category the expense is filed under.
	Category Category `json:"category"`
	// Subcategory is an optional free-form refinement, e.g. "Uber" or "Groceries".
	Subcategory string `json:"subcategory,omitempty"`
	// Note holds optional free-form details about the expense.
	Note string `json:"note,omitempty"`

	// CreatedAt is the time when the expense was recorded.
	CreatedAt time.Time `json:"createdAt"`
	// UpdatedAt is the time when the expense was last modified.
	UpdatedAt time.Time `json:"updatedAt"`
	// DeletedAt marks when the expense was soft-deleted; zero value means not deleted.
	DeletedAt time.Time `json:"-"`
}

// FormatCents renders an amount in cents as a decimal string, e.g. 1234 -> "12.34".
func FormatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}

	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}

// ParseCents parses a decimal amount string like "12.34" into cents.
// At most two fraction digits are allowed so the value stays exact.
func ParseCents(s string) (int64, error) {
	whole, frac, hasFrac := strings.Cut(s, ".")
	if whole == "" || (hasFrac && frac == "") {
		return 0, fmt.Errorf("malformed amount %q", s)
	}

	neg := false
	if whole[0] == '-' {
		neg = true
		whole = whole[1:]
	}

	w, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("malformed amount %q: %w", s, err)
	}
	// w*100+f must stay within int64
	if w > (math.MaxInt64-99)/100 {
		return 0, fmt.Errorf("amount %q is out of range", s)
	}

	var f int64
	if hasFrac {
		if len(frac) > 2 {
			return 0, fmt.Errorf("amount %q has more than two fraction digits", s)
		}
		f, err = strconv.ParseInt(frac, 10, 64)
		if err != nil || f < 0 {
			return 0, fmt.Errorf("malformed amount %q", s)
		}
		if len(frac) == 1 {
			f *= 10
		}
	}

	cents := w*100 + f
	if neg {
		cents = -cents
	}

	return cents, nil
}

// CategoryTotal is a per-category sum of expense amounts over some range.
type CategoryTotal struct {
	Category   Category `json:"category"`
	TotalCents int64    `json:"totalCents"`
}
