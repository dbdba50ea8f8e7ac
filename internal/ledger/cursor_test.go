package ledger_test

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"ledger/internal/ledger"
	"ledger/pkg/domain"
	"ledger/pkg/storage"
)

func TestCursorRoundTrip(t *testing.T) {
	in := storage.ExpenseCursor{
		Date: time.Date(2026, 8, 14, 0, 0, 0, 0, time.UTC),
		ID:   domain.ExpenseID(uuid.New()),
	}

	out, err := ledger.DecodeCursor(ledger.EncodeCursor(in))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.Date.Equal(in.Date) {
		t.Errorf("date: got %v, want %v", out.Date, in.Date)
	}
	if out.ID != in.ID {
		t.Errorf("id: got %v, want %v", out.ID, in.ID)
	}
}

func TestDecodeCursor_Invalid(t *testing.T) {
	cases := []struct {
		name  string
		token string
	}{
		{name: "not base64", token: "%%%"},
		{name: "missing separator", token: "MjAyNi0wOC0xNA"},
		{name: "bad date", token: "bm90LWEtZGF0ZS8xMjM"},
		{name: "bad uuid", token: "MjAyNi0wOC0xNC9ub3QtYS11dWlk"},
	}

	for _, tc := range cases {
		if _, err := ledger.DecodeCursor(tc.token); err == nil {
			t.Errorf("%s: expected error, got none", tc.name)
		}
	}
}
