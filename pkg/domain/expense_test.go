package domain_test

import (
	"testing"
	"time"

	"ledger/pkg/domain"
)

func TestParseCents(t *testing.T) {
	cases := []struct {
		in  string
		out int64
		ok  bool
	}{
		{in: "12.34", out: 1234, ok: true},
		{in: "12.3", out: 1230, ok: true},
		{in: "12", out: 1200, ok: true},
		{in: "0.05", out: 5, ok: true},
		{in: "0", out: 0, ok: true},
		{in: "-3.50", out: -350, ok: true},
		{in: "92233720368547757.99", out: 9223372036854775799, ok: true},
		{in: "1.234", ok: false},
		// would overflow int64 cents and wrap to a wrong positive value
		{in: "184467440737095516.16", ok: false},
		{in: "92233720368547758.07", ok: false},
		{in: "99999999999999999999", ok: false},
		{in: "1.2.3", ok: false},
		{in: "", ok: false},
		{in: ".", ok: false},
		{in: "12.", ok: false},
		{in: "abc", ok: false},
		{in: "12.ab", ok: false},
	}

	for _, tc := range cases {
		got, err := domain.ParseCents(tc.in)
		if tc.ok {
			if err != nil {
				t.Errorf("%q: unexpected error: %v", tc.in, err)
				continue
			}
			if got != tc.out {
				t.Errorf("%q: got %d, want %d", tc.in, got, tc.out)
			}
		} else if err == nil {
			t.Errorf("%q: expected error, got %d", tc.in, got)
		}
	}
}

func TestFormatCents(t *testing.T) {
	cases := []struct {
		in  int64
		out string
	}{
		{in: 1234, out: "12.34"},
		{in: 1230, out: "12.30"},
		{in: 5, out: "0.05"},
		{in: 0, out: "0.00"},
		{in: -350, out: "-3.50"},
		{in: 100, out: "1.00"},
	}

	for _, tc := range cases {
		if got := domain.FormatCents(tc.in); got != tc.out {
			t.Errorf("%d: got %q, want %q", tc.in, got, tc.out)
		}
	}
}

func TestFormatParseRoundTrip(t *testing.T) {
	for _, cents := range []int64{0, 1, 99, 100, 12345, 1000000} {
		got, err := domain.ParseCents(domain.FormatCents(cents))
		if err != nil {
			t.Fatalf("%d: unexpected error: %v", cents, err)
		}
		if got != cents {
			t.Errorf("%d: round trip produced %d", cents, got)
		}
	}
}

func TestMonthOf(t *testing.T) {
	in := time.Date(2026, 8, 31, 23, 59, 59, 0, time.FixedZone("X", -5*3600))
	want := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	if got := domain.MonthOf(in); !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestCategoryValid(t *testing.T) {
	for _, c := range domain.Categories() {
		if !c.Valid() {
			t.Errorf("%s: expected valid", c)
		}
	}
	if domain.Category("Gambling").Valid() {
		t.Errorf("unknown category reported valid")
	}
}
