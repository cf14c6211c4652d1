package report

import (
	"errors"
	"testing"

	"plantoes/internal/core"
)

func TestCurrencyFormatterFormat(t *testing.T) {
	f := NewCurrencyFormatter()
	cases := []struct {
		cents int64
		want  string
	}{
		{0, "0,00"},
		{1, "0,01"},
		{60000, "600,00"},
		{110000, "1.100,00"},
		{960000, "9.600,00"},
		{1010000, "10.100,00"},
		{123456789, "1.234.567,89"},
	}
	for _, tc := range cases {
		got, err := f.Format(core.Money{Cents: tc.cents})
		if err != nil {
			t.Fatalf("Format(%d) error: %v", tc.cents, err)
		}
		if got != tc.want {
			t.Fatalf("Format(%d) = %q, want %q", tc.cents, got, tc.want)
		}
	}
}

func TestCurrencyFormatterRejectsNegative(t *testing.T) {
	f := NewCurrencyFormatter()
	if _, err := f.Format(core.Money{Cents: -100}); !errors.Is(err, core.ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}
}
