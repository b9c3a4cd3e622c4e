package common

import (
	"math"
	"testing"
)

func TestFormatMoney(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "$0.00"},
		{2000, "$2,000.00"},
		{1234567.891, "$1,234,567.89"},
		{-45.5, "-$45.50"},
		{0.005, "$0.01"},
		{999.999, "$1,000.00"},
	}
	for _, c := range cases {
		if got := FormatMoney(c.in); got != c.want {
			t.Errorf("FormatMoney(%v) = %s, want %s", c.in, got, c.want)
		}
	}
}

func TestFormatMoney_NonFinite(t *testing.T) {
	if got := FormatMoney(math.NaN()); got != "$0.00" {
		t.Errorf("FormatMoney(NaN) = %s, want $0.00", got)
	}
	if got := FormatMoney(math.Inf(1)); got != "$0.00" {
		t.Errorf("FormatMoney(+Inf) = %s, want $0.00", got)
	}
}

func TestFormatSignedMoney(t *testing.T) {
	if got := FormatSignedMoney(500); got != "+$500.00" {
		t.Errorf("expected +$500.00, got %s", got)
	}
	if got := FormatSignedMoney(-12.34); got != "-$12.34" {
		t.Errorf("expected -$12.34, got %s", got)
	}
	// Zero takes the positive prefix
	if got := FormatSignedMoney(0); got != "+$0.00" {
		t.Errorf("expected +$0.00, got %s", got)
	}
}

func TestFormatSignedPct(t *testing.T) {
	if got := FormatSignedPct(2.5); got != "+2.50%" {
		t.Errorf("expected +2.50%%, got %s", got)
	}
	if got := FormatSignedPct(-1.2); got != "-1.20%" {
		t.Errorf("expected -1.20%%, got %s", got)
	}
	if got := FormatSignedPct(0); got != "+0.00%" {
		t.Errorf("expected +0.00%%, got %s", got)
	}
}
