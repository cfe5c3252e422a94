package service

import (
	"testing"

	"github.com/ikay-store/api/internal/models"

	"github.com/shopspring/decimal"
)

func TestFormatINRUsesIndianGrouping(t *testing.T) {
	cases := []struct {
		amount int64
		want   string
	}{
		{0, "₹0"},
		{799, "₹799"},
		{1499, "₹1,499"},
		{149999, "₹1,49,999"},
		{2599999, "₹25,99,999"},
	}
	for _, tc := range cases {
		got := FormatINR(models.NewMoneyFromDecimal(decimal.NewFromInt(tc.amount)))
		if got != tc.want {
			t.Fatalf("FormatINR(%d) = %q, want %q", tc.amount, got, tc.want)
		}
	}
}

func TestFormatINRDropsFractionDigits(t *testing.T) {
	amount := models.NewMoneyFromDecimal(decimal.RequireFromString("1499.00"))
	if got := FormatINR(amount); got != "₹1,499" {
		t.Fatalf("FormatINR(1499.00) = %q, want ₹1,499", got)
	}
}
