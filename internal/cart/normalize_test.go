package cart

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
)

func TestNormalizePrice(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want string
	}{
		{name: "rupee with thousands separator", raw: "₹1,499.00", want: "1499.00"},
		{name: "plain number string", raw: "2199", want: "2199.00"},
		{name: "decimal string", raw: "99.50", want: "99.50"},
		{name: "currency code prefix", raw: "INR 2,499.00", want: "2499.00"},
		{name: "no digits", raw: "free", want: "0.00"},
		{name: "empty string", raw: "", want: "0.00"},
		{name: "only symbols", raw: "₹,.", want: "0.00"},
		{name: "multiple decimal points", raw: "1.499.00", want: "0.00"},
		{name: "negative sign stripped", raw: "-42", want: "42.00"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := NormalizePrice(tc.raw)
			if got.String() != tc.want {
				t.Fatalf("NormalizePrice(%q) = %s, want %s", tc.raw, got.String(), tc.want)
			}
		})
	}
}

func TestIDUnmarshalAcceptsNumberAndString(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{raw: `1`, want: "1"},
		{raw: `42`, want: "42"},
		{raw: `"sku-7"`, want: "sku-7"},
		{raw: `" 8 "`, want: "8"},
	}
	for _, tc := range cases {
		var id ID
		if err := json.Unmarshal([]byte(tc.raw), &id); err != nil {
			t.Fatalf("unmarshal id %s failed: %v", tc.raw, err)
		}
		if id.String() != tc.want {
			t.Fatalf("id %s = %q, want %q", tc.raw, id.String(), tc.want)
		}
	}
}

func TestIDNumericID(t *testing.T) {
	var id ID = "42"
	n, ok := id.NumericID()
	if !ok || n != 42 {
		t.Fatalf("expected numeric id 42, got %d ok=%v", n, ok)
	}
	id = "sku-7"
	if _, ok := id.NumericID(); ok {
		t.Fatalf("expected non-numeric id to fail")
	}
}

func TestPriceInputUnmarshal(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want int64
	}{
		{name: "number", raw: `1299`, want: 1299},
		{name: "formatted string", raw: `"₹1,499.00"`, want: 1499},
		{name: "garbage string", raw: `"n/a"`, want: 0},
		{name: "negative number clamps to zero", raw: `-5`, want: 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var p PriceInput
			if err := json.Unmarshal([]byte(tc.raw), &p); err != nil {
				t.Fatalf("unmarshal price %s failed: %v", tc.raw, err)
			}
			if !p.Equal(decimal.NewFromInt(tc.want)) {
				t.Fatalf("price %s = %s, want %d", tc.raw, p.String(), tc.want)
			}
		})
	}
}

func TestItemSubtotal(t *testing.T) {
	item := Item{Price: NormalizePrice("₹1,499.00"), Quantity: 3}
	if !item.Subtotal().Equal(decimal.NewFromInt(4497)) {
		t.Fatalf("expected subtotal 4497, got %s", item.Subtotal().String())
	}
}
