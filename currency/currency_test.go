package currency_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/notecalc/notecalc/currency"
)

func TestValidateCode(t *testing.T) {
	cases := map[string]bool{
		"USD": true,
		"EUR": true,
		"JPY": true,
		"XXX": false, // no live currency, explicitly excluded
		"XAU": false, // gold, not a tradable currency code
		"usd": false, // must be uppercase
		"US":  false, // wrong length
	}
	for code, want := range cases {
		if got := currency.ValidateCode(code); got != want {
			t.Errorf("ValidateCode(%q) = %v, want %v", code, got, want)
		}
	}
}

func TestMinorUnits(t *testing.T) {
	cases := map[string]int{
		"USD": 2,
		"EUR": 2,
		"JPY": 0,
		"KWD": 3,
	}
	for code, want := range cases {
		if got := currency.MinorUnits(code); got != want {
			t.Errorf("MinorUnits(%q) = %d, want %d", code, got, want)
		}
	}
}

func TestAmbiguousDollarSymbol(t *testing.T) {
	if !currency.IsAmbiguous("$") {
		t.Fatal("$ should be reported as ambiguous across multiple live currencies")
	}
	if currency.IsAmbiguous("€") {
		t.Fatal("€ is unambiguous and should not be reported as ambiguous")
	}
	candidates := currency.CandidateCodes("$")
	if len(candidates) < 2 {
		t.Fatalf("expected multiple candidate codes for $, got %v", candidates)
	}
}

func TestSyntheticCodeStable(t *testing.T) {
	a := currency.SyntheticCode("$")
	b := currency.SyntheticCode("$")
	if a != b {
		t.Fatalf("SyntheticCode must be stable across calls, got %q and %q", a, b)
	}
	if a == currency.SyntheticCode("£") {
		t.Fatal("different symbols must map to different synthetic codes")
	}
}

func TestRatesConvertThroughPivot(t *testing.T) {
	rates := currency.NewRates("USD", "2026-01-01", map[string]decimal.Decimal{
		"USD": decimal.NewFromInt(1),
		"EUR": decimal.NewFromFloat(0.92),
		"GBP": decimal.NewFromFloat(0.78),
	})

	got, err := rates.Convert(decimal.NewFromInt(100), "USD", "EUR")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Equal(decimal.NewFromFloat(92)) {
		t.Fatalf("100 USD to EUR: got %s, want 92", got)
	}

	_, err = rates.Convert(decimal.NewFromInt(100), "EUR", "GBP")
	if err != nil {
		t.Fatalf("unexpected error converting through pivot: %v", err)
	}
}

func TestRatesConvertUnknownCode(t *testing.T) {
	rates := currency.NewRates("USD", "2026-01-01", map[string]decimal.Decimal{
		"USD": decimal.NewFromInt(1),
	})
	if _, err := rates.Convert(decimal.NewFromInt(1), "USD", "ZZZ"); err == nil {
		t.Fatal("expected an error for a currency with no loaded rate")
	}
}
