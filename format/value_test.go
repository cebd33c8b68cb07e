package format_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/notecalc/notecalc/evaluator"
	"github.com/notecalc/notecalc/format"
	"github.com/notecalc/notecalc/types"
	"github.com/notecalc/notecalc/units"
)

func renderQuantity(t *testing.T, value decimal.Decimal, unit units.Composition, s format.Settings) string {
	t.Helper()
	out, err := format.Render(&evaluator.Result{Value: types.NewQuantity(value, unit)}, s)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	return out
}

func TestRenderAutoExponentialSmall(t *testing.T) {
	s := format.DefaultSettings()
	got := renderQuantity(t, decimal.New(1, -12), units.Single("g"), s)
	if got != "1e-12 g" {
		t.Errorf("got %q, want %q", got, "1e-12 g")
	}
}

func TestRenderAutoExponentialLarge(t *testing.T) {
	s := format.DefaultSettings()
	got := renderQuantity(t, decimal.New(1, 15), units.Single("g"), s)
	if got != "1e+15 g" {
		t.Errorf("got %q, want %q", got, "1e+15 g")
	}
}

func TestRenderAutoNoExponentialNearOne(t *testing.T) {
	s := format.DefaultSettings()
	got := renderQuantity(t, decimal.NewFromFloat(170.18), units.Single("cm"), s)
	if got != "170.18 cm" {
		t.Errorf("got %q, want %q", got, "170.18 cm")
	}
}

func TestRenderAutoFixedPrecisionNeverExponential(t *testing.T) {
	s := format.DefaultSettings()
	s.Precision = 2
	got := renderQuantity(t, decimal.New(1, 15), units.Single("g"), s)
	if got == "1e+15 g" {
		t.Fatal("a fixed precision setting must never switch to exponential notation")
	}
}

func TestRenderCurrencyRateMinorUnits(t *testing.T) {
	s := format.DefaultSettings()
	unit := units.Divide(units.Single("USD"), units.Multiply(units.Single("person"), units.Single("day")))
	got := renderQuantity(t, decimal.NewFromInt(1), unit, s)
	if got != "1.00 USD/(person day)" {
		t.Errorf("got %q, want %q", got, "1.00 USD/(person day)")
	}
}

func TestRenderSingleRatePerPerson(t *testing.T) {
	s := format.DefaultSettings()
	unit := units.Divide(units.Single("kg"), units.Single("person"))
	got := renderQuantity(t, decimal.NewFromInt(1), unit, s)
	if got != "1 kg/person" {
		t.Errorf("got %q, want %q", got, "1 kg/person")
	}
}
