package types

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/notecalc/notecalc/units"
)

func TestCompositeString(t *testing.T) {
	c := NewComposite(
		NewQuantity(decimal.NewFromInt(5), units.Single("ft")),
		NewQuantity(decimal.NewFromInt(7), units.Single("in")),
	)
	if c.String() != "5 ft 7 in" {
		t.Errorf("expected '5 ft 7 in', got '%s'", c.String())
	}
}

func TestCompositeEqual(t *testing.T) {
	a := NewComposite(NewQuantity(decimal.NewFromInt(5), units.Single("ft")))
	b := NewComposite(NewQuantity(decimal.NewFromInt(5), units.Single("ft")))
	if !a.Equal(b) {
		t.Error("expected equal composites to compare equal")
	}
}

func TestPercentageString(t *testing.T) {
	p := NewPercentage(decimal.NewFromFloat(0.05), false)
	if p.String() != "5%" {
		t.Errorf("expected '5%%', got '%s'", p.String())
	}
}

func TestPercentagePermille(t *testing.T) {
	p := NewPercentage(decimal.NewFromFloat(0.005), true)
	if p.String() != "5‰" {
		t.Errorf("expected '5‰', got '%s'", p.String())
	}
}
