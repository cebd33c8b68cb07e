package types

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/notecalc/notecalc/units"
)

func TestQuantityString(t *testing.T) {
	q := NewQuantity(decimal.NewFromInt(5), units.Single("km"))
	if q.String() != "5 km" {
		t.Errorf("expected '5 km', got '%s'", q.String())
	}
}

func TestQuantityEqualAcrossUnits(t *testing.T) {
	a := NewQuantity(decimal.NewFromInt(1), units.Single("km"))
	b := NewQuantity(decimal.NewFromInt(1000), units.Single("m"))
	if !a.Equal(b) {
		t.Errorf("expected 1 km to equal 1000 m")
	}
}

func TestQuantityNotEqualDifferentDimension(t *testing.T) {
	a := NewQuantity(decimal.NewFromInt(1), units.Single("km"))
	b := NewQuantity(decimal.NewFromInt(1), units.Single("kg"))
	if a.Equal(b) {
		t.Errorf("expected km and kg to be unequal")
	}
}

func TestQuantityConvertTo(t *testing.T) {
	q := NewQuantity(decimal.NewFromInt(1), units.Single("km"))
	converted, err := q.ConvertTo(units.Single("m"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !converted.Value.Equal(decimal.NewFromInt(1000)) {
		t.Errorf("expected 1000, got %v", converted.Value)
	}
}
