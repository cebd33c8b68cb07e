package types

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestNewDurationUnknownUnit(t *testing.T) {
	if _, err := NewDuration(decimal.NewFromInt(5), "fortnight"); err == nil {
		t.Error("expected error for unknown duration unit")
	}
}

func TestDurationToSeconds(t *testing.T) {
	d, err := NewDuration(decimal.NewFromInt(2), "hours")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !d.ToSeconds().Equal(decimal.NewFromInt(7200)) {
		t.Errorf("expected 7200 seconds, got %v", d.ToSeconds())
	}
}

func TestDurationConvert(t *testing.T) {
	d, _ := NewDuration(decimal.NewFromInt(90), "minutes")
	converted, err := d.Convert("hours")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !converted.Value.Equal(decimal.NewFromFloat(1.5)) {
		t.Errorf("expected 1.5 hours, got %v", converted.Value)
	}
}

func TestDurationEqual(t *testing.T) {
	a, _ := NewDuration(decimal.NewFromInt(1), "hour")
	b, _ := NewDuration(decimal.NewFromInt(60), "minutes")
	if !a.Equal(b) {
		t.Error("expected 1 hour to equal 60 minutes")
	}
}
