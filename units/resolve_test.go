package units_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/notecalc/notecalc/units"
)

func TestResolvePrefixGreediness(t *testing.T) {
	pg := units.Resolve("pg")
	if pg.Arbitrary || pg.Dimension != units.Resolve("g").Dimension {
		t.Fatalf("pg should resolve as a mass unit, got %#v", pg)
	}
	if got := pg.ToBase(decimal.NewFromInt(1)); !got.Equal(decimal.New(1, -15)) {
		t.Fatalf("1 pg should be 1e-15 kg, got %s", got)
	}

	peta := units.Resolve("Pg")
	if peta.Arbitrary {
		t.Fatalf("Pg should resolve as a mass unit, got %#v", peta)
	}
	got := peta.ToBase(decimal.NewFromInt(1))
	want := decimal.New(1, 12) // 1 Pg = 1e15 g = 1e12 kg
	if !got.Equal(want) {
		t.Fatalf("1 Pg should be 1e12 kg, got %s", got)
	}

	if pg.ToBase(decimal.NewFromInt(1)).Equal(peta.ToBase(decimal.NewFromInt(1))) {
		t.Fatal("Pg and pg must not resolve to the same base magnitude")
	}
}

func TestResolveMegasecondNotMillisecond(t *testing.T) {
	ms := units.Resolve("ms")
	Ms := units.Resolve("Ms")
	wantMs := decimal.New(1, -3)
	wantMS := decimal.New(1, 6)
	if got := ms.ToBase(decimal.NewFromInt(1)); !got.Equal(wantMs) {
		t.Fatalf("ms should be 1e-3 s, got %s", got)
	}
	if got := Ms.ToBase(decimal.NewFromInt(1)); !got.Equal(wantMS) {
		t.Fatalf("Ms should be 1e6 s (megasecond), got %s", got)
	}
}

func TestResolveArbitraryUnitFallback(t *testing.T) {
	r := units.Resolve("widgets")
	if !r.Arbitrary {
		t.Fatalf("expected an unknown identifier to resolve as arbitrary, got %#v", r)
	}
}

func TestCompositionSignatureEqual(t *testing.T) {
	a := units.Single("m")
	b := units.Divide(units.Multiply(units.Single("km"), units.Single("h")), units.Single("h"))
	if !a.Signature().Equal(b.Signature()) {
		t.Fatal("m and km*h/h should share the same length signature")
	}
}

func TestConvertDimensionMismatch(t *testing.T) {
	_, err := units.Convert(decimal.NewFromInt(60), units.Divide(units.Single("km"), units.Single("h")),
		units.Multiply(units.Single("m"), units.Single("s")))
	if err == nil {
		t.Fatal("expected a dimension mismatch error converting km/h to m*s")
	}
}

func TestConvertVolumeAnchoredToCubicMeters(t *testing.T) {
	cubicMeter := units.Pow(units.Single("m"), 3)
	liters := units.Single("l")
	got, err := units.Convert(decimal.NewFromInt(1), cubicMeter, liters)
	if err != nil {
		t.Fatalf("unexpected error converting m^3 to l: %v", err)
	}
	if !got.Equal(decimal.NewFromInt(1000)) {
		t.Fatalf("1 m^3 should be 1000 l, got %s", got)
	}
}

func TestConvertTemperatureAffine(t *testing.T) {
	got, err := units.Convert(decimal.NewFromInt(0), units.Single("C"), units.Single("F"))
	if err != nil {
		t.Fatalf("unexpected error converting C to F: %v", err)
	}
	if !got.Equal(decimal.NewFromInt(32)) {
		t.Fatalf("0 C should be 32 F, got %s", got)
	}
}

func TestIsTemperature(t *testing.T) {
	if !units.IsTemperature(units.Single("C")) {
		t.Fatal("C should be recognized as a temperature unit")
	}
	if units.IsTemperature(units.Single("m")) {
		t.Fatal("m should not be recognized as a temperature unit")
	}
	if units.IsTemperature(units.Divide(units.Single("C"), units.Single("s"))) {
		t.Fatal("a compound unit should never be recognized as a bare temperature")
	}
}
