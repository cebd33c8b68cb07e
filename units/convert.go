package units

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Convert converts a value from one Composition to another of the same
// Signature. Single-term temperature conversions use the affine
// ToBase/FromBase closures directly (5 celsius to fahrenheit); every other
// case — including compound units like km/h to m/s — is handled as a pure
// multiplicative factor, since affine units never compose (there is no such
// thing as "square degrees Celsius").
func Convert(value decimal.Decimal, from, to Composition) (decimal.Decimal, error) {
	fromSig := from.Signature()
	toSig := to.Signature()
	if !fromSig.Equal(toSig) {
		return decimal.Zero, fmt.Errorf("dimension mismatch: %s is not %s", from, to)
	}

	if len(from.Terms) == 1 && len(to.Terms) == 1 && from.Terms[0].Exponent == 1 && to.Terms[0].Exponent == 1 {
		fr := Resolve(from.Terms[0].Symbol)
		to := Resolve(to.Terms[0].Symbol)
		return to.FromBase(fr.ToBase(value)), nil
	}

	factor, err := Factor(from, to)
	if err != nil {
		return decimal.Zero, err
	}
	return value.Mul(factor), nil
}

// Factor computes the multiplicative conversion factor between two
// compositions of equal signature, term by term. It panics neither on
// temperature nor returns one silently wrong: callers needing an affine
// single-unit conversion should go through Convert instead.
func Factor(from, to Composition) (decimal.Decimal, error) {
	fromFactor, err := compositionFactor(from)
	if err != nil {
		return decimal.Zero, err
	}
	toFactor, err := compositionFactor(to)
	if err != nil {
		return decimal.Zero, err
	}
	if toFactor.IsZero() {
		return decimal.Zero, fmt.Errorf("degenerate unit %s", to)
	}
	return fromFactor.Div(toFactor), nil
}

// compositionFactor returns the value-to-base-unit multiplier for a
// composition, requiring every term to be linear (non-affine).
func compositionFactor(c Composition) (decimal.Decimal, error) {
	factor := decimal.NewFromInt(1)
	for _, t := range c.Terms {
		r := Resolve(t.Symbol)
		if r.Dimension == dimTemperature && !r.Arbitrary {
			if t.Exponent != 1 || len(c.Terms) != 1 {
				return decimal.Zero, fmt.Errorf("temperature unit %s cannot appear in a compound unit", t.Symbol)
			}
		}
		unitFactor := r.ToBase(decimal.NewFromInt(1))
		for i := 1; i < abs(t.Exponent); i++ {
			unitFactor = unitFactor.Mul(r.ToBase(decimal.NewFromInt(1)))
		}
		if t.Exponent < 0 {
			factor = factor.Div(unitFactor)
		} else if t.Exponent > 0 {
			factor = factor.Mul(unitFactor)
		}
	}
	return factor, nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
