package currency

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Rates is a loaded exchange-rate snapshot: per spec.md §6's
// exchange-rates.json, every rate is quoted against a single pivot
// currency (conventionally USD) to keep the table O(n) instead of O(n^2).
type Rates struct {
	Base    string
	AsOf    string // opaque timestamp/date string from the snapshot file, display-only
	PerUnit map[string]decimal.Decimal // 1 Base = PerUnit[code] units of code
}

// NewRates builds a Rates snapshot. perUnit must include an entry mapping
// Base to itself (1.0), which the JSON loader in document.go is expected to
// supply explicitly rather than this constructor inferring it.
func NewRates(base, asOf string, perUnit map[string]decimal.Decimal) *Rates {
	return &Rates{Base: base, AsOf: asOf, PerUnit: perUnit}
}

// Convert converts an amount from one ISO code to another, routing through
// the pivot currency when neither side of the conversion is the pivot
// itself (direct when the source is Base, inverse when the target is
// Base, through-pivot otherwise).
func (r *Rates) Convert(amount decimal.Decimal, from, to string) (decimal.Decimal, error) {
	if from == to {
		return amount, nil
	}
	if r == nil {
		return decimal.Zero, fmt.Errorf("no exchange rate snapshot loaded")
	}

	if from == r.Base {
		rate, ok := r.PerUnit[to]
		if !ok {
			return decimal.Zero, fmt.Errorf("no exchange rate for %s", to)
		}
		return amount.Mul(rate), nil
	}

	if to == r.Base {
		rate, ok := r.PerUnit[from]
		if !ok {
			return decimal.Zero, fmt.Errorf("no exchange rate for %s", from)
		}
		return amount.Div(rate), nil
	}

	// Through-pivot: amount(from) -> pivot -> to.
	fromRate, ok := r.PerUnit[from]
	if !ok {
		return decimal.Zero, fmt.Errorf("no exchange rate for %s", from)
	}
	toRate, ok := r.PerUnit[to]
	if !ok {
		return decimal.Zero, fmt.Errorf("no exchange rate for %s", to)
	}
	pivotAmount := amount.Div(fromRate)
	return pivotAmount.Mul(toRate), nil
}

// Has reports whether code has a known rate in the snapshot.
func (r *Rates) Has(code string) bool {
	if r == nil {
		return false
	}
	if code == r.Base {
		return true
	}
	_, ok := r.PerUnit[code]
	return ok
}
