package types

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/notecalc/notecalc/units"
)

// Quantity is a numeric value carrying a unit composition, e.g. `5 km` or,
// once a currency code has been folded into the composition as its own
// term, `1 USD/person/day`.
//
// IsDelta only has meaning for temperature quantities: a literal like `20 C`
// is an absolute reading, while `15 C` produced by subtracting two absolute
// temperatures is a difference. Two absolutes cannot be added; an absolute
// and a delta can.
type Quantity struct {
	Value   decimal.Decimal
	Unit    units.Composition
	IsDelta bool
}

// NewQuantity builds a Quantity, normalizing its unit composition.
func NewQuantity(value decimal.Decimal, unit units.Composition) *Quantity {
	return &Quantity{Value: value, Unit: unit.Normalize()}
}

// NewTemperatureQuantity builds a Quantity tagged as an absolute reading or
// a delta, for use by temperature-aware addition/subtraction.
func NewTemperatureQuantity(value decimal.Decimal, unit units.Composition, isDelta bool) *Quantity {
	return &Quantity{Value: value, Unit: unit.Normalize(), IsDelta: isDelta}
}

func (q *Quantity) String() string {
	unitStr := q.Unit.String()
	if unitStr == "" {
		return trimZeros(q.Value)
	}
	return fmt.Sprintf("%s %s", trimZeros(q.Value), unitStr)
}

func (q *Quantity) TypeName() string { return "Quantity" }

// Equal reports whether two quantities denote the same magnitude, even
// when expressed in different but convertible units.
func (q *Quantity) Equal(other Type) bool {
	o, ok := other.(*Quantity)
	if !ok {
		return false
	}
	converted, err := units.Convert(o.Value, o.Unit, q.Unit)
	if err != nil {
		return false
	}
	return q.Value.Equal(converted)
}

func (q *Quantity) ToDecimal() decimal.Decimal { return q.Value }

// ConvertTo returns a new Quantity expressing the same magnitude in target.
func (q *Quantity) ConvertTo(target units.Composition) (*Quantity, error) {
	converted, err := units.Convert(q.Value, q.Unit, target)
	if err != nil {
		return nil, err
	}
	return NewQuantity(converted, target), nil
}
