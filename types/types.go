// Package types defines the notecalc value system: the closed set of
// result shapes an expression can evaluate to.
package types

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Type is the interface every notecalc value implements. It is a closed
// set — Number, Currency, Boolean, Percentage (this file), Quantity
// (quantity.go), Duration (duration.go), PlainDate, PlainTime,
// PlainDateTime, ZonedDateTime, Instant (date.go), Composite
// (composite.go) — the evaluator type-switches on the concrete
// type rather than dispatching through further interface methods.
type Type interface {
	String() string
	Equal(other Type) bool
	TypeName() string
}

// Number represents a dimensionless numeric value with arbitrary precision.
type Number struct {
	Value decimal.Decimal
}

// NewNumber creates a Number from various input types.
func NewNumber(value interface{}) (*Number, error) {
	d, err := toDecimal(value)
	if err != nil {
		return nil, fmt.Errorf("invalid number: %w", err)
	}
	return &Number{Value: d}, nil
}

// String returns the string representation of the number, trailing zeros
// and an unnecessary decimal point removed.
func (n *Number) String() string {
	return trimZeros(n.Value)
}

func (n *Number) TypeName() string { return "Number" }

func (n *Number) Equal(other Type) bool {
	o, ok := other.(*Number)
	return ok && n.Value.Equal(o.Value)
}

func (n *Number) ToDecimal() decimal.Decimal { return n.Value }

// Currency represents a monetary amount. Code is the dimensional identity
// used for arithmetic (an ISO 4217 code, or a synthetic per-symbol code for
// ambiguous symbols like "$" — see the currency package); Symbol is what
// gets printed back.
type Currency struct {
	Value  decimal.Decimal
	Code   string
	Symbol string
}

// NewCurrency creates a Currency from various input types.
func NewCurrency(value interface{}, code, symbol string) (*Currency, error) {
	if symbol == "" {
		symbol = code
	}
	d, err := toDecimal(value)
	if err != nil {
		return nil, fmt.Errorf("invalid currency amount: %w", err)
	}
	return &Currency{Value: d, Code: code, Symbol: symbol}, nil
}

// String returns the string representation with currency symbol, e.g.
// "$1,000.00".
func (c *Currency) String() string {
	rounded := c.Value.Round(2)
	intPart := rounded.IntPart()
	fracPart := rounded.Sub(decimal.NewFromInt(intPart)).Abs().Mul(decimal.NewFromInt(100)).IntPart()

	if intPart < 0 {
		return fmt.Sprintf("-%s%s.%02d", c.Symbol, addThousandsSeparators(fmt.Sprintf("%d", -intPart)), fracPart)
	}
	return fmt.Sprintf("%s%s.%02d", c.Symbol, addThousandsSeparators(fmt.Sprintf("%d", intPart)), fracPart)
}

// addThousandsSeparators adds commas to a numeric string.
func addThousandsSeparators(s string) string {
	negative := false
	if strings.HasPrefix(s, "-") {
		negative = true
		s = s[1:]
	}

	var result strings.Builder
	for i := len(s) - 1; i >= 0; i-- {
		if (len(s)-i)%3 == 1 && i != len(s)-1 {
			result.WriteByte(',')
		}
		result.WriteByte(s[i])
	}

	reversed := result.String()
	runes := []rune(reversed)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	if negative {
		return "-" + string(runes)
	}
	return string(runes)
}

func (c *Currency) TypeName() string { return "Currency" }

func (c *Currency) Equal(other Type) bool {
	o, ok := other.(*Currency)
	return ok && c.Value.Equal(o.Value) && c.Code == o.Code
}

func (c *Currency) ToDecimal() decimal.Decimal { return c.Value }

// Boolean represents a true/false value.
type Boolean struct {
	Value bool
}

// NewBoolean creates a Boolean from various input types.
func NewBoolean(value interface{}) (*Boolean, error) {
	switch v := value.(type) {
	case bool:
		return &Boolean{Value: v}, nil
	case string:
		switch strings.ToLower(v) {
		case "true", "yes", "t", "y", "1":
			return &Boolean{Value: true}, nil
		case "false", "no", "f", "n", "0":
			return &Boolean{Value: false}, nil
		default:
			return nil, fmt.Errorf("cannot convert %q to boolean", v)
		}
	case int:
		return &Boolean{Value: v != 0}, nil
	case int64:
		return &Boolean{Value: v != 0}, nil
	default:
		return nil, fmt.Errorf("cannot create Boolean from type %T", value)
	}
}

func (b *Boolean) String() string {
	if b.Value {
		return "true"
	}
	return "false"
}

func (b *Boolean) TypeName() string { return "Boolean" }

func (b *Boolean) Equal(other Type) bool {
	o, ok := other.(*Boolean)
	return ok && b.Value == o.Value
}

func (b *Boolean) ToBool() bool { return b.Value }

// Percentage stores a fraction (0.05 for "5%") so it can participate in
// percentage-of arithmetic and `as percentage` conversion targets without
// being confused with a plain Number.
type Percentage struct {
	Fraction decimal.Decimal
	Permille bool // true if written with "‰" rather than "%"
}

// NewPercentage builds a Percentage from a fraction already divided by 100
// (or 1000 for permille).
func NewPercentage(fraction decimal.Decimal, permille bool) *Percentage {
	return &Percentage{Fraction: fraction, Permille: permille}
}

func (p *Percentage) String() string {
	scale := decimal.NewFromInt(100)
	symbol := "%"
	if p.Permille {
		scale = decimal.NewFromInt(1000)
		symbol = "‰"
	}
	return trimZeros(p.Fraction.Mul(scale)) + symbol
}

func (p *Percentage) TypeName() string { return "Percentage" }

func (p *Percentage) Equal(other Type) bool {
	o, ok := other.(*Percentage)
	return ok && p.Fraction.Equal(o.Fraction)
}

// ---- shared helpers ----

func toDecimal(value interface{}) (decimal.Decimal, error) {
	switch v := value.(type) {
	case int:
		return decimal.NewFromInt(int64(v)), nil
	case int64:
		return decimal.NewFromInt(v), nil
	case float64:
		return decimal.NewFromFloat(v), nil
	case string:
		return decimal.NewFromString(v)
	case decimal.Decimal:
		return v, nil
	default:
		return decimal.Zero, fmt.Errorf("unsupported input type %T", value)
	}
}

func trimZeros(d decimal.Decimal) string {
	s := d.String()
	if !strings.Contains(s, ".") {
		return s
	}
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	if s == "" || s == "-" {
		return "0"
	}
	return s
}
