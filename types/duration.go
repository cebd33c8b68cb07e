package types

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// durationToSeconds gives the length, in seconds, of one unit of each
// duration word notecalc accepts. Month and year are calendar-approximate
// (30 and 365 days) the same way the teacher's duration type treats them:
// good enough for "about 2 months from now", not for exact calendar math,
// which PlainDate.AddDays/Weekday cover instead.
var durationToSeconds = map[string]decimal.Decimal{
	"ns":      decimal.NewFromFloat(0.000000001),
	"ms":      decimal.NewFromFloat(0.001),
	"s":       decimal.NewFromInt(1),
	"sec":     decimal.NewFromInt(1),
	"second":  decimal.NewFromInt(1),
	"seconds": decimal.NewFromInt(1),
	"min":     decimal.NewFromInt(60),
	"minute":  decimal.NewFromInt(60),
	"minutes": decimal.NewFromInt(60),
	"h":       decimal.NewFromInt(3600),
	"hr":      decimal.NewFromInt(3600),
	"hour":    decimal.NewFromInt(3600),
	"hours":   decimal.NewFromInt(3600),
	"d":       decimal.NewFromInt(86400),
	"day":     decimal.NewFromInt(86400),
	"days":    decimal.NewFromInt(86400),
	"week":    decimal.NewFromInt(604800),
	"weeks":   decimal.NewFromInt(604800),
	"month":   decimal.NewFromInt(2592000),
	"months":  decimal.NewFromInt(2592000),
	"year":    decimal.NewFromInt(31536000),
	"years":   decimal.NewFromInt(31536000),
}

// Duration is a signed span of time expressed in a single named unit, e.g.
// `90 minutes`. Arithmetic against PlainDateTime/ZonedDateTime converts
// through ToSeconds.
type Duration struct {
	Value decimal.Decimal
	Unit  string
}

// NewDuration builds a Duration, rejecting unrecognized unit words.
func NewDuration(value decimal.Decimal, unit string) (*Duration, error) {
	normalized := strings.ToLower(unit)
	if _, ok := durationToSeconds[normalized]; !ok {
		return nil, fmt.Errorf("unknown duration unit %q", unit)
	}
	return &Duration{Value: value, Unit: normalized}, nil
}

func (d *Duration) String() string {
	return fmt.Sprintf("%s %s", trimZeros(d.Value), d.Unit)
}

func (d *Duration) TypeName() string { return "Duration" }

func (d *Duration) Equal(other Type) bool {
	o, ok := other.(*Duration)
	if !ok {
		return false
	}
	return d.ToSeconds().Equal(o.ToSeconds())
}

// ToSeconds returns the duration's length in seconds.
func (d *Duration) ToSeconds() decimal.Decimal {
	return d.Value.Mul(durationToSeconds[d.Unit])
}

// Convert returns an equivalent Duration expressed in a different unit.
func (d *Duration) Convert(unit string) (*Duration, error) {
	normalized := strings.ToLower(unit)
	perUnit, ok := durationToSeconds[normalized]
	if !ok {
		return nil, fmt.Errorf("unknown duration unit %q", unit)
	}
	return &Duration{Value: d.ToSeconds().Div(perUnit), Unit: normalized}, nil
}
