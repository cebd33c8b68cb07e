package evaluator

import (
	"strings"

	"github.com/notecalc/notecalc/currency"
	"github.com/notecalc/notecalc/types"
)

// Environment is the ordered variable map threaded through one document's
// evaluation, plus the immutable context every line's evaluation reads
// from: the implicit `last` binding, the exchange-rate snapshot, and the
// active angle unit for trig functions. It is owned exclusively by the
// driver for the duration of one calculate() call and never shared across
// documents (spec.md §5's single-threaded, non-shared environment model).
type Environment struct {
	Variables map[string]types.Type
	Last      types.Type
	Rates     *currency.Rates
	AngleUnit string // "degree" | "radian"
}

// NewEnvironment builds an empty Environment. rates may be nil if no
// exchange-rate snapshot was loaded; currency conversion then fails with
// ExchangeRateUnavailable rather than panicking.
func NewEnvironment(rates *currency.Rates, angleUnit string) *Environment {
	if angleUnit == "" {
		angleUnit = "degree"
	}
	return &Environment{
		Variables: make(map[string]types.Type),
		Rates:     rates,
		AngleUnit: angleUnit,
	}
}

// Get resolves a name against the variable table, then the implicit `last`
// binding, then the boolean keyword aliases the teacher's Context.Get
// recognized (true/yes/t/y and false/no/f/n).
func (e *Environment) Get(name string) (types.Type, bool) {
	if v, ok := e.Variables[name]; ok {
		return v, true
	}
	if strings.EqualFold(name, "last") && e.Last != nil {
		return e.Last, true
	}
	lower := strings.ToLower(name)
	switch lower {
	case "true", "yes", "t", "y":
		b, _ := types.NewBoolean(true)
		return b, true
	case "false", "no", "f", "n":
		b, _ := types.NewBoolean(false)
		return b, true
	}
	return nil, false
}

// Set binds name to value, shadowing any previous binding (spec.md §4.D:
// "redefining shadows").
func (e *Environment) Set(name string, value types.Type) {
	e.Variables[name] = value
}

// Clone returns a copy of e whose Variables map is independent of the
// original, so speculative evaluation (the validator's debugMode
// diagnostics, which must not leave a trace when a line turns out to
// error) can run against it without disturbing the caller's bindings.
func (e *Environment) Clone() *Environment {
	vars := make(map[string]types.Type, len(e.Variables))
	for k, v := range e.Variables {
		vars[k] = v
	}
	return &Environment{Variables: vars, Last: e.Last, Rates: e.Rates, AngleUnit: e.AngleUnit}
}
