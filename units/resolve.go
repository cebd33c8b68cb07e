package units

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// Resolved is what Resolve returns for a single unit symbol: enough to
// convert a decimal value to and from the canonical base unit of its
// dimension. Units not found in the builtin tables resolve as Arbitrary:
// spec.md treats a bare identifier in unit position as its own dimension
// rather than a lex error, so `3 widgets + 4 widgets` type-checks while
// `3 widgets + 4 gadgets` does not.
type Resolved struct {
	Input     string // exactly as written
	Canonical string // table symbol with prefix folded in, e.g. "km"; or Input if Arbitrary
	Dimension DimensionVector
	Arbitrary bool
	ToBase    func(decimal.Decimal) decimal.Decimal
	FromBase  func(decimal.Decimal) decimal.Decimal
}

// Resolve looks up a single unit symbol, trying an exact-case match first,
// then a greedy SI/binary prefix split, then a case-insensitive match, and
// finally falling back to treating the symbol as an arbitrary user-defined
// unit.
func Resolve(symbol string) Resolved {
	if def, ok := exactCase[symbol]; ok {
		return fromDef(symbol, def)
	}
	// A greedy SI-prefix split must be tried before the case-folded
	// registry lookup: an uppercase-prefixed symbol like "Pg" (peta-gram)
	// or "Ms" (megasecond) would otherwise fold onto an unrelated
	// lowercase convenience alias ("pg" picogram, "ms" millisecond)
	// before ever reaching the prefix branch.
	if base, factor, ok := splitPrefix(symbol); ok {
		def, found := lookupPrefixable(base)
		if !found {
			def, found = lookupPrefixable(strings.ToLower(base))
		}
		if found {
			return Resolved{
				Input:     symbol,
				Canonical: symbol,
				Dimension: def.Dimension,
				ToBase: func(v decimal.Decimal) decimal.Decimal {
					return scaleToBase(def, v.Mul(factor))
				},
				FromBase: func(v decimal.Decimal) decimal.Decimal {
					return scaleFromBase(def, v).Div(factor)
				},
			}
		}
	}
	if def, ok := registry[strings.ToLower(symbol)]; ok {
		return fromDef(symbol, def)
	}

	return Resolved{
		Input:     symbol,
		Canonical: symbol,
		Arbitrary: true,
		ToBase:    func(v decimal.Decimal) decimal.Decimal { return v },
		FromBase:  func(v decimal.Decimal) decimal.Decimal { return v },
	}
}

func fromDef(symbol string, def Def) Resolved {
	return Resolved{
		Input:     symbol,
		Canonical: def.Canonical,
		Dimension: def.Dimension,
		ToBase:    func(v decimal.Decimal) decimal.Decimal { return scaleToBase(def, v) },
		FromBase:  func(v decimal.Decimal) decimal.Decimal { return scaleFromBase(def, v) },
	}
}

func scaleToBase(def Def, v decimal.Decimal) decimal.Decimal {
	if def.ToBase != nil {
		return def.ToBase(v)
	}
	return v.Mul(def.Factor)
}

func scaleFromBase(def Def, v decimal.Decimal) decimal.Decimal {
	if def.FromBase != nil {
		return def.FromBase(v)
	}
	return v.Div(def.Factor)
}

// IsTemperature reports whether c is a single bare temperature term
// (°C/°F/K), the only shape spec.md's absolute/delta addition rule applies
// to: temperature never appears compounded (compositionFactor already
// rejects that).
func IsTemperature(c Composition) bool {
	if len(c.Terms) != 1 || c.Terms[0].Exponent != 1 {
		return false
	}
	r := Resolve(c.Terms[0].Symbol)
	return !r.Arbitrary && r.Dimension == dimTemperature
}

// IsKnown reports whether symbol matches a builtin unit (ignoring prefixes).
func IsKnown(symbol string) bool {
	if _, ok := exactCase[symbol]; ok {
		return true
	}
	_, ok := registry[strings.ToLower(symbol)]
	return ok
}

// Term is a single unit raised to an integer exponent within a Composition,
// e.g. the "m" in "m/s^2" has Exponent -2... no: "s^2" has Exponent 2 and
// sits on the denominator side, recorded as Exponent -2 on the whole term.
type Term struct {
	Symbol   string
	Exponent int
}

// Composition is a product of unit Terms, e.g. `USD/person/day` is
// [{USD,1},{person,-1},{day,-1}].
type Composition struct {
	Terms []Term
}

// Signature is the dimensional identity of a Composition: a physical
// DimensionVector for builtin units plus an exponent map for arbitrary
// (user-defined) unit symbols. Two Compositions can be added/subtracted or
// compared only when their Signatures are equal.
type Signature struct {
	Physical  DimensionVector
	Arbitrary map[string]int
}

// Equal reports whether two signatures describe the same dimension.
func (s Signature) Equal(other Signature) bool {
	if s.Physical != other.Physical {
		return false
	}
	if len(s.Arbitrary) != len(other.Arbitrary) {
		return false
	}
	for k, v := range s.Arbitrary {
		if other.Arbitrary[k] != v {
			return false
		}
	}
	return true
}

func (s Signature) IsDimensionless() bool {
	return s.Physical.IsZero() && len(s.Arbitrary) == 0
}

// Signature computes the dimensional signature of a Composition.
func (c Composition) Signature() Signature {
	sig := Signature{Arbitrary: map[string]int{}}
	for _, t := range c.Terms {
		r := Resolve(t.Symbol)
		if r.Arbitrary {
			sig.Arbitrary[strings.ToLower(r.Canonical)] += t.Exponent
			continue
		}
		sig.Physical = sig.Physical.Add(r.Dimension.Scale(t.Exponent))
	}
	for k, v := range sig.Arbitrary {
		if v == 0 {
			delete(sig.Arbitrary, k)
		}
	}
	return sig
}

// String renders the composition the way the formatter displays it:
// positive-exponent terms space-joined, then "/" and negative-exponent terms,
// matching spec.md's `1.00 USD/(person day)` shape for 2+ denominator terms.
func (c Composition) String() string {
	var num, den []string
	for _, t := range c.Terms {
		switch {
		case t.Exponent == 1:
			num = append(num, t.Symbol)
		case t.Exponent == -1:
			den = append(den, t.Symbol)
		case t.Exponent > 1:
			num = append(num, fmt.Sprintf("%s^%d", t.Symbol, t.Exponent))
		case t.Exponent < 0:
			den = append(den, fmt.Sprintf("%s^%d", t.Symbol, -t.Exponent))
		}
	}
	numStr := strings.Join(num, " ")
	if len(den) == 0 {
		return numStr
	}
	if len(den) == 1 {
		return fmt.Sprintf("%s/%s", numStr, den[0])
	}
	return fmt.Sprintf("%s/(%s)", numStr, strings.Join(den, " "))
}

// Normalize merges duplicate symbols (e.g. "m * m" -> "m^2") and drops
// zero-exponent terms, then sorts for stable display and comparison.
func (c Composition) Normalize() Composition {
	counts := map[string]int{}
	order := []string{}
	for _, t := range c.Terms {
		if _, seen := counts[t.Symbol]; !seen {
			order = append(order, t.Symbol)
		}
		counts[t.Symbol] += t.Exponent
	}
	var out Composition
	for _, sym := range order {
		if exp := counts[sym]; exp != 0 {
			out.Terms = append(out.Terms, Term{Symbol: sym, Exponent: exp})
		}
	}
	sort.SliceStable(out.Terms, func(i, j int) bool {
		return out.Terms[i].Exponent > out.Terms[j].Exponent
	})
	return out
}

// Multiply combines two compositions (used for `*` between quantities).
func Multiply(a, b Composition) Composition {
	var out Composition
	out.Terms = append(out.Terms, a.Terms...)
	out.Terms = append(out.Terms, b.Terms...)
	return out.Normalize()
}

// Divide combines two compositions with b's exponents negated (used for `/`).
func Divide(a, b Composition) Composition {
	var out Composition
	out.Terms = append(out.Terms, a.Terms...)
	for _, t := range b.Terms {
		out.Terms = append(out.Terms, Term{Symbol: t.Symbol, Exponent: -t.Exponent})
	}
	return out.Normalize()
}

// Pow raises every term's exponent by n (used for `^`).
func Pow(a Composition, n int) Composition {
	var out Composition
	for _, t := range a.Terms {
		out.Terms = append(out.Terms, Term{Symbol: t.Symbol, Exponent: t.Exponent * n})
	}
	return out.Normalize()
}

// Single builds a one-term Composition, the common case for a plain `5 km`.
func Single(symbol string) Composition {
	return Composition{Terms: []Term{{Symbol: symbol, Exponent: 1}}}
}
