package evaluator

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/notecalc/notecalc/ast"
	"github.com/notecalc/notecalc/constants"
	"github.com/notecalc/notecalc/currency"
	"github.com/notecalc/notecalc/types"
	"github.com/notecalc/notecalc/units"
)

// numberLiteralToNumber parses a NumberLiteral's raw text into a decimal,
// honoring a non-decimal Base set by the lexer/parser for 0x/0b/0o prefixes.
func numberLiteralToNumber(n *ast.NumberLiteral) (*types.Number, error) {
	d, err := parseRawDecimal(n)
	if err != nil {
		return nil, runtimeErr(TypeMismatch, n.Range, "invalid number literal %q: %v", n.Raw, err)
	}
	return types.NewNumber(d)
}

func parseRawDecimal(n *ast.NumberLiteral) (decimal.Decimal, error) {
	if n.Base == 10 {
		return decimal.NewFromString(n.Raw)
	}
	raw := n.Raw
	lower := strings.ToLower(raw)
	switch n.Base {
	case 16:
		raw = strings.TrimPrefix(lower, "0x")
	case 2:
		raw = strings.TrimPrefix(lower, "0b")
	case 8:
		raw = strings.TrimPrefix(lower, "0o")
	}
	i, ok := new(big.Int).SetString(raw, n.Base)
	if !ok {
		return decimal.Zero, fmt.Errorf("invalid base-%d literal %q", n.Base, n.Raw)
	}
	return decimal.NewFromBigInt(i, 0), nil
}

func percentageLiteralToType(n *ast.PercentageLiteral) (*types.Percentage, error) {
	d, err := decimal.NewFromString(n.Raw)
	if err != nil {
		return nil, runtimeErr(TypeMismatch, n.Range, "invalid percentage literal %q", n.Raw)
	}
	scale := decimal.NewFromInt(100)
	if n.Permille {
		scale = decimal.NewFromInt(1000)
	}
	return types.NewPercentage(d.Div(scale), n.Permille), nil
}

func constantValue(n *ast.Constant) (types.Type, error) {
	raw, ok := constants.KnownConstants[n.Name]
	if !ok {
		return nil, runtimeErr(UnknownIdentifier, n.Range, "unknown constant %q", n.Name)
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, runtimeErr(TypeMismatch, n.Range, "malformed constant %q", n.Name)
	}
	return types.NewNumber(d)
}

// unitSymbolOf extracts the textual unit symbol from a UnitWithExponent's
// Unit field, which is either a *ast.Unit or a *ast.CurrencyUnit.
func unitSymbolOf(t *ast.UnitWithExponent) string {
	switch u := t.Unit.(type) {
	case *ast.Unit:
		return u.Symbol
	case *ast.CurrencyUnit:
		return u.Symbol
	default:
		return ""
	}
}

// bareCurrencyTerm reports whether a Units node is exactly a bare currency
// term (a single CurrencyUnit with exponent 1, sign +1) — the common `$5`
// case that should evaluate to types.Currency rather than types.Quantity.
func bareCurrencyTerm(u *ast.Units) (*ast.CurrencyUnit, bool) {
	if u == nil || len(u.Terms) != 1 {
		return nil, false
	}
	t := u.Terms[0]
	if t.Exponent != 1 || t.Sign != 1 {
		return nil, false
	}
	cur, ok := t.Unit.(*ast.CurrencyUnit)
	return cur, ok
}

// unitsToComposition builds a units.Composition from a parsed Units node.
// A currency term's symbol is normalized to its dimensional code (the ISO
// code, or a synthetic per-symbol code for ambiguous symbols) so a rate
// like `USD/person/day` carries a stable dimensional identity alongside
// ordinary physical units, per types/quantity.go's doc comment.
func unitsToComposition(u *ast.Units) units.Composition {
	var comp units.Composition
	for _, t := range u.Terms {
		symbol := unitSymbolOf(t)
		if cur, ok := t.Unit.(*ast.CurrencyUnit); ok {
			symbol = currency.NormalizeSymbol(cur.Symbol)
		}
		comp.Terms = append(comp.Terms, units.Term{Symbol: symbol, Exponent: t.Exponent * t.Sign})
	}
	return comp.Normalize()
}

// valueToType evaluates a Value node (a bare number, or a number plus
// Units) into the appropriate types.Type: Number, Currency, or Quantity.
func (e *Evaluator) valueToType(v *ast.Value) (types.Type, error) {
	numLit, ok := v.Number.(*ast.NumberLiteral)
	if !ok {
		return nil, runtimeErr(TypeMismatch, v.Range, "expected a numeric literal inside a value")
	}
	d, err := parseRawDecimal(numLit)
	if err != nil {
		return nil, runtimeErr(TypeMismatch, v.Range, "invalid number literal %q", numLit.Raw)
	}

	if v.Units == nil {
		return types.NewNumber(d)
	}

	if cur, ok := bareCurrencyTerm(v.Units); ok {
		code := currency.NormalizeSymbol(cur.Symbol)
		return types.NewCurrency(d, code, cur.Symbol)
	}

	comp := unitsToComposition(v.Units)
	return types.NewQuantity(d, comp), nil
}

// compositeToType evaluates a CompositeValue (e.g. `5 ft 7 in`) into a
// types.Composite, requiring every part to share the same dimension.
func (e *Evaluator) compositeToType(c *ast.CompositeValue) (types.Type, error) {
	parts := make([]*types.Quantity, 0, len(c.Parts))
	var sig units.Signature
	for i, part := range c.Parts {
		v, err := e.valueToType(part)
		if err != nil {
			return nil, err
		}
		q, ok := v.(*types.Quantity)
		if !ok {
			return nil, runtimeErr(DimensionMismatch, part.Range, "composite value part has no unit")
		}
		if i == 0 {
			sig = q.Unit.Signature()
		} else if !q.Unit.Signature().Equal(sig) {
			return nil, runtimeErr(DimensionMismatch, part.Range, "composite value parts do not share a dimension")
		}
		parts = append(parts, q)
	}
	return types.NewComposite(parts...), nil
}
