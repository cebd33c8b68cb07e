package evaluator

import (
	"github.com/shopspring/decimal"

	"github.com/notecalc/notecalc/ast"
	"github.com/notecalc/notecalc/currency"
	"github.com/notecalc/notecalc/types"
	"github.com/notecalc/notecalc/units"
)

// evalConversion evaluates a `to`/`as`/`->` expression against one of
// the three target shapes the parser produces: a unit composition (which
// may itself mean a unit conversion, a currency conversion, or a timezone
// conversion depending on the source value), a presentation format, or a
// date/time property target.
func (e *Evaluator) evalConversion(n *ast.Conversion) (*Result, error) {
	res, err := e.evalExpr(n.Expr)
	if err != nil {
		return nil, err
	}
	v := res.Value

	switch target := n.Target.(type) {
	case *ast.PropertyTarget:
		pv, err := propertyOf(n, v, target.Property)
		if err != nil {
			return nil, err
		}
		return wrap(pv), nil
	case *ast.PresentationFormat:
		return e.evalPresentationFormat(n, v, target)
	case *ast.Units:
		return e.evalUnitsConversion(n, v, target)
	default:
		return nil, runtimeErr(TypeMismatch, n.Range, "unsupported conversion target %T", n.Target)
	}
}

func (e *Evaluator) evalPresentationFormat(n *ast.Conversion, v types.Type, target *ast.PresentationFormat) (*Result, error) {
	switch target.Kind {
	case "unix":
		inst, err := toUnixInstant(n, v)
		if err != nil {
			return nil, err
		}
		return &Result{Value: inst, Format: target}, nil
	case "percentage":
		d, ok := decimalOf(v)
		if !ok {
			return nil, runtimeErr(TypeMismatch, n.Range, "cannot express %s as a percentage", v.TypeName())
		}
		return wrap(types.NewPercentage(d, false)), nil
	default: // base, sigfigs, decimals, scientific, fraction: rendering only
		return &Result{Value: v, Format: target}, nil
	}
}

func (e *Evaluator) evalUnitsConversion(n *ast.Conversion, v types.Type, target *ast.Units) (*Result, error) {
	if isDateTimeLike(v) {
		zoneName, ok := singleUnitSymbol(target)
		if !ok {
			return nil, runtimeErr(TypeMismatch, n.Range, "a date/time value can only be converted to a timezone")
		}
		converted, err := zoneConvert(n, v, zoneName)
		if err != nil {
			return nil, err
		}
		return wrap(converted), nil
	}

	if cur, ok := bareCurrencyTerm(target); ok {
		return e.convertCurrency(n, v, cur.Symbol)
	}

	switch src := v.(type) {
	case *types.Quantity:
		return e.convertQuantityToUnits(n, src, target)
	case *types.Composite:
		return e.convertQuantityToUnits(n, compositeTotal(src), target)
	default:
		return nil, runtimeErr(DimensionMismatch, n.Range, "%s has no unit to convert", v.TypeName())
	}
}

// singleUnitSymbol extracts the bare symbol of a one-term Units node (the
// shape a timezone name like "Tokyo" or "UTC" parses as, since the parser
// has no dedicated timezone-literal grammar).
func singleUnitSymbol(u *ast.Units) (string, bool) {
	if len(u.Terms) != 1 {
		return "", false
	}
	return unitSymbolOf(u.Terms[0]), true
}

// compositeTotal collapses a Composite into a single Quantity expressed in
// its first (largest) part's unit, so conversion logic only has to reason
// about one dimension.
func compositeTotal(c *types.Composite) *types.Quantity {
	total := c.Parts[0].Value
	unit := c.Parts[0].Unit
	for _, p := range c.Parts[1:] {
		converted, err := units.Convert(p.Value, p.Unit, unit)
		if err != nil {
			continue
		}
		total = total.Add(converted)
	}
	return types.NewQuantity(total, unit)
}

// convertQuantityToUnits disambiguates the two shapes a space-juxtaposed
// unit target can mean (spec.md §4.D, §8 scenarios 2/3/6): a product of
// units whose combined dimension matches the source (`acre` -> `ft in`,
// scalar result in the product unit) tried first, falling back to a split
// into independent same-dimension parts (`m` -> `ft in`, largest to
// smallest, the last part absorbing the remainder).
func (e *Evaluator) convertQuantityToUnits(n *ast.Conversion, q *types.Quantity, target *ast.Units) (*Result, error) {
	productComp := unitsToComposition(target)
	if productComp.Signature().Equal(q.Unit.Signature()) {
		converted, err := units.Convert(q.Value, q.Unit, productComp)
		if err == nil {
			return wrap(types.NewQuantity(converted, productComp)), nil
		}
	}

	comps := make([]units.Composition, len(target.Terms))
	for i, t := range target.Terms {
		comps[i] = units.Composition{Terms: []units.Term{{Symbol: unitSymbolOf(t), Exponent: 1}}}
		if !comps[i].Signature().Equal(q.Unit.Signature()) {
			return nil, runtimeErr(DimensionMismatch, n.Range, "%s is not %s", q.Unit, target)
		}
	}
	if len(comps) == 1 {
		converted, err := units.Convert(q.Value, q.Unit, comps[0])
		if err != nil {
			return nil, runtimeErr(DimensionMismatch, n.Range, "%v", err)
		}
		return wrap(types.NewQuantity(converted, comps[0])), nil
	}
	return wrap(splitIntoComposite(q, comps)), nil
}

// splitIntoComposite distributes q's magnitude across comps, largest to
// smallest: every part but the last keeps only its whole-number portion,
// with the fractional remainder carried to the next (smaller) unit.
func splitIntoComposite(q *types.Quantity, comps []units.Composition) *types.Composite {
	remaining, err := units.Convert(q.Value, q.Unit, comps[0])
	if err != nil {
		remaining = q.Value
	}
	parts := make([]*types.Quantity, len(comps))
	for i := 0; i < len(comps)-1; i++ {
		whole := remaining.Floor()
		parts[i] = types.NewQuantity(whole, comps[i])
		frac := remaining.Sub(whole)
		converted, err := units.Convert(frac, comps[i], comps[i+1])
		if err != nil {
			converted = decimal.Zero
		}
		remaining = converted
	}
	parts[len(comps)-1] = types.NewQuantity(remaining, comps[len(comps)-1])
	return types.NewComposite(parts...)
}

// convertCurrency converts a Currency or a Quantity carrying a currency
// term into targetSymbol's normalized code, via the Environment's loaded
// exchange-rate snapshot.
func (e *Evaluator) convertCurrency(n *ast.Conversion, v types.Type, targetSymbol string) (*Result, error) {
	if e.Env.Rates == nil {
		return nil, runtimeErr(ExchangeRateUnavailable, n.Range, "no exchange rate snapshot loaded")
	}
	targetCode := currency.NormalizeSymbol(targetSymbol)

	switch c := v.(type) {
	case *types.Currency:
		converted, err := e.Env.Rates.Convert(c.Value, c.Code, targetCode)
		if err != nil {
			return nil, runtimeErr(ExchangeRateUnavailable, n.Range, "%v", err)
		}
		cur, _ := types.NewCurrency(converted, targetCode, targetSymbol)
		return wrap(cur), nil
	case *types.Quantity:
		for i, t := range c.Unit.Terms {
			rate, err := e.Env.Rates.Convert(decimal.NewFromInt(1), t.Symbol, targetCode)
			if err != nil {
				continue
			}
			factor := rate
			if t.Exponent < 0 {
				factor = decimal.NewFromInt(1).Div(rate)
			}
			newTerms := append([]units.Term{}, c.Unit.Terms...)
			newTerms[i] = units.Term{Symbol: targetCode, Exponent: t.Exponent}
			newComp := units.Composition{Terms: newTerms}.Normalize()
			return wrap(types.NewQuantity(c.Value.Mul(factor), newComp)), nil
		}
		return nil, runtimeErr(UnknownCurrency, n.Range, "no currency term found to convert")
	default:
		return nil, runtimeErr(TypeMismatch, n.Range, "cannot convert %s to a currency", v.TypeName())
	}
}
