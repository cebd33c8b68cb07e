package evaluator

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/notecalc/notecalc/ast"
	"github.com/notecalc/notecalc/types"
	"github.com/notecalc/notecalc/units"
)

// evalBinary evaluates +, -, *, /, ^, comparisons, and logical and/or.
// Date/duration arithmetic is tried first for +/- since it produces
// date-typed results the generic numeric path below doesn't know about.
func (e *Evaluator) evalBinary(n *ast.BinaryExpression) (*Result, error) {
	leftRes, err := e.evalExpr(n.Left)
	if err != nil {
		return nil, err
	}
	rightRes, err := e.evalExpr(n.Right)
	if err != nil {
		return nil, err
	}
	left, right := leftRes.Value, rightRes.Value

	switch n.Operator {
	case "+", "-":
		if v, handled, err := evalDateArithmetic(n, left, right); handled {
			return wrap(v), err
		}
		return e.evalAddSub(n, left, right)
	case "*":
		return e.evalMul(n, left, right)
	case "/":
		return e.evalDiv(n, left, right)
	case "^", "**":
		return e.evalPow(n, left, right)
	case ">", "<", ">=", "<=", "==", "!=":
		return e.evalComparison(n, left, right)
	case "and", "or":
		return e.evalLogical(n, left, right)
	default:
		return nil, runtimeErr(TypeMismatch, n.Range, "unknown operator %q", n.Operator)
	}
}

// percentOperand reports whether v is a Percentage, returning its fraction.
func percentOperand(v types.Type) (decimal.Decimal, bool) {
	p, ok := v.(*types.Percentage)
	if !ok {
		return decimal.Zero, false
	}
	return p.Fraction, true
}

// scaleValue multiplies a Number/Currency/Quantity's magnitude by factor,
// preserving its concrete type.
func scaleValue(v types.Type, factor decimal.Decimal) types.Type {
	switch t := v.(type) {
	case *types.Number:
		return &types.Number{Value: t.Value.Mul(factor)}
	case *types.Currency:
		return &types.Currency{Value: t.Value.Mul(factor), Code: t.Code, Symbol: t.Symbol}
	case *types.Quantity:
		return types.NewTemperatureQuantity(t.Value.Mul(factor), t.Unit, t.IsDelta)
	case *types.Composite:
		scaled := make([]*types.Quantity, len(t.Parts))
		for i, p := range t.Parts {
			scaled[i] = types.NewQuantity(p.Value.Mul(factor), p.Unit)
		}
		return renormalizeComposite(scaled)
	default:
		return v
	}
}

func (e *Evaluator) evalAddSub(n *ast.BinaryExpression, left, right types.Type) (*Result, error) {
	sign := decimal.NewFromInt(1)
	if n.Operator == "-" {
		sign = decimal.NewFromInt(-1)
	}

	// Percent semantics: "X + Y%" == X * (1 + Y/100); "X - Y%" == X * (1 - Y/100).
	if frac, ok := percentOperand(right); ok {
		if _, leftIsPercent := left.(*types.Percentage); leftIsPercent {
			return nil, runtimeErr(TypeMismatch, n.Range, "cannot add/subtract two bare percentages")
		}
		factor := decimal.NewFromInt(1).Add(sign.Mul(frac))
		return wrap(scaleValue(left, factor)), nil
	}
	if frac, ok := percentOperand(left); ok {
		factor := decimal.NewFromInt(1).Add(sign.Mul(frac))
		return wrap(scaleValue(right, factor)), nil
	}

	if lc, ok := left.(*types.Composite); ok {
		return e.addScalarToComposite(n, lc, right, sign)
	}

	switch l := left.(type) {
	case *types.Number:
		r, ok := right.(*types.Number)
		if !ok {
			return nil, runtimeErr(DimensionMismatch, n.Range, "cannot combine a plain number with %s", right.TypeName())
		}
		return wrap(&types.Number{Value: l.Value.Add(sign.Mul(r.Value))}), nil
	case *types.Currency:
		r, ok := right.(*types.Currency)
		if !ok || r.Code != l.Code {
			return nil, runtimeErr(DimensionMismatch, n.Range, "currency arithmetic requires the same code")
		}
		return wrap(&types.Currency{Value: l.Value.Add(sign.Mul(r.Value)), Code: l.Code, Symbol: l.Symbol}), nil
	case *types.Quantity:
		r, ok := right.(*types.Quantity)
		if !ok {
			return nil, runtimeErr(DimensionMismatch, n.Range, "cannot combine %s with %s", l.TypeName(), right.TypeName())
		}
		if units.IsTemperature(l.Unit) && units.IsTemperature(r.Unit) {
			return e.evalTemperatureAddSub(n, l, r)
		}
		converted, err := units.Convert(r.Value, r.Unit, l.Unit)
		if err != nil {
			return nil, runtimeErr(DimensionMismatch, n.Range, "%v", err)
		}
		return wrap(types.NewQuantity(l.Value.Add(sign.Mul(converted)), l.Unit)), nil
	default:
		return nil, runtimeErr(TypeMismatch, n.Range, "cannot add/subtract %s", left.TypeName())
	}
}

// evalTemperatureAddSub implements the absolute/delta rule for °C/°F/K:
// an absolute temperature plus a delta (or a delta plus a delta) is fine,
// but two absolute readings cannot be added, and subtracting one absolute
// from another produces a delta rather than another absolute.
func (e *Evaluator) evalTemperatureAddSub(n *ast.BinaryExpression, l, r *types.Quantity) (*Result, error) {
	converted, err := units.Convert(r.Value, r.Unit, l.Unit)
	if err != nil {
		return nil, runtimeErr(DimensionMismatch, n.Range, "%v", err)
	}
	if n.Operator == "-" {
		switch {
		case l.IsDelta && !r.IsDelta:
			return nil, runtimeErr(DimensionMismatch, n.Range, "cannot subtract an absolute temperature from a temperature delta")
		case !l.IsDelta && r.IsDelta:
			return wrap(types.NewTemperatureQuantity(l.Value.Sub(converted), l.Unit, false)), nil
		default: // both absolute, or both deltas: the result is a delta
			return wrap(types.NewTemperatureQuantity(l.Value.Sub(converted), l.Unit, true)), nil
		}
	}
	if !l.IsDelta && !r.IsDelta {
		return nil, runtimeErr(DimensionMismatch, n.Range, "cannot add two absolute temperatures")
	}
	return wrap(types.NewTemperatureQuantity(l.Value.Add(converted), l.Unit, l.IsDelta && r.IsDelta)), nil
}

// addScalarToComposite implements spec.md §4.D's composite + scalar rule:
// the scalar is added to the smallest (last) part, then the whole
// composite is renormalized.
func (e *Evaluator) addScalarToComposite(n *ast.BinaryExpression, c *types.Composite, scalar types.Type, sign decimal.Decimal) (*Result, error) {
	q, ok := scalar.(*types.Quantity)
	if !ok || len(c.Parts) == 0 {
		return nil, runtimeErr(DimensionMismatch, n.Range, "cannot combine a composite value with %s", scalar.TypeName())
	}
	last := c.Parts[len(c.Parts)-1]
	converted, err := units.Convert(q.Value, q.Unit, last.Unit)
	if err != nil {
		return nil, runtimeErr(DimensionMismatch, n.Range, "%v", err)
	}
	newParts := make([]*types.Quantity, len(c.Parts))
	copy(newParts, c.Parts)
	newParts[len(newParts)-1] = types.NewQuantity(last.Value.Add(sign.Mul(converted)), last.Unit)
	return wrap(renormalizeComposite(newParts)), nil
}

// renormalizeComposite carries any overflow/underflow between adjacent
// parts (largest to smallest), using each pair's conversion factor.
func renormalizeComposite(parts []*types.Quantity) *types.Composite {
	for i := len(parts) - 1; i > 0; i-- {
		small, big := parts[i], parts[i-1]
		factor, err := units.Convert(decimal.NewFromInt(1), big.Unit, small.Unit)
		if err != nil || factor.IsZero() {
			continue
		}
		borrow := small.Value.Div(factor).Floor().Neg()
		if borrow.IsZero() {
			continue
		}
		parts[i] = types.NewQuantity(small.Value.Add(borrow.Mul(factor)), small.Unit)
		parts[i-1] = types.NewQuantity(big.Value.Sub(borrow), big.Unit)
	}
	return types.NewComposite(parts...)
}

func (e *Evaluator) evalMul(n *ast.BinaryExpression, left, right types.Type) (*Result, error) {
	if frac, ok := percentOperand(right); ok {
		return wrap(scaleValue(left, frac)), nil
	}
	if frac, ok := percentOperand(left); ok {
		return wrap(scaleValue(right, frac)), nil
	}

	lq, lIsQ := left.(*types.Quantity)
	rq, rIsQ := right.(*types.Quantity)
	switch {
	case lIsQ && rIsQ:
		return wrap(types.NewQuantity(lq.Value.Mul(rq.Value), units.Multiply(lq.Unit, rq.Unit))), nil
	case lIsQ:
		rv, ok := decimalOf(right)
		if !ok {
			return nil, runtimeErr(TypeMismatch, n.Range, "cannot multiply %s by %s", lq.TypeName(), right.TypeName())
		}
		return wrap(types.NewQuantity(lq.Value.Mul(rv), lq.Unit)), nil
	case rIsQ:
		lv, ok := decimalOf(left)
		if !ok {
			return nil, runtimeErr(TypeMismatch, n.Range, "cannot multiply %s by %s", left.TypeName(), rq.TypeName())
		}
		return wrap(types.NewQuantity(rq.Value.Mul(lv), rq.Unit)), nil
	}

	if lc, ok := left.(*types.Currency); ok {
		rv, ok := decimalOf(right)
		if !ok {
			return nil, runtimeErr(TypeMismatch, n.Range, "cannot multiply currency by %s", right.TypeName())
		}
		return wrap(&types.Currency{Value: lc.Value.Mul(rv), Code: lc.Code, Symbol: lc.Symbol}), nil
	}
	if rc, ok := right.(*types.Currency); ok {
		lv, ok := decimalOf(left)
		if !ok {
			return nil, runtimeErr(TypeMismatch, n.Range, "cannot multiply %s by currency", left.TypeName())
		}
		return wrap(&types.Currency{Value: rc.Value.Mul(lv), Code: rc.Code, Symbol: rc.Symbol}), nil
	}

	lv, lok := decimalOf(left)
	rv, rok := decimalOf(right)
	if !lok || !rok {
		return nil, runtimeErr(TypeMismatch, n.Range, "cannot multiply %s by %s", left.TypeName(), right.TypeName())
	}
	return wrap(&types.Number{Value: lv.Mul(rv)}), nil
}

func (e *Evaluator) evalDiv(n *ast.BinaryExpression, left, right types.Type) (*Result, error) {
	if frac, ok := percentOperand(right); ok {
		if frac.IsZero() {
			return nil, runtimeErr(DivisionByZero, n.Range, "division by 0%%")
		}
		return wrap(scaleValue(left, decimal.NewFromInt(1).Div(frac))), nil
	}

	rv, rok := decimalOf(right)
	if rok && rv.IsZero() {
		if _, isQ := right.(*types.Quantity); !isQ {
			return nil, runtimeErr(DivisionByZero, n.Range, "division by zero")
		}
	}

	lq, lIsQ := left.(*types.Quantity)
	rq, rIsQ := right.(*types.Quantity)
	switch {
	case lIsQ && rIsQ:
		if rq.Value.IsZero() {
			return nil, runtimeErr(DivisionByZero, n.Range, "division by zero")
		}
		return wrap(types.NewQuantity(lq.Value.Div(rq.Value), units.Divide(lq.Unit, rq.Unit))), nil
	case lIsQ:
		if rv.IsZero() {
			return nil, runtimeErr(DivisionByZero, n.Range, "division by zero")
		}
		return wrap(types.NewQuantity(lq.Value.Div(rv), lq.Unit)), nil
	case rIsQ:
		lv, ok := decimalOf(left)
		if !ok {
			return nil, runtimeErr(TypeMismatch, n.Range, "cannot divide %s by %s", left.TypeName(), rq.TypeName())
		}
		return wrap(types.NewQuantity(lv.Div(rq.Value), units.Divide(units.Composition{}, rq.Unit))), nil
	}

	if lc, ok := left.(*types.Currency); ok {
		if rv.IsZero() {
			return nil, runtimeErr(DivisionByZero, n.Range, "division by zero")
		}
		return wrap(&types.Currency{Value: lc.Value.Div(rv), Code: lc.Code, Symbol: lc.Symbol}), nil
	}

	lv, lok := decimalOf(left)
	if !lok || !rok {
		return nil, runtimeErr(TypeMismatch, n.Range, "cannot divide %s by %s", left.TypeName(), right.TypeName())
	}
	if rv.IsZero() {
		return nil, runtimeErr(DivisionByZero, n.Range, "division by zero")
	}
	return wrap(&types.Number{Value: lv.Div(rv)}), nil
}

// evalPow implements spec.md §4.D's power rules: integer exponents on any
// base; non-integer exponents only on dimensionless bases, except the
// narrow `(x unit)^(1/n)` root form documented in SPEC_FULL.md §8 when n
// evenly divides every exponent of the base's composition.
func (e *Evaluator) evalPow(n *ast.BinaryExpression, left, right types.Type) (*Result, error) {
	exp, ok := decimalOf(right)
	if !ok {
		return nil, runtimeErr(TypeMismatch, n.Range, "exponent must be a plain number")
	}

	if q, ok := left.(*types.Quantity); ok {
		if exp.IsInteger() {
			p := int(exp.IntPart())
			return wrap(types.NewQuantity(powDecimal(q.Value, p), units.Pow(q.Unit, p))), nil
		}
		if root, ok := reciprocalInt(exp); ok {
			newComp, ok := divideCompositionExponents(q.Unit, root)
			if !ok {
				return nil, runtimeErr(DomainError, n.Range, "%d-th root does not divide the unit's dimension evenly", root)
			}
			f, _ := q.Value.Float64()
			return wrap(types.NewQuantity(decimal.NewFromFloat(math.Pow(f, 1.0/float64(root))), newComp)), nil
		}
		return nil, runtimeErr(DomainError, n.Range, "non-integer exponent on a dimensioned value")
	}

	base, ok := decimalOf(left)
	if !ok {
		return nil, runtimeErr(TypeMismatch, n.Range, "cannot raise %s to a power", left.TypeName())
	}
	return wrap(&types.Number{Value: decimalPow(base, exp)}), nil
}

// powDecimal raises base to an integer power p (may be negative), via
// decimal.Pow for the magnitude part of a Quantity exponentiation.
func powDecimal(base decimal.Decimal, p int) decimal.Decimal {
	if p >= 0 {
		return base.Pow(decimal.NewFromInt(int64(p)))
	}
	return decimal.NewFromInt(1).Div(base.Pow(decimal.NewFromInt(int64(-p))))
}

func decimalPow(base, exp decimal.Decimal) decimal.Decimal {
	if exp.IsInteger() {
		e := exp.IntPart()
		if e >= 0 {
			return base.Pow(decimal.NewFromInt(e))
		}
		return decimal.NewFromInt(1).Div(base.Pow(decimal.NewFromInt(-e)))
	}
	b, _ := base.Float64()
	x, _ := exp.Float64()
	return decimal.NewFromFloat(math.Pow(b, x))
}

// reciprocalInt reports whether d is (to decimal precision) 1/n for some
// small positive integer n, supporting the `^(1/n)` root-on-dimensioned-base
// special case.
func reciprocalInt(d decimal.Decimal) (int, bool) {
	if d.IsZero() || d.IsNegative() {
		return 0, false
	}
	for nRoot := 2; nRoot <= 12; nRoot++ {
		candidate := decimal.NewFromInt(1).Div(decimal.NewFromInt(int64(nRoot)))
		if d.Sub(candidate).Abs().LessThan(decimal.NewFromFloat(1e-9)) {
			return nRoot, true
		}
	}
	return 0, false
}

func divideCompositionExponents(c units.Composition, n int) (units.Composition, bool) {
	var out units.Composition
	for _, t := range c.Terms {
		if t.Exponent%n != 0 {
			return units.Composition{}, false
		}
		out.Terms = append(out.Terms, units.Term{Symbol: t.Symbol, Exponent: t.Exponent / n})
	}
	return out.Normalize(), true
}

func (e *Evaluator) evalComparison(n *ast.BinaryExpression, left, right types.Type) (*Result, error) {
	if lb, ok := left.(*types.Boolean); ok {
		rb, ok := right.(*types.Boolean)
		if !ok {
			return nil, runtimeErr(TypeMismatch, n.Range, "cannot compare Boolean with %s", right.TypeName())
		}
		switch n.Operator {
		case "==":
			return wrap(&types.Boolean{Value: lb.Value == rb.Value}), nil
		case "!=":
			return wrap(&types.Boolean{Value: lb.Value != rb.Value}), nil
		default:
			return nil, runtimeErr(TypeMismatch, n.Range, "ordering comparisons don't apply to Boolean")
		}
	}

	lv, lok := comparableDecimal(left)
	rv, rok := comparableDecimal(right, left)
	if !lok || !rok {
		return nil, runtimeErr(TypeMismatch, n.Range, "cannot compare %s with %s", left.TypeName(), right.TypeName())
	}

	var result bool
	switch n.Operator {
	case ">":
		result = lv.GreaterThan(rv)
	case "<":
		result = lv.LessThan(rv)
	case ">=":
		result = lv.GreaterThanOrEqual(rv)
	case "<=":
		result = lv.LessThanOrEqual(rv)
	case "==":
		result = lv.Equal(rv)
	case "!=":
		result = !lv.Equal(rv)
	}
	return wrap(&types.Boolean{Value: result}), nil
}

// comparableDecimal extracts a decimal magnitude for comparison, converting
// a Quantity into the other operand's units when one is given.
func comparableDecimal(v types.Type, other ...types.Type) (decimal.Decimal, bool) {
	q, isQ := v.(*types.Quantity)
	if isQ && len(other) == 1 {
		if oq, ok := other[0].(*types.Quantity); ok {
			if converted, err := units.Convert(q.Value, q.Unit, oq.Unit); err == nil {
				return converted, true
			}
		}
	}
	return decimalOf(v)
}

func decimalOf(v types.Type) (decimal.Decimal, bool) {
	switch t := v.(type) {
	case *types.Number:
		return t.Value, true
	case *types.Currency:
		return t.Value, true
	case *types.Quantity:
		return t.Value, true
	case *types.Percentage:
		return t.Fraction, true
	default:
		return decimal.Zero, false
	}
}

func (e *Evaluator) evalLogical(n *ast.BinaryExpression, left, right types.Type) (*Result, error) {
	lb, lok := left.(*types.Boolean)
	rb, rok := right.(*types.Boolean)
	if !lok || !rok {
		return nil, runtimeErr(TypeMismatch, n.Range, "%q requires Boolean operands", n.Operator)
	}
	var result bool
	if n.Operator == "and" {
		result = lb.Value && rb.Value
	} else {
		result = lb.Value || rb.Value
	}
	return wrap(&types.Boolean{Value: result}), nil
}

func (e *Evaluator) evalUnary(n *ast.UnaryExpression) (*Result, error) {
	res, err := e.evalExpr(n.Operand)
	if err != nil {
		return nil, err
	}
	switch n.Operator {
	case "-":
		return wrap(scaleValue(res.Value, decimal.NewFromInt(-1))), nil
	case "+":
		return res, nil
	case "not":
		b, ok := res.Value.(*types.Boolean)
		if !ok {
			return nil, runtimeErr(TypeMismatch, n.Range, "%q requires a Boolean operand", n.Operator)
		}
		return wrap(&types.Boolean{Value: !b.Value}), nil
	default:
		return nil, runtimeErr(TypeMismatch, n.Range, "unknown unary operator %q", n.Operator)
	}
}

func (e *Evaluator) evalPostfix(n *ast.PostfixExpression) (*Result, error) {
	res, err := e.evalExpr(n.Operand)
	if err != nil {
		return nil, err
	}
	switch n.Operator {
	case "%", "‰":
		d, ok := decimalOf(res.Value)
		if !ok {
			return nil, runtimeErr(TypeMismatch, n.Range, "%q requires a numeric operand", n.Operator)
		}
		scale := decimal.NewFromInt(100)
		if n.Operator == "‰" {
			scale = decimal.NewFromInt(1000)
		}
		return wrap(types.NewPercentage(d.Div(scale), n.Operator == "‰")), nil
	case "!":
		d, ok := decimalOf(res.Value)
		if !ok || !d.IsInteger() || d.IsNegative() {
			return nil, runtimeErr(DomainError, n.Range, "factorial requires a non-negative integer")
		}
		return wrap(&types.Number{Value: decimalFactorial(d.IntPart())}), nil
	default:
		return nil, runtimeErr(TypeMismatch, n.Range, "unknown postfix operator %q", n.Operator)
	}
}

func (e *Evaluator) evalConditional(n *ast.ConditionalExpr) (*Result, error) {
	condRes, err := e.evalExpr(n.Cond)
	if err != nil {
		return nil, err
	}
	b, ok := condRes.Value.(*types.Boolean)
	if !ok {
		return nil, runtimeErr(TypeMismatch, n.Range, "conditional requires a Boolean condition")
	}
	if b.Value {
		return e.evalExpr(n.Then)
	}
	return e.evalExpr(n.Else)
}
