package evaluator

import (
	"math"
	"math/rand"

	"github.com/shopspring/decimal"

	"github.com/notecalc/notecalc/ast"
	"github.com/notecalc/notecalc/types"
	"github.com/notecalc/notecalc/units"
)

// evalFunctionCall evaluates a FunctionCall node against the registry
// below, grounded on the teacher's evalFunctionCall switch.
func (e *Evaluator) evalFunctionCall(f *ast.FunctionCall) (*Result, error) {
	args := make([]types.Type, len(f.Args))
	for i, a := range f.Args {
		res, err := e.evalExpr(a)
		if err != nil {
			return nil, err
		}
		args[i] = res.Value
	}

	switch f.Name {
	case "sin", "cos", "tan":
		return e.evalTrig(f, args, f.Name)
	case "asin", "arcsin":
		return e.evalInverseTrig(f, args, math.Asin, -1, 1)
	case "acos", "arccos":
		return e.evalInverseTrig(f, args, math.Acos, -1, 1)
	case "atan", "arctan":
		return wrap1(numberFromFloat(math.Atan(mustFloat(args, 0))))
	case "sinh":
		return wrap1(numberFromFloat(math.Sinh(mustFloat(args, 0))))
	case "cosh":
		return wrap1(numberFromFloat(math.Cosh(mustFloat(args, 0))))
	case "tanh":
		return wrap1(numberFromFloat(math.Tanh(mustFloat(args, 0))))
	case "asinh", "arsinh":
		return wrap1(numberFromFloat(math.Asinh(mustFloat(args, 0))))
	case "acosh", "arcosh":
		x := mustFloat(args, 0)
		if x < 1 {
			return nil, runtimeErr(DomainError, f.Range, "acosh requires an argument >= 1")
		}
		return wrap1(numberFromFloat(math.Acosh(x)))
	case "atanh", "artanh":
		x := mustFloat(args, 0)
		if x <= -1 || x >= 1 {
			return nil, runtimeErr(DomainError, f.Range, "atanh requires an argument strictly between -1 and 1")
		}
		return wrap1(numberFromFloat(math.Atanh(x)))
	case "sqrt":
		return e.evalSqrt(f, args)
	case "cbrt":
		return wrap1(numberFromFloat(math.Cbrt(mustFloat(args, 0))))
	case "ln":
		x := mustFloat(args, 0)
		if x <= 0 {
			return nil, runtimeErr(DomainError, f.Range, "ln requires a positive argument")
		}
		return wrap1(numberFromFloat(math.Log(x)))
	case "log10":
		x := mustFloat(args, 0)
		if x <= 0 {
			return nil, runtimeErr(DomainError, f.Range, "log10 requires a positive argument")
		}
		return wrap1(numberFromFloat(math.Log10(x)))
	case "exp":
		return wrap1(numberFromFloat(math.Exp(mustFloat(args, 0))))
	case "log":
		return e.evalLog(f, args)
	case "round", "floor", "ceil", "trunc":
		return e.evalRounding(f, args, f.Name)
	case "abs":
		return e.evalAbs(f, args)
	case "sign":
		return e.evalSign(f, args)
	case "frac":
		return e.evalFrac(f, args)
	case "random":
		return e.evalRandom(f, args)
	case "perm":
		return e.evalPerm(f, args)
	case "comb":
		return e.evalComb(f, args)
	case "avg", "average":
		return e.evalAverage(f, args)
	case "sum":
		return e.evalSum(f, args)
	default:
		return nil, runtimeErr(UnknownIdentifier, f.Range, "unknown function %q", f.Name)
	}
}

func wrap1(v *types.Number, err error) (*Result, error) {
	if err != nil {
		return nil, err
	}
	return wrap(v), nil
}

func numberFromFloat(f float64) (*types.Number, error) {
	return types.NewNumber(decimal.NewFromFloat(f))
}

// mustFloat converts the i-th argument to float64 for use with math
// package functions, treating a missing/non-numeric argument as 0. The
// parser does not check a function's arity, so a missing argument reads
// as 0 here.
func mustFloat(args []types.Type, i int) float64 {
	if i >= len(args) {
		return 0
	}
	d, ok := decimalOf(args[i])
	if !ok {
		return 0
	}
	f, _ := d.Float64()
	return f
}

// angleToRadians interprets a trig function's argument: an explicit angle
// unit (degree, radian, gradian, ...) always wins; a bare dimensionless
// number is read per the Environment's configured AngleUnit.
func (e *Evaluator) angleToRadians(f *ast.FunctionCall, v types.Type) (float64, error) {
	if q, ok := v.(*types.Quantity); ok {
		rad, err := units.Convert(q.Value, q.Unit, units.Single("rad"))
		if err != nil {
			return 0, runtimeErr(DimensionMismatch, f.Range, "%v", err)
		}
		r, _ := rad.Float64()
		return r, nil
	}
	d, ok := decimalOf(v)
	if !ok {
		return 0, runtimeErr(TypeMismatch, f.Range, "%s requires a numeric argument", f.Name)
	}
	x, _ := d.Float64()
	if e.Env.AngleUnit == "radian" {
		return x, nil
	}
	return x * math.Pi / 180, nil
}

func (e *Evaluator) evalTrig(f *ast.FunctionCall, args []types.Type, name string) (*Result, error) {
	if len(args) != 1 {
		return nil, runtimeErr(TypeMismatch, f.Range, "%s() requires exactly one argument", name)
	}
	rad, err := e.angleToRadians(f, args[0])
	if err != nil {
		return nil, err
	}
	var result float64
	switch name {
	case "sin":
		result = math.Sin(rad)
	case "cos":
		result = math.Cos(rad)
	case "tan":
		result = math.Tan(rad)
	}
	v, err := numberFromFloat(result)
	if err != nil {
		return nil, err
	}
	return wrap(v), nil
}

func (e *Evaluator) evalInverseTrig(f *ast.FunctionCall, args []types.Type, fn func(float64) float64, lo, hi float64) (*Result, error) {
	if len(args) != 1 {
		return nil, runtimeErr(TypeMismatch, f.Range, "%s() requires exactly one argument", f.Name)
	}
	x := mustFloat(args, 0)
	if x < lo || x > hi {
		return nil, runtimeErr(DomainError, f.Range, "%s requires an argument in [%g, %g]", f.Name, lo, hi)
	}
	v, err := numberFromFloat(fn(x))
	if err != nil {
		return nil, err
	}
	return wrap(v), nil
}

func (e *Evaluator) evalSqrt(f *ast.FunctionCall, args []types.Type) (*Result, error) {
	if len(args) != 1 {
		return nil, runtimeErr(TypeMismatch, f.Range, "sqrt() requires exactly one argument")
	}
	if q, ok := args[0].(*types.Quantity); ok {
		newComp, ok := divideCompositionExponents(q.Unit, 2)
		if !ok {
			return nil, runtimeErr(DomainError, f.Range, "sqrt requires an even unit exponent")
		}
		if q.Value.IsNegative() {
			return nil, runtimeErr(DomainError, f.Range, "sqrt() argument must be non-negative")
		}
		fl, _ := q.Value.Float64()
		return wrap(types.NewQuantity(decimal.NewFromFloat(math.Sqrt(fl)), newComp)), nil
	}
	d, ok := decimalOf(args[0])
	if !ok {
		return nil, runtimeErr(TypeMismatch, f.Range, "sqrt() argument must be numeric")
	}
	if d.IsNegative() {
		return nil, runtimeErr(DomainError, f.Range, "sqrt() argument must be non-negative")
	}
	fl, _ := d.Float64()
	v, err := numberFromFloat(math.Sqrt(fl))
	if err != nil {
		return nil, err
	}
	return wrap(v), nil
}

func (e *Evaluator) evalLog(f *ast.FunctionCall, args []types.Type) (*Result, error) {
	x := mustFloat(args, 0)
	if x <= 0 {
		return nil, runtimeErr(DomainError, f.Range, "log requires a positive argument")
	}
	if len(args) == 1 {
		v, err := numberFromFloat(math.Log(x))
		return wrap(v), err
	}
	if len(args) != 2 {
		return nil, runtimeErr(TypeMismatch, f.Range, "log() takes one or two arguments")
	}
	base := mustFloat(args, 1)
	if base <= 0 || base == 1 {
		return nil, runtimeErr(DomainError, f.Range, "log base must be positive and not equal to 1")
	}
	v, err := numberFromFloat(math.Log(x) / math.Log(base))
	if err != nil {
		return nil, err
	}
	return wrap(v), nil
}

func (e *Evaluator) evalRounding(f *ast.FunctionCall, args []types.Type, name string) (*Result, error) {
	if len(args) < 1 || len(args) > 2 {
		return nil, runtimeErr(TypeMismatch, f.Range, "%s() takes one or two arguments", name)
	}
	nearest := decimal.NewFromInt(1)
	if len(args) == 2 {
		n, ok := decimalOf(args[1])
		if !ok || n.IsZero() {
			return nil, runtimeErr(TypeMismatch, f.Range, "%s()'s nearest argument must be a nonzero number", name)
		}
		nearest = n
	}

	roundOne := func(d decimal.Decimal) decimal.Decimal {
		scaled := d.Div(nearest)
		var r decimal.Decimal
		switch name {
		case "round":
			r = scaled.Round(0)
		case "floor":
			r = scaled.Floor()
		case "ceil":
			r = scaled.Ceil()
		case "trunc":
			r = scaled.Truncate(0)
		}
		return r.Mul(nearest)
	}

	if q, ok := args[0].(*types.Quantity); ok {
		return wrap(types.NewQuantity(roundOne(q.Value), q.Unit)), nil
	}
	d, ok := decimalOf(args[0])
	if !ok {
		return nil, runtimeErr(TypeMismatch, f.Range, "%s() requires a numeric argument", name)
	}
	return wrap(&types.Number{Value: roundOne(d)}), nil
}

func (e *Evaluator) evalAbs(f *ast.FunctionCall, args []types.Type) (*Result, error) {
	if len(args) != 1 {
		return nil, runtimeErr(TypeMismatch, f.Range, "abs() requires exactly one argument")
	}
	return wrap(scaleMagnitude(args[0], decimal.Decimal.Abs)), nil
}

func (e *Evaluator) evalSign(f *ast.FunctionCall, args []types.Type) (*Result, error) {
	if len(args) != 1 {
		return nil, runtimeErr(TypeMismatch, f.Range, "sign() requires exactly one argument")
	}
	d, ok := decimalOf(args[0])
	if !ok {
		return nil, runtimeErr(TypeMismatch, f.Range, "sign() requires a numeric argument")
	}
	return wrap(&types.Number{Value: decimal.NewFromInt(int64(d.Sign()))}), nil
}

func (e *Evaluator) evalFrac(f *ast.FunctionCall, args []types.Type) (*Result, error) {
	if len(args) != 1 {
		return nil, runtimeErr(TypeMismatch, f.Range, "frac() requires exactly one argument")
	}
	return wrap(scaleMagnitude(args[0], func(d decimal.Decimal) decimal.Decimal {
		return d.Sub(d.Truncate(0))
	})), nil
}

// scaleMagnitude applies fn to a Number's or Quantity's magnitude,
// preserving its unit in the Quantity case.
func scaleMagnitude(v types.Type, fn func(decimal.Decimal) decimal.Decimal) types.Type {
	switch t := v.(type) {
	case *types.Quantity:
		return types.NewQuantity(fn(t.Value), t.Unit)
	case *types.Currency:
		return &types.Currency{Value: fn(t.Value), Code: t.Code, Symbol: t.Symbol}
	default:
		d, ok := decimalOf(v)
		if !ok {
			return v
		}
		return &types.Number{Value: fn(d)}
	}
}

func (e *Evaluator) evalRandom(f *ast.FunctionCall, args []types.Type) (*Result, error) {
	switch len(args) {
	case 0:
		v, err := numberFromFloat(rand.Float64())
		return wrap(v), err
	case 1:
		max := mustFloat(args, 0)
		v, err := numberFromFloat(rand.Float64() * max)
		return wrap(v), err
	case 2:
		min, max := mustFloat(args, 0), mustFloat(args, 1)
		v, err := numberFromFloat(min + rand.Float64()*(max-min))
		return wrap(v), err
	case 3:
		min, max, step := mustFloat(args, 0), mustFloat(args, 1), mustFloat(args, 2)
		if step <= 0 {
			return nil, runtimeErr(DomainError, f.Range, "random()'s step must be positive")
		}
		steps := int(math.Floor((max - min) / step))
		chosen := min + float64(rand.Intn(steps+1))*step
		v, err := numberFromFloat(chosen)
		return wrap(v), err
	default:
		return nil, runtimeErr(TypeMismatch, f.Range, "random() takes at most three arguments")
	}
}

// decimalFactorial computes n! for a small non-negative integer n.
func decimalFactorial(n int64) decimal.Decimal {
	result := decimal.NewFromInt(1)
	for i := int64(2); i <= n; i++ {
		result = result.Mul(decimal.NewFromInt(i))
	}
	return result
}

func intArg(f *ast.FunctionCall, args []types.Type, i int) (int64, error) {
	d, ok := decimalOf(args[i])
	if !ok || !d.IsInteger() || d.IsNegative() {
		return 0, runtimeErr(DomainError, f.Range, "%s() requires non-negative integer arguments", f.Name)
	}
	return d.IntPart(), nil
}

func (e *Evaluator) evalPerm(f *ast.FunctionCall, args []types.Type) (*Result, error) {
	if len(args) != 2 {
		return nil, runtimeErr(TypeMismatch, f.Range, "perm() requires exactly two arguments")
	}
	n, err := intArg(f, args, 0)
	if err != nil {
		return nil, err
	}
	k, err := intArg(f, args, 1)
	if err != nil {
		return nil, err
	}
	if k > n {
		return nil, runtimeErr(DomainError, f.Range, "perm(n, k) requires k <= n")
	}
	return wrap(&types.Number{Value: decimalFactorial(n).Div(decimalFactorial(n - k))}), nil
}

func (e *Evaluator) evalComb(f *ast.FunctionCall, args []types.Type) (*Result, error) {
	if len(args) != 2 {
		return nil, runtimeErr(TypeMismatch, f.Range, "comb() requires exactly two arguments")
	}
	n, err := intArg(f, args, 0)
	if err != nil {
		return nil, err
	}
	k, err := intArg(f, args, 1)
	if err != nil {
		return nil, err
	}
	if k > n {
		return nil, runtimeErr(DomainError, f.Range, "comb(n, k) requires k <= n")
	}
	denom := decimalFactorial(k).Mul(decimalFactorial(n - k))
	return wrap(&types.Number{Value: decimalFactorial(n).Div(denom)}), nil
}

// extractNumbers extracts decimal magnitudes from Number/Currency/Quantity
// arguments, grounded on the teacher's impl/interpreter/functions.go helper
// of the same name.
func extractNumbers(f *ast.FunctionCall, args []types.Type) ([]decimal.Decimal, error) {
	numbers := make([]decimal.Decimal, 0, len(args))
	for _, a := range args {
		d, ok := decimalOf(a)
		if !ok {
			return nil, runtimeErr(TypeMismatch, f.Range, "%s() arguments must be numeric", f.Name)
		}
		numbers = append(numbers, d)
	}
	return numbers, nil
}

func (e *Evaluator) evalAverage(f *ast.FunctionCall, args []types.Type) (*Result, error) {
	if len(args) == 0 {
		return nil, runtimeErr(TypeMismatch, f.Range, "avg() requires at least one argument")
	}
	numbers, err := extractNumbers(f, args)
	if err != nil {
		return nil, err
	}
	sum := decimal.Zero
	for _, n := range numbers {
		sum = sum.Add(n)
	}
	return wrap(&types.Number{Value: sum.Div(decimal.NewFromInt(int64(len(numbers))))}), nil
}

func (e *Evaluator) evalSum(f *ast.FunctionCall, args []types.Type) (*Result, error) {
	if len(args) == 0 {
		return nil, runtimeErr(TypeMismatch, f.Range, "sum() requires at least one argument")
	}
	numbers, err := extractNumbers(f, args)
	if err != nil {
		return nil, err
	}
	sum := decimal.Zero
	for _, n := range numbers {
		sum = sum.Add(n)
	}
	return wrap(&types.Number{Value: sum}), nil
}
