// Package evaluator interprets notecalc's AST against a mutable variable
// Environment, performing dimensional arithmetic, conversions, date
// arithmetic, and function calls per line.
package evaluator

import (
	"fmt"

	"github.com/notecalc/notecalc/ast"
	"github.com/notecalc/notecalc/types"
)

// ErrorKind is the RuntimeError taxonomy from spec.md §7.
type ErrorKind string

const (
	UnknownIdentifier       ErrorKind = "UnknownIdentifier"
	UnknownUnit             ErrorKind = "UnknownUnit"
	UnknownCurrency         ErrorKind = "UnknownCurrency"
	DimensionMismatch       ErrorKind = "DimensionMismatch"
	DomainError             ErrorKind = "DomainError"
	DivisionByZero          ErrorKind = "DivisionByZero"
	ExchangeRateUnavailable ErrorKind = "ExchangeRateUnavailable"
	TimezoneUnknown         ErrorKind = "TimezoneUnknown"
	TypeMismatch            ErrorKind = "TypeMismatch"
)

// RuntimeError is a located evaluation failure. It never escapes the
// per-line evaluator: the driver records it against the originating line
// and moves on (spec.md §7's propagation policy).
type RuntimeError struct {
	Kind    ErrorKind
	Message string
	Range   *ast.Range
}

func (e *RuntimeError) Error() string {
	if e.Range != nil {
		return fmt.Sprintf("%s: %s at %s", e.Kind, e.Message, e.Range.Start)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func runtimeErr(kind ErrorKind, rng *ast.Range, format string, args ...interface{}) *RuntimeError {
	return &RuntimeError{Kind: kind, Message: fmt.Sprintf(format, args...), Range: rng}
}

// Result is what evaluating one expression produces: the value itself,
// plus the optional presentation directive and conversion provenance the
// formatter needs. "based on:" provenance is a dedicated Details field
// rather than folded into the rendered string, so the host can place it
// independently of the primary result text. No evaluation path sets
// Details; it stays empty.
type Result struct {
	Value   types.Type
	Format  *ast.PresentationFormat
	Details []string
}

func wrap(v types.Type) *Result { return &Result{Value: v} }

// Evaluator walks one line's AST against a shared Environment.
type Evaluator struct {
	Env *Environment
}

// NewEvaluator creates an Evaluator over env, allocating a fresh
// Environment if env is nil.
func NewEvaluator(env *Environment) *Evaluator {
	if env == nil {
		env = NewEnvironment(nil, "degree")
	}
	return &Evaluator{Env: env}
}

// EvalLine evaluates one line-level AST node. Heading/EmptyLine/PlainText
// carry no expression and evaluate to a nil Result with no error.
func (e *Evaluator) EvalLine(node ast.Node) (*Result, error) {
	switch n := node.(type) {
	case *ast.Heading, *ast.EmptyLine, *ast.PlainText:
		return nil, nil
	case *ast.VariableAssignment:
		res, err := e.evalExpr(n.Expr)
		if err != nil {
			return nil, err
		}
		e.Env.Set(n.Name, res.Value)
		e.Env.Last = res.Value
		return res, nil
	case *ast.ExpressionLine:
		res, err := e.evalExpr(n.Expr)
		if err != nil {
			return nil, err
		}
		e.Env.Last = res.Value
		return res, nil
	default:
		return nil, runtimeErr(TypeMismatch, node.GetRange(), "cannot evaluate line node %T", node)
	}
}

// evalExpr dispatches on an expression-level AST node.
func (e *Evaluator) evalExpr(node ast.Node) (*Result, error) {
	switch n := node.(type) {
	case *ast.NumberLiteral:
		v, err := numberLiteralToNumber(n)
		if err != nil {
			return nil, err
		}
		return wrap(v), nil
	case *ast.PercentageLiteral:
		v, err := percentageLiteralToType(n)
		if err != nil {
			return nil, err
		}
		return wrap(v), nil
	case *ast.BooleanLiteral:
		return wrap(&types.Boolean{Value: n.Value}), nil
	case *ast.Variable:
		v, ok := e.Env.Get(n.Name)
		if !ok {
			return nil, runtimeErr(UnknownIdentifier, n.Range, "undefined variable %q", n.Name)
		}
		return wrap(v), nil
	case *ast.Constant:
		v, err := constantValue(n)
		if err != nil {
			return nil, err
		}
		return wrap(v), nil
	case *ast.FunctionCall:
		return e.evalFunctionCall(n)
	case *ast.UnaryExpression:
		return e.evalUnary(n)
	case *ast.BinaryExpression:
		return e.evalBinary(n)
	case *ast.PostfixExpression:
		return e.evalPostfix(n)
	case *ast.ConditionalExpr:
		return e.evalConditional(n)
	case *ast.Conversion:
		return e.evalConversion(n)
	case *ast.Value:
		v, err := e.valueToType(n)
		if err != nil {
			return nil, err
		}
		return wrap(v), nil
	case *ast.CompositeValue:
		v, err := e.compositeToType(n)
		if err != nil {
			return nil, err
		}
		return wrap(v), nil
	case *ast.DateLiteral:
		v, err := dateLiteralToType(n)
		if err != nil {
			return nil, err
		}
		return wrap(v), nil
	case *ast.TimeLiteral:
		v, err := timeLiteralToType(n)
		if err != nil {
			return nil, err
		}
		return wrap(v), nil
	case *ast.DateTimeLiteral:
		v, err := dateTimeLiteralToType(n)
		if err != nil {
			return nil, err
		}
		return wrap(v), nil
	case *ast.DurationLiteral:
		return e.evalExpr(n.Value)
	default:
		return nil, runtimeErr(TypeMismatch, node.GetRange(), "cannot evaluate expression node %T", node)
	}
}
