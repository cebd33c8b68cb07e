// Package classifier decides what a line of a notecalc document is: a
// heading, a blank line, a bound calculation, or plain prose that merely
// looks like an expression (a lone undefined identifier such as a word in
// a sentence).
package classifier

import (
	"github.com/notecalc/notecalc/ast"
	"github.com/notecalc/notecalc/evaluator"
	"github.com/notecalc/notecalc/parser"
)

// ClassifyLine parses source and reclassifies the result against env: a
// syntactically valid ExpressionLine whose identifiers are not all bound
// falls back to PlainText, and anything the parser rejects outright also
// falls back to PlainText (spec.md §4.B/§4.C: lexer/parser errors never
// propagate past the line they occurred on). Heading, EmptyLine, and
// VariableAssignment pass through unchanged — an assignment is always a
// calculation even when its right-hand side references an unbound name,
// since that failure belongs to evaluation (UnknownIdentifier), not
// classification.
func ClassifyLine(source string, lineNo int, env *evaluator.Environment) ast.Node {
	if env == nil {
		env = evaluator.NewEnvironment(nil, "")
	}

	node, err := parser.ParseLine(source, lineNo)
	if err != nil {
		return &ast.PlainText{Text: source}
	}

	expr, ok := node.(*ast.ExpressionLine)
	if !ok {
		return node
	}
	if identifiersDefined(expr.Expr, env) {
		return node
	}
	return &ast.PlainText{Text: source, Range: expr.Range}
}

// identifiersDefined reports whether every Variable reference reachable
// from node resolves in env. Constants, literals, and unit/target nodes
// carry no variable references and are trivially true.
func identifiersDefined(node ast.Node, env *evaluator.Environment) bool {
	switch n := node.(type) {
	case *ast.Variable:
		_, ok := env.Get(n.Name)
		return ok

	case *ast.Constant:
		return true

	case *ast.FunctionCall:
		for _, arg := range n.Args {
			if !identifiersDefined(arg, env) {
				return false
			}
		}
		return true

	case *ast.UnaryExpression:
		return identifiersDefined(n.Operand, env)

	case *ast.BinaryExpression:
		return identifiersDefined(n.Left, env) && identifiersDefined(n.Right, env)

	case *ast.PostfixExpression:
		return identifiersDefined(n.Operand, env)

	case *ast.ConditionalExpr:
		return identifiersDefined(n.Cond, env) &&
			identifiersDefined(n.Then, env) &&
			identifiersDefined(n.Else, env)

	case *ast.Conversion:
		return identifiersDefined(n.Expr, env)

	case *ast.Value:
		return identifiersDefined(n.Number, env)

	case *ast.CompositeValue:
		for _, p := range n.Parts {
			if !identifiersDefined(p, env) {
				return false
			}
		}
		return true

	case *ast.DurationLiteral:
		return identifiersDefined(n.Value, env)

	default:
		// NumberLiteral, PercentageLiteral, BooleanLiteral, DateLiteral,
		// TimeLiteral, DateTimeLiteral, and target nodes carry no
		// identifiers of their own.
		return true
	}
}
