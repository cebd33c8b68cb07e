// Package notecalc is a line-oriented notepad calculator: feed it a
// free-form document mixing prose, headings, variable assignments, and
// unit/currency/date-aware expressions, and it returns one result per
// line, evaluated top-to-bottom against bindings made by earlier lines.
//
// Basic usage:
//
//	doc := notecalc.Calculate("1 + 1", notecalc.DefaultSettings(), nil)
//	fmt.Println(*doc.Results[0].Result) // "2"
//
// Stateful sessions (for live editors, which re-run the whole document on
// every keystroke rather than threading state call-to-call):
//
//	session := notecalc.NewSession(notecalc.DefaultSettings(), nil)
//	doc := session.Eval("x = 10\nx + 5")
//	fmt.Println(*doc.Results[1].Result) // "15"
package notecalc

import (
	"github.com/google/uuid"

	"github.com/notecalc/notecalc/ast"
	"github.com/notecalc/notecalc/classifier"
	"github.com/notecalc/notecalc/currency"
	"github.com/notecalc/notecalc/evaluator"
	"github.com/notecalc/notecalc/format"
)

// Calculate is the core entrypoint (spec.md §6): `calculate(source,
// settings) -> DocumentResult`. rates may be nil — currency conversion
// then fails per-line with ExchangeRateUnavailable rather than panicking.
func Calculate(source string, settings Settings, rates *currency.Rates) *DocumentResult {
	settings = settings.Normalize()
	env := evaluator.NewEnvironment(rates, settings.AngleUnit)
	return calculate(source, settings, env)
}

// calculate is the shared worker behind Calculate and Session.Eval: it
// owns one Environment for the document's full top-to-bottom pass
// (spec.md §5's "local environment... not shared across documents").
func calculate(source string, settings Settings, env *evaluator.Environment) *DocumentResult {
	lines := splitLines(source)
	doc := &ast.Document{Lines: make([]ast.Node, len(lines))}
	results := make([]LineResult, len(lines))
	var errs DocumentErrors

	ev := evaluator.NewEvaluator(env)

	for i, line := range lines {
		lineNo := i + 1
		node := classifier.ClassifyLine(line, lineNo, env)
		doc.Lines[i] = node

		lr := LineResult{ID: uuid.New(), Line: lineNo, Type: lineType(node)}

		switch node.(type) {
		case *ast.Heading, *ast.EmptyLine, *ast.PlainText:
			// No value to compute or report.
		default:
			res, err := ev.EvalLine(node)
			switch {
			case err != nil:
				lr.HasError = true
				errs.Runtime = append(errs.Runtime, toLocatedError(err))
			case res == nil:
				// Nothing rendered (shouldn't happen for Assignment/Expression, but
				// guards the formatter against a nil Value).
			default:
				body, ferr := format.Render(&evaluator.Result{Value: res.Value, Format: res.Format}, settings)
				if ferr != nil {
					lr.HasError = true
					errs.Runtime = append(errs.Runtime, LocatedError{Message: ferr.Error()})
				} else {
					lr.Result = &body
					lr.Details = res.Details
				}
			}
		}

		results[i] = lr
	}

	return &DocumentResult{Results: results, Errors: errs, AST: doc}
}

func toLocatedError(err error) LocatedError {
	if rerr, ok := err.(*evaluator.RuntimeError); ok {
		return LocatedError{Message: rerr.Message, Range: rerr.Range}
	}
	return LocatedError{Message: err.Error()}
}

// splitLines splits on "\n" without a trailing CRLF surviving into the
// line content; each line keeps its own index as its 1-based line number.
func splitLines(source string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(source); i++ {
		if source[i] == '\n' {
			line := source[start:i]
			if n := len(line); n > 0 && line[n-1] == '\r' {
				line = line[:n-1]
			}
			lines = append(lines, line)
			start = i + 1
		}
	}
	lines = append(lines, source[start:])
	return lines
}
