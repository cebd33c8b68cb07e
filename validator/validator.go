package validator

import (
	"strings"

	"github.com/notecalc/notecalc/ast"
	"github.com/notecalc/notecalc/classifier"
	"github.com/notecalc/notecalc/evaluator"
	"github.com/notecalc/notecalc/lexer"
	"github.com/notecalc/notecalc/parser"
)

func lineRange(source string, lineNo int) *ast.Range {
	return &ast.Range{
		Start: ast.Position{Line: lineNo, Column: 1},
		End:   ast.Position{Line: lineNo, Column: len([]rune(source)) + 1},
	}
}

// ValidateLine classifies one line the same way the main rendering
// pipeline would, then — only for lines the classifier decided are an
// actual calculation — speculatively evaluates it against a clone of env
// and reports any RuntimeError as a diagnostic. Lines the classifier
// resolves to prose, a heading, or blank never produce a diagnostic here:
// that leniency is the whole point of the classifier (spec.md §1 "never
// aborts on a bad line"), and re-litigating it in the overlay would
// underline ordinary sentences in red. Use ValidateExpression instead
// when a line is already known — or explicitly asserted by the user — to
// be an attempted calculation and its syntax errors should surface.
func ValidateLine(source string, lineNo int, env *evaluator.Environment) *Result {
	if env == nil {
		env = evaluator.NewEnvironment(nil, "")
	}

	node := classifier.ClassifyLine(source, lineNo, env)
	switch node.(type) {
	case *ast.Heading, *ast.EmptyLine, *ast.PlainText:
		return newResult(nil)
	}

	scratch := env.Clone()
	ev := evaluator.NewEvaluator(scratch)
	if _, err := ev.EvalLine(node); err != nil {
		if rerr, ok := err.(*evaluator.RuntimeError); ok {
			return newResult([]*Diagnostic{{
				Severity: Error,
				Kind:     Kind(rerr.Kind),
				Message:  rerr.Message,
				Range:    rerr.Range,
			}})
		}
		return newResult([]*Diagnostic{{Severity: Error, Kind: ParserError, Message: err.Error(), Range: lineRange(source, lineNo)}})
	}

	return newResult(nil)
}

// ValidateExpression bypasses prose classification entirely and reports
// the raw LexerError/ParserError a line produces when parsed as an
// expression outright — for an editor action like "explain why this
// didn't calculate" on a line the user has flagged as intended math
// (spec.md §4.B/§4.C's error shapes). No CLI subcommand calls it.
func ValidateExpression(source string, lineNo int) *Result {
	if _, err := lexer.Tokenize(source); err != nil {
		return newResult([]*Diagnostic{{Severity: Error, Kind: LexerError, Message: err.Error(), Range: lineRange(source, lineNo)}})
	}
	if _, err := parser.ParseLine(source, lineNo); err != nil {
		return newResult([]*Diagnostic{{Severity: Error, Kind: ParserError, Message: err.Error(), Range: lineRange(source, lineNo)}})
	}
	return newResult(nil)
}

// ValidateDocument walks a document's lines top to bottom, carrying
// variable bindings forward exactly as a real calculate() pass would: a
// valid line's binding is committed before the next line is checked, so
// forward references still fail and backward references resolve. A Hint
// is attached when a valid calculation line isn't set off by a blank line
// on either side (the teacher's readability nudge).
func ValidateDocument(source string, env *evaluator.Environment) map[int]*Result {
	if env == nil {
		env = evaluator.NewEnvironment(nil, "")
	}

	lines := strings.Split(source, "\n")
	results := make(map[int]*Result, len(lines))
	isBlank := func(s string) bool { return strings.TrimSpace(s) == "" }

	ev := evaluator.NewEvaluator(env)

	for i, line := range lines {
		lineNo := i + 1
		if isBlank(line) {
			continue
		}

		result := ValidateLine(line, lineNo, env)

		if result.IsValid() {
			node := classifier.ClassifyLine(line, lineNo, env)
			switch node.(type) {
			case *ast.ExpressionLine, *ast.VariableAssignment:
				addIsolationHints(result, lines, i)
				ev.EvalLine(node)
			}
		}

		if len(result.Diagnostics) > 0 {
			results[lineNo] = result
		}
	}

	return results
}

func addIsolationHints(result *Result, lines []string, i int) {
	isBlank := func(s string) bool { return strings.TrimSpace(s) == "" }
	if i > 0 && !isBlank(lines[i-1]) {
		result.Diagnostics = append(result.Diagnostics, &Diagnostic{
			Severity: Hint,
			Kind:     BlankLineIsolation,
			Message:  "consider a blank line before this calculation",
		})
	}
	if i < len(lines)-1 && !isBlank(lines[i+1]) {
		result.Diagnostics = append(result.Diagnostics, &Diagnostic{
			Severity: Hint,
			Kind:     BlankLineIsolation,
			Message:  "consider a blank line after this calculation",
		})
	}
}
