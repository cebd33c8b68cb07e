// Package validator produces editor-overlay diagnostics for a notecalc
// document without mutating the evaluation environment a real calculate()
// pass would use (spec.md §7's debugMode overlay).
package validator

import (
	"fmt"

	"github.com/notecalc/notecalc/ast"
)

// Severity is a two-level scale (the teacher's three levels without a
// separate Warning tier): Error
// diagnostics make the line's result null, Hint diagnostics are style
// suggestions that never affect evaluation.
type Severity int

const (
	Error Severity = iota
	Hint
)

func (s Severity) String() string {
	switch s {
	case Error:
		return "error"
	case Hint:
		return "hint"
	default:
		return "unknown"
	}
}

// Kind identifies what went wrong: "LexerError" and "ParserError" cover
// the two syntax stages of spec.md §7; the rest are evaluator.ErrorKind
// values carried through verbatim, plus the teacher's readability hint.
type Kind string

const (
	LexerError         Kind = "LexerError"
	ParserError        Kind = "ParserError"
	BlankLineIsolation Kind = "BlankLineIsolation"
)

// Diagnostic is one finding against a single line.
type Diagnostic struct {
	Severity Severity
	Kind     Kind
	Message  string
	Range    *ast.Range
}

func (d *Diagnostic) String() string {
	if d.Range != nil {
		return fmt.Sprintf("%s(%s) at %s: %s", d.Severity, d.Kind, d.Range, d.Message)
	}
	return fmt.Sprintf("%s(%s): %s", d.Severity, d.Kind, d.Message)
}

// ToMap renders a Diagnostic for JSON serialization to the overlay.
func (d *Diagnostic) ToMap() map[string]interface{} {
	m := map[string]interface{}{
		"severity": d.Severity.String(),
		"kind":     string(d.Kind),
		"message":  d.Message,
	}
	if d.Range != nil {
		m["range"] = map[string]interface{}{
			"start": map[string]int{"line": d.Range.Start.Line, "column": d.Range.Start.Column},
			"end":   map[string]int{"line": d.Range.End.Line, "column": d.Range.End.Column},
		}
	}
	return m
}

// Result is one line's validation outcome.
type Result struct {
	Diagnostics []*Diagnostic
}

func newResult(diags []*Diagnostic) *Result {
	if diags == nil {
		diags = []*Diagnostic{}
	}
	return &Result{Diagnostics: diags}
}

// IsValid reports whether the line has no error-level diagnostics; hints
// never affect validity.
func (r *Result) IsValid() bool {
	for _, d := range r.Diagnostics {
		if d.Severity == Error {
			return false
		}
	}
	return true
}

// Errors returns only error-level diagnostics.
func (r *Result) Errors() []*Diagnostic {
	var out []*Diagnostic
	for _, d := range r.Diagnostics {
		if d.Severity == Error {
			out = append(out, d)
		}
	}
	return out
}

// Hints returns only hint-level diagnostics.
func (r *Result) Hints() []*Diagnostic {
	var out []*Diagnostic
	for _, d := range r.Diagnostics {
		if d.Severity == Hint {
			out = append(out, d)
		}
	}
	return out
}
