package notecalc

import (
	"github.com/google/uuid"

	"github.com/notecalc/notecalc/ast"
)

// LineResult is one line's entry in DocumentResult.Results (spec.md §6).
// Result is nil when the line has no rendered value: a heading, a blank
// line, plain prose, or a line whose evaluation failed (HasError is true
// in that last case; it's also false-but-nil for the first three, which
// simply have nothing to show).
type LineResult struct {
	// ID tags this block for a host doing incremental re-evaluation
	// (SPEC_FULL.md §4's document/session identity wiring).
	ID uuid.UUID

	Line     int
	Result   *string
	Type     string // "heading" | "empty" | "text" | "assignment" | "expression"
	HasError bool

	// Details carries `based on:` conversion provenance (SPEC_FULL.md §6's
	// resolution of the based-on Open Question) — separate from Result so
	// a host can render it as a collapsible annotation rather than having
	// to parse it back out of the formatted string. No evaluation path
	// fills evaluator.Result.Details, so this slice is always empty.
	Details []string
}

// LocatedError is one entry in a DocumentErrors bucket: a message plus
// the source range it occurred at, when known.
type LocatedError struct {
	Message string
	Range   *ast.Range
}

// DocumentErrors buckets Calculate's errors by the pipeline stage that
// raised them (spec.md §6's `errors: {lexer[], parser[], runtime[]}`).
// Lexer and Parser are typically empty in practice: the classifier
// absorbs malformed lines into plain text rather than ever handing
// Calculate a syntax error to report (see DESIGN.md's classifier entry,
// grounded on the teacher's own classifier doing the same) — a line that
// looks like a broken calculation reads as a sentence, not a red
// squiggly. validator.ValidateExpression is the path that does surface
// LexerError/ParserError, for a host feature that explicitly asks for it.
type DocumentErrors struct {
	Lexer   []LocatedError
	Parser  []LocatedError
	Runtime []LocatedError
}

// DocumentResult is Calculate's output (spec.md §6).
type DocumentResult struct {
	Results []LineResult
	Errors  DocumentErrors
	AST     *ast.Document
}
