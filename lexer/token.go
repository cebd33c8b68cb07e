// Package lexer implements the notecalc lexer/tokenizer
package lexer

import "fmt"

// TokenType represents the type of a token
type TokenType int

const (
	// Literals
	NUMBER TokenType = iota
	CURRENCY
	IDENTIFIER

	// Arithmetic operators
	PLUS
	MINUS
	MULTIPLY
	DIVIDE
	EXPONENT   // ^
	DEXPONENT  // **
	PERCENT    // %
	PERMILLE   // ‰
	BANG       // ! (postfix factorial)
	ASSIGN

	// Comparison operators
	GREATER_THAN
	LESS_THAN
	GREATER_EQUAL
	LESS_EQUAL
	EQUAL
	NOT_EQUAL

	// Logical operators (Go spec compliant)
	// See: https://go.dev/ref/spec#Logical_operators
	AND // "and"
	OR  // "or"
	NOT // "not"

	// Grouping / punctuation
	LPAREN
	RPAREN
	COMMA
	DOT    // property target: `.day`
	COLON  // HH:MM[:SS] time literals
	ARROW  // ->
	PRIME  // ' - feet or arcminute, disambiguated by the parser
	DPRIME // " - inches or arcsecond, disambiguated by the parser
	DEGREE // °

	// Heading marker: one HASH token carries the whole run of leading '#'s
	HASH

	NEWLINE
	EOF
)

// String returns the string representation of a TokenType
func (tt TokenType) String() string {
	switch tt {
	case NUMBER:
		return "NUMBER"
	case CURRENCY:
		return "CURRENCY"
	case IDENTIFIER:
		return "IDENTIFIER"
	case PLUS:
		return "PLUS"
	case MINUS:
		return "MINUS"
	case MULTIPLY:
		return "MULTIPLY"
	case DIVIDE:
		return "DIVIDE"
	case EXPONENT:
		return "EXPONENT"
	case DEXPONENT:
		return "DEXPONENT"
	case PERCENT:
		return "PERCENT"
	case PERMILLE:
		return "PERMILLE"
	case BANG:
		return "BANG"
	case ASSIGN:
		return "ASSIGN"
	case GREATER_THAN:
		return "GREATER_THAN"
	case LESS_THAN:
		return "LESS_THAN"
	case GREATER_EQUAL:
		return "GREATER_EQUAL"
	case LESS_EQUAL:
		return "LESS_EQUAL"
	case EQUAL:
		return "EQUAL"
	case NOT_EQUAL:
		return "NOT_EQUAL"
	case AND:
		return "AND"
	case OR:
		return "OR"
	case NOT:
		return "NOT"
	case LPAREN:
		return "LPAREN"
	case RPAREN:
		return "RPAREN"
	case COMMA:
		return "COMMA"
	case DOT:
		return "DOT"
	case COLON:
		return "COLON"
	case ARROW:
		return "ARROW"
	case PRIME:
		return "PRIME"
	case DPRIME:
		return "DPRIME"
	case DEGREE:
		return "DEGREE"
	case HASH:
		return "HASH"
	case NEWLINE:
		return "NEWLINE"
	case EOF:
		return "EOF"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", tt)
	}
}

// Token represents a lexical token
type Token struct {
	Type   TokenType
	Value  string
	Line   int
	Column int
}

// String returns a string representation of the token
func (t Token) String() string {
	return fmt.Sprintf("Token(%s, %q, %d:%d)", t.Type, t.Value, t.Line, t.Column)
}

// reservedWords are IDENTIFIER-typed tokens the parser treats specially.
// Keeping them as plain identifiers (rather than separate token types,
// as the teacher's lexer does for IF/THEN/ELSE/...) lets any of them
// double as a unit/variable name when context makes that unambiguous,
// matching spec.md's grammar-shape-driven (not reserved-word-driven)
// disambiguation of "to", "base", etc. "in" is deliberately NOT reserved:
// it doubles as the inches unit symbol in composite values like `5 ft 7
// in`, so only "to"/"as"/"->" are recognized as conversion operators.
var reservedWords = map[string]bool{
	"to": true, "as": true, "per": true,
	"if": true, "then": true, "else": true, "elif": true,
	"and": true, "or": true, "not": true,
	"true": true, "false": true, "yes": true, "no": true,
	"base": true, "sig": true, "figs": true, "decimals": true,
	"scientific": true, "fraction": true, "percentage": true, "unix": true,
	"nearest": true,
}

// IsReserved reports whether word (already lowercased by the caller) is a
// reserved grammar word.
func IsReserved(word string) bool {
	return reservedWords[word]
}
