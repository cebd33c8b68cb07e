package ast

import (
	"fmt"
	"strings"
)

// Node is the interface every AST node implements. Nodes are a closed sum
// type (no reflection-based tree walking): a visitor switches on the
// concrete type. Position-less derived nodes (EmptyLine) still implement
// GetRange and return nil.
type Node interface {
	String() string
	GetRange() *Range
}

// Document is the parsed form of an entire source document: one
// line-level Node per line, in source order, read-only for the overlay
// (spec.md §6's `DocumentResult.ast`).
type Document struct {
	Lines []Node
}

func (d *Document) String() string {
	parts := make([]string, len(d.Lines))
	for i, n := range d.Lines {
		parts[i] = n.String()
	}
	return strings.Join(parts, "\n")
}
func (d *Document) GetRange() *Range { return nil }

// ---- Line-level nodes ----

// Heading is a markdown-style "#".."######" line.
type Heading struct {
	Level int
	Text  string
	Range *Range
}

func (h *Heading) String() string   { return fmt.Sprintf("Heading(%d,%q)", h.Level, h.Text) }
func (h *Heading) GetRange() *Range { return h.Range }

// EmptyLine is a blank or whitespace-only line. Position-less.
type EmptyLine struct{}

func (e *EmptyLine) String() string   { return "EmptyLine" }
func (e *EmptyLine) GetRange() *Range { return nil }

// PlainText is prose that carries no expression.
type PlainText struct {
	Text  string
	Range *Range
}

func (p *PlainText) String() string   { return fmt.Sprintf("PlainText(%q)", p.Text) }
func (p *PlainText) GetRange() *Range { return p.Range }

// VariableAssignment binds Expr's value to Name in the environment.
type VariableAssignment struct {
	Name  string
	Expr  Node
	Range *Range
}

func (a *VariableAssignment) String() string {
	return fmt.Sprintf("VariableAssignment(%q, %s)", a.Name, a.Expr)
}
func (a *VariableAssignment) GetRange() *Range { return a.Range }

// ExpressionLine is a standalone expression with no assignment.
type ExpressionLine struct {
	Expr  Node
	Range *Range
}

func (e *ExpressionLine) String() string   { return fmt.Sprintf("ExpressionLine(%s)", e.Expr) }
func (e *ExpressionLine) GetRange() *Range { return e.Range }

// ---- Expression-level literal nodes ----

// NumberLiteral is a raw numeric literal, kept as a string so the
// evaluator can hand it to decimal.NewFromString without a float round-trip.
type NumberLiteral struct {
	Raw   string
	Base  int // 10 unless an explicit 0x/0b/0o/`base N` prefix was seen
	Range *Range
}

func (n *NumberLiteral) String() string   { return fmt.Sprintf("NumberLiteral(%s)", n.Raw) }
func (n *NumberLiteral) GetRange() *Range { return n.Range }

// PercentageLiteral is "N%" or "N‰".
type PercentageLiteral struct {
	Raw      string
	Permille bool
	Range    *Range
}

func (p *PercentageLiteral) String() string {
	if p.Permille {
		return fmt.Sprintf("PercentageLiteral(%s‰)", p.Raw)
	}
	return fmt.Sprintf("PercentageLiteral(%s%%)", p.Raw)
}
func (p *PercentageLiteral) GetRange() *Range { return p.Range }

// BooleanLiteral is true/false/yes/no/t/f/y/n (case-insensitive).
type BooleanLiteral struct {
	Value bool
	Range *Range
}

func (b *BooleanLiteral) String() string   { return fmt.Sprintf("BooleanLiteral(%v)", b.Value) }
func (b *BooleanLiteral) GetRange() *Range { return b.Range }

// Variable references a name bound earlier in the document (or `last`).
type Variable struct {
	Name  string
	Range *Range
}

func (v *Variable) String() string   { return fmt.Sprintf("Variable(%q)", v.Name) }
func (v *Variable) GetRange() *Range { return v.Range }

// Constant references a named constant (pi, e, c, ...).
type Constant struct {
	Name  string
	Range *Range
}

func (c *Constant) String() string   { return fmt.Sprintf("Constant(%q)", c.Name) }
func (c *Constant) GetRange() *Range { return c.Range }

// FunctionCall is `name(args...)`.
type FunctionCall struct {
	Name  string
	Args  []Node
	Range *Range
}

func (f *FunctionCall) String() string {
	parts := make([]string, len(f.Args))
	for i, a := range f.Args {
		parts[i] = a.String()
	}
	return fmt.Sprintf("FunctionCall(%s, [%s])", f.Name, strings.Join(parts, ", "))
}
func (f *FunctionCall) GetRange() *Range { return f.Range }

// UnaryExpression is a prefix sign/not.
type UnaryExpression struct {
	Operator string
	Operand  Node
	Range    *Range
}

func (u *UnaryExpression) String() string {
	return fmt.Sprintf("UnaryExpression(%q, %s)", u.Operator, u.Operand)
}
func (u *UnaryExpression) GetRange() *Range { return u.Range }

// BinaryExpression covers arithmetic, comparison, and logical binary ops.
type BinaryExpression struct {
	Operator string
	Left     Node
	Right    Node
	Range    *Range
}

func (b *BinaryExpression) String() string {
	return fmt.Sprintf("BinaryExpression(%q, %s, %s)", b.Operator, b.Left, b.Right)
}
func (b *BinaryExpression) GetRange() *Range { return b.Range }

// PostfixExpression is `%`, `‰`, or `!` applied to Operand.
type PostfixExpression struct {
	Operator string
	Operand  Node
	Range    *Range
}

func (p *PostfixExpression) String() string {
	return fmt.Sprintf("PostfixExpression(%s, %q)", p.Operand, p.Operator)
}
func (p *PostfixExpression) GetRange() *Range { return p.Range }

// ConditionalExpr is `if Cond then Then else Else`.
type ConditionalExpr struct {
	Cond  Node
	Then  Node
	Else  Node
	Range *Range
}

func (c *ConditionalExpr) String() string {
	return fmt.Sprintf("ConditionalExpr(%s, %s, %s)", c.Cond, c.Then, c.Else)
}
func (c *ConditionalExpr) GetRange() *Range { return c.Range }

// Conversion is `Expr Operator Target` where Operator is one of
// "to"/"as"/"->" ("in" is not a conversion operator; it reads as the inch
// unit) and Target is a Units, PresentationFormat, or PropertyTarget node.
type Conversion struct {
	Expr     Node
	Operator string
	Target   Node
	Range    *Range
}

func (c *Conversion) String() string {
	return fmt.Sprintf("Conversion(%s, %q, %s)", c.Expr, c.Operator, c.Target)
}
func (c *Conversion) GetRange() *Range { return c.Range }

// Value is `Number Units?`.
type Value struct {
	Number Node
	Units  *Units // nil if the number is bare
	Range  *Range
}

func (v *Value) String() string {
	if v.Units == nil {
		return fmt.Sprintf("Value(%s)", v.Number)
	}
	return fmt.Sprintf("Value(%s, %s)", v.Number, v.Units)
}
func (v *Value) GetRange() *Range { return v.Range }

// CompositeValue is two or more adjacent same-dimension Values, e.g. `5 ft 7 in`.
type CompositeValue struct {
	Parts []*Value
	Range *Range
}

func (c *CompositeValue) String() string {
	parts := make([]string, len(c.Parts))
	for i, p := range c.Parts {
		parts[i] = p.String()
	}
	return fmt.Sprintf("CompositeValue([%s])", strings.Join(parts, ", "))
}
func (c *CompositeValue) GetRange() *Range { return c.Range }

// Units is a sequence of UnitWithExponent terms joined by `*`, ` `, `/`, or `per`.
type Units struct {
	Terms []*UnitWithExponent
	Range *Range
}

func (u *Units) String() string {
	parts := make([]string, len(u.Terms))
	for i, t := range u.Terms {
		parts[i] = t.String()
	}
	return fmt.Sprintf("Units(%s)", strings.Join(parts, " "))
}
func (u *Units) GetRange() *Range { return u.Range }

// Unit is a single unit token (builtin or user-defined), possibly prefixed.
type Unit struct {
	Symbol string // as written, case preserved
	Range  *Range
}

func (u *Unit) String() string   { return fmt.Sprintf("Unit(%s)", u.Symbol) }
func (u *Unit) GetRange() *Range { return u.Range }

// UnitWithExponent pairs a Unit (or CurrencyUnit) with an integer exponent
// and a sign (+1 for multiplicative position, -1 following a `/`).
type UnitWithExponent struct {
	Unit     Node // *Unit or *CurrencyUnit
	Exponent int
	Sign     int
	Range    *Range
}

func (u *UnitWithExponent) String() string {
	return fmt.Sprintf("UnitWithExponent(%s^%d, sign=%d)", u.Unit, u.Exponent, u.Sign)
}
func (u *UnitWithExponent) GetRange() *Range { return u.Range }

// CurrencyUnit is a currency code or symbol used in unit position.
type CurrencyUnit struct {
	Symbol string
	Range  *Range
}

func (c *CurrencyUnit) String() string   { return fmt.Sprintf("CurrencyUnit(%s)", c.Symbol) }
func (c *CurrencyUnit) GetRange() *Range { return c.Range }

// ---- Date/time nodes ----

// DateLiteral is a calendar date shape (YYYY-MM-DD / YYYY MMM DD / ...).
type DateLiteral struct {
	Year, Month, Day int
	Range            *Range
}

func (d *DateLiteral) String() string {
	return fmt.Sprintf("DateLiteral(%04d-%02d-%02d)", d.Year, d.Month, d.Day)
}
func (d *DateLiteral) GetRange() *Range { return d.Range }

// TimeLiteral is HH:MM[:SS[.fff]].
type TimeLiteral struct {
	Hour, Minute, Second, Nanosecond int
	Range                            *Range
}

func (t *TimeLiteral) String() string {
	return fmt.Sprintf("TimeLiteral(%02d:%02d:%02d)", t.Hour, t.Minute, t.Second)
}
func (t *TimeLiteral) GetRange() *Range { return t.Range }

// DateTimeLiteral combines a date and time shape, optionally with a zone suffix.
type DateTimeLiteral struct {
	Date  *DateLiteral
	Time  *TimeLiteral
	Zone  string // "" | "Z" | "+05:00" | IANA name | city alias
	Range *Range
}

func (d *DateTimeLiteral) String() string {
	return fmt.Sprintf("DateTimeLiteral(%s %s %s)", d.Date, d.Time, d.Zone)
}
func (d *DateTimeLiteral) GetRange() *Range { return d.Range }

// DurationLiteral is a bare `N unit` duration used in date arithmetic
// contexts, kept distinct from Value so the parser can special-case
// calendar vs. exact units.
type DurationLiteral struct {
	Value *Value
	Range *Range
}

func (d *DurationLiteral) String() string   { return fmt.Sprintf("DurationLiteral(%s)", d.Value) }
func (d *DurationLiteral) GetRange() *Range { return d.Range }

// ---- Conversion target nodes ----

// PresentationFormat is a non-unit conversion target: `base 16`,
// `6 sig figs`, `4 decimals`, `scientific`, `fraction`, `percentage`,
// `unix seconds`.
type PresentationFormat struct {
	Kind  string // "base" | "sigfigs" | "decimals" | "scientific" | "fraction" | "percentage" | "unix"
	Arg   int    // base N, N sig figs, N decimals; unused otherwise
	Unit  string // for "unix": "seconds"|"milliseconds"|"microseconds"|"nanoseconds"
	Range *Range
}

func (p *PresentationFormat) String() string {
	return fmt.Sprintf("PresentationFormat(%s,%d,%s)", p.Kind, p.Arg, p.Unit)
}
func (p *PresentationFormat) GetRange() *Range { return p.Range }

// PropertyTarget is a conversion target like `.day` / `.year`.
type PropertyTarget struct {
	Property string
	Range    *Range
}

func (p *PropertyTarget) String() string   { return fmt.Sprintf("PropertyTarget(.%s)", p.Property) }
func (p *PropertyTarget) GetRange() *Range { return p.Range }
