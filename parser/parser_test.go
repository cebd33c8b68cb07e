package parser

import (
	"testing"

	"github.com/notecalc/notecalc/ast"
)

func TestParseLineSimpleNumber(t *testing.T) {
	node, err := ParseLine("42", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	exprLine, ok := node.(*ast.ExpressionLine)
	if !ok {
		t.Fatalf("expected ExpressionLine, got %T", node)
	}
	value, ok := exprLine.Expr.(*ast.Value)
	if !ok {
		t.Fatalf("expected Value, got %T", exprLine.Expr)
	}
	num, ok := value.Number.(*ast.NumberLiteral)
	if !ok || num.Raw != "42" {
		t.Fatalf("expected NumberLiteral(42), got %#v", value.Number)
	}
}

func TestParseLineAssignment(t *testing.T) {
	node, err := ParseLine("x = 10", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assign, ok := node.(*ast.VariableAssignment)
	if !ok {
		t.Fatalf("expected VariableAssignment, got %T", node)
	}
	if assign.Name != "x" {
		t.Errorf("expected name 'x', got %q", assign.Name)
	}
}

func TestParseLineCurrency(t *testing.T) {
	node, err := ParseLine("$100 + $50", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	exprLine := node.(*ast.ExpressionLine)
	bin, ok := exprLine.Expr.(*ast.BinaryExpression)
	if !ok {
		t.Fatalf("expected BinaryExpression, got %T", exprLine.Expr)
	}
	left, ok := bin.Left.(*ast.Value)
	if !ok || left.Units == nil {
		t.Fatalf("expected currency-bearing Value on left, got %#v", bin.Left)
	}
	cur, ok := left.Units.Terms[0].Unit.(*ast.CurrencyUnit)
	if !ok || cur.Symbol != "$" {
		t.Fatalf("expected CurrencyUnit($), got %#v", left.Units.Terms[0].Unit)
	}
}

func TestParseLineUnitValue(t *testing.T) {
	node, err := ParseLine("5 kg", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	exprLine := node.(*ast.ExpressionLine)
	value, ok := exprLine.Expr.(*ast.Value)
	if !ok || value.Units == nil {
		t.Fatalf("expected unit-bearing Value, got %#v", exprLine.Expr)
	}
	if value.Units.Terms[0].Unit.(*ast.Unit).Symbol != "kg" {
		t.Errorf("expected unit 'kg', got %#v", value.Units.Terms[0])
	}
}

func TestParseLineRateUnits(t *testing.T) {
	node, err := ParseLine("100 USD/person/day", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	exprLine := node.(*ast.ExpressionLine)
	value := exprLine.Expr.(*ast.Value)
	if len(value.Units.Terms) != 3 {
		t.Fatalf("expected 3 unit terms, got %d: %v", len(value.Units.Terms), value.Units)
	}
	if value.Units.Terms[1].Sign != -1 || value.Units.Terms[2].Sign != -1 {
		t.Errorf("expected per-unit terms to carry sign -1, got %+v", value.Units.Terms)
	}
}

func TestParseLineCompositeValue(t *testing.T) {
	node, err := ParseLine("5 ft 7 in", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	exprLine := node.(*ast.ExpressionLine)
	composite, ok := exprLine.Expr.(*ast.CompositeValue)
	if !ok {
		t.Fatalf("expected CompositeValue, got %T", exprLine.Expr)
	}
	if len(composite.Parts) != 2 {
		t.Fatalf("expected 2 parts, got %d", len(composite.Parts))
	}
}

func TestParseLineUnitExponent(t *testing.T) {
	node, err := ParseLine("10 m^2", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	value := node.(*ast.ExpressionLine).Expr.(*ast.Value)
	if value.Units.Terms[0].Exponent != 2 {
		t.Errorf("expected exponent 2, got %d", value.Units.Terms[0].Exponent)
	}
}

func TestParseLinePowerNotConfusedWithUnit(t *testing.T) {
	node, err := ParseLine("2^3", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	bin, ok := node.(*ast.ExpressionLine).Expr.(*ast.BinaryExpression)
	if !ok || bin.Operator != "^" {
		t.Fatalf("expected power BinaryExpression, got %#v", node.(*ast.ExpressionLine).Expr)
	}
}

func TestParseLineDateLiteral(t *testing.T) {
	node, err := ParseLine("2026-07-31", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	date, ok := node.(*ast.ExpressionLine).Expr.(*ast.DateLiteral)
	if !ok {
		t.Fatalf("expected DateLiteral, got %T", node.(*ast.ExpressionLine).Expr)
	}
	if date.Year != 2026 || date.Month != 7 || date.Day != 31 {
		t.Errorf("expected 2026-07-31, got %04d-%02d-%02d", date.Year, date.Month, date.Day)
	}
}

func TestParseLineDateMinusDateIsSubtraction(t *testing.T) {
	node, err := ParseLine("10 - 3 - 1", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := node.(*ast.ExpressionLine).Expr.(*ast.BinaryExpression); !ok {
		t.Fatalf("expected BinaryExpression subtraction, not a date literal, got %T", node.(*ast.ExpressionLine).Expr)
	}
}

func TestParseLineDateTimeWithZone(t *testing.T) {
	node, err := ParseLine("2026-07-31 14:00 UTC+5", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	dt, ok := node.(*ast.ExpressionLine).Expr.(*ast.DateTimeLiteral)
	if !ok {
		t.Fatalf("expected DateTimeLiteral, got %T", node.(*ast.ExpressionLine).Expr)
	}
	if dt.Zone != "+05" {
		t.Errorf("expected zone offset '+05', got %q", dt.Zone)
	}
}

func TestParseLineConversionToUnit(t *testing.T) {
	node, err := ParseLine("5 km to miles", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	conv, ok := node.(*ast.ExpressionLine).Expr.(*ast.Conversion)
	if !ok {
		t.Fatalf("expected Conversion, got %T", node.(*ast.ExpressionLine).Expr)
	}
	if conv.Operator != "to" {
		t.Errorf("expected operator 'to', got %q", conv.Operator)
	}
	target, ok := conv.Target.(*ast.Units)
	if !ok || target.Terms[0].Unit.(*ast.Unit).Symbol != "miles" {
		t.Fatalf("expected target unit 'miles', got %#v", conv.Target)
	}
}

func TestParseLineConversionToPresentationFormat(t *testing.T) {
	node, err := ParseLine("255 to base 16", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	conv := node.(*ast.ExpressionLine).Expr.(*ast.Conversion)
	format, ok := conv.Target.(*ast.PresentationFormat)
	if !ok || format.Kind != "base" || format.Arg != 16 {
		t.Fatalf("expected PresentationFormat(base,16), got %#v", conv.Target)
	}
}

func TestParseLineConversionToPropertyTarget(t *testing.T) {
	node, err := ParseLine("2026-07-31 to .day", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	conv := node.(*ast.ExpressionLine).Expr.(*ast.Conversion)
	prop, ok := conv.Target.(*ast.PropertyTarget)
	if !ok || prop.Property != "day" {
		t.Fatalf("expected PropertyTarget(day), got %#v", conv.Target)
	}
}

func TestParseLineConditional(t *testing.T) {
	node, err := ParseLine("if 5 > 3 then 1 else 0", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := node.(*ast.ExpressionLine).Expr.(*ast.ConditionalExpr); !ok {
		t.Fatalf("expected ConditionalExpr, got %T", node.(*ast.ExpressionLine).Expr)
	}
}

func TestParseLineFunctionCall(t *testing.T) {
	node, err := ParseLine("sqrt(16)", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	fn, ok := node.(*ast.ExpressionLine).Expr.(*ast.FunctionCall)
	if !ok || fn.Name != "sqrt" || len(fn.Args) != 1 {
		t.Fatalf("expected FunctionCall(sqrt, 1 arg), got %#v", node.(*ast.ExpressionLine).Expr)
	}
}

func TestParseLinePercentageLiteral(t *testing.T) {
	node, err := ParseLine("15%", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	pct, ok := node.(*ast.ExpressionLine).Expr.(*ast.PercentageLiteral)
	if !ok || pct.Raw != "15" || pct.Permille {
		t.Fatalf("expected PercentageLiteral(15,%%), got %#v", node.(*ast.ExpressionLine).Expr)
	}
}

func TestParseLineFactorial(t *testing.T) {
	node, err := ParseLine("5!", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	post, ok := node.(*ast.ExpressionLine).Expr.(*ast.PostfixExpression)
	if !ok || post.Operator != "!" {
		t.Fatalf("expected PostfixExpression(!), got %#v", node.(*ast.ExpressionLine).Expr)
	}
}

func TestParseLineHeading(t *testing.T) {
	node, err := ParseLine("## Expenses", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	h, ok := node.(*ast.Heading)
	if !ok || h.Level != 2 {
		t.Fatalf("expected Heading level 2, got %#v", node)
	}
}

func TestParseLineEmptyLine(t *testing.T) {
	node, err := ParseLine("   ", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := node.(*ast.EmptyLine); !ok {
		t.Fatalf("expected EmptyLine, got %T", node)
	}
}

func TestParseLineConstantVsVariable(t *testing.T) {
	node, err := ParseLine("pi", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := node.(*ast.ExpressionLine).Expr.(*ast.Constant); !ok {
		t.Fatalf("expected Constant, got %T", node.(*ast.ExpressionLine).Expr)
	}

	node, err = ParseLine("widgets", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := node.(*ast.ExpressionLine).Expr.(*ast.Variable); !ok {
		t.Fatalf("expected Variable, got %T", node.(*ast.ExpressionLine).Expr)
	}
}

func TestParseLineParenGrouping(t *testing.T) {
	node, err := ParseLine("(1 + 2) * 3", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	bin, ok := node.(*ast.ExpressionLine).Expr.(*ast.BinaryExpression)
	if !ok || bin.Operator != "*" {
		t.Fatalf("expected multiplication at top level, got %#v", node.(*ast.ExpressionLine).Expr)
	}
	if _, ok := bin.Left.(*ast.BinaryExpression); !ok {
		t.Fatalf("expected grouped addition on the left, got %#v", bin.Left)
	}
}

func TestParseLineTrailingGarbageIsError(t *testing.T) {
	if _, err := ParseLine("1 + 2 ) 3", 1); err == nil {
		t.Error("expected an error for unbalanced trailing tokens")
	}
}
