package evaluator_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/notecalc/notecalc/evaluator"
	"github.com/notecalc/notecalc/parser"
	"github.com/notecalc/notecalc/types"
)

func evalLine(t *testing.T, ev *evaluator.Evaluator, src string) *evaluator.Result {
	t.Helper()
	node, err := parser.ParseLine(src, 1)
	if err != nil {
		t.Fatalf("parse %q: %v", src, err)
	}
	res, err := ev.EvalLine(node)
	if err != nil {
		t.Fatalf("eval %q: %v", src, err)
	}
	return res
}

func evalLineErr(t *testing.T, ev *evaluator.Evaluator, src string) error {
	t.Helper()
	node, err := parser.ParseLine(src, 1)
	if err != nil {
		t.Fatalf("parse %q: %v", src, err)
	}
	_, err = ev.EvalLine(node)
	return err
}

func TestEvalArithmetic(t *testing.T) {
	ev := evaluator.NewEvaluator(nil)
	res := evalLine(t, ev, "2 + 3 * 4")
	num, ok := res.Value.(*types.Number)
	if !ok || num.Value.String() != "14" {
		t.Fatalf("expected Number(14), got %#v", res.Value)
	}
}

func TestEvalVariableAssignmentAndLast(t *testing.T) {
	ev := evaluator.NewEvaluator(nil)
	evalLine(t, ev, "x = 10")
	res := evalLine(t, ev, "x * 2")
	num := res.Value.(*types.Number)
	if num.Value.String() != "20" {
		t.Fatalf("expected 20, got %s", num.Value)
	}

	res = evalLine(t, ev, "last + 5")
	num = res.Value.(*types.Number)
	if num.Value.String() != "25" {
		t.Fatalf("expected 25, got %s", num.Value)
	}
}

func TestEvalUnitConversionSingle(t *testing.T) {
	ev := evaluator.NewEvaluator(nil)
	res := evalLine(t, ev, "5 km to m")
	q, ok := res.Value.(*types.Quantity)
	if !ok || q.Value.String() != "5000" {
		t.Fatalf("expected Quantity(5000 m), got %#v", res.Value)
	}
}

func TestEvalUnitConversionSplit(t *testing.T) {
	ev := evaluator.NewEvaluator(nil)
	res := evalLine(t, ev, "1.5 m to ft in")
	c, ok := res.Value.(*types.Composite)
	if !ok || len(c.Parts) != 2 {
		t.Fatalf("expected a 2-part Composite, got %#v", res.Value)
	}
}

func TestEvalDimensionMismatchError(t *testing.T) {
	ev := evaluator.NewEvaluator(nil)
	err := evalLineErr(t, ev, "60 km/h to m s")
	if err == nil {
		t.Fatal("expected an error for an incompatible conversion target")
	}
	rt, ok := err.(*evaluator.RuntimeError)
	if !ok || rt.Kind != evaluator.DimensionMismatch {
		t.Fatalf("expected DimensionMismatch, got %#v", err)
	}
}

func TestEvalCurrencyArithmeticSameSymbol(t *testing.T) {
	ev := evaluator.NewEvaluator(nil)
	res := evalLine(t, ev, "$100 + $50")
	cur, ok := res.Value.(*types.Currency)
	if !ok || cur.Value.String() != "150" {
		t.Fatalf("expected Currency(150), got %#v", res.Value)
	}
}

func TestEvalPercentAddition(t *testing.T) {
	ev := evaluator.NewEvaluator(nil)
	res := evalLine(t, ev, "200 + 10%")
	num := res.Value.(*types.Number)
	if num.Value.String() != "220" {
		t.Fatalf("expected 220, got %s", num.Value)
	}
}

func TestEvalConditionalIsLazy(t *testing.T) {
	ev := evaluator.NewEvaluator(nil)
	res := evalLine(t, ev, "if 1 > 0 then 5 else undefinedvar")
	num := res.Value.(*types.Number)
	if num.Value.String() != "5" {
		t.Fatalf("expected 5, got %s", num.Value)
	}
}

func TestEvalFunctionSqrt(t *testing.T) {
	ev := evaluator.NewEvaluator(nil)
	res := evalLine(t, ev, "sqrt(16)")
	num := res.Value.(*types.Number)
	if num.Value.String() != "4" {
		t.Fatalf("expected 4, got %s", num.Value)
	}
}

func TestEvalFunctionDomainError(t *testing.T) {
	ev := evaluator.NewEvaluator(nil)
	err := evalLineErr(t, ev, "sqrt(-1)")
	rt, ok := err.(*evaluator.RuntimeError)
	if !ok || rt.Kind != evaluator.DomainError {
		t.Fatalf("expected DomainError, got %#v", err)
	}
}

func TestEvalFactorial(t *testing.T) {
	ev := evaluator.NewEvaluator(nil)
	res := evalLine(t, ev, "5!")
	num := res.Value.(*types.Number)
	if num.Value.String() != "120" {
		t.Fatalf("expected 120, got %s", num.Value)
	}
}

func TestEvalDateArithmetic(t *testing.T) {
	ev := evaluator.NewEvaluator(nil)
	evalLine(t, ev, "start = 2026-07-31")
	res := evalLine(t, ev, "start + 10 day")
	d, ok := res.Value.(*types.PlainDate)
	if !ok || d.Year != 2026 || d.Month != 8 || d.Day != 10 {
		t.Fatalf("expected 2026-08-10, got %#v", res.Value)
	}
}

func TestEvalDateDifference(t *testing.T) {
	ev := evaluator.NewEvaluator(nil)
	evalLine(t, ev, "a = 2026-08-10")
	evalLine(t, ev, "b = 2026-07-31")
	res := evalLine(t, ev, "a - b")
	q, ok := res.Value.(*types.Quantity)
	if !ok || q.Value.String() != "10" {
		t.Fatalf("expected Quantity(10 day), got %#v", res.Value)
	}
}

func TestEvalDivisionByZero(t *testing.T) {
	ev := evaluator.NewEvaluator(nil)
	err := evalLineErr(t, ev, "5 / 0")
	rt, ok := err.(*evaluator.RuntimeError)
	if !ok || rt.Kind != evaluator.DivisionByZero {
		t.Fatalf("expected DivisionByZero, got %#v", err)
	}
}

func TestEvalUnknownIdentifier(t *testing.T) {
	ev := evaluator.NewEvaluator(nil)
	err := evalLineErr(t, ev, "doesNotExist + 1")
	rt, ok := err.(*evaluator.RuntimeError)
	if !ok || rt.Kind != evaluator.UnknownIdentifier {
		t.Fatalf("expected UnknownIdentifier, got %#v", err)
	}
}

func TestEvalPropertyTarget(t *testing.T) {
	ev := evaluator.NewEvaluator(nil)
	res := evalLine(t, ev, "2026-07-31 to .day")
	num, ok := res.Value.(*types.Number)
	if !ok || num.Value.String() != "31" {
		t.Fatalf("expected Number(31), got %#v", res.Value)
	}
}

func TestEvalCompositeToSingleUnit(t *testing.T) {
	ev := evaluator.NewEvaluator(nil)
	res := evalLine(t, ev, "5 ft 7 in to cm")
	q, ok := res.Value.(*types.Quantity)
	if !ok {
		t.Fatalf("expected a Quantity, got %#v", res.Value)
	}
	if !q.Value.Equal(decimal.NewFromFloat(170.18)) {
		t.Errorf("5 ft 7 in to cm: got %s, want 170.18", q.Value)
	}
}

func TestEvalSplitIntoComposite(t *testing.T) {
	ev := evaluator.NewEvaluator(nil)
	res := evalLine(t, ev, "10 m to ft in")
	c, ok := res.Value.(*types.Composite)
	if !ok || len(c.Parts) != 2 {
		t.Fatalf("expected a 2-part Composite, got %#v", res.Value)
	}
	if c.Parts[0].Value.String() != "32" {
		t.Errorf("10 m to ft in: whole feet part = %s, want 32", c.Parts[0].Value)
	}
	diff := c.Parts[1].Value.Sub(decimal.NewFromFloat(9.70079)).Abs()
	if diff.GreaterThan(decimal.NewFromFloat(0.001)) {
		t.Errorf("10 m to ft in: inch remainder = %s, want ~9.70079", c.Parts[1].Value)
	}
}

func TestEvalAreaToProductUnit(t *testing.T) {
	ev := evaluator.NewEvaluator(nil)
	res := evalLine(t, ev, "10 acre to ft in")
	q, ok := res.Value.(*types.Quantity)
	if !ok {
		t.Fatalf("expected a single Quantity (acre fits the ft*in product unit), got %#v", res.Value)
	}
	diff := q.Value.Sub(decimal.NewFromInt(5227200)).Abs()
	if diff.GreaterThan(decimal.NewFromInt(1)) {
		t.Errorf("10 acre to ft in: got %s, want 5227200", q.Value)
	}
}

func TestEvalRateQuantityComposition(t *testing.T) {
	ev := evaluator.NewEvaluator(nil)
	res := evalLine(t, ev, "1 USD/person/day")
	q, ok := res.Value.(*types.Quantity)
	if !ok || len(q.Unit.Terms) != 3 {
		t.Fatalf("expected a 3-term rate Quantity, got %#v", res.Value)
	}
}

func TestEvalTimezoneConversion(t *testing.T) {
	ev := evaluator.NewEvaluator(nil)
	res := evalLine(t, ev, "1970-01-01 14:00 UTC to UTC+5")
	zdt, ok := res.Value.(*types.ZonedDateTime)
	if !ok {
		t.Fatalf("expected a ZonedDateTime, got %#v", res.Value)
	}
	if hour := zdt.Time.Hour(); hour != 19 {
		t.Errorf("1970-01-01 14:00 UTC to UTC+5: hour = %d, want 19", hour)
	}
}

func TestEvalTimezoneConversionCityAlias(t *testing.T) {
	ev := evaluator.NewEvaluator(nil)
	res := evalLine(t, ev, "1970-01-01 14:00 UTC to Tokyo")
	zdt, ok := res.Value.(*types.ZonedDateTime)
	if !ok {
		t.Fatalf("expected a ZonedDateTime, got %#v", res.Value)
	}
	if hour := zdt.Time.Hour(); hour != 23 {
		t.Errorf("1970-01-01 14:00 UTC to Tokyo: hour = %d, want 23", hour)
	}
}

func TestEvalAbsoluteTemperaturesCannotAdd(t *testing.T) {
	ev := evaluator.NewEvaluator(nil)
	err := evalLineErr(t, ev, "20 C + 5 C")
	rt, ok := err.(*evaluator.RuntimeError)
	if !ok || rt.Kind != evaluator.DimensionMismatch {
		t.Fatalf("expected DimensionMismatch adding two absolute temperatures, got %#v", err)
	}
}

func TestEvalDegreeMinuteSecondComposite(t *testing.T) {
	ev := evaluator.NewEvaluator(nil)
	res := evalLine(t, ev, "10° 30' 15\"")
	c, ok := res.Value.(*types.Composite)
	if !ok || len(c.Parts) != 3 {
		t.Fatalf("expected a 3-part degree/arcmin/arcsec Composite, got %#v", res.Value)
	}
	wantSymbols := []string{"deg", "arcmin", "arcsec"}
	for i, sym := range wantSymbols {
		if got := c.Parts[i].Unit.Terms[0].Symbol; got != sym {
			t.Errorf("part %d unit = %q, want %q", i, got, sym)
		}
	}
}

func TestEvalFeetInchesQuotedForm(t *testing.T) {
	ev := evaluator.NewEvaluator(nil)
	res := evalLine(t, ev, "5' 10\"")
	c, ok := res.Value.(*types.Composite)
	if !ok || len(c.Parts) != 2 {
		t.Fatalf("expected a 2-part ft/in Composite, got %#v", res.Value)
	}
	wantSymbols := []string{"ft", "in"}
	for i, sym := range wantSymbols {
		if got := c.Parts[i].Unit.Terms[0].Symbol; got != sym {
			t.Errorf("part %d unit = %q, want %q", i, got, sym)
		}
	}
}

func TestEvalTemperatureDifferenceIsDelta(t *testing.T) {
	ev := evaluator.NewEvaluator(nil)
	evalLine(t, ev, "hot = 20 C")
	evalLine(t, ev, "cold = 5 C")
	res := evalLine(t, ev, "delta = hot - cold")
	q, ok := res.Value.(*types.Quantity)
	if !ok || !q.IsDelta {
		t.Fatalf("expected a temperature delta Quantity, got %#v", res.Value)
	}
	if !q.Value.Equal(decimal.NewFromInt(15)) {
		t.Errorf("20 C - 5 C: got %s, want 15", q.Value)
	}

	res = evalLine(t, ev, "cold + delta")
	q, ok = res.Value.(*types.Quantity)
	if !ok || q.IsDelta {
		t.Fatalf("expected an absolute temperature Quantity, got %#v", res.Value)
	}
	if !q.Value.Equal(decimal.NewFromInt(20)) {
		t.Errorf("cold + delta: got %s, want 20", q.Value)
	}
}
