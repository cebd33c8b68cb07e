package validator_test

import (
	"testing"

	"github.com/notecalc/notecalc/evaluator"
	"github.com/notecalc/notecalc/validator"
)

func TestSimpleLiteralIsValid(t *testing.T) {
	result := validator.ValidateLine("42", 1, nil)
	if !result.IsValid() {
		t.Fatalf("expected valid result, got %v", result.Errors())
	}
}

func TestSimpleAssignmentIsValid(t *testing.T) {
	result := validator.ValidateLine("x = 5", 1, nil)
	if !result.IsValid() {
		t.Fatalf("expected valid result, got %v", result.Errors())
	}
}

func TestProseLineNeverErrors(t *testing.T) {
	for _, src := range []string{"revenue", "the cat sat on the mat", "5 +"} {
		result := validator.ValidateLine(src, 1, nil)
		if !result.IsValid() {
			t.Errorf("expected prose %q to be valid (no diagnostics), got %v", src, result.Errors())
		}
	}
}

func TestDivisionByZeroReportsRuntimeError(t *testing.T) {
	result := validator.ValidateLine("1 / 0", 1, nil)
	if result.IsValid() {
		t.Fatal("expected invalid result for division by zero")
	}
	if got := result.Errors()[0].Kind; got != "DivisionByZero" {
		t.Errorf("expected DivisionByZero, got %s", got)
	}
}

func TestValidationDoesNotMutateEnvironment(t *testing.T) {
	env := evaluator.NewEnvironment(nil, "")
	validator.ValidateLine("x = 5", 1, env)
	if _, ok := env.Get("x"); ok {
		t.Error("ValidateLine must not bind x in the caller's environment")
	}
}

func TestValidateExpressionReportsParserError(t *testing.T) {
	result := validator.ValidateExpression("5 +", 1)
	if result.IsValid() {
		t.Fatal("expected invalid result for malformed expression")
	}
	if got := result.Errors()[0].Kind; got != validator.ParserError {
		t.Errorf("expected ParserError, got %s", got)
	}
}

func TestValidateExpressionValidOnCleanInput(t *testing.T) {
	result := validator.ValidateExpression("2 + 2", 1)
	if !result.IsValid() {
		t.Fatalf("expected valid result, got %v", result.Errors())
	}
}

func TestValidateDocumentCarriesBindingsForward(t *testing.T) {
	doc := "x = 10\n\ny = x + 5\n"
	results := validator.ValidateDocument(doc, nil)
	if len(results) != 0 {
		t.Errorf("expected no diagnostics, got %v", results)
	}
}

func TestValidateDocumentFlagsForwardReference(t *testing.T) {
	doc := "y = z + 5\n"
	results := validator.ValidateDocument(doc, nil)
	r, ok := results[1]
	if !ok || r.IsValid() {
		t.Fatalf("expected line 1 to report UnknownIdentifier, got %v", results)
	}
	if r.Errors()[0].Kind != "UnknownIdentifier" {
		t.Errorf("expected UnknownIdentifier, got %s", r.Errors()[0].Kind)
	}
}

func TestValidateDocumentIsolationHint(t *testing.T) {
	doc := "some notes\n5 + 5\nmore notes\n"
	results := validator.ValidateDocument(doc, nil)
	r, ok := results[2]
	if !ok {
		t.Fatalf("expected hints on line 2, got %v", results)
	}
	if len(r.Hints()) != 2 {
		t.Errorf("expected 2 isolation hints, got %d", len(r.Hints()))
	}
}
