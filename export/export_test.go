package export_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/notecalc/notecalc"
	"github.com/notecalc/notecalc/export"
)

func sample() *notecalc.DocumentResult {
	return notecalc.Calculate("# Budget\n\n1 + 1", notecalc.DefaultSettings(), nil)
}

func TestTextFormatter(t *testing.T) {
	var buf bytes.Buffer
	if err := (&export.TextFormatter{}).Format(&buf, sample(), export.Options{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "2") {
		t.Errorf("expected output to contain the result %q, got %q", "2", buf.String())
	}
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	if err := (&export.JSONFormatter{}).Format(&buf, sample(), export.Options{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), `"type": "expression"`) {
		t.Errorf("expected a line with type expression, got %s", buf.String())
	}
}

func TestMarkdownFormatter(t *testing.T) {
	var buf bytes.Buffer
	if err := (&export.MarkdownFormatter{}).Format(&buf, sample(), export.Options{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "```notecalc") {
		t.Errorf("expected a fenced notecalc block, got %s", buf.String())
	}
}

func TestHTMLFormatter(t *testing.T) {
	var buf bytes.Buffer
	if err := (&export.HTMLFormatter{}).Format(&buf, sample(), export.Options{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "<html") {
		t.Errorf("expected html output, got %s", buf.String())
	}
}

func TestGetFormatterByExtension(t *testing.T) {
	if _, ok := export.GetFormatter("", "out.json").(*export.JSONFormatter); !ok {
		t.Error("expected .json to resolve to JSONFormatter")
	}
	if _, ok := export.GetFormatter("", "out.unknown").(*export.TextFormatter); !ok {
		t.Error("expected unknown extensions to fall back to TextFormatter")
	}
}
