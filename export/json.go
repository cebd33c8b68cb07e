package export

import (
	"encoding/json"
	"io"

	"github.com/notecalc/notecalc"
)

// JSONFormatter formats a document as JSON, one object per source line.
// Useful for programmatic consumption and editor integrations.
type JSONFormatter struct{}

func (f *JSONFormatter) Extensions() []string { return []string{".json"} }

// JSONLine mirrors notecalc.LineResult, renamed for a stable wire shape
// independent of the Go struct it's generated from.
type JSONLine struct {
	Line    int      `json:"line"`
	Type    string   `json:"type"`
	Result  *string  `json:"result"`
	Error   bool     `json:"error"`
	Details []string `json:"details,omitempty"`
}

// JSONDocument is the document-level JSON envelope.
type JSONDocument struct {
	Lines  []JSONLine `json:"lines"`
	Errors []string   `json:"errors,omitempty"`
}

func (f *JSONFormatter) Format(w io.Writer, doc *notecalc.DocumentResult, opts Options) error {
	out := JSONDocument{Lines: make([]JSONLine, len(doc.Results))}

	for i, lr := range doc.Results {
		out.Lines[i] = JSONLine{
			Line:    lr.Line,
			Type:    lr.Type,
			Result:  lr.Result,
			Error:   lr.HasError,
			Details: lr.Details,
		}
	}

	if opts.IncludeErrors {
		for _, e := range doc.Errors.Runtime {
			out.Errors = append(out.Errors, e.Message)
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
