package export

import (
	"fmt"
	"io"

	"github.com/notecalc/notecalc"
)

// TextFormatter formats a document as plain text, one line of output per
// source line. This is the primary formatter for interactive use (REPL,
// piped CLI output).
type TextFormatter struct{}

func (f *TextFormatter) Extensions() []string { return []string{".txt"} }

func (f *TextFormatter) Format(w io.Writer, doc *notecalc.DocumentResult, opts Options) error {
	for i, lr := range doc.Results {
		if opts.Verbose && doc.AST != nil && i < len(doc.AST.Lines) {
			fmt.Fprintln(w, doc.AST.Lines[i].String())
		}

		switch {
		case lr.HasError:
			fmt.Fprintln(w, "error")
		case lr.Result != nil:
			fmt.Fprintln(w, *lr.Result)
		}
	}

	if opts.IncludeErrors {
		for _, e := range doc.Errors.Runtime {
			fmt.Fprintf(w, "runtime error: %s\n", e.Message)
		}
	}

	return nil
}
