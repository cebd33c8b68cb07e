package export

import (
	"fmt"
	"io"

	"github.com/notecalc/notecalc"
)

// MarkdownFormatter formats a document as Markdown: heading and prose
// lines pass through unchanged, calculation lines are rendered in a
// fenced code block followed by a result line.
type MarkdownFormatter struct{}

func (f *MarkdownFormatter) Extensions() []string { return []string{".md", ".markdown"} }

func (f *MarkdownFormatter) Format(w io.Writer, doc *notecalc.DocumentResult, opts Options) error {
	for i, lr := range doc.Results {
		source := ""
		if doc.AST != nil && i < len(doc.AST.Lines) {
			source = doc.AST.Lines[i].String()
		}

		switch lr.Type {
		case "heading", "text", "empty":
			fmt.Fprintln(w, source)
		default:
			fmt.Fprintf(w, "```notecalc\n%s\n```\n", source)
			switch {
			case lr.HasError:
				fmt.Fprint(w, "**Error**\n")
			case lr.Result != nil:
				fmt.Fprintf(w, "**Result:** %s\n", *lr.Result)
			}
		}
	}

	return nil
}
