// Package export renders a *notecalc.DocumentResult for output — the
// concern the core package deliberately stays out of, since a
// DocumentResult is host-agnostic and the CLI/TUI/web presentations each
// want a different serialization of the same evaluated lines.
package export

import (
	"io"

	"github.com/notecalc/notecalc"
)

// Formatter renders an evaluated document for a particular output channel.
// All formatters must implement this interface.
type Formatter interface {
	// Format writes the rendered document to w.
	Format(w io.Writer, doc *notecalc.DocumentResult, opts Options) error

	// Extensions returns file extensions this formatter handles.
	Extensions() []string
}

// Options controls formatter behavior.
type Options struct {
	Verbose       bool // Show source lines alongside results
	IncludeErrors bool // Include error detail lines
}
