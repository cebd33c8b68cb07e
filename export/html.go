package export

import (
	_ "embed"
	"html/template"
	"io"

	"github.com/gomarkdown/markdown"
	mdhtml "github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"github.com/notecalc/notecalc"
)

//go:embed templates/default.html
var defaultHTMLTemplate string

// HTMLFormatter formats a document as HTML using an embedded template,
// for the web-host presentation spec.md's domain stack table anticipates.
type HTMLFormatter struct{}

func (f *HTMLFormatter) Extensions() []string { return []string{".html", ".htm"} }

// templateLine is the per-line view model handed to the template.
// ProseHTML carries rendered markdown for heading/text lines; Result
// carries the plain calculated value for expression/assignment lines.
type templateLine struct {
	Source     string
	Result     string
	ProseHTML  template.HTML
	IsProse    bool
	Error      bool
	Type       string
}

// renderProse turns a single heading/text source line into HTML via
// gomarkdown, the same renderer spec.md's domain stack table earmarks
// for "prose line → HTML for a future web host".
func renderProse(source string) template.HTML {
	if source == "" {
		return ""
	}
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.AutoHeadingIDs)
	doc := p.Parse([]byte(source))
	renderer := mdhtml.NewRenderer(mdhtml.RendererOptions{Flags: mdhtml.CommonFlags | mdhtml.HrefTargetBlank})
	return template.HTML(markdown.Render(doc, renderer))
}

func (f *HTMLFormatter) Format(w io.Writer, doc *notecalc.DocumentResult, opts Options) error {
	tmpl, err := template.New("html").Parse(defaultHTMLTemplate)
	if err != nil {
		return err
	}

	data := struct{ Lines []templateLine }{Lines: make([]templateLine, len(doc.Results))}

	for i, lr := range doc.Results {
		tl := templateLine{Error: lr.HasError, Type: lr.Type}
		if doc.AST != nil && i < len(doc.AST.Lines) {
			tl.Source = doc.AST.Lines[i].String()
		}
		if lr.Result != nil {
			tl.Result = *lr.Result
		}
		switch lr.Type {
		case "heading", "text":
			tl.IsProse = true
			tl.ProseHTML = renderProse(tl.Source)
		}
		data.Lines[i] = tl
	}

	return tmpl.Execute(w, data)
}
