package export

import (
	"path/filepath"
	"strings"
)

// Global formatter registry.
var formatters = map[string]Formatter{
	"text": &TextFormatter{},
	"json": &JSONFormatter{},
	"html": &HTMLFormatter{},
	"md":   &MarkdownFormatter{},
}

// GetFormatter returns the appropriate formatter based on format name or
// filename extension. If format is specified, it takes precedence.
// Otherwise the filename extension is used. Falls back to the text
// formatter if no match is found.
func GetFormatter(format string, filename string) Formatter {
	if format != "" {
		if f, ok := formatters[format]; ok {
			return f
		}
		return formatters["text"]
	}

	if filename != "" {
		ext := strings.ToLower(filepath.Ext(filename))
		if ext != "" {
			for _, f := range formatters {
				for _, fExt := range f.Extensions() {
					if ext == fExt {
						return f
					}
				}
			}
		}
	}

	return formatters["text"]
}

// RegisterFormatter adds a custom formatter to the registry, so a host
// can plug in an output format the core package doesn't ship.
func RegisterFormatter(name string, formatter Formatter) {
	formatters[name] = formatter
}
