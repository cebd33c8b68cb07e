package config

import "github.com/charmbracelet/lipgloss"

// Styles holds pre-built lipgloss styles derived from theme config, so
// the TUI doesn't rebuild them on every render.
type Styles struct {
	Title       lipgloss.Style
	Error       lipgloss.Style
	Help        lipgloss.Style
	Output      lipgloss.Style
	CurrentLine lipgloss.Style
	StatusBar   lipgloss.Style
}

// BuildStyles creates lipgloss.Style instances from ThemeConfig.
func (t ThemeConfig) BuildStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(t.Primary)),

		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Error)),

		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)).
			Italic(true),

		Output: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Output)),

		CurrentLine: lipgloss.NewStyle().
			Background(lipgloss.Color(t.CurrentLine)),

		StatusBar: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)).
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(lipgloss.Color(t.Accent)),
	}
}
