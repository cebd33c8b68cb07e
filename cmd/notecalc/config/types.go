// Package config provides configuration management for the notecalc
// CLI/TUI. Configuration is loaded from TOML files with embedded
// defaults, the same layering the core package's Settings uses for
// rendering but scoped to host/presentation concerns (theme, verbosity).
package config

// Config is the root configuration structure.
type Config struct {
	TUI       TUIConfig       `mapstructure:"tui"`
	Formatter FormatterConfig `mapstructure:"formatter"`
}

// TUIConfig holds TUI-specific settings.
type TUIConfig struct {
	Theme ThemeConfig `mapstructure:"theme"`
}

// ThemeConfig defines the TUI's colors as hex strings.
type ThemeConfig struct {
	Primary     string `mapstructure:"primary"`      // Titles, prompts, headings
	Accent      string `mapstructure:"accent"`       // Borders, highlights
	Error       string `mapstructure:"error"`        // Error messages
	Muted       string `mapstructure:"muted"`        // Help text
	Output      string `mapstructure:"output"`       // Calculation results
	CurrentLine string `mapstructure:"current_line"` // Cursor-line background
}

// FormatterConfig holds output formatter defaults for the eval/convert
// subcommands.
type FormatterConfig struct {
	Verbose       bool   `mapstructure:"verbose"`
	IncludeErrors bool   `mapstructure:"include_errors"`
	DefaultFormat string `mapstructure:"default_format"`
}
