package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/notecalc/notecalc"
)

// yamlSettings mirrors notecalc.Settings with yaml tags, since the core
// Settings struct stays free of serialization concerns — the CLI owns
// the on-disk shape of its own config file.
type yamlSettings struct {
	Theme                  string `yaml:"theme"`
	FontSize               int    `yaml:"font_size"`
	FontFamily             string `yaml:"font_family"`
	LineWrapping           bool   `yaml:"line_wrapping"`
	Precision              *int   `yaml:"precision"`
	AngleUnit              string `yaml:"angle_unit"`
	DecimalSeparator       string `yaml:"decimal_separator"`
	DigitGroupingSeparator string `yaml:"digit_grouping_separator"`
	DigitGroupingSize      string `yaml:"digit_grouping_size"`
	DateFormat             string `yaml:"date_format"`
	TimeFormat             string `yaml:"time_format"`
	DateTimeFormat         string `yaml:"date_time_format"`
	UnitDisplayStyle       string `yaml:"unit_display_style"`
	ImperialUnits          string `yaml:"imperial_units"`
}

// LoadSettingsFile reads a notecalc.yaml file (spec.md §6's Settings,
// serialized for the CLI) and overlays it onto notecalc.DefaultSettings.
// A field the file omits keeps its default rather than zeroing out.
func LoadSettingsFile(path string) (notecalc.Settings, error) {
	s := notecalc.DefaultSettings()

	data, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("read settings file: %w", err)
	}

	var y yamlSettings
	if err := yaml.Unmarshal(data, &y); err != nil {
		return s, fmt.Errorf("parse settings file: %w", err)
	}

	if y.Theme != "" {
		s.Theme = y.Theme
	}
	if y.FontSize != 0 {
		s.FontSize = y.FontSize
	}
	if y.FontFamily != "" {
		s.FontFamily = y.FontFamily
	}
	s.LineWrapping = y.LineWrapping
	if y.Precision != nil {
		s.Precision = *y.Precision
	}
	if y.AngleUnit != "" {
		s.AngleUnit = y.AngleUnit
	}
	if y.DecimalSeparator != "" {
		s.DecimalSeparator = y.DecimalSeparator
	}
	if y.DigitGroupingSeparator != "" {
		s.DigitGroupingSeparator = y.DigitGroupingSeparator
	}
	if y.DigitGroupingSize != "" {
		s.DigitGroupingSize = y.DigitGroupingSize
	}
	if y.DateFormat != "" {
		s.DateFormat = y.DateFormat
	}
	if y.TimeFormat != "" {
		s.TimeFormat = y.TimeFormat
	}
	if y.DateTimeFormat != "" {
		s.DateTimeFormat = y.DateTimeFormat
	}
	if y.UnitDisplayStyle != "" {
		s.UnitDisplayStyle = y.UnitDisplayStyle
	}
	if y.ImperialUnits != "" {
		s.ImperialUnits = y.ImperialUnits
	}

	return s.Normalize(), nil
}
