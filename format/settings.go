package format

// Settings is the closed set of presentation options a host passes into
// calculate() (spec.md §6). Fields marked "cosmetic" are carried through
// untouched for the host's own use and never change evaluation or
// formatting semantics.
type Settings struct {
	// Cosmetic — ignored by the core, round-tripped for the host.
	Theme         string
	FontSize      int
	FontFamily    string
	LineWrapping  bool

	// Precision is -1 (auto: shortest round-trip, capped at 12
	// significant digits) or one of 0, 2, 4, 6, 8, 10 fixed decimal places.
	Precision int

	// AngleUnit is "degree" or "radian"; read by the evaluator's trig
	// functions, not by the formatter itself.
	AngleUnit string

	// DecimalSeparator is "." or ",".
	DecimalSeparator string

	// DigitGroupingSeparator is "", " ", ",", ".", or "′"; must differ
	// from DecimalSeparator (enforced by Normalize).
	DigitGroupingSeparator string

	// DigitGroupingSize is "3", "2-3" (South Asian), "4", or "off".
	DigitGroupingSize string

	// DateFormat selects the token pattern used to render PlainDate and
	// the date half of PlainDateTime/ZonedDateTime.
	DateFormat string

	// TimeFormat is "h23" or "h12".
	TimeFormat string

	// DateTimeFormat controls the order the date and time halves are
	// joined in: "{date} {time}" or "{time} {date}".
	DateTimeFormat string

	// UnitDisplayStyle is "symbol" or "name".
	UnitDisplayStyle string

	// ImperialUnits is "us" or "uk" (gallon/pint/stone disambiguation).
	ImperialUnits string

	// DebugMode affects diagnostic reporting only, never semantics.
	DebugMode bool
}

// DefaultSettings returns the settings a freshly constructed core starts
// with absent any host configuration.
func DefaultSettings() Settings {
	return Settings{
		Precision:              -1,
		AngleUnit:              "degree",
		DecimalSeparator:       ".",
		DigitGroupingSeparator: ",",
		DigitGroupingSize:      "3",
		DateFormat:             "YYYY-MM-DD DDD",
		TimeFormat:             "h23",
		DateTimeFormat:         "{date} {time}",
		UnitDisplayStyle:       "symbol",
		ImperialUnits:          "us",
	}
}

var validPrecisions = map[int]bool{-1: true, 0: true, 2: true, 4: true, 6: true, 8: true, 10: true}
var validGroupingSizes = map[string]bool{"3": true, "2-3": true, "4": true, "off": true}
var validGroupingSeparators = map[string]bool{"": true, " ": true, ",": true, ".": true, "′": true}

// Normalize coerces out-of-enumeration fields back to their defaults
// rather than erroring, matching the teacher's permissive construction
// style (NewEnvironment, NewContext): a host sending a stray config value
// degrades to sane behavior instead of blocking evaluation.
func (s Settings) Normalize() Settings {
	def := DefaultSettings()
	if !validPrecisions[s.Precision] {
		s.Precision = def.Precision
	}
	if s.AngleUnit != "degree" && s.AngleUnit != "radian" {
		s.AngleUnit = def.AngleUnit
	}
	if s.DecimalSeparator != "." && s.DecimalSeparator != "," {
		s.DecimalSeparator = def.DecimalSeparator
	}
	if !validGroupingSeparators[s.DigitGroupingSeparator] || s.DigitGroupingSeparator == s.DecimalSeparator {
		s.DigitGroupingSeparator = def.DigitGroupingSeparator
		if s.DigitGroupingSeparator == s.DecimalSeparator {
			s.DigitGroupingSeparator = ""
		}
	}
	if !validGroupingSizes[s.DigitGroupingSize] {
		s.DigitGroupingSize = def.DigitGroupingSize
	}
	switch s.DateFormat {
	case "YYYY-MM-DD DDD", "YYYY MMM DD DDD", "DDD DD MMM YYYY", "DDD MMM DD YYYY":
	default:
		s.DateFormat = def.DateFormat
	}
	if s.TimeFormat != "h23" && s.TimeFormat != "h12" {
		s.TimeFormat = def.TimeFormat
	}
	if s.DateTimeFormat != "{date} {time}" && s.DateTimeFormat != "{time} {date}" {
		s.DateTimeFormat = def.DateTimeFormat
	}
	if s.UnitDisplayStyle != "symbol" && s.UnitDisplayStyle != "name" {
		s.UnitDisplayStyle = def.UnitDisplayStyle
	}
	if s.ImperialUnits != "us" && s.ImperialUnits != "uk" {
		s.ImperialUnits = def.ImperialUnits
	}
	return s
}
