package notecalc

import "github.com/notecalc/notecalc/format"

// Settings is the closed presentation/behavior configuration a host passes
// into Calculate (spec.md §6). Defined in the format package to keep
// format from importing this package back; aliased here so callers of
// this package's public API don't need to reach into an internal import.
type Settings = format.Settings

// DefaultSettings returns the settings Calculate uses absent any host
// configuration.
func DefaultSettings() Settings {
	return format.DefaultSettings()
}
