// Package timezone resolves the zone suffixes notecalc accepts on
// date/time literals (UTC offsets, "Z", IANA names, and a handful of common
// city/country aliases) down to a stdlib *time.Location.
package timezone

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// aliases maps a handful of common city and country names to their IANA
// zone, so `14:00 Tokyo` resolves without the user spelling out
// "Asia/Tokyo". This is deliberately a small curated set, not an attempt at
// exhaustive world coverage: anything not listed here can still be named by
// its full IANA zone.
var aliases = map[string]string{
	"utc":          "UTC",
	"gmt":          "UTC",
	"london":       "Europe/London",
	"uk":           "Europe/London",
	"paris":        "Europe/Paris",
	"berlin":       "Europe/Berlin",
	"madrid":       "Europe/Madrid",
	"rome":         "Europe/Rome",
	"moscow":       "Europe/Moscow",
	"istanbul":     "Europe/Istanbul",
	"dubai":        "Asia/Dubai",
	"mumbai":       "Asia/Kolkata",
	"delhi":        "Asia/Kolkata",
	"india":        "Asia/Kolkata",
	"bangkok":      "Asia/Bangkok",
	"singapore":    "Asia/Singapore",
	"hong kong":    "Asia/Hong_Kong",
	"shanghai":     "Asia/Shanghai",
	"beijing":      "Asia/Shanghai",
	"china":        "Asia/Shanghai",
	"tokyo":        "Asia/Tokyo",
	"japan":        "Asia/Tokyo",
	"seoul":        "Asia/Seoul",
	"sydney":       "Australia/Sydney",
	"melbourne":    "Australia/Melbourne",
	"perth":        "Australia/Perth",
	"auckland":     "Pacific/Auckland",
	"new zealand":  "Pacific/Auckland",
	"new york":     "America/New_York",
	"nyc":          "America/New_York",
	"boston":       "America/New_York",
	"chicago":      "America/Chicago",
	"denver":       "America/Denver",
	"phoenix":      "America/Phoenix",
	"los angeles":  "America/Los_Angeles",
	"la":           "America/Los_Angeles",
	"seattle":      "America/Los_Angeles",
	"san francisco": "America/Los_Angeles",
	"vancouver":    "America/Vancouver",
	"toronto":      "America/Toronto",
	"mexico city":  "America/Mexico_City",
	"sao paulo":    "America/Sao_Paulo",
	"buenos aires": "America/Argentina/Buenos_Aires",
	"cairo":        "Africa/Cairo",
	"lagos":        "Africa/Lagos",
	"johannesburg": "Africa/Johannesburg",
	"nairobi":      "Africa/Nairobi",
}

// Resolve turns a zone suffix as written in source (empty, "Z", a numeric
// UTC offset like "+05:30", an IANA zone name, or a known city/country
// alias) into a *time.Location. An empty suffix resolves to time.Local is
// wrong for a reproducible calculator, so it resolves to UTC instead,
// matching spec.md's "naive values are UTC unless a zone is given" rule.
func Resolve(suffix string) (*time.Location, error) {
	trimmed := strings.TrimSpace(suffix)
	if trimmed == "" || strings.EqualFold(trimmed, "Z") || strings.EqualFold(trimmed, "UTC") {
		return time.UTC, nil
	}

	if loc, ok := offsetLocation(trimmed); ok {
		return loc, nil
	}

	if iana, ok := aliases[strings.ToLower(trimmed)]; ok {
		loc, err := time.LoadLocation(iana)
		if err != nil {
			return nil, fmt.Errorf("timezone alias %q resolved to %q, which is not loadable: %w", trimmed, iana, err)
		}
		return loc, nil
	}

	loc, err := time.LoadLocation(trimmed)
	if err != nil {
		return nil, fmt.Errorf("unknown timezone %q", trimmed)
	}
	return loc, nil
}

// offsetLocation parses a fixed "+HH:MM" / "-HHMM" / "+HH" / "+H" offset
// into a time.FixedZone.
func offsetLocation(s string) (*time.Location, bool) {
	if len(s) == 0 || (s[0] != '+' && s[0] != '-') {
		return nil, false
	}
	sign := 1
	if s[0] == '-' {
		sign = -1
	}
	body := strings.ReplaceAll(s[1:], ":", "")
	if len(body) == 1 || len(body) == 3 {
		body = "0" + body
	}
	if len(body) != 2 && len(body) != 4 {
		return nil, false
	}
	hours, err := strconv.Atoi(body[:2])
	if err != nil {
		return nil, false
	}
	minutes := 0
	if len(body) == 4 {
		minutes, err = strconv.Atoi(body[2:])
		if err != nil {
			return nil, false
		}
	}
	offsetSeconds := sign * (hours*3600 + minutes*60)
	return time.FixedZone(fmt.Sprintf("UTC%s", s), offsetSeconds), true
}

// KnownAlias reports whether name matches a curated city/country alias,
// used by the validator to give a friendlier diagnostic than a bare
// "unknown timezone" when IANA lookup also fails.
func KnownAlias(name string) bool {
	_, ok := aliases[strings.ToLower(name)]
	return ok
}
