// Package currency resolves currency symbols/codes and converts amounts
// using a loaded exchange-rate snapshot.
package currency

import (
	"fmt"
	"strings"

	xcurrency "golang.org/x/text/currency"
)

// knownSymbols maps a currency symbol to the ISO 4217 code used when the
// symbol is unambiguous. Symbols not in this table, and symbols that are
// ambiguous across multiple real currencies (e.g. "$" for USD/CAD/AUD/...),
// are handled by Ambiguous instead of being silently resolved to one guess.
var knownSymbols = map[string]string{
	"€": "EUR",
	"£": "GBP",
	"¥": "JPY",
	"₹": "INR",
	"₩": "KRW",
	"₽": "RUB",
}

// ambiguousSymbols lists symbols shared by more than one live ISO currency.
// Per spec.md's design note, these never get silently resolved to a single
// code: arithmetic on a bare "$" amount stays dimensionally valid by
// treating the symbol itself as a synthetic, symbol-scoped currency until
// an explicit `to USD`/`to CAD` conversion names the real code.
var ambiguousSymbols = map[string][]string{
	"$": {"USD", "CAD", "AUD", "NZD", "HKD", "SGD", "MXN"},
}

// SyntheticCode returns the placeholder code used for an ambiguous symbol,
// e.g. "$" -> "currency_symbol_0024" (U+0024). Two amounts both written
// with a bare "$" are dimensionally compatible with each other (same
// synthetic code) without ever claiming to know which real currency they are.
func SyntheticCode(symbol string) string {
	r := []rune(symbol)
	if len(r) != 1 {
		return "currency_symbol_" + symbol
	}
	return fmt.Sprintf("currency_symbol_%04x", r[0])
}

// IsAmbiguous reports whether symbol maps to more than one live ISO currency.
func IsAmbiguous(symbol string) bool {
	_, ok := ambiguousSymbols[symbol]
	return ok
}

// CandidateCodes returns the ISO codes an ambiguous symbol could mean, for
// diagnostics ("$ could mean USD, CAD, AUD, ... - use an explicit code").
func CandidateCodes(symbol string) []string {
	return ambiguousSymbols[symbol]
}

// specialCodes are syntactically valid ISO 4217-shaped codes that do not
// name a live currency (precious metals, test codes).
var specialCodes = map[string]bool{
	"XXX": true, "XTS": true, "XUA": true, "XAG": true, "XAU": true,
	"XPD": true, "XPT": true,
}

// ValidateCode reports whether code is a real, tradable ISO 4217 currency
// code (three uppercase letters recognized by golang.org/x/text/currency,
// excluding metals/test codes).
func ValidateCode(code string) bool {
	if len(code) != 3 {
		return false
	}
	for _, r := range code {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	if specialCodes[code] {
		return false
	}
	unit, err := xcurrency.ParseISO(code)
	if err != nil {
		return false
	}
	return unit.String() == code
}

// NormalizeSymbol resolves a currency symbol or code to the code used for
// dimensional comparisons: the ISO code for an unambiguous symbol, the
// synthetic placeholder for an ambiguous one, or the code itself unchanged.
func NormalizeSymbol(symbolOrCode string) string {
	if code, ok := knownSymbols[symbolOrCode]; ok {
		return code
	}
	if IsAmbiguous(symbolOrCode) {
		return SyntheticCode(symbolOrCode)
	}
	if len(symbolOrCode) == 3 && strings.ToUpper(symbolOrCode) == symbolOrCode {
		return symbolOrCode
	}
	return symbolOrCode
}

// minorUnitExceptions lists ISO 4217 codes whose minor-unit digit count
// isn't the default of 2 (spec.md §4.E currency rendering).
var minorUnitExceptions = map[string]int{
	"JPY": 0, "KRW": 0, "VND": 0, "CLP": 0, "ISK": 0, "HUF": 0, "PYG": 0,
	"BIF": 0, "DJF": 0, "GNF": 0, "KMF": 0, "RWF": 0, "UGX": 0, "VUV": 0, "XAF": 0, "XOF": 0, "XPF": 0,
	"BHD": 3, "JOD": 3, "KWD": 3, "OMR": 3, "TND": 3,
}

// MinorUnits returns the number of fractional digits a currency code is
// conventionally rounded to for display; 2 is the ISO 4217 default.
func MinorUnits(code string) int {
	if n, ok := minorUnitExceptions[strings.ToUpper(code)]; ok {
		return n
	}
	return 2
}

// DisplaySymbol returns the symbol or code notecalc should print back for a
// normalized code: the original symbol for ambiguous/known symbols, or the
// code itself.
func DisplaySymbol(normalized, original string) string {
	if original != "" {
		return original
	}
	return normalized
}
