package notecalc

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/notecalc/notecalc/ast"
	"github.com/notecalc/notecalc/currency"
)

// LoadRates parses an exchange-rates.json snapshot (spec.md §6: `{ date,
// <base>: { <target>: rate, … }, … }`) into a currency.Rates pivoted on
// base. Scope note: this loader covers the exchange-rate file only.
// currencies.json's unambiguous/ambiguous/minorUnits tables stay the
// hand-authored Go maps in currency/tables.go (see DESIGN.md) rather than
// a second hot-loaded table — the snapshot changes daily and needs a
// runtime loader, the currency metadata does not.
func LoadRates(data []byte, base string) (*currency.Rates, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("notecalc: parsing exchange rate snapshot: %w", err)
	}

	var asOf string
	if dateRaw, ok := raw["date"]; ok {
		_ = json.Unmarshal(dateRaw, &asOf)
	}

	baseRaw, ok := raw[base]
	if !ok {
		return nil, fmt.Errorf("notecalc: exchange rate snapshot has no rates for base %q", base)
	}
	var perUnit map[string]decimal.Decimal
	if err := json.Unmarshal(baseRaw, &perUnit); err != nil {
		return nil, fmt.Errorf("notecalc: parsing rates for base %q: %w", base, err)
	}
	perUnit[base] = decimal.NewFromInt(1)
	return currency.NewRates(base, asOf, perUnit), nil
}

// lineType names a classified line node for LineResult.Type (spec.md §6).
func lineType(node ast.Node) string {
	switch node.(type) {
	case *ast.Heading:
		return "heading"
	case *ast.EmptyLine:
		return "empty"
	case *ast.PlainText:
		return "text"
	case *ast.VariableAssignment:
		return "assignment"
	case *ast.ExpressionLine:
		return "expression"
	default:
		return "unknown"
	}
}
