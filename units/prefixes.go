package units

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Prefix is an SI or binary multiplier that can combine with a Prefixable
// unit symbol, e.g. "k" + "m" -> "km", "Ki" + "B" -> "KiB".
type Prefix struct {
	Symbol string
	Factor decimal.Decimal
}

// siPrefixes is ordered longest-symbol-first so greedy matching against a
// unit string picks "da" before "d", and is case-sensitive throughout: "M"
// (mega) and "m" (milli) must never be confused.
var siPrefixes = []Prefix{
	{"Y", decimal.New(1, 24)},
	{"Z", decimal.New(1, 21)},
	{"E", decimal.New(1, 18)},
	{"P", decimal.New(1, 15)},
	{"T", decimal.New(1, 12)},
	{"G", decimal.New(1, 9)},
	{"M", decimal.New(1, 6)},
	{"k", decimal.New(1, 3)},
	{"h", decimal.New(1, 2)},
	{"da", decimal.New(1, 1)},
	{"d", decimal.New(1, -1)},
	{"c", decimal.New(1, -2)},
	{"m", decimal.New(1, -3)},
	{"µ", decimal.New(1, -6)},
	{"u", decimal.New(1, -6)}, // ASCII stand-in for µ
	{"n", decimal.New(1, -9)},
	{"p", decimal.New(1, -12)},
	{"f", decimal.New(1, -15)},
	{"a", decimal.New(1, -18)},
	{"z", decimal.New(1, -21)},
	{"y", decimal.New(1, -24)},
}

// binaryPrefixes apply only to information units (bit/B) and are matched
// before siPrefixes so "KiB" isn't mistaken for SI "k" + "iB".
var binaryPrefixes = []Prefix{
	{"Ki", decimal.NewFromInt(1 << 10)},
	{"Mi", decimal.NewFromInt(1 << 20)},
	{"Gi", decimal.NewFromInt(1 << 30)},
	{"Ti", decimal.NewFromInt(1 << 40)},
	{"Pi", decimal.NewFromInt(1 << 50)},
	{"Ei", decimal.NewFromInt(1 << 60)},
}

// splitPrefix greedily strips the longest known prefix (binary prefixes
// first, since they're only valid on bit/byte) from sym and returns the
// remaining base symbol plus the matched multiplier. ok is false if sym
// carries no recognized prefix (the whole string is the base symbol).
func splitPrefix(sym string) (base string, factor decimal.Decimal, ok bool) {
	for _, p := range binaryPrefixes {
		if len(sym) > len(p.Symbol) && sym[:len(p.Symbol)] == p.Symbol {
			rest := sym[len(p.Symbol):]
			if def, found := lookupPrefixable(rest); found && isInformationUnit(def) {
				return rest, p.Factor, true
			}
		}
	}
	for _, p := range siPrefixes {
		if len(sym) > len(p.Symbol) && sym[:len(p.Symbol)] == p.Symbol {
			rest := sym[len(p.Symbol):]
			if def, found := lookupPrefixable(rest); found {
				return rest, p.Factor, true
			}
		}
	}
	return sym, decimal.Zero, false
}

func lookupPrefixable(sym string) (Def, bool) {
	if def, ok := exactCase[sym]; ok && def.Prefixable {
		return def, true
	}
	if def, ok := registry[strings.ToLower(sym)]; ok && def.Prefixable {
		return def, true
	}
	return Def{}, false
}

func isInformationUnit(def Def) bool {
	return def.Dimension == dimInformation
}
