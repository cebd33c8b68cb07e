package format

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/notecalc/notecalc/ast"
	"github.com/notecalc/notecalc/currency"
	"github.com/notecalc/notecalc/evaluator"
	"github.com/notecalc/notecalc/types"
	"github.com/notecalc/notecalc/units"
)

// Render turns one evaluated line's Result into the string an editor
// overlay or CLI prints (spec.md §4.E). A PresentationFormat on the
// result — attached by the evaluator for `to base 16` / `to 4 decimals` /
// `to scientific` / `to fraction` style conversions — overrides the
// Settings-driven default rendering; `based on:` provenance recorded in
// Details is appended as a trailing line.
func Render(res *evaluator.Result, s Settings) (string, error) {
	s = s.Normalize()
	body, err := renderWithFormat(res.Value, res.Format, s)
	if err != nil {
		return "", err
	}
	if len(res.Details) > 0 {
		body += "\nbased on: " + strings.Join(res.Details, ", ")
	}
	return body, nil
}

func renderWithFormat(v types.Type, pf *ast.PresentationFormat, s Settings) (string, error) {
	if pf != nil {
		switch pf.Kind {
		case "base":
			return renderBase(v, pf.Arg)
		case "sigfigs":
			return renderSigFigs(v, pf.Arg)
		case "decimals":
			return renderDecimals(v, pf.Arg)
		case "scientific":
			return renderScientific(v)
		case "fraction":
			return renderFraction(v)
		case "unix":
			return renderUnix(v, pf.Unit)
		}
	}
	return renderValue(v, s)
}

// renderValue is the default, Settings-driven rendering for every Type.
func renderValue(v types.Type, s Settings) (string, error) {
	switch val := v.(type) {
	case *types.Number:
		return renderNumber(val.Value, s), nil
	case *types.Boolean:
		if val.Value {
			return "true", nil
		}
		return "false", nil
	case *types.Percentage:
		scale := decimal.NewFromInt(100)
		symbol := "%"
		if val.Permille {
			scale = decimal.NewFromInt(1000)
			symbol = "‰"
		}
		return renderNumber(val.Fraction.Mul(scale), s) + symbol, nil
	case *types.Currency:
		return renderCurrency(val, s), nil
	case *types.Quantity:
		return renderQuantity(val, s), nil
	case *types.Composite:
		parts := make([]string, len(val.Parts))
		for i, p := range val.Parts {
			parts[i] = renderQuantity(p, s)
		}
		return strings.Join(parts, " "), nil
	case *types.PlainDate:
		return renderDate(val, s), nil
	case *types.PlainTime:
		return renderTime(val.Hour, val.Minute, val.Second, s), nil
	case *types.PlainDateTime:
		return renderDateTimeTokens(val.Time, "", s), nil
	case *types.ZonedDateTime:
		return renderDateTimeTokens(val.Time, renderZoneOffset(val.Time), s), nil
	case *types.Instant:
		return strconv.FormatInt(val.Time.Unix(), 10), nil
	default:
		return "", fmt.Errorf("format: unsupported value type %T", v)
	}
}

// ---- numbers ----

// renderNumber applies precision, digit grouping, and the decimal
// separator to a plain magnitude. In auto mode (Precision == -1), a
// magnitude whose order reaches the 12-significant-digit cap switches to
// exponential notation (spec.md §4.E scenario 1) instead of padding with
// zeros that aren't part of the value's significant digits.
func renderNumber(d decimal.Decimal, s Settings) string {
	if s.Precision == -1 && needsExponential(d) {
		return autoExponential(d)
	}

	var digits string
	if s.Precision == -1 {
		digits = trimTrailingZeros(sigFigRound(d, 12).String())
	} else {
		digits = d.StringFixed(int32(s.Precision))
	}

	neg := strings.HasPrefix(digits, "-")
	digits = strings.TrimPrefix(digits, "-")

	intPart, fracPart, hasFrac := strings.Cut(digits, ".")
	intPart = groupDigits(intPart, s.DigitGroupingSize, s.DigitGroupingSeparator)

	var out strings.Builder
	if neg {
		out.WriteByte('-')
	}
	out.WriteString(intPart)
	if hasFrac {
		out.WriteString(s.DecimalSeparator)
		out.WriteString(fracPart)
	}
	return out.String()
}

// exponentOf returns d's base-10 order of magnitude (floor(log10(|d|)),
// but computed exactly from the decimal's coefficient and exponent
// instead of through float64, which loses the sign of the exponent at
// the extremes: log10(1e-12) can land on -13 due to float rounding).
// Zero has no defined order of magnitude; callers must guard for it.
func exponentOf(d decimal.Decimal) int {
	coeff := new(big.Int).Abs(d.Coefficient())
	return len(coeff.String()) - 1 + int(d.Exponent())
}

// sigFigRound rounds d to n significant figures by deriving the number of
// decimal places its true base-10 exponent leaves available. Unlike an
// intDigits count pinned to 1 for |d| < 1, this also works for magnitudes
// far below 1 (e.g. 1e-12 needs 23 places to keep 12 significant digits).
func sigFigRound(d decimal.Decimal, n int) decimal.Decimal {
	if d.IsZero() {
		return d
	}
	places := n - exponentOf(d) - 1
	if places < 0 {
		places = 0
	}
	return d.Round(int32(places))
}

// needsExponential reports whether d's magnitude has reached the
// 12-significant-digit cap in either direction, where a plain decimal
// rendering would otherwise pad with digits that aren't significant.
func needsExponential(d decimal.Decimal) bool {
	if d.IsZero() {
		return false
	}
	exp := exponentOf(d)
	return exp >= 12 || exp <= -12
}

// autoExponential renders d in auto mode's exponential form: a mantissa
// in [1, 10) rounded to 12 significant digits with trailing zeros
// trimmed, "e", and a signed, unpadded exponent — e.g. "1e-12", "1e+15".
func autoExponential(d decimal.Decimal) string {
	neg := d.IsNegative()
	exp := exponentOf(d)
	mantissa := sigFigRound(d.Abs().Shift(int32(-exp)), 12)
	if mantissa.GreaterThanOrEqual(decimal.NewFromInt(10)) {
		mantissa = mantissa.Shift(-1)
		exp++
	}

	var out strings.Builder
	if neg {
		out.WriteByte('-')
	}
	out.WriteString(trimTrailingZeros(mantissa.String()))
	out.WriteByte('e')
	if exp < 0 {
		out.WriteByte('-')
		exp = -exp
	} else {
		out.WriteByte('+')
	}
	out.WriteString(strconv.Itoa(exp))
	return out.String()
}

func trimTrailingZeros(s string) string {
	if !strings.Contains(s, ".") {
		return s
	}
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}

// groupDigits inserts sep into intPart (no sign, no decimal point) per
// size: "3" (thousands), "4", "2-3" (South Asian lakh/crore), or "off".
func groupDigits(intPart, size, sep string) string {
	if sep == "" || size == "off" || len(intPart) <= 3 {
		return intPart
	}
	switch size {
	case "4":
		return groupFromRight(intPart, 4, sep)
	case "2-3":
		return groupSouthAsian(intPart, sep)
	default:
		return groupFromRight(intPart, 3, sep)
	}
}

func groupFromRight(s string, n int, sep string) string {
	var groups []string
	for len(s) > n {
		groups = append([]string{s[len(s)-n:]}, groups...)
		s = s[:len(s)-n]
	}
	groups = append([]string{s}, groups...)
	return strings.Join(groups, sep)
}

func groupSouthAsian(s string, sep string) string {
	if len(s) <= 3 {
		return s
	}
	head, tail := s[:len(s)-3], s[len(s)-3:]
	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	groups = append([]string{head}, groups...)
	return strings.Join(groups, sep) + sep + tail
}

// ---- units ----

// unitLongNames is a best-effort symbol -> singular display name table for
// Settings.UnitDisplayStyle == "name"; units without an entry fall back to
// their symbol, which is always a valid (if terser) rendering.
var unitLongNames = map[string]string{
	"m": "meter", "km": "kilometer", "cm": "centimeter", "mm": "millimeter",
	"ft": "foot", "in": "inch", "yd": "yard", "mi": "mile",
	"kg": "kilogram", "g": "gram", "mg": "milligram", "t": "tonne",
	"lb": "pound", "oz": "ounce",
	"s": "second", "min": "minute", "h": "hour", "day": "day", "wk": "week",
	"l": "liter", "ml": "milliliter", "gal": "gallon", "qt": "quart",
	"K": "kelvin", "°C": "degree Celsius", "°F": "degree Fahrenheit",
	"rad": "radian", "deg": "degree",
	"B": "byte", "KB": "kilobyte", "MB": "megabyte", "GB": "gigabyte",
}

var superscriptDigits = map[rune]rune{
	'0': '⁰', '1': '¹', '2': '²', '3': '³', '4': '⁴',
	'5': '⁵', '6': '⁶', '7': '⁷', '8': '⁸', '9': '⁹',
}

func superscript(n int) string {
	s := strconv.Itoa(n)
	var out strings.Builder
	if strings.HasPrefix(s, "-") {
		out.WriteRune('⁻')
		s = s[1:]
	}
	for _, r := range s {
		out.WriteRune(superscriptDigits[r])
	}
	return out.String()
}

func unitTermName(symbol string, style string) string {
	if style != "name" {
		return symbol
	}
	if name, ok := unitLongNames[symbol]; ok {
		return name
	}
	return symbol
}

func renderUnits(u units.Composition, style string) string {
	var num, den []string
	for _, t := range u.Terms {
		name := unitTermName(t.Symbol, style)
		exp := t.Exponent
		switch {
		case exp == 1:
			num = append(num, name)
		case exp == -1:
			den = append(den, name)
		case exp > 0:
			num = append(num, name+superscript(exp))
		default:
			den = append(den, name+superscript(-exp))
		}
	}
	numStr := strings.Join(num, " ")
	if len(den) == 0 {
		return numStr
	}
	if len(den) == 1 {
		return numStr + "/" + den[0]
	}
	return numStr + "/(" + strings.Join(den, " ") + ")"
}

// currencyMinorUnits returns the minor-unit digit count for a composition
// carrying a currency code as one of its terms (e.g. "USD/person/day"),
// so a rate denominated in money still gets cent-accurate rounding
// instead of the plain auto sig-fig rendering numbers otherwise get.
func currencyMinorUnits(u units.Composition) (int, bool) {
	for _, t := range u.Terms {
		if currency.ValidateCode(t.Symbol) {
			return currency.MinorUnits(t.Symbol), true
		}
	}
	return 0, false
}

func renderQuantity(q *types.Quantity, s Settings) string {
	var numStr string
	if minor, ok := currencyMinorUnits(q.Unit); ok {
		numStr = renderFixed(q.Value, minor, s)
	} else {
		numStr = renderNumber(q.Value, s)
	}
	unitStr := renderUnits(q.Unit, s.UnitDisplayStyle)
	if unitStr == "" {
		return numStr
	}
	return numStr + " " + unitStr
}

// ---- currency ----

// renderFixed applies digit grouping and the decimal separator to a value
// rounded to a fixed number of places, the shared tail of currency-style
// rendering used both for bare Currency values and for a Quantity whose
// unit composition carries a currency code (e.g. "USD/person/day").
func renderFixed(d decimal.Decimal, places int, s Settings) string {
	digits := d.StringFixed(int32(places))
	neg := strings.HasPrefix(digits, "-")
	digits = strings.TrimPrefix(digits, "-")
	intPart, fracPart, hasFrac := strings.Cut(digits, ".")
	intPart = groupDigits(intPart, s.DigitGroupingSize, s.DigitGroupingSeparator)

	var out strings.Builder
	if neg {
		out.WriteByte('-')
	}
	out.WriteString(intPart)
	if hasFrac {
		out.WriteString(s.DecimalSeparator)
		out.WriteString(fracPart)
	}
	return out.String()
}

func renderCurrency(c *types.Currency, s Settings) string {
	return renderFixed(c.Value, currency.MinorUnits(c.Code), s) + " " + c.Code
}

// ---- dates & times ----

var weekdayAbbrev = [...]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
var monthAbbrev = [...]string{"", "Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

func renderDateComponents(year, month, day int, weekday time.Weekday, pattern string) string {
	yyyy := fmt.Sprintf("%04d", year)
	mm := fmt.Sprintf("%02d", month)
	dd := fmt.Sprintf("%02d", day)
	mmm := monthAbbrev[month]
	ddd := weekdayAbbrev[weekday]

	switch pattern {
	case "YYYY MMM DD DDD":
		return fmt.Sprintf("%s %s %s %s", yyyy, mmm, dd, ddd)
	case "DDD DD MMM YYYY":
		return fmt.Sprintf("%s %s %s %s", ddd, dd, mmm, yyyy)
	case "DDD MMM DD YYYY":
		return fmt.Sprintf("%s %s %s %s", ddd, mmm, dd, yyyy)
	default: // "YYYY-MM-DD DDD"
		return fmt.Sprintf("%s-%s-%s %s", yyyy, mm, dd, ddd)
	}
}

func renderDate(d *types.PlainDate, s Settings) string {
	t := time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
	return renderDateComponents(d.Year, d.Month, d.Day, t.Weekday(), s.DateFormat)
}

func renderTime(hour, minute, second int, s Settings) string {
	if s.TimeFormat == "h12" {
		suffix := "AM"
		h := hour
		if h == 0 {
			h = 12
		} else if h == 12 {
			suffix = "PM"
		} else if h > 12 {
			h -= 12
			suffix = "PM"
		}
		return fmt.Sprintf("%d:%02d:%02d %s", h, minute, second, suffix)
	}
	return fmt.Sprintf("%02d:%02d:%02d", hour, minute, second)
}

// renderDateTimeTokens renders a time.Time's date and time halves per
// Settings and joins them per DateTimeFormat; zone, if non-empty, is
// appended to the time half (spec.md §4.E zone normalization).
func renderDateTimeTokens(t time.Time, zone string, s Settings) string {
	datePart := renderDateComponents(t.Year(), int(t.Month()), t.Day(), t.Weekday(), s.DateFormat)
	timePart := renderTime(t.Hour(), t.Minute(), t.Second(), s)
	if zone != "" {
		timePart += " " + zone
	}
	if s.DateTimeFormat == "{time} {date}" {
		return timePart + " " + datePart
	}
	return datePart + " " + timePart
}

// renderZoneOffset normalizes a zone to "UTC±H" for whole-hour offsets or
// "UTC±H:MM" otherwise (spec.md §4.E).
func renderZoneOffset(t time.Time) string {
	_, offset := t.Zone()
	sign := "+"
	if offset < 0 {
		sign = "-"
		offset = -offset
	}
	hours := offset / 3600
	minutes := (offset % 3600) / 60
	if minutes == 0 {
		return fmt.Sprintf("UTC%s%d", sign, hours)
	}
	return fmt.Sprintf("UTC%s%d:%02d", sign, hours, minutes)
}

// ---- presentation-format overrides ----

func magnitudeOf(v types.Type) (decimal.Decimal, string, bool) {
	switch val := v.(type) {
	case *types.Number:
		return val.Value, "", true
	case *types.Currency:
		return val.Value, "", true
	case *types.Quantity:
		return val.Value, renderUnits(val.Unit, "symbol"), true
	case *types.Percentage:
		return val.Fraction.Mul(decimal.NewFromInt(100)), "%", true
	default:
		return decimal.Zero, "", false
	}
}

func withUnit(body, unit string) string {
	if unit == "" {
		return body
	}
	return body + " " + unit
}

func renderBase(v types.Type, base int) (string, error) {
	d, unit, ok := magnitudeOf(v)
	if !ok || !d.IsInteger() {
		return "", fmt.Errorf("format: %s has no integer magnitude to render in base %d", v.TypeName(), base)
	}
	n, ok := new(big.Int).SetString(d.String(), 10)
	if !ok {
		return "", fmt.Errorf("format: could not parse %s as an integer", d.String())
	}
	return withUnit(n.Text(base), unit), nil
}

func renderSigFigs(v types.Type, n int) (string, error) {
	d, unit, ok := magnitudeOf(v)
	if !ok {
		return "", fmt.Errorf("format: %s cannot be rendered with significant figures", v.TypeName())
	}
	return withUnit(trimTrailingZeros(sigFigRound(d, n).String()), unit), nil
}

func renderDecimals(v types.Type, n int) (string, error) {
	d, unit, ok := magnitudeOf(v)
	if !ok {
		return "", fmt.Errorf("format: %s cannot be rendered with a fixed decimal count", v.TypeName())
	}
	return withUnit(d.StringFixed(int32(n)), unit), nil
}

// renderScientific is a display-only convenience: it goes through
// float64, which is fine for a rendering decision but must never be used
// on the arithmetic path (spec.md §3's decimal-throughout rule).
func renderScientific(v types.Type) (string, error) {
	d, unit, ok := magnitudeOf(v)
	if !ok {
		return "", fmt.Errorf("format: %s cannot be rendered in scientific notation", v.TypeName())
	}
	if d.IsZero() {
		return withUnit("0e+00", unit), nil
	}
	f, _ := d.Float64()
	neg := f < 0
	f = math.Abs(f)
	exp := int(math.Floor(math.Log10(f)))
	mantissa := f / math.Pow(10, float64(exp))
	sign := "+"
	if neg {
		sign = "-"
	}
	expSign := "+"
	absExp := exp
	if exp < 0 {
		expSign = "-"
		absExp = -exp
	}
	return withUnit(fmt.Sprintf("%s%.4ge%s%02d", sign, mantissa, expSign, absExp), unit), nil
}

func renderFraction(v types.Type) (string, error) {
	d, unit, ok := magnitudeOf(v)
	if !ok {
		return "", fmt.Errorf("format: %s cannot be rendered as a fraction", v.TypeName())
	}
	r := new(big.Rat)
	if _, ok := r.SetString(d.String()); !ok {
		return "", fmt.Errorf("format: could not parse %s as a fraction", d.String())
	}
	if r.IsInt() {
		return withUnit(r.Num().String(), unit), nil
	}
	return withUnit(fmt.Sprintf("%s/%s", r.Num().String(), r.Denom().String()), unit), nil
}

func renderUnix(v types.Type, unit string) (string, error) {
	inst, ok := v.(*types.Instant)
	if !ok {
		return "", fmt.Errorf("format: %s is not a unix instant", v.TypeName())
	}
	switch unit {
	case "milliseconds":
		return strconv.FormatInt(inst.Time.UnixMilli(), 10), nil
	case "microseconds":
		return strconv.FormatInt(inst.Time.UnixMicro(), 10), nil
	case "nanoseconds":
		return strconv.FormatInt(inst.Time.UnixNano(), 10), nil
	default:
		return strconv.FormatInt(inst.Time.Unix(), 10), nil
	}
}
