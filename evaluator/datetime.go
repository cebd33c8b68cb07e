package evaluator

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/notecalc/notecalc/ast"
	"github.com/notecalc/notecalc/timezone"
	"github.com/notecalc/notecalc/types"
	"github.com/notecalc/notecalc/units"
)

func dateLiteralToType(n *ast.DateLiteral) (types.Type, error) {
	d, err := types.NewPlainDate(n.Year, n.Month, n.Day)
	if err != nil {
		return nil, runtimeErr(DomainError, n.Range, "%v", err)
	}
	return d, nil
}

func timeLiteralToType(n *ast.TimeLiteral) (types.Type, error) {
	t, err := types.NewPlainTime(n.Hour, n.Minute, n.Second, n.Nanosecond)
	if err != nil {
		return nil, runtimeErr(DomainError, n.Range, "%v", err)
	}
	return t, nil
}

func dateTimeLiteralToType(n *ast.DateTimeLiteral) (types.Type, error) {
	hour, minute, second, nanosecond := 0, 0, 0, 0
	if n.Time != nil {
		hour, minute, second, nanosecond = n.Time.Hour, n.Time.Minute, n.Time.Second, n.Time.Nanosecond
	}

	if n.Zone == "" {
		dt, err := types.NewPlainDateTime(n.Date.Year, n.Date.Month, n.Date.Day, hour, minute, second, nanosecond)
		if err != nil {
			return nil, runtimeErr(DomainError, n.Range, "%v", err)
		}
		return dt, nil
	}

	loc, err := timezone.Resolve(n.Zone)
	if err != nil {
		return nil, runtimeErr(TimezoneUnknown, n.Range, "%v", err)
	}
	t := time.Date(n.Date.Year, time.Month(n.Date.Month), n.Date.Day, hour, minute, second, nanosecond, loc)
	return types.NewZonedDateTime(t), nil
}

// durationSeconds extracts a Quantity's magnitude in seconds, the exact
// unit for exact-width durations (seconds up through weeks); calendar
// units (months, years) are handled separately by calendarShift since
// they have no fixed length in seconds.
func durationSeconds(q *types.Quantity) (decimal.Decimal, error) {
	return units.Convert(q.Value, q.Unit, units.Single("s"))
}

// calendarMonths reports whether q is expressed in months or years, and
// how many whole months it represents, so date addition can shift the
// calendar itself rather than adding an approximate number of seconds.
func calendarMonths(q *types.Quantity) (int, bool) {
	if len(q.Unit.Terms) != 1 || q.Unit.Terms[0].Exponent != 1 {
		return 0, false
	}
	switch q.Unit.Terms[0].Symbol {
	case "month", "months", "mo":
		f, _ := q.Value.Float64()
		return int(f), true
	case "year", "years", "yr", "yrs":
		f, _ := q.Value.Float64()
		return int(f) * 12, true
	default:
		return 0, false
	}
}

// isDateTimeLike reports whether v is one of the date/time result types
// date arithmetic operates on.
func isDateTimeLike(v types.Type) bool {
	switch v.(type) {
	case *types.PlainDate, *types.PlainTime, *types.PlainDateTime, *types.ZonedDateTime, *types.Instant:
		return true
	default:
		return false
	}
}

// evalDateArithmetic handles `date ± duration` and `date - date` for +/-
// operators. handled is false when neither operand is date-like, so the
// caller falls through to ordinary numeric addition/subtraction.
func evalDateArithmetic(n *ast.BinaryExpression, left, right types.Type) (types.Type, bool, error) {
	leftIsDate := isDateTimeLike(left)
	rightIsDate := isDateTimeLike(right)
	if !leftIsDate && !rightIsDate {
		return nil, false, nil
	}

	if leftIsDate && rightIsDate {
		if n.Operator != "-" {
			return nil, true, runtimeErr(TypeMismatch, n.Range, "two dates can only be subtracted")
		}
		v, err := subtractDates(n, left, right)
		return v, true, err
	}

	// One side is date-like, the other must be a duration-shaped Quantity.
	datePart, durPart := left, right
	sign := decimal.NewFromInt(1)
	if rightIsDate {
		if n.Operator != "+" {
			return nil, true, runtimeErr(TypeMismatch, n.Range, "cannot subtract a date from a duration")
		}
		datePart, durPart = right, left
	}
	if n.Operator == "-" {
		sign = decimal.NewFromInt(-1)
	}

	q, ok := durPart.(*types.Quantity)
	if !ok {
		return nil, true, runtimeErr(TypeMismatch, n.Range, "expected a duration alongside %s", datePart.TypeName())
	}

	v, err := shiftDate(n, datePart, q, sign)
	return v, true, err
}

func shiftDate(n *ast.BinaryExpression, date types.Type, dur *types.Quantity, sign decimal.Decimal) (types.Type, error) {
	if months, ok := calendarMonths(dur); ok {
		shift := months
		if sign.IsNegative() {
			shift = -shift
		}
		return calendarShift(n, date, shift)
	}

	seconds, err := durationSeconds(dur)
	if err != nil {
		return nil, runtimeErr(DimensionMismatch, n.Range, "%v", err)
	}
	f, _ := seconds.Mul(sign).Float64()

	switch d := date.(type) {
	case *types.PlainDate:
		days := int(f / 86400)
		return d.AddDays(days), nil
	case *types.PlainTime:
		total := d.SecondsSinceMidnight() + int(f)
		total = ((total % 86400) + 86400) % 86400
		return types.NewPlainTime(total/3600, (total%3600)/60, total%60, d.Nanosecond)
	case *types.PlainDateTime:
		return d.AddDuration(f), nil
	case *types.ZonedDateTime:
		return d.AddDuration(f), nil
	case *types.Instant:
		return types.NewInstant(d.Time.Add(time.Duration(f * float64(time.Second)))), nil
	default:
		return nil, runtimeErr(TypeMismatch, n.Range, "cannot shift %s by a duration", date.TypeName())
	}
}

// calendarShift adds whole months to a date-like value's calendar fields,
// for `+ 1 month` / `+ 1 year` style arithmetic that time.Time.AddDate
// already handles correctly (including end-of-month clamping).
func calendarShift(n *ast.BinaryExpression, date types.Type, months int) (types.Type, error) {
	switch d := date.(type) {
	case *types.PlainDate:
		t := time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC).AddDate(0, months, 0)
		return types.NewPlainDate(t.Year(), int(t.Month()), t.Day())
	case *types.PlainDateTime:
		return &types.PlainDateTime{Time: d.Time.AddDate(0, months, 0)}, nil
	case *types.ZonedDateTime:
		return types.NewZonedDateTime(d.Time.AddDate(0, months, 0)), nil
	default:
		return nil, runtimeErr(TypeMismatch, n.Range, "calendar units require a date, not %s", date.TypeName())
	}
}

// subtractDates computes a duration Quantity from the smallest common
// unit between two date/time values of the same kind.
func subtractDates(n *ast.BinaryExpression, left, right types.Type) (types.Type, error) {
	switch l := left.(type) {
	case *types.PlainDate:
		r, ok := right.(*types.PlainDate)
		if !ok {
			return nil, runtimeErr(TypeMismatch, n.Range, "cannot subtract %s from a date", right.TypeName())
		}
		days := r.DaysUntil(l)
		return types.NewQuantity(decimal.NewFromInt(int64(days)), units.Single("day")), nil
	case *types.PlainTime:
		r, ok := right.(*types.PlainTime)
		if !ok {
			return nil, runtimeErr(TypeMismatch, n.Range, "cannot subtract %s from a time", right.TypeName())
		}
		seconds := l.SecondsSinceMidnight() - r.SecondsSinceMidnight()
		return types.NewQuantity(decimal.NewFromInt(int64(seconds)), units.Single("s")), nil
	case *types.PlainDateTime:
		r, ok := right.(*types.PlainDateTime)
		if !ok {
			return nil, runtimeErr(TypeMismatch, n.Range, "cannot subtract %s from a date-time", right.TypeName())
		}
		seconds := l.Time.Sub(r.Time).Seconds()
		return types.NewQuantity(decimal.NewFromFloat(seconds), units.Single("s")), nil
	case *types.ZonedDateTime:
		r, ok := right.(*types.ZonedDateTime)
		if !ok {
			return nil, runtimeErr(TypeMismatch, n.Range, "cannot subtract %s from a zoned date-time", right.TypeName())
		}
		seconds := l.Time.Sub(r.Time).Seconds()
		return types.NewQuantity(decimal.NewFromFloat(seconds), units.Single("s")), nil
	case *types.Instant:
		r, ok := right.(*types.Instant)
		if !ok {
			return nil, runtimeErr(TypeMismatch, n.Range, "cannot subtract %s from an instant", right.TypeName())
		}
		seconds := l.Time.Sub(r.Time).Seconds()
		return types.NewQuantity(decimal.NewFromFloat(seconds), units.Single("s")), nil
	default:
		return nil, runtimeErr(TypeMismatch, n.Range, "cannot subtract dates of type %s", left.TypeName())
	}
}

// zoneConvert implements `value to <timezone>` for zoned/plain date-times:
// a ZonedDateTime translates the instant and relabels; a PlainDateTime is
// assumed to be UTC (timezone.Resolve's "naive values are UTC" rule) and
// is promoted to a ZonedDateTime in the requested zone.
func zoneConvert(n *ast.Conversion, v types.Type, zoneName string) (types.Type, error) {
	loc, err := timezone.Resolve(zoneName)
	if err != nil {
		return nil, runtimeErr(TimezoneUnknown, n.Range, "%v", err)
	}
	switch d := v.(type) {
	case *types.ZonedDateTime:
		return d.In(loc), nil
	case *types.PlainDateTime:
		return types.NewZonedDateTime(d.Time.In(loc)), nil
	default:
		return nil, runtimeErr(TypeMismatch, n.Range, "cannot convert %s to a timezone", v.TypeName())
	}
}

// propertyOf extracts a named calendar/clock field from a date/time value
// as a plain Number, for `.day`, `.year`, `.hour`, ... conversion targets.
func propertyOf(n *ast.Conversion, v types.Type, property string) (types.Type, error) {
	num := func(i int) (types.Type, error) { return types.NewNumber(int64(i)) }

	switch d := v.(type) {
	case *types.PlainDate:
		switch property {
		case "year":
			return num(d.Year)
		case "month":
			return num(d.Month)
		case "day":
			return num(d.Day)
		case "weekday":
			return num(int(d.Weekday()))
		}
	case *types.PlainTime:
		switch property {
		case "hour":
			return num(d.Hour)
		case "minute":
			return num(d.Minute)
		case "second":
			return num(d.Second)
		}
	case *types.PlainDateTime:
		switch property {
		case "year":
			return num(d.Time.Year())
		case "month":
			return num(int(d.Time.Month()))
		case "day":
			return num(d.Time.Day())
		case "hour":
			return num(d.Time.Hour())
		case "minute":
			return num(d.Time.Minute())
		case "second":
			return num(d.Time.Second())
		case "weekday":
			return num(int(d.Time.Weekday()))
		}
	case *types.ZonedDateTime:
		switch property {
		case "year":
			return num(d.Time.Year())
		case "month":
			return num(int(d.Time.Month()))
		case "day":
			return num(d.Time.Day())
		case "hour":
			return num(d.Time.Hour())
		case "minute":
			return num(d.Time.Minute())
		case "second":
			return num(d.Time.Second())
		case "weekday":
			return num(int(d.Time.Weekday()))
		}
	}
	return nil, runtimeErr(TypeMismatch, n.Range, "unknown property %q for %s", property, v.TypeName())
}

// toUnixInstant implements `value to unix [unit]`: collapses any date/time
// value to an Instant, since that's the only type the formatter renders as
// a raw epoch count.
func toUnixInstant(n *ast.Conversion, v types.Type) (*types.Instant, error) {
	switch d := v.(type) {
	case *types.PlainDateTime:
		return types.NewInstant(d.Time), nil
	case *types.ZonedDateTime:
		return types.NewInstant(d.Time), nil
	case *types.Instant:
		return d, nil
	default:
		return nil, runtimeErr(TypeMismatch, n.Range, "cannot convert %s to a unix timestamp", v.TypeName())
	}
}
