package types

import (
	"fmt"
	"time"
)

// PlainDate is a calendar date with no time-of-day or zone component,
// grounded on the teacher's spec/types/date.go wrapping of time.Time but
// stored as plain year/month/day fields so Equal never has to reason about
// a stray time-of-day or location sneaking in.
type PlainDate struct {
	Year, Month, Day int
}

// NewPlainDate validates and builds a PlainDate.
func NewPlainDate(year, month, day int) (*PlainDate, error) {
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return nil, fmt.Errorf("invalid date %04d-%02d-%02d", year, month, day)
	}
	return &PlainDate{Year: year, Month: month, Day: day}, nil
}

func (d *PlainDate) asTime() time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
}

func (d *PlainDate) String() string { return d.asTime().Format("Monday, January 2, 2006") }

// ShortString renders the ISO-ish `2006-01-02` form used by formatters that
// need a compact, unambiguous representation.
func (d *PlainDate) ShortString() string { return d.asTime().Format("2006-01-02") }

func (d *PlainDate) TypeName() string { return "PlainDate" }

func (d *PlainDate) Equal(other Type) bool {
	o, ok := other.(*PlainDate)
	return ok && d.Year == o.Year && d.Month == o.Month && d.Day == o.Day
}

// AddDays returns a new PlainDate days later (or earlier, if negative).
func (d *PlainDate) AddDays(days int) *PlainDate {
	t := d.asTime().AddDate(0, 0, days)
	return &PlainDate{Year: t.Year(), Month: int(t.Month()), Day: t.Day()}
}

// DaysUntil returns the number of whole days from d to other.
func (d *PlainDate) DaysUntil(other *PlainDate) int {
	return int(other.asTime().Sub(d.asTime()).Hours() / 24)
}

// Weekday returns the day of the week the date falls on.
func (d *PlainDate) Weekday() time.Weekday { return d.asTime().Weekday() }

// PlainTime is a time-of-day with no date or zone component.
type PlainTime struct {
	Hour, Minute, Second, Nanosecond int
}

// NewPlainTime validates and builds a PlainTime.
func NewPlainTime(hour, minute, second, nanosecond int) (*PlainTime, error) {
	if hour < 0 || hour > 23 {
		return nil, fmt.Errorf("invalid hour %d", hour)
	}
	if minute < 0 || minute > 59 {
		return nil, fmt.Errorf("invalid minute %d", minute)
	}
	if second < 0 || second > 59 {
		return nil, fmt.Errorf("invalid second %d", second)
	}
	return &PlainTime{Hour: hour, Minute: minute, Second: second, Nanosecond: nanosecond}, nil
}

func (t *PlainTime) String() string {
	if t.Nanosecond != 0 {
		return fmt.Sprintf("%02d:%02d:%02d.%03d", t.Hour, t.Minute, t.Second, t.Nanosecond/1_000_000)
	}
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
}

func (t *PlainTime) TypeName() string { return "PlainTime" }

func (t *PlainTime) Equal(other Type) bool {
	o, ok := other.(*PlainTime)
	return ok && t.Hour == o.Hour && t.Minute == o.Minute && t.Second == o.Second && t.Nanosecond == o.Nanosecond
}

// SecondsSinceMidnight supports duration arithmetic on bare times.
func (t *PlainTime) SecondsSinceMidnight() int {
	return t.Hour*3600 + t.Minute*60 + t.Second
}

// PlainDateTime combines a date and time with no attached zone: it never
// observes a DST transition because it has no zone to observe one in.
type PlainDateTime struct {
	Time time.Time // always stored at time.UTC as a neutral clock face
}

// NewPlainDateTime builds a PlainDateTime from its calendar components.
func NewPlainDateTime(year, month, day, hour, minute, second, nanosecond int) (*PlainDateTime, error) {
	t := time.Date(year, time.Month(month), day, hour, minute, second, nanosecond, time.UTC)
	return &PlainDateTime{Time: t}, nil
}

func (d *PlainDateTime) String() string   { return d.Time.Format("2006-01-02 15:04:05") }
func (d *PlainDateTime) TypeName() string { return "PlainDateTime" }

func (d *PlainDateTime) Equal(other Type) bool {
	o, ok := other.(*PlainDateTime)
	return ok && d.Time.Equal(o.Time)
}

// AddDuration returns a new PlainDateTime offset by the given Duration.
func (d *PlainDateTime) AddDuration(seconds float64) *PlainDateTime {
	return &PlainDateTime{Time: d.Time.Add(time.Duration(seconds * float64(time.Second)))}
}

// ZonedDateTime is a date and time attached to a specific *time.Location,
// so arithmetic on it observes that zone's DST transitions.
type ZonedDateTime struct {
	Time time.Time
}

// NewZonedDateTime wraps an already zone-located time.Time.
func NewZonedDateTime(t time.Time) *ZonedDateTime { return &ZonedDateTime{Time: t} }

func (z *ZonedDateTime) String() string   { return z.Time.Format("2006-01-02 15:04:05 MST") }
func (z *ZonedDateTime) TypeName() string { return "ZonedDateTime" }

func (z *ZonedDateTime) Equal(other Type) bool {
	o, ok := other.(*ZonedDateTime)
	return ok && z.Time.Equal(o.Time)
}

// In returns a new ZonedDateTime representing the same instant viewed from loc.
func (z *ZonedDateTime) In(loc *time.Location) *ZonedDateTime {
	return &ZonedDateTime{Time: z.Time.In(loc)}
}

// AddDuration returns a new ZonedDateTime offset by the given Duration,
// observing the zone's DST rules.
func (z *ZonedDateTime) AddDuration(seconds float64) *ZonedDateTime {
	return &ZonedDateTime{Time: z.Time.Add(time.Duration(seconds * float64(time.Second)))}
}

// Instant is an absolute point in time with no associated calendar/zone
// presentation — the result of a unix-timestamp literal or a `to unix
// seconds` conversion.
type Instant struct {
	Time time.Time
}

// NewInstant wraps a time.Time as an Instant.
func NewInstant(t time.Time) *Instant { return &Instant{Time: t} }

func (i *Instant) String() string   { return fmt.Sprintf("%d", i.Time.Unix()) }
func (i *Instant) TypeName() string { return "Instant" }

func (i *Instant) Equal(other Type) bool {
	o, ok := other.(*Instant)
	return ok && i.Time.Equal(o.Time)
}
