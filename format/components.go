// Package format implements a locale-invariant, LDML-inspired date-time
// pattern compiler and a composable format/parse state machine, plus a set
// of pre-built ISO-8601 formats.
//
// A Format never localizes anything: every directive that LDML defines in
// terms of a calendar's language (month names, era names, narrow weekday
// forms, and so on) is deliberately unsupported here and reported as
// timecore.LocaleDependentDirective rather than silently rendered in
// English.
package format

import "github.com/go-timecore/timecore"

// Field identifies one slot of a DateTimeComponents bag.
type Field int

const (
	FieldYear Field = iota
	FieldMonth
	FieldDay
	FieldDayOfYear
	FieldDayOfWeek
	FieldHour
	FieldMinute
	FieldSecond
	FieldNanosecond
	FieldOffsetSeconds
	FieldZoneID
	FieldAmPm
	FieldHourOfAmPm
)

// DateTimeComponents is the field bag a Format reads from when formatting
// and writes into when parsing. Every field is optional; the Has* flags
// report which ones are actually present. This package only tracks what
// was set and rejects conflicting re-sets of the same field during a single
// parse; it does not check consistency across fields, and no function here
// or in the root package turns a populated bag into a root-package value.
type DateTimeComponents struct {
	Year    int
	HasYear bool

	Month    int // 1..12
	HasMonth bool

	Day    int // 1..31
	HasDay bool

	DayOfYear    int
	HasDayOfYear bool

	DayOfWeek    int // 1 (Monday) .. 7 (Sunday), ISO-8601
	HasDayOfWeek bool

	Hour    int // 0..23
	HasHour bool

	Minute    int
	HasMinute bool

	Second    int
	HasSecond bool

	Nanosecond    int
	HasNanosecond bool

	OffsetSeconds    int
	HasOffsetSeconds bool

	ZoneID    string
	HasZoneID bool

	AmPm    int // 0 = AM, 1 = PM; unused until a locale-aware directive exists
	HasAmPm bool

	HourOfAmPm    int // 1..12
	HasHourOfAmPm bool
}

// set assigns v to field f, returning a Conflict error if f was already set
// to a different value.
func (c *DateTimeComponents) set(op string, f Field, v int) error {
	switch f {
	case FieldYear:
		if c.HasYear && c.Year != v {
			return conflictErr(op, "year")
		}
		c.Year, c.HasYear = v, true
	case FieldMonth:
		if c.HasMonth && c.Month != v {
			return conflictErr(op, "month")
		}
		c.Month, c.HasMonth = v, true
	case FieldDay:
		if c.HasDay && c.Day != v {
			return conflictErr(op, "day")
		}
		c.Day, c.HasDay = v, true
	case FieldDayOfYear:
		if c.HasDayOfYear && c.DayOfYear != v {
			return conflictErr(op, "dayOfYear")
		}
		c.DayOfYear, c.HasDayOfYear = v, true
	case FieldDayOfWeek:
		if c.HasDayOfWeek && c.DayOfWeek != v {
			return conflictErr(op, "dayOfWeek")
		}
		c.DayOfWeek, c.HasDayOfWeek = v, true
	case FieldHour:
		if c.HasHour && c.Hour != v {
			return conflictErr(op, "hour")
		}
		c.Hour, c.HasHour = v, true
	case FieldMinute:
		if c.HasMinute && c.Minute != v {
			return conflictErr(op, "minute")
		}
		c.Minute, c.HasMinute = v, true
	case FieldSecond:
		if c.HasSecond && c.Second != v {
			return conflictErr(op, "second")
		}
		c.Second, c.HasSecond = v, true
	case FieldNanosecond:
		if c.HasNanosecond && c.Nanosecond != v {
			return conflictErr(op, "nanosecond")
		}
		c.Nanosecond, c.HasNanosecond = v, true
	case FieldOffsetSeconds:
		if c.HasOffsetSeconds && c.OffsetSeconds != v {
			return conflictErr(op, "offsetSeconds")
		}
		c.OffsetSeconds, c.HasOffsetSeconds = v, true
	default:
		return timecore.NewError(op, timecore.IllegalArgument, "field %d is not numeric", f)
	}
	return nil
}

func conflictErr(op, field string) error {
	return timecore.NewError(op, timecore.Conflict, "field %s set to two different values", field)
}
