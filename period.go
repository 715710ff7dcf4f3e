package timecore

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-timecore/timecore/internal/arith"
)

// DatePeriod is a calendar-based amount of time expressed in years, months
// and days, with no fixed duration until applied to a date.
type DatePeriod struct {
	Years, Months, Days int32
}

// newDatePeriod normalizes months into years (kept in (-12, 12)) and
// constructs a DatePeriod.
func newDatePeriod(years, months, days int32) DatePeriod {
	years += months / 12
	months %= 12
	return DatePeriod{Years: years, Months: months, Days: days}
}

// IsZero reports whether p represents no elapsed time.
func (p DatePeriod) IsZero() bool { return p.Years == 0 && p.Months == 0 && p.Days == 0 }

// TotalMonths returns years*12 + months.
func (p DatePeriod) TotalMonths() int64 { return int64(p.Years)*12 + int64(p.Months) }

// String renders p as an ISO-8601 period, e.g. "P1Y2M3D". A zero period
// renders as "P0D".
func (p DatePeriod) String() string {
	if p.IsZero() {
		return "P0D"
	}
	var b strings.Builder
	b.WriteByte('P')
	if p.Years != 0 {
		fmt.Fprintf(&b, "%dY", p.Years)
	}
	if p.Months != 0 {
		fmt.Fprintf(&b, "%dM", p.Months)
	}
	if p.Days != 0 {
		fmt.Fprintf(&b, "%dD", p.Days)
	}
	return b.String()
}

// DateTimePeriod is a calendar- and clock-based amount of time: years,
// months and days, plus hours, minutes, seconds and nanoseconds. The time
// components are normalized (months into years, nanoseconds into seconds,
// seconds into minutes, minutes into hours) but days are never folded into
// hours, since a day's duration depends on the zone it is applied in.
type DateTimePeriod struct {
	Years, Months, Days int32
	Hours, Minutes      int32
	Seconds             int64
	Nanoseconds         int64
}

// NewDateTimePeriod normalizes its arguments and constructs a DateTimePeriod.
func NewDateTimePeriod(years, months, days, hours, minutes int32, seconds, nanoseconds int64) DateTimePeriod {
	seconds += arith.FloorDiv(nanoseconds, nanosPerSecond)
	nanoseconds = arith.FloorMod(nanoseconds, nanosPerSecond)

	minutes += int32(arith.FloorDiv(seconds, 60))
	seconds = arith.FloorMod(seconds, 60)

	hours += int32(arith.FloorDiv(int64(minutes), 60))
	minutes = int32(arith.FloorMod(int64(minutes), 60))

	years += months / 12
	months %= 12

	return DateTimePeriod{
		Years: years, Months: months, Days: days,
		Hours: hours, Minutes: minutes,
		Seconds: seconds, Nanoseconds: nanoseconds,
	}
}

// IsZero reports whether p represents no elapsed time.
func (p DateTimePeriod) IsZero() bool {
	return p.Years == 0 && p.Months == 0 && p.Days == 0 &&
		p.Hours == 0 && p.Minutes == 0 && p.Seconds == 0 && p.Nanoseconds == 0
}

// Date returns the calendar-only portion of p.
func (p DateTimePeriod) Date() DatePeriod {
	return newDatePeriod(p.Years, p.Months, p.Days)
}

// String renders p as an ISO-8601 duration, e.g. "P1Y2M3DT4H5M6S". A zero
// period renders as "PT0S".
func (p DateTimePeriod) String() string {
	if p.IsZero() {
		return "PT0S"
	}
	var b strings.Builder
	b.WriteByte('P')
	if p.Years != 0 {
		fmt.Fprintf(&b, "%dY", p.Years)
	}
	if p.Months != 0 {
		fmt.Fprintf(&b, "%dM", p.Months)
	}
	if p.Days != 0 {
		fmt.Fprintf(&b, "%dD", p.Days)
	}
	if p.Hours != 0 || p.Minutes != 0 || p.Seconds != 0 || p.Nanoseconds != 0 {
		b.WriteByte('T')
		if p.Hours != 0 {
			fmt.Fprintf(&b, "%dH", p.Hours)
		}
		if p.Minutes != 0 {
			fmt.Fprintf(&b, "%dM", p.Minutes)
		}
		if p.Seconds != 0 || p.Nanoseconds != 0 {
			writeFractionalSeconds(&b, p.Seconds, p.Nanoseconds)
		}
	}
	return b.String()
}

func writeFractionalSeconds(b *strings.Builder, seconds, nanoseconds int64) {
	neg := seconds < 0 || (seconds == 0 && nanoseconds < 0)
	if neg {
		seconds, nanoseconds = -seconds, -nanoseconds
	}
	if neg {
		b.WriteByte('-')
	}
	b.WriteString(strconv.FormatInt(seconds, 10))
	if nanoseconds != 0 {
		frac := fmt.Sprintf("%09d", nanoseconds)
		for len(frac) > 1 && frac[len(frac)-1] == '0' {
			frac = frac[:len(frac)-1]
		}
		b.WriteByte('.')
		b.WriteString(frac)
	}
	b.WriteByte('S')
}
