package timecore

import (
	"fmt"

	"github.com/go-timecore/timecore/internal/arith"
)

const (
	minYear = -999_999_999
	maxYear = 999_999_999
)

// LocalDate is a date without a time zone or time-of-day component: a
// year/month/day in the proleptic Gregorian calendar.
type LocalDate struct {
	year  int32
	month int8
	day   int8
}

// NewLocalDate validates and constructs a LocalDate. It fails with
// IllegalArgument if year is out of [-999999999, 999999999], month is out of
// [1,12], or day is out of range for (year, month) — e.g. 2007-02-29.
func NewLocalDate(year int, month Month, day int) (LocalDate, error) {
	const op = "LocalDate.New"
	if year < minYear || year > maxYear {
		return LocalDate{}, newErr(op, IllegalArgument, "year %d out of range", year)
	}
	if month < January || month > December {
		return LocalDate{}, newErr(op, IllegalArgument, "invalid month %d", month)
	}
	maxDay := arith.MonthLength(year, int(month))
	if day < 1 || day > maxDay {
		return LocalDate{}, newErr(op, IllegalArgument, "invalid day %d for %04d-%02d", day, year, month)
	}
	return LocalDate{year: int32(year), month: int8(month), day: int8(day)}, nil
}

// MustLocalDate is NewLocalDate but panics on error; useful for literals
// known to be valid at compile time.
func MustLocalDate(year int, month Month, day int) LocalDate {
	d, err := NewLocalDate(year, month, day)
	if err != nil {
		panic(err)
	}
	return d
}

// LocalDateOfEpochDay returns the date that is epochDay days after
// 1970-01-01 (epochDay may be negative).
func LocalDateOfEpochDay(epochDay int64) (LocalDate, error) {
	const op = "LocalDate.OfEpochDay"
	y, m, d := arith.YMDFromEpochDay(epochDay)
	if y < minYear || y > maxYear {
		return LocalDate{}, newErr(op, DateTimeArithmetic, "epoch day %d out of range", epochDay)
	}
	return LocalDate{year: int32(y), month: int8(m), day: int8(d)}, nil
}

func (d LocalDate) Year() int       { return int(d.year) }
func (d LocalDate) Month() Month    { return Month(d.month) }
func (d LocalDate) DayOfMonth() int { return int(d.day) }

// EpochDay returns the number of days since 1970-01-01.
func (d LocalDate) EpochDay() int64 {
	return arith.EpochDayFromYMD(int(d.year), int(d.month), int(d.day))
}

// DayOfWeek returns the ISO-8601 weekday of d.
func (d LocalDate) DayOfWeek() DayOfWeek {
	return DayOfWeek(arith.DayOfWeekFromEpochDay(d.EpochDay()))
}

// DayOfYear returns the 1-based ordinal day within d's year.
func (d LocalDate) DayOfYear() int {
	return arith.DayOfYear(int(d.year), int(d.month), int(d.day))
}

// IsLeapYear reports whether d's year is a leap year.
func (d LocalDate) IsLeapYear() bool { return arith.IsLeapYear(int(d.year)) }

// LengthOfMonth returns the number of days in d's month.
func (d LocalDate) LengthOfMonth() int { return arith.MonthLength(int(d.year), int(d.month)) }

// Compare returns -1, 0 or 1 as d is before, equal to, or after other.
func (d LocalDate) Compare(other LocalDate) int {
	switch {
	case d.year != other.year:
		return cmpInt32(d.year, other.year)
	case d.month != other.month:
		return cmpInt8(d.month, other.month)
	default:
		return cmpInt8(d.day, other.day)
	}
}

func (d LocalDate) Before(other LocalDate) bool { return d.Compare(other) < 0 }
func (d LocalDate) After(other LocalDate) bool  { return d.Compare(other) > 0 }
func (d LocalDate) Equal(other LocalDate) bool  { return d == other }

func (d LocalDate) String() string {
	if d.year >= 0 && d.year <= 9999 {
		return fmt.Sprintf("%04d-%02d-%02d", d.year, d.month, d.day)
	}
	sign := "+"
	y := d.year
	if y < 0 {
		sign = "-"
		y = -y
	}
	return fmt.Sprintf("%s%d-%02d-%02d", sign, y, d.month, d.day)
}

// PlusDays returns d shifted by n days, failing with DateTimeArithmetic on
// overflow of LocalDate's year bounds.
func (d LocalDate) PlusDays(n int64) (LocalDate, error) {
	sum, overflow := arith.AddInt64(d.EpochDay(), n)
	if overflow {
		return LocalDate{}, newErr("LocalDate.PlusDays", DateTimeArithmetic, "epoch day overflow")
	}
	return LocalDateOfEpochDay(sum)
}

// PlusMonths returns d shifted by n months, clamping the day-of-month to
// the resulting month's length (e.g. Jan 31 + 1 month = Feb 28/29).
func (d LocalDate) PlusMonths(n int64) (LocalDate, error) {
	const op = "LocalDate.PlusMonths"
	totalMonths := int64(d.year)*12 + int64(d.month-1) + n
	year64 := arith.FloorDiv(totalMonths, 12)
	if year64 < minYear || year64 > maxYear {
		return LocalDate{}, newErr(op, DateTimeArithmetic, "year overflow")
	}
	month := int(arith.FloorMod(totalMonths, 12)) + 1
	year := int(year64)
	day := int(d.day)
	if max := arith.MonthLength(year, month); day > max {
		day = max
	}
	return NewLocalDate(year, Month(month), day)
}

// PlusYears returns d shifted by n years, clamping Feb 29 to Feb 28 in a
// non-leap target year.
func (d LocalDate) PlusYears(n int64) (LocalDate, error) {
	months, overflow := arith.MulInt64(n, 12)
	if overflow {
		return LocalDate{}, newErr("LocalDate.PlusYears", DateTimeArithmetic, "year overflow")
	}
	return d.PlusMonths(months)
}

// PlusWeeks returns d shifted by n weeks.
func (d LocalDate) PlusWeeks(n int64) (LocalDate, error) {
	days, overflow := arith.MulInt64(n, 7)
	if overflow {
		return LocalDate{}, newErr("LocalDate.PlusWeeks", DateTimeArithmetic, "week overflow")
	}
	return d.PlusDays(days)
}

// Plus adds n units of unit to d. Month-based units clamp the day of month;
// day-based units operate on the epoch day.
func (d LocalDate) Plus(n int64, unit DateTimeUnit) (LocalDate, error) {
	switch unit.kind {
	case unitMonthBased:
		months, overflow := arith.MulInt64(n, int64(unit.months))
		if overflow {
			return LocalDate{}, newErr("LocalDate.Plus", DateTimeArithmetic, "month overflow")
		}
		return d.PlusMonths(months)
	case unitDayBased:
		days, overflow := arith.MulInt64(n, int64(unit.days))
		if overflow {
			return LocalDate{}, newErr("LocalDate.Plus", DateTimeArithmetic, "day overflow")
		}
		return d.PlusDays(days)
	default:
		return LocalDate{}, newErr("LocalDate.Plus", IllegalArgument, "LocalDate cannot use a time-based unit")
	}
}

// MonthsUntil returns the whole number of months from d to other, such that
// advancing d by that many months (clamped) never overshoots other.
func (d LocalDate) MonthsUntil(other LocalDate) int64 {
	packed := func(x LocalDate) int64 { return int64(x.year)*32*12 + int64(x.month-1)*32 + int64(x.day) }
	total := (int64(other.year)-int64(d.year))*12 + int64(other.month-d.month)
	if total > 0 && packed(other) < packed(d)+total*32 {
		total--
	} else if total < 0 && packed(other) > packed(d)+total*32 {
		total++
	}
	return total
}

// PeriodUntil computes the signed calendar period (years, months, days) from
// d to other.
func (d LocalDate) PeriodUntil(other LocalDate) DatePeriod {
	months := d.MonthsUntil(other)
	mid, err := d.PlusMonths(months)
	if err != nil {
		// Unreachable for in-range LocalDates since months is bounded by the
		// year difference between two valid dates.
		mid = d
	}
	days := other.EpochDay() - mid.EpochDay()
	years := months / 12
	remMonths := months % 12
	return newDatePeriod(int32(years), int32(remMonths), int32(days))
}

// DaysUntil returns the number of days from d to other.
func (d LocalDate) DaysUntil(other LocalDate) int64 {
	return other.EpochDay() - d.EpochDay()
}

func cmpInt32(a, b int32) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func cmpInt8(a, b int8) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
