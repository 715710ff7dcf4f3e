// Package arith implements overflow-checked integer arithmetic and the
// calendar helpers (leap years, month lengths, floor division) shared by the
// value types in the root package. None of it is locale- or zone-aware.
package arith

import "math"

// AddInt64 adds b to a, reporting whether the result would underflow or
// overflow an int64 rather than silently wrapping.
func AddInt64(a, b int64) (sum int64, overflow bool) {
	if b > 0 && a > math.MaxInt64-b {
		return 0, true
	}
	if b < 0 && a < math.MinInt64-b {
		return 0, true
	}
	return a + b, false
}

// MulInt64 multiplies a by b, reporting overflow.
func MulInt64(a, b int64) (product int64, overflow bool) {
	if a == 0 || b == 0 {
		return 0, false
	}
	p := a * b
	if p/b != a {
		return 0, true
	}
	return p, false
}

// FloorDiv returns the quotient of x/y rounded toward negative infinity.
func FloorDiv(x, y int64) int64 {
	q := x / y
	if (x%y != 0) && ((x < 0) != (y < 0)) {
		q--
	}
	return q
}

// FloorMod returns x modulo y with the result always sharing y's sign (or
// zero), i.e. FloorDiv(x,y)*y + FloorMod(x,y) == x.
func FloorMod(x, y int64) int64 {
	m := x % y
	if m != 0 && ((x < 0) != (y < 0)) {
		m += y
	}
	return m
}

// FloorDivInt and FloorModInt are the int-width equivalents, used for
// calendar fields that never need 64-bit range (month arithmetic, etc.).
func FloorDivInt(x, y int) int {
	return int(FloorDiv(int64(x), int64(y)))
}

func FloorModInt(x, y int) int {
	return int(FloorMod(int64(x), int64(y)))
}

// IsLeapYear reports whether year is a leap year in the proleptic Gregorian
// calendar (divisible by 4, not by 100, unless also by 400).
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// MonthLength returns the number of days in the given 1-based month of year.
func MonthLength(year, month int) int {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	case 2:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	default:
		return 0
	}
}

// daysBeforeMonth[m] is the number of days in a non-leap year before the
// start of 1-based month m (daysBeforeMonth[1] == 0).
var daysBeforeMonth = [13]int{0, 0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334}

// DayOfYear returns the 1-based ordinal day of (year, month, day).
func DayOfYear(year, month, day int) int {
	d := daysBeforeMonth[month] + day
	if month > 2 && IsLeapYear(year) {
		d++
	}
	return d
}

// daysInYear returns 365 or 366.
func daysInYear(year int) int {
	if IsLeapYear(year) {
		return 366
	}
	return 365
}

// EpochDayFromYMD returns the number of days since 1970-01-01 (which may be
// negative) for the proleptic Gregorian date (year, month, day). The
// algorithm mirrors java.time.LocalDate's toEpochDay, widely reused across
// the Go date/time ecosystem.
func EpochDayFromYMD(year, month, day int) int64 {
	y := int64(year)
	m := int64(month)
	total := int64(0)
	total += 365 * y
	if y >= 0 {
		total += (y+3)/4 - (y+99)/100 + (y+399)/400
	} else {
		total -= y/-4 - y/-100 + y/-400
	}
	total += int64((367*m-362)/12) //nolint:mnd // days-before-month formula
	total += int64(day - 1)
	if m > 2 {
		total--
		if !IsLeapYear(year) {
			total--
		}
	}
	return total - 719528 // shift so day 0 == 1970-01-01
}

// YMDFromEpochDay is the inverse of EpochDayFromYMD.
func YMDFromEpochDay(epochDay int64) (year, month, day int) {
	zeroDay := epochDay + 719528 - 60
	adjust := int64(0)
	if zeroDay < 0 {
		adjustCycles := (zeroDay+1)/146097 - 1
		adjust = adjustCycles * 400
		zeroDay += -adjustCycles * 146097
	}
	yearEst := (400*zeroDay + 591) / 146097
	doyEst := zeroDay - (365*yearEst + yearEst/4 - yearEst/100 + yearEst/400)
	if doyEst < 0 {
		yearEst--
		doyEst = zeroDay - (365*yearEst + yearEst/4 - yearEst/100 + yearEst/400)
	}
	yearEst += adjust
	marchDoy0 := int(doyEst)

	marchMonth0 := (marchDoy0*5 + 2) / 153
	m := (marchMonth0+2)%12 + 1
	d := marchDoy0 - (marchMonth0*306+5)/10 + 1
	y := yearEst + int64(marchMonth0/10)

	return int(y), m, d
}

// DayOfWeekFromEpochDay returns 1..7 (Monday=1 .. Sunday=7, ISO-8601) for the
// given epoch day.
func DayOfWeekFromEpochDay(epochDay int64) int {
	return int(FloorMod(epochDay+3, 7)) + 1
}
