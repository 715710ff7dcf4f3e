package timecore

import "fmt"

// LocalTime is a wall-clock time of day with nanosecond resolution,
// independent of any date or time zone.
type LocalTime struct {
	hour, minute, second int8
	nanosecond           int32
}

// Midnight is 00:00:00.
var Midnight = LocalTime{}

// NewLocalTime validates and constructs a LocalTime.
func NewLocalTime(hour, minute, second, nanosecond int) (LocalTime, error) {
	const op = "LocalTime.New"
	if hour < 0 || hour > 23 {
		return LocalTime{}, newErr(op, IllegalArgument, "hour %d out of range", hour)
	}
	if minute < 0 || minute > 59 {
		return LocalTime{}, newErr(op, IllegalArgument, "minute %d out of range", minute)
	}
	if second < 0 || second > 59 {
		return LocalTime{}, newErr(op, IllegalArgument, "second %d out of range", second)
	}
	if nanosecond < 0 || nanosecond > 999_999_999 {
		return LocalTime{}, newErr(op, IllegalArgument, "nanosecond %d out of range", nanosecond)
	}
	return LocalTime{int8(hour), int8(minute), int8(second), int32(nanosecond)}, nil
}

// MustLocalTime is NewLocalTime but panics on error.
func MustLocalTime(hour, minute, second, nanosecond int) LocalTime {
	t, err := NewLocalTime(hour, minute, second, nanosecond)
	if err != nil {
		panic(err)
	}
	return t
}

// LocalTimeOfNanosecondOfDay reconstructs a LocalTime from the number of
// nanoseconds since midnight (0 <= n < 86_400_000_000_000).
func LocalTimeOfNanosecondOfDay(n int64) LocalTime {
	hour := n / (3600 * nanosPerSecond)
	n -= hour * 3600 * nanosPerSecond
	minute := n / (60 * nanosPerSecond)
	n -= minute * 60 * nanosPerSecond
	second := n / nanosPerSecond
	n -= second * nanosPerSecond
	return LocalTime{int8(hour), int8(minute), int8(second), int32(n)}
}

func (t LocalTime) Hour() int       { return int(t.hour) }
func (t LocalTime) Minute() int     { return int(t.minute) }
func (t LocalTime) Second() int     { return int(t.second) }
func (t LocalTime) Nanosecond() int { return int(t.nanosecond) }

// NanosecondOfDay returns the number of nanoseconds since midnight.
func (t LocalTime) NanosecondOfDay() int64 {
	return int64(t.hour)*3600*nanosPerSecond + int64(t.minute)*60*nanosPerSecond +
		int64(t.second)*nanosPerSecond + int64(t.nanosecond)
}

// Compare returns -1, 0 or 1 as t is before, equal to, or after other.
func (t LocalTime) Compare(other LocalTime) int {
	a, b := t.NanosecondOfDay(), other.NanosecondOfDay()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func (t LocalTime) Before(other LocalTime) bool { return t.Compare(other) < 0 }
func (t LocalTime) After(other LocalTime) bool  { return t.Compare(other) > 0 }
func (t LocalTime) Equal(other LocalTime) bool  { return t == other }

func (t LocalTime) String() string {
	s := fmt.Sprintf("%02d:%02d", t.hour, t.minute)
	if t.second != 0 || t.nanosecond != 0 {
		s += fmt.Sprintf(":%02d", t.second)
	}
	if t.nanosecond != 0 {
		frac := fmt.Sprintf("%09d", t.nanosecond)
		for len(frac) > 3 && frac[len(frac)-3:] == "000" {
			frac = frac[:len(frac)-3]
		}
		s += "." + frac
	}
	return s
}

// PlusNanosecondsWithDayOverflow adds n nanoseconds to t, returning the
// resulting time of day and the signed number of whole days the addition
// rolled over.
func (t LocalTime) PlusNanosecondsWithDayOverflow(n int64) (LocalTime, int64) {
	total := t.NanosecondOfDay() + n
	const dayNanos = 86_400 * nanosPerSecond
	days := total / dayNanos
	rem := total % dayNanos
	if rem < 0 {
		rem += dayNanos
		days--
	}
	return LocalTimeOfNanosecondOfDay(rem), days
}
