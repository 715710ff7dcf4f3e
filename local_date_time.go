package timecore

import "fmt"

// LocalDateTime pairs a LocalDate and a LocalTime, ordered lexicographically.
type LocalDateTime struct {
	date LocalDate
	time LocalTime
}

// NewLocalDateTime combines a date and time into a LocalDateTime.
func NewLocalDateTime(date LocalDate, t LocalTime) LocalDateTime {
	return LocalDateTime{date: date, time: t}
}

func (ldt LocalDateTime) Date() LocalDate { return ldt.date }
func (ldt LocalDateTime) Time() LocalTime { return ldt.time }

func (ldt LocalDateTime) Year() int        { return ldt.date.Year() }
func (ldt LocalDateTime) Month() Month     { return ldt.date.Month() }
func (ldt LocalDateTime) DayOfMonth() int  { return ldt.date.DayOfMonth() }
func (ldt LocalDateTime) Hour() int        { return ldt.time.Hour() }
func (ldt LocalDateTime) Minute() int      { return ldt.time.Minute() }
func (ldt LocalDateTime) Second() int      { return ldt.time.Second() }
func (ldt LocalDateTime) Nanosecond() int  { return ldt.time.Nanosecond() }
func (ldt LocalDateTime) DayOfWeek() DayOfWeek { return ldt.date.DayOfWeek() }

// Compare returns -1, 0 or 1 as ldt is before, equal to, or after other.
func (ldt LocalDateTime) Compare(other LocalDateTime) int {
	if c := ldt.date.Compare(other.date); c != 0 {
		return c
	}
	return ldt.time.Compare(other.time)
}

func (ldt LocalDateTime) Before(other LocalDateTime) bool { return ldt.Compare(other) < 0 }
func (ldt LocalDateTime) After(other LocalDateTime) bool  { return ldt.Compare(other) > 0 }
func (ldt LocalDateTime) Equal(other LocalDateTime) bool  { return ldt == other }

func (ldt LocalDateTime) String() string {
	return fmt.Sprintf("%sT%s", ldt.date.String(), ldt.time.String())
}

// PlusNanoseconds adds n nanoseconds to ldt, carrying into the date.
func (ldt LocalDateTime) PlusNanoseconds(n int64) (LocalDateTime, error) {
	t, days := ldt.time.PlusNanosecondsWithDayOverflow(n)
	d, err := ldt.date.PlusDays(days)
	if err != nil {
		return LocalDateTime{}, err
	}
	return LocalDateTime{date: d, time: t}, nil
}

// PlusMonths shifts ldt's date by n months, keeping the time of day, with
// day-of-month clamping per LocalDate.PlusMonths.
func (ldt LocalDateTime) PlusMonths(n int64) (LocalDateTime, error) {
	d, err := ldt.date.PlusMonths(n)
	if err != nil {
		return LocalDateTime{}, err
	}
	return LocalDateTime{date: d, time: ldt.time}, nil
}

// PlusDays shifts ldt's date by n days, keeping the time of day.
func (ldt LocalDateTime) PlusDays(n int64) (LocalDateTime, error) {
	d, err := ldt.date.PlusDays(n)
	if err != nil {
		return LocalDateTime{}, err
	}
	return LocalDateTime{date: d, time: ldt.time}, nil
}

// UntilNanoseconds returns the number of nanoseconds from ldt to other,
// assuming both share the same implicit zone (no DST adjustment).
func (ldt LocalDateTime) UntilNanoseconds(other LocalDateTime) int64 {
	dayDiff := other.date.EpochDay() - ldt.date.EpochDay()
	return dayDiff*86_400*nanosPerSecond + other.time.NanosecondOfDay() - ldt.time.NanosecondOfDay()
}
