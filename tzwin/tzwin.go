// Package tzwin decodes the Windows time zone registry layout
// (HKLM\SOFTWARE\Microsoft\Windows NT\CurrentVersion\Time Zones) and
// assembles it into the same transition-table shape the tzif package
// produces from a TZif byte stream, so a TimeZoneRules engine can be built
// from either source uniformly.
package tzwin

import (
	"encoding/binary"
	"fmt"
	"io"
	"sort"

	"github.com/go-timecore/timecore/internal/arith"
)

var order = binary.LittleEndian

// SystemTime is the Win32 SYSTEMTIME structure as stored in a TZI registry
// value: either an absolute date (wYear != 0) or a recurring rule (wYear ==
// 0, wDay in 1..5 meaning "Nth occurrence of wDayOfWeek in wMonth", 5
// meaning last).
type SystemTime struct {
	Year         uint16
	Month        uint16
	DayOfWeek    uint16
	Day          uint16
	Hour         uint16
	Minute       uint16
	Second       uint16
	Milliseconds uint16
}

// IsRecurring reports whether s names a yearly-recurring rule rather than a
// single absolute date.
func (s SystemTime) IsRecurring() bool { return s.Year == 0 }

// IsZero reports whether s is the all-zero value Windows uses to mean "no
// daylight saving transition".
func (s SystemTime) IsZero() bool { return s == SystemTime{} }

// ReadSystemTime reads the 16-byte SYSTEMTIME structure.
func ReadSystemTime(r io.Reader) (SystemTime, error) {
	var s SystemTime
	err := binary.Read(r, order, &s)
	return s, err
}

// TZI is the 44-byte TZI registry value.
type TZI struct {
	Bias         int32 // minutes; UTC = local + Bias, i.e. west-positive
	StandardBias int32
	DaylightBias int32
	StandardDate SystemTime
	DaylightDate SystemTime
}

// ReadTZI reads a 44-byte TZI blob.
func ReadTZI(r io.Reader) (TZI, error) {
	var t TZI
	if err := binary.Read(r, order, &t.Bias); err != nil {
		return t, fmt.Errorf("tzwin: reading Bias: %w", err)
	}
	if err := binary.Read(r, order, &t.StandardBias); err != nil {
		return t, fmt.Errorf("tzwin: reading StandardBias: %w", err)
	}
	if err := binary.Read(r, order, &t.DaylightBias); err != nil {
		return t, fmt.Errorf("tzwin: reading DaylightBias: %w", err)
	}
	var err error
	if t.StandardDate, err = ReadSystemTime(r); err != nil {
		return t, fmt.Errorf("tzwin: reading StandardDate: %w", err)
	}
	if t.DaylightDate, err = ReadSystemTime(r); err != nil {
		return t, fmt.Errorf("tzwin: reading DaylightDate: %w", err)
	}
	return t, nil
}

// StandardOffsetSeconds is the UTC offset (east-positive) in effect outside
// daylight saving.
func (t TZI) StandardOffsetSeconds() int32 {
	return -(t.Bias + t.StandardBias) * 60
}

// DaylightOffsetSeconds is the UTC offset (east-positive) in effect during
// daylight saving. It equals StandardOffsetSeconds when t has no daylight
// rule (DaylightDate is zero).
func (t TZI) DaylightOffsetSeconds() int32 {
	if t.DaylightDate.IsZero() {
		return t.StandardOffsetSeconds()
	}
	return -(t.Bias + t.DaylightBias) * 60
}

// HasDaylightRule reports whether t names an actual standard/daylight
// transition pair.
func (t TZI) HasDaylightRule() bool {
	return !t.StandardDate.IsZero() && !t.DaylightDate.IsZero()
}

// PerYearRule is one year's entry in a Dynamic DST table: either a bare
// standard offset (WithoutTransitions) or a full standard/daylight pair
// (WithTransitions).
type PerYearRule struct {
	HasTransitions bool

	StandardOffsetSeconds int32

	// The following are only meaningful when HasTransitions is true.
	DaylightOffsetSeconds int32
	ToDaylight            SystemTime
	ToStandard            SystemTime
}

// DynamicDST maps year to that year's rule, as read from a zone key's
// "Dynamic DST" subkey (FirstEntry..LastEntry value names).
type DynamicDST map[int]PerYearRule

// Transition is one offset change, in the same epoch-second-keyed shape the
// tzif package's Transition uses.
type Transition struct {
	At       int64
	Offset   int32 // seconds east of UTC after the transition
	IsDaylight bool
}

// BuildTransitions assembles the static TZI and an optional Dynamic DST
// table into an ascending transition table plus the fallback TZI the
// engine should use for instants after the last Dynamic DST year.
//
// Algorithm: walk years ascending. The earliest year always contributes a
// start-of-year transition. A later year with no transitions contributes a
// single start-of-year transition only if its standard offset differs from
// the running offset. A later year with transitions contributes a
// start-of-year transition into the pre-first-transition offset, then the
// two daylight transitions (skipping any transition whose resulting offset
// repeats the running offset).
func BuildTransitions(tzi TZI, dynamic DynamicDST) ([]Transition, TZI, error) {
	if len(dynamic) == 0 {
		return staticTransitions(tzi), tzi, nil
	}

	years := make([]int, 0, len(dynamic))
	for y := range dynamic {
		years = append(years, y)
	}
	sort.Ints(years)

	var transitions []Transition
	runningOffset := dynamic[years[0]].StandardOffsetSeconds

	for i, y := range years {
		rule := dynamic[y]
		if !rule.HasTransitions {
			if i == 0 || rule.StandardOffsetSeconds != runningOffset {
				at, err := epochSecondsForYearStart(y, rule.StandardOffsetSeconds)
				if err != nil {
					return nil, tzi, err
				}
				transitions = append(transitions, Transition{At: at, Offset: rule.StandardOffsetSeconds})
				runningOffset = rule.StandardOffsetSeconds
			}
			continue
		}

		preFirst := rule.StandardOffsetSeconds
		if isDaylightActiveAtYearStart(rule) {
			preFirst = rule.DaylightOffsetSeconds
		}
		if i == 0 || preFirst != runningOffset {
			at, err := epochSecondsForYearStart(y, preFirst)
			if err != nil {
				return nil, tzi, err
			}
			transitions = append(transitions, Transition{At: at, Offset: preFirst})
			runningOffset = preFirst
		}

		toDST, err := resolveSystemTime(rule.ToDaylight, y, rule.StandardOffsetSeconds)
		if err != nil {
			return nil, tzi, err
		}
		if rule.DaylightOffsetSeconds != runningOffset {
			transitions = append(transitions, Transition{At: toDST, Offset: rule.DaylightOffsetSeconds, IsDaylight: true})
			runningOffset = rule.DaylightOffsetSeconds
		}

		toStd, err := resolveSystemTime(rule.ToStandard, y, rule.DaylightOffsetSeconds)
		if err != nil {
			return nil, tzi, err
		}
		if rule.StandardOffsetSeconds != runningOffset {
			transitions = append(transitions, Transition{At: toStd, Offset: rule.StandardOffsetSeconds})
			runningOffset = rule.StandardOffsetSeconds
		}
	}

	lastYear := years[len(years)-1]
	at, err := epochSecondsForYearStart(lastYear+1, runningOffset)
	if err != nil {
		return nil, tzi, err
	}
	if runningOffset != tzi.StandardOffsetSeconds() || tzi.HasDaylightRule() {
		transitions = append(transitions, Transition{At: at, Offset: runningOffset})
	}

	return transitions, tzi, nil
}

func isDaylightActiveAtYearStart(rule PerYearRule) bool {
	// The daylight window wraps the year boundary (southern hemisphere
	// zones) exactly when the "to standard" rule's month sorts earlier in
	// the year than the "to daylight" rule's month.
	return rule.ToStandard.Month < rule.ToDaylight.Month
}

// staticTransitions always reports no explicit table for a bare (non-Dynamic
// DST) TZI: its standard/daylight pair recurs identically every year, which
// a caller builds into a recurring rule instead of an explicit transition
// list (as the root package's NewTimeZoneRulesFromWindows does).
func staticTransitions(tzi TZI) []Transition {
	return nil
}

// ResolveTransition is the exported form of resolveSystemTime, for callers
// outside this package (the root recurring-rule adapter) that need to turn a
// SYSTEMTIME plus a calendar year into a UTC instant.
func ResolveTransition(s SystemTime, year int, offsetBeforeSeconds int32) (int64, error) {
	return resolveSystemTime(s, year, offsetBeforeSeconds)
}

func epochSecondsForYearStart(year int, offsetSeconds int32) (int64, error) {
	epochDay := arith.EpochDayFromYMD(year, 1, 1)
	return epochDay*86400 - int64(offsetSeconds), nil
}

// resolveSystemTime turns a SYSTEMTIME (recurring or absolute) plus the
// calendar year it applies to into a UTC epoch-second instant, using
// offsetBefore to convert its wall-clock time (Windows stores transition
// times in the wall clock of the offset in effect just before the switch).
func resolveSystemTime(s SystemTime, year int, offsetBeforeSeconds int32) (int64, error) {
	var date arithDate
	var err error
	if s.IsRecurring() {
		date, err = nthWeekdayOfMonth(year, int(s.Month), int(s.Day), int(s.DayOfWeek))
	} else {
		date = arithDate{year: int(s.Year), month: int(s.Month), day: int(s.Day)}
	}
	if err != nil {
		return 0, err
	}
	hour := int(s.Hour)
	if hour == 24 {
		hour = 0
		date.day++ // normalized below via epoch-day arithmetic
	}
	epochDay := arith.EpochDayFromYMD(date.year, date.month, date.day)
	secondsOfDay := int64(hour)*3600 + int64(s.Minute)*60 + int64(s.Second)
	localSeconds := epochDay*86400 + secondsOfDay
	return localSeconds - int64(offsetBeforeSeconds), nil
}

type arithDate struct{ year, month, day int }

// nthWeekdayOfMonth resolves SYSTEMTIME's recurring "wDay"-th occurrence of
// wDayOfWeek in month (wDay in 1..4), or the last occurrence (wDay == 5).
func nthWeekdayOfMonth(year, month, occurrence, weekday int) (arithDate, error) {
	if month < 1 || month > 12 {
		return arithDate{}, fmt.Errorf("tzwin: invalid month %d", month)
	}
	targetISO := weekday
	if targetISO == 0 {
		targetISO = 7
	}
	firstOfMonth := arith.EpochDayFromYMD(year, month, 1)
	firstISO := arith.DayOfWeekFromEpochDay(firstOfMonth)
	if occurrence >= 1 && occurrence <= 4 {
		diff := (targetISO - firstISO + 7) % 7
		day := 1 + diff + (occurrence-1)*7
		return arithDate{year: year, month: month, day: day}, nil
	}
	length := arith.MonthLength(year, month)
	lastOfMonth := firstOfMonth + int64(length) - 1
	lastISO := arith.DayOfWeekFromEpochDay(lastOfMonth)
	diff := (lastISO - targetISO + 7) % 7
	return arithDate{year: year, month: month, day: length - diff}, nil
}
