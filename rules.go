package timecore

import (
	"sort"

	"github.com/go-timecore/timecore/internal/arith"
	"github.com/go-timecore/timecore/tzif"
)

// OffsetInfoKind tags the three ways a local date-time can relate to a
// zone's offset transitions.
type OffsetInfoKind int

const (
	RegularOffset OffsetInfoKind = iota
	GapOffset
	OverlapOffset
)

// OffsetInfo is the result of resolving a LocalDateTime against a
// TimeZoneRules: either it maps to exactly one offset (Regular), falls in a
// spring-forward Gap that no offset covers, or falls in a fall-back Overlap
// that two offsets cover.
type OffsetInfo struct {
	Kind   OffsetInfoKind
	Offset UtcOffset // valid when Kind == RegularOffset

	Start         Instant   // valid when Kind is Gap or Overlap: the transition instant
	Before, After UtcOffset // valid when Kind is Gap or Overlap
}

func regularInfo(offset int32) OffsetInfo {
	return OffsetInfo{Kind: RegularOffset, Offset: UtcOffset{totalSeconds: offset}}
}

func gapInfo(at int64, before, after int32) OffsetInfo {
	return OffsetInfo{
		Kind: GapOffset, Start: Instant{epochSeconds: at},
		Before: UtcOffset{totalSeconds: before}, After: UtcOffset{totalSeconds: after},
	}
}

func overlapInfo(at int64, before, after int32) OffsetInfo {
	return OffsetInfo{
		Kind: OverlapOffset, Start: Instant{epochSeconds: at},
		Before: UtcOffset{totalSeconds: before}, After: UtcOffset{totalSeconds: after},
	}
}

// transitionPoint is one explicit offset change: the offset after it, keyed
// by UTC epoch second.
type transitionPoint struct {
	at     int64
	offset int32
}

// recurringRule is the part of a zone's rules that repeats identically every
// year, evaluated on demand rather than expanded into an explicit table. A
// tzif.PosixTZ recurring string and a Windows TZI standard/daylight pair are
// both instances (see posixRecurring and tzwin's adaptation in
// zone_windows.go).
type recurringRule interface {
	// hasTransitions reports whether this rule actually names a
	// standard/daylight pair (as opposed to a bare standard-only zone).
	hasTransitions() bool
	// windowsForYear returns the (at most two) transitions this rule
	// contributes for the given calendar year, each paired with the
	// offset before and after it.
	windowsForYear(year int) []transitionWindow
}

// posixRecurring adapts a tzif.PosixTZ recurring rule string to
// recurringRule.
type posixRecurring struct{ rule *tzif.PosixTZ }

func (p posixRecurring) hasTransitions() bool { return p.rule != nil && p.rule.HasTransitions }

func (p posixRecurring) windowsForYear(year int) []transitionWindow {
	std, dst := int32(p.rule.StdOffset), int32(p.rule.DSTOffset)
	var out []transitionWindow
	if at, err := resolveMonthDayTime(p.rule.Start, year, std); err == nil {
		out = append(out, transitionWindow{at: at, before: std, after: dst})
	}
	if at, err := resolveMonthDayTime(p.rule.End, year, dst); err == nil {
		out = append(out, transitionWindow{at: at, before: dst, after: std})
	}
	return out
}

// TimeZoneRules is the offset history of a single IANA or Windows zone: an
// explicit transition table, plus an optional recurring rule covering every
// instant after the last explicit transition.
type TimeZoneRules struct {
	transitions   []transitionPoint
	initialOffset int32
	recurring     recurringRule
}

// NewTimeZoneRules builds a TimeZoneRules from a decoded TZif transition
// table. transitions must be sorted ascending by At (tzif.File.Assemble
// already produces them in that order).
func NewTimeZoneRules(transitions []tzif.Transition, initial tzif.Transition, recurring *tzif.PosixTZ) (*TimeZoneRules, error) {
	const op = "TimeZoneRules.New"
	points := make([]transitionPoint, len(transitions))
	var prevAt int64
	for i, t := range transitions {
		if i > 0 && t.At < prevAt {
			return nil, newErr(op, InvalidFormat, "transition table is not sorted ascending")
		}
		points[i] = transitionPoint{at: t.At, offset: t.UTOffset}
		prevAt = t.At
	}
	var rule recurringRule
	if recurring != nil {
		rule = posixRecurring{rule: recurring}
	}
	return &TimeZoneRules{transitions: points, initialOffset: initial.UTOffset, recurring: rule}, nil
}

// newTimeZoneRulesRaw builds a TimeZoneRules from already-assembled
// transition points and an arbitrary recurringRule, for adapters (such as
// tzwin) that don't go through a tzif.Transition table.
func newTimeZoneRulesRaw(transitions []transitionPoint, initialOffset int32, recurring recurringRule) *TimeZoneRules {
	return &TimeZoneRules{transitions: transitions, initialOffset: initialOffset, recurring: recurring}
}

// FixedOffsetRules builds a TimeZoneRules with no transitions at all: every
// instant and every local date-time map to the same offset.
func FixedOffsetRules(offset UtcOffset) *TimeZoneRules {
	return &TimeZoneRules{initialOffset: offset.totalSeconds}
}

// InfoAtInstant returns the UtcOffset in effect at i.
func (r *TimeZoneRules) InfoAtInstant(i Instant) UtcOffset {
	es := i.epochSeconds
	idx := sort.Search(len(r.transitions), func(j int) bool { return r.transitions[j].at > es }) - 1
	if idx < 0 {
		if len(r.transitions) > 0 {
			// es precedes the earliest explicit transition: that is
			// historical territory the recurring rule (which only
			// describes the present-day pattern) doesn't reach.
			return UtcOffset{totalSeconds: r.initialOffset}
		}
		return r.recurringOrFallback(es, r.initialOffset)
	}
	if idx < len(r.transitions)-1 {
		return UtcOffset{totalSeconds: r.transitions[idx].offset}
	}
	// idx is the last explicit transition; beyond it, the recurring rule
	// (if any) takes over.
	return r.recurringOrFallback(es, r.transitions[idx].offset)
}

func (r *TimeZoneRules) recurringOrFallback(es int64, fallback int32) UtcOffset {
	if r.recurring == nil || !r.recurring.hasTransitions() {
		return UtcOffset{totalSeconds: fallback}
	}
	return UtcOffset{totalSeconds: r.recurringOffsetAtInstant(es, fallback)}
}

// recurringOffsetAtInstant evaluates the recurring rule for the years
// surrounding es and returns the offset active at es, falling back to
// fallback if es precedes every recurring transition considered.
func (r *TimeZoneRules) recurringOffsetAtInstant(es int64, fallback int32) int32 {
	year, _, _ := arith.YMDFromEpochDay(arith.FloorDiv(es, 86400))
	var windows []transitionWindow
	for _, y := range [3]int{year - 1, year, year + 1} {
		windows = append(windows, r.recurring.windowsForYear(y)...)
	}
	sort.Slice(windows, func(i, j int) bool { return windows[i].at < windows[j].at })
	current := fallback
	for _, w := range windows {
		if w.at <= es {
			current = w.after
		} else {
			break
		}
	}
	return current
}

// transitionWindow is a candidate offset change, explicit or recurring, in
// the local-time window membership test used by InfoAtDatetime.
type transitionWindow struct {
	at            int64
	before, after int32
}

// InfoAtDatetime resolves ldt against r, distinguishing the Regular, Gap and
// Overlap cases around every nearby transition (explicit, or the recurring
// rule evaluated for the year of ldt and its immediate neighbors).
func (r *TimeZoneRules) InfoAtDatetime(ldt LocalDateTime) OffsetInfo {
	localSeconds := ldt.date.EpochDay()*86400 + ldt.time.NanosecondOfDay()/nanosPerSecond
	windows := r.candidateWindows(localSeconds)

	for _, w := range windows {
		if w.before == w.after {
			continue
		}
		lo, hi := w.at+int64(minInt32(w.before, w.after)), w.at+int64(maxInt32(w.before, w.after))
		if localSeconds >= lo && localSeconds < hi {
			if w.after > w.before {
				return gapInfo(w.at, w.before, w.after)
			}
			return overlapInfo(w.at, w.before, w.after)
		}
	}

	current := r.initialOffset
	for _, w := range windows {
		if w.at+int64(w.before) <= localSeconds {
			current = w.after
		} else {
			break
		}
	}
	return regularInfo(current)
}

// candidateWindows merges the explicit transition table with the recurring
// rule's transitions for the year of localSeconds and its neighbors, sorted
// ascending by UTC instant.
func (r *TimeZoneRules) candidateWindows(localSeconds int64) []transitionWindow {
	windows := make([]transitionWindow, 0, len(r.transitions)+6)
	prevOffset := r.initialOffset
	for _, t := range r.transitions {
		windows = append(windows, transitionWindow{at: t.at, before: prevOffset, after: t.offset})
		prevOffset = t.offset
	}
	if r.recurring != nil && r.recurring.hasTransitions() {
		year, _, _ := arith.YMDFromEpochDay(arith.FloorDiv(localSeconds, 86400))
		for _, y := range [3]int{year - 1, year, year + 1} {
			windows = append(windows, r.recurring.windowsForYear(y)...)
		}
	}
	sort.Slice(windows, func(i, j int) bool { return windows[i].at < windows[j].at })
	return windows
}

// resolveMonthDayTime turns a POSIX-TZ rule into the UTC instant it names in
// the given year, using offsetBefore to convert the rule's wall-clock time
// (which is expressed in the offset in effect just before the transition).
func resolveMonthDayTime(rule tzif.Rule, year int, offsetBefore int32) (int64, error) {
	date, err := dateRuleToLocalDate(rule.Date, year)
	if err != nil {
		return 0, err
	}
	localSeconds := date.EpochDay()*86400 + int64(rule.Time)
	return localSeconds - int64(offsetBefore), nil
}

func dateRuleToLocalDate(d tzif.DateRule, year int) (LocalDate, error) {
	switch d.Kind {
	case tzif.JulianNoLeap:
		month, day := julianNoLeapToMonthDay(d.Day)
		return NewLocalDate(year, Month(month), day)
	case tzif.JulianWithLeap:
		startOfYear := arith.EpochDayFromYMD(year, 1, 1)
		return LocalDateOfEpochDay(startOfYear + int64(d.Day))
	case tzif.MonthWeekDay:
		return monthWeekDayToLocalDate(year, d.Month, d.Week, d.Weekday)
	default:
		return LocalDate{}, newErr("TimeZoneRules.resolve", InvalidFormat, "unknown date rule kind %d", d.Kind)
	}
}

// julianNonLeapCumulative[m] is the day-of-year (1-based) of the 1st of
// 1-based month m in a 365-day year, i.e. Feb is always treated as 28 days.
var julianNonLeapCumulative = [13]int{0, 0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334}

// julianNoLeapToMonthDay maps a POSIX "Jn" day number (1..365, Feb 29 never
// counted) to a month/day pair, independent of whether the target year is
// a leap year.
func julianNoLeapToMonthDay(n int) (month, day int) {
	for m := 12; m >= 1; m-- {
		if n > julianNonLeapCumulative[m] {
			return m, n - julianNonLeapCumulative[m]
		}
	}
	return 1, n
}

// monthWeekDayToLocalDate resolves POSIX's "Mm.w.d" form: the w-th
// occurrence (w==5 meaning the last) of ISO weekday corresponding to POSIX
// weekday (0=Sunday..6=Saturday) in 1-based month m of year.
func monthWeekDayToLocalDate(year, month, week, posixWeekday int) (LocalDate, error) {
	targetISO := posixWeekday
	if targetISO == 0 {
		targetISO = 7
	}
	firstOfMonth := arith.EpochDayFromYMD(year, month, 1)
	firstISO := arith.DayOfWeekFromEpochDay(firstOfMonth)
	if week < 5 {
		diff := (targetISO - firstISO + 7) % 7
		day := 1 + diff + (week-1)*7
		return NewLocalDate(year, Month(month), day)
	}
	length := arith.MonthLength(year, month)
	lastOfMonth := firstOfMonth + int64(length) - 1
	lastISO := arith.DayOfWeekFromEpochDay(lastOfMonth)
	diff := (lastISO - targetISO + 7) % 7
	return NewLocalDate(year, Month(month), length-diff)
}

func minInt32(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

func maxInt32(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}
