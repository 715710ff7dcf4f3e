package timecore

import (
	"github.com/go-timecore/timecore/tzwin"
)

// windowsRecurring adapts a tzwin.TZI's standard/daylight pair to
// recurringRule, the same role tzif.PosixTZ plays for IANA zones.
type windowsRecurring struct{ tzi tzwin.TZI }

func (w windowsRecurring) hasTransitions() bool { return w.tzi.HasDaylightRule() }

func (w windowsRecurring) windowsForYear(year int) []transitionWindow {
	if !w.tzi.HasDaylightRule() {
		return nil
	}
	std, dst := w.tzi.StandardOffsetSeconds(), w.tzi.DaylightOffsetSeconds()
	var out []transitionWindow
	if at, err := tzwin.ResolveTransition(w.tzi.DaylightDate, year, std); err == nil {
		out = append(out, transitionWindow{at: at, before: std, after: dst})
	}
	if at, err := tzwin.ResolveTransition(w.tzi.StandardDate, year, dst); err == nil {
		out = append(out, transitionWindow{at: at, before: dst, after: std})
	}
	return out
}

// RegionZoneFromWindows builds a Region TimeZone from a Windows registry TZI
// value and its optional Dynamic DST table, the Windows-adapter counterpart
// to decodeRegionRules for TZif data.
func RegionZoneFromWindows(id string, tzi tzwin.TZI, dynamic tzwin.DynamicDST) (TimeZone, error) {
	rules, err := NewTimeZoneRulesFromWindows(tzi, dynamic)
	if err != nil {
		return TimeZone{}, err
	}
	return RegionZone(id, rules), nil
}

// NewTimeZoneRulesFromWindows assembles a TimeZoneRules from a Windows TZI
// and optional Dynamic DST table. With no Dynamic DST entries, the whole
// zone is represented as a single recurring rule (tzi's standard/daylight
// pair applies at every instant); with Dynamic DST, each historical year's
// rule is expanded into explicit transitions by tzwin.BuildTransitions and
// the final table's TZI becomes the recurring rule covering instants beyond
// it.
func NewTimeZoneRulesFromWindows(tzi tzwin.TZI, dynamic tzwin.DynamicDST) (*TimeZoneRules, error) {
	const op = "TimeZoneRules.NewFromWindows"

	if len(dynamic) == 0 {
		initial := tzi.StandardOffsetSeconds()
		if isDaylightActiveAtStart(tzi) {
			initial = tzi.DaylightOffsetSeconds()
		}
		return newTimeZoneRulesRaw(nil, initial, windowsRecurring{tzi: tzi}), nil
	}

	raw, fallback, err := tzwin.BuildTransitions(tzi, dynamic)
	if err != nil {
		return nil, wrapErr(op, InvalidFormat, err, "building Dynamic DST transition table")
	}
	if len(raw) == 0 {
		return nil, newErr(op, InvalidFormat, "Dynamic DST table produced no transitions")
	}

	// raw[0] marks the offset in effect at the start of the earliest
	// Dynamic DST year rather than a real change from an earlier one; it
	// becomes the initial offset, and every later entry is an explicit
	// transition (including, when present, the trailing marker where the
	// table hands off to the post-table recurring pair).
	initialOffset := raw[0].Offset
	points := make([]transitionPoint, len(raw)-1)
	for i, t := range raw[1:] {
		points[i] = transitionPoint{at: t.At, offset: t.Offset}
	}
	return newTimeZoneRulesRaw(points, initialOffset, windowsRecurring{tzi: fallback}), nil
}

func isDaylightActiveAtStart(tzi tzwin.TZI) bool {
	if !tzi.HasDaylightRule() {
		return false
	}
	return tzi.StandardDate.Month < tzi.DaylightDate.Month
}
