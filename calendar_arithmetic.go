package timecore

import "github.com/go-timecore/timecore/internal/arith"

// Plus adds period to i as observed in zone, in three phases: months (with
// day-of-month clamping), then days, then the time-based remainder applied
// directly to the instant with no further zone involvement. Each
// intermediate local date-time is re-resolved through zone, preferring the
// original offset on an Overlap and shifting forward on a Gap.
func (i Instant) Plus(period DateTimePeriod, zone TimeZone) (Instant, error) {
	const op = "Instant.Plus"
	ldt := i.ToLocalDateTime(zone)

	totalMonths := period.Date().TotalMonths()
	if totalMonths != 0 {
		shifted, err := ldt.PlusMonths(totalMonths)
		if err != nil {
			return Instant{}, err
		}
		ldt = shifted
		mid, err := reresolvePreferringOriginal(ldt, zone, i)
		if err != nil {
			return Instant{}, err
		}
		i = mid
		ldt = i.ToLocalDateTime(zone)
	}

	if period.Days != 0 {
		shifted, err := ldt.PlusDays(int64(period.Days))
		if err != nil {
			return Instant{}, err
		}
		ldt = shifted
		mid, err := reresolvePreferringOriginal(ldt, zone, i)
		if err != nil {
			return Instant{}, err
		}
		i = mid
	}

	seconds := int64(period.Hours)*3600 + int64(period.Minutes)*60 + period.Seconds
	result, err := i.PlusSeconds(seconds, period.Nanoseconds)
	if err != nil {
		return Instant{}, wrapErr(op, DateTimeArithmetic, err, "overflow applying period")
	}
	return result, nil
}

// reresolvePreferringOriginal converts ldt back to an Instant in zone,
// preferring the offset that was in effect at reference when ldt lands in
// an Overlap, and shifting forward (the zone's Gap policy) when it lands in
// a Gap.
func reresolvePreferringOriginal(ldt LocalDateTime, zone TimeZone, reference Instant) (Instant, error) {
	if zone.IsFixed() {
		return instantFromLocalDateTime(ldt, zone.fixed)
	}
	info := zone.rules.InfoAtDatetime(ldt)
	switch info.Kind {
	case RegularOffset:
		return instantFromLocalDateTime(ldt, info.Offset)
	case GapOffset:
		shifted, err := ldt.PlusNanoseconds((int64(info.After.totalSeconds) - int64(info.Before.totalSeconds)) * nanosPerSecond)
		if err != nil {
			return Instant{}, err
		}
		return instantFromLocalDateTime(shifted, info.After)
	default: // OverlapOffset
		referenceOffset := zone.offsetAt(reference)
		offset := info.After
		if referenceOffset == info.Before {
			offset = info.Before
		}
		return instantFromLocalDateTime(ldt, offset)
	}
}

// PeriodUntil computes the signed calendar+clock period from i to other as
// observed in zone: months via LocalDate.MonthsUntil, then days, then a
// nanosecond remainder guaranteed to be under 24h in magnitude.
func (i Instant) PeriodUntil(other Instant, zone TimeZone) (DateTimePeriod, error) {
	startLDT := i.ToLocalDateTime(zone)
	endLDT := other.ToLocalDateTime(zone)

	months := startLDT.date.MonthsUntil(endLDT.date)
	midDate, merr := startLDT.date.PlusMonths(months)
	if merr != nil {
		return DateTimePeriod{}, merr
	}
	midLDT := LocalDateTime{date: midDate, time: startLDT.time}

	days := midLDT.date.DaysUntil(endLDT.date)
	mid2Date, derr := midLDT.date.PlusDays(days)
	if derr != nil {
		return DateTimePeriod{}, derr
	}
	mid2LDT := LocalDateTime{date: mid2Date, time: midLDT.time}

	remainingNanos := mid2LDT.UntilNanoseconds(endLDT)
	years := int32(months / 12)
	remMonths := int32(months % 12)
	hours := int32(arith.FloorDiv(remainingNanos, 3600*nanosPerSecond))
	remainingNanos -= int64(hours) * 3600 * nanosPerSecond
	minutes := int32(arith.FloorDiv(remainingNanos, 60*nanosPerSecond))
	remainingNanos -= int64(minutes) * 60 * nanosPerSecond
	seconds := arith.FloorDiv(remainingNanos, nanosPerSecond)
	remainingNanos -= seconds * nanosPerSecond

	return NewDateTimePeriod(years, remMonths, int32(days), hours, minutes, seconds, remainingNanos), nil
}

// Until returns the signed count of unit between i and other as observed in
// zone: date-based units delegate to LocalDate.MonthsUntil/DaysUntil
// after converting both instants to LocalDateTime in zone; time-based units
// divide the raw nanosecond difference.
func (i Instant) Until(other Instant, unit DateTimeUnit, zone TimeZone) int64 {
	if unit.IsTimeBased() {
		total := other.epochSeconds - i.epochSeconds
		nanos := total*nanosPerSecond + int64(other.nanoseconds) - int64(i.nanoseconds)
		return nanos / unit.nanoseconds
	}

	startDate := i.ToLocalDateTime(zone).date
	endDate := other.ToLocalDateTime(zone).date
	switch unit.kind {
	case unitMonthBased:
		return startDate.MonthsUntil(endDate) / int64(unit.months)
	default: // unitDayBased
		return startDate.DaysUntil(endDate) / int64(unit.days)
	}
}
