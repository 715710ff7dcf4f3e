package timecore

import (
	"bytes"

	"github.com/go-timecore/timecore/tzif"
)

type zoneVariant int

const (
	fixedVariant zoneVariant = iota
	regionVariant
)

// TimeZone is either a Fixed offset or a Region backed by TimeZoneRules. It
// is immutable and safe to share freely once constructed.
type TimeZone struct {
	variant zoneVariant
	id      string
	fixed   UtcOffset
	rules   *TimeZoneRules
}

// UTC is the fixed zero-offset zone, with its id preserved as "UTC".
var UTC = TimeZone{variant: fixedVariant, id: "UTC", fixed: ZeroOffset}

// FixedZone builds a Fixed zone with the given offset and display id.
func FixedZone(id string, offset UtcOffset) TimeZone {
	return TimeZone{variant: fixedVariant, id: id, fixed: offset}
}

// RegionZone builds a Region zone directly from an already-built rule set;
// exported for callers (such as the Windows registry adapter) that
// assemble TimeZoneRules without going through a TZif byte stream.
func RegionZone(id string, rules *TimeZoneRules) TimeZone {
	return TimeZone{variant: regionVariant, id: id, rules: rules}
}

// ID returns the identifier the zone was constructed or looked up with.
func (z TimeZone) ID() string { return z.id }

// IsFixed reports whether z is a fixed-offset zone (as opposed to a region
// backed by a rules engine).
func (z TimeZone) IsFixed() bool { return z.variant == fixedVariant }

// Of resolves id to a TimeZone using host, with no caching: "Z"/"UTC" and
// any valid UtcOffset string produce a Fixed zone directly; anything else is
// looked up in the host's tzdb and decoded as a TZif byte stream.
func Of(id string, host Host) (TimeZone, error) {
	const op = "TimeZone.Of"
	if id == "Z" || id == "UTC" {
		return TimeZone{variant: fixedVariant, id: id, fixed: ZeroOffset}, nil
	}
	if offset, err := ParseUtcOffset(id); err == nil {
		return TimeZone{variant: fixedVariant, id: id, fixed: offset}, nil
	}
	data, ok := host.TzdbLookup(id)
	if !ok {
		return TimeZone{}, newErr(op, UnknownZone, "unknown time zone %q", id)
	}
	rules, err := decodeRegionRules(data)
	if err != nil {
		return TimeZone{}, wrapErr(op, InvalidFormat, err, "decoding tzdb entry %q", id)
	}
	return TimeZone{variant: regionVariant, id: id, rules: rules}, nil
}

func decodeRegionRules(data []byte) (*TimeZoneRules, error) {
	f, err := tzif.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	if err := tzif.Validate(f); err != nil {
		return nil, err
	}
	transitions, initial, posix, err := f.Assemble()
	if err != nil {
		return nil, err
	}
	return NewTimeZoneRules(transitions, initial, posix)
}

// Diagnostic records why CurrentSystemDefault fell back to UTC instead of
// the host's reported zone.
type Diagnostic struct {
	Fallback bool
	Reason   string
}

// CurrentSystemDefault asks host for the platform's zone id and resolves
// it; it never fails, falling back to UTC (and reporting why) when the host
// cannot name a usable zone.
func CurrentSystemDefault(host Host) (TimeZone, Diagnostic) {
	id := host.SystemTimeZoneID()
	if id == "" || id == "SYSTEM" {
		return UTC, Diagnostic{Fallback: true, Reason: "host reported no usable system zone id"}
	}
	zone, err := Of(id, host)
	if err != nil {
		return UTC, Diagnostic{Fallback: true, Reason: "resolving system zone " + id + ": " + err.Error()}
	}
	return zone, Diagnostic{}
}

// ToLocalDateTime converts i to wall-clock date and time in z.
func (i Instant) ToLocalDateTime(z TimeZone) LocalDateTime {
	return i.localDateTimeAtOffset(z.offsetAt(i))
}

func (z TimeZone) offsetAt(i Instant) UtcOffset {
	if z.variant == fixedVariant {
		return z.fixed
	}
	return z.rules.InfoAtInstant(i)
}

// OffsetAt returns the offset in effect for z at instant i.
func (z TimeZone) OffsetAt(i Instant) UtcOffset { return z.offsetAt(i) }

// OffsetResolver picks which of a Gap's or Overlap's candidate offsets
// LocalDateTime.ToInstant should use.
type OffsetResolver int

const (
	// PreferEarlier resolves a fall-back Overlap to the offset in effect
	// before the transition (the earlier of the two instants).
	PreferEarlier OffsetResolver = iota
	// PreferLater resolves a fall-back Overlap to the offset in effect
	// after the transition (the later of the two instants).
	PreferLater
)

// ToInstant converts ldt to the Instant it denotes in zone z. A Gap is
// resolved deterministically by shifting ldt forward by the gap's width; an
// Overlap is resolved per resolver (default PreferLater, matching most
// platforms' "assume DST has ended" convention).
func (ldt LocalDateTime) ToInstant(z TimeZone, resolver OffsetResolver) (Instant, error) {
	if z.variant == fixedVariant {
		return instantFromLocalDateTime(ldt, z.fixed)
	}
	info := z.rules.InfoAtDatetime(ldt)
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
		offset := info.After
		if resolver == PreferEarlier {
			offset = info.Before
		}
		return instantFromLocalDateTime(ldt, offset)
	}
}

// ToInstantAtOffset combines ldt with offset directly, with no zone lookup.
func (ldt LocalDateTime) ToInstantAtOffset(offset UtcOffset) (Instant, error) {
	return instantFromLocalDateTime(ldt, offset)
}

// UnambiguousOutcomeKind tags the closed result of resolving a LocalDateTime
// against a zone without picking a default on Overlap.
type UnambiguousOutcomeKind int

const (
	Unique UnambiguousOutcomeKind = iota
	Impossible
	Duplicate
)

// UnambiguousInstant is the raw outcome of resolving (ldt, zone): either
// exactly one instant, none (ldt fell in a Gap), or two (ldt fell in an
// Overlap), without the facade silently choosing between them.
type UnambiguousInstant struct {
	Kind      UnambiguousOutcomeKind
	Instant   Instant // valid when Kind == Unique
	Earlier   Instant // valid when Kind == Duplicate
	Later     Instant // valid when Kind == Duplicate
}

// ResolveUnambiguous resolves (ldt, z) into an UnambiguousInstant: it
// surfaces Gap and Overlap outcomes directly instead of resolving them.
func ResolveUnambiguous(ldt LocalDateTime, z TimeZone) (UnambiguousInstant, error) {
	if z.variant == fixedVariant {
		i, err := instantFromLocalDateTime(ldt, z.fixed)
		if err != nil {
			return UnambiguousInstant{}, err
		}
		return UnambiguousInstant{Kind: Unique, Instant: i}, nil
	}
	info := z.rules.InfoAtDatetime(ldt)
	switch info.Kind {
	case RegularOffset:
		i, err := instantFromLocalDateTime(ldt, info.Offset)
		if err != nil {
			return UnambiguousInstant{}, err
		}
		return UnambiguousInstant{Kind: Unique, Instant: i}, nil
	case GapOffset:
		return UnambiguousInstant{Kind: Impossible}, nil
	default:
		earlier, err := instantFromLocalDateTime(ldt, info.Before)
		if err != nil {
			return UnambiguousInstant{}, err
		}
		later, err := instantFromLocalDateTime(ldt, info.After)
		if err != nil {
			return UnambiguousInstant{}, err
		}
		return UnambiguousInstant{Kind: Duplicate, Earlier: earlier, Later: later}, nil
	}
}

// AtStartOfDayIn returns the first instant of date in z: midnight, unless
// midnight falls in a Gap, in which case the Gap's start instant (the first
// valid instant of the day) is returned.
func AtStartOfDayIn(date LocalDate, z TimeZone) (Instant, error) {
	midnight := LocalDateTime{date: date, time: Midnight}
	if z.variant == fixedVariant {
		return instantFromLocalDateTime(midnight, z.fixed)
	}
	info := z.rules.InfoAtDatetime(midnight)
	if info.Kind == GapOffset {
		return info.Start, nil
	}
	return midnight.ToInstant(z, PreferLater)
}
