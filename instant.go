package timecore

import (
	"github.com/go-timecore/timecore/internal/arith"
)

const (
	minEpochSeconds int64 = -31_557_014_167_219_200
	maxEpochSeconds int64 = 31_556_889_864_403_199
)

// Instant is a point on the physical (UTC) timeline with nanosecond
// resolution, independent of calendar or time zone.
type Instant struct {
	epochSeconds int64
	nanoseconds  int32
}

// UnixEpoch is 1970-01-01T00:00:00Z.
var UnixEpoch = Instant{}

// NewInstant validates and constructs an Instant.
func NewInstant(epochSeconds int64, nanosecondsOfSecond int) (Instant, error) {
	const op = "Instant.New"
	if nanosecondsOfSecond < 0 || nanosecondsOfSecond > 999_999_999 {
		return Instant{}, newErr(op, IllegalArgument, "nanosecondsOfSecond %d out of range", nanosecondsOfSecond)
	}
	if epochSeconds < minEpochSeconds || epochSeconds > maxEpochSeconds {
		return Instant{}, newErr(op, DateTimeArithmetic, "epoch seconds %d out of range", epochSeconds)
	}
	return Instant{epochSeconds: epochSeconds, nanoseconds: int32(nanosecondsOfSecond)}, nil
}

// InstantFromEpochMilliseconds constructs an Instant from a millisecond
// Unix timestamp.
func InstantFromEpochMilliseconds(ms int64) (Instant, error) {
	secs := arith.FloorDiv(ms, 1000)
	nanos := int(arith.FloorMod(ms, 1000)) * 1_000_000
	return NewInstant(secs, nanos)
}

func (i Instant) EpochSeconds() int64      { return i.epochSeconds }
func (i Instant) NanosecondsOfSecond() int { return int(i.nanoseconds) }

// EpochMilliseconds truncates to millisecond resolution.
func (i Instant) EpochMilliseconds() int64 {
	return i.epochSeconds*1000 + int64(i.nanoseconds)/1_000_000
}

// Compare returns -1, 0 or 1 as i is before, equal to, or after other.
func (i Instant) Compare(other Instant) int {
	switch {
	case i.epochSeconds != other.epochSeconds:
		if i.epochSeconds < other.epochSeconds {
			return -1
		}
		return 1
	case i.nanoseconds != other.nanoseconds:
		if i.nanoseconds < other.nanoseconds {
			return -1
		}
		return 1
	default:
		return 0
	}
}

func (i Instant) Before(other Instant) bool { return i.Compare(other) < 0 }
func (i Instant) After(other Instant) bool  { return i.Compare(other) > 0 }
func (i Instant) Equal(other Instant) bool  { return i == other }

// PlusSeconds adds whole seconds and nanoseconds directly to the instant,
// with no zone involvement.
func (i Instant) PlusSeconds(seconds int64, nanoseconds int64) (Instant, error) {
	const op = "Instant.PlusSeconds"
	totalNanos := int64(i.nanoseconds) + nanoseconds
	carry := arith.FloorDiv(totalNanos, nanosPerSecond)
	nanos := arith.FloorMod(totalNanos, nanosPerSecond)
	secs, overflow := arith.AddInt64(i.epochSeconds, seconds)
	if overflow {
		return Instant{}, newErr(op, DateTimeArithmetic, "seconds overflow")
	}
	secs, overflow = arith.AddInt64(secs, carry)
	if overflow {
		return Instant{}, newErr(op, DateTimeArithmetic, "seconds overflow")
	}
	return NewInstant(secs, int(nanos))
}

// String renders i as an ISO-8601 instant in UTC, e.g.
// "2020-12-09T09:16:56.000124Z".
func (i Instant) String() string {
	return i.localDateTimeAtOffset(ZeroOffset).String() + "Z"
}

// localDateTimeAtOffset applies offset to i and splits the result into date
// and time.
func (i Instant) localDateTimeAtOffset(offset UtcOffset) LocalDateTime {
	localSeconds := i.epochSeconds + int64(offset.totalSeconds)
	epochDay := arith.FloorDiv(localSeconds, 86400)
	secondOfDay := arith.FloorMod(localSeconds, 86400)
	date, err := LocalDateOfEpochDay(epochDay)
	if err != nil {
		// Offsets are bounded to +/-18h, so this can only happen if i itself
		// is at the extreme edge of its own range; fall back to the zero
		// LocalDate rather than panic.
		date = LocalDate{}
	}
	t := LocalTimeOfNanosecondOfDay(secondOfDay*nanosPerSecond + int64(i.nanoseconds))
	return LocalDateTime{date: date, time: t}
}

// instantFromLocalDateTime combines a LocalDateTime with offset into an
// Instant, with no gap/overlap resolution (the caller already picked an
// offset).
func instantFromLocalDateTime(ldt LocalDateTime, offset UtcOffset) (Instant, error) {
	epochDay := ldt.date.EpochDay()
	secondOfDay := ldt.time.NanosecondOfDay() / nanosPerSecond
	nanos := ldt.time.NanosecondOfDay() % nanosPerSecond
	epochSeconds := epochDay*86400 + secondOfDay - int64(offset.totalSeconds)
	return NewInstant(epochSeconds, int(nanos))
}
