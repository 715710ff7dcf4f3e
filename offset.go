package timecore

import (
	"fmt"
	"strconv"
	"strings"
)

const maxOffsetSeconds = 18 * 3600

// UtcOffset is a signed offset from UTC, east-positive.
type UtcOffset struct {
	totalSeconds int32
}

// ZeroOffset is the zero UTC offset ("Z").
var ZeroOffset = UtcOffset{}

// NewUtcOffset validates and constructs a UtcOffset from total seconds.
func NewUtcOffset(totalSeconds int) (UtcOffset, error) {
	const op = "UtcOffset.New"
	if totalSeconds < -maxOffsetSeconds || totalSeconds > maxOffsetSeconds {
		return UtcOffset{}, newErr(op, IllegalArgument, "offset %d exceeds +/-18h", totalSeconds)
	}
	return UtcOffset{totalSeconds: int32(totalSeconds)}, nil
}

// UtcOffsetOfHMS constructs a UtcOffset from hours/minutes/seconds, which
// must all share a sign (or be zero).
func UtcOffsetOfHMS(hours, minutes, seconds int) (UtcOffset, error) {
	const op = "UtcOffset.OfHMS"
	signs := 0
	for _, v := range []int{hours, minutes, seconds} {
		if v > 0 {
			signs |= 1
		} else if v < 0 {
			signs |= 2
		}
	}
	if signs == 3 {
		return UtcOffset{}, newErr(op, IllegalArgument, "hours, minutes and seconds must share a sign")
	}
	if minutes < -59 || minutes > 59 || seconds < -59 || seconds > 59 {
		return UtcOffset{}, newErr(op, IllegalArgument, "minutes/seconds out of range")
	}
	total := hours*3600 + minutes*60 + seconds
	if hours == 18 && (minutes != 0 || seconds != 0) {
		return UtcOffset{}, newErr(op, IllegalArgument, "hours == 18 requires zero minutes and seconds")
	}
	return NewUtcOffset(total)
}

// TotalSeconds returns the offset as a signed second count.
func (o UtcOffset) TotalSeconds() int { return int(o.totalSeconds) }

// IsZero reports whether the offset is UTC.
func (o UtcOffset) IsZero() bool { return o.totalSeconds == 0 }

// String renders the canonical form: "Z" for zero, else "+HH[:MM[:SS]]".
func (o UtcOffset) String() string {
	if o.totalSeconds == 0 {
		return "Z"
	}
	sign := "+"
	s := int(o.totalSeconds)
	if s < 0 {
		sign = "-"
		s = -s
	}
	h, m, sec := s/3600, (s/60)%60, s%60
	if sec != 0 {
		return fmt.Sprintf("%s%02d:%02d:%02d", sign, h, m, sec)
	}
	if m != 0 {
		return fmt.Sprintf("%s%02d:%02d", sign, h, m)
	}
	return fmt.Sprintf("%s%02d", sign, h)
}

// ParseUtcOffset parses the canonical offset grammar:
//
//	Z | z
//	±H | ±HH | ±HHMM | ±HH:MM | ±HHMMSS | ±HH:MM:SS
func ParseUtcOffset(s string) (UtcOffset, error) {
	const op = "UtcOffset.Parse"
	if s == "Z" || s == "z" {
		return ZeroOffset, nil
	}
	if len(s) == 0 {
		return UtcOffset{}, newErr(op, InvalidFormat, "empty offset string")
	}
	sign := 1
	switch s[0] {
	case '+':
	case '-':
		sign = -1
	default:
		return UtcOffset{}, newErr(op, InvalidFormat, "invalid offset %q: must start with + or -", s)
	}
	body := s[1:]
	body = strings.ReplaceAll(body, ":", "")

	var h, m, sec int
	var err error
	switch len(body) {
	case 1, 2:
		h, err = strconv.Atoi(body)
	case 4:
		h, err = strconv.Atoi(body[0:2])
		if err == nil {
			m, err = strconv.Atoi(body[2:4])
		}
	case 6:
		h, err = strconv.Atoi(body[0:2])
		if err == nil {
			m, err = strconv.Atoi(body[2:4])
		}
		if err == nil {
			sec, err = strconv.Atoi(body[4:6])
		}
	default:
		return UtcOffset{}, newErr(op, InvalidFormat, "invalid offset %q", s)
	}
	if err != nil {
		return UtcOffset{}, wrapErr(op, InvalidFormat, err, "invalid offset %q", s)
	}
	if h < 0 || h > 18 || m < 0 || m > 59 || sec < 0 || sec > 59 {
		return UtcOffset{}, newErr(op, InvalidFormat, "invalid offset %q: component out of range", s)
	}
	if h == 18 && (m != 0 || sec != 0) {
		return UtcOffset{}, newErr(op, InvalidFormat, "invalid offset %q: +/-18 must have zero minutes/seconds", s)
	}
	total := sign * (h*3600 + m*60 + sec)
	return NewUtcOffset(total)
}
