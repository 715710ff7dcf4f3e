package tzif

import (
	"errors"
	"fmt"
	"io"
)

// File is a fully decoded TZif byte stream: the mandatory 32-bit body, and,
// for V2/V3 files, the 64-bit body that supersedes it plus the POSIX-TZ
// footer.
type File struct {
	Version Version

	V1Header Header
	V1Body   V1Body

	// HasUpgrade reports whether a V2/V3 header, body and footer follow the
	// V1 data. It is always true for V2/V3 files and always false for V1
	// files (RFC 8536 forbids a V2+ section in a V1 file).
	HasUpgrade bool
	V2Header   Header
	Body       Body
	Footer     Footer
}

// Decode reads a complete TZif byte stream from r: header, 32-bit body,
// and (for V2/V3) the 64-bit body and POSIX-TZ footer.
func Decode(r io.Reader) (File, error) {
	var f File

	h, err := ReadHeader(r)
	if err != nil {
		return f, fmt.Errorf("read header: %w", err)
	}
	f.Version = h.Version
	f.V1Header = h

	f.V1Body, err = ReadV1Body(r, h)
	if err != nil {
		return f, fmt.Errorf("read v1 body: %w", err)
	}

	if h.Version == V1 {
		return f, nil
	}

	f.HasUpgrade = true
	h2, err := ReadHeader(r)
	if err != nil {
		return f, fmt.Errorf("read v2+ header: %w", err)
	}
	if h2.Version != V2 && h2.Version != V3 {
		return f, fmt.Errorf("%w: v2+ header has version %v", ErrUnsupportedVersion, h2.Version)
	}
	f.Version = h2.Version
	f.V2Header = h2

	f.Body, err = ReadBody(r, h2)
	if err != nil {
		return f, fmt.Errorf("read v2+ body: %w", err)
	}

	f.Footer, err = ReadFooter(r)
	if err != nil {
		return f, fmt.Errorf("read footer: %w", err)
	}

	return f, nil
}

// Transition is one offset change, in the caller-neutral shape the rules
// engine assembles its transition table from.
type Transition struct {
	At          int64 // epoch seconds
	UTOffset    int32 // seconds east of UTC after the transition
	DST         bool
	Designation string
}

// Assemble reduces a decoded File to the transition table and POSIX-TZ
// footer that TimeZoneRules is built from. It prefers the 64-bit body when
// present (direct 64-bit path only; V1-only files use their
// 32-bit seconds unscaled).
func (f File) Assemble() (transitions []Transition, initial Transition, posix *PosixTZ, err error) {
	var (
		times []int64
		types []uint8
		ltt   []LocalTimeType
		desig []byte
	)
	if f.HasUpgrade {
		times = f.Body.TransitionTimes
		types = f.Body.TransitionTypes
		ltt = f.Body.LocalTimeTypes
		desig = f.Body.Designations
	} else {
		times = make([]int64, len(f.V1Body.TransitionTimes))
		for i, t := range f.V1Body.TransitionTimes {
			times[i] = int64(t)
		}
		types = f.V1Body.TransitionTypes
		ltt = f.V1Body.LocalTimeTypes
		desig = f.V1Body.Designations
	}

	if len(ltt) == 0 {
		return nil, Transition{}, nil, fmt.Errorf("%w: no local time type records", ErrInvalidFormat)
	}
	if len(times) != len(types) {
		return nil, Transition{}, nil, fmt.Errorf("%w: %d transition times but %d types", ErrInvalidFormat, len(times), len(types))
	}

	toTransition := func(idx uint8) (Transition, error) {
		if int(idx) >= len(ltt) {
			return Transition{}, fmt.Errorf("%w: transition type index %d out of range", ErrInvalidFormat, idx)
		}
		r := ltt[idx]
		return Transition{UTOffset: r.Utoff, DST: r.Dst, Designation: Designation(desig, r.Idx)}, nil
	}

	initial, err = toTransition(0)
	if err != nil {
		return nil, Transition{}, nil, err
	}

	transitions = make([]Transition, len(times))
	for i, t := range times {
		tr, err := toTransition(types[i])
		if err != nil {
			return nil, Transition{}, nil, err
		}
		tr.At = t
		transitions[i] = tr
	}

	if f.HasUpgrade && len(f.Footer.TZString) > 0 {
		p, perr := ParsePosixTZ(string(f.Footer.TZString))
		if perr == nil {
			posix = p
		}
		// A malformed footer is treated as "no recurring rules" rather than
		// failing the whole decode.
	}

	return transitions, initial, posix, nil
}

// Validate checks the structural invariants RFC 8536 places on counts and
// terminators, joining every violation it finds rather than stopping at the
// first one.
func Validate(f File) error {
	var errs []error
	if err := validateBody(f.V1Header, len(f.V1Body.TransitionTimes), len(f.V1Body.TransitionTypes),
		len(f.V1Body.LocalTimeTypes), len(f.V1Body.Designations), len(f.V1Body.LeapSeconds),
		len(f.V1Body.StandardWallIndicators), len(f.V1Body.UTLocalIndicators), f.V1Body.Designations); err != nil {
		errs = append(errs, err...)
	}
	if f.HasUpgrade {
		if err := validateBody(f.V2Header, len(f.Body.TransitionTimes), len(f.Body.TransitionTypes),
			len(f.Body.LocalTimeTypes), len(f.Body.Designations), len(f.Body.LeapSeconds),
			len(f.Body.StandardWallIndicators), len(f.Body.UTLocalIndicators), f.Body.Designations); err != nil {
			errs = append(errs, err...)
		}
	}
	return errors.Join(errs...)
}

func validateBody(h Header, timecnt, typescnt, ltt, desiglen, leapcnt, stdcnt, utcnt int, desig []byte) []error {
	var errs []error
	if h.Isutcnt != 0 && h.Isutcnt != h.Typecnt {
		errs = append(errs, fmt.Errorf("isutcnt (%d) must be 0 or equal to typecnt (%d)", h.Isutcnt, h.Typecnt))
	}
	if utcnt != int(h.Isutcnt) {
		errs = append(errs, fmt.Errorf("isutcnt mismatch: header=%d data=%d", h.Isutcnt, utcnt))
	}
	if h.Isstdcnt != 0 && h.Isstdcnt != h.Typecnt {
		errs = append(errs, fmt.Errorf("isstdcnt (%d) must be 0 or equal to typecnt (%d)", h.Isstdcnt, h.Typecnt))
	}
	if stdcnt != int(h.Isstdcnt) {
		errs = append(errs, fmt.Errorf("isstdcnt mismatch: header=%d data=%d", h.Isstdcnt, stdcnt))
	}
	if leapcnt != int(h.Leapcnt) {
		errs = append(errs, fmt.Errorf("leapcnt mismatch: header=%d data=%d", h.Leapcnt, leapcnt))
	}
	if timecnt != int(h.Timecnt) {
		errs = append(errs, fmt.Errorf("timecnt mismatch: header=%d times=%d", h.Timecnt, timecnt))
	}
	if timecnt != typescnt {
		errs = append(errs, fmt.Errorf("transition times (%d) and types (%d) differ in length", timecnt, typescnt))
	}
	if h.Typecnt == 0 {
		errs = append(errs, errors.New("typecnt must not be zero"))
	}
	if ltt != int(h.Typecnt) {
		errs = append(errs, fmt.Errorf("typecnt mismatch: header=%d data=%d", h.Typecnt, ltt))
	}
	if h.Charcnt == 0 {
		errs = append(errs, errors.New("charcnt must not be zero"))
	}
	if desiglen != int(h.Charcnt) {
		errs = append(errs, fmt.Errorf("charcnt mismatch: header=%d data=%d", h.Charcnt, desiglen))
	}
	if len(desig) > 0 && desig[len(desig)-1] != 0 {
		errs = append(errs, errors.New("time zone designations missing trailing NUL"))
	}
	return errs
}
