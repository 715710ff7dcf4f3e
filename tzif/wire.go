// Package tzif decodes IANA/Olson compiled time-zone files (RFC 8536) and
// the POSIX-TZ footer that version 2+ files carry.
//
// https://datatracker.ietf.org/doc/html/rfc8536
package tzif

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

// All multi-octet integers in a TZif file are big-endian, two's complement.
var order = binary.BigEndian

// Version is the single octet identifying a TZif file's format generation.
// V1 stores transition times as 32-bit seconds; V2 and V3 use 64-bit and add
// a POSIX-TZ footer. This package does not recognize V4 (tzfile(5)'s leap
// second table expiration marker) since it carries no offset information
// this reader needs.
type Version byte

func (v Version) String() string {
	switch v {
	case V1:
		return "V1 (0x00)"
	case V2:
		return "V2 (0x32)"
	case V3:
		return "V3 (0x33)"
	default:
		return fmt.Sprintf("<unsupported version (%d)>", byte(v))
	}
}

const (
	V1 Version = 0x00
	V2 Version = 0x32
	V3 Version = 0x33
)

// Magic is the four-octet sequence that opens every TZif file.
var Magic = [4]byte{'T', 'Z', 'i', 'f'}

// Header precedes each data block (there are two in V2/V3 files: one
// describing the 32-bit body, one describing the 64-bit body that follows
// it).
type Header struct {
	Version  Version
	Reserved [15]byte

	// Isutcnt and Isstdcnt count trailing indicator bytes this package reads
	// but ignores — they describe whether stored
	// transition times are UT/local and standard/wall, which only matters to
	// writers that re-derive a TZ string, not to this reader.
	Isutcnt  uint32
	Isstdcnt uint32
	Leapcnt  uint32
	Timecnt  uint32
	Typecnt  uint32
	Charcnt  uint32
}

func (h Header) Write(w io.Writer) error {
	if _, err := w.Write(Magic[:]); err != nil {
		return err
	}
	return binary.Write(w, order, h)
}

// ReadHeader reads and validates the magic, then decodes the fixed-size
// header that follows it.
func ReadHeader(r io.Reader) (Header, error) {
	var h Header
	magic := make([]byte, len(Magic))
	if err := binary.Read(r, order, &magic); err != nil {
		return h, fmt.Errorf("reading magic: %w", err)
	}
	if !bytes.Equal(magic, Magic[:]) {
		return h, fmt.Errorf("%w: magic was %v", ErrInvalidFormat, magic)
	}
	if err := binary.Read(r, order, &h); err != nil {
		return h, fmt.Errorf("reading header: %w", err)
	}
	switch h.Version {
	case V1, V2, V3:
	default:
		return h, fmt.Errorf("%w: %v", ErrUnsupportedVersion, h.Version)
	}
	return h, nil
}

// V1Body is the 32-bit-time data block, present in every TZif file (RFC
// 8536 requires a V1 body even in V2/V3 files, for readers that only
// understand V1).
type V1Body struct {
	TransitionTimes        []int32
	TransitionTypes        []uint8
	LocalTimeTypes         []LocalTimeType
	Designations           []byte
	LeapSeconds            []V1LeapSecond
	StandardWallIndicators []bool
	UTLocalIndicators      []bool
}

func (b V1Body) Write(w io.Writer) error {
	if err := binary.Write(w, order, b.TransitionTimes); err != nil {
		return err
	}
	if err := binary.Write(w, order, b.TransitionTypes); err != nil {
		return err
	}
	for _, r := range b.LocalTimeTypes {
		if err := r.Write(w); err != nil {
			return err
		}
	}
	if _, err := w.Write(b.Designations); err != nil {
		return err
	}
	for _, r := range b.LeapSeconds {
		if err := binary.Write(w, order, r); err != nil {
			return err
		}
	}
	for _, r := range b.StandardWallIndicators {
		if err := binary.Write(w, order, r); err != nil {
			return err
		}
	}
	for _, r := range b.UTLocalIndicators {
		if err := binary.Write(w, order, r); err != nil {
			return err
		}
	}
	return nil
}

func ReadV1Body(r io.Reader, h Header) (V1Body, error) {
	var b V1Body
	if h.Timecnt > 0 {
		b.TransitionTimes = make([]int32, h.Timecnt)
		if err := binary.Read(r, order, &b.TransitionTimes); err != nil {
			return b, fmt.Errorf("reading transition times: %w", err)
		}
		b.TransitionTypes = make([]uint8, h.Timecnt)
		if err := binary.Read(r, order, &b.TransitionTypes); err != nil {
			return b, fmt.Errorf("reading transition types: %w", err)
		}
	}
	if h.Typecnt > 0 {
		b.LocalTimeTypes = make([]LocalTimeType, h.Typecnt)
		for i := range b.LocalTimeTypes {
			if err := binary.Read(r, order, &b.LocalTimeTypes[i]); err != nil {
				return b, fmt.Errorf("reading local time type record %d: %w", i, err)
			}
		}
	}
	if h.Charcnt > 0 {
		b.Designations = make([]byte, h.Charcnt)
		if _, err := io.ReadFull(r, b.Designations); err != nil {
			return b, fmt.Errorf("reading time zone designations: %w", err)
		}
	}
	if h.Leapcnt > 0 {
		b.LeapSeconds = make([]V1LeapSecond, h.Leapcnt)
		for i := range b.LeapSeconds {
			if err := binary.Read(r, order, &b.LeapSeconds[i]); err != nil {
				return b, fmt.Errorf("reading leap second record %d: %w", i, err)
			}
		}
	}
	if h.Isstdcnt > 0 {
		b.StandardWallIndicators = make([]bool, h.Isstdcnt)
		if err := binary.Read(r, order, &b.StandardWallIndicators); err != nil {
			return b, fmt.Errorf("reading standard/wall indicators: %w", err)
		}
	}
	if h.Isutcnt > 0 {
		b.UTLocalIndicators = make([]bool, h.Isutcnt)
		if err := binary.Read(r, order, &b.UTLocalIndicators); err != nil {
			return b, fmt.Errorf("reading UT/local indicators: %w", err)
		}
	}
	return b, nil
}

// V1LeapSecond records a correction applied to UTC at a given instant.
// Parsed but discarded when assembling rules: the rules engine treats the
// timeline as UTC-SLS-like and ignores stored leap-second corrections.
type V1LeapSecond struct {
	Occur int32
	Corr  int32
}

// Body is the 64-bit-time data block used by V2 and V3 files.
type Body struct {
	TransitionTimes        []int64
	TransitionTypes        []uint8
	LocalTimeTypes         []LocalTimeType
	Designations           []byte
	LeapSeconds            []LeapSecond
	StandardWallIndicators []bool
	UTLocalIndicators      []bool
}

func (b Body) Write(w io.Writer) error {
	if err := binary.Write(w, order, b.TransitionTimes); err != nil {
		return err
	}
	if err := binary.Write(w, order, b.TransitionTypes); err != nil {
		return err
	}
	for _, r := range b.LocalTimeTypes {
		if err := r.Write(w); err != nil {
			return err
		}
	}
	if _, err := w.Write(b.Designations); err != nil {
		return err
	}
	for _, r := range b.LeapSeconds {
		if err := binary.Write(w, order, r); err != nil {
			return err
		}
	}
	for _, r := range b.StandardWallIndicators {
		if err := binary.Write(w, order, r); err != nil {
			return err
		}
	}
	for _, r := range b.UTLocalIndicators {
		if err := binary.Write(w, order, r); err != nil {
			return err
		}
	}
	return nil
}

func ReadBody(r io.Reader, h Header) (Body, error) {
	if h.Version < V2 {
		return Body{}, fmt.Errorf("%w: header version %v cannot have a 64-bit body", ErrInvalidFormat, h.Version)
	}
	var b Body
	if h.Timecnt > 0 {
		b.TransitionTimes = make([]int64, h.Timecnt)
		if err := binary.Read(r, order, &b.TransitionTimes); err != nil {
			return b, fmt.Errorf("reading transition times: %w", err)
		}
		b.TransitionTypes = make([]uint8, h.Timecnt)
		if err := binary.Read(r, order, &b.TransitionTypes); err != nil {
			return b, fmt.Errorf("reading transition types: %w", err)
		}
	}
	if h.Typecnt > 0 {
		b.LocalTimeTypes = make([]LocalTimeType, h.Typecnt)
		for i := range b.LocalTimeTypes {
			if err := binary.Read(r, order, &b.LocalTimeTypes[i]); err != nil {
				return b, fmt.Errorf("reading local time type record %d: %w", i, err)
			}
		}
	}
	if h.Charcnt > 0 {
		b.Designations = make([]byte, h.Charcnt)
		if _, err := io.ReadFull(r, b.Designations); err != nil {
			return b, fmt.Errorf("reading time zone designations: %w", err)
		}
	}
	if h.Leapcnt > 0 {
		b.LeapSeconds = make([]LeapSecond, h.Leapcnt)
		for i := range b.LeapSeconds {
			if err := binary.Read(r, order, &b.LeapSeconds[i]); err != nil {
				return b, fmt.Errorf("reading leap second record %d: %w", i, err)
			}
		}
	}
	if h.Isstdcnt > 0 {
		b.StandardWallIndicators = make([]bool, h.Isstdcnt)
		if err := binary.Read(r, order, &b.StandardWallIndicators); err != nil {
			return b, fmt.Errorf("reading standard/wall indicators: %w", err)
		}
	}
	if h.Isutcnt > 0 {
		b.UTLocalIndicators = make([]bool, h.Isutcnt)
		if err := binary.Read(r, order, &b.UTLocalIndicators); err != nil {
			return b, fmt.Errorf("reading UT/local indicators: %w", err)
		}
	}
	return b, nil
}

// LeapSecond is the 64-bit-time form of V1LeapSecond.
type LeapSecond struct {
	Occur int64
	Corr  int32
}

// LocalTimeType is one row of the local time type table: an offset, whether
// it's DST, and an index into the designation bytes.
type LocalTimeType struct {
	Utoff int32
	Dst   bool
	Idx   uint8
}

func (r LocalTimeType) Write(w io.Writer) error {
	if err := binary.Write(w, order, r.Utoff); err != nil {
		return err
	}
	if err := binary.Write(w, order, r.Dst); err != nil {
		return err
	}
	return binary.Write(w, order, r.Idx)
}

// Footer holds the raw POSIX-TZ string appended after a V2/V3 body. It is
// parsed separately by ParsePosixTZ.
type Footer struct {
	TZString []byte
}

var asciiNewLine = byte(0x0A)

func (f Footer) Write(w io.Writer) error {
	if _, err := w.Write([]byte{asciiNewLine}); err != nil {
		return err
	}
	if _, err := w.Write(f.TZString); err != nil {
		return err
	}
	_, err := w.Write([]byte{asciiNewLine})
	return err
}

func ReadFooter(r io.Reader) (Footer, error) {
	var f Footer
	buf := make([]byte, 1)
	if _, err := io.ReadFull(r, buf); err != nil {
		return f, fmt.Errorf("reading opening newline: %w", err)
	}
	if buf[0] != asciiNewLine {
		return f, fmt.Errorf("%w: footer does not start with a newline", ErrInvalidFormat)
	}
	var b []byte
	for {
		if _, err := io.ReadFull(r, buf); err != nil {
			return f, fmt.Errorf("reading TZ string: %w", err)
		}
		if buf[0] == asciiNewLine {
			break
		}
		b = append(b, buf[0])
	}
	f.TZString = b
	return f, nil
}

// Designation returns the NUL-terminated designation string starting at idx.
func Designation(table []byte, idx uint8) string {
	if int(idx) >= len(table) {
		return ""
	}
	end := int(idx)
	for end < len(table) && table[end] != 0 {
		end++
	}
	return string(table[idx:end])
}
