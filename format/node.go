package format

import (
	"strconv"
	"strings"

	"github.com/go-timecore/timecore"
)

// node is one element of a compiled Format's flat instruction vector.
// Formatting runs the vector left to right, emitting directly; parsing runs
// it left to right over the input. Optional and Alternatives backtrack by
// snapshotting the position and field bag and calling parse on their child
// nodes recursively; there is no explicit backtracking stack.
type node interface {
	format(sb *strings.Builder, c DateTimeComponents) error
	// parse consumes a prefix of s starting at pos, returning the position
	// immediately after what it consumed. It must not mutate c except
	// through DateTimeComponents.set (or setZoneID), and must leave pos unchanged on
	// failure (so a caller higher up the stack, e.g. Optional, can retry
	// without the field bag having been partially mutated).
	parse(s string, pos int, c *DateTimeComponents) (int, error)
}

// SignPolicy controls when NumericField emits a leading sign.
type SignPolicy int

const (
	SignNever SignPolicy = iota
	SignNegativeOnly
	SignAlways
)

// NumericField formats/parses a fixed-width decimal field such as a 2-digit
// month or a 4+-digit year.
type NumericField struct {
	Field          Field
	MinWidth       int
	MaxWidth       int
	Sign           SignPolicy
	PlusOnOverflow bool // emit '+' when the value needs more than MinWidth digits
	get            func(DateTimeComponents) (int, bool)
}

func (n NumericField) format(sb *strings.Builder, c DateTimeComponents) error {
	v, ok := n.get(c)
	if !ok {
		return timecore.NewError("Format", timecore.MissingField, "missing field for pattern")
	}
	neg := v < 0
	abs := v
	if neg {
		abs = -v
	}
	digits := strconv.Itoa(abs)
	for len(digits) < n.MinWidth {
		digits = "0" + digits
	}
	switch {
	case neg:
		sb.WriteByte('-')
	case n.Sign == SignAlways:
		sb.WriteByte('+')
	case n.PlusOnOverflow && len(digits) > n.MinWidth:
		sb.WriteByte('+')
	}
	sb.WriteString(digits)
	return nil
}

func (n NumericField) parse(s string, pos int, c *DateTimeComponents) (int, error) {
	op := "Format.Parse"
	start := pos
	neg := false
	if pos < len(s) && (s[pos] == '+' || s[pos] == '-') {
		neg = s[pos] == '-'
		pos++
	}
	digitsStart := pos
	for pos < len(s) && pos-digitsStart < n.MaxWidth && isDigit(s[pos]) {
		pos++
	}
	if pos-digitsStart < n.MinWidth {
		return start, timecore.NewError(op, timecore.InvalidFormat, "expected at least %d digits", n.MinWidth)
	}
	v, err := strconv.Atoi(s[digitsStart:pos])
	if err != nil {
		return start, timecore.WrapError(op, timecore.InvalidFormat, err, "parsing numeric field")
	}
	if neg {
		v = -v
	}
	if err := c.set(op, n.Field, v); err != nil {
		return start, err
	}
	return pos, nil
}

// FractionalField formats/parses the fraction-of-second part of a time,
// stored internally as nanoseconds (0..999999999).
type FractionalField struct {
	MinDigits int
	MaxDigits int
	Grouping  bool // round the rendered width up to the next multiple of 3
}

func (f FractionalField) format(sb *strings.Builder, c DateTimeComponents) error {
	if !c.HasNanosecond {
		return timecore.NewError("Format", timecore.MissingField, "missing nanosecond field for pattern")
	}
	digits := fmtNanos(c.Nanosecond, f.MinDigits, f.MaxDigits, f.Grouping)
	sb.WriteString(digits)
	return nil
}

// fmtNanos renders nanos as the shortest decimal fraction that is at least
// minDigits long and loses no precision, optionally rounding the width up
// to the next multiple of 3.
func fmtNanos(nanos, minDigits, maxDigits int, grouping bool) string {
	digits := strconv.Itoa(nanos)
	for len(digits) < 9 {
		digits = "0" + digits
	}
	width := minDigits
	for width < maxDigits && anyNonZero(digits[width:]) {
		width++
	}
	if grouping {
		width = ((width + 2) / 3) * 3
	}
	if width < minDigits {
		width = minDigits
	}
	if width > maxDigits {
		width = maxDigits
	}
	return digits[:width]
}

func anyNonZero(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] != '0' {
			return true
		}
	}
	return false
}

func (f FractionalField) parse(s string, pos int, c *DateTimeComponents) (int, error) {
	op := "Format.Parse"
	start := pos
	digitsStart := pos
	for pos < len(s) && pos-digitsStart < f.MaxDigits && isDigit(s[pos]) {
		pos++
	}
	n := pos - digitsStart
	if n < 1 {
		return start, timecore.NewError(op, timecore.InvalidFormat, "expected a fractional-second digit")
	}
	digits := s[digitsStart:pos]
	for len(digits) < 9 {
		digits += "0"
	}
	v, err := strconv.Atoi(digits)
	if err != nil {
		return start, timecore.WrapError(op, timecore.InvalidFormat, err, "parsing fractional seconds")
	}
	if err := c.set(op, FieldNanosecond, v); err != nil {
		return start, err
	}
	return pos, nil
}

// StringLiteral formats by emitting S verbatim and parses by exact (or
// case-insensitive) match.
type StringLiteral struct {
	S             string
	CaseSensitive bool
}

func (l StringLiteral) format(sb *strings.Builder, _ DateTimeComponents) error {
	sb.WriteString(l.S)
	return nil
}

func (l StringLiteral) parse(s string, pos int, _ *DateTimeComponents) (int, error) {
	if pos+len(l.S) > len(s) {
		return pos, timecore.NewError("Format.Parse", timecore.InvalidFormat, "expected %q", l.S)
	}
	got := s[pos : pos+len(l.S)]
	match := got == l.S
	if !match && !l.CaseSensitive {
		match = strings.EqualFold(got, l.S)
	}
	if !match {
		return pos, timecore.NewError("Format.Parse", timecore.InvalidFormat, "expected %q, got %q", l.S, got)
	}
	return pos + len(l.S), nil
}

// Optional formats its contained nodes, silently emitting nothing if the
// first attempt fails with MissingField (the fields it governs were never
// set); any other error still propagates. On parse it tries to match and
// silently skips (restoring position and the field bag) if that fails.
type Optional struct {
	Nodes []node
}

func (o Optional) format(sb *strings.Builder, c DateTimeComponents) error {
	var inner strings.Builder
	for _, n := range o.Nodes {
		if err := n.format(&inner, c); err != nil {
			if timecore.IsKind(err, timecore.MissingField) {
				return nil
			}
			return err
		}
	}
	sb.WriteString(inner.String())
	return nil
}

func (o Optional) parse(s string, pos int, c *DateTimeComponents) (int, error) {
	snapshot := *c
	p := pos
	for _, n := range o.Nodes {
		next, err := n.parse(s, p, c)
		if err != nil {
			*c = snapshot
			return pos, nil
		}
		p = next
	}
	return p, nil
}

// Alternatives formats using FormatForm and parses by trying each of
// ParseForms in order, accepting the first that consumes a contiguous
// prefix without error.
type Alternatives struct {
	ParseForms [][]node
	FormatForm []node
}

func (a Alternatives) format(sb *strings.Builder, c DateTimeComponents) error {
	for _, n := range a.FormatForm {
		if err := n.format(sb, c); err != nil {
			return err
		}
	}
	return nil
}

func (a Alternatives) parse(s string, pos int, c *DateTimeComponents) (int, error) {
	var lastErr error = timecore.NewError("Format.Parse", timecore.InvalidFormat, "no alternative matched")
	for _, form := range a.ParseForms {
		snapshot := *c
		p := pos
		ok := true
		for _, n := range form {
			next, err := n.parse(s, p, c)
			if err != nil {
				lastErr = err
				ok = false
				break
			}
			p = next
		}
		if ok {
			return p, nil
		}
		*c = snapshot
	}
	return pos, lastErr
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
