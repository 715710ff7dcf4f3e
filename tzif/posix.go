package tzif

import (
	"fmt"
	"strconv"
)

// DateRuleKind distinguishes the three ways a POSIX-TZ date can be spelled.
type DateRuleKind int

const (
	// JulianNoLeap is "Jn": 1..365, Feb 29 is never counted.
	JulianNoLeap DateRuleKind = iota
	// JulianWithLeap is "n": 0..365, Feb 29 is counted in leap years.
	JulianWithLeap
	// MonthWeekDay is "Mm.w.d": month, week-of-month (5 = last), weekday.
	MonthWeekDay
)

// DateRule is one half of a POSIX-TZ transition rule: which day of the year
// the transition happens on.
type DateRule struct {
	Kind DateRuleKind

	// Julian forms.
	Day int

	// MonthWeekDay form. Week 5 means "last <Weekday> of Month".
	Month   int
	Week    int
	Weekday int // 0 = Sunday .. 6 = Saturday
}

// Rule is one side of a POSIX-TZ recurring transition: the date it happens
// on and the wall-clock time of day, in seconds, defaulting to 02:00:00.
type Rule struct {
	Date DateRule
	Time int // seconds after local midnight; may be negative or >= 86400
}

// PosixTZ is a parsed POSIX-TZ footer string.
//
//	STD offset [DST [offset] [,start[/time],end[/time]]]
type PosixTZ struct {
	StdName   string
	StdOffset int // seconds east of UTC

	// HasDST is false when the string names only a standard designation
	// (no recurring daylight saving rule).
	HasDST    bool
	DSTName   string
	DSTOffset int

	// HasTransitions is false when DST is named but no start/end rule pair
	// is present; that is treated as "no recurring DST".
	HasTransitions bool
	Start          Rule
	End            Rule
}

// ParsePosixTZ parses the TZ environment variable grammar described in
// POSIX XBD 8.3.
func ParsePosixTZ(s string) (*PosixTZ, error) {
	if s == "" {
		return nil, fmt.Errorf("%w: empty TZ string", ErrInvalidFormat)
	}

	p := &posixParser{s: s}
	var out PosixTZ

	name, err := p.name()
	if err != nil {
		return nil, err
	}
	out.StdName = name

	off, err := p.offset()
	if err != nil {
		return nil, err
	}
	out.StdOffset = -off // POSIX offsets are west-positive; we store east-positive.

	if p.eof() {
		return &out, nil
	}

	dstName, err := p.name()
	if err != nil {
		return nil, err
	}
	out.HasDST = true
	out.DSTName = dstName

	if !p.eof() && p.peek() != ',' {
		dstOff, err := p.offset()
		if err != nil {
			return nil, err
		}
		out.DSTOffset = -dstOff
	} else {
		out.DSTOffset = out.StdOffset + 3600
	}

	if p.eof() {
		return &out, nil
	}
	if p.peek() != ',' {
		return nil, fmt.Errorf("%w: expected ',' before start rule in %q", ErrInvalidFormat, s)
	}
	p.advance()

	start, err := p.rule()
	if err != nil {
		return nil, err
	}
	if p.eof() || p.peek() != ',' {
		return nil, fmt.Errorf("%w: expected ',' between start and end rule in %q", ErrInvalidFormat, s)
	}
	p.advance()
	end, err := p.rule()
	if err != nil {
		return nil, err
	}

	out.HasTransitions = true
	out.Start = start
	out.End = end
	return &out, nil
}

type posixParser struct {
	s string
	i int
}

func (p *posixParser) eof() bool  { return p.i >= len(p.s) }
func (p *posixParser) peek() byte { return p.s[p.i] }
func (p *posixParser) advance()   { p.i++ }

func isNameByte(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// name parses a STD/DST designation: either a run of letters, or a
// '<...>' quoted form that additionally allows digits and '+'/'-'.
func (p *posixParser) name() (string, error) {
	if p.eof() {
		return "", fmt.Errorf("%w: expected a name in %q", ErrInvalidFormat, p.s)
	}
	if p.peek() == '<' {
		start := p.i + 1
		p.advance()
		for !p.eof() && p.peek() != '>' {
			p.advance()
		}
		if p.eof() {
			return "", fmt.Errorf("%w: unterminated quoted name in %q", ErrInvalidFormat, p.s)
		}
		name := p.s[start:p.i]
		p.advance()
		return name, nil
	}
	start := p.i
	for !p.eof() && isNameByte(p.peek()) {
		p.advance()
	}
	if p.i == start {
		return "", fmt.Errorf("%w: expected a name in %q", ErrInvalidFormat, p.s)
	}
	return p.s[start:p.i], nil
}

// offset parses "[+-]h[:m[:s]]" and returns total seconds. Default sign is
// positive, matching POSIX (west of UTC).
func (p *posixParser) offset() (int, error) {
	sign := 1
	if !p.eof() && (p.peek() == '+' || p.peek() == '-') {
		if p.peek() == '-' {
			sign = -1
		}
		p.advance()
	}
	h, err := p.number()
	if err != nil {
		return 0, fmt.Errorf("offset hour in %q: %w", p.s, err)
	}
	total := h * 3600
	if !p.eof() && p.peek() == ':' {
		p.advance()
		m, err := p.number()
		if err != nil {
			return 0, fmt.Errorf("offset minute in %q: %w", p.s, err)
		}
		total += m * 60
		if !p.eof() && p.peek() == ':' {
			p.advance()
			sec, err := p.number()
			if err != nil {
				return 0, fmt.Errorf("offset second in %q: %w", p.s, err)
			}
			total += sec
		}
	}
	return sign * total, nil
}

func (p *posixParser) number() (int, error) {
	start := p.i
	for !p.eof() && p.peek() >= '0' && p.peek() <= '9' {
		p.advance()
	}
	if p.i == start {
		return 0, fmt.Errorf("expected digits")
	}
	return strconv.Atoi(p.s[start:p.i])
}

// rule parses one "start" or "end" component: a date, optionally followed
// by "/time".
func (p *posixParser) rule() (Rule, error) {
	date, err := p.date()
	if err != nil {
		return Rule{}, err
	}
	r := Rule{Date: date, Time: 2 * 3600}
	if !p.eof() && p.peek() == '/' {
		p.advance()
		t, err := p.time()
		if err != nil {
			return Rule{}, err
		}
		r.Time = t
	}
	return r, nil
}

func (p *posixParser) date() (DateRule, error) {
	if p.eof() {
		return DateRule{}, fmt.Errorf("%w: expected a date in %q", ErrInvalidFormat, p.s)
	}
	switch p.peek() {
	case 'J':
		p.advance()
		n, err := p.number()
		if err != nil {
			return DateRule{}, err
		}
		if n < 1 || n > 365 {
			return DateRule{}, fmt.Errorf("%w: Julian day %d out of range [1,365]", ErrInvalidFormat, n)
		}
		return DateRule{Kind: JulianNoLeap, Day: n}, nil
	case 'M':
		p.advance()
		m, err := p.number()
		if err != nil {
			return DateRule{}, fmt.Errorf("month in %q: %w", p.s, err)
		}
		if m < 1 || m > 12 {
			return DateRule{}, fmt.Errorf("%w: month %d out of range [1,12]", ErrInvalidFormat, m)
		}
		if p.eof() || p.peek() != '.' {
			return DateRule{}, fmt.Errorf("%w: expected '.' after month in %q", ErrInvalidFormat, p.s)
		}
		p.advance()
		w, err := p.number()
		if err != nil {
			return DateRule{}, fmt.Errorf("week in %q: %w", p.s, err)
		}
		if w < 1 || w > 5 {
			return DateRule{}, fmt.Errorf("%w: week %d out of range [1,5]", ErrInvalidFormat, w)
		}
		if p.eof() || p.peek() != '.' {
			return DateRule{}, fmt.Errorf("%w: expected '.' after week in %q", ErrInvalidFormat, p.s)
		}
		p.advance()
		d, err := p.number()
		if err != nil {
			return DateRule{}, fmt.Errorf("weekday in %q: %w", p.s, err)
		}
		if d < 0 || d > 6 {
			return DateRule{}, fmt.Errorf("%w: weekday %d out of range [0,6]", ErrInvalidFormat, d)
		}
		return DateRule{Kind: MonthWeekDay, Month: m, Week: w, Weekday: d}, nil
	default:
		n, err := p.number()
		if err != nil {
			return DateRule{}, fmt.Errorf("%w: expected 'J', 'M' or a digit in %q", ErrInvalidFormat, p.s)
		}
		if n < 0 || n > 365 {
			return DateRule{}, fmt.Errorf("%w: day %d out of range [0,365]", ErrInvalidFormat, n)
		}
		return DateRule{Kind: JulianWithLeap, Day: n}, nil
	}
}

// time parses "[+-]h[:m[:s]]" and returns total seconds, without the offset
// sign conventions of an offset field (hour may exceed 24, per POSIX
// extensions honored by TZif v3 footers).
func (p *posixParser) time() (int, error) {
	sign := 1
	if !p.eof() && (p.peek() == '+' || p.peek() == '-') {
		if p.peek() == '-' {
			sign = -1
		}
		p.advance()
	}
	h, err := p.number()
	if err != nil {
		return 0, fmt.Errorf("time hour in %q: %w", p.s, err)
	}
	total := h * 3600
	if !p.eof() && p.peek() == ':' {
		p.advance()
		m, err := p.number()
		if err != nil {
			return 0, err
		}
		total += m * 60
		if !p.eof() && p.peek() == ':' {
			p.advance()
			sec, err := p.number()
			if err != nil {
				return 0, err
			}
			total += sec
		}
	}
	return sign * total, nil
}
