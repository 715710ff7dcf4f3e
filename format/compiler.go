package format

import (
	"strings"

	"github.com/go-timecore/timecore"
)

// Compile turns an LDML-inspired pattern into a Format. Grammar:
//
//	literal runs    unquoted non-letter characters are emitted/matched verbatim
//	'text'          quoted literal; '' is a literal single quote
//	letter runs     a maximal run of the same letter becomes one directive
//	[ ... ]         an optional group, nestable to any depth
//
// Unknown letters fail with UnsupportedDirective; letters whose semantics
// require locale data (month/weekday names, eras, AM/PM, ...) fail with
// LocaleDependentDirective.
func Compile(pattern string) (*Format, error) {
	const op = "Format.Compile"
	nodes, rest, err := compileUntil(op, pattern, "")
	if err != nil {
		return nil, err
	}
	if rest != "" {
		return nil, timecore.NewError(op, timecore.InvalidFormat, "unmatched %q in pattern", rest[:1])
	}
	return &Format{nodes: nodes}, nil
}

// compileUntil compiles pattern up to (but not including) a terminator
// rune (']' when compiling inside an optional group, "" at top level),
// returning the remaining unconsumed pattern (including the terminator, if
// any, for the caller to strip).
func compileUntil(op, pattern, terminators string) ([]node, string, error) {
	var nodes []node
	for len(pattern) > 0 {
		c := pattern[0]
		if terminators != "" && strings.IndexByte(terminators, c) >= 0 {
			return nodes, pattern, nil
		}
		switch {
		case c == ']':
			return nil, "", timecore.NewError(op, timecore.InvalidFormat, "unmatched ']' in pattern")
		case c == '\'':
			lit, rest, err := scanQuoted(op, pattern)
			if err != nil {
				return nil, "", err
			}
			if lit != "" {
				nodes = append(nodes, StringLiteral{S: lit})
			}
			pattern = rest
		case c == '[':
			inner, rest, err := compileUntil(op, pattern[1:], "]")
			if err != nil {
				return nil, "", err
			}
			if !strings.HasPrefix(rest, "]") {
				return nil, "", timecore.NewError(op, timecore.InvalidFormat, "unterminated '[' in pattern")
			}
			nodes = append(nodes, Optional{Nodes: inner})
			pattern = rest[1:]
		case c == 'p':
			n := 1
			for n < len(pattern) && pattern[n] == 'p' {
				n++
			}
			pattern = pattern[n:]
			if pattern == "" || !isLetter(pattern[0]) {
				return nil, "", timecore.NewError(op, timecore.InvalidFormat, "'p' padding must precede a directive")
			}
			directive, rest, err := compileUntil(op, pattern, terminators)
			if err != nil {
				return nil, "", err
			}
			if len(directive) == 0 {
				return nil, "", timecore.NewError(op, timecore.InvalidFormat, "'p' padding must precede a directive")
			}
			if numeric, ok := directive[0].(NumericField); ok && numeric.MinWidth < n {
				numeric.MinWidth = n
				if numeric.MaxWidth < n {
					numeric.MaxWidth = n
				}
				directive[0] = numeric
			}
			nodes = append(nodes, directive...)
			pattern = rest
		case isLetter(c):
			n := 1
			for n < len(pattern) && pattern[n] == c {
				n++
			}
			directive, err := compileDirective(op, c, n)
			if err != nil {
				return nil, "", err
			}
			nodes = append(nodes, directive)
			pattern = pattern[n:]
		default:
			n := 1
			for n < len(pattern) && pattern[n] != '\'' && pattern[n] != '[' && !isLetter(pattern[n]) &&
				(terminators == "" || strings.IndexByte(terminators, pattern[n]) < 0) {
				n++
			}
			nodes = append(nodes, StringLiteral{S: pattern[:n]})
			pattern = pattern[n:]
		}
	}
	return nodes, "", nil
}

func scanQuoted(op, pattern string) (string, string, error) {
	if pattern[1:] != "" && pattern[1] == '\'' {
		return "'", pattern[2:], nil
	}
	end := strings.IndexByte(pattern[1:], '\'')
	if end < 0 {
		return "", "", timecore.NewError(op, timecore.InvalidFormat, "unterminated quoted literal")
	}
	return pattern[1 : 1+end], pattern[2+end:], nil
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// compileDirective maps one letter run to a node, per the directive table.
func compileDirective(op string, letter byte, length int) (node, error) {
	localeDependent := func() (node, error) {
		return nil, timecore.NewError(op, timecore.LocaleDependentDirective, "directive %q requires locale data", string(letter))
	}
	unsupported := func() (node, error) {
		return nil, timecore.NewError(op, timecore.UnsupportedDirective, "directive %q is not implemented", string(letter))
	}

	switch letter {
	case 'u':
		if length == 2 {
			return unsupported()
		}
		return yearField(length), nil
	case 'M', 'L':
		if length == 1 || length == 2 {
			return numericField(FieldMonth, length, 2, getMonth), nil
		}
		return localeDependent()
	case 'd':
		return numericField(FieldDay, length, length, getDay), nil
	case 'D':
		return numericField(FieldDayOfYear, length, length, getDayOfYear), nil
	case 'H':
		return numericField(FieldHour, length, length, getHour), nil
	case 'm':
		return numericField(FieldMinute, length, length, getMinute), nil
	case 's':
		return numericField(FieldSecond, length, length, getSecond), nil
	case 'S':
		return FractionalField{MinDigits: length, MaxDigits: length}, nil
	case 'V':
		return ZoneIDNode{}, nil
	case 'X':
		return OffsetNode{Kind: OffsetX, Length: length}, nil
	case 'x':
		return OffsetNode{Kind: OffsetLowerX, Length: length}, nil
	case 'Z':
		if length == 4 {
			return localeDependent()
		}
		return OffsetNode{Kind: OffsetZ, Length: length}, nil
	case 'y', 'Y', 'G', 'E', 'e', 'c', 'a', 'z', 'v', 'O', 'Q', 'q':
		return localeDependent()
	default:
		return unsupported()
	}
}

func yearField(minDigits int) node {
	return NumericField{Field: FieldYear, MinWidth: minDigits, MaxWidth: 19, Sign: SignNegativeOnly, PlusOnOverflow: minDigits >= 4, get: getYear}
}

func numericField(f Field, minWidth, maxWidth int, get func(DateTimeComponents) (int, bool)) node {
	return NumericField{Field: f, MinWidth: minWidth, MaxWidth: maxWidth, Sign: SignNever, get: get}
}

func getYear(c DateTimeComponents) (int, bool)       { return c.Year, c.HasYear }
func getMonth(c DateTimeComponents) (int, bool)      { return c.Month, c.HasMonth }
func getDay(c DateTimeComponents) (int, bool)        { return c.Day, c.HasDay }
func getDayOfYear(c DateTimeComponents) (int, bool)  { return c.DayOfYear, c.HasDayOfYear }
func getHour(c DateTimeComponents) (int, bool)       { return c.Hour, c.HasHour }
func getMinute(c DateTimeComponents) (int, bool)     { return c.Minute, c.HasMinute }
func getSecond(c DateTimeComponents) (int, bool)     { return c.Second, c.HasSecond }
