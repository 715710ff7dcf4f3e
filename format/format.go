package format

import (
	"strings"

	"github.com/go-timecore/timecore"
)

// Format is a compiled pattern: a flat vector of nodes executed left to
// right for both formatting and parsing.
type Format struct {
	nodes []node
}

// FormatComponents renders c against f, failing with MissingField if a
// required (non-Optional) node needs a field c does not have set.
func (f *Format) FormatComponents(c DateTimeComponents) (string, error) {
	var sb strings.Builder
	for _, n := range f.nodes {
		if err := n.format(&sb, c); err != nil {
			return "", err
		}
	}
	return sb.String(), nil
}

// ParseComponents runs f over s, returning the populated field bag. The
// entire input must be consumed; leftover characters are reported as
// InvalidFormat.
func (f *Format) ParseComponents(s string) (DateTimeComponents, error) {
	const op = "Format.Parse"
	var c DateTimeComponents
	pos := 0
	for _, n := range f.nodes {
		next, err := n.parse(s, pos, &c)
		if err != nil {
			return DateTimeComponents{}, err
		}
		pos = next
	}
	if pos != len(s) {
		return DateTimeComponents{}, timecore.NewError(op, timecore.InvalidFormat, "unconsumed input %q", s[pos:])
	}
	return c, nil
}
