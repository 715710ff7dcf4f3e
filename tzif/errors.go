package tzif

import "errors"

// ErrInvalidFormat is returned when the byte stream does not match the
// TZif grammar (bad magic, truncated body, malformed footer newline).
var ErrInvalidFormat = errors.New("tzif: invalid format")

// ErrUnsupportedVersion is returned for a header version byte this package
// does not understand (only V1/V2/V3 are valid).
var ErrUnsupportedVersion = errors.New("tzif: unsupported version")
