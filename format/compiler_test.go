package format

import (
	"testing"

	"github.com/go-timecore/timecore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompile_LiteralsAndQuotes(t *testing.T) {
	f, err := Compile("uuuu'T'HH:mm")
	require.NoError(t, err)
	c := DateTimeComponents{Year: 2024, HasYear: true, Hour: 9, HasHour: true, Minute: 5, HasMinute: true}
	s, err := f.FormatComponents(c)
	require.NoError(t, err)
	assert.Equal(t, "2024T09:05", s)
}

func TestCompile_EscapedQuote(t *testing.T) {
	f, err := Compile("HH''mm")
	require.NoError(t, err)
	c := DateTimeComponents{Hour: 1, HasHour: true, Minute: 2, HasMinute: true}
	s, err := f.FormatComponents(c)
	require.NoError(t, err)
	assert.Equal(t, "01'02", s)
}

func TestCompile_OptionalGroup(t *testing.T) {
	f, err := Compile("HH:mm[:ss]")
	require.NoError(t, err)

	s, err := f.FormatComponents(DateTimeComponents{Hour: 9, HasHour: true, Minute: 5, HasMinute: true})
	require.NoError(t, err)
	assert.Equal(t, "09:05", s)

	s, err = f.FormatComponents(DateTimeComponents{Hour: 9, HasHour: true, Minute: 5, HasMinute: true, Second: 30, HasSecond: true})
	require.NoError(t, err)
	assert.Equal(t, "09:05:30", s)
}

func TestCompile_NestedOptionalGroups(t *testing.T) {
	f, err := Compile("HH:mm[:ss[.SSS]]")
	require.NoError(t, err)

	parsed, err := f.ParseComponents("09:05:30.123")
	require.NoError(t, err)
	assert.Equal(t, 30, parsed.Second)
	assert.Equal(t, 123000000, parsed.Nanosecond)

	parsed, err = f.ParseComponents("09:05")
	require.NoError(t, err)
	assert.False(t, parsed.HasSecond)
}

func TestCompile_PaddingPrefix(t *testing.T) {
	f, err := Compile("ppM")
	require.NoError(t, err)
	s, err := f.FormatComponents(DateTimeComponents{Month: 3, HasMonth: true})
	require.NoError(t, err)
	assert.Equal(t, "03", s)
}

func TestCompile_PaddingPrefixWidensExistingMinWidth(t *testing.T) {
	f, err := Compile("ppppd")
	require.NoError(t, err)
	s, err := f.FormatComponents(DateTimeComponents{Day: 7, HasDay: true})
	require.NoError(t, err)
	assert.Equal(t, "0007", s)
}

func TestCompile_PaddingWithoutDirectiveFails(t *testing.T) {
	_, err := Compile("pp-")
	require.Error(t, err)
	assert.True(t, timecore.IsKind(err, timecore.InvalidFormat))
}

func TestCompile_UnsupportedDirective(t *testing.T) {
	_, err := Compile("uuQ")
	require.Error(t, err)
	assert.True(t, timecore.IsKind(err, timecore.UnsupportedDirective))
}

func TestCompile_LocaleDependentDirective(t *testing.T) {
	_, err := Compile("MMMM")
	require.Error(t, err)
	assert.True(t, timecore.IsKind(err, timecore.LocaleDependentDirective))

	_, err = Compile("yyyy")
	require.Error(t, err)
	assert.True(t, timecore.IsKind(err, timecore.LocaleDependentDirective))
}

func TestCompile_UnterminatedOptionalGroup(t *testing.T) {
	_, err := Compile("HH:mm[:ss")
	require.Error(t, err)
	assert.True(t, timecore.IsKind(err, timecore.InvalidFormat))
}

func TestCompile_UnmatchedBracket(t *testing.T) {
	_, err := Compile("HH:mm]")
	require.Error(t, err)
	assert.True(t, timecore.IsKind(err, timecore.InvalidFormat))
}

func TestCompile_OffsetDirectives(t *testing.T) {
	f, err := Compile("XXXXX")
	require.NoError(t, err)
	s, err := f.FormatComponents(DateTimeComponents{OffsetSeconds: -19800, HasOffsetSeconds: true})
	require.NoError(t, err)
	assert.Equal(t, "-05:30", s)

	f, err = Compile("ZZZZZ")
	require.NoError(t, err)
	s, err = f.FormatComponents(DateTimeComponents{OffsetSeconds: 0, HasOffsetSeconds: true})
	require.NoError(t, err)
	assert.Equal(t, "Z", s)
}

func TestCompile_ZoneIDDirective(t *testing.T) {
	f, err := Compile("VV")
	require.NoError(t, err)
	s, err := f.FormatComponents(DateTimeComponents{ZoneID: "America/Chicago", HasZoneID: true})
	require.NoError(t, err)
	assert.Equal(t, "America/Chicago", s)

	parsed, err := f.ParseComponents("Europe/Berlin")
	require.NoError(t, err)
	assert.Equal(t, "Europe/Berlin", parsed.ZoneID)
}
