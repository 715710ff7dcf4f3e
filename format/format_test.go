package format

import (
	"testing"

	"github.com/go-timecore/timecore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestISODate_RoundTrip(t *testing.T) {
	c := DateTimeComponents{Year: 2024, HasYear: true, Month: 3, HasMonth: true, Day: 9, HasDay: true}
	s, err := ISODate.FormatComponents(c)
	require.NoError(t, err)
	assert.Equal(t, "2024-03-09", s)

	parsed, err := ISODate.ParseComponents(s)
	require.NoError(t, err)
	assert.Equal(t, c, parsed)
}

func TestISODate_NegativeYear(t *testing.T) {
	c := DateTimeComponents{Year: -44, HasYear: true, Month: 1, HasMonth: true, Day: 1, HasDay: true}
	s, err := ISODate.FormatComponents(c)
	require.NoError(t, err)
	assert.Equal(t, "-0044-01-01", s)
}

func TestISOTime_OmitsZeroSecondsAndFraction(t *testing.T) {
	c := DateTimeComponents{Hour: 9, HasHour: true, Minute: 16, HasMinute: true}
	s, err := ISOTime.FormatComponents(c)
	require.NoError(t, err)
	assert.Equal(t, "09:16", s)
}

func TestISOTime_WithFraction(t *testing.T) {
	c := DateTimeComponents{
		Hour: 9, HasHour: true,
		Minute: 16, HasMinute: true,
		Second: 56, HasSecond: true,
		Nanosecond: 124000, HasNanosecond: true,
	}
	s, err := ISOTime.FormatComponents(c)
	require.NoError(t, err)
	assert.Equal(t, "09:16:56.000124", s)

	parsed, err := ISOTime.ParseComponents(s)
	require.NoError(t, err)
	assert.Equal(t, c, parsed)
}

func TestISODateTime_ParsesLowercaseT(t *testing.T) {
	parsed, err := ISODateTime.ParseComponents("2024-03-09t09:16")
	require.NoError(t, err)
	assert.Equal(t, 2024, parsed.Year)
	assert.Equal(t, 9, parsed.Hour)
}

func TestISODateTime_FormatsUppercaseT(t *testing.T) {
	c := DateTimeComponents{
		Year: 2024, HasYear: true, Month: 3, HasMonth: true, Day: 9, HasDay: true,
		Hour: 9, HasHour: true, Minute: 16, HasMinute: true,
	}
	s, err := ISODateTime.FormatComponents(c)
	require.NoError(t, err)
	assert.Equal(t, "2024-03-09T09:16", s)
}

func TestISOOffset_Zero(t *testing.T) {
	c := DateTimeComponents{OffsetSeconds: 0, HasOffsetSeconds: true}
	s, err := ISOOffset.FormatComponents(c)
	require.NoError(t, err)
	assert.Equal(t, "Z", s)
}

func TestISOOffset_NonzeroWithSeconds(t *testing.T) {
	c := DateTimeComponents{OffsetSeconds: -(5*3600 + 30*60 + 15), HasOffsetSeconds: true}
	s, err := ISOOffset.FormatComponents(c)
	require.NoError(t, err)
	assert.Equal(t, "-05:30:15", s)

	parsed, err := ISOOffset.ParseComponents(s)
	require.NoError(t, err)
	assert.Equal(t, c, parsed)
}

func TestISODateTimeOffset_RoundTrip(t *testing.T) {
	c := DateTimeComponents{
		Year: 2020, HasYear: true, Month: 12, HasMonth: true, Day: 9, HasDay: true,
		Hour: 9, HasHour: true, Minute: 16, HasMinute: true, Second: 56, HasSecond: true,
		Nanosecond: 124000, HasNanosecond: true,
		OffsetSeconds: 0, HasOffsetSeconds: true,
	}
	s, err := ISODateTimeOffset.FormatComponents(c)
	require.NoError(t, err)
	assert.Equal(t, "2020-12-09T09:16:56.000124Z", s)
}

func TestISOInstant_OmitsOffsetMinutesWhenZero(t *testing.T) {
	c := DateTimeComponents{
		Year: 2024, HasYear: true, Month: 1, HasMonth: true, Day: 1, HasDay: true,
		Hour: 0, HasHour: true, Minute: 0, HasMinute: true,
		OffsetSeconds: 3600, HasOffsetSeconds: true,
	}
	s, err := ISOInstant.FormatComponents(c)
	require.NoError(t, err)
	assert.Equal(t, "2024-01-01T00:00+01", s)
}

func TestISOInstant_IncludesOffsetMinutesWhenNonzero(t *testing.T) {
	c := DateTimeComponents{
		Year: 2024, HasYear: true, Month: 1, HasMonth: true, Day: 1, HasDay: true,
		Hour: 0, HasHour: true, Minute: 0, HasMinute: true,
		OffsetSeconds: 5*3600 + 30*60, HasOffsetSeconds: true,
	}
	s, err := ISOInstant.FormatComponents(c)
	require.NoError(t, err)
	assert.Equal(t, "2024-01-01T00:00+0530", s)
}

func TestParseComponents_RejectsTrailingInput(t *testing.T) {
	_, err := ISODate.ParseComponents("2024-03-09XYZ")
	require.Error(t, err)
	assert.True(t, timecore.IsKind(err, timecore.InvalidFormat))
}

func TestParseComponents_RejectsFieldConflict(t *testing.T) {
	f, err := Compile("uuuu-MM-dd uuuu")
	require.NoError(t, err)
	_, err = f.ParseComponents("2024-03-09 2025")
	require.Error(t, err)
	assert.True(t, timecore.IsKind(err, timecore.Conflict))
}
