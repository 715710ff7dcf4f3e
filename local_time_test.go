package timecore

import "testing"

func TestNewLocalTime_RangeChecks(t *testing.T) {
	if _, err := NewLocalTime(24, 0, 0, 0); err == nil {
		t.Error("expected an error for hour 24")
	}
	if _, err := NewLocalTime(0, 60, 0, 0); err == nil {
		t.Error("expected an error for minute 60")
	}
	if _, err := NewLocalTime(0, 0, 60, 0); err == nil {
		t.Error("expected an error for second 60")
	}
	if _, err := NewLocalTime(0, 0, 0, 1_000_000_000); err == nil {
		t.Error("expected an error for nanosecond 1e9")
	}
	if _, err := NewLocalTime(23, 59, 59, 999_999_999); err != nil {
		t.Errorf("23:59:59.999999999 should be valid: %v", err)
	}
}

func TestLocalTime_NanosecondOfDayRoundTrip(t *testing.T) {
	want := MustLocalTime(13, 45, 30, 123_456_789)
	got := LocalTimeOfNanosecondOfDay(want.NanosecondOfDay())
	if !got.Equal(want) {
		t.Errorf("round trip = %v, want %v", got, want)
	}
}

func TestLocalTime_Accessors(t *testing.T) {
	lt := MustLocalTime(13, 45, 30, 123_456_789)
	if lt.Hour() != 13 || lt.Minute() != 45 || lt.Second() != 30 || lt.Nanosecond() != 123_456_789 {
		t.Errorf("accessors = %d %d %d %d, want 13 45 30 123456789", lt.Hour(), lt.Minute(), lt.Second(), lt.Nanosecond())
	}
}

func TestLocalTime_Compare(t *testing.T) {
	a := MustLocalTime(1, 0, 0, 0)
	b := MustLocalTime(1, 0, 0, 1)
	if !a.Before(b) || !b.After(a) || a.Compare(a) != 0 {
		t.Error("Compare ordering broken")
	}
	if !Midnight.Equal(MustLocalTime(0, 0, 0, 0)) {
		t.Error("Midnight should equal 00:00:00.000000000")
	}
}

func TestLocalTime_String(t *testing.T) {
	tests := []struct {
		lt   LocalTime
		want string
	}{
		{Midnight, "00:00"},
		{MustLocalTime(9, 5, 0, 0), "09:05"},
		{MustLocalTime(9, 5, 30, 0), "09:05:30"},
		{MustLocalTime(9, 5, 30, 120_000_000), "09:05:30.120"},
		{MustLocalTime(9, 5, 30, 123_456_789), "09:05:30.123456789"},
	}
	for _, tt := range tests {
		if got := tt.lt.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestLocalTime_PlusNanosecondsWithDayOverflow(t *testing.T) {
	t1 := MustLocalTime(23, 0, 0, 0)
	got, days := t1.PlusNanosecondsWithDayOverflow(2 * 3600 * 1_000_000_000)
	if days != 1 {
		t.Errorf("days = %d, want 1", days)
	}
	if want := MustLocalTime(1, 0, 0, 0); !got.Equal(want) {
		t.Errorf("got = %v, want %v", got, want)
	}
}

func TestLocalTime_PlusNanosecondsWithDayOverflow_Negative(t *testing.T) {
	t1 := MustLocalTime(0, 30, 0, 0)
	got, days := t1.PlusNanosecondsWithDayOverflow(-3600 * 1_000_000_000)
	if days != -1 {
		t.Errorf("days = %d, want -1", days)
	}
	if want := MustLocalTime(23, 30, 0, 0); !got.Equal(want) {
		t.Errorf("got = %v, want %v", got, want)
	}
}
