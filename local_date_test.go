package timecore

import "testing"

func TestNewLocalDate_InvalidDay(t *testing.T) {
	if _, err := NewLocalDate(2007, February, 29); err == nil {
		t.Fatal("expected an error for 2007-02-29 (not a leap year)")
	}
	if _, err := NewLocalDate(2008, February, 29); err != nil {
		t.Fatalf("2008-02-29 should be valid: %v", err)
	}
}

func TestLocalDate_EpochDayRoundTrip(t *testing.T) {
	d := MustLocalDate(2020, December, 9)
	back, err := LocalDateOfEpochDay(d.EpochDay())
	if err != nil {
		t.Fatalf("LocalDateOfEpochDay: %v", err)
	}
	if !back.Equal(d) {
		t.Errorf("round trip = %v, want %v", back, d)
	}
}

func TestLocalDate_EpochDay_UnixEpoch(t *testing.T) {
	d := MustLocalDate(1970, January, 1)
	if d.EpochDay() != 0 {
		t.Errorf("EpochDay() = %d, want 0", d.EpochDay())
	}
}

func TestLocalDate_DayOfWeek(t *testing.T) {
	// 2024-03-10 is a Sunday.
	d := MustLocalDate(2024, March, 10)
	if got := d.DayOfWeek(); got != Sunday {
		t.Errorf("DayOfWeek() = %v, want Sunday", got)
	}
}

func TestLocalDate_PlusMonths_ClampsDayOfMonth(t *testing.T) {
	d := MustLocalDate(2024, January, 31)
	got, err := d.PlusMonths(1)
	if err != nil {
		t.Fatalf("PlusMonths: %v", err)
	}
	want := MustLocalDate(2024, February, 29)
	if !got.Equal(want) {
		t.Errorf("PlusMonths(1) = %v, want %v", got, want)
	}
}

func TestLocalDate_PlusYears_ClampsFeb29(t *testing.T) {
	d := MustLocalDate(2024, February, 29)
	got, err := d.PlusYears(1)
	if err != nil {
		t.Fatalf("PlusYears: %v", err)
	}
	want := MustLocalDate(2025, February, 28)
	if !got.Equal(want) {
		t.Errorf("PlusYears(1) = %v, want %v", got, want)
	}
}

func TestLocalDate_PeriodUntil(t *testing.T) {
	a := MustLocalDate(2020, January, 31)
	b := MustLocalDate(2021, March, 15)
	p := a.PeriodUntil(b)
	if p.Years != 1 || p.Months != 1 || p.Days != 15 {
		t.Errorf("PeriodUntil = %+v, want {1 1 15}", p)
	}
}

func TestLocalDate_Compare(t *testing.T) {
	a := MustLocalDate(2024, January, 1)
	b := MustLocalDate(2024, January, 2)
	if !a.Before(b) || !b.After(a) || a.Compare(a) != 0 {
		t.Error("Compare ordering broken")
	}
}

func TestLocalDate_String(t *testing.T) {
	if got, want := MustLocalDate(2024, March, 9).String(), "2024-03-09"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
