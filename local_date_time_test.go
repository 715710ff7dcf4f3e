package timecore

import "testing"

func mustLDT(year int, month Month, day, hour, minute, second, nanosecond int) LocalDateTime {
	return NewLocalDateTime(MustLocalDate(year, month, day), MustLocalTime(hour, minute, second, nanosecond))
}

func TestLocalDateTime_Accessors(t *testing.T) {
	ldt := mustLDT(2024, March, 9, 13, 45, 30, 1)
	if ldt.Year() != 2024 || ldt.Month() != March || ldt.DayOfMonth() != 9 {
		t.Errorf("date accessors wrong: %v", ldt)
	}
	if ldt.Hour() != 13 || ldt.Minute() != 45 || ldt.Second() != 30 || ldt.Nanosecond() != 1 {
		t.Errorf("time accessors wrong: %v", ldt)
	}
	if ldt.DayOfWeek() != Saturday {
		t.Errorf("DayOfWeek() = %v, want Saturday", ldt.DayOfWeek())
	}
}

func TestLocalDateTime_Compare(t *testing.T) {
	a := mustLDT(2024, January, 1, 12, 0, 0, 0)
	b := mustLDT(2024, January, 1, 13, 0, 0, 0)
	c := mustLDT(2024, January, 2, 0, 0, 0, 0)
	if !a.Before(b) || !b.Before(c) || !c.After(a) || a.Compare(a) != 0 {
		t.Error("Compare ordering broken")
	}
}

func TestLocalDateTime_String(t *testing.T) {
	ldt := mustLDT(2024, March, 9, 13, 45, 0, 0)
	if got, want := ldt.String(), "2024-03-09T13:45"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestLocalDateTime_PlusNanoseconds_CarriesIntoDate(t *testing.T) {
	ldt := mustLDT(2024, January, 1, 23, 30, 0, 0)
	got, err := ldt.PlusNanoseconds(3600 * 1_000_000_000)
	if err != nil {
		t.Fatalf("PlusNanoseconds: %v", err)
	}
	want := mustLDT(2024, January, 2, 0, 30, 0, 0)
	if !got.Equal(want) {
		t.Errorf("got = %v, want %v", got, want)
	}
}

func TestLocalDateTime_PlusMonths_KeepsTime(t *testing.T) {
	ldt := mustLDT(2024, January, 31, 8, 0, 0, 0)
	got, err := ldt.PlusMonths(1)
	if err != nil {
		t.Fatalf("PlusMonths: %v", err)
	}
	want := mustLDT(2024, February, 29, 8, 0, 0, 0)
	if !got.Equal(want) {
		t.Errorf("got = %v, want %v", got, want)
	}
}

func TestLocalDateTime_UntilNanoseconds(t *testing.T) {
	a := mustLDT(2024, January, 1, 23, 0, 0, 0)
	b := mustLDT(2024, January, 2, 1, 0, 0, 0)
	want := int64(2 * 3600 * 1_000_000_000)
	if got := a.UntilNanoseconds(b); got != want {
		t.Errorf("UntilNanoseconds = %d, want %d", got, want)
	}
}
