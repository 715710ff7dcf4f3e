package arith

import (
	"math"
	"testing"
)

func TestAddInt64_Overflow(t *testing.T) {
	if _, overflow := AddInt64(math.MaxInt64, 1); !overflow {
		t.Error("expected overflow for MaxInt64+1")
	}
	if _, overflow := AddInt64(math.MinInt64, -1); !overflow {
		t.Error("expected overflow for MinInt64-1")
	}
	sum, overflow := AddInt64(2, 3)
	if overflow || sum != 5 {
		t.Errorf("AddInt64(2,3) = %d, %v, want 5, false", sum, overflow)
	}
}

func TestMulInt64_Overflow(t *testing.T) {
	if _, overflow := MulInt64(math.MaxInt64, 2); !overflow {
		t.Error("expected overflow for MaxInt64*2")
	}
	product, overflow := MulInt64(6, 7)
	if overflow || product != 42 {
		t.Errorf("MulInt64(6,7) = %d, %v, want 42, false", product, overflow)
	}
	product, overflow = MulInt64(0, math.MaxInt64)
	if overflow || product != 0 {
		t.Errorf("MulInt64(0, MaxInt64) = %d, %v, want 0, false", product, overflow)
	}
}

func TestFloorDivAndFloorMod(t *testing.T) {
	tests := []struct{ x, y, wantDiv, wantMod int64 }{
		{7, 2, 3, 1},
		{-7, 2, -4, 1},
		{7, -2, -4, -1},
		{-7, -2, 3, -1},
		{0, 5, 0, 0},
	}
	for _, tt := range tests {
		if got := FloorDiv(tt.x, tt.y); got != tt.wantDiv {
			t.Errorf("FloorDiv(%d,%d) = %d, want %d", tt.x, tt.y, got, tt.wantDiv)
		}
		if got := FloorMod(tt.x, tt.y); got != tt.wantMod {
			t.Errorf("FloorMod(%d,%d) = %d, want %d", tt.x, tt.y, got, tt.wantMod)
		}
		if FloorDiv(tt.x, tt.y)*tt.y+FloorMod(tt.x, tt.y) != tt.x {
			t.Errorf("FloorDiv/FloorMod identity broken for (%d,%d)", tt.x, tt.y)
		}
	}
}

func TestIsLeapYear(t *testing.T) {
	tests := []struct {
		year int
		want bool
	}{
		{2000, true}, {1900, false}, {2024, true}, {2023, false}, {2400, true},
	}
	for _, tt := range tests {
		if got := IsLeapYear(tt.year); got != tt.want {
			t.Errorf("IsLeapYear(%d) = %v, want %v", tt.year, got, tt.want)
		}
	}
}

func TestMonthLength(t *testing.T) {
	if got := MonthLength(2024, 2); got != 29 {
		t.Errorf("MonthLength(2024,2) = %d, want 29", got)
	}
	if got := MonthLength(2023, 2); got != 28 {
		t.Errorf("MonthLength(2023,2) = %d, want 28", got)
	}
	if got := MonthLength(2024, 4); got != 30 {
		t.Errorf("MonthLength(2024,4) = %d, want 30", got)
	}
	if got := MonthLength(2024, 1); got != 31 {
		t.Errorf("MonthLength(2024,1) = %d, want 31", got)
	}
}

func TestDayOfYear(t *testing.T) {
	if got := DayOfYear(2024, 1, 1); got != 1 {
		t.Errorf("DayOfYear(2024,1,1) = %d, want 1", got)
	}
	if got := DayOfYear(2024, 3, 1); got != 61 { // Jan(31)+Feb(29, leap)+1
		t.Errorf("DayOfYear(2024,3,1) = %d, want 61", got)
	}
	if got := DayOfYear(2023, 3, 1); got != 60 { // Jan(31)+Feb(28)+1
		t.Errorf("DayOfYear(2023,3,1) = %d, want 60", got)
	}
	if got := DayOfYear(2024, 12, 31); got != 366 {
		t.Errorf("DayOfYear(2024,12,31) = %d, want 366", got)
	}
}

func TestEpochDayFromYMD_UnixEpoch(t *testing.T) {
	if got := EpochDayFromYMD(1970, 1, 1); got != 0 {
		t.Errorf("EpochDayFromYMD(1970,1,1) = %d, want 0", got)
	}
}

func TestEpochDayFromYMD_KnownDates(t *testing.T) {
	tests := []struct {
		year, month, day int
		want             int64
	}{
		{1970, 1, 2, 1},
		{1969, 12, 31, -1},
		{2000, 3, 1, 11017},
		{2024, 2, 29, 19782},
	}
	for _, tt := range tests {
		if got := EpochDayFromYMD(tt.year, tt.month, tt.day); got != tt.want {
			t.Errorf("EpochDayFromYMD(%d,%d,%d) = %d, want %d", tt.year, tt.month, tt.day, got, tt.want)
		}
	}
}

func TestYMDFromEpochDay_RoundTrip(t *testing.T) {
	tests := []struct{ year, month, day int }{
		{1970, 1, 1}, {1969, 12, 31}, {2024, 2, 29}, {2000, 3, 1}, {1, 1, 1}, {-1, 12, 31},
	}
	for _, tt := range tests {
		ed := EpochDayFromYMD(tt.year, tt.month, tt.day)
		y, m, d := YMDFromEpochDay(ed)
		if y != tt.year || m != tt.month || d != tt.day {
			t.Errorf("round trip for (%d,%d,%d) via epoch day %d = (%d,%d,%d)", tt.year, tt.month, tt.day, ed, y, m, d)
		}
	}
}

func TestDayOfWeekFromEpochDay(t *testing.T) {
	// 1970-01-01 (epoch day 0) was a Thursday (ISO weekday 4).
	if got := DayOfWeekFromEpochDay(0); got != 4 {
		t.Errorf("DayOfWeekFromEpochDay(0) = %d, want 4", got)
	}
	// 2024-03-10 (a Sunday) is epoch day 19792.
	if got := DayOfWeekFromEpochDay(19792); got != 7 {
		t.Errorf("DayOfWeekFromEpochDay(19792) = %d, want 7", got)
	}
}
