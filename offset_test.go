package timecore

import (
	"testing"
)

func TestParseUtcOffset(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"Z", 0},
		{"z", 0},
		{"+00", 0},
		{"+5", 5 * 3600},
		{"+05", 5 * 3600},
		{"-05", -5 * 3600},
		{"+0530", 5*3600 + 30*60},
		{"+05:30", 5*3600 + 30*60},
		{"-0530", -(5*3600 + 30*60)},
		{"+053015", 5*3600 + 30*60 + 15},
		{"+05:30:15", 5*3600 + 30*60 + 15},
		{"+18", 18 * 3600},
	}
	for _, tt := range tests {
		got, err := ParseUtcOffset(tt.in)
		if err != nil {
			t.Errorf("ParseUtcOffset(%q) error: %v", tt.in, err)
			continue
		}
		if got.TotalSeconds() != tt.want {
			t.Errorf("ParseUtcOffset(%q) = %d, want %d", tt.in, got.TotalSeconds(), tt.want)
		}
	}
}

func TestParseUtcOffset_Invalid(t *testing.T) {
	for _, in := range []string{"", "x", "+", "+1900", "+18:01", "+05:60", "++05"} {
		if _, err := ParseUtcOffset(in); err == nil {
			t.Errorf("ParseUtcOffset(%q) expected an error", in)
		} else if !IsKind(err, InvalidFormat) {
			t.Errorf("ParseUtcOffset(%q) error kind = %v, want InvalidFormat", in, err)
		}
	}
}

func TestUtcOffset_String(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{0, "Z"},
		{5 * 3600, "+05"},
		{-5 * 3600, "-05"},
		{5*3600 + 30*60, "+05:30"},
		{5*3600 + 30*60 + 15, "+05:30:15"},
	}
	for _, tt := range tests {
		o, err := NewUtcOffset(tt.seconds)
		if err != nil {
			t.Fatalf("NewUtcOffset(%d): %v", tt.seconds, err)
		}
		if got := o.String(); got != tt.want {
			t.Errorf("UtcOffset{%d}.String() = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}

func TestNewUtcOffset_OutOfRange(t *testing.T) {
	if _, err := NewUtcOffset(18*3600 + 1); err == nil {
		t.Fatal("expected an error for offset beyond +18h")
	}
}

func TestUtcOffsetOfHMS_MixedSignRejected(t *testing.T) {
	if _, err := UtcOffsetOfHMS(1, -30, 0); err == nil {
		t.Fatal("expected an error for mixed-sign components")
	}
}

func TestUtcOffsetOfHMS(t *testing.T) {
	o, err := UtcOffsetOfHMS(-5, -30, -15)
	if err != nil {
		t.Fatalf("UtcOffsetOfHMS: %v", err)
	}
	want := -(5*3600 + 30*60 + 15)
	if o.TotalSeconds() != want {
		t.Errorf("UtcOffsetOfHMS(-5,-30,-15) = %d, want %d", o.TotalSeconds(), want)
	}
}
