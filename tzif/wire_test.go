package tzif

import (
	"bytes"
	"testing"
)

func TestHeader_WriteReadRoundTrip(t *testing.T) {
	h := Header{
		Version:  V1,
		Isutcnt:  0,
		Isstdcnt: 0,
		Leapcnt:  0,
		Timecnt:  2,
		Typecnt:  2,
		Charcnt:  4,
	}
	var buf bytes.Buffer
	if err := h.Write(&buf); err != nil {
		t.Fatalf("Write: %v", err)
	}
	got, err := ReadHeader(&buf)
	if err != nil {
		t.Fatalf("ReadHeader: %v", err)
	}
	if got != h {
		t.Errorf("round trip = %+v, want %+v", got, h)
	}
}

func TestReadHeader_RejectsBadMagic(t *testing.T) {
	buf := bytes.NewBufferString("NOPE")
	if _, err := ReadHeader(buf); err == nil {
		t.Fatal("expected an error for bad magic")
	}
}

func TestReadHeader_RejectsUnsupportedVersion(t *testing.T) {
	h := Header{Version: 0x99}
	var buf bytes.Buffer
	if err := h.Write(&buf); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if _, err := ReadHeader(&buf); err == nil {
		t.Fatal("expected an error for unsupported version")
	}
}

func TestV1Body_WriteReadRoundTrip(t *testing.T) {
	h := Header{Version: V1, Timecnt: 2, Typecnt: 2, Charcnt: 4}
	b := V1Body{
		TransitionTimes: []int32{-100, 100},
		TransitionTypes: []uint8{0, 1},
		LocalTimeTypes: []LocalTimeType{
			{Utoff: 0, Dst: false, Idx: 0},
			{Utoff: 3600, Dst: true, Idx: 2},
		},
		Designations: []byte("A\x00B\x00"),
	}
	var buf bytes.Buffer
	if err := b.Write(&buf); err != nil {
		t.Fatalf("Write: %v", err)
	}
	got, err := ReadV1Body(&buf, h)
	if err != nil {
		t.Fatalf("ReadV1Body: %v", err)
	}
	if !bytes.Equal(got.Designations, b.Designations) {
		t.Errorf("Designations = %v, want %v", got.Designations, b.Designations)
	}
	if len(got.LocalTimeTypes) != 2 || got.LocalTimeTypes[1].Utoff != 3600 || !got.LocalTimeTypes[1].Dst {
		t.Errorf("LocalTimeTypes = %+v", got.LocalTimeTypes)
	}
	if len(got.TransitionTimes) != 2 || got.TransitionTimes[0] != -100 || got.TransitionTimes[1] != 100 {
		t.Errorf("TransitionTimes = %v", got.TransitionTimes)
	}
}

func TestFooter_WriteReadRoundTrip(t *testing.T) {
	f := Footer{TZString: []byte("EST5EDT,M3.2.0,M11.1.0")}
	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatalf("Write: %v", err)
	}
	got, err := ReadFooter(&buf)
	if err != nil {
		t.Fatalf("ReadFooter: %v", err)
	}
	if !bytes.Equal(got.TZString, f.TZString) {
		t.Errorf("TZString = %q, want %q", got.TZString, f.TZString)
	}
}

func TestReadFooter_RejectsMissingLeadingNewline(t *testing.T) {
	buf := bytes.NewBufferString("EST5EDT\n")
	if _, err := ReadFooter(buf); err == nil {
		t.Fatal("expected an error for a missing leading newline")
	}
}

func TestDesignation(t *testing.T) {
	table := []byte("EST\x00EDT\x00")
	if got, want := Designation(table, 0), "EST"; got != want {
		t.Errorf("Designation(0) = %q, want %q", got, want)
	}
	if got, want := Designation(table, 4), "EDT"; got != want {
		t.Errorf("Designation(4) = %q, want %q", got, want)
	}
	if got := Designation(table, 200); got != "" {
		t.Errorf("Designation(200) = %q, want empty string for out-of-range idx", got)
	}
}

func TestVersion_String(t *testing.T) {
	tests := []struct {
		v    Version
		want string
	}{
		{V1, "V1 (0x00)"},
		{V2, "V2 (0x32)"},
		{V3, "V3 (0x33)"},
	}
	for _, tt := range tests {
		if got := tt.v.String(); got != tt.want {
			t.Errorf("%v.String() = %q, want %q", tt.v, got, tt.want)
		}
	}
}
