package timecore

import (
	"bytes"
	"testing"

	"github.com/go-timecore/timecore/tzif"
)

// fixedOffsetTzifBytes builds a minimal single-offset TZif V1 stream, enough
// to decode into a Region zone with one local time type and no transitions.
func fixedOffsetTzifBytes(t *testing.T, designation string, utoff int32) []byte {
	t.Helper()
	desig := append([]byte(designation), 0)
	h := tzif.Header{Version: tzif.V1, Timecnt: 0, Typecnt: 1, Charcnt: uint32(len(desig))}
	b := tzif.V1Body{
		LocalTimeTypes: []tzif.LocalTimeType{{Utoff: utoff, Dst: false, Idx: 0}},
		Designations:   desig,
	}
	var buf bytes.Buffer
	if err := h.Write(&buf); err != nil {
		t.Fatalf("header.Write: %v", err)
	}
	if err := b.Write(&buf); err != nil {
		t.Fatalf("body.Write: %v", err)
	}
	return buf.Bytes()
}

func TestRegistry_Of_FixedOffsetShortCircuitsHost(t *testing.T) {
	host := &MemoryHost{}
	r := NewRegistry(host)
	z, err := r.Of("+05:30")
	if err != nil {
		t.Fatalf("Of: %v", err)
	}
	if !z.IsFixed() {
		t.Error("expected a fixed zone")
	}
	if got := z.OffsetAt(Instant{}); got.TotalSeconds() != 5*3600+30*60 {
		t.Errorf("offset = %d, want %d", got.TotalSeconds(), 5*3600+30*60)
	}
}

func TestRegistry_Of_UTCAndZ(t *testing.T) {
	host := &MemoryHost{}
	r := NewRegistry(host)
	for _, id := range []string{"UTC", "Z"} {
		z, err := r.Of(id)
		if err != nil {
			t.Fatalf("Of(%q): %v", id, err)
		}
		if z.OffsetAt(Instant{}) != ZeroOffset {
			t.Errorf("Of(%q) offset = %v, want zero", id, z.OffsetAt(Instant{}))
		}
	}
}

func TestRegistry_Of_LoadsAndCachesRegionZone(t *testing.T) {
	loads := 0
	host := &recordingHost{
		MemoryHost: MemoryHost{
			Zones: map[string][]byte{
				"Region/Test": fixedOffsetTzifBytes(t, "TST", 3600),
			},
		},
		onLookup: func() { loads++ },
	}
	r := NewRegistry(host)

	z1, err := r.Of("Region/Test")
	if err != nil {
		t.Fatalf("Of: %v", err)
	}
	if z1.IsFixed() {
		t.Error("expected a region zone")
	}
	if got := z1.OffsetAt(Instant{}); got.TotalSeconds() != 3600 {
		t.Errorf("offset = %d, want 3600", got.TotalSeconds())
	}

	if _, err := r.Of("Region/Test"); err != nil {
		t.Fatalf("Of (cached): %v", err)
	}
	if loads != 1 {
		t.Errorf("host was looked up %d times, want 1 (second call should hit the cache)", loads)
	}
}

func TestRegistry_Of_UnknownZone(t *testing.T) {
	host := &MemoryHost{}
	r := NewRegistry(host)
	if _, err := r.Of("Nowhere/Special"); err == nil || !IsKind(err, UnknownZone) {
		t.Errorf("Of(unknown) error = %v, want UnknownZone", err)
	}
}

func TestRegistry_CurrentSystemDefault_FallsBackToUTC(t *testing.T) {
	host := &MemoryHost{SystemID: "SYSTEM"}
	r := NewRegistry(host)
	z, diag := r.CurrentSystemDefault()
	if !diag.Fallback {
		t.Error("expected a fallback diagnostic")
	}
	if z.OffsetAt(Instant{}) != ZeroOffset {
		t.Error("fallback zone should be UTC")
	}
}

func TestRegistry_ZoneIDs(t *testing.T) {
	host := &MemoryHost{Zones: map[string][]byte{"A": nil, "B": nil}}
	r := NewRegistry(host)
	ids := r.ZoneIDs()
	if len(ids) != 2 {
		t.Errorf("ZoneIDs() = %v, want 2 entries", ids)
	}
}

// recordingHost wraps MemoryHost to count TzdbLookup calls.
type recordingHost struct {
	MemoryHost
	onLookup func()
}

func (h *recordingHost) TzdbLookup(id string) ([]byte, bool) {
	h.onLookup()
	return h.MemoryHost.TzdbLookup(id)
}
