package timecore

import "testing"

func TestZoneCache_GetOrLoad_CallsLoaderOnce(t *testing.T) {
	c := newZoneCache(2)
	calls := 0
	load := func(id string) (*TimeZone, error) {
		calls++
		z := &TimeZone{}
		return z, nil
	}
	z1, err := c.getOrLoad("A", load)
	if err != nil {
		t.Fatalf("getOrLoad: %v", err)
	}
	z2, err := c.getOrLoad("A", load)
	if err != nil {
		t.Fatalf("getOrLoad: %v", err)
	}
	if z1 != z2 {
		t.Error("second call should return the cached pointer")
	}
	if calls != 1 {
		t.Errorf("loader called %d times, want 1", calls)
	}
}

func TestZoneCache_EvictsLeastRecentlyUsed(t *testing.T) {
	c := newZoneCache(2)
	load := func(id string) (*TimeZone, error) { return &TimeZone{}, nil }

	if _, err := c.getOrLoad("A", load); err != nil {
		t.Fatal(err)
	}
	if _, err := c.getOrLoad("B", load); err != nil {
		t.Fatal(err)
	}
	// Touch A so B becomes least-recently-used.
	if _, err := c.getOrLoad("A", load); err != nil {
		t.Fatal(err)
	}
	if _, err := c.getOrLoad("C", load); err != nil {
		t.Fatal(err)
	}

	if _, ok := c.entries["B"]; ok {
		t.Error("B should have been evicted")
	}
	if _, ok := c.entries["A"]; !ok {
		t.Error("A should still be cached")
	}
	if _, ok := c.entries["C"]; !ok {
		t.Error("C should be cached")
	}
}

func TestZoneCache_PropagatesLoaderError(t *testing.T) {
	c := newZoneCache(1)
	wantErr := newErr("test", UnknownZone, "boom")
	_, err := c.getOrLoad("A", func(string) (*TimeZone, error) {
		return nil, wantErr
	})
	if err != wantErr {
		t.Errorf("getOrLoad error = %v, want %v", err, wantErr)
	}
	if _, ok := c.entries["A"]; ok {
		t.Error("a failed load should not populate the cache")
	}
}

func TestNewZoneCache_NonPositiveCapacityClampsToOne(t *testing.T) {
	c := newZoneCache(0)
	if c.capacity != 1 {
		t.Errorf("capacity = %d, want 1", c.capacity)
	}
}
