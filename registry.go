package timecore

// Registry resolves zone ids through a Host and caches Region zones in a
// bounded LRU. It is thread-confined by design (see DESIGN.md): callers on
// different goroutines should each own a Registry rather than share one.
type Registry struct {
	host  Host
	cache *zoneCache
}

const defaultZoneCacheCapacity = 64

// NewRegistry builds a Registry over host with the default cache capacity.
func NewRegistry(host Host) *Registry {
	return NewRegistryWithCapacity(host, defaultZoneCacheCapacity)
}

// NewRegistryWithCapacity builds a Registry with an explicit LRU bound.
func NewRegistryWithCapacity(host Host, capacity int) *Registry {
	return &Registry{host: host, cache: newZoneCache(capacity)}
}

// Of resolves id, returning a cached zone if one was already loaded for id
// on this Registry.
func (r *Registry) Of(id string) (TimeZone, error) {
	if id == "Z" || id == "UTC" {
		return TimeZone{variant: fixedVariant, id: id, fixed: ZeroOffset}, nil
	}
	if offset, err := ParseUtcOffset(id); err == nil {
		return TimeZone{variant: fixedVariant, id: id, fixed: offset}, nil
	}
	zone, err := r.cache.getOrLoad(id, func(id string) (*TimeZone, error) {
		z, err := Of(id, r.host)
		if err != nil {
			return nil, err
		}
		return &z, nil
	})
	if err != nil {
		return TimeZone{}, err
	}
	return *zone, nil
}

// CurrentSystemDefault resolves the host's reported system zone through
// this Registry's cache.
func (r *Registry) CurrentSystemDefault() (TimeZone, Diagnostic) {
	id := r.host.SystemTimeZoneID()
	if id == "" || id == "SYSTEM" {
		return UTC, Diagnostic{Fallback: true, Reason: "host reported no usable system zone id"}
	}
	zone, err := r.Of(id)
	if err != nil {
		return UTC, Diagnostic{Fallback: true, Reason: "resolving system zone " + id + ": " + err.Error()}
	}
	return zone, Diagnostic{}
}

// ZoneIDs returns every zone id the underlying host's tzdb knows about.
func (r *Registry) ZoneIDs() []string { return r.host.TzdbList() }
