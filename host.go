package timecore

import (
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Host is the small capability surface the core needs from its runtime
// environment: a wall clock, the platform's notion of "my time zone", and a
// tzdb lookup/listing pair. Everything else in this module is pure.
type Host interface {
	// NowSecondsAndNanos returns the current wall-clock time as a Unix
	// epoch second count and a nanosecond-of-second remainder.
	NowSecondsAndNanos() (int64, int32)

	// SystemTimeZoneID returns "UTC", a tzdb id such as "Europe/Berlin", a
	// UtcOffset string, or the sentinel "SYSTEM" when the platform cannot
	// name its zone more precisely.
	SystemTimeZoneID() string

	// TzdbLookup returns the raw TZif bytes for id, or ok == false if the
	// host has no data for it.
	TzdbLookup(id string) (data []byte, ok bool)

	// TzdbList returns every zone id the host's tzdb knows about.
	TzdbList() []string
}

// defaultZoneinfoDirs lists the conventional install locations for the IANA
// tzdata files, checked in order.
var defaultZoneinfoDirs = []string{
	"/usr/share/zoneinfo",
	"/usr/share/lib/zoneinfo",
	"/usr/lib/zoneinfo",
	"/etc/zoneinfo",
}

// filesystemHost is the reference Host: it resolves the system clock from
// the OS and tzdb data from a directory of TZif files on disk, the layout
// IANA's tzdata package installs under /usr/share/zoneinfo.
type filesystemHost struct {
	roots []string
}

// NewFilesystemHost builds a Host that reads TZif files from dirs (or the
// conventional zoneinfo locations, plus $ZONEINFO, if dirs is empty).
func NewFilesystemHost(dirs ...string) Host {
	if len(dirs) == 0 {
		dirs = append([]string(nil), defaultZoneinfoDirs...)
		if env := os.Getenv("ZONEINFO"); env != "" {
			dirs = append([]string{env}, dirs...)
		}
	}
	return &filesystemHost{roots: dirs}
}

func (h *filesystemHost) NowSecondsAndNanos() (int64, int32) {
	now := time.Now()
	return now.Unix(), int32(now.Nanosecond())
}

func (h *filesystemHost) SystemTimeZoneID() string {
	if tz := os.Getenv("TZ"); tz != "" {
		return tz
	}
	for _, root := range h.roots {
		if id, ok := h.resolveLocaltimeSymlink(root); ok {
			return id
		}
	}
	return "SYSTEM"
}

// resolveLocaltimeSymlink follows the Linux/BSD convention that
// /etc/localtime is a symlink into a zoneinfo directory, and reports the
// zone id relative to root if so.
func (h *filesystemHost) resolveLocaltimeSymlink(root string) (string, bool) {
	target, err := os.Readlink("/etc/localtime")
	if err != nil {
		return "", false
	}
	if !filepath.IsAbs(target) {
		target = filepath.Join(filepath.Dir("/etc/localtime"), target)
	}
	rel, err := filepath.Rel(root, target)
	if err != nil || strings.HasPrefix(rel, "..") {
		return "", false
	}
	return filepath.ToSlash(rel), true
}

func (h *filesystemHost) TzdbLookup(id string) ([]byte, bool) {
	if strings.Contains(id, "..") {
		return nil, false
	}
	for _, root := range h.roots {
		p := filepath.Join(root, filepath.FromSlash(id))
		data, err := os.ReadFile(p)
		if err == nil {
			return data, true
		}
	}
	return nil, false
}

func (h *filesystemHost) TzdbList() []string {
	seen := make(map[string]bool)
	var ids []string
	for _, root := range h.roots {
		_ = filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
			if err != nil || info == nil || info.IsDir() {
				return nil
			}
			name := strings.TrimPrefix(strings.TrimPrefix(path, root), string(filepath.Separator))
			if name == "" || strings.Contains(name, ".") {
				return nil
			}
			base := filepath.Base(name)
			if len(base) == 0 || !(base[0] >= 'A' && base[0] <= 'Z') {
				return nil
			}
			id := filepath.ToSlash(name)
			if !seen[id] {
				seen[id] = true
				ids = append(ids, id)
			}
			return nil
		})
	}
	return ids
}

// MemoryHost is an in-memory Host, useful for tests and for embedding a
// fixed tzdb snapshot in a binary.
type MemoryHost struct {
	Now      func() (int64, int32)
	SystemID string
	Zones    map[string][]byte
}

func (h *MemoryHost) NowSecondsAndNanos() (int64, int32) {
	if h.Now != nil {
		return h.Now()
	}
	return 0, 0
}

func (h *MemoryHost) SystemTimeZoneID() string {
	if h.SystemID == "" {
		return "SYSTEM"
	}
	return h.SystemID
}

func (h *MemoryHost) TzdbLookup(id string) ([]byte, bool) {
	data, ok := h.Zones[id]
	return data, ok
}

func (h *MemoryHost) TzdbList() []string {
	ids := make([]string, 0, len(h.Zones))
	for id := range h.Zones {
		ids = append(ids, id)
	}
	return ids
}
