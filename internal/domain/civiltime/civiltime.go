// Package civiltime renders and parses the backend's wall-clock timestamps.
//
// The backend expects local civil time without a UTC offset (yyyy-MM-ddTHH:mm:ss), rendered in
// a fixed zone. Converting an instant therefore means moving it into that zone first and only
// then dropping the offset.
package civiltime

import (
	"fmt"
	"strings"
	"time"

	_ "time/tzdata"
)

const Layout = "2006-01-02T15:04:05"

// fractional variant emitted by some backends for LocalDateTime values.
const layoutFraction = "2006-01-02T15:04:05.999999999"

// Format renders t as civil time in loc.
func Format(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return t.In(loc).Format(Layout)
}

// Parse accepts RFC 3339 instants and offset-less civil timestamps. Civil timestamps are
// interpreted in loc.
func Parse(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("civiltime: empty timestamp")
	}
	if loc == nil {
		loc = time.Local
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}
	for _, layout := range []string{Layout, layoutFraction, "2006-01-02T15:04", "2006-01-02 15:04:05"} {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("civiltime: unsupported timestamp %q", s)
}

// LoadLocation resolves a zone name, falling back to UTC for an empty name.
func LoadLocation(name string) (*time.Location, error) {
	if strings.TrimSpace(name) == "" {
		return time.UTC, nil
	}
	return time.LoadLocation(name)
}
