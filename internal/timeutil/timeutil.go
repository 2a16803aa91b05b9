// Package timeutil formats CloudFormation timestamps in the user's timezone.
package timeutil

import (
	"os"
	"sync"
	"time"
)

//nolint:gochecknoglobals // cached timezone location
var (
	locationCache *time.Location
	locationOnce  sync.Once
)

// loadLocation resolves TZ. Unset means local time, an unknown zone means UTC.
func loadLocation() *time.Location {
	tz := os.Getenv("TZ")
	if tz == "" {
		return time.Local
	}

	loc, err := time.LoadLocation(tz)
	if err != nil {
		return time.UTC
	}

	return loc
}

// Location returns the display timezone. The result is cached after the first call.
func Location() *time.Location {
	locationOnce.Do(func() {
		locationCache = loadLocation()
	})

	return locationCache
}

// Format formats t as RFC3339 in the display timezone.
func Format(t time.Time) string {
	return t.In(Location()).Format(time.RFC3339)
}

// Reformat converts an RFC3339 timestamp, as produced by encoding a
// time.Time to JSON, into the display timezone with second precision.
// The second result is false when s is not a timestamp.
func Reformat(s string) (string, bool) {
	// Cheap rejection of stack names, ARNs and the like.
	if len(s) < len("2006-01-02T15:04:05Z") || s[4] != '-' || s[10] != 'T' {
		return "", false
	}

	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return "", false
	}

	return Format(t), true
}

// resetLocation drops the cached location so tests can switch TZ.
func resetLocation() {
	locationOnce = sync.Once{}
	locationCache = nil
}
