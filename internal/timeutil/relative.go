// Package timeutil formats timestamps as coarse relative-time strings.
package timeutil

import (
	"fmt"
	"time"
)

// FallbackLabel is returned when a provider timestamp is missing or unparseable.
const FallbackLabel = "Recently"

// now is swapped out in tests.
var now = time.Now

// Accepted provider timestamp layouts, tried in order.
var layouts = []string{
	time.RFC3339,
	time.RFC3339Nano,
	time.RFC1123Z,
	time.RFC1123,
}

// FormatRelative converts a known-valid timestamp into a "N units ago" string.
// Buckets cascade minute -> hour -> day -> month; months are 30 days.
func FormatRelative(t time.Time) string {
	diff := now().Sub(t)

	switch {
	case diff < time.Minute:
		return "Just now"
	case diff < time.Hour:
		return pluralize(int(diff.Minutes()), "minute")
	case diff < 24*time.Hour:
		return pluralize(int(diff.Hours()), "hour")
	case diff < 30*24*time.Hour:
		return pluralize(int(diff.Hours()/24), "day")
	default:
		return pluralize(int(diff.Hours()/(24*30)), "month")
	}
}

// FormatPublished parses a raw provider timestamp and formats it relative to
// now. Empty or unparseable input yields FallbackLabel.
func FormatPublished(raw string) string {
	if raw == "" {
		return FallbackLabel
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return FormatRelative(t)
		}
	}
	return FallbackLabel
}

func pluralize(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s ago", unit)
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}
