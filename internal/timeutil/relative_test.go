package timeutil

import (
	"testing"
	"time"
)

// fixNow pins the package clock for the duration of a test.
func fixNow(t *testing.T, fixed time.Time) {
	t.Helper()
	prev := now
	now = func() time.Time { return fixed }
	t.Cleanup(func() { now = prev })
}

func TestFormatRelative_JustNow(t *testing.T) {
	base := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	fixNow(t, base)

	if got := FormatRelative(base.Add(-30 * time.Second)); got != "Just now" {
		t.Errorf("30s ago should read 'Just now', got %q", got)
	}
}

func TestFormatRelative_MinutesBucket(t *testing.T) {
	base := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	fixNow(t, base)

	if got := FormatRelative(base.Add(-90 * time.Second)); got != "1 minute ago" {
		t.Errorf("90s ago should land in the minutes bucket as '1 minute ago', got %q", got)
	}
	if got := FormatRelative(base.Add(-45 * time.Minute)); got != "45 minutes ago" {
		t.Errorf("45m ago should pluralize, got %q", got)
	}
}

func TestFormatRelative_HoursBucket(t *testing.T) {
	base := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	fixNow(t, base)

	if got := FormatRelative(base.Add(-60 * time.Minute)); got != "1 hour ago" {
		t.Errorf("exactly 60m ago should roll over to '1 hour ago', got %q", got)
	}
	if got := FormatRelative(base.Add(-5 * time.Hour)); got != "5 hours ago" {
		t.Errorf("5h ago should pluralize, got %q", got)
	}
}

func TestFormatRelative_DaysBucket(t *testing.T) {
	base := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	fixNow(t, base)

	if got := FormatRelative(base.Add(-25 * time.Hour)); got != "1 day ago" {
		t.Errorf("25h ago should read '1 day ago', got %q", got)
	}
	if got := FormatRelative(base.Add(-3 * 24 * time.Hour)); got != "3 days ago" {
		t.Errorf("3d ago should pluralize, got %q", got)
	}
}

func TestFormatRelative_MonthsBucket(t *testing.T) {
	base := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	fixNow(t, base)

	if got := FormatRelative(base.Add(-35 * 24 * time.Hour)); got != "1 month ago" {
		t.Errorf("35d ago should read '1 month ago', got %q", got)
	}
	if got := FormatRelative(base.Add(-70 * 24 * time.Hour)); got != "2 months ago" {
		t.Errorf("70d ago should pluralize, got %q", got)
	}
}

func TestFormatPublished_ParsesRFC3339(t *testing.T) {
	base := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	fixNow(t, base)

	got := FormatPublished("2026-03-14T10:00:00Z")
	if got != "2 hours ago" {
		t.Errorf("RFC3339 timestamp should format relative to now, got %q", got)
	}
}

func TestFormatPublished_FallbackOnMissing(t *testing.T) {
	if got := FormatPublished(""); got != FallbackLabel {
		t.Errorf("empty timestamp should read %q, got %q", FallbackLabel, got)
	}
}

func TestFormatPublished_FallbackOnGarbage(t *testing.T) {
	if got := FormatPublished("not-a-date"); got != FallbackLabel {
		t.Errorf("unparseable timestamp should read %q, got %q", FallbackLabel, got)
	}
}
