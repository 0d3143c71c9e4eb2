package sanitize

import (
	"testing"
	"time"
)

func TestParseDateRelative(t *testing.T) {
	now := time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)

	cases := []struct {
		name string
		in   string
		want time.Time
	}{
		{"today", "Posted today", now},
		{"yesterday", "yesterday", now.AddDate(0, 0, -1)},
		{"days ago", "2 days ago", now.AddDate(0, 0, -2)},
		{"thirty plus days", "Posted 30+ days ago", now.AddDate(0, 0, -30)},
		{"weeks ago", "3 weeks ago", now.AddDate(0, 0, -21)},
		{"one week no digit", "a week ago", now.AddDate(0, 0, -7)},
		{"months ago", "2 months ago", now.AddDate(0, -2, 0)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ParseDate(tc.in, now)
			if got == nil {
				t.Fatalf("ParseDate(%q) = nil", tc.in)
			}
			if !got.Equal(tc.want) {
				t.Errorf("ParseDate(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestParseDateAbsolute(t *testing.T) {
	now := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	got := ParseDate("2026-01-02", now)
	if got == nil || !got.Equal(time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("ParseDate(2026-01-02) = %v", got)
	}

	got = ParseDate("Jan 2, 2026", now)
	if got == nil || !got.Equal(time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("ParseDate(Jan 2, 2026) = %v", got)
	}
}

func TestParseDateUnknown(t *testing.T) {
	now := time.Now()
	if got := ParseDate("recently", now); got != nil {
		t.Errorf("ParseDate(recently) = %v, want nil", got)
	}
	if got := ParseDate("", now); got != nil {
		t.Errorf("ParseDate(empty) = %v, want nil", got)
	}
}

func TestParseDateWeekdayNamesNotRelative(t *testing.T) {
	now := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	// "Monday" contains "day" but carries no digit; it must not resolve
	// to the reference time.
	for _, s := range []string{"Posted Monday", "Sunday", "day shift"} {
		if got := ParseDate(s, now); got != nil {
			t.Errorf("ParseDate(%q) = %v, want nil", s, got)
		}
	}

	if got := ParseDate("5 days ago", now); got == nil || !got.Equal(now.AddDate(0, 0, -5)) {
		t.Errorf("ParseDate(5 days ago) = %v", got)
	}
}
