package sanitize

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// reRelDays anchors the relative-days branch on a digit so weekday names
// ("Monday") and other texts that merely contain "day" fall through to the
// absolute layouts.
var reRelDays = regexp.MustCompile(`\d+\s*\+?\s*days?`)

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02",
	"Jan 2, 2006",
	"January 2, 2006",
	"01/02/2006",
	"2 Jan 2006",
}

// ParseDate resolves relative phrases ("today", "yesterday", "3 days ago",
// "2 weeks", "1 month") against the supplied reference time. Month math is
// calendar-aware, not a fixed day interval. Anything that isn't a relative
// phrase falls back to the known absolute layouts; nil if nothing matches.
func ParseDate(text string, now time.Time) *time.Time {
	low := strings.ToLower(strings.TrimSpace(text))
	if low == "" {
		return nil
	}

	switch {
	case strings.Contains(low, "today"):
		return &now
	case strings.Contains(low, "yesterday"):
		t := now.AddDate(0, 0, -1)
		return &t
	case reRelDays.MatchString(low):
		t := now.AddDate(0, 0, -firstInt(low, 1))
		return &t
	case strings.Contains(low, "week"):
		t := now.AddDate(0, 0, -7*firstInt(low, 1))
		return &t
	case strings.Contains(low, "month"):
		t := now.AddDate(0, -firstInt(low, 1), 0)
		return &t
	}

	raw := strings.TrimSpace(text)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t
		}
	}
	return nil
}

func firstInt(s string, def int) int {
	m := reDigits.FindString(s)
	if m == "" {
		return def
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return def
	}
	return n
}
