package sanitize

import (
	"regexp"
	"strings"

	"jobsift-engine/internal/domain"
)

var reParenthetical = regexp.MustCompile(`\([^)]*\)`)

var remoteKeywords = []string{
	"remote",
	"work from home",
	"wfh",
	"anywhere",
	"distributed",
}

// CleanLocation applies CleanText, drops parenthetical segments entirely
// ("San Francisco, CA (Remote)" -> "San Francisco, CA"), and normalizes
// comma/semicolon separators to ", ".
func CleanLocation(s string) string {
	if s == "" {
		return ""
	}
	s = strings.ReplaceAll(s, ";", ",")
	s = reParenthetical.ReplaceAllString(s, " ")
	s = CleanText(s)

	parts := strings.Split(s, ",")
	var out []string
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, ", ")
}

// ParseLocation splits a cleaned location into city/state/country on commas.
// Country defaults to US when the raw text doesn't carry one. Missing raw
// text comes back as-is with only Raw set.
func ParseLocation(raw string) domain.Location {
	loc := domain.Location{Raw: raw}
	if strings.TrimSpace(raw) == "" {
		return loc
	}

	loc.IsRemote = IsRemoteLocation(raw)
	loc.Formatted = CleanLocation(raw)
	loc.Country = domain.DefaultCountry
	if loc.Formatted == "" {
		return loc
	}

	parts := strings.SplitN(loc.Formatted, ",", 3)
	loc.City = strings.TrimSpace(parts[0])
	if len(parts) > 1 {
		loc.State = strings.TrimSpace(parts[1])
	}
	if len(parts) > 2 {
		if c := strings.TrimSpace(parts[2]); c != "" {
			loc.Country = c
		}
	}
	return loc
}

// IsRemoteLocation is a fixed keyword test against the raw location text,
// independent of the structured parse.
func IsRemoteLocation(raw string) bool {
	low := strings.ToLower(raw)
	for _, kw := range remoteKeywords {
		if strings.Contains(low, kw) {
			return true
		}
	}
	return false
}
