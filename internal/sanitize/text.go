package sanitize

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

var (
	reTextDisallowed = regexp.MustCompile(`[^\w\s\-.,'()&]`)
	reDescDisallowed = regexp.MustCompile(`[^\w\s\-.,'()&:;]`)
	reMarkup         = regexp.MustCompile(`<[^>]*>`)
	reDigits         = regexp.MustCompile(`\d+`)
)

const descriptionLimit = 5000

// normalizeSpace maps every unicode space separator (NBSP, thin space,
// ideographic space, ...) to a plain space. regexp's \s is ASCII-only, so
// without this pass the disallowed-char strip would delete them and fuse
// the neighboring words.
func normalizeSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return ' '
		}
		return r
	}, s)
}

// CleanText trims, collapses whitespace runs (including NBSP and other
// unicode space variants) to single spaces, and drops characters outside
// word chars, whitespace, and - . , ' ( ) &. Empty in, empty out.
func CleanText(s string) string {
	if s == "" {
		return ""
	}
	s = normalizeSpace(s)
	s = reTextDisallowed.ReplaceAllString(s, "")
	return strings.Join(strings.Fields(s), " ")
}

// CleanURL resolves root-relative values against base, prefixes https://
// when the scheme is missing, and returns the canonical absolute form.
// Returns "" if the result does not parse as a URL with a host.
func CleanURL(raw, base string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if strings.HasPrefix(raw, "/") {
		b, err := url.Parse(base)
		if err != nil || b.Host == "" {
			return ""
		}
		scheme := b.Scheme
		if scheme == "" {
			scheme = "https"
		}
		raw = scheme + "://" + b.Host + raw
	} else if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return ""
	}
	return u.String()
}

// CleanDescription strips tag-like markup, collapses whitespace, keeps the
// text allow-list plus : and ;, and caps the result at 5000 characters.
func CleanDescription(s string) string {
	if s == "" {
		return ""
	}
	s = reMarkup.ReplaceAllString(s, " ")
	s = normalizeSpace(s)
	s = reDescDisallowed.ReplaceAllString(s, "")
	s = strings.Join(strings.Fields(s), " ")
	if len(s) > descriptionLimit {
		s = strings.TrimSpace(s[:descriptionLimit])
	}
	return s
}

// ParseNumber returns the first contiguous digit run as an int, or nil.
func ParseNumber(s string) *int {
	m := reDigits.FindString(s)
	if m == "" {
		return nil
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return nil
	}
	return &n
}
