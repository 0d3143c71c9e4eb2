package mailbox

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"jobsift-engine/internal/extract"
)

// ExtractPostingLinks pulls job-posting addresses for known sources out of
// alert email HTML. Multiple anchors pointing at the same posting (logo,
// title, card body) collapse to one address.
func ExtractPostingLinks(htmlBody string) []string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlBody))
	if err != nil {
		return nil
	}

	seen := map[string]bool{}
	var out []string

	doc.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		href, _ := a.Attr("href")
		href = strings.TrimSpace(href)
		if href == "" {
			return
		}

		addr := unwrapRedirect(href)
		if addr == "" || extract.SourceForAddress(addr) == "" {
			return
		}
		if !looksLikePosting(addr) {
			return
		}

		key := strings.ToLower(addr)
		if seen[key] {
			return
		}
		seen[key] = true
		out = append(out, addr)
	})

	return out
}

func looksLikePosting(addr string) bool {
	low := strings.ToLower(addr)
	for _, marker := range []string{
		"/jobs/view/",
		"/comm/jobs/view/",
		"/viewjob",
		"jk=",
		"joblistingid=",
		"/job-listing/",
	} {
		if strings.Contains(low, marker) {
			return true
		}
	}
	return false
}

// unwrapRedirect peels common tracking wrappers: a url= query param, or a
// google /url?q= redirect. Relative hrefs come back empty.
func unwrapRedirect(href string) string {
	u, err := url.Parse(href)
	if err != nil {
		return ""
	}

	if raw := u.Query().Get("url"); raw != "" {
		if uu, err := url.Parse(raw); err == nil && uu.Host != "" {
			return uu.String()
		}
	}

	if strings.Contains(strings.ToLower(u.Host), "google.") && strings.HasPrefix(u.Path, "/url") {
		if q := u.Query().Get("q"); q != "" {
			if uu, err := url.Parse(q); err == nil && uu.Host != "" {
				return uu.String()
			}
		}
	}

	if u.Host != "" {
		return u.String()
	}
	return ""
}
