package extract

import (
	"testing"
	"time"

	"jobsift-engine/internal/domain"
)

const linkedinJobHTML = `<!DOCTYPE html>
<html><body>
  <h1 class="top-card-layout__title">Senior Software Engineer</h1>
  <a class="topcard__org-name-link" href="/company/tech-innovations">Tech Innovations Inc</a>
  <span class="topcard__flavor--bullet">San Francisco, CA (Remote)</span>
  <div class="compensation__salary">$80,000 - $120,000 a year</div>
  <div class="show-more-less-html__markup">
    <p>Build extraction pipelines. Experience with Python, AWS and Docker required.</p>
  </div>
  <span class="posted-time-ago__text">2 weeks ago</span>
  <figcaption class="num-applicants__caption">Over 200 applicants</figcaption>
</body></html>`

func fixedNow() time.Time {
	return time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
}

func TestLinkedInExtract(t *testing.T) {
	doc, err := ParseHTML(linkedinJobHTML, "https://www.linkedin.com/jobs/view/4011223344/?refId=abc")
	if err != nil {
		t.Fatal(err)
	}

	a := NewLinkedIn()
	a.now = fixedNow
	rec := a.Extract(doc)

	if rec.Source != "linkedin" {
		t.Errorf("source = %q", rec.Source)
	}
	if rec.Title != "Senior Software Engineer" {
		t.Errorf("title = %q", rec.Title)
	}
	if rec.Company.Name != "Tech Innovations Inc" {
		t.Errorf("company = %q", rec.Company.Name)
	}
	if rec.Company.Link != "https://www.linkedin.com/company/tech-innovations" {
		t.Errorf("company link = %q", rec.Company.Link)
	}
	if !rec.Location.IsRemote || rec.Location.City != "San Francisco" || rec.Location.State != "CA" {
		t.Errorf("location = %+v", rec.Location)
	}
	if rec.Salary == nil {
		t.Fatal("salary is nil")
	}
	if *rec.Salary.Min != 80000 || *rec.Salary.Max != 120000 || rec.Salary.Period != domain.PeriodYearly {
		t.Errorf("salary = %+v", rec.Salary)
	}
	if rec.Metadata.JobID != "4011223344" {
		t.Errorf("job id = %q", rec.Metadata.JobID)
	}
	wantPosted := fixedNow().AddDate(0, 0, -14)
	if rec.Metadata.PostedAt == nil || !rec.Metadata.PostedAt.Equal(wantPosted) {
		t.Errorf("posted at = %v, want %v", rec.Metadata.PostedAt, wantPosted)
	}
	if rec.Metadata.ApplicantCount == nil || *rec.Metadata.ApplicantCount != 200 {
		t.Errorf("applicant count = %v", rec.Metadata.ApplicantCount)
	}

	found := map[string]bool{}
	for _, sk := range rec.Skills {
		found[sk] = true
	}
	for _, want := range []string{"python", "aws", "docker"} {
		if !found[want] {
			t.Errorf("skills missing %q: %v", want, rec.Skills)
		}
	}

	if !rec.IsValid {
		t.Errorf("expected valid record, errors: %v", rec.ValidationErrors)
	}
	if rec.ValidationErrors == nil {
		t.Error("validation errors must be non-nil")
	}
}

func TestLocatorFallbackChain(t *testing.T) {
	// primary locator misses, second one hits
	doc, err := ParseHTML(`<html><body><h1 class="topcard__title">Data Engineer</h1></body></html>`,
		"https://www.linkedin.com/jobs/view/99")
	if err != nil {
		t.Fatal(err)
	}

	a := NewLinkedIn()
	if got := a.firstText(doc, a.p.Locators.Title); got != "Data Engineer" {
		t.Errorf("firstText = %q, want Data Engineer", got)
	}
}

func TestInvalidLocatorSkipped(t *testing.T) {
	doc, err := ParseHTML(`<html><body><h1>Backend Engineer</h1></body></html>`, "https://x.test/")
	if err != nil {
		t.Fatal(err)
	}

	a := New(Profile{
		Source: "test",
		Locators: Locators{
			Title: []string{"h1[[", "h1"},
		},
	})
	if got := a.firstText(doc, a.p.Locators.Title); got != "Backend Engineer" {
		t.Errorf("firstText = %q, want Backend Engineer", got)
	}
}

func TestAttrLocator(t *testing.T) {
	doc, err := ParseHTML(`<html><body><a class="org" href="/company/acme">Acme</a></body></html>`,
		"https://x.test/")
	if err != nil {
		t.Fatal(err)
	}

	a := New(Profile{Source: "test"})
	if got := a.firstText(doc, []string{"a.org@href"}); got != "/company/acme" {
		t.Errorf("attr locator = %q, want /company/acme", got)
	}
	if got := a.firstText(doc, []string{"a.org"}); got != "Acme" {
		t.Errorf("text locator = %q, want Acme", got)
	}
}

func TestJobIDFallbackTiers(t *testing.T) {
	// tier 1: address pattern
	doc, _ := ParseHTML("<html></html>", "https://www.linkedin.com/jobs/search?currentJobId=555666")
	a := NewLinkedIn()
	if got := a.jobID(doc); got != "555666" {
		t.Errorf("pattern tier = %q, want 555666", got)
	}

	// tier 2: element attribute when no pattern matches
	doc, _ = ParseHTML(`<html><body><div data-job-id="777888"></div></body></html>`,
		"https://www.linkedin.com/jobs/search")
	if got := a.jobID(doc); got != "777888" {
		t.Errorf("attr tier = %q, want 777888", got)
	}

	// tier 3: nothing derivable
	doc, _ = ParseHTML("<html></html>", "https://www.linkedin.com/jobs/search")
	if got := a.jobID(doc); got != "" {
		t.Errorf("empty tier = %q, want empty", got)
	}
}
