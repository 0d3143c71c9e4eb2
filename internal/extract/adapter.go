package extract

import (
	"log"
	"regexp"
	"strings"
	"time"

	"jobsift-engine/internal/domain"
	"jobsift-engine/internal/sanitize"
	"jobsift-engine/internal/validate"
)

// Locators holds one ordered fallback chain of locator expressions per field.
// Chains are walked in order and the first non-empty hit wins. An entry may
// carry an "@attr" suffix to read an attribute instead of node text, e.g.
// "a.topcard__org-name-link@href".
type Locators struct {
	Title           []string
	CompanyName     []string
	CompanyLink     []string
	CompanySize     []string
	CompanyIndustry []string
	Location        []string
	Salary          []string
	Description     []string
	PostedDate      []string
	ApplicantCount  []string
	JobType         []string
	ExperienceLevel []string
}

// Profile is everything that distinguishes one source from another: its
// locator tables plus how job ids appear in its addresses and markup. One
// generic Adapter consumes a Profile; there is no per-source subtype.
type Profile struct {
	Source     string
	BaseOrigin string // origin for resolving root-relative links
	Locators   Locators

	// JobIDPatterns run against the document address; the first capture
	// group of the first match is the id. JobIDAttrs are element attributes
	// tried when no pattern matches.
	JobIDPatterns []*regexp.Regexp
	JobIDAttrs    []string

	// ExtraSkills extends the fixed skill vocabulary for this source.
	ExtraSkills []string
}

// Adapter runs the raw -> sanitize -> validate pipeline for one source.
type Adapter struct {
	p   Profile
	now func() time.Time
}

func New(p Profile) *Adapter {
	return &Adapter{p: p, now: time.Now}
}

func (a *Adapter) Source() string { return a.p.Source }

// Extract pulls every field through its locator chain, sanitizes the raw
// bundle, and attaches the validation verdict. Validation errors never strip
// data: an invalid record still carries everything that was extracted.
func (a *Adapter) Extract(doc Document) *domain.JobRecord {
	raw := a.rawBundle(doc)
	rec := a.sanitized(doc, raw)

	ok, errs := validate.ValidateRecord(rec)
	rec.IsValid = ok
	rec.ValidationErrors = errs
	if rec.ValidationErrors == nil {
		rec.ValidationErrors = []string{}
	}
	return rec
}

type rawBundle struct {
	title           string
	companyName     string
	companyLink     string
	companySize     string
	companyIndustry string
	location        string
	salary          string
	description     string
	postedDate      string
	applicantCount  string
	jobType         string
	experienceLevel string
}

func (a *Adapter) rawBundle(doc Document) rawBundle {
	return rawBundle{
		title:           a.firstText(doc, a.p.Locators.Title),
		companyName:     a.firstText(doc, a.p.Locators.CompanyName),
		companyLink:     a.firstText(doc, a.p.Locators.CompanyLink),
		companySize:     a.firstText(doc, a.p.Locators.CompanySize),
		companyIndustry: a.firstText(doc, a.p.Locators.CompanyIndustry),
		location:        a.firstText(doc, a.p.Locators.Location),
		salary:          a.firstText(doc, a.p.Locators.Salary),
		description:     a.firstText(doc, a.p.Locators.Description),
		postedDate:      a.firstText(doc, a.p.Locators.PostedDate),
		applicantCount:  a.firstText(doc, a.p.Locators.ApplicantCount),
		jobType:         a.firstText(doc, a.p.Locators.JobType),
		experienceLevel: a.firstText(doc, a.p.Locators.ExperienceLevel),
	}
}

// firstText walks the chain in order and returns the first non-empty hit.
// A locator that doesn't compile is logged and skipped; it never aborts the
// field, let alone the extraction.
func (a *Adapter) firstText(doc Document, chain []string) string {
	for _, loc := range chain {
		sel, attr := splitAttrLocator(loc)
		n, err := doc.Find(sel)
		if err != nil {
			log.Printf("[%s] skipping locator: %v", a.p.Source, err)
			continue
		}
		if n == nil {
			continue
		}
		v := ""
		if attr != "" {
			v, _ = n.Attr(attr)
		} else {
			v = n.Text()
		}
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

func splitAttrLocator(loc string) (selector, attr string) {
	if i := strings.LastIndex(loc, "@"); i > 0 {
		return loc[:i], loc[i+1:]
	}
	return loc, ""
}

func (a *Adapter) sanitized(doc Document, raw rawBundle) *domain.JobRecord {
	rec := &domain.JobRecord{
		Source: a.p.Source,
		URL:    sanitize.CleanURL(doc.Address(), a.p.BaseOrigin),
	}

	rec.Title = sanitize.CleanText(raw.title)
	rec.Company = domain.Company{
		Name:     sanitize.CleanText(raw.companyName),
		Link:     sanitize.CleanURL(raw.companyLink, a.p.BaseOrigin),
		Size:     sanitize.CleanText(raw.companySize),
		Industry: sanitize.CleanText(raw.companyIndustry),
	}
	rec.Location = sanitize.ParseLocation(raw.location)
	rec.Salary = sanitize.ParseSalary(raw.salary)
	rec.Description = sanitize.CleanDescription(raw.description)
	rec.Skills = sanitize.ExtractSkills(rec.Description, a.p.ExtraSkills...)
	rec.Metadata = domain.Metadata{
		JobID:           a.jobID(doc),
		PostedAt:        sanitize.ParseDate(raw.postedDate, a.now()),
		ApplicantCount:  sanitize.ParseNumber(raw.applicantCount),
		JobType:         sanitize.CleanText(raw.jobType),
		ExperienceLevel: sanitize.CleanText(raw.experienceLevel),
	}
	return rec
}

// jobID is a three-tier fallback: address patterns first, then identifying
// attributes on elements in the document, then empty.
func (a *Adapter) jobID(doc Document) string {
	addr := doc.Address()
	for _, re := range a.p.JobIDPatterns {
		if m := re.FindStringSubmatch(addr); len(m) > 1 {
			return m[1]
		}
	}
	for _, attr := range a.p.JobIDAttrs {
		n, err := doc.Find("[" + attr + "]")
		if err != nil || n == nil {
			continue
		}
		if v, ok := n.Attr(attr); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}
