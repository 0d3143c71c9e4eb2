// Package validate holds the stateless field predicates and the aggregate
// record check. Nothing here ever panics or touches I/O; every rule yields a
// boolean, and ValidateRecord reports one error string per failing rule.
package validate

import (
	"net/url"
	"regexp"
	"strings"
	"time"

	"jobsift-engine/internal/domain"
)

var (
	reNameChars = regexp.MustCompile(`^[\w\s\-.,'()&]+$`)
	reJobID     = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)
)

func IsValidTitle(s string) bool {
	s = strings.TrimSpace(s)
	return len(s) >= 3 && len(s) <= 200 && reNameChars.MatchString(s)
}

func IsValidCompanyName(s string) bool {
	s = strings.TrimSpace(s)
	return len(s) >= 1 && len(s) <= 100 && reNameChars.MatchString(s)
}

func IsValidLocation(s string) bool {
	s = strings.TrimSpace(s)
	return len(s) >= 2 && len(s) <= 100
}

// IsValidSalary accepts an absent salary. A present one needs non-negative
// bounds, min <= max when both are set, and a period from the known set.
func IsValidSalary(s *domain.Salary) bool {
	if s == nil {
		return true
	}
	if s.Min != nil && *s.Min < 0 {
		return false
	}
	if s.Max != nil && *s.Max < 0 {
		return false
	}
	if s.Min != nil && s.Max != nil && *s.Min > *s.Max {
		return false
	}
	switch s.Period {
	case "", domain.PeriodHourly, domain.PeriodDaily, domain.PeriodMonthly, domain.PeriodYearly:
		return true
	}
	return false
}

func IsValidDescription(s string) bool {
	return len(s) <= 10000
}

func IsValidURL(s string) bool {
	u, err := url.Parse(s)
	return err == nil && u.Scheme != "" && u.Host != ""
}

func IsValidDate(t *time.Time) bool {
	return t != nil && !t.IsZero()
}

func IsValidJobID(s string) bool {
	return len(s) <= 50 && reJobID.MatchString(s)
}

// ValidateRecord runs every applicable rule against the record and returns
// the aggregate verdict plus one message per failing rule. Rules are
// evaluated independently so simultaneous failures are all reported.
func ValidateRecord(rec *domain.JobRecord) (bool, []string) {
	var errs []string

	if !IsValidTitle(rec.Title) {
		errs = append(errs, "invalid or missing title")
	}
	if !IsValidCompanyName(rec.Company.Name) {
		errs = append(errs, "invalid or missing company name")
	}
	if !IsValidLocation(rec.Location.Formatted) {
		errs = append(errs, "invalid or missing location")
	}
	if !IsValidSalary(rec.Salary) {
		errs = append(errs, "invalid salary")
	}
	if !IsValidDescription(rec.Description) {
		errs = append(errs, "description too long")
	}
	if rec.Company.Link != "" && !IsValidURL(rec.Company.Link) {
		errs = append(errs, "invalid company link")
	}
	if rec.URL != "" && !IsValidURL(rec.URL) {
		errs = append(errs, "invalid job url")
	}
	if rec.Metadata.PostedAt != nil && !IsValidDate(rec.Metadata.PostedAt) {
		errs = append(errs, "invalid posted date")
	}
	if rec.Metadata.JobID != "" && !IsValidJobID(rec.Metadata.JobID) {
		errs = append(errs, "invalid job id")
	}

	return len(errs) == 0, errs
}
