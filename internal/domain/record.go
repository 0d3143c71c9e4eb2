package domain

import "time"

// SalaryPeriod is the pay interval a posting quotes its compensation in.
type SalaryPeriod string

const (
	PeriodHourly  SalaryPeriod = "hourly"
	PeriodDaily   SalaryPeriod = "daily"
	PeriodMonthly SalaryPeriod = "monthly"
	PeriodYearly  SalaryPeriod = "yearly"
)

const (
	DefaultCurrency = "USD"
	DefaultCountry  = "US"
)

type Company struct {
	Name     string `json:"name,omitempty"`
	Link     string `json:"link,omitempty"`
	Size     string `json:"size,omitempty"`
	Industry string `json:"industry,omitempty"`
}

type Location struct {
	Raw       string `json:"raw,omitempty"` // as extracted, untouched
	Formatted string `json:"formatted,omitempty"`
	IsRemote  bool   `json:"isRemote"`
	City      string `json:"city,omitempty"`
	State     string `json:"state,omitempty"`
	Country   string `json:"country,omitempty"`
}

type Salary struct {
	Raw         string       `json:"raw,omitempty"` // as extracted, untouched
	Min         *float64     `json:"min"`
	Max         *float64     `json:"max"`
	Currency    string       `json:"currency,omitempty"`
	Period      SalaryPeriod `json:"period,omitempty"`
	IsEstimated bool         `json:"isEstimated"`
}

type Metadata struct {
	JobID           string     `json:"jobId,omitempty"`
	PostedAt        *time.Time `json:"postedAt,omitempty"`
	ApplicantCount  *int       `json:"applicantCount,omitempty"`
	JobType         string     `json:"jobType,omitempty"`
	ExperienceLevel string     `json:"experienceLevel,omitempty"`
}

// JobRecord is the canonical output of one extraction. It is built fresh on
// every call and never mutated after being returned; callers own it outright.
type JobRecord struct {
	Source      string   `json:"source"`
	URL         string   `json:"url,omitempty"`
	Title       string   `json:"title,omitempty"`
	Company     Company  `json:"company"`
	Location    Location `json:"location"`
	Salary      *Salary  `json:"salary"`
	Description string   `json:"description,omitempty"`
	Skills      []string `json:"skills,omitempty"`
	Metadata    Metadata `json:"metadata"`

	IsValid          bool     `json:"isValid"`
	ValidationErrors []string `json:"validationErrors"`
}
