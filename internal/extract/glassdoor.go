package extract

import "regexp"

var (
	reGlassdoorParamID = regexp.MustCompile(`[?&]jobListingId=(\d+)`)
	reGlassdoorJLID    = regexp.MustCompile(`[?&]jl=(\d+)`)
)

// NewGlassdoor builds the adapter for glassdoor.com job listing pages.
func NewGlassdoor(extraSkills ...string) *Adapter {
	return New(Profile{
		Source:     "glassdoor",
		BaseOrigin: "https://www.glassdoor.com",
		Locators: Locators{
			Title: []string{
				"[data-test='job-title']",
				"h1[id^='jd-job-title']",
				".JobDetails_jobTitle__Rw_gn",
				"h1",
			},
			CompanyName: []string{
				"[data-test='employer-name']",
				".EmployerProfile_employerNameHeading__bXBYr h4",
				".EmployerProfile_employerName__Xemli",
			},
			CompanyLink: []string{
				"[data-test='employer-name']@href",
				".EmployerProfile_profileContainer__63w3R a@href",
			},
			CompanySize: []string{
				"[data-test='employer-size']",
			},
			CompanyIndustry: []string{
				"[data-test='employer-industry']",
			},
			Location: []string{
				"[data-test='location']",
				"[data-test='emp-location']",
				".JobDetails_location__mSg5h",
			},
			Salary: []string{
				"[data-test='detailSalary']",
				".SalaryEstimate_salaryRange__brHFy",
				"[data-test='salary-estimate']",
			},
			Description: []string{
				".JobDetails_jobDescription__uW_fK",
				"[data-test='jobDescriptionContent']",
				"#JobDescriptionContainer",
			},
			PostedDate: []string{
				"[data-test='job-age']",
				".JobDetails_jobDetailsHeader__Hd9M3 div:last-child",
			},
		},
		JobIDPatterns: []*regexp.Regexp{reGlassdoorParamID, reGlassdoorJLID},
		JobIDAttrs:    []string{"data-id", "data-job-id"},
		ExtraSkills:   extraSkills,
	})
}
