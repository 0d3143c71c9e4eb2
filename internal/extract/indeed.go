package extract

import "regexp"

var (
	reIndeedParamID = regexp.MustCompile(`[?&]jk=([A-Za-z0-9]+)`)
	reIndeedPathID  = regexp.MustCompile(`/viewjob/([A-Za-z0-9]+)`)
)

// NewIndeed builds the adapter for indeed.com viewjob pages.
func NewIndeed(extraSkills ...string) *Adapter {
	return New(Profile{
		Source:     "indeed",
		BaseOrigin: "https://www.indeed.com",
		Locators: Locators{
			Title: []string{
				"h1[data-testid='jobsearch-JobInfoHeader-title']",
				".jobsearch-JobInfoHeader-title span",
				".jobsearch-JobInfoHeader-title",
				"h1.icl-u-xs-mb--xs",
				"h1",
			},
			CompanyName: []string{
				"[data-testid='inlineHeader-companyName'] a",
				"[data-testid='inlineHeader-companyName']",
				"[data-company-name='true']",
				".jobsearch-InlineCompanyRating div:first-child",
			},
			CompanyLink: []string{
				"[data-testid='inlineHeader-companyName'] a@href",
				".jobsearch-InlineCompanyRating a@href",
			},
			Location: []string{
				"[data-testid='inlineHeader-companyLocation']",
				"[data-testid='job-location']",
				"#jobLocationText",
				".jobsearch-JobInfoHeader-subtitle > div:last-child",
			},
			Salary: []string{
				"#salaryInfoAndJobType span",
				"#salaryInfoAndJobType",
				"[data-testid='attribute_snippet_testid']",
				".jobsearch-JobMetadataHeader-item",
			},
			Description: []string{
				"#jobDescriptionText",
				".jobsearch-jobDescriptionText",
			},
			PostedDate: []string{
				".jobsearch-JobMetadataFooter > div:first-child",
				"[data-testid='myJobsStateDate']",
			},
			JobType: []string{
				"#salaryInfoAndJobType span:last-child",
			},
		},
		JobIDPatterns: []*regexp.Regexp{reIndeedParamID, reIndeedPathID},
		JobIDAttrs:    []string{"data-jk", "data-job-id"},
		ExtraSkills:   extraSkills,
	})
}
