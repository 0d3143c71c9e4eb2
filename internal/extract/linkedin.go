package extract

import "regexp"

var (
	reLinkedInViewID  = regexp.MustCompile(`/jobs/view/(\d+)`)
	reLinkedInParamID = regexp.MustCompile(`[?&]currentJobId=(\d+)`)
)

// NewLinkedIn builds the adapter for linkedin.com job view pages.
func NewLinkedIn(extraSkills ...string) *Adapter {
	return New(Profile{
		Source:     "linkedin",
		BaseOrigin: "https://www.linkedin.com",
		Locators: Locators{
			Title: []string{
				"h1.top-card-layout__title",
				"h1.topcard__title",
				".job-details-jobs-unified-top-card__job-title h1",
				"h1",
			},
			CompanyName: []string{
				"a.topcard__org-name-link",
				".top-card-layout__card .topcard__flavor a",
				".job-details-jobs-unified-top-card__company-name a",
				".job-details-jobs-unified-top-card__company-name",
			},
			CompanyLink: []string{
				"a.topcard__org-name-link@href",
				".job-details-jobs-unified-top-card__company-name a@href",
			},
			CompanySize: []string{
				".org-top-card-summary-info-list__info-item",
			},
			CompanyIndustry: []string{
				".top-card-layout__second-subline",
			},
			Location: []string{
				".topcard__flavor--bullet",
				".top-card-layout__second-subline .topcard__flavor--bullet",
				".job-details-jobs-unified-top-card__primary-description-container .tvm__text",
				"[data-testid='job-location']",
			},
			Salary: []string{
				".compensation__salary",
				".salary.compensation__salary",
				".job-details-jobs-unified-top-card__job-insight span",
			},
			Description: []string{
				".show-more-less-html__markup",
				".description__text",
				"#job-details",
			},
			PostedDate: []string{
				".posted-time-ago__text",
				".topcard__flavor--metadata.posted-time-ago__text",
				"time",
			},
			ApplicantCount: []string{
				".num-applicants__caption",
				".topcard__flavor--metadata.num-applicants__caption",
			},
			JobType: []string{
				".description__job-criteria-list li:nth-child(2) .description__job-criteria-text",
			},
			ExperienceLevel: []string{
				".description__job-criteria-list li:nth-child(1) .description__job-criteria-text",
			},
		},
		JobIDPatterns: []*regexp.Regexp{reLinkedInViewID, reLinkedInParamID},
		JobIDAttrs:    []string{"data-job-id", "data-entity-urn"},
		ExtraSkills:   extraSkills,
	})
}
