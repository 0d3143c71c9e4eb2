package sanitize

import (
	"regexp"
	"strconv"
	"strings"

	"jobsift-engine/internal/domain"
)

var (
	// everything except digits, - $ , . K k M m and whitespace
	reSalaryStrip = regexp.MustCompile(`[^\d\-$,.KkMm\s]`)
	reSalaryToken = regexp.MustCompile(`\d[\d,]*(?:\.\d+)?[kKmM]?`)
)

// ParseSalary extracts a salary range from free text like
// "$80,000 - $120,000 a year" or "$50k/hr (Employer est.)".
//
// One numeric token means min == max. With two or more, min is the first and
// max is the second; tokens past the second are ignored.
// k/K scales a token by 1e3 and m/M by 1e6, judged against the
// token's own text. Returns nil for empty input; when no numeric token is
// found the raw text is still preserved.
func ParseSalary(text string) *domain.Salary {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	sal := &domain.Salary{Raw: text, Currency: domain.DefaultCurrency}

	stripped := reSalaryStrip.ReplaceAllString(text, " ")
	tokens := reSalaryToken.FindAllString(stripped, -1)
	if len(tokens) == 0 {
		return sal
	}

	first := salaryTokenValue(tokens[0])
	sal.Min = &first
	if len(tokens) > 1 {
		second := salaryTokenValue(tokens[1])
		sal.Max = &second
	} else {
		max := first
		sal.Max = &max
	}

	low := strings.ToLower(text)
	switch {
	case strings.Contains(low, "hour"):
		sal.Period = domain.PeriodHourly
	case strings.Contains(low, "month"):
		sal.Period = domain.PeriodMonthly
	default:
		sal.Period = domain.PeriodYearly
	}
	sal.IsEstimated = strings.Contains(low, "estimate")

	return sal
}

func salaryTokenValue(tok string) float64 {
	scale := 1.0
	low := strings.ToLower(tok)
	if strings.Contains(low, "k") {
		scale = 1_000
	} else if strings.Contains(low, "m") {
		scale = 1_000_000
	}

	num := strings.TrimRight(strings.ReplaceAll(tok, ",", ""), "kKmM")
	v, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0
	}
	return v * scale
}
