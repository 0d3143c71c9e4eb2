package sanitize

import (
	"testing"

	"jobsift-engine/internal/domain"
)

func TestParseSalaryEmpty(t *testing.T) {
	if got := ParseSalary("   "); got != nil {
		t.Errorf("ParseSalary(blank) = %+v, want nil", got)
	}
}

func TestParseSalaryNoTokens(t *testing.T) {
	got := ParseSalary("Competitive pay")
	if got == nil {
		t.Fatal("ParseSalary returned nil for non-empty text")
	}
	if got.Raw != "Competitive pay" || got.Currency != domain.DefaultCurrency {
		t.Errorf("raw/currency = %q/%q", got.Raw, got.Currency)
	}
	if got.Min != nil || got.Max != nil {
		t.Errorf("expected nil bounds, got min=%v max=%v", got.Min, got.Max)
	}
}

func TestParseSalaryRanges(t *testing.T) {
	cases := []struct {
		name      string
		in        string
		min, max  float64
		period    domain.SalaryPeriod
		estimated bool
	}{
		{"yearly range", "$80,000 - $120,000 a year", 80000, 120000, domain.PeriodYearly, false},
		{"single value", "$95,000 a year", 95000, 95000, domain.PeriodYearly, false},
		{"k suffix", "$50k - $70k a year", 50000, 70000, domain.PeriodYearly, false},
		{"m suffix", "$1.2M a year", 1200000, 1200000, domain.PeriodYearly, false},
		{"hourly", "$25 - $35 an hour", 25, 35, domain.PeriodHourly, false},
		{"monthly", "$8,000 a month", 8000, 8000, domain.PeriodMonthly, false},
		{"extra tokens ignored", "$70,000 - $90,000 - $110,000 a year", 70000, 90000, domain.PeriodYearly, false},
		{"employer estimate", "$60,000 a year (Employer estimate)", 60000, 60000, domain.PeriodYearly, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ParseSalary(tc.in)
			if got == nil {
				t.Fatalf("ParseSalary(%q) = nil", tc.in)
			}
			if got.Min == nil || *got.Min != tc.min {
				t.Errorf("min = %v, want %v", got.Min, tc.min)
			}
			if got.Max == nil || *got.Max != tc.max {
				t.Errorf("max = %v, want %v", got.Max, tc.max)
			}
			if got.Period != tc.period {
				t.Errorf("period = %q, want %q", got.Period, tc.period)
			}
			if got.IsEstimated != tc.estimated {
				t.Errorf("isEstimated = %v, want %v", got.IsEstimated, tc.estimated)
			}
			if got.Currency != domain.DefaultCurrency {
				t.Errorf("currency = %q, want %q", got.Currency, domain.DefaultCurrency)
			}
		})
	}
}
