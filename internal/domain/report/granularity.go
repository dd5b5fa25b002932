package report

import (
	"profitline/internal/core/apperror"
)

// Granularity is the time-bucketing resolution of a report run.
type Granularity string

const (
	GranularityHourly  Granularity = "hourly"
	GranularityDaily   Granularity = "daily"
	GranularityMonthly Granularity = "monthly"
	GranularityYearly  Granularity = "yearly"
)

// ParseGranularity validates a caller-supplied granularity selector.
func ParseGranularity(s string) (Granularity, error) {
	switch Granularity(s) {
	case GranularityHourly, GranularityDaily, GranularityMonthly, GranularityYearly:
		return Granularity(s), nil
	}
	return "", apperror.NewValidation("unknown granularity").
		WithDetail("field", "granularity").
		WithDetail("value", s).
		WithDetail("allowed", []string{"hourly", "daily", "monthly", "yearly"})
}
