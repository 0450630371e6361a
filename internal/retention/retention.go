// Package retention builds churn diagnoses and retention programs.
package retention

import (
	"github.com/KristjanToop/gaas-growth-hacker/internal/benchmarks"
	"github.com/KristjanToop/gaas-growth-hacker/internal/growth"
	"github.com/KristjanToop/gaas-growth-hacker/internal/scoring"
)

// Program is the retention strategy for a business: a diagnosis of the
// metrics the caller actually has, plus tactic bundles per lifecycle
// phase. Status fields are nil when the underlying metric is unknown —
// a missing churn rate is not classified, it is skipped.
type Program struct {
	ChurnStatus     *scoring.Status `json:"churn_status,omitempty"`
	RetentionStatus *scoring.Status `json:"retention_d30_status,omitempty"`
	Onboarding      []string        `json:"onboarding"`
	Lifecycle       []string        `json:"lifecycle"`
	Resurrection    []string        `json:"resurrection"`
	CohortGuidance  []string        `json:"cohort_guidance"`
}

var onboardingTactics = map[growth.Audience][]string{
	growth.AudienceB2B: {
		"Map the activation milestone per segment and instrument time-to-value",
		"Assign a success owner to every account above the size threshold",
		"Replace feature tours with a single guided path to the first win",
	},
	growth.AudienceB2C: {
		"Cut first-run setup to under a minute",
		"Deliver one visible win in the first session",
		"Ask for a single preference and personalize the first screen with it",
	},
}

var lifecycleTactics = map[growth.Audience][]string{
	growth.AudienceB2B: {
		"Quarterly usage reviews with the account champion",
		"Alert on week-over-week usage drops and trigger a check-in",
		"Publish a customer health score and act on reds weekly",
	},
	growth.AudienceB2C: {
		"Weekly value-recap notifications tied to actual usage",
		"Streaks or progress mechanics around the core habit",
		"Win-back offers triggered by 14 days of inactivity",
	},
}

var resurrectionTactics = map[growth.Audience][]string{
	growth.AudienceB2B: {
		"Exit interviews for every churned account; tag reasons",
		"A 90-day re-engagement sequence anchored on what changed since they left",
		"Downgrade-instead-of-cancel flow with a parked plan",
	},
	growth.AudienceB2C: {
		"What-you-missed digest for dormant users",
		"One-tap reactivation from email, no login wall",
		"Time-limited comeback incentive",
	},
}

var cohortGuidance = []string{
	"Track retention by weekly signup cohort, not blended averages",
	"Compare D1/D7/D30 curves across acquisition channels",
	"Flag any cohort whose curve fails to flatten — that product version leaks",
}

// BuildProgram assembles the retention program for a context. Tactic
// tables are segmented by audience; metric diagnoses are included only
// for metrics the caller supplied.
func BuildProgram(ctx growth.BusinessContext) Program {
	seg := ctx.Product.Audience.Benchmarks()
	p := Program{
		Onboarding:     onboardingTactics[seg],
		Lifecycle:      lifecycleTactics[seg],
		Resurrection:   resurrectionTactics[seg],
		CohortGuidance: cohortGuidance,
	}

	if churn := ctx.Metrics.MonthlyChurn; churn != nil {
		if row, ok := benchmarks.Lookup(benchmarks.MetricMonthlyChurn, ctx.Product.Audience); ok {
			s := scoring.Classify(*churn, row.Thresholds, row.Family)
			p.ChurnStatus = &s
		}
	}
	if d30 := ctx.Metrics.RetentionD30; d30 != nil {
		if row, ok := benchmarks.Lookup(benchmarks.MetricRetentionD30, ctx.Product.Audience); ok {
			s := scoring.Classify(*d30, row.Thresholds, row.Family)
			p.RetentionStatus = &s
		}
	}
	return p
}
