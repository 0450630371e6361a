package capability

import (
	"fmt"

	"github.com/KristjanToop/gaas-growth-hacker/internal/benchmarks"
	"github.com/KristjanToop/gaas-growth-hacker/internal/channels"
	"github.com/KristjanToop/gaas-growth-hacker/internal/growth"
	"github.com/KristjanToop/gaas-growth-hacker/internal/retention"
	"github.com/KristjanToop/gaas-growth-hacker/internal/scoring"
	"github.com/KristjanToop/gaas-growth-hacker/internal/viral"
)

// RecommendedAction is one prioritized next step from the full analysis.
type RecommendedAction struct {
	Priority       string `json:"priority"` // critical | high | medium | low
	Action         string `json:"action"`
	Rationale      string `json:"rationale"`
	ExpectedImpact string `json:"expected_impact"`
	Effort         string `json:"effort"` // minimal | low | medium | high
}

// Assessment is the analyze_growth payload: the health report plus the
// cross-capability synthesis.
type Assessment struct {
	Health    HealthReport        `json:"health"`
	Channels  channels.Plan       `json:"channels"`
	Retention retention.Program   `json:"retention"`
	Viral     viral.Design        `json:"viral"`
	Actions   []RecommendedAction `json:"actions"`
	Insights  []string            `json:"insights,omitempty"`
}

func analyzeDef() Definition {
	return Definition{
		Kind:        KindAnalyze,
		Description: "Run the full growth assessment: health, channels, retention, virality, prioritized actions",
		Params: withContextParams(
			ParamSpec{Name: "target_cac", Type: TypeNumber,
				Description: "Target cost per acquisition in USD for the channel plan"},
		),
		Handler: func(inv Invocation) Result {
			ctx := inv.Context

			assessment := Assessment{
				Health:    BuildHealthReport(ctx),
				Channels:  channels.BuildPlan(channels.Rank(ctx, floatParam(inv.Params, "target_cac"))),
				Retention: retention.BuildProgram(ctx),
				Viral:     viral.NewDesign(viral.ArchetypeFor(ctx.Company.Model)),
			}
			assessment.Actions = recommendActions(ctx, assessment)
			assessment.Insights = deriveInsights(ctx, assessment)

			explanation := fmt.Sprintf("Growth health %d/100. %d actions recommended",
				assessment.Health.Score, len(assessment.Actions))
			if len(assessment.Actions) > 0 {
				explanation += fmt.Sprintf("; start with: %s", assessment.Actions[0].Action)
			}
			explanation += "."

			return Result{
				Success:     true,
				Data:        assessment,
				Explanation: explanation,
				Confidence:  healthConfidence(len(assessment.Health.Components)),
			}
		},
	}
}

// actionPriority maps a component's benchmark status to an action
// priority tier.
func actionPriority(s scoring.Status) string {
	switch s {
	case scoring.StatusCritical:
		return "critical"
	case scoring.StatusNeedsImprovement:
		return "high"
	case scoring.StatusAverage:
		return "medium"
	default:
		return "low"
	}
}

// componentActions holds the fix template per health component.
var componentActions = map[string]RecommendedAction{
	"activation": {
		Action:         "Rebuild onboarding around a single guided path to the first win",
		ExpectedImpact: "Every point of activation compounds through the rest of the funnel",
		Effort:         "medium",
	},
	"retention_d30": {
		Action:         "Stand up weekly cohort tracking and a lifecycle program for the leakiest segment",
		ExpectedImpact: "A flattening D30 curve is the strongest growth asset at any stage",
		Effort:         "medium",
	},
	"monthly_churn": {
		Action:         "Run churn exit interviews and ship a downgrade-instead-of-cancel flow",
		ExpectedImpact: "Cutting churn raises LTV and every acquisition dollar's return",
		Effort:         "low",
	},
	"virality": {
		Action:         "Instrument the referral loop and ship its lowest-friction optimization",
		ExpectedImpact: "Each K-factor point compounds monthly at the loop's cycle time",
		Effort:         "low",
	},
	"ltv_to_cac": {
		Action:         "Shift budget from the most expensive channel toward the top-ranked organic one",
		ExpectedImpact: "Unit economics must clear 3:1 before paid spend scales",
		Effort:         "minimal",
	},
}

// recommendActions turns underperforming health components into
// prioritized actions, worst first. A context with no measured metrics
// gets a single instrumentation action.
func recommendActions(ctx growth.BusinessContext, a Assessment) []RecommendedAction {
	if len(a.Health.Components) == 0 {
		return []RecommendedAction{{
			Priority:       "high",
			Action:         "Instrument activation, retention, and churn before optimizing anything",
			Rationale:      "No growth metrics were supplied; every recommendation would be a guess",
			ExpectedImpact: "Turns the next assessment from priors into a real diagnosis",
			Effort:         "low",
		}}
	}

	var actions []RecommendedAction
	for _, tier := range []scoring.Status{
		scoring.StatusCritical, scoring.StatusNeedsImprovement, scoring.StatusAverage,
	} {
		for _, c := range a.Health.Components {
			if c.Status != tier {
				continue
			}
			tmpl, ok := componentActions[c.Name]
			if !ok {
				continue
			}
			tmpl.Priority = actionPriority(c.Status)
			tmpl.Rationale = fmt.Sprintf("%s is %s (%.2f vs a %.2f benchmark)",
				c.Name, c.Status, c.Value, c.Benchmark)
			actions = append(actions, tmpl)
		}
	}

	// A healthy board still gets a growth lever: fund the top channel.
	if len(actions) == 0 && len(a.Channels.Primary) > 0 {
		top := a.Channels.Primary[0]
		actions = append(actions, RecommendedAction{
			Priority:       "medium",
			Action:         fmt.Sprintf("Scale %s, the top-ranked channel", top.Profile.Name),
			Rationale:      "Every measured metric is at or above benchmark; the constraint is volume",
			ExpectedImpact: fmt.Sprintf("Estimated CAC $%.0f at priority %d/10", top.EstimatedCAC, top.Priority),
			Effort:         "medium",
		})
	}
	return actions
}

// deriveInsights adds cross-metric observations the per-component
// actions cannot see.
func deriveInsights(ctx growth.BusinessContext, a Assessment) []string {
	var insights []string

	if payback, ok := ctx.Metrics.CACPaybackMonths(); ok && payback > 12 {
		insights = append(insights,
			fmt.Sprintf("CAC payback is %.0f months; over 12 strains working capital for a %s business",
				payback, ctx.Company.Model))
	}

	if ctx.Metrics.NRR != nil {
		if row, ok := benchmarks.Lookup(benchmarks.MetricNRR, ctx.Product.Audience); ok {
			status := scoring.Classify(*ctx.Metrics.NRR, row.Thresholds, row.Family)
			insights = append(insights,
				fmt.Sprintf("Net revenue retention %.2f is %s for your audience", *ctx.Metrics.NRR, status))
		}
	}

	if k := ctx.Metrics.ViralCoefficient; k != nil && a.Viral.AdjustedKFactor > *k {
		insights = append(insights,
			fmt.Sprintf("Your measured K-factor %.2f trails the %s archetype's adjusted %.2f; the loop has headroom",
				*k, a.Viral.Loop.Archetype, a.Viral.AdjustedKFactor))
	}

	if len(a.Health.Missing) > 0 {
		insights = append(insights,
			fmt.Sprintf("Unmeasured: %v. The health score renormalizes over what you did measure", a.Health.Missing))
	}

	return insights
}
