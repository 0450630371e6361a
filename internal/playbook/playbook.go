// Package playbook assembles a marketing playbook from the idea catalog
// and the channel ranking, keyed by company stage and business model.
package playbook

import (
	"fmt"

	"github.com/KristjanToop/gaas-growth-hacker/internal/channels"
	"github.com/KristjanToop/gaas-growth-hacker/internal/growth"
	"github.com/KristjanToop/gaas-growth-hacker/internal/ideas"
)

// playCount is how many ranked plays a playbook carries.
const playCount = 5

// Milestones are the 30/60/90-day checkpoints.
type Milestones struct {
	Day30 string `json:"day_30"`
	Day60 string `json:"day_60"`
	Day90 string `json:"day_90"`
}

// Playbook is the assembled marketing plan.
type Playbook struct {
	Focus      growth.FunnelStage `json:"focus"`
	Rationale  string             `json:"rationale"`
	Plays      []ideas.Ranked     `json:"plays"`
	Channels   channels.Plan      `json:"channels"`
	Milestones Milestones         `json:"milestones"`
}

// focusFor maps company maturity to the AARRR stage that deserves the
// team's attention. Pre-product-market-fit companies earn nothing from
// pouring traffic into a leaky product.
func focusFor(stage growth.Stage) (growth.FunnelStage, string) {
	switch stage {
	case growth.StageIdea, growth.StagePreSeed:
		return growth.StageActivation,
			"Before product-market fit, prove that the users you do get reach the product's value"
	case growth.StageSeed:
		return growth.StageRetention,
			"At seed, a flattening retention curve is the strongest fundraising and growth asset"
	case growth.StageGrowth:
		return growth.StageAcquisition,
			"With retention proven, the constraint is top-of-funnel volume"
	case growth.StageScale:
		return growth.StageRevenue,
			"At scale, monetization efficiency compounds faster than incremental traffic"
	default:
		return growth.StageActivation, "Unknown stage — default to proving activation"
	}
}

var milestoneTable = map[growth.FunnelStage]Milestones{
	growth.StageAcquisition: {
		Day30: "Two primary channels instrumented with per-channel CAC tracking",
		Day60: "First channel hitting target CAC at 2x the baseline volume",
		Day90: "Scalable playbook documented for the winning channel; kill the losers",
	},
	growth.StageActivation: {
		Day30: "Aha moment defined and instrumented; baseline activation rate measured",
		Day60: "Top onboarding experiment shipped and measured against the baseline",
		Day90: "Activation rate at or above the audience benchmark",
	},
	growth.StageRetention: {
		Day30: "Weekly cohort curves live; leak stage identified",
		Day60: "Lifecycle program running for the leakiest segment",
		Day90: "D30 retention curve flattening above the benchmark",
	},
	growth.StageRevenue: {
		Day30: "Pricing page experiment live; upgrade prompts instrumented",
		Day60: "Annual-plan mix up measurably; expansion revenue tracked separately",
		Day90: "LTV:CAC at or above 3 with payback under 12 months",
	},
	growth.StageReferral: {
		Day30: "Referral loop shipped with K-factor instrumentation",
		Day60: "First loop optimization measured against baseline K",
		Day90: "Referral contributing a measurable share of new signups",
	},
}

// Build assembles the playbook for a business context. Plays come from
// the idea catalog filtered to the focus stage and ranked; channels
// come from the channel scorer.
func Build(ctx growth.BusinessContext, targetCAC *float64) Playbook {
	focus, rationale := focusFor(ctx.Company.Stage)

	// An explicit objective overrides the stage-derived focus.
	if len(ctx.Objectives) > 0 && ctx.Objectives[0].Stage != "" {
		focus = ctx.Objectives[0].Stage
		rationale = fmt.Sprintf("Focused on %s per the stated objective: %s",
			focus, ctx.Objectives[0].Description)
	}

	plays := ideas.Rank(ideas.Filter(&focus, ctx.Company.Model))
	if len(plays) > playCount {
		plays = plays[:playCount]
	}

	return Playbook{
		Focus:      focus,
		Rationale:  rationale,
		Plays:      plays,
		Channels:   channels.BuildPlan(channels.Rank(ctx, targetCAC)),
		Milestones: milestoneTable[focus],
	}
}
