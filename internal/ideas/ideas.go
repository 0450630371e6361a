// Package ideas holds the growth-idea catalog and its ranking.
package ideas

import (
	"sort"

	"github.com/KristjanToop/gaas-growth-hacker/internal/growth"
	"github.com/KristjanToop/gaas-growth-hacker/internal/scoring"
)

// Idea is a static growth-experiment candidate tagged with the AARRR
// stage it moves and effort/impact/risk tiers.
type Idea struct {
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Stage       growth.FunnelStage `json:"stage"`
	Impact      scoring.Impact     `json:"impact"`
	Effort      scoring.Effort     `json:"effort"`
	Risk        scoring.Risk       `json:"risk"`
	// BestFor restricts the idea to certain business models; empty
	// means universally applicable.
	BestFor []growth.BusinessModel `json:"best_for,omitempty"`
}

func (i Idea) fits(model growth.BusinessModel) bool {
	if len(i.BestFor) == 0 {
		return true
	}
	for _, m := range i.BestFor {
		if m == model {
			return true
		}
	}
	return false
}

// Ranked pairs an idea with its computed priority score.
type Ranked struct {
	Idea  Idea `json:"idea"`
	Score int  `json:"score"`
}

// Filter returns catalog ideas for a business model, optionally
// restricted to one AARRR stage (nil = all stages).
func Filter(stage *growth.FunnelStage, model growth.BusinessModel) []Idea {
	var out []Idea
	for _, idea := range catalog {
		if stage != nil && idea.Stage != *stage {
			continue
		}
		if !idea.fits(model) {
			continue
		}
		out = append(out, idea)
	}
	return out
}

// Rank orders ideas by 2*impact + effort + risk, descending. The sort
// is stable so catalog order breaks ties deterministically.
func Rank(list []Idea) []Ranked {
	ranked := make([]Ranked, 0, len(list))
	for _, idea := range list {
		ranked = append(ranked, Ranked{
			Idea:  idea,
			Score: scoring.RankScore(idea.Impact, idea.Effort, idea.Risk),
		})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}

// Catalog returns every idea, in a fixed order.
func Catalog() []Idea {
	return catalog
}

var catalog = []Idea{
	{
		Title:       "Comparison landing pages",
		Description: "Publish 'you vs. competitor' pages for every named competitor to capture switching intent.",
		Stage:       growth.StageAcquisition,
		Impact:      scoring.ImpactMedium,
		Effort:      scoring.EffortLow,
		Risk:        scoring.RiskLow,
	},
	{
		Title:       "Free tool as lead magnet",
		Description: "Ship a single-purpose free tool adjacent to the core product and gate results behind signup.",
		Stage:       growth.StageAcquisition,
		Impact:      scoring.ImpactHigh,
		Effort:      scoring.EffortHigh,
		Risk:        scoring.RiskMedium,
	},
	{
		Title:       "Founder-led cold outreach",
		Description: "Daily personalized outreach from the founder to 20 ICP accounts.",
		Stage:       growth.StageAcquisition,
		Impact:      scoring.ImpactMedium,
		Effort:      scoring.EffortMedium,
		Risk:        scoring.RiskLow,
		BestFor:     []growth.BusinessModel{growth.ModelB2BSaaS, growth.ModelAPIProduct},
	},
	{
		Title:       "Programmatic SEO pages",
		Description: "Generate indexable pages from structured data (templates, integrations, use cases).",
		Stage:       growth.StageAcquisition,
		Impact:      scoring.ImpactHigh,
		Effort:      scoring.EffortHigh,
		Risk:        scoring.RiskMedium,
	},
	{
		Title:       "Personalized onboarding paths",
		Description: "Branch first-run setup by use case so every segment reaches its own aha moment faster.",
		Stage:       growth.StageActivation,
		Impact:      scoring.ImpactHigh,
		Effort:      scoring.EffortMedium,
		Risk:        scoring.RiskLow,
	},
	{
		Title:       "Aha-moment email sequence",
		Description: "Three-email sequence nudging new signups to the one action that predicts retention.",
		Stage:       growth.StageActivation,
		Impact:      scoring.ImpactMedium,
		Effort:      scoring.EffortLow,
		Risk:        scoring.RiskLow,
	},
	{
		Title:       "Concierge onboarding for big accounts",
		Description: "White-glove setup calls for signups above a size threshold.",
		Stage:       growth.StageActivation,
		Impact:      scoring.ImpactMedium,
		Effort:      scoring.EffortMedium,
		Risk:        scoring.RiskLow,
		BestFor:     []growth.BusinessModel{growth.ModelB2BSaaS},
	},
	{
		Title:       "Usage-drop win-back triggers",
		Description: "Detect week-over-week usage drops and fire a tailored re-engagement sequence.",
		Stage:       growth.StageRetention,
		Impact:      scoring.ImpactHigh,
		Effort:      scoring.EffortMedium,
		Risk:        scoring.RiskLow,
	},
	{
		Title:       "Weekly value-recap digest",
		Description: "Email each account a weekly summary of the value the product produced for them.",
		Stage:       growth.StageRetention,
		Impact:      scoring.ImpactMedium,
		Effort:      scoring.EffortLow,
		Risk:        scoring.RiskLow,
	},
	{
		Title:       "Community of practice",
		Description: "Host a customer community where power users answer each other and surface champions.",
		Stage:       growth.StageRetention,
		Impact:      scoring.ImpactMedium,
		Effort:      scoring.EffortHigh,
		Risk:        scoring.RiskMedium,
	},
	{
		Title:       "Annual-plan switch campaign",
		Description: "Offer two months free for switching to annual billing; locks in retention and cash.",
		Stage:       growth.StageRevenue,
		Impact:      scoring.ImpactMedium,
		Effort:      scoring.EffortLow,
		Risk:        scoring.RiskLow,
	},
	{
		Title:       "Usage-based upsell prompts",
		Description: "Prompt upgrades in-product at the moment a usage limit is hit.",
		Stage:       growth.StageRevenue,
		Impact:      scoring.ImpactHigh,
		Effort:      scoring.EffortMedium,
		Risk:        scoring.RiskLow,
	},
	{
		Title:       "Pricing-page A/B test",
		Description: "Test a three-tier layout with one visually recommended plan.",
		Stage:       growth.StageRevenue,
		Impact:      scoring.ImpactMedium,
		Effort:      scoring.EffortLow,
		Risk:        scoring.RiskMedium,
	},
	{
		Title:       "Double-sided referral program",
		Description: "Reward both the referrer and the invitee; surface the CTA after success moments.",
		Stage:       growth.StageReferral,
		Impact:      scoring.ImpactHigh,
		Effort:      scoring.EffortMedium,
		Risk:        scoring.RiskMedium,
	},
	{
		Title:       "Shareable output artifacts",
		Description: "Make every exported artifact carry a tasteful attribution link.",
		Stage:       growth.StageReferral,
		Impact:      scoring.ImpactMedium,
		Effort:      scoring.EffortLow,
		Risk:        scoring.RiskLow,
	},
	{
		Title:       "Viral waitlist mechanics",
		Description: "Let waitlisted users jump the queue by inviting friends.",
		Stage:       growth.StageReferral,
		Impact:      scoring.ImpactMoonshot,
		Effort:      scoring.EffortMedium,
		Risk:        scoring.RiskHigh,
		BestFor:     []growth.BusinessModel{growth.ModelConsumerApp, growth.ModelB2CSaaS},
	},
}
