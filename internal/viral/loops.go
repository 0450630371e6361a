// Package viral designs referral/viral loops and projects their
// K-factor. Projections are compounding-interest style illustrations,
// not calibrated forecasts.
package viral

import "github.com/KristjanToop/gaas-growth-hacker/internal/growth"

// Loop is a static template for one viral-loop archetype. Baseline
// K-factor and cycle time are hand-authored priors; friction points and
// optimizations adjust the projection at runtime.
type Loop struct {
	Archetype       string                 `json:"archetype"`
	Description     string                 `json:"description"`
	BaselineKFactor float64                `json:"baseline_k_factor"`
	CycleTimeDays   float64                `json:"cycle_time_days"`
	FrictionPoints  []string               `json:"friction_points"`
	Optimizations   []string               `json:"optimizations"`
	BestFor         []growth.BusinessModel `json:"best_for"`
}

// Archetypes returns every loop template, in a fixed order.
func Archetypes() []Loop {
	return archetypes
}

var archetypes = []Loop{
	{
		Archetype:       "collaboration-invite",
		Description:     "Users pull coworkers in because the product is better together: shared docs, projects, channels.",
		BaselineKFactor: 0.8,
		CycleTimeDays:   5,
		FrictionPoints: []string{
			"Invitees must create an account before seeing anything",
			"No preview of what they were invited to",
		},
		Optimizations: []string{
			"Guest access before signup",
			"Invite prompts on empty states",
			"Invite emails that preview the shared content",
		},
		BestFor: []growth.BusinessModel{growth.ModelB2BSaaS, growth.ModelAPIProduct},
	},
	{
		Archetype:       "referral-incentive",
		Description:     "Existing users recruit new ones for a reward on both sides.",
		BaselineKFactor: 0.5,
		CycleTimeDays:   10,
		FrictionPoints: []string{
			"Reward feels too small to bother",
			"Referral link is buried in settings",
			"Redemption requires payment details",
		},
		Optimizations: []string{
			"Double-sided rewards",
			"Show the referral CTA right after a success moment",
			"One-tap share links",
			"Progress bar toward the next reward",
		},
		BestFor: []growth.BusinessModel{growth.ModelB2CSaaS, growth.ModelEcommerce, growth.ModelConsumerApp},
	},
	{
		Archetype:       "network-effects",
		Description:     "The product's value grows with each participant, so users recruit their own counterparties.",
		BaselineKFactor: 0.7,
		CycleTimeDays:   21,
		FrictionPoints: []string{
			"Weak single-player mode before the network arrives",
			"Cold-start empty state for early users",
		},
		Optimizations: []string{
			"Seed content or liquidity for new users",
			"Team onboarding templates",
			"Guest access across organizations",
		},
		BestFor: []growth.BusinessModel{growth.ModelMarketplace, growth.ModelB2BSaaS},
	},
	{
		Archetype:       "content-sharing",
		Description:     "User-created artifacts circulate publicly and carry an acquisition hook.",
		BaselineKFactor: 0.45,
		CycleTimeDays:   7,
		FrictionPoints: []string{
			"Watermark/attribution feels spammy",
		},
		Optimizations: []string{
			"Attribution footer with a signup link",
			"One-click social export",
			"SEO-indexed public pages for shared artifacts",
		},
		BestFor: []growth.BusinessModel{growth.ModelConsumerApp, growth.ModelB2CSaaS},
	},
	{
		Archetype:       "word-of-mouth",
		Description:     "Organic recommendation with no built-in mechanism; the product is simply worth talking about.",
		BaselineKFactor: 0.4,
		CycleTimeDays:   14,
		FrictionPoints: []string{
			"No built-in share moment",
			"The value delivered is private and hard to show off",
		},
		Optimizations: []string{
			"Add a share prompt after the aha moment",
			"Make output embeddable",
			"Public profile or showcase pages",
		},
		BestFor: []growth.BusinessModel{
			growth.ModelB2BSaaS, growth.ModelB2CSaaS, growth.ModelMarketplace,
			growth.ModelEcommerce, growth.ModelConsumerApp, growth.ModelAPIProduct,
		},
	},
}

// ArchetypeFor picks the first loop template that lists the business
// model. word-of-mouth lists every model, so a match always exists.
func ArchetypeFor(model growth.BusinessModel) Loop {
	for _, l := range archetypes {
		for _, m := range l.BestFor {
			if m == model {
				return l
			}
		}
	}
	return archetypes[len(archetypes)-1]
}
