// Package market synthesizes personas and competitor battle-cards from
// the caller's context. Everything here is template selection plus
// string interpolation — deterministic, no generation.
package market

import (
	"fmt"

	"github.com/KristjanToop/gaas-growth-hacker/internal/growth"
)

// BuildPersonas returns template personas for the audience type,
// specialized to the product category. Caller-supplied personas take
// precedence: when the context already has personas, they are returned
// unchanged.
func BuildPersonas(ctx growth.BusinessContext) []growth.Persona {
	if len(ctx.Personas) > 0 {
		return ctx.Personas
	}

	category := ctx.Product.Category
	if category == "" {
		category = "this product"
	}

	if ctx.Product.Audience.Benchmarks() == growth.AudienceB2B {
		return b2bPersonas(category)
	}
	return b2cPersonas(category)
}

func b2bPersonas(category string) []growth.Persona {
	return []growth.Persona{
		{
			Name: "The Economic Buyer",
			Role: "VP / budget owner",
			Pains: []string{
				fmt.Sprintf("Can't quantify the ROI of %s spend", category),
				"Tool sprawl across the team",
			},
			Goals:         []string{"Defensible business case", "Consolidation"},
			WateringHoles: []string{"LinkedIn", "industry newsletters", "peer communities"},
			Objections:    []string{"We already pay for something adjacent", "Switching cost"},
		},
		{
			Name: "The Practitioner",
			Role: "Individual contributor, daily user",
			Pains: []string{
				fmt.Sprintf("Current %s workflow is manual and error-prone", category),
				"Waiting on other teams to unblock",
			},
			Goals:         []string{"Ship faster", "Look competent to the team"},
			WateringHoles: []string{"Reddit/HN", "Slack & Discord communities", "YouTube walkthroughs"},
			Objections:    []string{"Learning curve", "Will this survive procurement?"},
		},
		{
			Name: "The Internal Champion",
			Role: "Team lead pushing for adoption",
			Pains: []string{
				"Needs wins to justify the tools they sponsor",
				"Gets blamed when a rollout stalls",
			},
			Goals:         []string{"Fast, visible rollout", "Usage numbers to show leadership"},
			WateringHoles: []string{"Webinars", "case-study libraries", "LinkedIn"},
			Objections:    []string{"Adoption risk", "Security review burden"},
		},
	}
}

func b2cPersonas(category string) []growth.Persona {
	return []growth.Persona{
		{
			Name: "The Early Adopter",
			Role: "Tries everything first",
			Pains: []string{
				fmt.Sprintf("Existing %s options feel stale", category),
			},
			Goals:         []string{"Novelty and status from discovering things first"},
			WateringHoles: []string{"Product Hunt", "X/Twitter", "TikTok"},
			Objections:    []string{"Is this actually different?"},
		},
		{
			Name: "The Pragmatist",
			Role: "Mainstream user",
			Pains: []string{
				fmt.Sprintf("No time to learn a complicated %s app", category),
			},
			Goals:         []string{"Solve the problem in minutes, then forget about it"},
			WateringHoles: []string{"App store search", "Instagram", "friend recommendations"},
			Objections:    []string{"Another subscription?", "Privacy of my data"},
		},
		{
			Name: "The Skeptic",
			Role: "Burned by similar products before",
			Pains: []string{
				fmt.Sprintf("Tried %s apps that overpromised", category),
			},
			Goals:         []string{"Proof before commitment"},
			WateringHoles: []string{"Review sites", "Reddit threads", "YouTube reviews"},
			Objections:    []string{"Free tier limits", "Cancellation friction"},
		},
	}
}
