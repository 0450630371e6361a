package funnel

import (
	"strings"

	"github.com/KristjanToop/gaas-growth-hacker/internal/scoring"
)

// remedyCount is how many remedies each bottleneck carries.
const remedyCount = 3

// remedyTable maps canonical stage names to candidate fixes, best first.
var remedyTable = map[string][]string{
	"visit-to-signup": {
		"Rewrite the headline copy around the visitor's primary pain",
		"Add social proof (logos, testimonials) next to the signup CTA",
		"Shorten the signup form to email-only",
		"A/B test CTA placement above the fold",
	},
	"signup-to-activation": {
		"Add an onboarding checklist that drives users to the aha moment",
		"Send a day-1 activation email nudging the first key action",
		"Remove optional steps from first-run setup",
		"Add in-product tooltips on the core workflow",
	},
	"activation-to-paid": {
		"Simplify the pricing page to one recommended plan",
		"Trigger upgrade prompts at usage-limit moments",
		"Offer a trial extension email to engaged non-payers",
		"Add an annual-plan discount at checkout",
	},
	"paid-to-retained": {
		"Launch a lifecycle email program keyed to usage drops",
		"Add a cancellation save flow with a downgrade option",
		"Schedule success check-ins for accounts with falling usage",
		"Build a usage-health dashboard for account owners",
	},
}

// genericRemedies covers stage names the table doesn't know.
var genericRemedies = []string{
	"Interview recent drop-offs at this stage to find the blocker",
	"Instrument the stage and review session recordings",
	"Remove one step from the flow and remeasure",
}

// RemediesFor returns the top remedies for a stage, falling back to the
// generic list for unrecognized stage names.
func RemediesFor(stage string) []string {
	remedies, ok := remedyTable[stage]
	if !ok {
		remedies = genericRemedies
	}
	if len(remedies) > remedyCount {
		remedies = remedies[:remedyCount]
	}
	out := make([]string, len(remedies))
	copy(out, remedies)
	return out
}

// Keyword lists for inferring how expensive a remedy is to ship.
var (
	lowEffortKeywords = []string{
		"copy", "email", "tooltip", "social proof", "cta",
		"shorten", "remove", "checklist", "discount",
	}
	highEffortKeywords = []string{
		"redesign", "rebuild", "dashboard", "integration",
		"migration", "program", "flow",
	}
)

// inferEffort keyword-matches a remedy against the effort lists.
// Low-effort keywords win when both match: shipping copy beats
// shipping infrastructure.
func inferEffort(remedy string) scoring.Effort {
	lower := strings.ToLower(remedy)
	for _, kw := range lowEffortKeywords {
		if strings.Contains(lower, kw) {
			return scoring.EffortLow
		}
	}
	for _, kw := range highEffortKeywords {
		if strings.Contains(lower, kw) {
			return scoring.EffortHigh
		}
	}
	return scoring.EffortMedium
}

// goalAligned reports whether the caller's primary goal appears in the
// remedy text (case-insensitive).
func goalAligned(remedy, goal string) bool {
	goal = strings.TrimSpace(goal)
	if goal == "" {
		return false
	}
	return strings.Contains(strings.ToLower(remedy), strings.ToLower(goal))
}
