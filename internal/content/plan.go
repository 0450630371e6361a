// Package content builds content/SEO plans keyed by product category,
// audience, and team size.
package content

import (
	"fmt"

	"github.com/KristjanToop/gaas-growth-hacker/internal/growth"
)

// Pillar is one content theme with its supporting cluster topics.
type Pillar struct {
	Name          string   `json:"name"`
	ClusterTopics []string `json:"cluster_topics"`
}

// Plan is a full content/SEO program.
type Plan struct {
	Pillars       []Pillar `json:"pillars"`
	Cadence       string   `json:"cadence"`
	Distribution  []string `json:"distribution"`
	SEOPriorities []string `json:"seo_priorities"`
}

// BuildPlan assembles the plan from static templates interpolated with
// the product category.
func BuildPlan(ctx growth.BusinessContext) Plan {
	category := ctx.Product.Category
	if category == "" {
		category = "your category"
	}

	return Plan{
		Pillars:       pillars(category, ctx.Competitors),
		Cadence:       cadence(ctx.Company.TeamSize),
		Distribution:  distribution(ctx.Product.Audience),
		SEOPriorities: seoPriorities(category),
	}
}

func pillars(category string, competitors []growth.Competitor) []Pillar {
	p := []Pillar{
		{
			Name: fmt.Sprintf("Choosing a %s solution", category),
			ClusterTopics: []string{
				fmt.Sprintf("How to evaluate %s tools", category),
				fmt.Sprintf("%s buyer's checklist", category),
				"Build vs. buy",
			},
		},
		{
			Name: fmt.Sprintf("%s best practices", category),
			ClusterTopics: []string{
				"Common mistakes and how to avoid them",
				"Benchmarks: what good looks like",
				"Workflow templates",
			},
		},
		{
			Name: "Customer proof",
			ClusterTopics: []string{
				"Before/after case studies",
				"Implementation stories by segment",
			},
		},
	}

	// Comparison pillar only exists when there are named competitors.
	if len(competitors) > 0 {
		topics := make([]string, 0, len(competitors))
		for _, c := range competitors {
			topics = append(topics, fmt.Sprintf("Us vs. %s", c.Name))
		}
		p = append(p, Pillar{Name: "Comparisons & alternatives", ClusterTopics: topics})
	}
	return p
}

// cadence scales publishing frequency with team size: content is the
// first thing small teams over-commit to.
func cadence(teamSize int) string {
	switch {
	case teamSize <= 0 || teamSize < 5:
		return "1 substantial piece per week; repurpose each into 3-5 social posts"
	case teamSize < 15:
		return "2-3 pieces per week plus a biweekly newsletter"
	default:
		return "Daily publishing across formats with a dedicated owner per pillar"
	}
}

func distribution(a growth.Audience) []string {
	if a.Benchmarks() == growth.AudienceB2B {
		return []string{"LinkedIn", "niche newsletters", "practitioner communities", "webinars"}
	}
	return []string{"TikTok/Reels", "YouTube", "Instagram", "newsletter"}
}

func seoPriorities(category string) []string {
	return []string{
		fmt.Sprintf("Own the '%s alternatives' and comparison keywords", category),
		fmt.Sprintf("Build topical authority: every cluster links back to the %s pillar", category),
		"Target long-tail 'how to' queries pulled from persona pains",
	}
}
