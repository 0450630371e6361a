package channels

import (
	"sort"
	"strings"

	"github.com/KristjanToop/gaas-growth-hacker/internal/growth"
	"github.com/KristjanToop/gaas-growth-hacker/internal/scoring"
)

// Fit-score adjustments. The scale is a neutral 50 plus bonuses and
// penalties, clamped to [0,100].
const (
	baseFit        = 50
	audienceBonus  = 20
	industryBonus  = 10
	notForPenalty  = 25
	budgetPenalty  = 15
	bigBudgetBonus = 10
	easyBonus      = 5
	hardPenalty    = 5

	// largeBudgetUSD is where unlimited-scalability channels start to
	// pay off.
	largeBudgetUSD = 10000
)

// EstimatedCAC returns the channel's typical cost per acquisition for
// the given audience segment.
func (p Profile) EstimatedCAC(a growth.Audience) float64 {
	return p.AvgCAC[a.Benchmarks()]
}

// tagMatches reports whether any tag matches the needle, case-
// insensitively, in either substring direction ("b2b" matches the tag
// "b2b enterprise" and vice versa).
func tagMatches(tags []string, needle string) bool {
	needle = strings.ToLower(strings.TrimSpace(needle))
	if needle == "" {
		return false
	}
	for _, tag := range tags {
		tag = strings.ToLower(tag)
		if strings.Contains(tag, needle) || strings.Contains(needle, tag) {
			return true
		}
	}
	return false
}

// FitScore rates how well a channel suits the business on a 0-100
// scale: audience and industry tag matches add, "not for" matches and
// unaffordable CAC subtract, and difficulty nudges the result.
func FitScore(p Profile, industry string, audience growth.Audience, monthlyBudget float64) int {
	score := baseFit

	if tagMatches(p.BestFor, string(audience)) {
		score += audienceBonus
	}
	if tagMatches(p.BestFor, industry) {
		score += industryBonus
	}
	if tagMatches(p.NotFor, string(audience)) || tagMatches(p.NotFor, industry) {
		score -= notForPenalty
	}

	if monthlyBudget > 0 {
		// A channel is sustainable when the budget covers roughly ten
		// acquisitions a month; below that the spend never exits the
		// learning phase.
		if p.EstimatedCAC(audience) > monthlyBudget/10 {
			score -= budgetPenalty
		}
		if monthlyBudget >= largeBudgetUSD && p.Scalability == TierUnlimited {
			score += bigBudgetBonus
		}
	}

	switch p.Difficulty {
	case TierLow:
		score += easyBonus
	case TierHigh:
		score -= hardPenalty
	}

	return scoring.Clamp(score, 0, 100)
}

// Priority converts a fit score plus qualitative potential into the
// final 1-10 ranking value.
//
// Target-CAC comparison is monotone: raising the target while the
// channel's estimated CAC stays put never lowers the priority.
func Priority(fit int, p Profile, competition string, audience growth.Audience, targetCAC *float64) int {
	score := fit

	switch p.TimeToResult {
	case TierLow: // fast results
		score += 10
	case TierHigh: // slow burn
		score -= 5
	}

	switch p.Scalability {
	case TierHigh:
		score += 5
	case TierUnlimited:
		score += 10
	}

	// Saturated markets bid up auction-based channels.
	if strings.EqualFold(competition, "high") && strings.HasPrefix(p.Name, "paid-") {
		score -= 10
	}

	if targetCAC != nil && *targetCAC > 0 {
		est := p.EstimatedCAC(audience)
		switch {
		case est <= *targetCAC:
			score += 15
		case est <= 2.0*(*targetCAC):
			score -= 8
		default:
			score -= 15
		}
	}

	return scoring.Clamp(score/10, 1, 10)
}

// Ranked pairs a channel profile with its computed scores.
type Ranked struct {
	Profile      Profile `json:"profile"`
	FitScore     int     `json:"fit_score"`
	Priority     int     `json:"priority"`
	EstimatedCAC float64 `json:"estimated_cac"`
}

// Rank scores the whole catalog against a business context and returns
// it sorted by priority descending. The sort is stable, so catalog
// order breaks ties deterministically.
func Rank(ctx growth.BusinessContext, targetCAC *float64) []Ranked {
	ranked := make([]Ranked, 0, len(catalog))
	for _, p := range catalog {
		fit := FitScore(p, ctx.Company.Industry, ctx.Product.Audience, ctx.Company.MonthlyBudgetUSD)
		ranked = append(ranked, Ranked{
			Profile:      p,
			FitScore:     fit,
			Priority:     Priority(fit, p, ctx.Market.Competition, ctx.Product.Audience, targetCAC),
			EstimatedCAC: p.EstimatedCAC(ctx.Product.Audience),
		})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Priority > ranked[j].Priority
	})
	return ranked
}

// Plan tiers the ranked channels: the top 2 get real budget, the next 3
// get small experiments, the rest wait.
type Plan struct {
	Primary      []Ranked `json:"primary"`
	Secondary    []Ranked `json:"secondary"`
	Experimental []Ranked `json:"experimental"`
}

const (
	primaryCount   = 2
	secondaryCount = 3
)

// BuildPlan splits a ranked channel list into primary / secondary /
// experimental tiers.
func BuildPlan(ranked []Ranked) Plan {
	var plan Plan
	for i, r := range ranked {
		switch {
		case i < primaryCount:
			plan.Primary = append(plan.Primary, r)
		case i < primaryCount+secondaryCount:
			plan.Secondary = append(plan.Secondary, r)
		default:
			plan.Experimental = append(plan.Experimental, r)
		}
	}
	return plan
}
