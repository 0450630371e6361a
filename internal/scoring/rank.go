package scoring

// Impact, Effort, and Risk are the ordered tiers used to rank candidate
// ideas and optimizations.
type Impact string

const (
	ImpactLow      Impact = "low"
	ImpactMedium   Impact = "medium"
	ImpactHigh     Impact = "high"
	ImpactMoonshot Impact = "moonshot"
)

type Effort string

const (
	EffortLow    Effort = "low"
	EffortMedium Effort = "medium"
	EffortHigh   Effort = "high"
)

type Risk string

const (
	RiskLow    Risk = "low"
	RiskMedium Risk = "medium"
	RiskHigh   Risk = "high"
)

// Tier weights. Impact counts double in the rank score; for effort and
// risk, lower is better so the scale inverts.
var (
	impactWeights = map[Impact]int{
		ImpactLow: 1, ImpactMedium: 2, ImpactHigh: 3, ImpactMoonshot: 4,
	}
	effortWeights = map[Effort]int{
		EffortHigh: 1, EffortMedium: 2, EffortLow: 3,
	}
	riskWeights = map[Risk]int{
		RiskHigh: 1, RiskMedium: 2, RiskLow: 3,
	}
)

// RankScore computes the weighted-sum priority 2*impact + effort + risk.
// Unknown tiers contribute zero, so a malformed record sinks rather
// than crashes. Consumers sort descending with a stable sort to keep
// tie order deterministic.
func RankScore(i Impact, e Effort, r Risk) int {
	return 2*impactWeights[i] + effortWeights[e] + riskWeights[r]
}

// Clamp bounds v to [lo, hi].
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampFloat bounds v to [lo, hi].
func ClampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
