package scoring

import "math"

// neutralHealth is returned when no sub-score is available at all.
const neutralHealth = 50

// Component is one sub-metric's contribution to the health score.
// Components are only constructed for metrics the caller actually has;
// a missing metric simply never becomes a Component.
type Component struct {
	Name   string  `json:"name"`
	Score  int     `json:"score"`  // 0-100
	Weight float64 `json:"weight"` // relative, renormalized over present components
}

// HealthScore aggregates the present components into a single 0-100
// integer and names the lowest-scoring component as the priority area.
//
// Weights are renormalized over the components actually present: the
// weighted sum is divided by the sum of the weights used, not by the
// full design-time weight total, so missing data does not drag the
// aggregate down. With no components at all the score is a neutral 50
// and the priority area is empty.
func HealthScore(components []Component) (score int, priority string) {
	var weightedSum, weightTotal float64
	minScore := math.MaxInt
	for _, c := range components {
		weightedSum += float64(c.Score) * c.Weight
		weightTotal += c.Weight
		if c.Score < minScore {
			minScore = c.Score
			priority = c.Name
		}
	}
	if weightTotal == 0 {
		return neutralHealth, ""
	}
	return int(math.Round(weightedSum / weightTotal)), priority
}
