// Package scoring implements the pure scoring primitives shared by every
// advisory capability: benchmark classification, the weighted health
// score, and tier-based ranking.
//
// Nothing here performs I/O or mutates shared state. Callers are
// responsible for presence checks: a classifier is never invoked for a
// metric the caller does not have.
package scoring

// Status is the qualitative tier a measured rate falls into, ordered
// from worst to best.
type Status string

const (
	StatusCritical         Status = "critical"
	StatusNeedsImprovement Status = "needs-improvement"
	StatusAverage          Status = "average"
	StatusGood             Status = "good"
	StatusExcellent        Status = "excellent"
)

// Score maps a status to a 0-100 sub-score for aggregation into the
// weighted health score.
func (s Status) Score() int {
	switch s {
	case StatusCritical:
		return 20
	case StatusNeedsImprovement:
		return 40
	case StatusAverage:
		return 60
	case StatusGood:
		return 80
	case StatusExcellent:
		return 95
	}
	return 0
}

// Family determines how a metric's worst tier is named and whether a
// fourth "excellent" tier exists above "good".
type Family int

const (
	// FamilyAcquisition covers acquisition and activation metrics:
	// the worst tier is needs-improvement, there is no excellent tier.
	FamilyAcquisition Family = iota

	// FamilyRetention covers churn, retention, and funnel-stage
	// conversion: the worst tier is critical.
	FamilyRetention

	// FamilyRatio covers ratio metrics (LTV:CAC, net revenue
	// retention): an excellent tier is defined above good.
	FamilyRatio
)

func (f Family) worst() Status {
	if f == FamilyRetention {
		return StatusCritical
	}
	return StatusNeedsImprovement
}

func (f Family) hasExcellent() bool { return f == FamilyRatio }

// Thresholds is a three-tier benchmark row. For higher-is-better metrics
// Poor < Average < Good; when LowerIsBetter is set (churn) the ordering
// inverts and a rate at or below Good is good. Excellent is only read
// for FamilyRatio.
type Thresholds struct {
	Poor      float64
	Average   float64
	Good      float64
	Excellent float64
	// LowerIsBetter inverts all comparisons (smaller rate = better).
	LowerIsBetter bool
}

// Classify places a measured rate into a status tier.
//
// Boundary policy: a rate exactly on a threshold always classifies to
// the better tier (inclusive toward good). Callers must not invoke
// Classify for a metric whose value is unknown — absence is handled by
// skipping, never by defaulting.
func Classify(rate float64, t Thresholds, f Family) Status {
	atLeast := func(threshold float64) bool {
		if t.LowerIsBetter {
			return rate <= threshold
		}
		return rate >= threshold
	}

	switch {
	case f.hasExcellent() && atLeast(t.Excellent):
		return StatusExcellent
	case atLeast(t.Good):
		return StatusGood
	case atLeast(t.Average):
		return StatusAverage
	case atLeast(t.Poor):
		return StatusNeedsImprovement
	default:
		return f.worst()
	}
}
