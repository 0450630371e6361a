package viral

import (
	"math"

	"github.com/KristjanToop/gaas-growth-hacker/internal/scoring"
)

// K-factor adjustment model: each friction point costs 0.02, each
// available optimization recovers 0.01 up to a 0.1 cap, and the result
// stays within [0.1, 1.5].
const (
	frictionPenalty   = 0.02
	optimizationBonus = 0.01
	optimizationCap   = 0.1
	kFactorFloor      = 0.1
	kFactorCeil       = 1.5
)

// AdjustedKFactor applies the friction/optimization adjustment to a
// loop's baseline K-factor.
func AdjustedKFactor(baseline float64, frictionCount, optimizationCount int) float64 {
	bonus := math.Min(optimizationBonus*float64(optimizationCount), optimizationCap)
	adjusted := baseline - frictionPenalty*float64(frictionCount) + bonus
	return scoring.ClampFloat(adjusted, kFactorFloor, kFactorCeil)
}

// MonthlyMultiplier projects the compounding monthly growth from
// virality alone: (1+K)^(30/cycleDays). A cycle time of zero (or less)
// is undefined — ok is false and no exponentiation happens.
func MonthlyMultiplier(kFactor, cycleTimeDays float64) (float64, bool) {
	if cycleTimeDays <= 0 {
		return 0, false
	}
	return math.Pow(1+kFactor, 30/cycleTimeDays), true
}

// Design is a loop archetype instantiated for a business.
type Design struct {
	Loop              Loop     `json:"loop"`
	AdjustedKFactor   float64  `json:"adjusted_k_factor"`
	MonthlyMultiplier *float64 `json:"monthly_multiplier,omitempty"`
}

// NewDesign computes the adjusted projection for a loop template.
func NewDesign(loop Loop) Design {
	d := Design{
		Loop:            loop,
		AdjustedKFactor: AdjustedKFactor(loop.BaselineKFactor, len(loop.FrictionPoints), len(loop.Optimizations)),
	}
	if mult, ok := MonthlyMultiplier(d.AdjustedKFactor, loop.CycleTimeDays); ok {
		d.MonthlyMultiplier = &mult
	}
	return d
}
