package viral

import (
	"math"
	"testing"

	"github.com/KristjanToop/gaas-growth-hacker/internal/growth"
)

// --- AdjustedKFactor ---

// Concrete scenario: baseline 0.7, 3 friction points, 5 optimizations
// -> 0.7 - 0.06 + min(0.05, 0.1) = 0.69.
func TestAdjustedKFactor_Formula(t *testing.T) {
	got := AdjustedKFactor(0.7, 3, 5)
	if math.Abs(got-0.69) > 1e-9 {
		t.Errorf("AdjustedKFactor(0.7, 3, 5) = %v, want 0.69", got)
	}
}

func TestAdjustedKFactor_OptimizationBonusCapped(t *testing.T) {
	// 50 optimizations: bonus caps at 0.1, not 0.5.
	got := AdjustedKFactor(0.5, 0, 50)
	if math.Abs(got-0.6) > 1e-9 {
		t.Errorf("AdjustedKFactor(0.5, 0, 50) = %v, want 0.6 (capped bonus)", got)
	}
}

func TestAdjustedKFactor_ClampsAtFloor(t *testing.T) {
	// 100 friction points would drive the raw value negative.
	if got := AdjustedKFactor(0.7, 100, 0); got != 0.1 {
		t.Errorf("AdjustedKFactor(0.7, 100, 0) = %v, want floor 0.1", got)
	}
}

func TestAdjustedKFactor_ClampsAtCeil(t *testing.T) {
	if got := AdjustedKFactor(2.0, 0, 0); got != 1.5 {
		t.Errorf("AdjustedKFactor(2.0, 0, 0) = %v, want ceiling 1.5", got)
	}
}

func TestAdjustedKFactor_AlwaysInRange(t *testing.T) {
	for _, friction := range []int{0, 1, 10, 100, 1000} {
		for _, opts := range []int{0, 1, 10, 100, 1000} {
			got := AdjustedKFactor(0.7, friction, opts)
			if got < 0.1 || got > 1.5 {
				t.Errorf("AdjustedKFactor(0.7, %d, %d) = %v, out of [0.1, 1.5]",
					friction, opts, got)
			}
		}
	}
}

// --- MonthlyMultiplier ---

func TestMonthlyMultiplier_Compounding(t *testing.T) {
	// K=0.5, 15-day cycle: (1.5)^2 = 2.25.
	got, ok := MonthlyMultiplier(0.5, 15)
	if !ok {
		t.Fatal("MonthlyMultiplier(0.5, 15) should be defined")
	}
	if math.Abs(got-2.25) > 1e-9 {
		t.Errorf("MonthlyMultiplier(0.5, 15) = %v, want 2.25", got)
	}
}

func TestMonthlyMultiplier_ZeroCycleUndefined(t *testing.T) {
	if _, ok := MonthlyMultiplier(0.5, 0); ok {
		t.Error("MonthlyMultiplier with zero cycle time should be undefined")
	}
}

// --- Archetypes / ArchetypeFor ---

func TestArchetypes_WellFormed(t *testing.T) {
	for _, l := range Archetypes() {
		if l.BaselineKFactor <= 0 || l.BaselineKFactor > 1.5 {
			t.Errorf("%s baseline K = %v, implausible", l.Archetype, l.BaselineKFactor)
		}
		if l.CycleTimeDays <= 0 {
			t.Errorf("%s cycle time = %v, must be positive", l.Archetype, l.CycleTimeDays)
		}
		if len(l.Optimizations) == 0 {
			t.Errorf("%s has no optimizations", l.Archetype)
		}
	}
}

func TestArchetypeFor_EveryModelMatches(t *testing.T) {
	for _, raw := range growth.BusinessModelValues() {
		model := growth.BusinessModel(raw)
		loop := ArchetypeFor(model)
		if loop.Archetype == "" {
			t.Errorf("ArchetypeFor(%s) returned empty archetype", model)
		}
	}
}

func TestArchetypeFor_B2BSaaSPrefersCollaboration(t *testing.T) {
	if got := ArchetypeFor(growth.ModelB2BSaaS).Archetype; got != "collaboration-invite" {
		t.Errorf("ArchetypeFor(b2b-saas) = %s, want collaboration-invite", got)
	}
}

// --- NewDesign ---

func TestNewDesign_ComputesProjection(t *testing.T) {
	loop := ArchetypeFor(growth.ModelConsumerApp)
	d := NewDesign(loop)

	want := AdjustedKFactor(loop.BaselineKFactor, len(loop.FrictionPoints), len(loop.Optimizations))
	if d.AdjustedKFactor != want {
		t.Errorf("AdjustedKFactor = %v, want %v", d.AdjustedKFactor, want)
	}
	if d.MonthlyMultiplier == nil {
		t.Fatal("MonthlyMultiplier should be defined for a positive cycle time")
	}
	if *d.MonthlyMultiplier <= 1 {
		t.Errorf("MonthlyMultiplier = %v, want > 1 for positive K", *d.MonthlyMultiplier)
	}
}
