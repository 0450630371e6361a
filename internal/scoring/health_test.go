package scoring

import (
	"math/rand"
	"testing"
)

// --- HealthScore ---

func TestHealthScore_Empty(t *testing.T) {
	score, priority := HealthScore(nil)
	if score != 50 {
		t.Errorf("HealthScore(nil) = %d, want neutral 50", score)
	}
	if priority != "" {
		t.Errorf("priority = %q, want empty", priority)
	}
}

// A single present component gets the full weight: 80 at weight 0.25
// must yield 80, not 80*0.25.
func TestHealthScore_RenormalizesOverPresentComponents(t *testing.T) {
	score, priority := HealthScore([]Component{
		{Name: "activation", Score: 80, Weight: 0.25},
	})
	if score != 80 {
		t.Errorf("HealthScore(single 80 @ 0.25) = %d, want 80", score)
	}
	if priority != "activation" {
		t.Errorf("priority = %q, want activation", priority)
	}
}

func TestHealthScore_WeightedAverage(t *testing.T) {
	score, priority := HealthScore([]Component{
		{Name: "activation", Score: 80, Weight: 0.25},
		{Name: "retention", Score: 40, Weight: 0.25},
	})
	if score != 60 {
		t.Errorf("HealthScore = %d, want 60", score)
	}
	if priority != "retention" {
		t.Errorf("priority = %q, want retention (argmin)", priority)
	}
}

func TestHealthScore_UnevenWeights(t *testing.T) {
	// (90*0.3 + 30*0.1) / 0.4 = 75
	score, _ := HealthScore([]Component{
		{Name: "a", Score: 90, Weight: 0.3},
		{Name: "b", Score: 30, Weight: 0.1},
	})
	if score != 75 {
		t.Errorf("HealthScore = %d, want 75", score)
	}
}

func TestHealthScore_AlwaysInRange(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 200; trial++ {
		n := rng.Intn(6)
		comps := make([]Component, 0, n)
		for i := 0; i < n; i++ {
			comps = append(comps, Component{
				Name:   "c",
				Score:  rng.Intn(101),
				Weight: rng.Float64(),
			})
		}
		score, _ := HealthScore(comps)
		if score < 0 || score > 100 {
			t.Fatalf("HealthScore out of range: %d (components %+v)", score, comps)
		}
	}
}

func TestHealthScore_OrderInvariant(t *testing.T) {
	comps := []Component{
		{Name: "activation", Score: 80, Weight: 0.25},
		{Name: "retention", Score: 55, Weight: 0.3},
		{Name: "virality", Score: 62, Weight: 0.15},
		{Name: "economics", Score: 71, Weight: 0.3},
	}
	wantScore, wantPriority := HealthScore(comps)

	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 20; trial++ {
		shuffled := make([]Component, len(comps))
		copy(shuffled, comps)
		rng.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})
		score, priority := HealthScore(shuffled)
		if score != wantScore || priority != wantPriority {
			t.Fatalf("permuted HealthScore = (%d, %q), want (%d, %q)",
				score, priority, wantScore, wantPriority)
		}
	}
}
