package ideas

import (
	"testing"

	"github.com/KristjanToop/gaas-growth-hacker/internal/growth"
	"github.com/KristjanToop/gaas-growth-hacker/internal/scoring"
)

// --- Catalog ---

func TestCatalog_CoversEveryAARRRStage(t *testing.T) {
	seen := map[growth.FunnelStage]bool{}
	for _, idea := range Catalog() {
		seen[idea.Stage] = true
	}
	for _, raw := range growth.FunnelStageValues() {
		if !seen[growth.FunnelStage(raw)] {
			t.Errorf("no catalog idea for stage %s", raw)
		}
	}
}

func TestCatalog_TiersAreValid(t *testing.T) {
	for _, idea := range Catalog() {
		if scoring.RankScore(idea.Impact, idea.Effort, idea.Risk) == 0 {
			t.Errorf("idea %q has unrecognized tiers (%s/%s/%s)",
				idea.Title, idea.Impact, idea.Effort, idea.Risk)
		}
	}
}

// --- Filter ---

func TestFilter_ByStage(t *testing.T) {
	stage := growth.StageRetention
	got := Filter(&stage, growth.ModelB2CSaaS)
	if len(got) == 0 {
		t.Fatal("no retention ideas for b2c-saas")
	}
	for _, idea := range got {
		if idea.Stage != growth.StageRetention {
			t.Errorf("idea %q has stage %s, want retention", idea.Title, idea.Stage)
		}
	}
}

func TestFilter_RespectsBusinessModel(t *testing.T) {
	for _, idea := range Filter(nil, growth.ModelEcommerce) {
		if idea.Title == "Founder-led cold outreach" {
			t.Error("b2b-only idea leaked into ecommerce filter")
		}
	}
}

func TestFilter_AllStagesWhenNil(t *testing.T) {
	all := Filter(nil, growth.ModelB2BSaaS)
	stage := growth.StageAcquisition
	one := Filter(&stage, growth.ModelB2BSaaS)
	if len(all) <= len(one) {
		t.Errorf("unfiltered list (%d) should exceed single-stage list (%d)", len(all), len(one))
	}
}

// --- Rank ---

func TestRank_Descending(t *testing.T) {
	ranked := Rank(Catalog())
	for i := 1; i < len(ranked); i++ {
		if ranked[i].Score > ranked[i-1].Score {
			t.Errorf("rank order broken at %d: %d above %d", i, ranked[i-1].Score, ranked[i].Score)
		}
	}
}

// Two ideas identical except for impact: the higher-impact one never
// ranks below the other.
func TestRank_MonotonicInImpact(t *testing.T) {
	low := Idea{Title: "a", Impact: scoring.ImpactLow, Effort: scoring.EffortMedium, Risk: scoring.RiskMedium}
	high := Idea{Title: "b", Impact: scoring.ImpactHigh, Effort: scoring.EffortMedium, Risk: scoring.RiskMedium}

	ranked := Rank([]Idea{low, high})
	if ranked[0].Idea.Title != "b" {
		t.Errorf("higher-impact idea ranked below lower-impact one: %+v", ranked)
	}
}

func TestRank_StableOnTies(t *testing.T) {
	a := Idea{Title: "first", Impact: scoring.ImpactMedium, Effort: scoring.EffortLow, Risk: scoring.RiskLow}
	b := Idea{Title: "second", Impact: scoring.ImpactMedium, Effort: scoring.EffortLow, Risk: scoring.RiskLow}

	ranked := Rank([]Idea{a, b})
	if ranked[0].Idea.Title != "first" || ranked[1].Idea.Title != "second" {
		t.Errorf("tie order not preserved: %q, %q", ranked[0].Idea.Title, ranked[1].Idea.Title)
	}
}
