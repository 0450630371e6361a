package channels

import (
	"testing"

	"github.com/KristjanToop/gaas-growth-hacker/internal/growth"
)

func profileByName(t *testing.T, name string) Profile {
	t.Helper()
	for _, p := range Catalog() {
		if p.Name == name {
			return p
		}
	}
	t.Fatalf("channel %q not in catalog", name)
	return Profile{}
}

// --- Catalog ---

func TestCatalog_WellFormed(t *testing.T) {
	seen := map[string]bool{}
	for _, p := range Catalog() {
		if p.Name == "" {
			t.Error("channel with empty name")
		}
		if seen[p.Name] {
			t.Errorf("duplicate channel %q", p.Name)
		}
		seen[p.Name] = true
		if len(p.BestFor) == 0 {
			t.Errorf("%s has no best_for tags", p.Name)
		}
		for _, a := range []growth.Audience{growth.AudienceB2B, growth.AudienceB2C} {
			if p.AvgCAC[a] <= 0 {
				t.Errorf("%s has no CAC for %s", p.Name, a)
			}
		}
	}
}

// --- FitScore ---

func TestFitScore_AudienceMatchBeatsNonMatch(t *testing.T) {
	outbound := profileByName(t, "outbound-sales")

	b2b := FitScore(outbound, "fintech", growth.AudienceB2B, 0)
	b2c := FitScore(outbound, "fintech", growth.AudienceB2C, 0)
	if b2b <= b2c {
		t.Errorf("outbound-sales fit: b2b %d should beat b2c %d", b2b, b2c)
	}
}

func TestFitScore_NotForPenalty(t *testing.T) {
	paidSocial := profileByName(t, "paid-social")

	// "b2b enterprise" in NotFor matches the b2b audience.
	withPenalty := FitScore(paidSocial, "", growth.AudienceB2B, 0)
	without := FitScore(paidSocial, "", growth.AudienceB2C, 0)
	if withPenalty >= without {
		t.Errorf("paid-social fit: b2b %d should trail b2c %d", withPenalty, without)
	}
}

func TestFitScore_SmallBudgetPenalizesExpensiveChannels(t *testing.T) {
	outbound := profileByName(t, "outbound-sales")

	tight := FitScore(outbound, "enterprise", growth.AudienceB2B, 500)
	roomy := FitScore(outbound, "enterprise", growth.AudienceB2B, 50000)
	if tight >= roomy {
		t.Errorf("outbound-sales fit at $500/mo = %d, should trail $50k/mo = %d", tight, roomy)
	}
}

func TestFitScore_InRange(t *testing.T) {
	for _, p := range Catalog() {
		for _, budget := range []float64{0, 100, 5000, 100000} {
			got := FitScore(p, "saas", growth.AudienceB2B, budget)
			if got < 0 || got > 100 {
				t.Errorf("FitScore(%s, budget %v) = %d, out of [0,100]", p.Name, budget, got)
			}
		}
	}
}

// --- Priority ---

func TestPriority_InRange(t *testing.T) {
	target := 100.0
	for _, p := range Catalog() {
		fit := FitScore(p, "saas", growth.AudienceB2C, 2000)
		got := Priority(fit, p, "high", growth.AudienceB2C, &target)
		if got < 1 || got > 10 {
			t.Errorf("Priority(%s) = %d, out of [1,10]", p.Name, got)
		}
	}
}

// Raising the target CAC while the channel's estimated CAC is fixed
// never lowers the priority.
func TestPriority_MonotonicInTargetCAC(t *testing.T) {
	for _, p := range Catalog() {
		fit := FitScore(p, "saas", growth.AudienceB2B, 5000)
		prev := -1
		for _, target := range []float64{10, 50, 100, 200, 400, 800, 1600} {
			tc := target
			got := Priority(fit, p, "medium", growth.AudienceB2B, &tc)
			if prev >= 0 && got < prev {
				t.Errorf("%s: priority dropped from %d to %d when target CAC rose to %v",
					p.Name, prev, got, target)
			}
			prev = got
		}
	}
}

func TestPriority_NilTargetCAC(t *testing.T) {
	p := profileByName(t, "email-marketing")
	fit := FitScore(p, "ecommerce", growth.AudienceB2C, 3000)
	if got := Priority(fit, p, "low", growth.AudienceB2C, nil); got < 1 || got > 10 {
		t.Errorf("Priority without target CAC = %d, out of [1,10]", got)
	}
}

// --- Rank / BuildPlan ---

func testContext() growth.BusinessContext {
	return growth.BusinessContext{
		Company: growth.CompanyProfile{
			Stage:            growth.StageSeed,
			Industry:         "saas",
			Model:            growth.ModelB2BSaaS,
			TeamSize:         6,
			MonthlyBudgetUSD: 4000,
		},
		Product: growth.ProductProfile{
			Audience: growth.AudienceB2B,
			Pricing:  growth.PricingSubscription,
			Category: "developer tools",
		},
		Market: growth.MarketProfile{Competition: "medium"},
	}
}

func TestRank_SortedDescending(t *testing.T) {
	ranked := Rank(testContext(), nil)
	if len(ranked) != len(Catalog()) {
		t.Fatalf("Rank returned %d channels, want %d", len(ranked), len(Catalog()))
	}
	for i := 1; i < len(ranked); i++ {
		if ranked[i].Priority > ranked[i-1].Priority {
			t.Errorf("rank order broken at %d: %s(%d) above %s(%d)",
				i, ranked[i-1].Profile.Name, ranked[i-1].Priority,
				ranked[i].Profile.Name, ranked[i].Priority)
		}
	}
}

func TestRank_Deterministic(t *testing.T) {
	a := Rank(testContext(), nil)
	b := Rank(testContext(), nil)
	for i := range a {
		if a[i].Profile.Name != b[i].Profile.Name {
			t.Fatalf("rank order unstable at %d: %s vs %s", i, a[i].Profile.Name, b[i].Profile.Name)
		}
	}
}

func TestBuildPlan_TierSizes(t *testing.T) {
	plan := BuildPlan(Rank(testContext(), nil))
	if len(plan.Primary) != 2 {
		t.Errorf("primary = %d channels, want 2", len(plan.Primary))
	}
	if len(plan.Secondary) != 3 {
		t.Errorf("secondary = %d channels, want 3", len(plan.Secondary))
	}
	if got := len(plan.Experimental); got != len(Catalog())-5 {
		t.Errorf("experimental = %d channels, want %d", got, len(Catalog())-5)
	}
}
