package content

import (
	"strings"
	"testing"

	"github.com/KristjanToop/gaas-growth-hacker/internal/growth"
)

func TestBuildPlan_CategoryInterpolated(t *testing.T) {
	plan := BuildPlan(growth.BusinessContext{
		Product: growth.ProductProfile{Audience: growth.AudienceB2B, Category: "payroll"},
	})
	if !strings.Contains(plan.Pillars[0].Name, "payroll") {
		t.Errorf("pillar name %q should mention the category", plan.Pillars[0].Name)
	}
	if !strings.Contains(plan.SEOPriorities[0], "payroll") {
		t.Errorf("seo priority %q should mention the category", plan.SEOPriorities[0])
	}
}

func TestBuildPlan_ComparisonPillarNeedsCompetitors(t *testing.T) {
	base := growth.BusinessContext{
		Product: growth.ProductProfile{Audience: growth.AudienceB2B, Category: "crm"},
	}
	without := BuildPlan(base)

	base.Competitors = []growth.Competitor{{Name: "Acme"}}
	with := BuildPlan(base)

	if len(with.Pillars) != len(without.Pillars)+1 {
		t.Errorf("competitor context should add a comparison pillar: %d vs %d",
			len(with.Pillars), len(without.Pillars))
	}
	last := with.Pillars[len(with.Pillars)-1]
	if !strings.Contains(last.ClusterTopics[0], "Acme") {
		t.Errorf("comparison topic %q should name the competitor", last.ClusterTopics[0])
	}
}

func TestBuildPlan_CadenceScalesWithTeam(t *testing.T) {
	small := BuildPlan(growth.BusinessContext{
		Company: growth.CompanyProfile{TeamSize: 2},
		Product: growth.ProductProfile{Audience: growth.AudienceB2C},
	})
	large := BuildPlan(growth.BusinessContext{
		Company: growth.CompanyProfile{TeamSize: 40},
		Product: growth.ProductProfile{Audience: growth.AudienceB2C},
	})
	if small.Cadence == large.Cadence {
		t.Error("cadence should differ between a 2-person and 40-person team")
	}
}

func TestBuildPlan_DistributionByAudience(t *testing.T) {
	b2b := BuildPlan(growth.BusinessContext{Product: growth.ProductProfile{Audience: growth.AudienceB2B}})
	b2c := BuildPlan(growth.BusinessContext{Product: growth.ProductProfile{Audience: growth.AudienceB2C}})
	if b2b.Distribution[0] == b2c.Distribution[0] {
		t.Error("b2b and b2c distribution channels should differ")
	}
}
