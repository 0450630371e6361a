package capability

import (
	"fmt"

	"github.com/spf13/cast"

	"github.com/KristjanToop/gaas-growth-hacker/internal/growth"
)

// ContextParams declares the shared business-context parameters every
// capability accepts. business_model and audience are the only hard
// requirements — everything else degrades gracefully when absent.
func ContextParams() []ParamSpec {
	return []ParamSpec{
		{Name: "business_model", Type: TypeString, Required: true,
			Enum:        growth.BusinessModelValues(),
			Description: "How the product makes money"},
		{Name: "audience", Type: TypeString, Required: true,
			Enum:        growth.AudienceValues(),
			Description: "Who the product sells to; selects the benchmark tables"},
		{Name: "stage", Type: TypeString,
			Enum:        growth.StageValues(),
			Description: "Company maturity stage"},
		{Name: "company_name", Type: TypeString,
			Description: "Company or product name, used in generated copy"},
		{Name: "industry", Type: TypeString,
			Description: "Industry or vertical, matched against channel fit tags"},
		{Name: "category", Type: TypeString,
			Description: "Product category, interpolated into personas and content plans"},
		{Name: "pricing_model", Type: TypeString,
			Enum:        growth.PricingModelValues(),
			Description: "How the product charges"},
		{Name: "team_size", Type: TypeNumber,
			Description: "People on the team"},
		{Name: "monthly_budget", Type: TypeNumber,
			Description: "Monthly growth budget in USD"},
		{Name: "competition", Type: TypeString,
			Description: "Market competition level: low | medium | high"},
		{Name: "metrics", Type: TypeObject,
			Description: "Known growth metrics; omit anything unmeasured. Keys: " +
				"activation_rate, retention_d1, retention_d7, retention_d30, " +
				"monthly_churn, viral_coefficient, referral_rate, arpu, cac, ltv, " +
				"mrr_growth, net_revenue_retention, nps. Rates are fractions (0.35 = 35%)"},
		{Name: "competitors", Type: TypeArray,
			Description: "Competitor records: {name, positioning, strengths[], weaknesses[], price_point}"},
		{Name: "objectives", Type: TypeArray,
			Description: "Growth objectives: {description, stage}; the first is the primary goal"},
		{Name: "personas", Type: TypeArray,
			Description: "Known audience personas: {name, role, pains[], goals[], watering_holes[], objections[]}"},
		{Name: "primary_goal", Type: TypeString,
			Description: "Shorthand for a single objective description"},
	}
}

// ParseContext builds a BusinessContext from validated raw parameters.
// Unknown metric keys are ignored; absent metrics stay nil.
func ParseContext(params map[string]any) (growth.BusinessContext, error) {
	var ctx growth.BusinessContext
	var err error

	if ctx.Company.Model, err = growth.ParseBusinessModel(cast.ToString(params["business_model"])); err != nil {
		return ctx, err
	}
	if ctx.Product.Audience, err = growth.ParseAudience(cast.ToString(params["audience"])); err != nil {
		return ctx, err
	}

	if raw := cast.ToString(params["stage"]); raw != "" {
		if ctx.Company.Stage, err = growth.ParseStage(raw); err != nil {
			return ctx, err
		}
	}
	if raw := cast.ToString(params["pricing_model"]); raw != "" {
		if ctx.Product.Pricing, err = growth.ParsePricingModel(raw); err != nil {
			return ctx, err
		}
	}

	ctx.Company.Name = cast.ToString(params["company_name"])
	ctx.Company.Industry = cast.ToString(params["industry"])
	ctx.Company.TeamSize = cast.ToInt(params["team_size"])
	ctx.Company.MonthlyBudgetUSD = cast.ToFloat64(params["monthly_budget"])
	ctx.Product.Category = cast.ToString(params["category"])
	ctx.Market.Competition = cast.ToString(params["competition"])

	if raw, ok := params["metrics"]; ok && raw != nil {
		m, err := cast.ToStringMapE(raw)
		if err != nil {
			return ctx, fmt.Errorf("metrics must be an object: %w", err)
		}
		ctx.Metrics = parseMetrics(m)
	}

	if raw, ok := params["competitors"]; ok && raw != nil {
		list, err := cast.ToSliceE(raw)
		if err != nil {
			return ctx, fmt.Errorf("competitors must be an array: %w", err)
		}
		for _, item := range list {
			comp, err := parseCompetitor(item)
			if err != nil {
				return ctx, err
			}
			ctx.Competitors = append(ctx.Competitors, comp)
		}
	}

	if raw, ok := params["objectives"]; ok && raw != nil {
		list, err := cast.ToSliceE(raw)
		if err != nil {
			return ctx, fmt.Errorf("objectives must be an array: %w", err)
		}
		for _, item := range list {
			obj, err := parseObjective(item)
			if err != nil {
				return ctx, err
			}
			ctx.Objectives = append(ctx.Objectives, obj)
		}
	}

	if raw, ok := params["personas"]; ok && raw != nil {
		list, err := cast.ToSliceE(raw)
		if err != nil {
			return ctx, fmt.Errorf("personas must be an array: %w", err)
		}
		for _, item := range list {
			p, err := parsePersona(item)
			if err != nil {
				return ctx, err
			}
			ctx.Personas = append(ctx.Personas, p)
		}
	}

	// primary_goal is sugar for a single objective.
	if goal := cast.ToString(params["primary_goal"]); goal != "" && len(ctx.Objectives) == 0 {
		ctx.Objectives = []growth.Objective{{Description: goal}}
	}

	return ctx, nil
}

// metricFields maps wire keys to the metric struct fields.
func parseMetrics(m map[string]any) growth.GrowthMetrics {
	var out growth.GrowthMetrics
	fields := map[string]**float64{
		"activation_rate":       &out.ActivationRate,
		"retention_d1":          &out.RetentionD1,
		"retention_d7":          &out.RetentionD7,
		"retention_d30":         &out.RetentionD30,
		"monthly_churn":         &out.MonthlyChurn,
		"viral_coefficient":     &out.ViralCoefficient,
		"referral_rate":         &out.ReferralRate,
		"arpu":                  &out.ARPU,
		"cac":                   &out.CAC,
		"ltv":                   &out.LTV,
		"mrr_growth":            &out.MRRGrowth,
		"net_revenue_retention": &out.NRR,
		"nps":                   &out.NPS,
	}
	for key, target := range fields {
		raw, ok := m[key]
		if !ok || raw == nil {
			continue
		}
		if v, err := cast.ToFloat64E(raw); err == nil {
			*target = growth.Ptr(v)
		}
	}
	return out
}

func parseCompetitor(item any) (growth.Competitor, error) {
	m, err := cast.ToStringMapE(item)
	if err != nil {
		return growth.Competitor{}, fmt.Errorf("competitor entries must be objects: %w", err)
	}
	c := growth.Competitor{
		Name:        cast.ToString(m["name"]),
		Positioning: cast.ToString(m["positioning"]),
		Strengths:   cast.ToStringSlice(m["strengths"]),
		Weaknesses:  cast.ToStringSlice(m["weaknesses"]),
		PricePoint:  cast.ToString(m["price_point"]),
	}
	if c.Name == "" {
		return c, fmt.Errorf("competitor entry missing name")
	}
	return c, nil
}

func parseObjective(item any) (growth.Objective, error) {
	m, err := cast.ToStringMapE(item)
	if err != nil {
		return growth.Objective{}, fmt.Errorf("objective entries must be objects: %w", err)
	}
	obj := growth.Objective{Description: cast.ToString(m["description"])}
	if raw := cast.ToString(m["stage"]); raw != "" {
		stage, err := growth.ParseFunnelStage(raw)
		if err != nil {
			return obj, err
		}
		obj.Stage = stage
	}
	if obj.Description == "" {
		return obj, fmt.Errorf("objective entry missing description")
	}
	return obj, nil
}

func parsePersona(item any) (growth.Persona, error) {
	m, err := cast.ToStringMapE(item)
	if err != nil {
		return growth.Persona{}, fmt.Errorf("persona entries must be objects: %w", err)
	}
	p := growth.Persona{
		Name:          cast.ToString(m["name"]),
		Role:          cast.ToString(m["role"]),
		Pains:         cast.ToStringSlice(m["pains"]),
		Goals:         cast.ToStringSlice(m["goals"]),
		WateringHoles: cast.ToStringSlice(m["watering_holes"]),
		Objections:    cast.ToStringSlice(m["objections"]),
	}
	if p.Name == "" {
		return p, fmt.Errorf("persona entry missing name")
	}
	return p, nil
}

// floatParam extracts an optional numeric parameter as a pointer; nil
// when absent or unparseable.
func floatParam(params map[string]any, key string) *float64 {
	raw, ok := params[key]
	if !ok || raw == nil {
		return nil
	}
	v, err := cast.ToFloat64E(raw)
	if err != nil {
		return nil
	}
	return growth.Ptr(v)
}
