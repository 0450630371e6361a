// Package growth defines the business-context records every advisory
// capability consumes.
//
// All metric fields are pointers: absent means "unknown", never zero.
// Consumers must guard on presence before using a value — scoring code
// skips or down-weights a sub-score whose input is missing rather than
// substituting a default that would bias the aggregate.
//
// A BusinessContext is built once per invocation from caller-supplied
// parameters, read synchronously, and discarded. Nothing here is cached
// or persisted between calls.
package growth

// CompanyProfile describes the company behind the product.
type CompanyProfile struct {
	Name             string        `json:"name"`
	Stage            Stage         `json:"stage"`
	Industry         string        `json:"industry"`
	Model            BusinessModel `json:"business_model"`
	TeamSize         int           `json:"team_size"`
	MonthlyBudgetUSD float64       `json:"monthly_budget_usd"`
}

// ProductProfile describes what is being sold and to whom.
type ProductProfile struct {
	Audience Audience     `json:"audience"`
	Pricing  PricingModel `json:"pricing_model"`
	Category string       `json:"category"`
}

// MarketProfile captures the competitive environment.
type MarketProfile struct {
	Maturity    string `json:"maturity,omitempty"`    // emerging | growing | mature
	Competition string `json:"competition,omitempty"` // low | medium | high
	Region      string `json:"region,omitempty"`
}

// GrowthMetrics is the flat set of measured rates and unit economics.
// Every field is optional; nil means the caller does not know the value.
// Rates are fractions in [0,1] (0.35 = 35%), money fields are USD.
type GrowthMetrics struct {
	ActivationRate   *float64 `json:"activation_rate,omitempty"`
	RetentionD1      *float64 `json:"retention_d1,omitempty"`
	RetentionD7      *float64 `json:"retention_d7,omitempty"`
	RetentionD30     *float64 `json:"retention_d30,omitempty"`
	MonthlyChurn     *float64 `json:"monthly_churn,omitempty"`
	ViralCoefficient *float64 `json:"viral_coefficient,omitempty"`
	ReferralRate     *float64 `json:"referral_rate,omitempty"`
	ARPU             *float64 `json:"arpu,omitempty"`
	CAC              *float64 `json:"cac,omitempty"`
	LTV              *float64 `json:"ltv,omitempty"`
	MRRGrowth        *float64 `json:"mrr_growth,omitempty"`
	NRR              *float64 `json:"net_revenue_retention,omitempty"`
	NPS              *float64 `json:"nps,omitempty"`
}

// LTVToCAC returns the LTV:CAC ratio. ok is false when either input is
// missing or CAC is zero — the ratio is undefined, never Inf.
func (m GrowthMetrics) LTVToCAC() (float64, bool) {
	if m.LTV == nil || m.CAC == nil || *m.CAC == 0 {
		return 0, false
	}
	return *m.LTV / *m.CAC, true
}

// CACPaybackMonths returns how many months of ARPU it takes to recover
// CAC. ok is false when either input is missing or ARPU is zero.
func (m GrowthMetrics) CACPaybackMonths() (float64, bool) {
	if m.CAC == nil || m.ARPU == nil || *m.ARPU == 0 {
		return 0, false
	}
	return *m.CAC / *m.ARPU, true
}

// Persona is a caller-supplied or synthesized audience segment.
type Persona struct {
	Name          string   `json:"name"`
	Role          string   `json:"role,omitempty"`
	Pains         []string `json:"pains,omitempty"`
	Goals         []string `json:"goals,omitempty"`
	WateringHoles []string `json:"watering_holes,omitempty"`
	Objections    []string `json:"objections,omitempty"`
}

// Competitor is a caller-supplied competitor record.
type Competitor struct {
	Name        string   `json:"name"`
	Positioning string   `json:"positioning,omitempty"`
	Strengths   []string `json:"strengths,omitempty"`
	Weaknesses  []string `json:"weaknesses,omitempty"`
	PricePoint  string   `json:"price_point,omitempty"` // cheaper | comparable | premium
}

// Objective is a stated growth goal, tagged with the AARRR stage it moves.
type Objective struct {
	Description string      `json:"description"`
	Stage       FunnelStage `json:"stage"`
}

// BusinessContext aggregates everything a capability may read. Built per
// invocation; read-only within a single call.
type BusinessContext struct {
	Company     CompanyProfile `json:"company"`
	Product     ProductProfile `json:"product"`
	Market      MarketProfile  `json:"market"`
	Metrics     GrowthMetrics  `json:"metrics"`
	Personas    []Persona      `json:"personas,omitempty"`
	Competitors []Competitor   `json:"competitors,omitempty"`
	Objectives  []Objective    `json:"objectives,omitempty"`
}

// PrimaryGoal returns the first objective's description, or "" when the
// caller stated none. Used for goal-alignment bonuses in prioritization.
func (c BusinessContext) PrimaryGoal() string {
	if len(c.Objectives) == 0 {
		return ""
	}
	return c.Objectives[0].Description
}

// Ptr returns a pointer to v. Convenience for building sparse metrics.
func Ptr(v float64) *float64 { return &v }
