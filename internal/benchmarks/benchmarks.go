// Package benchmarks holds the static threshold tables every classifier
// call reads. Rows are segmented by audience type (B2B vs B2C funnels
// behave very differently) and are hand-authored reference data: they
// are never mutated at runtime.
package benchmarks

import (
	"github.com/KristjanToop/gaas-growth-hacker/internal/growth"
	"github.com/KristjanToop/gaas-growth-hacker/internal/scoring"
)

// Metric identifies a benchmarked growth metric.
type Metric string

const (
	MetricActivation   Metric = "activation_rate"
	MetricRetentionD30 Metric = "retention_d30"
	MetricMonthlyChurn Metric = "monthly_churn"
	MetricViralCoeff   Metric = "viral_coefficient"
	MetricLTVToCAC     Metric = "ltv_to_cac"
	MetricNRR          Metric = "net_revenue_retention"
)

// Row pairs a threshold table with the metric's classification family.
type Row struct {
	Thresholds scoring.Thresholds `json:"thresholds"`
	Family     scoring.Family     `json:"-"`
}

// Rates are fractions: 0.3 = 30%. Ratio metrics (LTV:CAC, NRR) are
// plain ratios.
var tables = map[growth.Audience]map[Metric]Row{
	growth.AudienceB2B: {
		MetricActivation: {
			Thresholds: scoring.Thresholds{Poor: 0.2, Average: 0.3, Good: 0.45},
			Family:     scoring.FamilyAcquisition,
		},
		MetricRetentionD30: {
			Thresholds: scoring.Thresholds{Poor: 0.15, Average: 0.25, Good: 0.4},
			Family:     scoring.FamilyRetention,
		},
		MetricMonthlyChurn: {
			Thresholds: scoring.Thresholds{Poor: 0.06, Average: 0.035, Good: 0.02, LowerIsBetter: true},
			Family:     scoring.FamilyRetention,
		},
		MetricViralCoeff: {
			Thresholds: scoring.Thresholds{Poor: 0.1, Average: 0.25, Good: 0.5},
			Family:     scoring.FamilyAcquisition,
		},
		MetricLTVToCAC: {
			Thresholds: scoring.Thresholds{Poor: 1, Average: 2, Good: 3, Excellent: 5},
			Family:     scoring.FamilyRatio,
		},
		MetricNRR: {
			Thresholds: scoring.Thresholds{Poor: 0.85, Average: 1.0, Good: 1.1, Excellent: 1.3},
			Family:     scoring.FamilyRatio,
		},
	},
	growth.AudienceB2C: {
		MetricActivation: {
			Thresholds: scoring.Thresholds{Poor: 0.15, Average: 0.25, Good: 0.4},
			Family:     scoring.FamilyAcquisition,
		},
		MetricRetentionD30: {
			Thresholds: scoring.Thresholds{Poor: 0.05, Average: 0.1, Good: 0.2},
			Family:     scoring.FamilyRetention,
		},
		MetricMonthlyChurn: {
			Thresholds: scoring.Thresholds{Poor: 0.09, Average: 0.06, Good: 0.04, LowerIsBetter: true},
			Family:     scoring.FamilyRetention,
		},
		MetricViralCoeff: {
			Thresholds: scoring.Thresholds{Poor: 0.2, Average: 0.4, Good: 0.7},
			Family:     scoring.FamilyAcquisition,
		},
		MetricLTVToCAC: {
			Thresholds: scoring.Thresholds{Poor: 1, Average: 2, Good: 3, Excellent: 5},
			Family:     scoring.FamilyRatio,
		},
		MetricNRR: {
			Thresholds: scoring.Thresholds{Poor: 0.8, Average: 0.95, Good: 1.05, Excellent: 1.2},
			Family:     scoring.FamilyRatio,
		},
	},
}

// Lookup returns the benchmark row for a metric and audience. B2B2C
// callers resolve to the B2C tables via Audience.Benchmarks. ok is
// false for unknown metrics.
func Lookup(m Metric, a growth.Audience) (Row, bool) {
	seg, ok := tables[a.Benchmarks()]
	if !ok {
		return Row{}, false
	}
	row, ok := seg[m]
	return row, ok
}

// Metrics returns every benchmarked metric, in a fixed order.
func Metrics() []Metric {
	return []Metric{
		MetricActivation, MetricRetentionD30, MetricMonthlyChurn,
		MetricViralCoeff, MetricLTVToCAC, MetricNRR,
	}
}

// Audience-segmented conversion benchmarks for each canonical funnel
// stage transition. Stage names are matched case-sensitively; unknown
// stages fall back to a generic table so hand-rolled funnels still
// classify.
var funnelTables = map[growth.Audience]map[string]scoring.Thresholds{
	growth.AudienceB2B: {
		"visit-to-signup":      {Poor: 0.01, Average: 0.025, Good: 0.05},
		"signup-to-activation": {Poor: 0.2, Average: 0.35, Good: 0.5},
		"activation-to-paid":   {Poor: 0.05, Average: 0.1, Good: 0.2},
		"paid-to-retained":     {Poor: 0.5, Average: 0.65, Good: 0.8},
	},
	growth.AudienceB2C: {
		"visit-to-signup":      {Poor: 0.02, Average: 0.04, Good: 0.08},
		"signup-to-activation": {Poor: 0.15, Average: 0.3, Good: 0.45},
		"activation-to-paid":   {Poor: 0.02, Average: 0.05, Good: 0.1},
		"paid-to-retained":     {Poor: 0.4, Average: 0.55, Good: 0.7},
	},
}

// genericFunnel covers stage names with no dedicated row.
var genericFunnel = scoring.Thresholds{Poor: 0.1, Average: 0.25, Good: 0.5}

// FunnelStageNames returns the canonical stage transitions in order.
func FunnelStageNames() []string {
	return []string{
		"visit-to-signup", "signup-to-activation",
		"activation-to-paid", "paid-to-retained",
	}
}

// FunnelThresholds returns the conversion benchmark for a named stage
// transition. known reports whether the stage had a dedicated row or
// fell back to the generic table.
func FunnelThresholds(stage string, a growth.Audience) (t scoring.Thresholds, known bool) {
	if seg, ok := funnelTables[a.Benchmarks()]; ok {
		if row, ok := seg[stage]; ok {
			return row, true
		}
	}
	return genericFunnel, false
}
