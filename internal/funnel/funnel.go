// Package funnel detects conversion bottlenecks in an ordered funnel
// and derives prioritized optimization candidates from a static remedy
// table.
package funnel

import (
	"fmt"
	"sort"

	"github.com/KristjanToop/gaas-growth-hacker/internal/benchmarks"
	"github.com/KristjanToop/gaas-growth-hacker/internal/growth"
	"github.com/KristjanToop/gaas-growth-hacker/internal/scoring"
)

// Stage is one step of a growth funnel, with raw entry/exit counts.
type Stage struct {
	Name           string   `json:"name"`
	Entry          float64  `json:"entry"`
	Exit           float64  `json:"exit"`
	DropOffReasons []string `json:"drop_off_reasons,omitempty"`
}

// ConversionRate returns exit/entry. With zero entries the rate is
// undefined (ok=false) — never NaN. Zero exits against a real entry
// count is a defined rate of exactly 0.
func (s Stage) ConversionRate() (float64, bool) {
	if s.Entry == 0 {
		return 0, false
	}
	return s.Exit / s.Entry, true
}

// Severity tiers a bottleneck. Ordering: critical > high > medium > low.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
)

var severityOrder = map[Severity]int{
	SeverityCritical: 3, SeverityHigh: 2, SeverityMedium: 1, SeverityLow: 0,
}

// severityFor maps a benchmark status to a bottleneck severity. Stages
// at or above the good threshold are not bottlenecks.
func severityFor(s scoring.Status) (Severity, bool) {
	switch s {
	case scoring.StatusCritical:
		return SeverityCritical, true
	case scoring.StatusNeedsImprovement:
		return SeverityHigh, true
	case scoring.StatusAverage:
		return SeverityMedium, true
	default:
		return "", false
	}
}

// Bottleneck is an underperforming stage with its diagnosis.
type Bottleneck struct {
	Stage          string   `json:"stage"`
	Severity       Severity `json:"severity"`
	ConversionRate float64  `json:"conversion_rate"`
	Benchmark      float64  `json:"benchmark_good"` // the rate a healthy stage reaches
	Cause          string   `json:"cause"`
	Impact         string   `json:"impact"`
	Remedies       []string `json:"remedies"`
}

// Optimization is one remedy promoted to an actionable candidate.
type Optimization struct {
	Stage    string         `json:"stage"`
	Tactic   string         `json:"tactic"`
	Effort   scoring.Effort `json:"effort"`
	Priority int            `json:"priority"` // 1-10
}

// DetectBottlenecks classifies every stage with a defined conversion
// rate against the audience's funnel benchmarks and returns the
// underperformers, worst first. Stages with zero entries are skipped —
// an undefined rate is unknown, not bad.
func DetectBottlenecks(stages []Stage, audience growth.Audience) []Bottleneck {
	var found []Bottleneck
	for _, st := range stages {
		rate, ok := st.ConversionRate()
		if !ok {
			continue
		}
		th, _ := benchmarks.FunnelThresholds(st.Name, audience)
		severity, isBottleneck := severityFor(scoring.Classify(rate, th, scoring.FamilyRetention))
		if !isBottleneck {
			continue
		}

		cause := "No drop-off reasons reported; instrument this stage to find out"
		if len(st.DropOffReasons) > 0 {
			cause = st.DropOffReasons[0]
		}

		lost := st.Entry - st.Exit
		found = append(found, Bottleneck{
			Stage:          st.Name,
			Severity:       severity,
			ConversionRate: rate,
			Benchmark:      th.Good,
			Cause:          cause,
			Impact: fmt.Sprintf("Losing %.0f of %.0f users at %s (%.1f%% conversion vs %.1f%% benchmark)",
				lost, st.Entry, st.Name, rate*100, th.Good*100),
			Remedies: RemediesFor(st.Name),
		})
	}

	sort.SliceStable(found, func(i, j int) bool {
		return severityOrder[found[i].Severity] > severityOrder[found[j].Severity]
	})
	return found
}

// Optimization priority: a base adjusted by severity, inferred effort,
// and goal alignment, clamped to [1,10].
const (
	optimizationBase = 3
	criticalBonus    = 4
	highBonus        = 3
	mediumBonus      = 1
	lowEffortBonus   = 2
	highEffortMalus  = 1
	goalBonus        = 2
)

// Optimizations turns each bottleneck's remedies into prioritized
// candidates. primaryGoal, when it appears as a substring of a remedy,
// earns the alignment bonus.
func Optimizations(bottlenecks []Bottleneck, primaryGoal string) []Optimization {
	var out []Optimization
	for _, b := range bottlenecks {
		bonus := 0
		switch b.Severity {
		case SeverityCritical:
			bonus = criticalBonus
		case SeverityHigh:
			bonus = highBonus
		case SeverityMedium:
			bonus = mediumBonus
		}

		for _, remedy := range b.Remedies {
			effort := inferEffort(remedy)
			priority := optimizationBase + bonus
			switch effort {
			case scoring.EffortLow:
				priority += lowEffortBonus
			case scoring.EffortHigh:
				priority -= highEffortMalus
			}
			if goalAligned(remedy, primaryGoal) {
				priority += goalBonus
			}

			out = append(out, Optimization{
				Stage:    b.Stage,
				Tactic:   remedy,
				Effort:   effort,
				Priority: scoring.Clamp(priority, 1, 10),
			})
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Priority > out[j].Priority
	})
	return out
}

// Analysis bundles the full funnel report.
type Analysis struct {
	Stages        []StageReport  `json:"stages"`
	Bottlenecks   []Bottleneck   `json:"bottlenecks"`
	Optimizations []Optimization `json:"optimizations"`
}

// StageReport is a stage with its derived rate. Rate is nil when the
// stage had zero entries.
type StageReport struct {
	Name           string   `json:"name"`
	Entry          float64  `json:"entry"`
	Exit           float64  `json:"exit"`
	ConversionRate *float64 `json:"conversion_rate,omitempty"`
}

// Analyze runs the full pipeline: per-stage rates, bottleneck
// detection, and optimization ranking.
func Analyze(stages []Stage, audience growth.Audience, primaryGoal string) Analysis {
	reports := make([]StageReport, 0, len(stages))
	for _, st := range stages {
		r := StageReport{Name: st.Name, Entry: st.Entry, Exit: st.Exit}
		if rate, ok := st.ConversionRate(); ok {
			r.ConversionRate = growth.Ptr(rate)
		}
		reports = append(reports, r)
	}

	bottlenecks := DetectBottlenecks(stages, audience)
	return Analysis{
		Stages:        reports,
		Bottlenecks:   bottlenecks,
		Optimizations: Optimizations(bottlenecks, primaryGoal),
	}
}
