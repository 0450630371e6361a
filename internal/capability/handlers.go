package capability

import (
	"fmt"

	"github.com/spf13/cast"

	"github.com/KristjanToop/gaas-growth-hacker/internal/benchmarks"
	"github.com/KristjanToop/gaas-growth-hacker/internal/channels"
	"github.com/KristjanToop/gaas-growth-hacker/internal/content"
	"github.com/KristjanToop/gaas-growth-hacker/internal/funnel"
	"github.com/KristjanToop/gaas-growth-hacker/internal/growth"
	"github.com/KristjanToop/gaas-growth-hacker/internal/ideas"
	"github.com/KristjanToop/gaas-growth-hacker/internal/launch"
	"github.com/KristjanToop/gaas-growth-hacker/internal/market"
	"github.com/KristjanToop/gaas-growth-hacker/internal/playbook"
	"github.com/KristjanToop/gaas-growth-hacker/internal/retention"
	"github.com/KristjanToop/gaas-growth-hacker/internal/scoring"
	"github.com/KristjanToop/gaas-growth-hacker/internal/viral"
)

// Definitions returns every built-in capability, in the order they are
// exposed to clients.
func Definitions() []Definition {
	return []Definition{
		healthCheckDef(),
		rankChannelsDef(),
		analyzeFunnelDef(),
		viralLoopDef(),
		ideasDef(),
		playbookDef(),
		retentionDef(),
		battlecardsDef(),
		personasDef(),
		contentPlanDef(),
		launchDef(),
		analyzeDef(),
	}
}

// withContextParams prepends the shared business-context parameters to
// a capability's own.
func withContextParams(extra ...ParamSpec) []ParamSpec {
	return append(ContextParams(), extra...)
}

// --- growth_health_check ---

// Health-score component weights. Renormalized over whatever the caller
// actually measured, so a sparse metrics object still yields a score.
var healthComponents = []struct {
	Name   string
	Metric benchmarks.Metric
	Weight float64
	Value  func(growth.GrowthMetrics) (float64, bool)
}{
	{"activation", benchmarks.MetricActivation, 0.25,
		func(m growth.GrowthMetrics) (float64, bool) { return deref(m.ActivationRate) }},
	{"retention_d30", benchmarks.MetricRetentionD30, 0.25,
		func(m growth.GrowthMetrics) (float64, bool) { return deref(m.RetentionD30) }},
	{"monthly_churn", benchmarks.MetricMonthlyChurn, 0.2,
		func(m growth.GrowthMetrics) (float64, bool) { return deref(m.MonthlyChurn) }},
	{"virality", benchmarks.MetricViralCoeff, 0.15,
		func(m growth.GrowthMetrics) (float64, bool) { return deref(m.ViralCoefficient) }},
	{"ltv_to_cac", benchmarks.MetricLTVToCAC, 0.15,
		func(m growth.GrowthMetrics) (float64, bool) { return m.LTVToCAC() }},
}

func deref(p *float64) (float64, bool) {
	if p == nil {
		return 0, false
	}
	return *p, true
}

// ComponentReport is one classified health-score input.
type ComponentReport struct {
	Name      string         `json:"name"`
	Value     float64        `json:"value"`
	Status    scoring.Status `json:"status"`
	Score     int            `json:"score"`
	Weight    float64        `json:"weight"`
	Benchmark float64        `json:"benchmark_good"`
}

// HealthReport is the growth_health_check payload.
type HealthReport struct {
	Score      int               `json:"score"`
	Priority   string            `json:"priority"`
	Components []ComponentReport `json:"components"`
	Missing    []string          `json:"missing_metrics,omitempty"`
}

// BuildHealthReport classifies every present metric against the
// audience benchmarks and aggregates the weighted score. Exported for
// the orchestrator, which reuses the same report.
func BuildHealthReport(ctx growth.BusinessContext) HealthReport {
	report := HealthReport{}
	var inputs []scoring.Component

	for _, c := range healthComponents {
		value, ok := c.Value(ctx.Metrics)
		if !ok {
			report.Missing = append(report.Missing, c.Name)
			continue
		}
		row, known := benchmarks.Lookup(c.Metric, ctx.Product.Audience)
		if !known {
			report.Missing = append(report.Missing, c.Name)
			continue
		}
		status := scoring.Classify(value, row.Thresholds, row.Family)
		report.Components = append(report.Components, ComponentReport{
			Name:      c.Name,
			Value:     value,
			Status:    status,
			Score:     status.Score(),
			Weight:    c.Weight,
			Benchmark: row.Thresholds.Good,
		})
		inputs = append(inputs, scoring.Component{
			Name: c.Name, Score: status.Score(), Weight: c.Weight,
		})
	}

	report.Score, report.Priority = scoring.HealthScore(inputs)
	return report
}

// healthConfidence grows with metric completeness: every measured
// component adds certainty, an empty metrics object is a guess.
func healthConfidence(measured int) float64 {
	return scoring.ClampFloat(0.4+0.11*float64(measured), 0.2, 0.95)
}

func healthCheckDef() Definition {
	return Definition{
		Kind:        KindHealthCheck,
		Description: "Score overall growth health against audience benchmarks and name the weakest area",
		Params:      withContextParams(),
		Handler: func(inv Invocation) Result {
			report := BuildHealthReport(inv.Context)

			explanation := fmt.Sprintf("Growth health %d/100; the weakest measured area is %s.",
				report.Score, report.Priority)
			if len(report.Components) == 0 {
				explanation = "No benchmarkable metrics supplied; the score defaults to a neutral 50. " +
					"Provide activation_rate, retention_d30, monthly_churn, viral_coefficient, or ltv+cac for a real diagnosis."
			}

			return Result{
				Success:     true,
				Data:        report,
				Explanation: explanation,
				Confidence:  healthConfidence(len(report.Components)),
			}
		},
	}
}

// --- rank_channels ---

func rankChannelsDef() Definition {
	return Definition{
		Kind:        KindRankChannels,
		Description: "Rank acquisition channels by fit and priority, tiered into a budget plan",
		Params: withContextParams(
			ParamSpec{Name: "target_cac", Type: TypeNumber,
				Description: "Target cost per acquisition in USD; channels above it rank lower"},
		),
		Handler: func(inv Invocation) Result {
			ranked := channels.Rank(inv.Context, floatParam(inv.Params, "target_cac"))
			plan := channels.BuildPlan(ranked)

			explanation := "No channels matched the context."
			if len(ranked) > 0 {
				explanation = fmt.Sprintf("Top channel is %s (priority %d/10, estimated CAC $%.0f). "+
					"Fund the %d primary channels first; run the secondary tier as small experiments.",
					ranked[0].Profile.Name, ranked[0].Priority, ranked[0].EstimatedCAC, len(plan.Primary))
			}

			return Result{
				Success: true,
				Data: map[string]any{
					"ranked": ranked,
					"plan":   plan,
				},
				Explanation: explanation,
				Confidence:  0.75,
			}
		},
	}
}

// --- analyze_funnel ---

func parseStages(raw any) ([]funnel.Stage, error) {
	list, err := cast.ToSliceE(raw)
	if err != nil {
		return nil, fmt.Errorf("stages must be an array: %w", err)
	}
	if len(list) == 0 {
		return nil, fmt.Errorf("stages must not be empty")
	}
	stages := make([]funnel.Stage, 0, len(list))
	for _, item := range list {
		m, err := cast.ToStringMapE(item)
		if err != nil {
			return nil, fmt.Errorf("stage entries must be objects: %w", err)
		}
		st := funnel.Stage{
			Name:           cast.ToString(m["name"]),
			Entry:          cast.ToFloat64(m["entry"]),
			Exit:           cast.ToFloat64(m["exit"]),
			DropOffReasons: cast.ToStringSlice(m["drop_off_reasons"]),
		}
		if st.Name == "" {
			return nil, fmt.Errorf("stage entry missing name")
		}
		if st.Entry < 0 || st.Exit < 0 {
			return nil, fmt.Errorf("stage %q: counts must be non-negative", st.Name)
		}
		stages = append(stages, st)
	}
	return stages, nil
}

func analyzeFunnelDef() Definition {
	return Definition{
		Kind:        KindAnalyzeFunnel,
		Description: "Find the funnel's bottlenecks and rank concrete optimizations for them",
		Params: withContextParams(
			ParamSpec{Name: "stages", Type: TypeArray, Required: true,
				Description: "Ordered funnel stages: {name, entry, exit, drop_off_reasons[]}. " +
					"Canonical names (visit-to-signup, signup-to-activation, activation-to-paid, " +
					"paid-to-retained) get audience-specific benchmarks"},
		),
		Handler: func(inv Invocation) Result {
			stages, err := parseStages(inv.Params["stages"])
			if err != nil {
				return Failure("invalid stages: %v", err)
			}

			analysis := funnel.Analyze(stages, inv.Context.Product.Audience, inv.Context.PrimaryGoal())

			explanation := "No bottlenecks: every measured stage converts at or above benchmark."
			if len(analysis.Bottlenecks) > 0 {
				worst := analysis.Bottlenecks[0]
				explanation = fmt.Sprintf("Worst bottleneck is %s (%s): %s", worst.Stage, worst.Severity, worst.Impact)
			}

			return Result{
				Success:     true,
				Data:        analysis,
				Explanation: explanation,
				Confidence:  0.85,
			}
		},
	}
}

// --- design_viral_loop ---

func viralLoopDef() Definition {
	return Definition{
		Kind:        KindViralLoop,
		Description: "Pick the viral-loop archetype for the business model and project its K-factor",
		Params:      withContextParams(),
		Handler: func(inv Invocation) Result {
			design := viral.NewDesign(viral.ArchetypeFor(inv.Context.Company.Model))

			explanation := fmt.Sprintf("Best-fit loop for %s is %s: adjusted K-factor %.2f.",
				inv.Context.Company.Model, design.Loop.Archetype, design.AdjustedKFactor)
			if design.MonthlyMultiplier != nil {
				explanation += fmt.Sprintf(" Virality alone projects a %.2fx monthly multiplier.",
					*design.MonthlyMultiplier)
			}

			return Result{
				Success:     true,
				Data:        design,
				Explanation: explanation,
				// Projections are priors, not measurements.
				Confidence: 0.6,
			}
		},
	}
}

// --- brainstorm_growth_ideas ---

const defaultIdeaLimit = 10

func ideasDef() Definition {
	return Definition{
		Kind:        KindIdeas,
		Description: "Rank growth experiments from the idea catalog for the business model",
		Params: withContextParams(
			ParamSpec{Name: "funnel_stage", Type: TypeString,
				Enum:        growth.FunnelStageValues(),
				Description: "Restrict ideas to one AARRR stage"},
			ParamSpec{Name: "limit", Type: TypeNumber,
				Description: "Maximum ideas returned (default 10)"},
		),
		Handler: func(inv Invocation) Result {
			var stage *growth.FunnelStage
			if raw := cast.ToString(inv.Params["funnel_stage"]); raw != "" {
				s, err := growth.ParseFunnelStage(raw)
				if err != nil {
					return Failure("invalid funnel_stage: %v", err)
				}
				stage = &s
			}

			limit := defaultIdeaLimit
			if n := cast.ToInt(inv.Params["limit"]); n > 0 {
				limit = n
			}

			ranked := ideas.Rank(ideas.Filter(stage, inv.Context.Company.Model))
			if len(ranked) > limit {
				ranked = ranked[:limit]
			}

			explanation := "No catalog ideas fit the business model and stage filter."
			if len(ranked) > 0 {
				explanation = fmt.Sprintf("%d ideas ranked by impact-weighted score; start with %q (score %d).",
					len(ranked), ranked[0].Idea.Title, ranked[0].Score)
			}

			return Result{
				Success:     true,
				Data:        ranked,
				Explanation: explanation,
				Confidence:  0.7,
			}
		},
	}
}

// --- generate_playbook ---

func playbookDef() Definition {
	return Definition{
		Kind:        KindPlaybook,
		Description: "Assemble a stage-focused marketing playbook: plays, channels, 30/60/90 milestones",
		Params: withContextParams(
			ParamSpec{Name: "target_cac", Type: TypeNumber,
				Description: "Target cost per acquisition in USD for the channel plan"},
		),
		Handler: func(inv Invocation) Result {
			pb := playbook.Build(inv.Context, floatParam(inv.Params, "target_cac"))

			return Result{
				Success: true,
				Data:    pb,
				Explanation: fmt.Sprintf("Playbook focuses on %s. %s %d plays selected.",
					pb.Focus, pb.Rationale+".", len(pb.Plays)),
				Confidence: 0.7,
			}
		},
	}
}

// --- retention_strategy ---

func retentionDef() Definition {
	return Definition{
		Kind:        KindRetention,
		Description: "Diagnose churn/retention and build a lifecycle retention program",
		Params:      withContextParams(),
		Handler: func(inv Invocation) Result {
			program := retention.BuildProgram(inv.Context)

			explanation := "Retention program assembled."
			confidence := 0.5
			if program.ChurnStatus != nil {
				explanation = fmt.Sprintf("Monthly churn is %s. Program assembled for the %s lifecycle.",
					*program.ChurnStatus, inv.Context.Product.Audience)
				confidence += 0.2
			}
			if program.RetentionStatus != nil {
				confidence += 0.2
			}

			return Result{
				Success:     true,
				Data:        program,
				Explanation: explanation,
				Confidence:  confidence,
			}
		},
	}
}

// --- competitor_battlecard ---

func battlecardsDef() Definition {
	return Definition{
		Kind:        KindBattlecards,
		Description: "Build a positioning battlecard per supplied competitor",
		Params:      withContextParams(),
		Handler: func(inv Invocation) Result {
			if len(inv.Context.Competitors) == 0 {
				return Failure("no competitors supplied; pass a competitors array with at least one {name} entry")
			}

			cards := market.BuildBattlecards(inv.Context)

			return Result{
				Success: true,
				Data:    cards,
				Explanation: fmt.Sprintf("%d battlecards built from the supplied competitor records.",
					len(cards)),
				Confidence: 0.8,
			}
		},
	}
}

// --- build_personas ---

func personasDef() Definition {
	return Definition{
		Kind:        KindPersonas,
		Description: "Return caller personas or synthesize audience-appropriate templates",
		Params:      withContextParams(),
		Handler: func(inv Invocation) Result {
			supplied := len(inv.Context.Personas) > 0
			personas := market.BuildPersonas(inv.Context)

			explanation := fmt.Sprintf("%d personas passed through from the caller's research.", len(personas))
			confidence := 0.9
			if !supplied {
				explanation = fmt.Sprintf("%d template personas synthesized for a %s %s product; "+
					"validate them with real interviews.",
					len(personas), inv.Context.Product.Audience, inv.Context.Product.Category)
				confidence = 0.5
			}

			return Result{
				Success:     true,
				Data:        personas,
				Explanation: explanation,
				Confidence:  confidence,
			}
		},
	}
}

// --- content_seo_plan ---

func contentPlanDef() Definition {
	return Definition{
		Kind:        KindContentPlan,
		Description: "Build a pillar-and-cluster content plan with cadence and SEO priorities",
		Params:      withContextParams(),
		Handler: func(inv Invocation) Result {
			plan := content.BuildPlan(inv.Context)

			return Result{
				Success: true,
				Data:    plan,
				Explanation: fmt.Sprintf("%d content pillars planned at a %q cadence.",
					len(plan.Pillars), plan.Cadence),
				Confidence: 0.7,
			}
		},
	}
}

// --- launch_checklist ---

func launchDef() Definition {
	return Definition{
		Kind:        KindLaunch,
		Description: "Build a phased launch checklist with ready-to-send integration payloads",
		Params: withContextParams(
			ParamSpec{Name: "render", Type: TypeString,
				Enum:        []string{"json", "shell"},
				Description: "Snippet format for automatable items (default json)"},
		),
		Handler: func(inv Invocation) Result {
			checklist := launch.BuildChecklist(inv.Context)

			var renderer launch.Renderer = launch.JSONRenderer{}
			if cast.ToString(inv.Params["render"]) == "shell" {
				renderer = launch.ShellRenderer{}
			}
			snippets, err := launch.RenderChecklist(checklist, renderer)
			if err != nil {
				return Failure("rendering checklist payloads: %v", err)
			}

			items := 0
			for _, phase := range checklist.Phases {
				items += len(phase.Items)
			}

			return Result{
				Success: true,
				Data: map[string]any{
					"checklist":    checklist,
					"integrations": launch.Integrations(),
					"snippets":     snippets,
				},
				Explanation: fmt.Sprintf("%d launch tasks across %d phases; %d carry ready payloads. "+
					"Payloads are never executed here, send them through your own tooling.",
					items, len(checklist.Phases), len(snippets)),
				Confidence: 0.8,
			}
		},
	}
}
