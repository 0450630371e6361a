// Package capability defines the advisory capabilities, their
// parameter contracts, and the registry that dispatches invocations.
//
// The registry is caller-constructed and passed by reference — there is
// no process-wide singleton, so tests build as many independent
// registries as they like. Dispatch is keyed by the typed Kind
// enumeration, and parameter validation runs before any handler: an
// invocation missing a required field fails fast with zero confidence
// and no scoring work.
package capability

import (
	"fmt"

	"github.com/KristjanToop/gaas-growth-hacker/internal/growth"
)

// Kind identifies one advisory capability.
type Kind string

const (
	KindHealthCheck   Kind = "growth_health_check"
	KindRankChannels  Kind = "rank_channels"
	KindAnalyzeFunnel Kind = "analyze_funnel"
	KindViralLoop     Kind = "design_viral_loop"
	KindIdeas         Kind = "brainstorm_growth_ideas"
	KindPlaybook      Kind = "generate_playbook"
	KindRetention     Kind = "retention_strategy"
	KindBattlecards   Kind = "competitor_battlecard"
	KindPersonas      Kind = "build_personas"
	KindContentPlan   Kind = "content_seo_plan"
	KindLaunch        Kind = "launch_checklist"
	KindAnalyze       Kind = "analyze_growth"
)

// ParamType is the declared wire type of a capability parameter.
type ParamType string

const (
	TypeString ParamType = "string"
	TypeNumber ParamType = "number"
	TypeObject ParamType = "object"
	TypeArray  ParamType = "array"
)

// ParamSpec declares one named parameter of a capability.
type ParamSpec struct {
	Name        string    `json:"name"`
	Type        ParamType `json:"type"`
	Required    bool      `json:"required"`
	Enum        []string  `json:"enum,omitempty"`
	Description string    `json:"description"`
}

// Invocation is one capability call: the raw named parameters plus the
// business context already parsed from them.
type Invocation struct {
	Context growth.BusinessContext
	Params  map[string]any
}

// Result is the uniform capability envelope.
type Result struct {
	Success     bool    `json:"success"`
	Data        any     `json:"data,omitempty"`
	Explanation string  `json:"explanation"`
	Confidence  float64 `json:"confidence"`
}

// Failure builds a validation/lookup failure envelope: zero confidence,
// no data.
func Failure(format string, args ...any) Result {
	return Result{Success: false, Explanation: fmt.Sprintf(format, args...)}
}

// Handler implements one capability. Handlers are pure: they read the
// invocation and static tables, and return a fresh Result.
type Handler func(Invocation) Result

// Definition binds a capability kind to its contract and handler.
type Definition struct {
	Kind        Kind
	Description string
	Params      []ParamSpec
	Handler     Handler
}

// Registry maps capability kinds to definitions. Populate it once at
// startup; it is read-only afterwards (concurrent registration is not a
// designed use).
type Registry struct {
	defs  map[Kind]Definition
	order []Kind
}

// NewEmpty returns a registry with nothing registered. Tests use this
// to wire spy handlers.
func NewEmpty() *Registry {
	return &Registry{defs: map[Kind]Definition{}}
}

// New returns a registry with every built-in capability registered.
func New() *Registry {
	r := NewEmpty()
	for _, d := range Definitions() {
		if err := r.Register(d); err != nil {
			// Definitions() is static; a duplicate kind is a
			// programming error caught by tests.
			panic(err)
		}
	}
	return r
}

// Register adds a definition. Duplicate kinds are rejected.
func (r *Registry) Register(d Definition) error {
	if d.Kind == "" {
		return fmt.Errorf("capability definition missing kind")
	}
	if d.Handler == nil {
		return fmt.Errorf("capability %s has no handler", d.Kind)
	}
	if _, exists := r.defs[d.Kind]; exists {
		return fmt.Errorf("capability %s already registered", d.Kind)
	}
	r.defs[d.Kind] = d
	r.order = append(r.order, d.Kind)
	return nil
}

// Definition looks up one capability's definition.
func (r *Registry) Definition(k Kind) (Definition, bool) {
	d, ok := r.defs[k]
	return d, ok
}

// List returns every registered definition in registration order, for
// introspection.
func (r *Registry) List() []Definition {
	out := make([]Definition, 0, len(r.order))
	for _, k := range r.order {
		out = append(out, r.defs[k])
	}
	return out
}

// Invoke validates the raw parameters against the capability's
// contract and dispatches to its handler. Validation failures return a
// structured failure with confidence 0; the handler is never called.
func (r *Registry) Invoke(k Kind, params map[string]any) Result {
	def, ok := r.defs[k]
	if !ok {
		return Failure("unknown capability %q", k)
	}

	if err := validateParams(def.Params, params); err != nil {
		return Failure("invalid parameters for %s: %v", k, err)
	}

	ctx, err := ParseContext(params)
	if err != nil {
		return Failure("invalid business context for %s: %v", k, err)
	}

	return def.Handler(Invocation{Context: ctx, Params: params})
}

// validateParams checks required-ness and enum membership before any
// computation runs.
func validateParams(specs []ParamSpec, params map[string]any) error {
	for _, spec := range specs {
		raw, present := params[spec.Name]
		if !present || raw == nil {
			if spec.Required {
				return fmt.Errorf("missing required field %q", spec.Name)
			}
			continue
		}
		if len(spec.Enum) > 0 {
			val := fmt.Sprintf("%v", raw)
			ok := false
			for _, e := range spec.Enum {
				if val == e {
					ok = true
					break
				}
			}
			if !ok {
				return fmt.Errorf("field %q: %q not in %v", spec.Name, val, spec.Enum)
			}
		}
	}
	return nil
}
