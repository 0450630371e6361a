// Package server wires all MCP components and creates the server
// instance.
//
// This is the composition root: it builds the capability registry and
// the history store, and injects them into the tools, prompts, and
// resources that depend on them. No scoring logic lives here.
package server

import (
	"log"

	"github.com/mark3labs/mcp-go/server"

	"github.com/KristjanToop/gaas-growth-hacker/internal/capability"
	"github.com/KristjanToop/gaas-growth-hacker/internal/growth"
	"github.com/KristjanToop/gaas-growth-hacker/internal/history"
	"github.com/KristjanToop/gaas-growth-hacker/internal/prompts"
	"github.com/KristjanToop/gaas-growth-hacker/internal/resources"
	"github.com/KristjanToop/gaas-growth-hacker/internal/tools"
)

// Version is set at build time via ldflags.
var Version = "dev"

// New creates and configures the MCP server with every capability,
// prompt, and resource registered.
//
// The returned cleanup function closes the history store's database
// connection and must be called on shutdown (typically via defer). It
// is always non-nil and safe to call even if history init failed.
func New() (*server.MCPServer, func(), error) {
	registry := capability.New()

	s := server.NewMCPServer(
		"growthhacker",
		Version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, true),
		server.WithPromptCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(serverInstructions()),
	)

	// History is an independent subsystem: if it fails to initialize,
	// the advisory tools keep working without an invocation log.
	cleanup := noop
	hist, histErr := history.New(history.DefaultConfig())
	if histErr != nil {
		log.Printf("WARNING: history subsystem disabled: %v", histErr)
		hist = nil
	} else {
		cleanup = func() {
			if err := hist.Close(); err != nil {
				log.Printf("WARNING: history store close: %v", err)
			}
		}
	}

	// --- Register capability tools ---

	for _, def := range registry.List() {
		tool := tools.NewCapabilityTool(def, registry, hist)
		s.AddTool(tool.Definition(), tool.Handle)
	}

	// growth_history registers unconditionally — with history disabled
	// it reports why instead of vanishing from the tool list.
	historyTool := tools.NewHistoryTool(hist)
	s.AddTool(historyTool.Definition(), historyTool.Handle)

	// --- Register prompts ---

	auditPrompt := prompts.NewAuditPrompt()
	s.AddPrompt(auditPrompt.Definition(), auditPrompt.Handle)

	statusPrompt := prompts.NewStatusPrompt()
	s.AddPrompt(statusPrompt.Definition(), statusPrompt.Handle)

	// --- Register resources ---

	resourceHandler := resources.NewHandler(registry)
	for _, audience := range []growth.Audience{growth.AudienceB2B, growth.AudienceB2C} {
		s.AddResource(resourceHandler.BenchmarkResource(audience), resourceHandler.HandleBenchmarks(audience))
	}
	s.AddResource(resourceHandler.CatalogResource(), resourceHandler.HandleCatalog)
	s.AddResource(resourceHandler.CapabilitiesResource(), resourceHandler.HandleCapabilities)

	return s, cleanup, nil
}

// noop is the default cleanup when history is disabled.
func noop() {}

// serverInstructions returns the system instructions that tell the AI
// how to use the growth tools effectively.
func serverInstructions() string {
	return `You have access to a growth advisory MCP server with deterministic,
benchmark-driven analysis tools.

## WHAT THIS SERVER IS

Every tool here computes its answer from static benchmark tables and
explicit scoring rules — the same inputs always produce the same outputs.
Tools return a JSON envelope: {success, data, explanation, confidence}.
Confidence reflects input completeness, not model certainty.

## CORE RULES

- NEVER invent metric values. If the user doesn't know a metric, omit it —
  the scoring renormalizes over what was measured.
- Rates are fractions: 35% activation is 0.35, not 35.
- Always pass business_model and audience — every tool requires them.
- Present the "explanation" field to the user first, then relevant details
  from "data". Don't dump raw JSON.

## TYPICAL WORKFLOWS

Full audit:
1. Collect business_model, audience, stage, budget, and any measured metrics
2. Call analyze_growth — it runs health scoring, channel ranking, retention,
   and virality in one pass and returns prioritized actions
3. Walk the user through actions in priority order

Funnel deep-dive (needs real counts):
1. Collect entry/exit counts per stage. Canonical stage names get
   audience-specific benchmarks: visit-to-signup, signup-to-activation,
   activation-to-paid, paid-to-retained
2. Call analyze_funnel — bottlenecks come back worst-first with remedies

Planning:
- generate_playbook for a 90-day plan focused on the stage that matters
- rank_channels when the question is "where should I spend"
- brainstorm_growth_ideas for experiment candidates, optionally filtered
  by AARRR stage
- launch_checklist for a phased launch plan; its tool-call payloads are
  NEVER executed by this server — hand them to the user's own tooling

Market work:
- competitor_battlecard requires a competitors array — ask for names,
  strengths, weaknesses, price positioning first
- build_personas passes caller personas through untouched; with none it
  returns labeled templates the user must validate

## HISTORY

Successful analyses are recorded locally. Use growth_history to compare
assessments over time, and the growth-status prompt to review changes.
Read growth://benchmarks/<audience> to show the user the exact thresholds
their numbers are judged against.`
}
