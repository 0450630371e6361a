// Package resources implements the MCP read-only resources: benchmark
// tables, the channel catalog, and the capability listing.
//
// Resources use growth:// URI addressing following MCP conventions.
// Everything served here is static reference data; handlers never touch
// the history store or run scoring.
package resources

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/KristjanToop/gaas-growth-hacker/internal/benchmarks"
	"github.com/KristjanToop/gaas-growth-hacker/internal/capability"
	"github.com/KristjanToop/gaas-growth-hacker/internal/channels"
	"github.com/KristjanToop/gaas-growth-hacker/internal/growth"
	"github.com/KristjanToop/gaas-growth-hacker/internal/scoring"
)

// Handler serves the growth:// resource endpoints.
type Handler struct {
	registry *capability.Registry
}

// NewHandler creates a resource Handler with its dependencies.
func NewHandler(registry *capability.Registry) *Handler {
	return &Handler{registry: registry}
}

// --- growth://benchmarks/<audience> ---

// BenchmarkResource returns the resource definition for one audience's
// benchmark tables.
func (h *Handler) BenchmarkResource(a growth.Audience) mcp.Resource {
	return mcp.NewResource(
		fmt.Sprintf("growth://benchmarks/%s", a),
		fmt.Sprintf("%s growth benchmarks", a),
		mcp.WithResourceDescription(fmt.Sprintf(
			"Benchmark thresholds used to classify %s metrics and funnel conversion rates", a)),
		mcp.WithMIMEType("application/json"),
	)
}

// benchmarkDoc is the serialized benchmark table for one audience.
type benchmarkDoc struct {
	Audience     growth.Audience                          `json:"audience"`
	Metrics      map[benchmarks.Metric]scoring.Thresholds `json:"metrics"`
	FunnelStages map[string]scoring.Thresholds            `json:"funnel_stages"`
}

// HandleBenchmarks serves the audience's benchmark tables as JSON. The
// audience is fixed at registration; the URI addresses the table.
func (h *Handler) HandleBenchmarks(a growth.Audience) func(context.Context, mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return func(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		doc := benchmarkDoc{
			Audience:     a,
			Metrics:      map[benchmarks.Metric]scoring.Thresholds{},
			FunnelStages: map[string]scoring.Thresholds{},
		}
		for _, m := range benchmarks.Metrics() {
			if row, ok := benchmarks.Lookup(m, a); ok {
				doc.Metrics[m] = row.Thresholds
			}
		}
		for _, stage := range benchmarks.FunnelStageNames() {
			t, _ := benchmarks.FunnelThresholds(stage, a)
			doc.FunnelStages[stage] = t
		}
		return jsonResource(req.Params.URI, doc)
	}
}

// --- growth://channels/catalog ---

// CatalogResource returns the resource definition for the channel
// catalog.
func (h *Handler) CatalogResource() mcp.Resource {
	return mcp.NewResource(
		"growth://channels/catalog",
		"Acquisition channel catalog",
		mcp.WithResourceDescription(
			"Every acquisition channel the ranker scores, with audience fit tags, "+
				"typical CAC, time to result, scalability, and difficulty"),
		mcp.WithMIMEType("application/json"),
	)
}

// HandleCatalog serves the full channel catalog as JSON.
func (h *Handler) HandleCatalog(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return jsonResource(req.Params.URI, channels.Catalog())
}

// --- growth://capabilities ---

// CapabilitiesResource returns the resource definition for the
// capability listing.
func (h *Handler) CapabilitiesResource() mcp.Resource {
	return mcp.NewResource(
		"growth://capabilities",
		"Advisory capabilities",
		mcp.WithResourceDescription(
			"Every advisory capability this server exposes, with its parameter contract"),
		mcp.WithMIMEType("application/json"),
	)
}

// capabilityDoc is the serialized contract of one capability.
type capabilityDoc struct {
	Kind        capability.Kind        `json:"kind"`
	Description string                 `json:"description"`
	Params      []capability.ParamSpec `json:"params"`
}

// HandleCapabilities serves the registered capability contracts as JSON.
func (h *Handler) HandleCapabilities(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	defs := h.registry.List()
	docs := make([]capabilityDoc, 0, len(defs))
	for _, d := range defs {
		docs = append(docs, capabilityDoc{
			Kind:        d.Kind,
			Description: d.Description,
			Params:      d.Params,
		})
	}
	return jsonResource(req.Params.URI, docs)
}

// jsonResource marshals v as a pretty-printed JSON resource payload.
func jsonResource(uri string, v any) ([]mcp.ResourceContents, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling %s: %w", uri, err)
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
