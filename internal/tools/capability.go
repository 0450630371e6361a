// Package tools adapts advisory capabilities to MCP tool handlers.
//
// Each registered capability becomes one MCP tool: its parameter
// contract maps to the tool's input schema, and its Result envelope is
// rendered as a short explanation followed by the structured JSON
// payload. Tools receive their dependencies via their struct; nothing
// reads globals.
package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/KristjanToop/gaas-growth-hacker/internal/capability"
	"github.com/KristjanToop/gaas-growth-hacker/internal/history"
)

// CapabilityTool exposes one capability as an MCP tool.
type CapabilityTool struct {
	def      capability.Definition
	registry *capability.Registry
	hist     *history.Store // nil when history is disabled
}

// NewCapabilityTool creates the adapter for one capability definition.
func NewCapabilityTool(def capability.Definition, registry *capability.Registry, hist *history.Store) *CapabilityTool {
	return &CapabilityTool{def: def, registry: registry, hist: hist}
}

// Definition builds the MCP tool schema from the capability's parameter
// contract.
func (t *CapabilityTool) Definition() mcp.Tool {
	opts := []mcp.ToolOption{mcp.WithDescription(t.def.Description)}
	for _, p := range t.def.Params {
		opts = append(opts, paramOption(p))
	}
	return mcp.NewTool(string(t.def.Kind), opts...)
}

// paramOption maps one ParamSpec to the matching mcp-go property option.
func paramOption(p capability.ParamSpec) mcp.ToolOption {
	var props []mcp.PropertyOption
	if p.Required {
		props = append(props, mcp.Required())
	}
	if p.Description != "" {
		props = append(props, mcp.Description(p.Description))
	}
	if len(p.Enum) > 0 {
		props = append(props, mcp.Enum(p.Enum...))
	}

	switch p.Type {
	case capability.TypeNumber:
		return mcp.WithNumber(p.Name, props...)
	case capability.TypeObject:
		return mcp.WithObject(p.Name, props...)
	case capability.TypeArray:
		return mcp.WithArray(p.Name, props...)
	default:
		return mcp.WithString(p.Name, props...)
	}
}

// Handle dispatches the MCP call to the capability registry. Validation
// and context-parse failures surface as tool errors so the client can
// correct its arguments and retry.
func (t *CapabilityTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()

	res := t.registry.Invoke(t.def.Kind, args)
	if !res.Success {
		return mcp.NewToolResultError(res.Explanation), nil
	}

	payload, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encoding result: %v", err)), nil
	}

	// History is best-effort: a full disk never fails an advisory call.
	if t.hist != nil {
		if _, err := t.hist.Record(string(t.def.Kind), args, res.Explanation, res.Confidence); err != nil {
			log.Printf("WARNING: history record: %v", err)
		}
	}

	return mcp.NewToolResultText(fmt.Sprintf("%s\n\n%s", res.Explanation, payload)), nil
}
