package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/spf13/cast"

	"github.com/KristjanToop/gaas-growth-hacker/internal/history"
)

// HistoryTool exposes the invocation log as the growth_history MCP
// tool. It is registered even when history is disabled so clients get a
// clear message instead of an unknown-tool error.
type HistoryTool struct {
	hist *history.Store // nil when history is disabled
}

// NewHistoryTool creates the history listing tool.
func NewHistoryTool(hist *history.Store) *HistoryTool {
	return &HistoryTool{hist: hist}
}

// Definition returns the MCP tool definition for growth_history.
func (t *HistoryTool) Definition() mcp.Tool {
	return mcp.NewTool("growth_history",
		mcp.WithDescription(
			"List recent growth analyses recorded by this server. "+
				"Use it to compare assessments over time or recover a past recommendation.",
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum entries returned (default 10)"),
		),
		mcp.WithString("capability",
			mcp.Description("Only entries for this capability (e.g. growth_health_check)"),
		),
	)
}

// Handle processes the growth_history tool call.
func (t *HistoryTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if t.hist == nil {
		return mcp.NewToolResultError("history is disabled: the local database could not be opened"), nil
	}

	limit := cast.ToInt(req.GetArguments()["limit"])
	if limit <= 0 {
		limit = 10
	}
	capFilter := req.GetString("capability", "")

	entries, err := t.hist.Recent(limit, capFilter)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("reading history: %v", err)), nil
	}
	if len(entries) == 0 {
		return mcp.NewToolResultText("No recorded analyses yet."), nil
	}

	payload, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encoding history: %v", err)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("%d recorded analyses (newest first)\n\n%s", len(entries), payload)), nil
}
