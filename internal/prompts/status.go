package prompts

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// StatusPrompt handles the growth-status MCP prompt. It instructs the
// AI to review past analyses and report what changed.
type StatusPrompt struct{}

// NewStatusPrompt creates a StatusPrompt.
func NewStatusPrompt() *StatusPrompt {
	return &StatusPrompt{}
}

// Definition returns the MCP prompt definition for registration.
func (p *StatusPrompt) Definition() mcp.Prompt {
	return mcp.NewPrompt("growth-status",
		mcp.WithPromptDescription(
			"Review recent growth analyses recorded by this server and "+
				"summarize what changed since the last assessment.",
		),
	)
}

// Handle processes the growth-status prompt request.
func (p *StatusPrompt) Handle(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	return &mcp.GetPromptResult{
		Description: "Growth Status Review",
		Messages: []mcp.PromptMessage{
			{
				Role: mcp.RoleUser,
				Content: mcp.NewTextContent(
					"Please run `growth_history` to list my recent growth analyses.\n\n" +
						"Then:\n" +
						"1. Summarize the most recent assessment: score, weakest area, top action\n" +
						"2. Compare against earlier entries and call out what improved or regressed\n" +
						"3. If the latest assessment is stale or my metrics changed, offer to re-run " +
						"`analyze_growth` with fresh numbers",
				),
			},
		},
	}, nil
}
