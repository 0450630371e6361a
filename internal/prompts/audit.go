// Package prompts implements the MCP prompts that guide a client
// through the advisory workflow.
package prompts

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// AuditPrompt handles the growth-audit MCP prompt. It walks the AI
// through collecting a business context and running the full
// assessment.
type AuditPrompt struct{}

// NewAuditPrompt creates an AuditPrompt.
func NewAuditPrompt() *AuditPrompt {
	return &AuditPrompt{}
}

// Definition returns the MCP prompt definition for registration.
func (p *AuditPrompt) Definition() mcp.Prompt {
	return mcp.NewPrompt("growth-audit",
		mcp.WithPromptDescription(
			"Run a full growth audit: collect the business context and metrics, "+
				"then produce a scored assessment with prioritized actions.",
		),
	)
}

// Handle processes the growth-audit prompt request.
func (p *AuditPrompt) Handle(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	return &mcp.GetPromptResult{
		Description: "Full Growth Audit",
		Messages: []mcp.PromptMessage{
			{
				Role: mcp.RoleUser,
				Content: mcp.NewTextContent(
					"Please run a growth audit for my business.\n\n" +
						"1. Ask me for the business basics: business model, audience (b2b/b2c/b2b2c), " +
						"stage, team size, and monthly growth budget\n" +
						"2. Ask which metrics I actually measure (activation, D30 retention, churn, " +
						"viral coefficient, LTV, CAC) — skip anything I don't know, never guess values\n" +
						"3. Call `analyze_growth` with everything collected\n" +
						"4. Present the health score, the weakest area, and the recommended actions " +
						"in priority order, explaining each rationale in plain language\n" +
						"5. Offer the natural follow-ups: `analyze_funnel` if I have funnel counts, " +
						"`generate_playbook` for a 90-day plan",
				),
			},
		},
	}, nil
}
