// Package launch builds phased launch checklists and the structured
// payloads for external tool integrations.
//
// The external collaborators (email delivery, ad platforms, analytics,
// payments, social) are opaque: this package only assembles ToolCall
// payloads and renders them as snippets. It never executes a call,
// never retries, and never interprets a collaborator's result.
package launch

import (
	"fmt"

	"github.com/KristjanToop/gaas-growth-hacker/internal/growth"
)

// ToolCall is a structured invocation payload for one external tool.
type ToolCall struct {
	Tool   string         `json:"tool"`
	Params map[string]any `json:"params"`
}

// Integration describes one external collaborator's contract: the tool
// name and the parameters it accepts. Interface only — execution is out
// of scope.
type Integration struct {
	Tool        string            `json:"tool"`
	Description string            `json:"description"`
	Params      map[string]string `json:"params"` // name -> type/required note
	Returns     string            `json:"returns"`
}

// Integrations returns the fixed external-collaborator contracts.
func Integrations() []Integration {
	return integrations
}

var integrations = []Integration{
	{
		Tool:        "email.send_campaign",
		Description: "Send a one-off email campaign through the connected email provider",
		Params: map[string]string{
			"list_id":  "string, required",
			"subject":  "string, required",
			"body_md":  "string, required",
			"send_at":  "RFC3339 timestamp, optional (immediate when absent)",
		},
		Returns: "campaign id and provider-reported queue status, passed through raw",
	},
	{
		Tool:        "ads.create_campaign",
		Description: "Create a paid campaign on the connected ad platform",
		Params: map[string]string{
			"platform":     "string enum {google, meta, linkedin}, required",
			"daily_budget": "number (USD), required",
			"objective":    "string, required",
			"audience":     "string, required",
		},
		Returns: "platform campaign id, passed through raw",
	},
	{
		Tool:        "analytics.track_event",
		Description: "Register a product-analytics event definition",
		Params: map[string]string{
			"event":      "string, required",
			"properties": "object, optional",
		},
		Returns: "acknowledgement from the analytics provider, passed through raw",
	},
	{
		Tool:        "payments.create_product",
		Description: "Create a purchasable product/plan in the payment provider",
		Params: map[string]string{
			"name":      "string, required",
			"price_usd": "number, required",
			"interval":  "string enum {one_time, month, year}, required",
		},
		Returns: "provider product and price ids, passed through raw",
	},
	{
		Tool:        "social.schedule_post",
		Description: "Schedule a post on a connected social account",
		Params: map[string]string{
			"network": "string enum {x, linkedin, instagram}, required",
			"text":    "string, required",
			"post_at": "RFC3339 timestamp, required",
		},
		Returns: "scheduled post id, passed through raw",
	},
}

// Item is one checklist entry, optionally carrying the tool-call
// payload that automates it.
type Item struct {
	Task string    `json:"task"`
	Call *ToolCall `json:"call,omitempty"`
}

// Phase groups checklist items.
type Phase struct {
	Name  string `json:"name"`
	Items []Item `json:"items"`
}

// Checklist is the phased launch plan.
type Checklist struct {
	Phases []Phase `json:"phases"`
}

// BuildChecklist assembles the launch checklist for a context. Payload
// fields are interpolated from the company/product profile; the caller
// fills in provider-specific ids before handing a payload to the
// collaborator.
func BuildChecklist(ctx growth.BusinessContext) Checklist {
	name := ctx.Company.Name
	if name == "" {
		name = "the product"
	}

	prelaunch := Phase{
		Name: "pre-launch",
		Items: []Item{
			{
				Task: "Define and register the activation event",
				Call: &ToolCall{
					Tool: "analytics.track_event",
					Params: map[string]any{
						"event":      "activation",
						"properties": map[string]any{"source": "launch"},
					},
				},
			},
			{
				Task: "Create the launch pricing plan",
				Call: &ToolCall{
					Tool: "payments.create_product",
					Params: map[string]any{
						"name":      fmt.Sprintf("%s — launch plan", name),
						"price_usd": launchPrice(ctx.Product.Pricing),
						"interval":  "month",
					},
				},
			},
			{Task: "Dry-run the signup flow end to end on a clean account"},
			{Task: "Prepare the press/launch kit and one-liner"},
		},
	}

	launchDay := Phase{
		Name: "launch-day",
		Items: []Item{
			{
				Task: "Send the launch announcement to the waitlist",
				Call: &ToolCall{
					Tool: "email.send_campaign",
					Params: map[string]any{
						"list_id": "waitlist",
						"subject": fmt.Sprintf("%s is live", name),
						"body_md": fmt.Sprintf("After months of building, %s is open to everyone today.", name),
					},
				},
			},
			{
				Task: "Publish the launch post",
				Call: &ToolCall{
					Tool: "social.schedule_post",
					Params: map[string]any{
						"network": launchNetwork(ctx.Product.Audience),
						"text":    fmt.Sprintf("%s is live today. Here's what it does and why we built it:", name),
						"post_at": "T+0",
					},
				},
			},
			{Task: "Monitor signup and activation dashboards hourly"},
		},
	}

	postLaunch := Phase{
		Name: "post-launch",
		Items: []Item{
			{
				Task: "Start the always-on acquisition campaign",
				Call: &ToolCall{
					Tool: "ads.create_campaign",
					Params: map[string]any{
						"platform":     adPlatform(ctx.Product.Audience),
						"daily_budget": dailyBudget(ctx.Company.MonthlyBudgetUSD),
						"objective":    "signups",
						"audience":     string(ctx.Product.Audience),
					},
				},
			},
			{Task: "Interview the first 10 activated users"},
			{Task: "Ship the first onboarding fix from launch-week feedback"},
		},
	}

	return Checklist{Phases: []Phase{prelaunch, launchDay, postLaunch}}
}

// launchPrice suggests an opening price point per pricing model.
func launchPrice(p growth.PricingModel) float64 {
	switch p {
	case growth.PricingFree, growth.PricingFreemium:
		return 0
	case growth.PricingUsageBased:
		return 10
	default:
		return 29
	}
}

func launchNetwork(a growth.Audience) string {
	if a.Benchmarks() == growth.AudienceB2B {
		return "linkedin"
	}
	return "x"
}

func adPlatform(a growth.Audience) string {
	if a.Benchmarks() == growth.AudienceB2B {
		return "linkedin"
	}
	return "meta"
}

// dailyBudget reserves roughly a third of the monthly budget for paid,
// spread over the month.
func dailyBudget(monthly float64) float64 {
	if monthly <= 0 {
		return 10
	}
	return monthly / 3 / 30
}
