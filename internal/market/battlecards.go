package market

import (
	"fmt"

	"github.com/KristjanToop/gaas-growth-hacker/internal/growth"
)

// Battlecard is a per-competitor sales/positioning cheat sheet derived
// from the caller's competitor records.
type Battlecard struct {
	Competitor  growth.Competitor `json:"competitor"`
	WinThemes   []string          `json:"win_themes"`
	Counters    []string          `json:"counters"`
	PricingPlay string            `json:"pricing_play"`
}

// BuildBattlecards derives one card per caller-supplied competitor.
// With no competitors in the context it returns nil — there is nothing
// to fabricate a card from.
func BuildBattlecards(ctx growth.BusinessContext) []Battlecard {
	cards := make([]Battlecard, 0, len(ctx.Competitors))
	for _, comp := range ctx.Competitors {
		cards = append(cards, Battlecard{
			Competitor:  comp,
			WinThemes:   winThemes(comp),
			Counters:    counters(comp),
			PricingPlay: pricingPlay(comp),
		})
	}
	return cards
}

// winThemes turns each competitor weakness into an attack angle.
func winThemes(c growth.Competitor) []string {
	if len(c.Weaknesses) == 0 {
		return []string{
			fmt.Sprintf("No mapped weaknesses for %s yet — run win/loss interviews to find them", c.Name),
		}
	}
	themes := make([]string, 0, len(c.Weaknesses))
	for _, w := range c.Weaknesses {
		themes = append(themes, fmt.Sprintf("Lead demos with the area %s is weak in: %s", c.Name, w))
	}
	return themes
}

// counters prepares a reframe for each competitor strength.
func counters(c growth.Competitor) []string {
	if len(c.Strengths) == 0 {
		return nil
	}
	out := make([]string, 0, len(c.Strengths))
	for _, s := range c.Strengths {
		out = append(out, fmt.Sprintf("When %q comes up, acknowledge it and reframe to total outcome and switching cost", s))
	}
	return out
}

// pricingPlay picks the counter-positioning for the competitor's price
// point.
func pricingPlay(c growth.Competitor) string {
	switch c.PricePoint {
	case "cheaper":
		return "Don't race to the bottom: sell reliability, support, and total cost over sticker price"
	case "premium":
		return "Position as the accessible choice: same core outcome without the enterprise overhead"
	case "comparable":
		return "Price is a wash — win on onboarding speed and the weakness-led demo"
	default:
		return "Price point unknown — mystery-shop them before the next competitive deal"
	}
}
