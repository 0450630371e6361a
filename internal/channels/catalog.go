// Package channels ranks acquisition channels for a business context.
//
// The catalog is hand-authored reference data in the spirit of an
// agency cheat-sheet: rough CAC averages, qualitative speed/scale/
// difficulty tiers, and fit tags. It is read-only at runtime.
package channels

import "github.com/KristjanToop/gaas-growth-hacker/internal/growth"

// Tier is a coarse qualitative rating used for time-to-result,
// scalability, and difficulty.
type Tier string

const (
	TierLow       Tier = "low"
	TierMedium    Tier = "medium"
	TierHigh      Tier = "high"
	TierUnlimited Tier = "unlimited" // scalability only
)

// Profile is the static record for one acquisition channel.
type Profile struct {
	Name string `json:"name"`

	// BestFor and NotFor are matched (case-insensitive substring)
	// against the audience type and industry.
	BestFor []string `json:"best_for"`
	NotFor  []string `json:"not_for,omitempty"`

	// AvgCAC is the typical cost per acquired customer, by audience.
	AvgCAC map[growth.Audience]float64 `json:"avg_cac"`

	TimeToResult Tier `json:"time_to_result"` // low = fast
	Scalability  Tier `json:"scalability"`
	Difficulty   Tier `json:"difficulty"`
}

// Catalog returns every channel profile, in a fixed order.
func Catalog() []Profile {
	return catalog
}

var catalog = []Profile{
	{
		Name:         "organic-search",
		BestFor:      []string{"b2b", "b2c", "saas", "content-rich products"},
		AvgCAC:       map[growth.Audience]float64{growth.AudienceB2B: 90, growth.AudienceB2C: 25},
		TimeToResult: TierHigh, // slow: months to compound
		Scalability:  TierUnlimited,
		Difficulty:   TierMedium,
	},
	{
		Name:         "content-marketing",
		BestFor:      []string{"b2b", "saas", "developer tools", "education"},
		NotFor:       []string{"impulse ecommerce"},
		AvgCAC:       map[growth.Audience]float64{growth.AudienceB2B: 110, growth.AudienceB2C: 35},
		TimeToResult: TierHigh,
		Scalability:  TierHigh,
		Difficulty:   TierMedium,
	},
	{
		Name:         "paid-search",
		BestFor:      []string{"b2b", "b2c", "high-intent categories", "ecommerce"},
		AvgCAC:       map[growth.Audience]float64{growth.AudienceB2B: 260, growth.AudienceB2C: 45},
		TimeToResult: TierLow, // fast
		Scalability:  TierHigh,
		Difficulty:   TierMedium,
	},
	{
		Name:         "paid-social",
		BestFor:      []string{"b2c", "consumer", "ecommerce", "visual products"},
		NotFor:       []string{"b2b enterprise"},
		AvgCAC:       map[growth.Audience]float64{growth.AudienceB2B: 320, growth.AudienceB2C: 38},
		TimeToResult: TierLow,
		Scalability:  TierHigh,
		Difficulty:   TierMedium,
	},
	{
		Name:         "organic-social",
		BestFor:      []string{"b2c", "consumer", "community-driven brands"},
		AvgCAC:       map[growth.Audience]float64{growth.AudienceB2B: 60, growth.AudienceB2C: 15},
		TimeToResult: TierMedium,
		Scalability:  TierMedium,
		Difficulty:   TierLow,
	},
	{
		Name:         "community",
		BestFor:      []string{"b2b", "developer tools", "niche b2c", "open source"},
		AvgCAC:       map[growth.Audience]float64{growth.AudienceB2B: 70, growth.AudienceB2C: 20},
		TimeToResult: TierMedium,
		Scalability:  TierMedium,
		Difficulty:   TierHigh,
	},
	{
		Name:         "email-marketing",
		BestFor:      []string{"b2b", "b2c", "retention-heavy products", "ecommerce"},
		AvgCAC:       map[growth.Audience]float64{growth.AudienceB2B: 50, growth.AudienceB2C: 12},
		TimeToResult: TierLow,
		Scalability:  TierHigh,
		Difficulty:   TierLow,
	},
	{
		Name:         "referral-program",
		BestFor:      []string{"b2c", "consumer", "network products", "marketplace"},
		NotFor:       []string{"long sales cycles"},
		AvgCAC:       map[growth.Audience]float64{growth.AudienceB2B: 85, growth.AudienceB2C: 18},
		TimeToResult: TierMedium,
		Scalability:  TierHigh,
		Difficulty:   TierMedium,
	},
	{
		Name:         "partnerships",
		BestFor:      []string{"b2b", "saas", "api-product", "fintech"},
		AvgCAC:       map[growth.Audience]float64{growth.AudienceB2B: 140, growth.AudienceB2C: 40},
		TimeToResult: TierHigh,
		Scalability:  TierMedium,
		Difficulty:   TierHigh,
	},
	{
		Name:         "outbound-sales",
		BestFor:      []string{"b2b", "enterprise", "high acv"},
		NotFor:       []string{"b2c", "consumer"},
		AvgCAC:       map[growth.Audience]float64{growth.AudienceB2B: 480, growth.AudienceB2C: 200},
		TimeToResult: TierMedium,
		Scalability:  TierMedium,
		Difficulty:   TierHigh,
	},
	{
		Name:         "influencer-marketing",
		BestFor:      []string{"b2c", "consumer", "lifestyle", "ecommerce"},
		NotFor:       []string{"b2b enterprise"},
		AvgCAC:       map[growth.Audience]float64{growth.AudienceB2B: 300, growth.AudienceB2C: 30},
		TimeToResult: TierLow,
		Scalability:  TierMedium,
		Difficulty:   TierMedium,
	},
	{
		Name:         "product-led-virality",
		BestFor:      []string{"b2c", "b2b", "collaboration tools", "network products"},
		AvgCAC:       map[growth.Audience]float64{growth.AudienceB2B: 30, growth.AudienceB2C: 8},
		TimeToResult: TierHigh,
		Scalability:  TierUnlimited,
		Difficulty:   TierHigh,
	},
}
