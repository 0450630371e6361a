package growth

import "fmt"

// Stage is the company's funding/maturity stage.
type Stage string

const (
	StageIdea    Stage = "idea"
	StagePreSeed Stage = "pre-seed"
	StageSeed    Stage = "seed"
	StageGrowth  Stage = "growth"
	StageScale   Stage = "scale"
)

// StageValues returns all valid stages in maturity order.
func StageValues() []string {
	return []string{
		string(StageIdea), string(StagePreSeed), string(StageSeed),
		string(StageGrowth), string(StageScale),
	}
}

// ParseStage validates a raw stage string.
func ParseStage(s string) (Stage, error) {
	for _, v := range StageValues() {
		if s == v {
			return Stage(s), nil
		}
	}
	return "", fmt.Errorf("unknown stage %q (valid: %v)", s, StageValues())
}

// BusinessModel categorizes how the product makes money.
type BusinessModel string

const (
	ModelB2BSaaS     BusinessModel = "b2b-saas"
	ModelB2CSaaS     BusinessModel = "b2c-saas"
	ModelMarketplace BusinessModel = "marketplace"
	ModelEcommerce   BusinessModel = "ecommerce"
	ModelConsumerApp BusinessModel = "consumer-app"
	ModelAPIProduct  BusinessModel = "api-product"
)

// BusinessModelValues returns all valid business models.
func BusinessModelValues() []string {
	return []string{
		string(ModelB2BSaaS), string(ModelB2CSaaS), string(ModelMarketplace),
		string(ModelEcommerce), string(ModelConsumerApp), string(ModelAPIProduct),
	}
}

// ParseBusinessModel validates a raw business-model string.
func ParseBusinessModel(s string) (BusinessModel, error) {
	for _, v := range BusinessModelValues() {
		if s == v {
			return BusinessModel(s), nil
		}
	}
	return "", fmt.Errorf("unknown business model %q (valid: %v)", s, BusinessModelValues())
}

// Audience is the buyer side the product sells to. Benchmark tables are
// segmented by this value.
type Audience string

const (
	AudienceB2B   Audience = "b2b"
	AudienceB2C   Audience = "b2c"
	AudienceB2B2C Audience = "b2b2c"
)

// AudienceValues returns all valid audience types.
func AudienceValues() []string {
	return []string{string(AudienceB2B), string(AudienceB2C), string(AudienceB2B2C)}
}

// ParseAudience validates a raw audience string.
func ParseAudience(s string) (Audience, error) {
	for _, v := range AudienceValues() {
		if s == v {
			return Audience(s), nil
		}
	}
	return "", fmt.Errorf("unknown audience %q (valid: %v)", s, AudienceValues())
}

// Benchmarks returns the audience segment used for threshold lookups.
// B2B2C products compare against B2C tables: their end-user funnel is
// consumer-shaped even when the buyer is a business.
func (a Audience) Benchmarks() Audience {
	if a == AudienceB2B2C {
		return AudienceB2C
	}
	return a
}

// PricingModel categorizes how the product charges.
type PricingModel string

const (
	PricingFree         PricingModel = "free"
	PricingFreemium     PricingModel = "freemium"
	PricingSubscription PricingModel = "subscription"
	PricingUsageBased   PricingModel = "usage-based"
	PricingOneTime      PricingModel = "one-time"
)

// PricingModelValues returns all valid pricing models.
func PricingModelValues() []string {
	return []string{
		string(PricingFree), string(PricingFreemium), string(PricingSubscription),
		string(PricingUsageBased), string(PricingOneTime),
	}
}

// ParsePricingModel validates a raw pricing-model string.
func ParsePricingModel(s string) (PricingModel, error) {
	for _, v := range PricingModelValues() {
		if s == v {
			return PricingModel(s), nil
		}
	}
	return "", fmt.Errorf("unknown pricing model %q (valid: %v)", s, PricingModelValues())
}

// FunnelStage is the AARRR (pirate metrics) taxonomy used to categorize
// tactics, ideas, and objectives.
type FunnelStage string

const (
	StageAcquisition FunnelStage = "acquisition"
	StageActivation  FunnelStage = "activation"
	StageRetention   FunnelStage = "retention"
	StageRevenue     FunnelStage = "revenue"
	StageReferral    FunnelStage = "referral"
)

// FunnelStageValues returns the AARRR stages in funnel order.
func FunnelStageValues() []string {
	return []string{
		string(StageAcquisition), string(StageActivation), string(StageRetention),
		string(StageRevenue), string(StageReferral),
	}
}

// ParseFunnelStage validates a raw AARRR stage string.
func ParseFunnelStage(s string) (FunnelStage, error) {
	for _, v := range FunnelStageValues() {
		if s == v {
			return FunnelStage(s), nil
		}
	}
	return "", fmt.Errorf("unknown funnel stage %q (valid: %v)", s, FunnelStageValues())
}
