package cost

import "github.com/costpilot/ai-cost-dashboard/internal/domain/entity"

// Pricing holds the USD prices per million tokens for a model tier.
type Pricing struct {
	InputPerMillion  float64 `json:"input_price_per_million_tokens"`
	OutputPerMillion float64 `json:"output_price_per_million_tokens"`
}

// PricingTable mapeia cada tier para seus preços por milhão de tokens.
// Os valores são fixos e precisam ser reproduzidos exatamente para manter
// compatibilidade numérica entre versões.
var PricingTable = map[entity.ModelTier]Pricing{
	entity.TierBudget:   {InputPerMillion: 0.50, OutputPerMillion: 1.50},
	entity.TierStandard: {InputPerMillion: 3, OutputPerMillion: 9},
	entity.TierPremium:  {InputPerMillion: 5, OutputPerMillion: 15},
}

// PricingFor returns the pricing for the given tier. Unknown tiers fall back
// to the standard bracket so the cost model stays total over its inputs.
func PricingFor(tier entity.ModelTier) Pricing {
	if p, ok := PricingTable[tier]; ok {
		return p
	}
	return PricingTable[entity.TierStandard]
}
