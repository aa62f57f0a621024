package cost

import (
	"strconv"

	"github.com/costpilot/ai-cost-dashboard/internal/domain/entity"
)

// Custos fixos de tokens por chamada de cada feature. Aproximações de
// modelagem, não medições: precisam ser preservadas exatamente.
const (
	ragTokensPerQuery      = 200
	dbTokensPerQuery       = 150
	toolTokensPerCall      = 100
	memoryTokensPerOp      = 100
	reflectionTokensPerTxn = 300

	// interAgentOverhead é a sobretaxa por hop entre agentes, aplicada sobre
	// a soma de tokens de entrada e saída da transação.
	interAgentOverhead = 0.3

	tokensPerMillion = 1_000_000
)

// ComputeCost converts a usage profile into monthly token volumes and dollar
// costs. It is a pure function of the profile and the pricing table: no
// hidden state, idempotent, defined for all non-negative inputs.
//
// Every feature overhead (RAG, DB, tool calls, memory, reflection and
// inter-agent hops) is billed at the input-token rate of the selected tier.
func ComputeCost(profile entity.UsageProfile) entity.CostBreakdown {
	pricing := PricingFor(profile.ModelTier)

	txns := float64(profile.TransactionsPerMonth)

	baseInput := txns * float64(profile.InputTokens)
	baseOutput := txns * float64(profile.OutputTokens)

	interAgent := txns *
		float64(profile.InterAgentInteractions) *
		float64(profile.InputTokens+profile.OutputTokens) *
		interAgentOverhead

	rag := float64(profile.RAGQueries) * txns * ragTokensPerQuery
	dbQuery := float64(profile.DBQueries) * txns * dbTokensPerQuery
	toolCall := float64(profile.ToolCalls) * txns * toolTokensPerCall
	memory := float64(profile.MemoryOps) * txns * memoryTokensPerOp

	reflection := 0.0
	if profile.ReflectionEnabled {
		reflection = txns * reflectionTokensPerTxn
	}

	totalInput := baseInput + interAgent + rag + dbQuery + toolCall + memory + reflection

	inputCost := totalInput / tokensPerMillion * pricing.InputPerMillion
	outputCost := baseOutput / tokensPerMillion * pricing.OutputPerMillion

	totalMonthly := inputCost + outputCost

	return entity.CostBreakdown{
		BaseInputTokens:  baseInput,
		InterAgentTokens: interAgent,
		RAGTokens:        rag,
		DBQueryTokens:    dbQuery,
		ToolCallTokens:   toolCall,
		MemoryTokens:     memory,
		ReflectionTokens: reflection,
		InputTokens:      totalInput,
		OutputTokens:     baseOutput,
		InputCost:        inputCost,
		OutputCost:       outputCost,
		TotalMonthly:     totalMonthly,
		TotalAnnual:      totalMonthly * 12,
	}
}

// ScaleScenario projeta o custo mensal para um multiplicador de crescimento.
// Puramente multiplicativo: não recalcula a decomposição de tokens.
func ScaleScenario(totalMonthly, multiplier float64) float64 {
	return totalMonthly * multiplier
}

// BuildScenarios computes projection rows for the given multipliers, always
// prefixed by the 1x baseline.
func BuildScenarios(totalMonthly float64, multipliers []float64) []entity.ScenarioProjection {
	scenarios := []entity.ScenarioProjection{
		{Label: "1x (current)", Multiplier: 1, Monthly: totalMonthly},
	}
	for _, m := range multipliers {
		if m == 1 {
			continue
		}
		scenarios = append(scenarios, entity.ScenarioProjection{
			Label:      formatMultiplier(m),
			Multiplier: m,
			Monthly:    ScaleScenario(totalMonthly, m),
		})
	}
	return scenarios
}

func formatMultiplier(m float64) string {
	// multiplicadores fracionários são raros, mas suportados
	return strconv.FormatFloat(m, 'f', -1, 64) + "x"
}
