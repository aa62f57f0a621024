package entity

import "time"

// CostBreakdown contains the monthly token volumes and dollar costs derived
// from a UsageProfile. Token quantities are monthly totals; fractional values
// appear because the inter-agent surcharge is a percentage of combined tokens.
type CostBreakdown struct {
	// Termos individuais de tokens de entrada (mensais).
	BaseInputTokens  float64 `json:"base_input_tokens"`
	InterAgentTokens float64 `json:"inter_agent_tokens"`
	RAGTokens        float64 `json:"rag_tokens"`
	DBQueryTokens    float64 `json:"db_query_tokens"`
	ToolCallTokens   float64 `json:"tool_call_tokens"`
	MemoryTokens     float64 `json:"memory_tokens"`
	ReflectionTokens float64 `json:"reflection_tokens"`

	// InputTokens is the aggregate input-token equivalent, overhead included.
	InputTokens  float64 `json:"input_tokens"`
	OutputTokens float64 `json:"output_tokens"`

	InputCost    float64 `json:"input_cost"`
	OutputCost   float64 `json:"output_cost"`
	TotalMonthly float64 `json:"total_monthly"`
	TotalAnnual  float64 `json:"total_annual"`
}

// ScenarioProjection representa uma linha de projeção de crescimento
// (ex.: 2x, 5x, 10x do volume atual).
type ScenarioProjection struct {
	Label      string  `json:"label"`
	Multiplier float64 `json:"multiplier"`
	Monthly    float64 `json:"monthly"`
}

// EstimateReport agrupa tudo que um relatório exportável precisa.
type EstimateReport struct {
	GeneratedAt time.Time            `json:"generated_at"`
	Profile     UsageProfile         `json:"profile"`
	Breakdown   CostBreakdown        `json:"breakdown"`
	Scenarios   []ScenarioProjection `json:"scenarios,omitempty"`
}
