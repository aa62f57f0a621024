package entity

import "strings"

// ModelTier identifies a pricing bracket for the underlying language model.
type ModelTier string

const (
	TierBudget   ModelTier = "budget"
	TierStandard ModelTier = "standard"
	TierPremium  ModelTier = "premium"
)

// ParseModelTier normaliza uma string de tier vinda de flag, config ou chat.
// Retorna TierStandard e false quando o valor não é reconhecido.
func ParseModelTier(s string) (ModelTier, bool) {
	switch ModelTier(strings.ToLower(strings.TrimSpace(s))) {
	case TierBudget:
		return TierBudget, true
	case TierStandard:
		return TierStandard, true
	case TierPremium:
		return TierPremium, true
	}
	return TierStandard, false
}

// Valid reports whether the tier is one of the three known brackets.
func (t ModelTier) Valid() bool {
	return t == TierBudget || t == TierStandard || t == TierPremium
}

// UsageProfile describes the monthly usage assumptions of an AI workflow.
// Per-transaction counts are averages; a count of zero means the
// corresponding feature is disabled.
type UsageProfile struct {
	TransactionsPerMonth   int       `json:"transactions_per_month" yaml:"transactions_per_month" toml:"transactions_per_month"`
	InputTokens            int       `json:"input_tokens" yaml:"input_tokens" toml:"input_tokens"`
	OutputTokens           int       `json:"output_tokens" yaml:"output_tokens" toml:"output_tokens"`
	InterAgentInteractions int       `json:"inter_agent_interactions" yaml:"inter_agent_interactions" toml:"inter_agent_interactions"`
	RAGQueries             int       `json:"rag_queries" yaml:"rag_queries" toml:"rag_queries"`
	DBQueries              int       `json:"db_queries" yaml:"db_queries" toml:"db_queries"`
	ToolCalls              int       `json:"tool_calls" yaml:"tool_calls" toml:"tool_calls"`
	MemoryOps              int       `json:"memory_ops" yaml:"memory_ops" toml:"memory_ops"`
	ReflectionEnabled      bool      `json:"reflection_enabled" yaml:"reflection_enabled" toml:"reflection_enabled"`
	ModelTier              ModelTier `json:"model_tier" yaml:"model_tier" toml:"model_tier"`
}

// IsZero reporta se nenhum campo de uso foi preenchido (perfil vazio).
func (p UsageProfile) IsZero() bool {
	return p.TransactionsPerMonth == 0 &&
		p.InputTokens == 0 &&
		p.OutputTokens == 0 &&
		p.InterAgentInteractions == 0 &&
		p.RAGQueries == 0 &&
		p.DBQueries == 0 &&
		p.ToolCalls == 0 &&
		p.MemoryOps == 0 &&
		!p.ReflectionEnabled &&
		p.ModelTier == ""
}
