package discovery

import (
	"encoding/json"
	"regexp"

	"github.com/costpilot/ai-cost-dashboard/internal/domain/entity"
)

// profileSpanRegex localiza spans "{...}" planos que contenham a chave
// literal do perfil. Extração oportunista: o agente pode cercar o objeto
// com texto livre ou cercas de código.
var profileSpanRegex = regexp.MustCompile(`\{[^{}]*"transactions_per_month"[^{}]*\}`)

// rawProfile espelha o JSON emitido pelo agente. model_tier chega como
// string livre e é normalizado depois.
type rawProfile struct {
	TransactionsPerMonth   int    `json:"transactions_per_month"`
	InputTokens            int    `json:"input_tokens"`
	OutputTokens           int    `json:"output_tokens"`
	InterAgentInteractions int    `json:"inter_agent_interactions"`
	RAGQueries             int    `json:"rag_queries"`
	DBQueries              int    `json:"db_queries"`
	ToolCalls              int    `json:"tool_calls"`
	MemoryOps              int    `json:"memory_ops"`
	ReflectionEnabled      bool   `json:"reflection_enabled"`
	ModelTier              string `json:"model_tier"`
}

// ExtractProfile tenta extrair um UsageProfile da resposta em texto livre do
// assistente. Retorna (nil, false) quando nenhum span parseável é encontrado;
// spans malformados são silenciosamente ignorados ("best effort").
func ExtractProfile(reply string) (*entity.UsageProfile, bool) {
	for _, span := range profileSpanRegex.FindAllString(reply, -1) {
		var raw rawProfile
		if err := json.Unmarshal([]byte(span), &raw); err != nil {
			continue
		}

		tier, _ := entity.ParseModelTier(raw.ModelTier)
		return &entity.UsageProfile{
			TransactionsPerMonth:   raw.TransactionsPerMonth,
			InputTokens:            raw.InputTokens,
			OutputTokens:           raw.OutputTokens,
			InterAgentInteractions: raw.InterAgentInteractions,
			RAGQueries:             raw.RAGQueries,
			DBQueries:              raw.DBQueries,
			ToolCalls:              raw.ToolCalls,
			MemoryOps:              raw.MemoryOps,
			ReflectionEnabled:      raw.ReflectionEnabled,
			ModelTier:              tier,
		}, true
	}

	return nil, false
}
