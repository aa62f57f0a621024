package discovery

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/costpilot/ai-cost-dashboard/internal/domain/entity"
	"github.com/costpilot/ai-cost-dashboard/internal/domain/repository"
	"github.com/costpilot/ai-cost-dashboard/internal/shared/types"
)

// systemPrompt orienta o agente remoto a levantar os nove campos do perfil
// de uso e a emitir um objeto JSON quando tiver informação suficiente.
const systemPrompt = `You are a cost-discovery assistant for AI workflow adoption.
Interview the user, one or two questions at a time, to learn their expected usage:
monthly transaction volume, average input and output tokens per transaction,
agent-to-agent interactions per transaction, RAG queries, database queries,
tool calls and memory operations per transaction, whether a reflection step is
enabled, and the model tier (budget, standard or premium).

Once you are confident about the numbers, include in your reply a single JSON
object with exactly these keys: "transactions_per_month", "input_tokens",
"output_tokens", "inter_agent_interactions", "rag_queries", "db_queries",
"tool_calls", "memory_ops", "reflection_enabled", "model_tier".
Use 0 for features the user does not need. Keep the object on one line.`

// AgentClient implementa DiscoveryRepository sobre um endpoint de chat
// compatível com OpenAI.
type AgentClient struct {
	settings types.DiscoverySettings
	client   *http.Client
}

// NewAgentClient creates a client for the configured discovery endpoint.
func NewAgentClient(settings types.DiscoverySettings) *AgentClient {
	return &AgentClient{
		settings: settings,
		client:   &http.Client{Timeout: 90 * time.Second},
	}
}

// ResolveSettings merges defaults, the optional config file section and
// environment variables. Environment wins over the file.
func ResolveSettings(cfg *types.Config) types.DiscoverySettings {
	settings := types.DiscoverySettings{}
	if cfg != nil {
		settings = cfg.Discovery
	}

	if v := os.Getenv("AI_COST_ENDPOINT"); v != "" {
		settings.Endpoint = v
	}
	if v := os.Getenv("AI_COST_API_KEY"); v != "" {
		settings.APIKey = v
	}
	if v := os.Getenv("AI_COST_MODEL"); v != "" {
		settings.Model = v
	}

	if settings.Model == "" {
		settings.Model = "gpt-4o-mini"
	}

	return settings
}

// apiRequest is the request body sent to the chat completions API.
type apiRequest struct {
	Model       string               `json:"model"`
	Messages    []entity.ChatMessage `json:"messages"`
	Temperature float64              `json:"temperature"`
}

type apiResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// SendMessage envia o histórico (precedido do system prompt) e retorna o
// texto da resposta do assistente.
func (c *AgentClient) SendMessage(ctx context.Context, history []entity.ChatMessage) (string, error) {
	if c.settings.Endpoint == "" {
		return "", types.ErrDiscoveryNotEnabled
	}

	messages := make([]entity.ChatMessage, 0, len(history)+1)
	messages = append(messages, entity.ChatMessage{Role: "system", Content: systemPrompt})
	messages = append(messages, history...)

	body, err := json.Marshal(apiRequest{
		Model:       c.settings.Model,
		Messages:    messages,
		Temperature: 0.2,
	})
	if err != nil {
		return "", fmt.Errorf("building request body: %w", err)
	}

	url := strings.TrimSuffix(c.settings.Endpoint, "/") + "/chat/completions"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	if c.settings.APIKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.settings.APIKey)
	}

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("discovery API error %d: %s", resp.StatusCode, string(respBody))
	}

	var parsed apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("parsing response: %w", err)
	}

	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("discovery API returned no choices")
	}

	return parsed.Choices[0].Message.Content, nil
}

// garante em tempo de compilação que AgentClient satisfaz a interface
var _ repository.DiscoveryRepository = (*AgentClient)(nil)
