package discovery

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/costpilot/ai-cost-dashboard/internal/domain/entity"
	"github.com/costpilot/ai-cost-dashboard/internal/shared/types"
)

func TestSendMessage(t *testing.T) {
	var gotPath, gotAuth string
	var gotReq apiRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"content":"How many transactions per month?"}}]}`))
	}))
	defer server.Close()

	client := NewAgentClient(types.DiscoverySettings{
		Endpoint: server.URL,
		APIKey:   "sk-test",
		Model:    "gpt-4o-mini",
	})

	reply, err := client.SendMessage(context.Background(), []entity.ChatMessage{
		{Role: "user", Content: "I want to estimate AI workflow costs."},
	})

	require.NoError(t, err)
	assert.Equal(t, "How many transactions per month?", reply)
	assert.Equal(t, "/chat/completions", gotPath)
	assert.Equal(t, "Bearer sk-test", gotAuth)
	assert.Equal(t, "gpt-4o-mini", gotReq.Model)

	// system prompt precede o histórico
	require.Len(t, gotReq.Messages, 2)
	assert.Equal(t, "system", gotReq.Messages[0].Role)
	assert.Equal(t, "user", gotReq.Messages[1].Role)
}

func TestSendMessageAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model overloaded", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewAgentClient(types.DiscoverySettings{Endpoint: server.URL})

	_, err := client.SendMessage(context.Background(), nil)

	assert.ErrorContains(t, err, "discovery API error 503")
}

func TestSendMessageNoChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer server.Close()

	client := NewAgentClient(types.DiscoverySettings{Endpoint: server.URL})

	_, err := client.SendMessage(context.Background(), nil)

	assert.ErrorContains(t, err, "no choices")
}

func TestSendMessageWithoutEndpoint(t *testing.T) {
	client := NewAgentClient(types.DiscoverySettings{})

	_, err := client.SendMessage(context.Background(), nil)

	assert.ErrorIs(t, err, types.ErrDiscoveryNotEnabled)
}

func TestResolveSettings(t *testing.T) {
	t.Setenv("AI_COST_ENDPOINT", "http://env:9999/v1")
	t.Setenv("AI_COST_API_KEY", "")
	t.Setenv("AI_COST_MODEL", "")

	cfg := &types.Config{Discovery: types.DiscoverySettings{
		Endpoint: "http://file:1234/v1",
		APIKey:   "sk-file",
	}}

	settings := ResolveSettings(cfg)

	// env vence o arquivo; demais campos vêm do arquivo ou defaults
	assert.Equal(t, "http://env:9999/v1", settings.Endpoint)
	assert.Equal(t, "sk-file", settings.APIKey)
	assert.Equal(t, "gpt-4o-mini", settings.Model)
}
