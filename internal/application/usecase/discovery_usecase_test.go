package usecase

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/costpilot/ai-cost-dashboard/internal/domain/entity"
	"github.com/costpilot/ai-cost-dashboard/internal/domain/repository"
	"github.com/costpilot/ai-cost-dashboard/internal/shared/types"
)

const profileReply = `Great, here is your usage profile: ` +
	`{"transactions_per_month": 100, "input_tokens": 500, "output_tokens": 800, ` +
	`"inter_agent_interactions": 1, "rag_queries": 0, "db_queries": 0, "tool_calls": 0, ` +
	`"memory_ops": 0, "reflection_enabled": false, "model_tier": "standard"}`

func newDiscovery(repo *fakeDiscoveryRepo) (*DiscoveryUseCase, *fakeConsole) {
	console := &fakeConsole{}
	uc := NewDiscoveryUseCase(func(types.DiscoverySettings) repository.DiscoveryRepository {
		return repo
	}, console)
	return uc, console
}

func enabledSettings() types.DiscoverySettings {
	return types.DiscoverySettings{Endpoint: "http://localhost:11434/v1", Model: "gpt-4o-mini"}
}

func TestDiscoveryRunCapturesProfile(t *testing.T) {
	repo := &fakeDiscoveryRepo{replies: []string{
		"How many transactions per month do you expect?",
		profileReply,
	}}
	uc, console := newDiscovery(repo)

	profile, err := uc.Run(context.Background(), enabledSettings(), strings.NewReader("about 100\n"))

	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.Equal(t, 100, profile.TransactionsPerMonth)
	assert.Equal(t, 800, profile.OutputTokens)
	assert.Equal(t, entity.TierStandard, profile.ModelTier)
	assert.Equal(t, 2, repo.calls)

	// a resposta do usuário entra no histórico da segunda chamada
	require.Len(t, repo.history, 2)
	last := repo.history[1]
	assert.Equal(t, "about 100", last[len(last)-1].Content)

	assert.Contains(t, console.output(), "Agent: How many transactions")
}

func TestDiscoveryRunKickoffOpensConversation(t *testing.T) {
	repo := &fakeDiscoveryRepo{replies: []string{profileReply}}
	uc, _ := newDiscovery(repo)

	_, err := uc.Run(context.Background(), enabledSettings(), strings.NewReader(""))

	require.NoError(t, err)
	require.Len(t, repo.history, 1)
	assert.Equal(t, "user", repo.history[0][0].Role)
	assert.Equal(t, kickoffMessage, repo.history[0][0].Content)
}

func TestDiscoveryRunExitAborts(t *testing.T) {
	repo := &fakeDiscoveryRepo{replies: []string{"What is your expected volume?"}}
	uc, _ := newDiscovery(repo)

	profile, err := uc.Run(context.Background(), enabledSettings(), strings.NewReader("exit\n"))

	assert.Nil(t, profile)
	assert.ErrorIs(t, err, types.ErrDiscoveryNoProfile)
	assert.Equal(t, 1, repo.calls)
}

func TestDiscoveryRunEOFAborts(t *testing.T) {
	repo := &fakeDiscoveryRepo{replies: []string{"Still gathering details..."}}
	uc, _ := newDiscovery(repo)

	profile, err := uc.Run(context.Background(), enabledSettings(), strings.NewReader(""))

	assert.Nil(t, profile)
	assert.ErrorIs(t, err, types.ErrDiscoveryNoProfile)
}

func TestDiscoveryRunSkipsEmptyInput(t *testing.T) {
	repo := &fakeDiscoveryRepo{replies: []string{
		"Which model tier fits your budget?",
		profileReply,
	}}
	uc, _ := newDiscovery(repo)

	_, err := uc.Run(context.Background(), enabledSettings(), strings.NewReader("\n   \nstandard\n"))

	require.NoError(t, err)
	last := repo.history[1]
	assert.Equal(t, "standard", last[len(last)-1].Content)
}

func TestDiscoveryRunWithoutEndpoint(t *testing.T) {
	repo := &fakeDiscoveryRepo{}
	uc, _ := newDiscovery(repo)

	profile, err := uc.Run(context.Background(), types.DiscoverySettings{}, strings.NewReader(""))

	assert.Nil(t, profile)
	assert.ErrorIs(t, err, types.ErrDiscoveryNotEnabled)
	assert.Zero(t, repo.calls)
}

func TestDiscoveryRunPropagatesClientError(t *testing.T) {
	repo := &fakeDiscoveryRepo{err: assert.AnError}
	uc, _ := newDiscovery(repo)

	_, err := uc.Run(context.Background(), enabledSettings(), strings.NewReader(""))

	assert.ErrorIs(t, err, assert.AnError)
}
