package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/costpilot/ai-cost-dashboard/internal/domain/entity"
	"github.com/costpilot/ai-cost-dashboard/internal/shared/types"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfigFileYAML(t *testing.T) {
	path := writeFile(t, "config.yaml", `
profile:
  transactions_per_month: 2000
  input_tokens: 1200
  output_tokens: 600
  rag_queries: 3
  reflection_enabled: true
  model_tier: premium
discovery:
  endpoint: http://localhost:8080/v1
  model: gpt-4o-mini
scenarios: [2, 5, 10]
report_type: [csv, json]
`)

	repo := NewConfigRepository()
	cfg, err := repo.LoadConfigFile(path)

	require.NoError(t, err)
	require.NotNil(t, cfg.Profile)
	assert.Equal(t, 2000, cfg.Profile.TransactionsPerMonth)
	assert.Equal(t, 3, cfg.Profile.RAGQueries)
	assert.True(t, cfg.Profile.ReflectionEnabled)
	assert.Equal(t, entity.TierPremium, cfg.Profile.ModelTier)
	assert.Equal(t, "http://localhost:8080/v1", cfg.Discovery.Endpoint)
	assert.Equal(t, []float64{2, 5, 10}, cfg.Scenarios)
	assert.Equal(t, []string{"csv", "json"}, cfg.ReportType)
}

func TestLoadConfigFileTOML(t *testing.T) {
	path := writeFile(t, "config.toml", `
report_name = "q3-estimate"

[profile]
transactions_per_month = 100
input_tokens = 500
output_tokens = 800
inter_agent_interactions = 1
model_tier = "standard"
`)

	repo := NewConfigRepository()
	cfg, err := repo.LoadConfigFile(path)

	require.NoError(t, err)
	assert.Equal(t, "q3-estimate", cfg.ReportName)
	require.NotNil(t, cfg.Profile)
	assert.Equal(t, 800, cfg.Profile.OutputTokens)
	assert.Equal(t, entity.TierStandard, cfg.Profile.ModelTier)
}

func TestLoadConfigFileJSON(t *testing.T) {
	path := writeFile(t, "config.json", `{
  "profile": {"transactions_per_month": 10, "input_tokens": 50, "output_tokens": 20, "model_tier": "budget"},
  "no_save": true
}`)

	repo := NewConfigRepository()
	cfg, err := repo.LoadConfigFile(path)

	require.NoError(t, err)
	assert.True(t, cfg.NoSave)
	assert.Equal(t, entity.TierBudget, cfg.Profile.ModelTier)
}

func TestLoadConfigFileUnsupportedExtension(t *testing.T) {
	path := writeFile(t, "config.ini", "[profile]")

	repo := NewConfigRepository()
	_, err := repo.LoadConfigFile(path)

	assert.ErrorContains(t, err, "unsupported config file format")
}

func TestLoadConfigFileMissing(t *testing.T) {
	repo := NewConfigRepository()
	_, err := repo.LoadConfigFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorContains(t, err, "error accessing config file")
}

func TestLoadConfigFileNormalizesTier(t *testing.T) {
	path := writeFile(t, "config.yaml", `
profile:
  transactions_per_month: 10
  model_tier: Premium
`)

	repo := NewConfigRepository()
	cfg, err := repo.LoadConfigFile(path)

	require.NoError(t, err)
	assert.Equal(t, entity.TierPremium, cfg.Profile.ModelTier)
}

func TestLoadConfigFileRejectsNegativeCounts(t *testing.T) {
	path := writeFile(t, "config.yaml", `
profile:
  transactions_per_month: -5
`)

	repo := NewConfigRepository()
	_, err := repo.LoadConfigFile(path)

	assert.ErrorIs(t, err, types.ErrNegativeProfileValue)
}
