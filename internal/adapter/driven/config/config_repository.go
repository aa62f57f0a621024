package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"

	"github.com/costpilot/ai-cost-dashboard/internal/domain/entity"
	"github.com/costpilot/ai-cost-dashboard/internal/domain/repository"
	"github.com/costpilot/ai-cost-dashboard/internal/shared/types"
)

// ConfigRepositoryImpl implementa o ConfigRepository.
type ConfigRepositoryImpl struct{}

// NewConfigRepository cria uma nova implementação do ConfigRepository.
func NewConfigRepository() repository.ConfigRepository {
	return &ConfigRepositoryImpl{}
}

// LoadConfigFile carrega um arquivo de configuração TOML, YAML ou JSON.
func (r *ConfigRepositoryImpl) LoadConfigFile(filePath string) (*types.Config, error) {
	fileExtension := filepath.Ext(filePath)
	fileExtension = strings.ToLower(fileExtension)

	// Verifica se o arquivo existe
	fileInfo, err := os.Stat(filePath)
	if err != nil {
		return nil, fmt.Errorf("error accessing config file: %w", err)
	}

	if fileInfo.IsDir() {
		return nil, fmt.Errorf("%s is a directory, not a file", filePath)
	}

	fileData, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var config types.Config

	switch fileExtension {
	case ".toml":
		if err := toml.Unmarshal(fileData, &config); err != nil {
			return nil, fmt.Errorf("error parsing TOML file: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(fileData, &config); err != nil {
			return nil, fmt.Errorf("error parsing YAML file: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(fileData, &config); err != nil {
			return nil, fmt.Errorf("error parsing JSON file: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config file format: %s", fileExtension)
	}

	if config.Profile != nil {
		if err := validateProfile(config.Profile); err != nil {
			return nil, err
		}
	}

	return &config, nil
}

// validateProfile rejeita valores negativos cedo, como cortesia: o modelo de
// custo em si não valida entradas (violação de contrato do chamador).
func validateProfile(p *entity.UsageProfile) error {
	counts := []int{
		p.TransactionsPerMonth,
		p.InputTokens,
		p.OutputTokens,
		p.InterAgentInteractions,
		p.RAGQueries,
		p.DBQueries,
		p.ToolCalls,
		p.MemoryOps,
	}
	for _, v := range counts {
		if v < 0 {
			return types.ErrNegativeProfileValue
		}
	}

	// normaliza capitalização e valores desconhecidos de tier
	if p.ModelTier != "" && !p.ModelTier.Valid() {
		tier, _ := entity.ParseModelTier(string(p.ModelTier))
		p.ModelTier = tier
	}

	return nil
}
