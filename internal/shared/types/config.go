package types

import "github.com/costpilot/ai-cost-dashboard/internal/domain/entity"

// DiscoverySettings aponta para o endpoint de chat compatível com OpenAI
// usado pela sessão de descoberta.
type DiscoverySettings struct {
	Endpoint string `json:"endpoint" yaml:"endpoint" toml:"endpoint"`
	APIKey   string `json:"api_key" yaml:"api_key" toml:"api_key"`
	Model    string `json:"model" yaml:"model" toml:"model"`
}

// Config represents the application configuration that can be loaded from a file.
type Config struct {
	Profile    *entity.UsageProfile `json:"profile" yaml:"profile" toml:"profile"`
	Discovery  DiscoverySettings    `json:"discovery" yaml:"discovery" toml:"discovery"`
	ReportName string               `json:"report_name" yaml:"report_name" toml:"report_name"`
	ReportType []string             `json:"report_type" yaml:"report_type" toml:"report_type"`
	Dir        string               `json:"dir" yaml:"dir" toml:"dir"`
	Scenarios  []float64            `json:"scenarios" yaml:"scenarios" toml:"scenarios"`
	NoSave     bool                 `json:"no_save" yaml:"no_save" toml:"no_save"`
}
