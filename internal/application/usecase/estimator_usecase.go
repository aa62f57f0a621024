package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/costpilot/ai-cost-dashboard/internal/domain/cost"
	"github.com/costpilot/ai-cost-dashboard/internal/domain/entity"
	"github.com/costpilot/ai-cost-dashboard/internal/domain/repository"
	"github.com/costpilot/ai-cost-dashboard/internal/shared/types"
)

// defaultScenarios são os multiplicadores de crescimento exibidos quando o
// usuário não especifica os seus.
var defaultScenarios = []float64{2, 5, 10}

// EstimatorUseCase handles profile resolution, cost computation, display,
// export and history recording.
type EstimatorUseCase struct {
	exportRepo  repository.ExportRepository
	configRepo  repository.ConfigRepository
	historyRepo repository.HistoryRepository
	console     types.ConsoleInterface
}

// NewEstimatorUseCase creates a new estimator use case.
func NewEstimatorUseCase(
	exportRepo repository.ExportRepository,
	configRepo repository.ConfigRepository,
	historyRepo repository.HistoryRepository,
	console types.ConsoleInterface,
) *EstimatorUseCase {
	return &EstimatorUseCase{
		exportRepo:  exportRepo,
		configRepo:  configRepo,
		historyRepo: historyRepo,
		console:     console,
	}
}

// LoadConfig carrega o arquivo de configuração, se especificado.
func (uc *EstimatorUseCase) LoadConfig(path string) (*types.Config, error) {
	if path == "" {
		return nil, nil
	}
	return uc.configRepo.LoadConfigFile(path)
}

// ResolveProfile monta o perfil de uso a partir do arquivo de configuração e
// das flags de linha de comando. Flags explícitas vencem o arquivo.
func (uc *EstimatorUseCase) ResolveProfile(cfg *types.Config, args *types.CLIArgs) (entity.UsageProfile, error) {
	var profile entity.UsageProfile
	hasInput := false

	if cfg != nil && cfg.Profile != nil {
		profile = *cfg.Profile
		hasInput = !profile.IsZero()
	}

	override := func(dst *int, src *int) {
		if src != nil {
			*dst = *src
			hasInput = true
		}
	}
	override(&profile.TransactionsPerMonth, args.Transactions)
	override(&profile.InputTokens, args.InputTokens)
	override(&profile.OutputTokens, args.OutputTokens)
	override(&profile.InterAgentInteractions, args.InterAgent)
	override(&profile.RAGQueries, args.RAGQueries)
	override(&profile.DBQueries, args.DBQueries)
	override(&profile.ToolCalls, args.ToolCalls)
	override(&profile.MemoryOps, args.MemoryOps)

	if args.Reflection != nil {
		profile.ReflectionEnabled = *args.Reflection
		hasInput = true
	}

	if args.Tier != "" {
		tier, ok := entity.ParseModelTier(args.Tier)
		if !ok {
			uc.console.LogWarning("Unknown model tier '%s', using standard pricing", args.Tier)
		}
		profile.ModelTier = tier
		hasInput = true
	}

	if !hasInput {
		return entity.UsageProfile{}, types.ErrNoProfileInput
	}

	if profile.ModelTier == "" {
		profile.ModelTier = entity.TierStandard
	}

	return profile, nil
}

// RunEstimate computa a estimativa e cuida de exibição, export e histórico.
func (uc *EstimatorUseCase) RunEstimate(ctx context.Context, profile entity.UsageProfile, cfg *types.Config, args *types.CLIArgs) error {
	breakdown := cost.ComputeCost(profile)
	scenarios := cost.BuildScenarios(breakdown.TotalMonthly, uc.resolveScenarios(cfg, args))

	report := entity.EstimateReport{
		GeneratedAt: time.Now(),
		Profile:     profile,
		Breakdown:   breakdown,
		Scenarios:   scenarios,
	}

	uc.displayReport(report)

	if err := uc.exportReport(report, cfg, args); err != nil {
		return err
	}

	if uc.shouldSave(cfg, args) {
		if err := uc.saveEstimate(ctx, report); err != nil {
			// histórico é conveniência, não bloqueia o resultado
			uc.console.LogWarning("Could not save estimate to history: %s", err)
		}
	}

	return nil
}

// ShowHistory exibe as estimativas mais recentes em uma tabela.
func (uc *EstimatorUseCase) ShowHistory(ctx context.Context, limit int) error {
	if uc.historyRepo == nil {
		uc.console.LogWarning("History storage is not available")
		return nil
	}

	records, err := uc.historyRepo.ListEstimates(ctx, limit)
	if err != nil {
		return err
	}

	if len(records) == 0 {
		uc.console.LogInfo("No saved estimates yet")
		return nil
	}

	table := uc.console.CreateTable()
	table.AddColumn("When")
	table.AddColumn("Tier")
	table.AddColumn("Txns/mo")
	table.AddColumn("Input Tokens")
	table.AddColumn("Output Tokens")
	table.AddColumn("Monthly")
	table.AddColumn("Annual")

	for _, rec := range records {
		table.AddRow(
			rec.CreatedAt.Local().Format("2006-01-02 15:04"),
			string(rec.Profile.ModelTier),
			rec.Profile.TransactionsPerMonth,
			formatTokenCount(rec.InputTokens),
			formatTokenCount(rec.OutputTokens),
			fmt.Sprintf("$%.2f", rec.TotalMonthly),
			fmt.Sprintf("$%.2f", rec.TotalAnnual),
		)
	}

	uc.console.Println(table.Render())
	return nil
}

// --- auxiliares ---

func (uc *EstimatorUseCase) displayReport(report entity.EstimateReport) {
	b := report.Breakdown

	table := uc.console.CreateTable()
	table.AddColumn("Cost Component")
	table.AddColumn("Tokens / Month")
	table.AddColumn("Cost (USD)")

	terms := []struct {
		name   string
		tokens float64
	}{
		{"Base input", b.BaseInputTokens},
		{"Inter-agent overhead", b.InterAgentTokens},
		{"RAG queries", b.RAGTokens},
		{"DB queries", b.DBQueryTokens},
		{"Tool calls", b.ToolCallTokens},
		{"Memory ops", b.MemoryTokens},
		{"Reflection", b.ReflectionTokens},
	}
	for _, term := range terms {
		if term.tokens == 0 {
			continue
		}
		table.AddRow(term.name, formatTokenCount(term.tokens), "")
	}
	table.AddRow("Input total", formatTokenCount(b.InputTokens), fmt.Sprintf("$%.4f", b.InputCost))
	table.AddRow("Output total", formatTokenCount(b.OutputTokens), fmt.Sprintf("$%.4f", b.OutputCost))

	uc.console.Println(table.Render())

	uc.console.LogSuccess("Estimated cost (%s tier): $%.2f / month | $%.2f / year",
		report.Profile.ModelTier, b.TotalMonthly, b.TotalAnnual)

	scenarioCosts := make([]types.ScenarioCost, 0, len(report.Scenarios))
	for _, s := range report.Scenarios {
		scenarioCosts = append(scenarioCosts, types.ScenarioCost{Label: s.Label, Cost: s.Monthly})
	}
	uc.console.DisplayScenarioBars(scenarioCosts)
}

func (uc *EstimatorUseCase) exportReport(report entity.EstimateReport, cfg *types.Config, args *types.CLIArgs) error {
	reportName := args.ReportName
	reportTypes := args.ReportType
	dir := args.Dir

	if cfg != nil {
		if reportName == "" {
			reportName = cfg.ReportName
		}
		if len(reportTypes) == 0 {
			reportTypes = cfg.ReportType
		}
		if dir == "" {
			dir = cfg.Dir
		}
	}

	if reportName == "" {
		return nil
	}
	if len(reportTypes) == 0 {
		reportTypes = []string{"csv"}
	}

	for _, reportType := range reportTypes {
		switch reportType {
		case "csv":
			path, err := uc.exportRepo.ExportToCSV(report, reportName, dir)
			if err != nil {
				uc.console.LogError("Failed to export report to CSV: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported report to CSV: %s", path)
			}
		case "json":
			path, err := uc.exportRepo.ExportToJSON(report, reportName, dir)
			if err != nil {
				uc.console.LogError("Failed to export report to JSON: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported report to JSON: %s", path)
			}
		case "pdf":
			path, err := uc.exportRepo.ExportToPDF(report, reportName, dir)
			if err != nil {
				uc.console.LogError("Failed to export report to PDF: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported report to PDF: %s", path)
			}
		default:
			uc.console.LogWarning("Unknown report type '%s' (expected csv, json or pdf)", reportType)
		}
	}

	return nil
}

func (uc *EstimatorUseCase) resolveScenarios(cfg *types.Config, args *types.CLIArgs) []float64 {
	if len(args.Scenarios) > 0 {
		return args.Scenarios
	}
	if cfg != nil && len(cfg.Scenarios) > 0 {
		return cfg.Scenarios
	}
	return defaultScenarios
}

func (uc *EstimatorUseCase) shouldSave(cfg *types.Config, args *types.CLIArgs) bool {
	if args.NoSave {
		return false
	}
	if cfg != nil && cfg.NoSave {
		return false
	}
	return uc.historyRepo != nil
}

func (uc *EstimatorUseCase) saveEstimate(ctx context.Context, report entity.EstimateReport) error {
	return uc.historyRepo.SaveEstimate(ctx, entity.EstimateRecord{
		ID:           uuid.NewString(),
		CreatedAt:    report.GeneratedAt,
		Profile:      report.Profile,
		InputTokens:  report.Breakdown.InputTokens,
		OutputTokens: report.Breakdown.OutputTokens,
		TotalMonthly: report.Breakdown.TotalMonthly,
		TotalAnnual:  report.Breakdown.TotalAnnual,
	})
}

// formatTokenCount imprime contagens de tokens sem casas decimais supérfluas.
func formatTokenCount(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.1f", v)
}
