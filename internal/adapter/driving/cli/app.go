package cli

import (
	"context"
	"os"
	"path/filepath"

	"github.com/costpilot/ai-cost-dashboard/pkg/version"

	discoveryclient "github.com/costpilot/ai-cost-dashboard/internal/adapter/driven/discovery"
	"github.com/costpilot/ai-cost-dashboard/internal/application/usecase"
	"github.com/costpilot/ai-cost-dashboard/internal/domain/entity"
	"github.com/costpilot/ai-cost-dashboard/internal/shared/types"
	"github.com/spf13/cobra"
)

// CLIApp represents the command-line interface application.
type CLIApp struct {
	rootCmd          *cobra.Command
	estimatorUseCase *usecase.EstimatorUseCase
	discoveryUseCase *usecase.DiscoveryUseCase
	version          string
}

// NewCLIApp cria uma nova aplicação CLI.
func NewCLIApp(versionStr string) *CLIApp {
	app := &CLIApp{
		version: versionStr,
	}

	// Obtem a versão formatada
	formattedVersion := version.FormatVersion()

	rootCmd := &cobra.Command{
		Use:     "ai-cost",
		Short:   "AI Cost Dashboard CLI",
		Version: formattedVersion,
		RunE:    app.runCommand,
	}

	// Personaliza a template para incluir mais informações de versão
	rootCmd.SetVersionTemplate(`{{printf "AI Cost Dashboard version: %s\n" .Version}}`)

	// Adiciona flags de linha de comando
	rootCmd.PersistentFlags().StringP("config-file", "C", "", "Path to a TOML, YAML, or JSON configuration file")
	rootCmd.PersistentFlags().IntP("transactions", "t", 0, "Number of AI transactions per month")
	rootCmd.PersistentFlags().IntP("input-tokens", "i", 0, "Average input tokens per transaction")
	rootCmd.PersistentFlags().IntP("output-tokens", "o", 0, "Average output tokens per transaction")
	rootCmd.PersistentFlags().Int("inter-agent", 0, "Inter-agent interactions per transaction")
	rootCmd.PersistentFlags().Int("rag-queries", 0, "RAG retrieval queries per transaction")
	rootCmd.PersistentFlags().Int("db-queries", 0, "Database queries per transaction")
	rootCmd.PersistentFlags().Int("tool-calls", 0, "External tool calls per transaction")
	rootCmd.PersistentFlags().Int("memory-ops", 0, "Memory read/write operations per transaction")
	rootCmd.PersistentFlags().Bool("reflection", false, "Enable self-reflection overhead per transaction")
	rootCmd.PersistentFlags().StringP("tier", "m", "", "Model pricing tier: budget, standard or premium")
	rootCmd.PersistentFlags().Float64Slice("scenarios", nil, "Growth multipliers for scenario projections, e.g., --scenarios 2,5,10")
	rootCmd.PersistentFlags().Bool("discover", false, "Start a conversational discovery session to build the usage profile")
	rootCmd.PersistentFlags().Int("history", 0, "Show the N most recent saved estimates and exit")
	rootCmd.PersistentFlags().StringP("report-name", "n", "", "Specify the base name for the report file (without extension)")
	rootCmd.PersistentFlags().StringSliceP("report-type", "y", nil, "Specify report types: csv, json, pdf")
	rootCmd.PersistentFlags().StringP("dir", "d", "", "Directory to save the report files (default: current directory)")
	rootCmd.PersistentFlags().Bool("no-save", false, "Do not record this estimate in the local history")

	app.rootCmd = rootCmd
	return app
}

// Execute runs the CLI application.
func (app *CLIApp) Execute() error {
	return app.rootCmd.Execute()
}

// parseArgs parses command-line arguments into a CLIArgs struct.
// Flags de perfil só viram ponteiros quando informadas explicitamente,
// para não sobrescrever valores vindos do arquivo de configuração.
func (app *CLIApp) parseArgs() (*types.CLIArgs, error) {
	flags := app.rootCmd.Flags()

	intFlag := func(name string) *int {
		if !flags.Changed(name) {
			return nil
		}
		v, _ := flags.GetInt(name)
		return &v
	}

	configFile, _ := flags.GetString("config-file")
	tier, _ := flags.GetString("tier")
	scenarios, _ := flags.GetFloat64Slice("scenarios")
	discover, _ := flags.GetBool("discover")
	reportName, _ := flags.GetString("report-name")
	reportType, _ := flags.GetStringSlice("report-type")
	dir, _ := flags.GetString("dir")
	noSave, _ := flags.GetBool("no-save")

	var reflection *bool
	if flags.Changed("reflection") {
		v, _ := flags.GetBool("reflection")
		reflection = &v
	}

	history := 0
	if flags.Changed("history") {
		history, _ = flags.GetInt("history")
		if history <= 0 {
			history = 10
		}
	}

	if dir != "" {
		absDir, err := filepath.Abs(dir)
		if err != nil {
			return nil, err
		}
		dir = absDir
	}

	args := &types.CLIArgs{
		ConfigFile:   configFile,
		Transactions: intFlag("transactions"),
		InputTokens:  intFlag("input-tokens"),
		OutputTokens: intFlag("output-tokens"),
		InterAgent:   intFlag("inter-agent"),
		RAGQueries:   intFlag("rag-queries"),
		DBQueries:    intFlag("db-queries"),
		ToolCalls:    intFlag("tool-calls"),
		MemoryOps:    intFlag("memory-ops"),
		Reflection:   reflection,
		Tier:         tier,
		Discover:     discover,
		History:      history,
		Scenarios:    scenarios,
		ReportName:   reportName,
		ReportType:   reportType,
		Dir:          dir,
		NoSave:       noSave,
	}

	return args, nil
}

// runCommand é o ponto de entrada principal para o comando CLI.
func (app *CLIApp) runCommand(cmd *cobra.Command, args []string) error {
	// Exibe o banner de boas-vindas
	displayWelcomeBanner(app.version)

	// Verifica a versão mais recente disponível
	go version.CheckLatestVersion(app.version)

	// Analisa os argumentos da linha de comando
	cliArgs, err := app.parseArgs()
	if err != nil {
		return err
	}

	ctx := context.Background()

	if cliArgs.History > 0 {
		return app.estimatorUseCase.ShowHistory(ctx, cliArgs.History)
	}

	// Carrega o arquivo de configuração, se especificado
	cfg, err := app.estimatorUseCase.LoadConfig(cliArgs.ConfigFile)
	if err != nil {
		return err
	}

	profile, err := app.resolveProfile(ctx, cfg, cliArgs)
	if err != nil {
		return err
	}

	return app.estimatorUseCase.RunEstimate(ctx, profile, cfg, cliArgs)
}

// resolveProfile decide entre a sessão de descoberta e o perfil estático
// vindo de flags e configuração.
func (app *CLIApp) resolveProfile(ctx context.Context, cfg *types.Config, cliArgs *types.CLIArgs) (entity.UsageProfile, error) {
	if cliArgs.Discover {
		settings := discoveryclient.ResolveSettings(cfg)
		profile, err := app.discoveryUseCase.Run(ctx, settings, os.Stdin)
		if err != nil {
			return entity.UsageProfile{}, err
		}
		return *profile, nil
	}
	return app.estimatorUseCase.ResolveProfile(cfg, cliArgs)
}

// SetEstimatorUseCase sets the estimator use case for the CLI app.
func (app *CLIApp) SetEstimatorUseCase(useCase *usecase.EstimatorUseCase) {
	app.estimatorUseCase = useCase
}

// SetDiscoveryUseCase sets the discovery use case for the CLI app.
func (app *CLIApp) SetDiscoveryUseCase(useCase *usecase.DiscoveryUseCase) {
	app.discoveryUseCase = useCase
}
