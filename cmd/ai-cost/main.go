package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/costpilot/ai-cost-dashboard/internal/adapter/driven/config"
	driven "github.com/costpilot/ai-cost-dashboard/internal/adapter/driven/discovery"
	"github.com/costpilot/ai-cost-dashboard/internal/adapter/driven/export"
	"github.com/costpilot/ai-cost-dashboard/internal/adapter/driven/store"
	"github.com/costpilot/ai-cost-dashboard/internal/adapter/driving/cli"
	"github.com/costpilot/ai-cost-dashboard/internal/application/usecase"
	"github.com/costpilot/ai-cost-dashboard/internal/domain/repository"
	"github.com/costpilot/ai-cost-dashboard/internal/shared/types"
	"github.com/costpilot/ai-cost-dashboard/pkg/console"
	"github.com/costpilot/ai-cost-dashboard/pkg/version"
)

func main() {
	// Inicializa o aplicativo CLI
	app := cli.NewCLIApp(version.Version)

	// Inicializa os repositórios
	exportRepo := export.NewExportRepository()
	configRepo := config.NewConfigRepository()
	consoleImpl := console.NewConsole()

	var historyRepo repository.HistoryRepository
	historyStore, err := store.NewSQLiteHistory(historyPath())
	if err != nil {
		// sem histórico a ferramenta continua funcional
		consoleImpl.LogWarning("History storage unavailable: %s", err)
	} else {
		historyRepo = historyStore
		defer historyStore.Close()
	}

	// Inicializa os casos de uso
	estimatorUseCase := usecase.NewEstimatorUseCase(
		exportRepo,
		configRepo,
		historyRepo,
		consoleImpl,
	)
	discoveryUseCase := usecase.NewDiscoveryUseCase(
		func(settings types.DiscoverySettings) repository.DiscoveryRepository {
			return driven.NewAgentClient(settings)
		},
		consoleImpl,
	)

	// Define os casos de uso no aplicativo CLI
	app.SetEstimatorUseCase(estimatorUseCase)
	app.SetDiscoveryUseCase(discoveryUseCase)

	// Executa o aplicativo
	if err := app.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// historyPath resolve onde fica o banco de estimativas salvas.
func historyPath() string {
	if path := os.Getenv("AI_COST_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "ai-cost-history.db"
	}
	return filepath.Join(home, ".ai-cost", "history.db")
}
