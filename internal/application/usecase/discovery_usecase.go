package usecase

import (
	"bufio"
	"context"
	"io"
	"strings"

	"github.com/costpilot/ai-cost-dashboard/internal/domain/discovery"
	"github.com/costpilot/ai-cost-dashboard/internal/domain/entity"
	"github.com/costpilot/ai-cost-dashboard/internal/domain/repository"
	"github.com/costpilot/ai-cost-dashboard/internal/shared/types"
)

// maxDiscoveryTurns limita a sessão para não conversar indefinidamente com
// um agente que nunca emite o perfil.
const maxDiscoveryTurns = 40

// kickoffMessage abre a conversa em nome do usuário.
const kickoffMessage = "Hi! I want to estimate the monthly cost of adopting an AI workflow."

// DiscoveryUseCase conduz a sessão conversacional de levantamento de
// requisitos e devolve o perfil de uso extraído da conversa.
type DiscoveryUseCase struct {
	newClient func(types.DiscoverySettings) repository.DiscoveryRepository
	console   types.ConsoleInterface
}

// NewDiscoveryUseCase creates a new discovery use case. newClient builds the
// repository for the endpoint resolved at run time.
func NewDiscoveryUseCase(
	newClient func(types.DiscoverySettings) repository.DiscoveryRepository,
	console types.ConsoleInterface,
) *DiscoveryUseCase {
	return &DiscoveryUseCase{
		newClient: newClient,
		console:   console,
	}
}

// Run executa a sessão de descoberta lendo turnos do usuário em input.
// Termina quando uma resposta do agente contém um perfil parseável, quando o
// usuário digita "exit"/"quit", ou quando input chega ao fim.
func (uc *DiscoveryUseCase) Run(ctx context.Context, settings types.DiscoverySettings, input io.Reader) (*entity.UsageProfile, error) {
	if settings.Endpoint == "" {
		return nil, types.ErrDiscoveryNotEnabled
	}

	client := uc.newClient(settings)
	scanner := bufio.NewScanner(input)

	uc.console.LogInfo("Starting discovery session (type 'exit' to abort)")

	history := []entity.ChatMessage{
		{Role: "user", Content: kickoffMessage},
	}

	for turn := 0; turn < maxDiscoveryTurns; turn++ {
		status := uc.console.Status("Consulting the discovery agent...")
		reply, err := client.SendMessage(ctx, history)
		status.Stop()
		if err != nil {
			return nil, err
		}

		uc.console.Println()
		uc.console.Printf("Agent: %s\n\n", strings.TrimSpace(reply))
		history = append(history, entity.ChatMessage{Role: "assistant", Content: reply})

		if profile, ok := discovery.ExtractProfile(reply); ok {
			uc.console.LogSuccess("Usage profile captured from the conversation")
			return profile, nil
		}

		line, ok := uc.readLine(scanner)
		if !ok || line == "exit" || line == "quit" {
			break
		}

		history = append(history, entity.ChatMessage{Role: "user", Content: line})
	}

	return nil, types.ErrDiscoveryNoProfile
}

// readLine lê o próximo turno não-vazio do usuário.
func (uc *DiscoveryUseCase) readLine(scanner *bufio.Scanner) (string, bool) {
	for {
		uc.console.Print("You: ")
		if !scanner.Scan() {
			return "", false
		}
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			return line, true
		}
	}
}
