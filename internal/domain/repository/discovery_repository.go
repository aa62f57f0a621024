package repository

import (
	"context"

	"github.com/costpilot/ai-cost-dashboard/internal/domain/entity"
)

// DiscoveryRepository fala com o agente remoto de levantamento de requisitos.
type DiscoveryRepository interface {
	// SendMessage envia o histórico da conversa e retorna a resposta em
	// texto livre do assistente.
	SendMessage(ctx context.Context, history []entity.ChatMessage) (string, error)
}
