package entity

import "time"

// EstimateRecord is a persisted snapshot of a computed estimate.
type EstimateRecord struct {
	ID           string       `json:"id"`
	CreatedAt    time.Time    `json:"created_at"`
	Profile      UsageProfile `json:"profile"`
	InputTokens  float64      `json:"input_tokens"`
	OutputTokens float64      `json:"output_tokens"`
	TotalMonthly float64      `json:"total_monthly"`
	TotalAnnual  float64      `json:"total_annual"`
}

// ChatMessage é um turno da sessão de descoberta conversacional.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
