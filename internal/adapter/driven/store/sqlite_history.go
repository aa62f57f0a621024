package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/costpilot/ai-cost-dashboard/internal/domain/entity"
	"github.com/costpilot/ai-cost-dashboard/internal/domain/repository"
)

// schema da tabela de histórico de estimativas.
const schema = `
CREATE TABLE IF NOT EXISTS estimates (
    id            TEXT PRIMARY KEY,
    created_at    TIMESTAMP NOT NULL,
    profile       TEXT NOT NULL,
    input_tokens  REAL NOT NULL,
    output_tokens REAL NOT NULL,
    total_monthly REAL NOT NULL,
    total_annual  REAL NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_estimates_created_at ON estimates(created_at);
`

// SQLiteHistory implementa HistoryRepository sobre um arquivo SQLite local.
type SQLiteHistory struct {
	db *sql.DB
}

// NewSQLiteHistory abre (ou cria) o banco de histórico no caminho indicado.
func NewSQLiteHistory(path string) (*SQLiteHistory, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("error creating history directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("error opening history database: %w", err)
	}

	// um CLI de tiro único não precisa de pool
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("error initializing history schema: %w", err)
	}

	return &SQLiteHistory{db: db}, nil
}

// SaveEstimate grava uma estimativa calculada.
func (s *SQLiteHistory) SaveEstimate(ctx context.Context, record entity.EstimateRecord) error {
	profileJSON, err := json.Marshal(record.Profile)
	if err != nil {
		return fmt.Errorf("error encoding profile: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO estimates (id, created_at, profile, input_tokens, output_tokens, total_monthly, total_annual)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		record.ID,
		record.CreatedAt.UTC().Format(time.RFC3339Nano),
		string(profileJSON),
		record.InputTokens,
		record.OutputTokens,
		record.TotalMonthly,
		record.TotalAnnual,
	)
	if err != nil {
		return fmt.Errorf("error saving estimate: %w", err)
	}
	return nil
}

// ListEstimates retorna as estimativas mais recentes, limitadas a limit.
func (s *SQLiteHistory) ListEstimates(ctx context.Context, limit int) ([]entity.EstimateRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, created_at, profile, input_tokens, output_tokens, total_monthly, total_annual
		 FROM estimates ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("error querying estimates: %w", err)
	}
	defer rows.Close()

	var records []entity.EstimateRecord
	for rows.Next() {
		var rec entity.EstimateRecord
		var createdAt, profileJSON string

		if err := rows.Scan(&rec.ID, &createdAt, &profileJSON, &rec.InputTokens, &rec.OutputTokens, &rec.TotalMonthly, &rec.TotalAnnual); err != nil {
			return nil, fmt.Errorf("error scanning estimate row: %w", err)
		}

		if ts, err := time.Parse(time.RFC3339Nano, createdAt); err == nil {
			rec.CreatedAt = ts
		}
		if err := json.Unmarshal([]byte(profileJSON), &rec.Profile); err != nil {
			return nil, fmt.Errorf("error decoding stored profile: %w", err)
		}

		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating estimates: %w", err)
	}

	return records, nil
}

// Close fecha a conexão com o banco.
func (s *SQLiteHistory) Close() error {
	return s.db.Close()
}

var _ repository.HistoryRepository = (*SQLiteHistory)(nil)
