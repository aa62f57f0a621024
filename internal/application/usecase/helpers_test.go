package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/costpilot/ai-cost-dashboard/internal/domain/entity"
	"github.com/costpilot/ai-cost-dashboard/internal/shared/types"
)

// fakeConsole captura tudo que seria impresso, para asserções.
type fakeConsole struct {
	lines    []string
	warnings []string
	errors   []string
}

func (c *fakeConsole) record(format string, a ...interface{}) {
	c.lines = append(c.lines, fmt.Sprintf(format, a...))
}

func (c *fakeConsole) Print(a ...interface{})                  { c.lines = append(c.lines, fmt.Sprint(a...)) }
func (c *fakeConsole) Printf(format string, a ...interface{})  { c.record(format, a...) }
func (c *fakeConsole) Println(a ...interface{})                { c.lines = append(c.lines, fmt.Sprintln(a...)) }
func (c *fakeConsole) LogInfo(format string, a ...interface{}) { c.record(format, a...) }
func (c *fakeConsole) LogWarning(format string, a ...interface{}) {
	c.warnings = append(c.warnings, fmt.Sprintf(format, a...))
}
func (c *fakeConsole) LogError(format string, a ...interface{}) {
	c.errors = append(c.errors, fmt.Sprintf(format, a...))
}
func (c *fakeConsole) LogSuccess(format string, a ...interface{}) { c.record(format, a...) }

func (c *fakeConsole) Status(message string) types.StatusHandle { return &fakeStatus{} }

func (c *fakeConsole) CreateTable() types.TableInterface { return &fakeTable{console: c} }

func (c *fakeConsole) DisplayScenarioBars(scenarios []types.ScenarioCost) {
	for _, s := range scenarios {
		c.record("scenario %s $%.2f", s.Label, s.Cost)
	}
}

func (c *fakeConsole) output() string { return strings.Join(c.lines, "\n") }

type fakeStatus struct{}

func (s *fakeStatus) Update(string) {}
func (s *fakeStatus) Stop()         {}

type fakeTable struct {
	console *fakeConsole
	rows    [][]string
}

func (t *fakeTable) AddColumn(name string, options ...interface{}) {}
func (t *fakeTable) AddRow(cells ...interface{}) {
	row := make([]string, len(cells))
	for i, c := range cells {
		row[i] = fmt.Sprint(c)
	}
	t.rows = append(t.rows, row)
}
func (t *fakeTable) Render() string {
	var b strings.Builder
	for _, row := range t.rows {
		b.WriteString(strings.Join(row, " | "))
		b.WriteString("\n")
	}
	return b.String()
}

// fakeExportRepo registra as chamadas de exportação.
type fakeExportRepo struct {
	csvCalls  int
	jsonCalls int
	pdfCalls  int
	lastName  string
	err       error
}

func (r *fakeExportRepo) ExportToCSV(report entity.EstimateReport, filename, outputDir string) (string, error) {
	r.csvCalls++
	r.lastName = filename
	return "/tmp/" + filename + ".csv", r.err
}

func (r *fakeExportRepo) ExportToJSON(report entity.EstimateReport, filename, outputDir string) (string, error) {
	r.jsonCalls++
	r.lastName = filename
	return "/tmp/" + filename + ".json", r.err
}

func (r *fakeExportRepo) ExportToPDF(report entity.EstimateReport, filename, outputDir string) (string, error) {
	r.pdfCalls++
	r.lastName = filename
	return "/tmp/" + filename + ".pdf", r.err
}

// fakeHistoryRepo guarda estimativas em memória.
type fakeHistoryRepo struct {
	saved   []entity.EstimateRecord
	listErr error
	saveErr error
}

func (r *fakeHistoryRepo) SaveEstimate(ctx context.Context, record entity.EstimateRecord) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.saved = append(r.saved, record)
	return nil
}

func (r *fakeHistoryRepo) ListEstimates(ctx context.Context, limit int) ([]entity.EstimateRecord, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	if limit > 0 && len(r.saved) > limit {
		return r.saved[:limit], nil
	}
	return r.saved, nil
}

func (r *fakeHistoryRepo) Close() error { return nil }

// fakeConfigRepo devolve uma configuração fixa.
type fakeConfigRepo struct {
	cfg *types.Config
	err error
}

func (r *fakeConfigRepo) LoadConfigFile(filePath string) (*types.Config, error) {
	return r.cfg, r.err
}

// fakeDiscoveryRepo devolve respostas roteirizadas, uma por chamada.
type fakeDiscoveryRepo struct {
	replies []string
	calls   int
	history [][]entity.ChatMessage
	err     error
}

func (r *fakeDiscoveryRepo) SendMessage(ctx context.Context, history []entity.ChatMessage) (string, error) {
	if r.err != nil {
		return "", r.err
	}
	snapshot := make([]entity.ChatMessage, len(history))
	copy(snapshot, history)
	r.history = append(r.history, snapshot)

	reply := r.replies[len(r.replies)-1]
	if r.calls < len(r.replies) {
		reply = r.replies[r.calls]
	}
	r.calls++
	return reply, nil
}
