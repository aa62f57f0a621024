package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/costpilot/ai-cost-dashboard/internal/domain/entity"
	"github.com/costpilot/ai-cost-dashboard/internal/domain/repository"
)

// ExportRepositoryImpl implementa o ExportRepository.
type ExportRepositoryImpl struct{}

// NewExportRepository cria uma nova implementação do ExportRepository.
func NewExportRepository() repository.ExportRepository {
	return &ExportRepositoryImpl{}
}

func (r *ExportRepositoryImpl) ExportToCSV(report entity.EstimateReport, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "csv")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	headers := []string{"Component", "Tokens / Month", "Cost (USD)"}
	if err := writer.Write(headers); err != nil {
		return "", fmt.Errorf("error writing CSV header: %w", err)
	}

	b := report.Breakdown
	rows := [][]string{
		{"Base input", formatTokens(b.BaseInputTokens), ""},
		{"Inter-agent overhead", formatTokens(b.InterAgentTokens), ""},
		{"RAG queries", formatTokens(b.RAGTokens), ""},
		{"DB queries", formatTokens(b.DBQueryTokens), ""},
		{"Tool calls", formatTokens(b.ToolCallTokens), ""},
		{"Memory ops", formatTokens(b.MemoryTokens), ""},
		{"Reflection", formatTokens(b.ReflectionTokens), ""},
		{"Input total", formatTokens(b.InputTokens), fmt.Sprintf("$%.4f", b.InputCost)},
		{"Output total", formatTokens(b.OutputTokens), fmt.Sprintf("$%.4f", b.OutputCost)},
		{"Total monthly", "", fmt.Sprintf("$%.4f", b.TotalMonthly)},
		{"Total annual", "", fmt.Sprintf("$%.4f", b.TotalAnnual)},
	}
	for _, s := range report.Scenarios {
		rows = append(rows, []string{"Scenario " + s.Label, "", fmt.Sprintf("$%.4f", s.Monthly)})
	}

	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return "", fmt.Errorf("error writing CSV record: %w", err)
		}
	}

	return filepath.Abs(outputFilename)
}

func (r *ExportRepositoryImpl) ExportToJSON(report entity.EstimateReport, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "json")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating JSON file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(report); err != nil {
		return "", fmt.Errorf("error encoding JSON data: %w", err)
	}

	return filepath.Abs(outputFilename)
}

func (r *ExportRepositoryImpl) ExportToPDF(report entity.EstimateReport, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "pdf")
	if err != nil {
		return "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	headerColor := [3]int{40, 40, 40}
	headerTextColor := [3]int{255, 255, 255}
	sectionTitleColor := [3]int{0, 0, 0}
	bodyTextColor := [3]int{50, 50, 50}
	lineColor := [3]int{200, 200, 200}

	drawSection := func(title string, content string) {
		if strings.TrimSpace(content) == "" {
			return
		}
		pdf.SetFont("Arial", "B", 12)
		pdf.SetTextColor(sectionTitleColor[0], sectionTitleColor[1], sectionTitleColor[2])
		pdf.Cell(0, 8, tr(title))
		pdf.Ln(7)

		pdf.SetDrawColor(lineColor[0], lineColor[1], lineColor[2])
		pdf.Line(pdf.GetX(), pdf.GetY(), pdf.GetX()+190, pdf.GetY())
		pdf.Ln(4)

		pdf.SetFont("Arial", "", 10)
		pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
		pdf.MultiCell(190, 5, tr(content), "", "L", false)
		pdf.Ln(8)
	}

	pdf.AddPage()

	// Cabeçalho
	pdf.SetFillColor(headerColor[0], headerColor[1], headerColor[2])
	pdf.SetTextColor(headerTextColor[0], headerTextColor[1], headerTextColor[2])
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 12, tr("  AI Workflow Cost Estimate"), "", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.SetFillColor(240, 240, 240)
	pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
	pdf.CellFormat(0, 8, tr(fmt.Sprintf("  Model tier: %s  |  Generated: %s", report.Profile.ModelTier, report.GeneratedAt.Format("2006-01-02 15:04"))), "", 1, "L", true, 0, "")
	pdf.Ln(10)

	// Perfil de uso
	p := report.Profile
	profileStr := fmt.Sprintf(
		"Transactions/month: %d\nInput tokens/transaction: %d\nOutput tokens/transaction: %d\nInter-agent interactions: %d\nRAG queries: %d\nDB queries: %d\nTool calls: %d\nMemory ops: %d\nReflection enabled: %t",
		p.TransactionsPerMonth, p.InputTokens, p.OutputTokens, p.InterAgentInteractions,
		p.RAGQueries, p.DBQueries, p.ToolCalls, p.MemoryOps, p.ReflectionEnabled,
	)
	drawSection("Usage Profile", profileStr)

	// Decomposição de tokens
	b := report.Breakdown
	tokenStr := fmt.Sprintf(
		"Base input: %s\nInter-agent overhead: %s\nRAG queries: %s\nDB queries: %s\nTool calls: %s\nMemory ops: %s\nReflection: %s\n\nInput total: %s\nOutput total: %s",
		formatTokens(b.BaseInputTokens), formatTokens(b.InterAgentTokens), formatTokens(b.RAGTokens),
		formatTokens(b.DBQueryTokens), formatTokens(b.ToolCallTokens), formatTokens(b.MemoryTokens),
		formatTokens(b.ReflectionTokens), formatTokens(b.InputTokens), formatTokens(b.OutputTokens),
	)
	drawSection("Monthly Token Breakdown", tokenStr)

	// Resumo de custo
	pdf.SetFont("Arial", "B", 12)
	pdf.SetTextColor(sectionTitleColor[0], sectionTitleColor[1], sectionTitleColor[2])
	pdf.Cell(0, 8, "Cost Summary")
	pdf.Ln(7)
	pdf.SetDrawColor(lineColor[0], lineColor[1], lineColor[2])
	pdf.Line(pdf.GetX(), pdf.GetY(), pdf.GetX()+190, pdf.GetY())
	pdf.Ln(4)

	pdf.SetFont("Arial", "", 10)
	pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
	pdf.CellFormat(95, 7, tr(fmt.Sprintf("Input cost: $%.4f", b.InputCost)), "", 0, "L", false, 0, "")
	pdf.CellFormat(95, 7, tr(fmt.Sprintf("Output cost: $%.4f", b.OutputCost)), "", 1, "L", false, 0, "")

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(95, 12, tr(fmt.Sprintf("$%.2f / month", b.TotalMonthly)), "", 0, "L", false, 0, "")
	pdf.CellFormat(95, 12, tr(fmt.Sprintf("$%.2f / year", b.TotalAnnual)), "", 1, "L", false, 0, "")
	pdf.Ln(10)

	// Cenários de crescimento
	if len(report.Scenarios) > 0 {
		var sb strings.Builder
		for _, s := range report.Scenarios {
			sb.WriteString(fmt.Sprintf("%s: $%.2f / month\n", s.Label, s.Monthly))
		}
		drawSection("Growth Projections", sb.String())
	}

	// Rodapé
	pdf.SetY(-15)
	pdf.SetFont("Arial", "I", 8)
	pdf.SetTextColor(128, 128, 128)
	footerText := fmt.Sprintf("Generated by AI Cost Dashboard | %s", time.Now().Format("2006-01-02"))
	pdf.CellFormat(0, 10, tr(footerText), "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 10, tr("Page 1"), "", 0, "R", false, 0, "")

	if err := pdf.OutputFileAndClose(outputFilename); err != nil {
		return "", fmt.Errorf("error writing PDF file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// --- Funções Auxiliares ---

// generateFilename cria um nome de arquivo único com timestamp e garante que o diretório exista.
func generateFilename(base, dir, ext string) (string, error) {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("could not get current working directory: %w", err)
		}
		dir = cwd
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("error creating output directory '%s': %w", dir, err)
	}
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.%s", base, timestamp, ext)
	return filepath.Join(dir, filename), nil
}

// formatTokens imprime contagens de tokens sem casas decimais supérfluas.
func formatTokens(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.1f", v)
}
