package repository

import (
	"github.com/costpilot/ai-cost-dashboard/internal/domain/entity"
)

type ExportRepository interface {
	ExportToCSV(report entity.EstimateReport, filename string, outputDir string) (string, error)
	ExportToJSON(report entity.EstimateReport, filename string, outputDir string) (string, error)
	ExportToPDF(report entity.EstimateReport, filename string, outputDir string) (string, error)
}
