package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/diillson/alicloud-ops/internal/domain/entity"
	"github.com/diillson/alicloud-ops/internal/domain/repository"
)

// ExportRepositoryImpl implementa o ExportRepository.
type ExportRepositoryImpl struct {
	now func() time.Time
}

// NewExportRepository cria uma nova implementação do ExportRepository.
func NewExportRepository() repository.ExportRepository {
	return &ExportRepositoryImpl{now: time.Now}
}

// --- Resumo de consumo por produto ---

func (r *ExportRepositoryImpl) ExportBillSummaryToCSV(report entity.ProductReport, filename, outputDir string) (string, error) {
	rows := [][]string{{"Billing Cycle", "Product Code", "Items", "Pretax Amount"}}
	for _, p := range report.Products {
		rows = append(rows, []string{
			report.Cycle.String(),
			p.ProductCode,
			fmt.Sprintf("%d", p.ItemCount),
			fmt.Sprintf("%.2f", p.TotalAmount),
		})
	}
	rows = append(rows, []string{report.Cycle.String(), "TOTAL", fmt.Sprintf("%d", report.ItemCount), fmt.Sprintf("%.2f", report.GrandTotal)})

	return r.writeCSV(rows, filename, outputDir)
}

func (r *ExportRepositoryImpl) ExportBillSummaryToJSON(report entity.ProductReport, filename, outputDir string) (string, error) {
	return r.writeJSON(report, filename, outputDir)
}

func (r *ExportRepositoryImpl) ExportBillSummaryToPDF(report entity.ProductReport, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "pdf", r.now())
	if err != nil {
		return "", err
	}

	doc := newReportPDF("Bill Summary by Product", report.Cycle)

	widths := []float64{100, 30, 60}
	doc.tableHeader(widths, "Product Code", "Items", "Pretax Amount")
	for _, p := range report.Products {
		doc.tableRow(widths, false, p.ProductCode, fmt.Sprintf("%d", p.ItemCount), fmt.Sprintf("%.2f", p.TotalAmount))
	}
	doc.tableRow(widths, true, "TOTAL", fmt.Sprintf("%d", report.ItemCount), fmt.Sprintf("%.2f", report.GrandTotal))

	doc.footer("Bill Summary", r.now())
	if err := doc.pdf.OutputFileAndClose(outputFilename); err != nil {
		return "", fmt.Errorf("error writing bill summary PDF file: %w", err)
	}
	return filepath.Abs(outputFilename)
}

// --- Tráfego de saída ---

func (r *ExportRepositoryImpl) ExportTrafficToCSV(summary entity.TrafficSummary, filename, outputDir string) (string, error) {
	rows := [][]string{
		{"Billing Cycle", "Outbound Bytes", "Outbound GB", "Matched Items", "Fetched Items"},
		{
			summary.Cycle.String(),
			fmt.Sprintf("%.0f", summary.TotalBytes),
			fmt.Sprintf("%.4f", summary.GB()),
			fmt.Sprintf("%d", summary.MatchedItems),
			fmt.Sprintf("%d", summary.FetchedItems),
		},
	}
	return r.writeCSV(rows, filename, outputDir)
}

// trafficJSON adiciona o total em GB ao documento exportado.
type trafficJSON struct {
	entity.TrafficSummary
	TotalGB float64 `json:"total_gb"`
}

func (r *ExportRepositoryImpl) ExportTrafficToJSON(summary entity.TrafficSummary, filename, outputDir string) (string, error) {
	return r.writeJSON(trafficJSON{TrafficSummary: summary, TotalGB: summary.GB()}, filename, outputDir)
}

func (r *ExportRepositoryImpl) ExportTrafficToPDF(summary entity.TrafficSummary, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "pdf", r.now())
	if err != nil {
		return "", err
	}

	doc := newReportPDF("Outbound Traffic", summary.Cycle)

	widths := []float64{100, 90}
	doc.tableHeader(widths, "Metric", "Value")
	doc.tableRow(widths, false, "Outbound traffic (GB)", fmt.Sprintf("%.4f", summary.GB()))
	doc.tableRow(widths, false, "Outbound traffic (bytes)", fmt.Sprintf("%.0f", summary.TotalBytes))
	doc.tableRow(widths, false, "Traffic line items", fmt.Sprintf("%d", summary.MatchedItems))
	doc.tableRow(widths, false, "Line items fetched", fmt.Sprintf("%d", summary.FetchedItems))

	doc.footer("Outbound Traffic", r.now())
	if err := doc.pdf.OutputFileAndClose(outputFilename); err != nil {
		return "", fmt.Errorf("error writing traffic PDF file: %w", err)
	}
	return filepath.Abs(outputFilename)
}

// --- Helpers ---

func (r *ExportRepositoryImpl) writeCSV(rows [][]string, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "csv", r.now())
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.WriteAll(rows); err != nil {
		return "", fmt.Errorf("error writing CSV file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

func (r *ExportRepositoryImpl) writeJSON(data any, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "json", r.now())
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
	if err := encoder.Encode(data); err != nil {
		return "", fmt.Errorf("error encoding JSON data: %w", err)
	}

	return filepath.Abs(outputFilename)
}

func generateFilename(base, dir, ext string, now time.Time) (string, error) {
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
	timestamp := now.Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.%s", base, timestamp, ext)
	return filepath.Join(dir, filename), nil
}
