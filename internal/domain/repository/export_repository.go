package repository

import (
	"github.com/diillson/alicloud-ops/internal/domain/entity"
)

type ExportRepository interface {
	// Bill summary
	ExportBillSummaryToCSV(report entity.ProductReport, filename, outputDir string) (string, error)
	ExportBillSummaryToJSON(report entity.ProductReport, filename, outputDir string) (string, error)
	ExportBillSummaryToPDF(report entity.ProductReport, filename, outputDir string) (string, error)

	// Outbound traffic
	ExportTrafficToCSV(summary entity.TrafficSummary, filename, outputDir string) (string, error)
	ExportTrafficToJSON(summary entity.TrafficSummary, filename, outputDir string) (string, error)
	ExportTrafficToPDF(summary entity.TrafficSummary, filename, outputDir string) (string, error)
}
