package export

import (
	"fmt"
	"time"

	"github.com/diillson/alicloud-ops/internal/domain/entity"
	"github.com/jung-kurt/gofpdf"
)

var (
	headerColor     = [3]int{255, 106, 0}
	headerTextColor = [3]int{255, 255, 255}
	bodyTextColor   = [3]int{50, 50, 50}
	stripeColor     = [3]int{240, 240, 240}
)

// reportPDF é uma página A4 com cabeçalho e uma tabela simples.
type reportPDF struct {
	pdf *gofpdf.Fpdf
	tr  func(string) string
}

func newReportPDF(title string, cycle entity.BillingCycle) *reportPDF {
	pdf := gofpdf.New("P", "mm", "A4", "")
	doc := &reportPDF{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}

	pdf.AddPage()
	pdf.SetFillColor(headerColor[0], headerColor[1], headerColor[2])
	pdf.SetTextColor(headerTextColor[0], headerTextColor[1], headerTextColor[2])
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 12, doc.tr("  "+title), "", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.SetFillColor(stripeColor[0], stripeColor[1], stripeColor[2])
	pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
	pdf.CellFormat(0, 8, doc.tr(fmt.Sprintf("  Billing cycle: %s", cycle)), "", 1, "L", true, 0, "")
	pdf.Ln(8)

	return doc
}

func (d *reportPDF) tableHeader(widths []float64, cols ...string) {
	d.pdf.SetFont("Arial", "B", 10)
	d.pdf.SetFillColor(headerColor[0], headerColor[1], headerColor[2])
	d.pdf.SetTextColor(headerTextColor[0], headerTextColor[1], headerTextColor[2])
	for i, c := range cols {
		d.pdf.CellFormat(widths[i], 8, d.tr(c), "1", 0, align(i), true, 0, "")
	}
	d.pdf.Ln(-1)
}

func (d *reportPDF) tableRow(widths []float64, bold bool, cols ...string) {
	style := ""
	if bold {
		style = "B"
	}
	d.pdf.SetFont("Arial", style, 10)
	d.pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
	d.pdf.SetFillColor(stripeColor[0], stripeColor[1], stripeColor[2])
	for i, c := range cols {
		d.pdf.CellFormat(widths[i], 7, d.tr(c), "1", 0, align(i), bold, 0, "")
	}
	d.pdf.Ln(-1)
}

func (d *reportPDF) footer(label string, now time.Time) {
	d.pdf.SetY(-15)
	d.pdf.SetFont("Arial", "I", 8)
	d.pdf.SetTextColor(128, 128, 128)
	d.pdf.CellFormat(0, 10, d.tr(fmt.Sprintf("%s | %s", label, now.Format("2006-01-02"))), "", 0, "L", false, 0, "")
}

// first column left aligned, numbers right aligned
func align(col int) string {
	if col == 0 {
		return "L"
	}
	return "R"
}
