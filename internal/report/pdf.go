package report

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"kassa/internal/domain"

	"github.com/go-pdf/fpdf" // PDF composition
)

// Column layout of the transaction table, in millimetres.
var (
	colWidths  = []float64{30, 30, 35, 95}
	colHeaders = []string{"Date", "Type", "Amount", "Reason"}
)

// Renderer composes period reports into portable PDF byte streams.
type Renderer struct{}

// NewRenderer returns a ready-to-use report renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render produces a PDF listing every transaction of the period plus the
// closing balance, labeled with the report type and its inclusive range.
// An empty period still renders, showing balance 0. On a composition error
// no bytes are returned and the caller must not serve a partial file.
func (r *Renderer) Render(txs []domain.Transaction, balance float64, reportType string, start, end time.Time) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(titleCase(reportType)+" Report", false)
	pdf.AddPage()

	// Heading with the report type and the resolved period.
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, titleCase(reportType)+" Report")
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 8, fmt.Sprintf("Period: %s to %s", start.Format(domain.DateLayout), end.Format(domain.DateLayout)))
	pdf.Ln(12)

	// Table header
	pdf.SetFont("Helvetica", "B", 11)
	for i, h := range colHeaders {
		pdf.CellFormat(colWidths[i], 8, h, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	// One row per transaction, newest first as provided by the store.
	pdf.SetFont("Helvetica", "", 10)
	for _, tx := range txs {
		pdf.CellFormat(colWidths[0], 7, tx.Date.Format(domain.DateLayout), "1", 0, "L", false, 0, "")
		pdf.CellFormat(colWidths[1], 7, tx.Type, "1", 0, "L", false, 0, "")
		pdf.CellFormat(colWidths[2], 7, fmt.Sprintf("%.2f", tx.Amount), "1", 0, "R", false, 0, "")
		pdf.CellFormat(colWidths[3], 7, tx.Reason, "1", 0, "L", false, 0, "")
		pdf.Ln(-1)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Balance: %.2f", balance))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrRender, err)
	}
	return buf.Bytes(), nil
}

// titleCase capitalizes the report type for display ("daily" -> "Daily").
func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
