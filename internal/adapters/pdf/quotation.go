package pdf

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/comerzia/comerzia_backend/internal/core/domain"
	portssvc "github.com/comerzia/comerzia_backend/internal/core/ports/services"
	"github.com/comerzia/comerzia_backend/internal/core/services"
)

// QuotationPDFRenderer renders quotations as A4 PDF documents.
type QuotationPDFRenderer struct {
	companyName string
}

// NewQuotationPDFRenderer creates a renderer headed with the given company name.
func NewQuotationPDFRenderer(companyName string) portssvc.QuotationRenderer {
	return &QuotationPDFRenderer{companyName: companyName}
}

var _ portssvc.QuotationRenderer = (*QuotationPDFRenderer)(nil)

// RenderQuotation produces the PDF bytes for a quotation.
func (r *QuotationPDFRenderer) RenderQuotation(q domain.Quotation) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, r.companyName)
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, "Quotation")
	pdf.Ln(8)

	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, "Client: "+q.ClientName)
	pdf.Ln(6)
	pdf.Cell(0, 6, "Date: "+time.Now().Format("2006-01-02"))
	pdf.Ln(10)

	// Item table header
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(80, 7, "Description", "1", 0, "L", false, 0, "")
	pdf.CellFormat(25, 7, "Qty", "1", 0, "R", false, 0, "")
	pdf.CellFormat(30, 7, "Unit Price", "1", 0, "R", false, 0, "")
	pdf.CellFormat(20, 7, "Disc %", "1", 0, "R", false, 0, "")
	pdf.CellFormat(30, 7, "Amount", "1", 1, "R", false, 0, "")

	pdf.SetFont("Arial", "", 10)
	for _, item := range q.Items {
		pdf.CellFormat(80, 7, item.Description, "1", 0, "L", false, 0, "")
		pdf.CellFormat(25, 7, item.Quantity.String(), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 7, item.UnitPrice.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.CellFormat(20, 7, item.DiscountPercentage.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 7, services.ItemNetAmount(item).StringFixed(2), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(155, 7, "Subtotal", "0", 0, "R", false, 0, "")
	pdf.CellFormat(30, 7, q.Totals.Subtotal.StringFixed(2), "1", 1, "R", false, 0, "")
	pdf.CellFormat(155, 7, "Tax", "0", 0, "R", false, 0, "")
	pdf.CellFormat(30, 7, q.Totals.Tax.StringFixed(2), "1", 1, "R", false, 0, "")
	pdf.CellFormat(155, 7, "Total", "0", 0, "R", false, 0, "")
	pdf.CellFormat(30, 7, q.Totals.Total.StringFixed(2), "1", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render quotation PDF: %w", err)
	}
	return buf.Bytes(), nil
}
