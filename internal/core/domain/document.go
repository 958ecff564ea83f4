package domain

import (
	"fmt"
	"strings"
	"time"
)

// Document type codes as reported to the tax authority.
const (
	DocumentTypeInvoice    = "01" // issued to tax-id bearing clients
	DocumentTypeReceipt    = "03"
	DocumentTypeCreditNote = "07"
	DocumentTypeDebitNote  = "08"
)

// IssuedDocument is the numbered fiscal document attached to a finalized sale
// or note. Drafts carry none.
type IssuedDocument struct {
	DocumentID       string    `json:"documentID"`
	SeriesID         string    `json:"seriesID"`
	DocumentTypeCode string    `json:"documentTypeCode"`
	Series           string    `json:"series"`
	Sequence         int64     `json:"sequence"`
	IssueDate        time.Time `json:"issueDate"`
	Status           string    `json:"status"`
}

// Number renders the human-readable document number, e.g. "F001-00000042".
func (d IssuedDocument) Number() string {
	return fmt.Sprintf("%s-%08d", d.Series, d.Sequence)
}

// IsInvoice reports whether the document was issued on an invoice series.
// Invoice series are prefixed "F"; receipt series "B".
func (d IssuedDocument) IsInvoice() bool {
	return strings.HasPrefix(d.Series, "F")
}

// OriginalDocumentTypeCode maps the document back to the sale document type
// used for note series routing.
func (d IssuedDocument) OriginalDocumentTypeCode() string {
	if d.IsInvoice() {
		return DocumentTypeInvoice
	}
	return DocumentTypeReceipt
}
