package domain

import "fmt"

// DocumentSeries is one numbering scheme (prefix + running sequence) for a
// document type. Note series additionally record which note category and
// which original sale document type they serve.
type DocumentSeries struct {
	SeriesID         string       `json:"seriesID"`
	DocumentTypeCode string       `json:"documentTypeCode"`
	NoteCategory     NoteCategory `json:"noteCategory,omitempty"`
	AppliesToCode    string       `json:"appliesToCode,omitempty"` // sale document type a note series corrects
	Series           string       `json:"series"`
	NextSequence     int64        `json:"nextSequence"`
	IsActive         bool         `json:"isActive"`
}

// SeriesReservation is an advisory preview of the next number a series would
// assign. The authoritative allocation happens inside the submission
// transaction, so a reservation must tolerate being stale.
type SeriesReservation struct {
	SeriesID string `json:"seriesID"`
	Series   string `json:"series"`
	Sequence int64  `json:"sequence"`
}

// Number renders the previewed document number, e.g. "B001-00000007".
func (r SeriesReservation) Number() string {
	return fmt.Sprintf("%s-%08d", r.Series, r.Sequence)
}

// SaleDocumentTypeForClient derives the sale document type from the selected
// client: tax-id bearing clients are invoiced, everyone else gets a receipt.
// The choice is automatic and locks the selector once a client is chosen.
func SaleDocumentTypeForClient(c Client) string {
	if c.BearsTaxID() {
		return DocumentTypeInvoice
	}
	return DocumentTypeReceipt
}
