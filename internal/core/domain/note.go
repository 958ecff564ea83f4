package domain

import "github.com/shopspring/decimal"

// Note is a credit or debit note issued against a previously issued sale.
type Note struct {
	NoteID             string          `json:"noteID"`
	SaleID             string          `json:"saleID"`
	OriginalDocumentID string          `json:"originalDocumentID"`
	NoteTypeCode       string          `json:"noteTypeCode"`
	Reason             string          `json:"reason"`
	Items              []LineItem      `json:"items"`
	SubtotalAmount     decimal.Decimal `json:"subtotalAmount"`
	TaxAmount          decimal.Decimal `json:"taxAmount"`
	TotalAmount        decimal.Decimal `json:"totalAmount"`
	Document           *IssuedDocument `json:"document,omitempty"`
	AuditFields
}
