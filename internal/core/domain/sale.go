package domain

import "github.com/shopspring/decimal"

// SaleStatus indicates the lifecycle state of a sale.
type SaleStatus string

const (
	SaleStatusDraft  SaleStatus = "DRAFT"
	SaleStatusIssued SaleStatus = "ISSUED"
)

// Sale is a commercial sale document under composition or already issued.
// Totals are derived from Items at submission time; the stored amounts are
// denormalized copies, never independently authoritative.
type Sale struct {
	SaleID         string          `json:"saleID"`
	ClientID       string          `json:"clientID"`
	Status         SaleStatus      `json:"status"`
	Items          []LineItem      `json:"items"`
	Payments       []Payment       `json:"payments"`
	SubtotalAmount decimal.Decimal `json:"subtotalAmount"`
	TaxAmount      decimal.Decimal `json:"taxAmount"`
	TotalAmount    decimal.Decimal `json:"totalAmount"`
	Document       *IssuedDocument `json:"document,omitempty"`
	AuditFields
}

// IsIssued reports whether the sale carries an issued fiscal document, a
// precondition for referencing it from a credit/debit note.
func (s Sale) IsIssued() bool {
	return s.Document != nil
}
