package domain

import "github.com/shopspring/decimal"

// Totals is the derived monetary summary of a line-item collection. Total is
// the tax-inclusive amount the cashier charges; Subtotal and Tax are extracted
// from it.
type Totals struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
}

// Quotation is the non-persisted artifact input handed to the quotation
// renderer.
type Quotation struct {
	ClientName string
	Items      []LineItem
	Totals     Totals
}
