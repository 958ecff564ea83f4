package services

import (
	"github.com/comerzia/comerzia_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// taxInclusiveFactor extracts the IGV component from a tax-inclusive total:
// subtotal = total / 1.18. The total stays the single source of truth the
// cashier charges against; subtotal and tax are derived from it.
var taxInclusiveFactor = decimal.NewFromFloat(1.18)

var oneHundred = decimal.NewFromInt(100)

// ItemNetAmount computes one item's contribution to the total:
// quantity * unitPrice * (1 - discount/100). Zero-value decimals behave as 0,
// so a half-typed row never breaks the live total.
func ItemNetAmount(item domain.LineItem) decimal.Decimal {
	factor := decimal.NewFromInt(1).Sub(item.DiscountPercentage.Div(oneHundred))
	return item.Quantity.Mul(item.UnitPrice).Mul(factor)
}

// ComputeTotals derives the monetary summary of a line-item collection. The
// per-item net amounts are summed without intermediate rounding.
func ComputeTotals(items []domain.LineItem) domain.Totals {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(ItemNetAmount(item))
	}
	subtotal := total.Div(taxInclusiveFactor)
	return domain.Totals{
		Subtotal: subtotal,
		Tax:      total.Sub(subtotal),
		Total:    total,
	}
}

// TotalPaid sums the entered payment amounts.
func TotalPaid(payments []domain.Payment) decimal.Decimal {
	sum := decimal.Zero
	for _, p := range payments {
		sum = sum.Add(p.AmountPaid)
	}
	return sum
}

// ChangeOrShortfall is totalPaid - total: positive means change due to the
// client, negative means the payments do not cover the sale yet.
func ChangeOrShortfall(payments []domain.Payment, totals domain.Totals) decimal.Decimal {
	return TotalPaid(payments).Sub(totals.Total)
}
