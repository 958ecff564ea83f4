package services_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/comerzia/comerzia_backend/internal/core/domain"
	"github.com/comerzia/comerzia_backend/internal/core/services"
)

func item(qty, price, discount string) domain.LineItem {
	return domain.LineItem{
		ItemType:           domain.ItemTypeCustom,
		Description:        "item",
		Quantity:           decimal.RequireFromString(qty),
		UnitPrice:          decimal.RequireFromString(price),
		DiscountPercentage: decimal.RequireFromString(discount),
	}
}

func TestItemNetAmount(t *testing.T) {
	tests := []struct {
		name     string
		item     domain.LineItem
		expected string
	}{
		{"no discount", item("2", "10", "0"), "20"},
		{"half discount", item("1", "100", "50"), "50"},
		{"full discount", item("3", "25", "100"), "0"},
		{"fractional quantity", item("0.5", "10", "0"), "5"},
		{"zero value row", domain.LineItem{}, "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := services.ItemNetAmount(tt.item)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.expected)),
				"got %s, expected %s", got, tt.expected)
		})
	}
}

func TestComputeTotals_TaxInclusiveBreakdown(t *testing.T) {
	totals := services.ComputeTotals([]domain.LineItem{item("1", "118", "0")})

	assert.True(t, totals.Total.Equal(decimal.NewFromInt(118)))
	assert.True(t, totals.Subtotal.Equal(decimal.NewFromInt(100)))
	assert.True(t, totals.Tax.Equal(decimal.NewFromInt(18)))
}

func TestComputeTotals_SubtotalPlusTaxEqualsTotal(t *testing.T) {
	items := []domain.LineItem{
		item("3", "19.90", "0"),
		item("1", "249.99", "15"),
		item("2.5", "7.33", "3"),
	}
	totals := services.ComputeTotals(items)

	assert.True(t, totals.Subtotal.Add(totals.Tax).Equal(totals.Total),
		"subtotal %s + tax %s must equal total %s", totals.Subtotal, totals.Tax, totals.Total)
}

func TestComputeTotals_OrderInvariant(t *testing.T) {
	a := item("3", "19.90", "0")
	b := item("1", "249.99", "15")
	c := item("2.5", "7.33", "3")

	forward := services.ComputeTotals([]domain.LineItem{a, b, c})
	reversed := services.ComputeTotals([]domain.LineItem{c, b, a})

	assert.True(t, forward.Total.Equal(reversed.Total))
	assert.True(t, forward.Subtotal.Equal(reversed.Subtotal))
	assert.True(t, forward.Tax.Equal(reversed.Tax))
}

func TestComputeTotals_HundredItems(t *testing.T) {
	items := make([]domain.LineItem, 100)
	for i := range items {
		items[i] = item("1", "1", "0")
	}
	totals := services.ComputeTotals(items)

	assert.True(t, totals.Total.Equal(decimal.NewFromInt(100)))
	assert.True(t, totals.Subtotal.Round(2).Equal(decimal.RequireFromString("84.75")))
	assert.True(t, totals.Tax.Round(2).Equal(decimal.RequireFromString("15.25")))
}

func TestComputeTotals_Empty(t *testing.T) {
	totals := services.ComputeTotals(nil)

	assert.True(t, totals.Total.IsZero())
	assert.True(t, totals.Subtotal.IsZero())
	assert.True(t, totals.Tax.IsZero())
}

func TestChangeOrShortfall(t *testing.T) {
	totals := services.ComputeTotals([]domain.LineItem{item("1", "118", "0")})

	overpaid := []domain.Payment{{PaymentMethodID: domain.PaymentMethodCash, AmountPaid: decimal.NewFromInt(120)}}
	assert.True(t, services.ChangeOrShortfall(overpaid, totals).Equal(decimal.NewFromInt(2)))

	short := []domain.Payment{{PaymentMethodID: domain.PaymentMethodCard, AmountPaid: decimal.NewFromInt(100)}}
	assert.True(t, services.ChangeOrShortfall(short, totals).Equal(decimal.NewFromInt(-18)))

	split := []domain.Payment{
		{PaymentMethodID: domain.PaymentMethodCash, AmountPaid: decimal.NewFromInt(100)},
		{PaymentMethodID: domain.PaymentMethodCard, AmountPaid: decimal.NewFromInt(18)},
	}
	assert.True(t, services.ChangeOrShortfall(split, totals).IsZero())
}
