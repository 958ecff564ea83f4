package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ItemType discriminates the three kinds of line items a document can carry.
type ItemType string

const (
	ItemTypeProduct ItemType = "PRODUCT"
	ItemTypeService ItemType = "SERVICE"
	ItemTypeCustom  ItemType = "CUSTOM"
)

// LineItem is one priced entry within a Sale or a Note. PRODUCT and SERVICE
// items carry exactly one catalog reference matching their type; CUSTOM items
// carry none.
type LineItem struct {
	ItemType           ItemType        `json:"itemType"`
	ProductID          *string         `json:"productID,omitempty"`
	ServiceID          *string         `json:"serviceID,omitempty"`
	Description        string          `json:"description"`
	Quantity           decimal.Decimal `json:"quantity"`
	UnitPrice          decimal.Decimal `json:"unitPrice"`
	DiscountPercentage decimal.Decimal `json:"discountPercentage"`
}

// Validate enforces the catalog-reference exclusivity invariant and the basic
// quantity/price bounds.
func (li LineItem) Validate() error {
	switch li.ItemType {
	case ItemTypeProduct:
		if li.ProductID == nil || li.ServiceID != nil {
			return fmt.Errorf("product item must reference exactly one product")
		}
	case ItemTypeService:
		if li.ServiceID == nil || li.ProductID != nil {
			return fmt.Errorf("service item must reference exactly one service")
		}
	case ItemTypeCustom:
		if li.ProductID != nil || li.ServiceID != nil {
			return fmt.Errorf("custom item must not reference the catalog")
		}
	default:
		return fmt.Errorf("unknown item type %q", li.ItemType)
	}
	if strings.TrimSpace(li.Description) == "" {
		return fmt.Errorf("item description is required")
	}
	if li.Quantity.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("item quantity must be positive")
	}
	if li.UnitPrice.IsNegative() {
		return fmt.Errorf("item unit price must not be negative")
	}
	if li.DiscountPercentage.IsNegative() || li.DiscountPercentage.GreaterThan(decimal.NewFromInt(100)) {
		return fmt.Errorf("item discount must be between 0 and 100")
	}
	return nil
}

// CopyLineItems returns a field-for-field copy of the given items, used when a
// note mirrors the items of its referenced sale.
func CopyLineItems(items []LineItem) []LineItem {
	copied := make([]LineItem, len(items))
	for i, item := range items {
		copied[i] = item
		if item.ProductID != nil {
			id := *item.ProductID
			copied[i].ProductID = &id
		}
		if item.ServiceID != nil {
			id := *item.ServiceID
			copied[i].ServiceID = &id
		}
	}
	return copied
}
