package domain

import "github.com/shopspring/decimal"

// CatalogEntry is one sellable product or service from the catalog.
type CatalogEntry struct {
	EntryID      string          `json:"id"`
	Kind         ItemType        `json:"kind"` // PRODUCT or SERVICE
	Code         string          `json:"code"`
	Name         string          `json:"name"`
	CategoryName string          `json:"categoryName"`
	ListPrice    decimal.Decimal `json:"listPrice"`
	IsActive     bool            `json:"isActive"`
	AuditFields
}

// ToLineItem builds the line item appended when this entry is picked:
// quantity one at list price, described by the catalog name.
func (e CatalogEntry) ToLineItem() LineItem {
	item := LineItem{
		ItemType:    e.Kind,
		Description: e.Name,
		Quantity:    decimal.NewFromInt(1),
		UnitPrice:   e.ListPrice,
	}
	id := e.EntryID
	switch e.Kind {
	case ItemTypeProduct:
		item.ProductID = &id
	case ItemTypeService:
		item.ServiceID = &id
	}
	return item
}
