package dto

import (
	"github.com/comerzia/comerzia_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CatalogEntryResponse is one product or service offered for composition.
type CatalogEntryResponse struct {
	ID           string          `json:"id"`
	Code         string          `json:"code"`
	Name         string          `json:"name"`
	CategoryName string          `json:"categoryName"`
	ListPrice    decimal.Decimal `json:"listPrice"`
}

// ToCatalogEntryResponses converts catalog entries.
func ToCatalogEntryResponses(entries []domain.CatalogEntry) []CatalogEntryResponse {
	responses := make([]CatalogEntryResponse, len(entries))
	for i, e := range entries {
		responses[i] = CatalogEntryResponse{
			ID:           e.EntryID,
			Code:         e.Code,
			Name:         e.Name,
			CategoryName: e.CategoryName,
			ListPrice:    e.ListPrice,
		}
	}
	return responses
}
