package repositories

import (
	"context"

	"github.com/comerzia/comerzia_backend/internal/core/domain"
	"github.com/comerzia/comerzia_backend/internal/dto"
)

// SaleRepository persists sales, their items and payments.
type SaleRepository interface {
	// SaveDraft stores an unissued sale with its items. Drafts carry no
	// document and no payments.
	SaveDraft(ctx context.Context, sale domain.Sale) error

	// UpdateDraft replaces the items of an existing draft.
	UpdateDraft(ctx context.Context, sale domain.Sale) error

	// SaveIssued stores a finalized sale with items and payments, allocating
	// the next sequence of the given series and creating the issued document
	// inside the same transaction. Returns the allocated document.
	SaveIssued(ctx context.Context, sale domain.Sale, seriesID string) (*domain.IssuedDocument, error)

	// FindSaleByID returns the sale with items, payments and document.
	FindSaleByID(ctx context.Context, saleID string) (*domain.Sale, error)

	// ListSales returns sales matching the filter, newest first.
	ListSales(ctx context.Context, filter dto.SaleFilter) ([]domain.Sale, error)
}
