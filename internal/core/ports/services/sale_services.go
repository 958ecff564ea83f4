package services

import (
	"context"

	"github.com/comerzia/comerzia_backend/internal/core/domain"
	"github.com/comerzia/comerzia_backend/internal/dto"
)

// SaleSvcFacade is the server-side sale submission surface.
type SaleSvcFacade interface {
	// CreateSale persists a draft or finalizes a sale depending on req.Draft.
	// proofPaths maps payment proof keys to stored file paths.
	CreateSale(ctx context.Context, req dto.CreateSaleRequest, proofPaths map[string]string, actor string) (*domain.Sale, error)

	// UpdateDraft replaces the composition of an existing draft.
	UpdateDraft(ctx context.Context, saleID string, req dto.CreateSaleRequest, actor string) (*domain.Sale, error)

	GetSaleByID(ctx context.Context, saleID string) (*domain.Sale, error)
	ListSales(ctx context.Context, filter dto.SaleFilter) ([]domain.Sale, error)

	// GenerateQuotation validates the composition and renders a quotation
	// artifact without persisting anything.
	GenerateQuotation(ctx context.Context, req dto.QuotationRequest) ([]byte, error)
}

// NoteSvcFacade is the server-side credit/debit note surface.
type NoteSvcFacade interface {
	CreateNote(ctx context.Context, req dto.CreateNoteRequest, actor string) (*domain.Note, error)
	GetNoteByID(ctx context.Context, noteID string) (*domain.Note, error)
	ListNotes(ctx context.Context) ([]domain.Note, error)
	ListNoteTypes(ctx context.Context) ([]domain.NoteType, error)
}

// SeriesSvcFacade previews and resolves document series. Previews are
// idempotent reads; repeating one with an unchanged routing key returns the
// same reservation unless a document was issued in between.
type SeriesSvcFacade interface {
	PreviewByDocumentType(ctx context.Context, documentTypeCode string) (domain.SeriesReservation, error)
	PreviewBySeriesID(ctx context.Context, seriesID string) (domain.SeriesReservation, error)
	ResolveNoteSeries(ctx context.Context, category domain.NoteCategory, appliesToCode string) (domain.SeriesReservation, error)
}

// ClientSvcFacade serves the client picker of the composition form.
type ClientSvcFacade interface {
	ListClients(ctx context.Context) ([]domain.Client, error)
	GetClientByID(ctx context.Context, clientID string) (*domain.Client, error)
}

// CatalogSvcFacade serves filtered product/service candidate lists. A failed
// catalog load degrades to an empty list rather than an error so the rest of
// the composition form stays usable.
type CatalogSvcFacade interface {
	ListProducts(ctx context.Context, filter string) []domain.CatalogEntry
	ListServices(ctx context.Context, filter string) []domain.CatalogEntry
}
