package repositories

import (
	"context"

	"github.com/comerzia/comerzia_backend/internal/core/domain"
)

// SeriesRepository reads document series. Reads never advance a sequence;
// allocation is done by the sale/note repositories inside their submission
// transactions.
type SeriesRepository interface {
	FindSeriesByID(ctx context.Context, seriesID string) (*domain.DocumentSeries, error)

	// FindSaleSeries returns the active series for a sale document type code
	// (invoice or receipt).
	FindSaleSeries(ctx context.Context, documentTypeCode string) (*domain.DocumentSeries, error)

	// FindNoteSeries returns the active note series for the given note
	// category and the document type of the corrected sale.
	FindNoteSeries(ctx context.Context, category domain.NoteCategory, appliesToCode string) (*domain.DocumentSeries, error)
}

// CatalogRepository reads the sellable product and service catalogs.
type CatalogRepository interface {
	ListProducts(ctx context.Context) ([]domain.CatalogEntry, error)
	ListServices(ctx context.Context) ([]domain.CatalogEntry, error)
}

// ClientRepository reads clients.
type ClientRepository interface {
	FindClientByID(ctx context.Context, clientID string) (*domain.Client, error)
	ListClients(ctx context.Context, activeOnly bool) ([]domain.Client, error)
}
