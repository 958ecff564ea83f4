package services

import (
	"context"
	"log/slog"
	"strings"

	"github.com/comerzia/comerzia_backend/internal/core/domain"
	portsrepo "github.com/comerzia/comerzia_backend/internal/core/ports/repositories"
	portssvc "github.com/comerzia/comerzia_backend/internal/core/ports/services"
	"github.com/comerzia/comerzia_backend/internal/middleware"
)

// catalogService serves the sellable product and service lists. A failed
// load degrades to an empty list so the composition form stays usable.
type catalogService struct {
	catalogRepo portsrepo.CatalogRepository
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(catalogRepo portsrepo.CatalogRepository) portssvc.CatalogSvcFacade {
	return &catalogService{catalogRepo: catalogRepo}
}

var _ portssvc.CatalogSvcFacade = (*catalogService)(nil)

// ListProducts returns active products matching the filter text.
func (s *catalogService) ListProducts(ctx context.Context, filter string) []domain.CatalogEntry {
	entries, err := s.catalogRepo.ListProducts(ctx)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to load product catalog", slog.String("error", err.Error()))
		return []domain.CatalogEntry{}
	}
	return filterEntries(entries, filter)
}

// ListServices returns active services matching the filter text.
func (s *catalogService) ListServices(ctx context.Context, filter string) []domain.CatalogEntry {
	entries, err := s.catalogRepo.ListServices(ctx)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to load service catalog", slog.String("error", err.Error()))
		return []domain.CatalogEntry{}
	}
	return filterEntries(entries, filter)
}

// filterEntries keeps active entries whose code, name or category contains
// the filter text, case-insensitively. A blank filter keeps everything.
func filterEntries(entries []domain.CatalogEntry, filter string) []domain.CatalogEntry {
	needle := strings.ToLower(strings.TrimSpace(filter))
	matched := make([]domain.CatalogEntry, 0, len(entries))
	for _, e := range entries {
		if !e.IsActive {
			continue
		}
		if needle == "" ||
			strings.Contains(strings.ToLower(e.Code), needle) ||
			strings.Contains(strings.ToLower(e.Name), needle) ||
			strings.Contains(strings.ToLower(e.CategoryName), needle) {
			matched = append(matched, e)
		}
	}
	return matched
}
