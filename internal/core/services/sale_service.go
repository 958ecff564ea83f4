package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/comerzia/comerzia_backend/internal/apperrors"
	"github.com/comerzia/comerzia_backend/internal/core/domain"
	portsrepo "github.com/comerzia/comerzia_backend/internal/core/ports/repositories"
	portssvc "github.com/comerzia/comerzia_backend/internal/core/ports/services"
	"github.com/comerzia/comerzia_backend/internal/dto"
	"github.com/comerzia/comerzia_backend/internal/middleware"
)

// saleService implements the server-side sale submission surface.
type saleService struct {
	saleRepo   portsrepo.SaleRepository
	seriesRepo portsrepo.SeriesRepository
	clientRepo portsrepo.ClientRepository
	renderer   portssvc.QuotationRenderer
}

// NewSaleService creates a new SaleService.
func NewSaleService(saleRepo portsrepo.SaleRepository, seriesRepo portsrepo.SeriesRepository, clientRepo portsrepo.ClientRepository, renderer portssvc.QuotationRenderer) portssvc.SaleSvcFacade {
	return &saleService{
		saleRepo:   saleRepo,
		seriesRepo: seriesRepo,
		clientRepo: clientRepo,
		renderer:   renderer,
	}
}

var _ portssvc.SaleSvcFacade = (*saleService)(nil)

// CreateSale persists a draft or issues a finalized sale.
func (s *saleService) CreateSale(ctx context.Context, req dto.CreateSaleRequest, proofPaths map[string]string, actor string) (*domain.Sale, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	client, err := s.resolveClient(ctx, req.ClientID)
	if err != nil {
		return nil, err
	}

	items := dto.ToLineItems(req.Items)
	if err := validateItems(items); err != nil {
		return nil, err
	}
	totals := ComputeTotals(items)

	now := time.Now().UTC()
	sale := domain.Sale{
		SaleID:         uuid.NewString(),
		ClientID:       client.ClientID,
		Status:         domain.SaleStatusDraft,
		Items:          items,
		SubtotalAmount: totals.Subtotal,
		TaxAmount:      totals.Tax,
		TotalAmount:    totals.Total,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor,
			LastUpdatedAt: now,
			LastUpdatedBy: actor,
		},
	}

	if req.Draft {
		if err := s.saleRepo.SaveDraft(ctx, sale); err != nil {
			logger.Error("Failed to save draft sale", slog.String("error", err.Error()))
			return nil, fmt.Errorf("failed to save draft: %w", err)
		}
		logger.Info("Draft sale saved", slog.String("sale_id", sale.SaleID))
		return &sale, nil
	}

	series, err := s.resolveSaleSeries(ctx, req.DocumentSeriesID, *client)
	if err != nil {
		return nil, err
	}

	payments := dto.ToPayments(req.Payments, proofPaths)
	if err := validatePayments(payments, totals.Total); err != nil {
		return nil, err
	}

	sale.Status = domain.SaleStatusIssued
	sale.Payments = payments
	doc, err := s.saleRepo.SaveIssued(ctx, sale, series.SeriesID)
	if err != nil {
		logger.Error("Failed to issue sale", slog.String("error", err.Error()), slog.String("series_id", series.SeriesID))
		return nil, fmt.Errorf("failed to issue sale: %w", err)
	}
	sale.Document = doc

	logger.Info("Sale issued", slog.String("sale_id", sale.SaleID), slog.String("document", doc.Number()))
	return &sale, nil
}

// UpdateDraft replaces the composition of an existing draft sale.
func (s *saleService) UpdateDraft(ctx context.Context, saleID string, req dto.CreateSaleRequest, actor string) (*domain.Sale, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	existing, err := s.saleRepo.FindSaleByID(ctx, saleID)
	if err != nil {
		return nil, fmt.Errorf("failed to find sale %s: %w", saleID, err)
	}
	if existing.Status != domain.SaleStatusDraft {
		return nil, fmt.Errorf("%w: only drafts can be updated", apperrors.ErrConflict)
	}

	client, err := s.resolveClient(ctx, req.ClientID)
	if err != nil {
		return nil, err
	}

	items := dto.ToLineItems(req.Items)
	if err := validateItems(items); err != nil {
		return nil, err
	}
	totals := ComputeTotals(items)

	existing.ClientID = client.ClientID
	existing.Items = items
	existing.SubtotalAmount = totals.Subtotal
	existing.TaxAmount = totals.Tax
	existing.TotalAmount = totals.Total
	existing.LastUpdatedAt = time.Now().UTC()
	existing.LastUpdatedBy = actor

	if err := s.saleRepo.UpdateDraft(ctx, *existing); err != nil {
		logger.Error("Failed to update draft sale", slog.String("error", err.Error()), slog.String("sale_id", saleID))
		return nil, fmt.Errorf("failed to update draft: %w", err)
	}

	logger.Info("Draft sale updated", slog.String("sale_id", saleID))
	return existing, nil
}

// GetSaleByID returns a sale with items, payments and document.
func (s *saleService) GetSaleByID(ctx context.Context, saleID string) (*domain.Sale, error) {
	sale, err := s.saleRepo.FindSaleByID(ctx, saleID)
	if err != nil {
		return nil, fmt.Errorf("failed to find sale %s: %w", saleID, err)
	}
	return sale, nil
}

// ListSales returns sales matching the filter.
func (s *saleService) ListSales(ctx context.Context, filter dto.SaleFilter) ([]domain.Sale, error) {
	sales, err := s.saleRepo.ListSales(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list sales: %w", err)
	}
	return sales, nil
}

// GenerateQuotation validates the composition and renders a quotation
// artifact; nothing is persisted.
func (s *saleService) GenerateQuotation(ctx context.Context, req dto.QuotationRequest) ([]byte, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	client, err := s.resolveClient(ctx, req.ClientID)
	if err != nil {
		return nil, err
	}
	items := dto.ToLineItems(req.Items)
	if err := validateItems(items); err != nil {
		return nil, err
	}

	pdf, err := s.renderer.RenderQuotation(domain.Quotation{
		ClientName: client.DisplayName(),
		Items:      items,
		Totals:     ComputeTotals(items),
	})
	if err != nil {
		logger.Error("Failed to render quotation", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to render quotation: %w", err)
	}

	logger.Info("Quotation generated", slog.String("client_id", client.ClientID))
	return pdf, nil
}

func (s *saleService) resolveClient(ctx context.Context, clientID string) (*domain.Client, error) {
	client, err := s.clientRepo.FindClientByID(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to find client %s: %w", clientID, err)
	}
	if !client.IsActive {
		return nil, fmt.Errorf("%w: client %s is inactive", apperrors.ErrValidation, clientID)
	}
	return client, nil
}

// resolveSaleSeries fetches the requested series and checks it serves the
// document type the client routes to.
func (s *saleService) resolveSaleSeries(ctx context.Context, seriesID string, client domain.Client) (*domain.DocumentSeries, error) {
	if seriesID == "" {
		return nil, fmt.Errorf("%w: a document series is required to finalize", apperrors.ErrPrecondition)
	}
	series, err := s.seriesRepo.FindSeriesByID(ctx, seriesID)
	if err != nil {
		return nil, fmt.Errorf("failed to find series %s: %w", seriesID, err)
	}
	if !series.IsActive {
		return nil, fmt.Errorf("%w: series %s is inactive", apperrors.ErrValidation, seriesID)
	}
	if expected := domain.SaleDocumentTypeForClient(client); series.DocumentTypeCode != expected {
		return nil, fmt.Errorf("%w: series %s does not serve document type %s", apperrors.ErrValidation, series.Series, expected)
	}
	return series, nil
}

// validateItems checks every line item's shape invariants.
func validateItems(items []domain.LineItem) error {
	if len(items) == 0 {
		return ErrItemsRequired
	}
	for i, item := range items {
		if err := item.Validate(); err != nil {
			return fmt.Errorf("%w: item %d: %s", apperrors.ErrValidation, i, err.Error())
		}
	}
	return nil
}

// validatePayments checks payment amounts, the cash/proof rule and full
// coverage of the total.
func validatePayments(payments []domain.Payment, total decimal.Decimal) error {
	if len(payments) == 0 {
		return ErrPaymentsRequired
	}
	for i, p := range payments {
		if p.AmountPaid.LessThanOrEqual(decimal.Zero) {
			return fmt.Errorf("%w: payment %d amount must be positive", apperrors.ErrValidation, i)
		}
		if p.PaymentMethodID.IsCash() && p.ProofKey != "" {
			return ErrProofOnCashPayment
		}
	}
	if TotalPaid(payments).LessThan(total) {
		return ErrInsufficientPayment
	}
	return nil
}
