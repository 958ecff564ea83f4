package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/comerzia/comerzia_backend/internal/apperrors"
	"github.com/comerzia/comerzia_backend/internal/core/domain"
	portsrepo "github.com/comerzia/comerzia_backend/internal/core/ports/repositories"
	portssvc "github.com/comerzia/comerzia_backend/internal/core/ports/services"
	"github.com/comerzia/comerzia_backend/internal/dto"
	"github.com/comerzia/comerzia_backend/internal/middleware"
)

// noteService implements the server-side credit/debit note surface.
type noteService struct {
	noteRepo   portsrepo.NoteRepository
	saleRepo   portsrepo.SaleRepository
	seriesRepo portsrepo.SeriesRepository
}

// NewNoteService creates a new NoteService.
func NewNoteService(noteRepo portsrepo.NoteRepository, saleRepo portsrepo.SaleRepository, seriesRepo portsrepo.SeriesRepository) portssvc.NoteSvcFacade {
	return &noteService{
		noteRepo:   noteRepo,
		saleRepo:   saleRepo,
		seriesRepo: seriesRepo,
	}
}

var _ portssvc.NoteSvcFacade = (*noteService)(nil)

// CreateNote issues a credit or debit note against a previously issued sale.
func (s *noteService) CreateNote(ctx context.Context, req dto.CreateNoteRequest, actor string) (*domain.Note, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	sale, err := s.saleRepo.FindSaleByID(ctx, req.SaleID)
	if err != nil {
		return nil, fmt.Errorf("failed to find sale %s: %w", req.SaleID, err)
	}
	if !sale.IsIssued() {
		return nil, fmt.Errorf("%w: sale %s has no issued document", apperrors.ErrPrecondition, req.SaleID)
	}
	if sale.Document.DocumentID != req.OriginalDocumentID {
		return nil, fmt.Errorf("%w: document %s does not belong to sale %s", apperrors.ErrValidation, req.OriginalDocumentID, req.SaleID)
	}

	noteType, err := s.noteRepo.FindNoteType(ctx, req.NoteTypeCode)
	if err != nil {
		return nil, fmt.Errorf("failed to find note type %s: %w", req.NoteTypeCode, err)
	}
	if !noteType.IsActive {
		return nil, fmt.Errorf("%w: note type %s is inactive", apperrors.ErrValidation, noteType.Code)
	}

	reason := strings.TrimSpace(req.Reason)
	if reason == "" {
		return nil, ErrReasonRequired
	}

	series, err := s.seriesRepo.FindSeriesByID(ctx, req.DocumentSeriesID)
	if err != nil {
		return nil, fmt.Errorf("failed to find series %s: %w", req.DocumentSeriesID, err)
	}
	if !series.IsActive {
		return nil, fmt.Errorf("%w: series %s is inactive", apperrors.ErrValidation, series.Series)
	}
	if series.DocumentTypeCode != noteType.DocumentTypeCode() {
		return nil, fmt.Errorf("%w: series %s does not serve document type %s", apperrors.ErrValidation, series.Series, noteType.DocumentTypeCode())
	}
	if series.AppliesToCode != sale.Document.DocumentTypeCode {
		return nil, fmt.Errorf("%w: series %s does not correct %s documents", apperrors.ErrValidation, series.Series, sale.Document.DocumentTypeCode)
	}

	items := dto.ToLineItems(req.Items)
	if err := validateItems(items); err != nil {
		return nil, err
	}
	totals := ComputeTotals(items)

	now := time.Now().UTC()
	note := domain.Note{
		NoteID:             uuid.NewString(),
		SaleID:             sale.SaleID,
		OriginalDocumentID: sale.Document.DocumentID,
		NoteTypeCode:       noteType.Code,
		Reason:             reason,
		Items:              items,
		SubtotalAmount:     totals.Subtotal,
		TaxAmount:          totals.Tax,
		TotalAmount:        totals.Total,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor,
			LastUpdatedAt: now,
			LastUpdatedBy: actor,
		},
	}

	doc, err := s.noteRepo.SaveNote(ctx, note, series.SeriesID)
	if err != nil {
		logger.Error("Failed to save note", slog.String("error", err.Error()), slog.String("sale_id", sale.SaleID))
		return nil, fmt.Errorf("failed to save note: %w", err)
	}
	note.Document = doc

	logger.Info("Note issued",
		slog.String("note_id", note.NoteID),
		slog.String("note_type", note.NoteTypeCode),
		slog.String("document", doc.Number()),
	)
	return &note, nil
}

// GetNoteByID returns a note with items and document.
func (s *noteService) GetNoteByID(ctx context.Context, noteID string) (*domain.Note, error) {
	note, err := s.noteRepo.FindNoteByID(ctx, noteID)
	if err != nil {
		return nil, fmt.Errorf("failed to find note %s: %w", noteID, err)
	}
	return note, nil
}

// ListNotes returns all issued notes, newest first.
func (s *noteService) ListNotes(ctx context.Context) ([]domain.Note, error) {
	notes, err := s.noteRepo.ListNotes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	return notes, nil
}

// ListNoteTypes returns the active note type catalog.
func (s *noteService) ListNoteTypes(ctx context.Context) ([]domain.NoteType, error) {
	types, err := s.noteRepo.ListNoteTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list note types: %w", err)
	}
	return types, nil
}
