package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/comerzia/comerzia_backend/internal/apperrors"
	"github.com/comerzia/comerzia_backend/internal/core/domain"
	portssvc "github.com/comerzia/comerzia_backend/internal/core/ports/services"
	"github.com/comerzia/comerzia_backend/internal/dto"
	"github.com/shopspring/decimal"
)

var (
	ErrNoteItemsLocked  = fmt.Errorf("%w: annulment notes mirror the referenced sale and cannot be edited", apperrors.ErrValidation)
	ErrSaleRequired     = fmt.Errorf("%w: a referenced sale must be selected", apperrors.ErrValidation)
	ErrSaleNotIssued    = fmt.Errorf("%w: the referenced sale has no issued document", apperrors.ErrPrecondition)
	ErrNoteTypeRequired = fmt.Errorf("%w: a note type must be selected", apperrors.ErrValidation)
	ErrReasonRequired   = fmt.Errorf("%w: a reason must be entered", apperrors.ErrValidation)
	ErrSessionReadOnly  = fmt.Errorf("%w: an issued note is read-only", apperrors.ErrConflict)
)

const fallbackNoteMsg = "could not register the note"

// NoteSession drives the composition of one credit/debit note against a
// previously issued sale. The selected note type governs whether the item
// collection mirrors the sale verbatim (annulment) or is freely editable
// (adjustments); the two behaviors never mix within one session.
type NoteSession struct {
	noteSvc   portssvc.NoteSvcFacade
	seriesSvc portssvc.SeriesSvcFacade
	notifier  portssvc.Notifier
	onSaved   func()

	state        SessionState
	viewMode     bool
	sale         *domain.Sale
	noteType     *domain.NoteType
	reason       string
	items        []domain.LineItem
	reservation  *domain.SeriesReservation
	previewToken uint64
}

// NewNoteSession returns a fresh EDITING note session.
func NewNoteSession(noteSvc portssvc.NoteSvcFacade, seriesSvc portssvc.SeriesSvcFacade, notifier portssvc.Notifier, onSaved func()) *NoteSession {
	return &NoteSession{
		noteSvc:   noteSvc,
		seriesSvc: seriesSvc,
		notifier:  notifier,
		onSaved:   onSaved,
		state:     StateEditing,
	}
}

func (s *NoteSession) State() SessionState                    { return s.state }
func (s *NoteSession) ViewMode() bool                         { return s.viewMode }
func (s *NoteSession) ReferencedSale() *domain.Sale           { return s.sale }
func (s *NoteSession) NoteType() *domain.NoteType             { return s.noteType }
func (s *NoteSession) Reason() string                         { return s.reason }
func (s *NoteSession) Items() []domain.LineItem               { return s.items }
func (s *NoteSession) Reservation() *domain.SeriesReservation { return s.reservation }

// ItemsLocked reports whether the current note type forbids editing items.
func (s *NoteSession) ItemsLocked() bool {
	return s.viewMode || (s.noteType != nil && s.noteType.LocksItems())
}

// SelectNoteType switches the note type, re-evaluating item population:
// auto-populating types copy the referenced sale's items verbatim, all other
// types clear the collection so locked data never leaks into an editable
// context. A new series preview is requested when a sale is referenced.
func (s *NoteSession) SelectNoteType(ctx context.Context, noteType domain.NoteType) error {
	if s.viewMode {
		return ErrSessionReadOnly
	}
	s.noteType = &noteType

	if s.sale != nil {
		s.refreshSeriesPreview(ctx)
	}
	if noteType.AutoPopulatesItems() {
		if s.sale != nil {
			s.items = domain.CopyLineItems(s.sale.Items)
		}
	} else {
		s.items = nil
	}
	return nil
}

// SelectReferencedSale sets the sale being corrected. The sale must carry an
// issued document. Auto-populating note types reload their items from it.
func (s *NoteSession) SelectReferencedSale(ctx context.Context, sale domain.Sale) error {
	if s.viewMode {
		return ErrSessionReadOnly
	}
	if !sale.IsIssued() {
		return ErrSaleNotIssued
	}
	s.sale = &sale
	s.reservation = nil
	if s.noteType != nil {
		s.refreshSeriesPreview(ctx)
		if s.noteType.AutoPopulatesItems() {
			s.items = domain.CopyLineItems(sale.Items)
		}
	}
	return nil
}

// ClearReferencedSale removes the referenced sale and the now-meaningless
// reservation; auto-populated items are cleared with it.
func (s *NoteSession) ClearReferencedSale() error {
	if s.viewMode {
		return ErrSessionReadOnly
	}
	s.sale = nil
	s.reservation = nil
	if s.noteType != nil && s.noteType.AutoPopulatesItems() {
		s.items = nil
	}
	return nil
}

// SetReason records the correction reason.
func (s *NoteSession) SetReason(reason string) error {
	if s.viewMode {
		return ErrSessionReadOnly
	}
	s.reason = reason
	return nil
}

// AddCatalogItem appends a catalog line item when the note type permits
// editing.
func (s *NoteSession) AddCatalogItem(entry domain.CatalogEntry) error {
	if s.ItemsLocked() {
		return ErrNoteItemsLocked
	}
	s.items = append(s.items, entry.ToLineItem())
	if s.notifier != nil {
		s.notifier.Report(portssvc.NotifySuccess, "Item added", fmt.Sprintf("%q added", entry.Name))
	}
	return nil
}

// AddCustomItem appends a free-text item when the note type permits editing.
func (s *NoteSession) AddCustomItem(description string, unitPrice decimal.Decimal) error {
	if s.ItemsLocked() {
		return ErrNoteItemsLocked
	}
	description = strings.TrimSpace(description)
	if description == "" {
		return ErrCustomItemBlankName
	}
	if unitPrice.LessThanOrEqual(decimal.Zero) {
		return ErrCustomItemZeroPrice
	}
	s.items = append(s.items, domain.LineItem{
		ItemType:    domain.ItemTypeCustom,
		Description: description,
		Quantity:    decimal.NewFromInt(1),
		UnitPrice:   unitPrice,
	})
	return nil
}

// RemoveItem drops the item at index when editing is permitted; out-of-range
// indices are a no-op.
func (s *NoteSession) RemoveItem(index int) error {
	if s.ItemsLocked() {
		return ErrNoteItemsLocked
	}
	if index < 0 || index >= len(s.items) {
		return nil
	}
	s.items = append(s.items[:index], s.items[index+1:]...)
	return nil
}

// Totals derives the live monetary summary of the note's items.
func (s *NoteSession) Totals() domain.Totals {
	return ComputeTotals(s.items)
}

// BeginSeriesPreview invalidates the reservation and returns the token for a
// new in-flight preview request; see SaleSession.BeginSeriesPreview.
func (s *NoteSession) BeginSeriesPreview() uint64 {
	s.previewToken++
	s.reservation = nil
	return s.previewToken
}

// ApplySeriesPreview applies a preview response if its token is current.
func (s *NoteSession) ApplySeriesPreview(token uint64, res domain.SeriesReservation, err error) bool {
	if token != s.previewToken {
		return false
	}
	if err != nil {
		s.reservation = nil
		if s.notifier != nil {
			s.notifier.Report(portssvc.NotifyError, "Series", messageOrFallback(err, fallbackSeriesMsg))
		}
		return true
	}
	s.reservation = &res
	return true
}

// refreshSeriesPreview resolves the note series from the note category and
// the corrected document's type, through the token protocol.
func (s *NoteSession) refreshSeriesPreview(ctx context.Context) {
	if s.sale == nil || s.sale.Document == nil || s.noteType == nil {
		return
	}
	token := s.BeginSeriesPreview()
	res, err := s.seriesSvc.ResolveNoteSeries(ctx, s.noteType.Category, s.sale.Document.OriginalDocumentTypeCode())
	s.ApplySeriesPreview(token, res, err)
}

func (s *NoteSession) validate() error {
	if s.sale == nil {
		return ErrSaleRequired
	}
	if !s.sale.IsIssued() {
		return ErrSaleNotIssued
	}
	if s.noteType == nil {
		return ErrNoteTypeRequired
	}
	if strings.TrimSpace(s.reason) == "" {
		return ErrReasonRequired
	}
	if len(s.items) == 0 {
		return ErrItemsRequired
	}
	if s.reservation == nil {
		return ErrSeriesRequired
	}
	return nil
}

// Submit validates and persists the note, resetting the session on success.
func (s *NoteSession) Submit(ctx context.Context, actor string) (*domain.Note, error) {
	if s.viewMode {
		return nil, ErrSessionReadOnly
	}
	if s.state == StateSubmitting {
		return nil, ErrSubmissionInFlight
	}
	s.state = StateValidating
	if err := s.validate(); err != nil {
		s.state = StateEditing
		if s.notifier != nil {
			s.notifier.Report(portssvc.NotifyWarning, "Validation", err.Error())
		}
		return nil, err
	}

	s.state = StateSubmitting
	req := dto.CreateNoteRequest{
		SaleID:             s.sale.SaleID,
		OriginalDocumentID: s.sale.Document.DocumentID,
		NoteTypeCode:       s.noteType.Code,
		Reason:             strings.TrimSpace(s.reason),
		DocumentSeriesID:   s.reservation.SeriesID,
		Items:              dto.FromLineItems(s.items),
	}
	note, err := s.noteSvc.CreateNote(ctx, req, actor)
	if err != nil {
		s.state = StateEditing
		if s.notifier != nil {
			s.notifier.Report(portssvc.NotifyError, "Note", messageOrFallback(err, fallbackNoteMsg))
		}
		return nil, err
	}

	if s.notifier != nil {
		s.notifier.Report(portssvc.NotifySuccess, "Success", "Credit/debit note registered")
	}
	s.Reset()
	if s.onSaved != nil {
		s.onSaved()
	}
	return note, nil
}

// LoadIssuedNote puts the session into the terminal view state: items come
// verbatim from the stored note, not recomputed from the sale, and every
// transition is rejected until Reset.
func (s *NoteSession) LoadIssuedNote(note domain.Note, noteType domain.NoteType) {
	s.Reset()
	s.viewMode = true
	s.noteType = &noteType
	s.reason = note.Reason
	s.items = domain.CopyLineItems(note.Items)
	if note.Document != nil {
		s.reservation = &domain.SeriesReservation{
			SeriesID: note.Document.SeriesID,
			Series:   note.Document.Series,
			Sequence: note.Document.Sequence,
		}
	}
}

// Reset returns the session to a fresh EDITING state.
func (s *NoteSession) Reset() {
	s.sale = nil
	s.noteType = nil
	s.reason = ""
	s.items = nil
	s.reservation = nil
	s.viewMode = false
	s.state = StateEditing
	s.previewToken++
}
