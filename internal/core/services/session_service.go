package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/comerzia/comerzia_backend/internal/apperrors"
	"github.com/comerzia/comerzia_backend/internal/core/domain"
	portssvc "github.com/comerzia/comerzia_backend/internal/core/ports/services"
	"github.com/comerzia/comerzia_backend/internal/dto"
	"github.com/shopspring/decimal"
)

// SessionState is the orchestration state of an editing session.
type SessionState string

const (
	StateEditing    SessionState = "EDITING"
	StateValidating SessionState = "VALIDATING"
	StateSubmitting SessionState = "SUBMITTING"
)

var (
	ErrSubmissionInFlight  = fmt.Errorf("%w: a submission is already in progress", apperrors.ErrConflict)
	ErrClientRequired      = fmt.Errorf("%w: a client must be selected", apperrors.ErrValidation)
	ErrItemsRequired       = fmt.Errorf("%w: at least one item is required", apperrors.ErrValidation)
	ErrSeriesRequired      = fmt.Errorf("%w: the document series could not be resolved", apperrors.ErrPrecondition)
	ErrPaymentsRequired    = fmt.Errorf("%w: at least one payment is required", apperrors.ErrPrecondition)
	ErrInsufficientPayment = fmt.Errorf("%w: total paid is less than the sale total", apperrors.ErrPrecondition)
	ErrDocumentTypeLocked  = fmt.Errorf("%w: document type is determined by the selected client", apperrors.ErrValidation)
	ErrProofOnCashPayment  = fmt.Errorf("%w: cash payments do not carry a proof attachment", apperrors.ErrValidation)
	ErrCustomItemBlankName = fmt.Errorf("%w: the item description is required", apperrors.ErrValidation)
	ErrCustomItemZeroPrice = fmt.Errorf("%w: the unit price must be greater than 0", apperrors.ErrValidation)
)

const (
	fallbackSubmitMsg    = "could not register the sale"
	fallbackSeriesMsg    = "could not fetch the next document number"
	fallbackQuotationMsg = "could not generate the quotation"
)

// SaleSession drives the composition of one sale: items, payments, the
// advisory series preview and the submission state machine. A session owns
// its item and payment collections exclusively; there is no cross-session
// sharing.
type SaleSession struct {
	saleSvc   portssvc.SaleSvcFacade
	seriesSvc portssvc.SeriesSvcFacade
	notifier  portssvc.Notifier
	onSaved   func()

	state              SessionState
	client             *domain.Client
	documentTypeCode   string
	documentTypeLocked bool
	items              []domain.LineItem
	payments           []domain.Payment
	reservation        *domain.SeriesReservation
	previewToken       uint64
}

// NewSaleSession returns a fresh EDITING session defaulting to the receipt
// document type. onSaved is invoked after a successful submission so the
// surrounding list view can refresh; it may be nil.
func NewSaleSession(saleSvc portssvc.SaleSvcFacade, seriesSvc portssvc.SeriesSvcFacade, notifier portssvc.Notifier, onSaved func()) *SaleSession {
	return &SaleSession{
		saleSvc:          saleSvc,
		seriesSvc:        seriesSvc,
		notifier:         notifier,
		onSaved:          onSaved,
		state:            StateEditing,
		documentTypeCode: domain.DocumentTypeReceipt,
	}
}

func (s *SaleSession) State() SessionState                    { return s.state }
func (s *SaleSession) Client() *domain.Client                 { return s.client }
func (s *SaleSession) DocumentTypeCode() string               { return s.documentTypeCode }
func (s *SaleSession) DocumentTypeLocked() bool               { return s.documentTypeLocked }
func (s *SaleSession) Items() []domain.LineItem               { return s.items }
func (s *SaleSession) Payments() []domain.Payment             { return s.payments }
func (s *SaleSession) Reservation() *domain.SeriesReservation { return s.reservation }

// SelectClient sets the buyer, derives and locks the document type from the
// client's identity document and refreshes the series preview.
func (s *SaleSession) SelectClient(ctx context.Context, client domain.Client) {
	s.client = &client
	s.documentTypeCode = domain.SaleDocumentTypeForClient(client)
	s.documentTypeLocked = true
	s.RefreshSeriesPreview(ctx)
}

// ClearClient removes the buyer and unlocks the document type selector.
func (s *SaleSession) ClearClient() {
	s.client = nil
	s.documentTypeLocked = false
}

// SetDocumentType changes the document type while no client locks it and
// refreshes the series preview.
func (s *SaleSession) SetDocumentType(ctx context.Context, code string) error {
	if s.documentTypeLocked {
		return ErrDocumentTypeLocked
	}
	s.documentTypeCode = code
	s.RefreshSeriesPreview(ctx)
	return nil
}

// AddCatalogItem appends a quantity-one line item for the picked catalog
// entry and reports a transient confirmation.
func (s *SaleSession) AddCatalogItem(entry domain.CatalogEntry) {
	s.items = append(s.items, entry.ToLineItem())
	if s.notifier != nil {
		s.notifier.Report(portssvc.NotifySuccess, "Item added", fmt.Sprintf("%q added", entry.Name))
	}
}

// AddCustomItem appends a free-text item after validating its fields.
func (s *SaleSession) AddCustomItem(description string, unitPrice decimal.Decimal) error {
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
	if s.notifier != nil {
		s.notifier.Report(portssvc.NotifySuccess, "Item added", fmt.Sprintf("%q added", description))
	}
	return nil
}

// RemoveItem drops the item at index. Out-of-range indices are a no-op so
// removal is always safe to trigger.
func (s *SaleSession) RemoveItem(index int) {
	if index < 0 || index >= len(s.items) {
		return
	}
	s.items = append(s.items[:index], s.items[index+1:]...)
}

// Totals derives the live monetary summary of the current items.
func (s *SaleSession) Totals() domain.Totals {
	return ComputeTotals(s.items)
}

// AddPayment records a payment entry. Cash entries must not carry a proof.
func (s *SaleSession) AddPayment(p domain.Payment) error {
	if p.PaymentMethodID.IsCash() && p.ProofKey != "" {
		return ErrProofOnCashPayment
	}
	s.payments = append(s.payments, p)
	return nil
}

// RemovePayment drops the payment at index; out of range is a no-op.
func (s *SaleSession) RemovePayment(index int) {
	if index < 0 || index >= len(s.payments) {
		return
	}
	s.payments = append(s.payments[:index], s.payments[index+1:]...)
}

// AttachProof assigns a submission-unique proof key to the payment at index
// and returns it so the caller can stage the binary under that key. Cash
// payments never carry proofs.
func (s *SaleSession) AttachProof(index int) (string, error) {
	if index < 0 || index >= len(s.payments) {
		return "", fmt.Errorf("%w: no payment at index %d", apperrors.ErrValidation, index)
	}
	if s.payments[index].PaymentMethodID.IsCash() {
		return "", ErrProofOnCashPayment
	}
	key := fmt.Sprintf("proof_%d_%d", index, time.Now().UnixMilli())
	s.payments[index].ProofKey = key
	return key, nil
}

// TotalPaid sums the entered payments.
func (s *SaleSession) TotalPaid() decimal.Decimal {
	return TotalPaid(s.payments)
}

// ChangeOrShortfall is totalPaid - total for the current composition.
func (s *SaleSession) ChangeOrShortfall() decimal.Decimal {
	return ChangeOrShortfall(s.payments, s.Totals())
}

// BeginSeriesPreview invalidates the displayed reservation and returns the
// token identifying the new in-flight preview request. Responses carrying an
// older token are discarded, so rapid routing-key changes cannot let a stale
// response win.
func (s *SaleSession) BeginSeriesPreview() uint64 {
	s.previewToken++
	s.reservation = nil
	return s.previewToken
}

// ApplySeriesPreview applies a preview response if its token is still the
// current one. It reports whether the response was applied.
func (s *SaleSession) ApplySeriesPreview(token uint64, res domain.SeriesReservation, err error) bool {
	if token != s.previewToken {
		return false
	}
	if err != nil {
		s.reservation = nil
		s.report(portssvc.NotifyError, "Series", messageOrFallback(err, fallbackSeriesMsg))
		return true
	}
	s.reservation = &res
	return true
}

// RefreshSeriesPreview runs a preview request for the current document type
// synchronously through the token protocol.
func (s *SaleSession) RefreshSeriesPreview(ctx context.Context) {
	token := s.BeginSeriesPreview()
	res, err := s.seriesSvc.PreviewByDocumentType(ctx, s.documentTypeCode)
	s.ApplySeriesPreview(token, res, err)
}

// validate gates a submission intent. Draft saves need a client and items;
// finalization additionally needs a resolved series, at least one payment and
// full coverage of the total.
func (s *SaleSession) validate(finalize bool) error {
	if s.client == nil {
		return ErrClientRequired
	}
	if len(s.items) == 0 {
		return ErrItemsRequired
	}
	if finalize {
		if s.reservation == nil {
			return ErrSeriesRequired
		}
		if len(s.payments) == 0 {
			return ErrPaymentsRequired
		}
		if s.TotalPaid().LessThan(s.Totals().Total) {
			return ErrInsufficientPayment
		}
	}
	return nil
}

// SubmitDraft persists the composition as an unissued draft.
func (s *SaleSession) SubmitDraft(ctx context.Context, actor string) (*domain.Sale, error) {
	return s.submit(ctx, actor, false)
}

// SubmitFinalize issues the sale, allocating its document number.
func (s *SaleSession) SubmitFinalize(ctx context.Context, actor string) (*domain.Sale, error) {
	return s.submit(ctx, actor, true)
}

func (s *SaleSession) submit(ctx context.Context, actor string, finalize bool) (*domain.Sale, error) {
	if s.state == StateSubmitting {
		return nil, ErrSubmissionInFlight
	}
	s.state = StateValidating
	if err := s.validate(finalize); err != nil {
		s.state = StateEditing
		s.report(portssvc.NotifyWarning, "Validation", err.Error())
		return nil, err
	}

	s.state = StateSubmitting
	req := s.buildRequest(finalize)
	sale, err := s.saleSvc.CreateSale(ctx, req, nil, actor)
	if err != nil {
		// The form stays populated so the user can correct and retry.
		s.state = StateEditing
		s.report(portssvc.NotifyError, "Sale", messageOrFallback(err, fallbackSubmitMsg))
		return nil, err
	}

	title := "Draft saved"
	if finalize {
		title = "Sale issued"
	}
	s.report(portssvc.NotifySuccess, "Success", title)
	s.Reset()
	if s.onSaved != nil {
		s.onSaved()
	}
	return sale, nil
}

// GenerateQuotation renders a quotation for the current composition without
// persisting it.
func (s *SaleSession) GenerateQuotation(ctx context.Context) ([]byte, error) {
	if s.state == StateSubmitting {
		return nil, ErrSubmissionInFlight
	}
	s.state = StateValidating
	if err := s.validate(false); err != nil {
		s.state = StateEditing
		s.report(portssvc.NotifyWarning, "Validation", err.Error())
		return nil, err
	}
	s.state = StateSubmitting
	pdf, err := s.saleSvc.GenerateQuotation(ctx, dto.QuotationRequest{
		ClientID: s.client.ClientID,
		Items:    dto.FromLineItems(s.items),
	})
	s.state = StateEditing
	if err != nil {
		s.report(portssvc.NotifyError, "Quotation", messageOrFallback(err, fallbackQuotationMsg))
		return nil, err
	}
	return pdf, nil
}

func (s *SaleSession) buildRequest(finalize bool) dto.CreateSaleRequest {
	req := dto.CreateSaleRequest{
		ClientID: s.client.ClientID,
		Items:    dto.FromLineItems(s.items),
		Draft:    !finalize,
	}
	if finalize && s.reservation != nil {
		req.DocumentSeriesID = s.reservation.SeriesID
	}
	for _, p := range s.payments {
		payment := dto.SalePaymentRequest{
			PaymentMethodID:  int(p.PaymentMethodID),
			AmountPaid:       p.AmountPaid,
			PaymentReference: p.PaymentReference,
		}
		if !p.PaymentMethodID.IsCash() {
			payment.ProofKey = p.ProofKey
		}
		req.Payments = append(req.Payments, payment)
	}
	return req
}

// Reset returns the session to a fresh EDITING state. The preview token is
// kept monotonic so responses from the previous composition stay discarded.
func (s *SaleSession) Reset() {
	s.client = nil
	s.items = nil
	s.payments = nil
	s.reservation = nil
	s.documentTypeCode = domain.DocumentTypeReceipt
	s.documentTypeLocked = false
	s.state = StateEditing
	s.previewToken++
}

func (s *SaleSession) report(kind portssvc.NotificationKind, title, message string) {
	if s.notifier != nil {
		s.notifier.Report(kind, title, message)
	}
}

// messageOrFallback prefers the collaborator-provided message, falling back
// to a fixed string.
func messageOrFallback(err error, fallback string) string {
	if err != nil && strings.TrimSpace(err.Error()) != "" {
		return err.Error()
	}
	return fallback
}
