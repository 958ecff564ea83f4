package dto

import (
	"time"

	"github.com/comerzia/comerzia_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SaleItemRequest is one line item as submitted by the console.
type SaleItemRequest struct {
	ItemType           domain.ItemType  `json:"itemType" binding:"required,oneof=PRODUCT SERVICE CUSTOM"`
	ProductID          *string          `json:"productID"`
	ServiceID          *string          `json:"serviceID"`
	Description        string           `json:"description" binding:"required"`
	Quantity           decimal.Decimal  `json:"quantity" binding:"required"`
	UnitPrice          decimal.Decimal  `json:"unitPrice"`
	DiscountPercentage *decimal.Decimal `json:"discountPercentage"`
}

// SalePaymentRequest is one payment entry of a finalize submission. ProofKey
// cross-references a multipart file carried out-of-band.
type SalePaymentRequest struct {
	PaymentMethodID  int             `json:"paymentMethodID" binding:"required"`
	AmountPaid       decimal.Decimal `json:"amountPaid" binding:"required"`
	PaymentReference string          `json:"paymentReference"`
	ProofKey         string          `json:"proofKey"`
}

// CreateSaleRequest is the submission payload for both draft saves and
// finalizations. Draft submissions carry no series and no payments.
type CreateSaleRequest struct {
	ClientID         string               `json:"clientID" binding:"required"`
	Items            []SaleItemRequest    `json:"items" binding:"required,min=1,dive"`
	Payments         []SalePaymentRequest `json:"payments"`
	Draft            bool                 `json:"draft"`
	DocumentSeriesID string               `json:"documentSeriesID"`
}

// QuotationRequest carries the subset of a sale needed to render a quotation.
type QuotationRequest struct {
	ClientID string            `json:"clientID" binding:"required"`
	Items    []SaleItemRequest `json:"items" binding:"required,min=1,dive"`
}

// SaleFilter narrows sale listings; zero values mean "no constraint".
type SaleFilter struct {
	SaleID     string
	ClientID   string
	SaleStatus string
	StartDate  *time.Time
	EndDate    *time.Time
}

// DocumentResponse describes the issued fiscal document of a sale or note.
type DocumentResponse struct {
	DocumentID       string    `json:"documentID"`
	DocumentTypeCode string    `json:"documentTypeCode"`
	Series           string    `json:"series"`
	Sequence         int64     `json:"sequence"`
	Number           string    `json:"number"`
	IssueDate        time.Time `json:"issueDate"`
	Status           string    `json:"status"`
}

// SalePaymentResponse mirrors a recorded payment.
type SalePaymentResponse struct {
	PaymentMethodID  int             `json:"paymentMethodID"`
	AmountPaid       decimal.Decimal `json:"amountPaid"`
	PaymentReference string          `json:"paymentReference,omitempty"`
}

// SaleResponse is the listing/detail representation of a sale.
type SaleResponse struct {
	SaleID         string                `json:"saleID"`
	ClientID       string                `json:"clientID"`
	SaleStatus     string                `json:"saleStatus"`
	SubtotalAmount decimal.Decimal       `json:"subtotalAmount"`
	TaxAmount      decimal.Decimal       `json:"taxAmount"`
	TotalAmount    decimal.Decimal       `json:"totalAmount"`
	Items          []domain.LineItem     `json:"items"`
	Payments       []SalePaymentResponse `json:"payments,omitempty"`
	Document       *DocumentResponse     `json:"document,omitempty"`
	CreatedAt      time.Time             `json:"createdAt"`
}

// ToLineItem converts a request item to its domain form, defaulting a missing
// discount to zero.
func (r SaleItemRequest) ToLineItem() domain.LineItem {
	item := domain.LineItem{
		ItemType:    r.ItemType,
		ProductID:   r.ProductID,
		ServiceID:   r.ServiceID,
		Description: r.Description,
		Quantity:    r.Quantity,
		UnitPrice:   r.UnitPrice,
	}
	if r.DiscountPercentage != nil {
		item.DiscountPercentage = *r.DiscountPercentage
	}
	return item
}

// ToLineItems converts a slice of request items.
func ToLineItems(reqs []SaleItemRequest) []domain.LineItem {
	items := make([]domain.LineItem, len(reqs))
	for i, r := range reqs {
		items[i] = r.ToLineItem()
	}
	return items
}

// FromLineItems converts domain items back to request form, used when an
// editing session builds its submission payload.
func FromLineItems(items []domain.LineItem) []SaleItemRequest {
	reqs := make([]SaleItemRequest, len(items))
	for i, item := range items {
		discount := item.DiscountPercentage
		reqs[i] = SaleItemRequest{
			ItemType:           item.ItemType,
			ProductID:          item.ProductID,
			ServiceID:          item.ServiceID,
			Description:        item.Description,
			Quantity:           item.Quantity,
			UnitPrice:          item.UnitPrice,
			DiscountPercentage: &discount,
		}
	}
	return reqs
}

// ToPayments converts payment requests, attaching stored proof paths by key.
func ToPayments(reqs []SalePaymentRequest, proofPaths map[string]string) []domain.Payment {
	payments := make([]domain.Payment, len(reqs))
	for i, r := range reqs {
		payments[i] = domain.Payment{
			PaymentMethodID:  domain.PaymentMethodID(r.PaymentMethodID),
			AmountPaid:       r.AmountPaid,
			PaymentReference: r.PaymentReference,
			ProofKey:         r.ProofKey,
		}
		if r.ProofKey != "" {
			payments[i].ProofPath = proofPaths[r.ProofKey]
		}
	}
	return payments
}

// ToDocumentResponse converts an issued document, or nil.
func ToDocumentResponse(d *domain.IssuedDocument) *DocumentResponse {
	if d == nil {
		return nil
	}
	return &DocumentResponse{
		DocumentID:       d.DocumentID,
		DocumentTypeCode: d.DocumentTypeCode,
		Series:           d.Series,
		Sequence:         d.Sequence,
		Number:           d.Number(),
		IssueDate:        d.IssueDate,
		Status:           d.Status,
	}
}

// ToSaleResponse converts a domain sale.
func ToSaleResponse(s *domain.Sale) SaleResponse {
	payments := make([]SalePaymentResponse, len(s.Payments))
	for i, p := range s.Payments {
		payments[i] = SalePaymentResponse{
			PaymentMethodID:  int(p.PaymentMethodID),
			AmountPaid:       p.AmountPaid,
			PaymentReference: p.PaymentReference,
		}
	}
	return SaleResponse{
		SaleID:         s.SaleID,
		ClientID:       s.ClientID,
		SaleStatus:     string(s.Status),
		SubtotalAmount: s.SubtotalAmount,
		TaxAmount:      s.TaxAmount,
		TotalAmount:    s.TotalAmount,
		Items:          s.Items,
		Payments:       payments,
		Document:       ToDocumentResponse(s.Document),
		CreatedAt:      s.CreatedAt,
	}
}

// ToSaleResponses converts a slice of domain sales.
func ToSaleResponses(sales []domain.Sale) []SaleResponse {
	responses := make([]SaleResponse, len(sales))
	for i := range sales {
		responses[i] = ToSaleResponse(&sales[i])
	}
	return responses
}
