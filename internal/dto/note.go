package dto

import (
	"time"

	"github.com/comerzia/comerzia_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateNoteRequest is the submission payload for a credit/debit note.
type CreateNoteRequest struct {
	SaleID             string            `json:"saleID" binding:"required"`
	OriginalDocumentID string            `json:"originalDocumentID" binding:"required"`
	NoteTypeCode       string            `json:"noteTypeCode" binding:"required"`
	Reason             string            `json:"reason" binding:"required"`
	DocumentSeriesID   string            `json:"documentSeriesID" binding:"required"`
	Items              []SaleItemRequest `json:"items" binding:"required,min=1,dive"`
}

// NoteResponse is the listing/detail representation of a note.
type NoteResponse struct {
	NoteID             string            `json:"noteID"`
	SaleID             string            `json:"saleID"`
	OriginalDocumentID string            `json:"originalDocumentID"`
	NoteTypeCode       string            `json:"noteTypeCode"`
	Reason             string            `json:"reason"`
	SubtotalAmount     decimal.Decimal   `json:"subtotalAmount"`
	TaxAmount          decimal.Decimal   `json:"taxAmount"`
	TotalAmount        decimal.Decimal   `json:"totalAmount"`
	Items              []domain.LineItem `json:"items"`
	Document           *DocumentResponse `json:"document,omitempty"`
	CreatedAt          time.Time         `json:"createdAt"`
}

// NoteTypeResponse is one entry of the note type catalog.
type NoteTypeResponse struct {
	Code         string `json:"code"`
	Name         string `json:"name"`
	NoteCategory string `json:"noteCategory"`
}

// ToNoteResponse converts a domain note.
func ToNoteResponse(n *domain.Note) NoteResponse {
	return NoteResponse{
		NoteID:             n.NoteID,
		SaleID:             n.SaleID,
		OriginalDocumentID: n.OriginalDocumentID,
		NoteTypeCode:       n.NoteTypeCode,
		Reason:             n.Reason,
		SubtotalAmount:     n.SubtotalAmount,
		TaxAmount:          n.TaxAmount,
		TotalAmount:        n.TotalAmount,
		Items:              n.Items,
		Document:           ToDocumentResponse(n.Document),
		CreatedAt:          n.CreatedAt,
	}
}

// ToNoteResponses converts a slice of domain notes.
func ToNoteResponses(notes []domain.Note) []NoteResponse {
	responses := make([]NoteResponse, len(notes))
	for i := range notes {
		responses[i] = ToNoteResponse(&notes[i])
	}
	return responses
}

// ToNoteTypeResponses converts the note type catalog.
func ToNoteTypeResponses(types []domain.NoteType) []NoteTypeResponse {
	responses := make([]NoteTypeResponse, len(types))
	for i, t := range types {
		responses[i] = NoteTypeResponse{
			Code:         t.Code,
			Name:         t.Name,
			NoteCategory: string(t.Category),
		}
	}
	return responses
}
