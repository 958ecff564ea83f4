package domain

import "strings"

// Client identity document types. RUC is the tax-id bearing type that routes
// a sale to the invoice series.
const (
	ClientDocumentTypeDNI = "DNI"
	ClientDocumentTypeRUC = "RUC"
)

// Client is the buyer a sale is composed against.
type Client struct {
	ClientID       string `json:"clientID"`
	DocumentType   string `json:"documentType"`
	DocumentNumber string `json:"documentNumber"`
	FirstName      string `json:"firstName,omitempty"`
	LastName       string `json:"lastName,omitempty"`
	BusinessName   string `json:"businessName,omitempty"`
	IsActive       bool   `json:"isActive"`
	AuditFields
}

// BearsTaxID reports whether the client's identity document carries a tax id.
func (c Client) BearsTaxID() bool {
	return c.DocumentType == ClientDocumentTypeRUC
}

// DisplayName returns the business name when present, else the personal name.
func (c Client) DisplayName() string {
	if c.BusinessName != "" {
		return c.BusinessName
	}
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}
