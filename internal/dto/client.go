package dto

import "github.com/comerzia/comerzia_backend/internal/core/domain"

// ClientResponse is one buyer offered by the client picker.
type ClientResponse struct {
	ClientID       string `json:"clientID"`
	DocumentType   string `json:"documentType"`
	DocumentNumber string `json:"documentNumber"`
	FirstName      string `json:"firstName,omitempty"`
	LastName       string `json:"lastName,omitempty"`
	BusinessName   string `json:"businessName,omitempty"`
	DisplayName    string `json:"displayName"`
}

// ToClientResponse converts a domain client.
func ToClientResponse(c *domain.Client) ClientResponse {
	return ClientResponse{
		ClientID:       c.ClientID,
		DocumentType:   c.DocumentType,
		DocumentNumber: c.DocumentNumber,
		FirstName:      c.FirstName,
		LastName:       c.LastName,
		BusinessName:   c.BusinessName,
		DisplayName:    c.DisplayName(),
	}
}

// ToClientResponses converts a slice of domain clients.
func ToClientResponses(clients []domain.Client) []ClientResponse {
	responses := make([]ClientResponse, len(clients))
	for i := range clients {
		responses[i] = ToClientResponse(&clients[i])
	}
	return responses
}
