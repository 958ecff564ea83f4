package services

import (
	"context"
	"fmt"

	"github.com/comerzia/comerzia_backend/internal/core/domain"
	portsrepo "github.com/comerzia/comerzia_backend/internal/core/ports/repositories"
	portssvc "github.com/comerzia/comerzia_backend/internal/core/ports/services"
)

// clientService serves the client picker of the composition form.
type clientService struct {
	clientRepo portsrepo.ClientRepository
}

// NewClientService creates a new ClientService.
func NewClientService(clientRepo portsrepo.ClientRepository) portssvc.ClientSvcFacade {
	return &clientService{clientRepo: clientRepo}
}

var _ portssvc.ClientSvcFacade = (*clientService)(nil)

// ListClients returns active clients for selection.
func (s *clientService) ListClients(ctx context.Context) ([]domain.Client, error) {
	clients, err := s.clientRepo.ListClients(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	return clients, nil
}

// GetClientByID returns a single client.
func (s *clientService) GetClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	client, err := s.clientRepo.FindClientByID(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to find client %s: %w", clientID, err)
	}
	return client, nil
}
