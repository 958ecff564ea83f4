package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/comerzia/comerzia_backend/internal/apperrors"
	"github.com/comerzia/comerzia_backend/internal/core/domain"
	portsrepo "github.com/comerzia/comerzia_backend/internal/core/ports/repositories"
)

type PgxClientRepository struct {
	pool *pgxpool.Pool
}

// NewPgxClientRepository creates a new repository for client data.
func NewPgxClientRepository(pool *pgxpool.Pool) portsrepo.ClientRepository {
	return &PgxClientRepository{pool: pool}
}

const clientSelect = `
	SELECT client_id, document_type, document_number, first_name, last_name, business_name, is_active, created_at, created_by, last_updated_at, last_updated_by
	FROM clients
`

// FindClientByID retrieves a client by its ID.
func (r *PgxClientRepository) FindClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	query := clientSelect + ` WHERE client_id = $1;`
	client, err := scanClient(r.pool.QueryRow(ctx, query, clientID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find client by ID %s: %w", clientID, err)
	}
	return client, nil
}

// ListClients retrieves clients, optionally restricted to active ones.
func (r *PgxClientRepository) ListClients(ctx context.Context, activeOnly bool) ([]domain.Client, error) {
	query := clientSelect
	if activeOnly {
		query += ` WHERE is_active`
	}
	query += ` ORDER BY business_name, last_name, first_name;`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query clients: %w", err)
	}
	defer rows.Close()

	clients := []domain.Client{}
	for rows.Next() {
		client, err := scanClient(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan client row: %w", err)
		}
		clients = append(clients, *client)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating client rows: %w", err)
	}
	return clients, nil
}

func scanClient(row pgx.Row) (*domain.Client, error) {
	var client domain.Client
	if err := row.Scan(
		&client.ClientID,
		&client.DocumentType,
		&client.DocumentNumber,
		&client.FirstName,
		&client.LastName,
		&client.BusinessName,
		&client.IsActive,
		&client.CreatedAt,
		&client.CreatedBy,
		&client.LastUpdatedAt,
		&client.LastUpdatedBy,
	); err != nil {
		return nil, err
	}
	return &client, nil
}
