package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/comerzia/comerzia_backend/internal/core/domain"
	portsrepo "github.com/comerzia/comerzia_backend/internal/core/ports/repositories"
)

type PgxCatalogRepository struct {
	pool *pgxpool.Pool
}

// NewPgxCatalogRepository creates a new repository for the sellable catalogs.
func NewPgxCatalogRepository(pool *pgxpool.Pool) portsrepo.CatalogRepository {
	return &PgxCatalogRepository{pool: pool}
}

// ListProducts retrieves the full product catalog.
func (r *PgxCatalogRepository) ListProducts(ctx context.Context) ([]domain.CatalogEntry, error) {
	query := `
		SELECT product_id, code, name, category_name, list_price, is_active, created_at, created_by, last_updated_at, last_updated_by
		FROM products
		ORDER BY name;
	`
	return r.listEntries(ctx, query, domain.ItemTypeProduct)
}

// ListServices retrieves the full service catalog.
func (r *PgxCatalogRepository) ListServices(ctx context.Context) ([]domain.CatalogEntry, error) {
	query := `
		SELECT service_id, code, name, category_name, list_price, is_active, created_at, created_by, last_updated_at, last_updated_by
		FROM services
		ORDER BY name;
	`
	return r.listEntries(ctx, query, domain.ItemTypeService)
}

func (r *PgxCatalogRepository) listEntries(ctx context.Context, query string, kind domain.ItemType) ([]domain.CatalogEntry, error) {
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s catalog: %w", kind, err)
	}
	defer rows.Close()

	entries := []domain.CatalogEntry{}
	for rows.Next() {
		entry, err := scanCatalogEntry(rows, kind)
		if err != nil {
			return nil, fmt.Errorf("failed to scan %s catalog row: %w", kind, err)
		}
		entries = append(entries, *entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating %s catalog rows: %w", kind, err)
	}
	return entries, nil
}

func scanCatalogEntry(row pgx.Row, kind domain.ItemType) (*domain.CatalogEntry, error) {
	entry := domain.CatalogEntry{Kind: kind}
	if err := row.Scan(
		&entry.EntryID,
		&entry.Code,
		&entry.Name,
		&entry.CategoryName,
		&entry.ListPrice,
		&entry.IsActive,
		&entry.CreatedAt,
		&entry.CreatedBy,
		&entry.LastUpdatedAt,
		&entry.LastUpdatedBy,
	); err != nil {
		return nil, err
	}
	return &entry, nil
}
