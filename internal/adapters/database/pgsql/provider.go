package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/comerzia/comerzia_backend/internal/core/ports/repositories"
)

// NewRepositoryProvider wires all pgx-backed repositories over one pool.
func NewRepositoryProvider(pool *pgxpool.Pool) *portsrepo.RepositoryProvider {
	return &portsrepo.RepositoryProvider{
		Sale:    NewPgxSaleRepository(pool),
		Note:    NewPgxNoteRepository(pool),
		Series:  NewPgxSeriesRepository(pool),
		Catalog: NewPgxCatalogRepository(pool),
		Client:  NewPgxClientRepository(pool),
	}
}
