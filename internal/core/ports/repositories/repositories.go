package repositories

// RepositoryProvider aggregates all repository implementations handed to the
// service container.
type RepositoryProvider struct {
	Sale    SaleRepository
	Note    NoteRepository
	Series  SeriesRepository
	Catalog CatalogRepository
	Client  ClientRepository
}
