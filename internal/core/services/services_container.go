package services

import (
	portsrepo "github.com/comerzia/comerzia_backend/internal/core/ports/repositories"
	portssvc "github.com/comerzia/comerzia_backend/internal/core/ports/services"
)

// NewServiceContainer wires all application services from the repository
// provider and the quotation renderer.
func NewServiceContainer(repos *portsrepo.RepositoryProvider, renderer portssvc.QuotationRenderer) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Sale:    NewSaleService(repos.Sale, repos.Series, repos.Client, renderer),
		Note:    NewNoteService(repos.Note, repos.Sale, repos.Series),
		Series:  NewSeriesService(repos.Series),
		Catalog: NewCatalogService(repos.Catalog),
		Client:  NewClientService(repos.Client),
	}
}
