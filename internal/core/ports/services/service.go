package services

// ServiceContainer holds instances of all the application services. Handlers
// receive this container and depend only on the facades.
type ServiceContainer struct {
	Sale    SaleSvcFacade
	Note    NoteSvcFacade
	Series  SeriesSvcFacade
	Catalog CatalogSvcFacade
	Client  ClientSvcFacade
}
