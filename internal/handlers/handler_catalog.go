package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/comerzia/comerzia_backend/internal/core/ports/services"
	"github.com/comerzia/comerzia_backend/internal/dto"
)

// catalogHandler handles HTTP requests for the sellable catalogs.
type catalogHandler struct {
	catalogService portssvc.CatalogSvcFacade
}

// newCatalogHandler creates a new catalogHandler.
func newCatalogHandler(catalogService portssvc.CatalogSvcFacade) *catalogHandler {
	return &catalogHandler{catalogService: catalogService}
}

// listProducts godoc
// @Summary List products
// @Description Lists active products, optionally filtered by substring over code, name and category.
// @Tags catalog
// @Produce json
// @Param   filter query string false "Filter text"
// @Success 200 {array} dto.CatalogEntryResponse
// @Router /products [get]
func (h *catalogHandler) listProducts(c *gin.Context) {
	entries := h.catalogService.ListProducts(c.Request.Context(), c.Query("filter"))
	c.JSON(http.StatusOK, dto.ToCatalogEntryResponses(entries))
}

// listServices godoc
// @Summary List services
// @Description Lists active services, optionally filtered by substring over code, name and category.
// @Tags catalog
// @Produce json
// @Param   filter query string false "Filter text"
// @Success 200 {array} dto.CatalogEntryResponse
// @Router /services [get]
func (h *catalogHandler) listServices(c *gin.Context) {
	entries := h.catalogService.ListServices(c.Request.Context(), c.Query("filter"))
	c.JSON(http.StatusOK, dto.ToCatalogEntryResponses(entries))
}

// registerCatalogRoutes registers catalog specific routes.
func registerCatalogRoutes(group *gin.RouterGroup, catalogService portssvc.CatalogSvcFacade) {
	h := newCatalogHandler(catalogService)
	group.GET("/products", h.listProducts)
	group.GET("/services", h.listServices)
}
