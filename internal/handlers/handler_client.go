package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/comerzia/comerzia_backend/internal/core/ports/services"
	"github.com/comerzia/comerzia_backend/internal/dto"
	"github.com/comerzia/comerzia_backend/internal/middleware"
)

// clientHandler handles HTTP requests for the client picker.
type clientHandler struct {
	clientService portssvc.ClientSvcFacade
}

// newClientHandler creates a new clientHandler.
func newClientHandler(clientService portssvc.ClientSvcFacade) *clientHandler {
	return &clientHandler{clientService: clientService}
}

// listClients godoc
// @Summary List clients
// @Description Lists active clients available for sale composition.
// @Tags clients
// @Produce json
// @Success 200 {array} dto.ClientResponse
// @Failure 500 {object} map[string]string "Failed to list clients"
// @Router /clients [get]
func (h *clientHandler) listClients(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	clients, err := h.clientService.ListClients(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list clients")
		return
	}

	c.JSON(http.StatusOK, dto.ToClientResponses(clients))
}

// getClient godoc
// @Summary Get a client
// @Description Retrieves a single client by ID.
// @Tags clients
// @Produce json
// @Param   clientID path string true "Client ID"
// @Success 200 {object} dto.ClientResponse
// @Failure 404 {object} map[string]string "Client not found"
// @Router /clients/{clientID} [get]
func (h *clientHandler) getClient(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	clientID := c.Param("clientID")

	client, err := h.clientService.GetClientByID(c.Request.Context(), clientID)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve client")
		return
	}

	c.JSON(http.StatusOK, dto.ToClientResponse(client))
}

// registerClientRoutes registers client specific routes.
func registerClientRoutes(group *gin.RouterGroup, clientService portssvc.ClientSvcFacade) {
	h := newClientHandler(clientService)

	clients := group.Group("/clients")
	{
		clients.GET("", h.listClients)
		clients.GET("/:clientID", h.getClient)
	}
}
