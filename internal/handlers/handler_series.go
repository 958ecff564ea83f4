package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/comerzia/comerzia_backend/internal/core/domain"
	portssvc "github.com/comerzia/comerzia_backend/internal/core/ports/services"
	"github.com/comerzia/comerzia_backend/internal/dto"
	"github.com/comerzia/comerzia_backend/internal/middleware"
)

// seriesHandler handles HTTP requests related to document series.
type seriesHandler struct {
	seriesService portssvc.SeriesSvcFacade
}

// newSeriesHandler creates a new seriesHandler.
func newSeriesHandler(seriesService portssvc.SeriesSvcFacade) *seriesHandler {
	return &seriesHandler{seriesService: seriesService}
}

// nextSequence godoc
// @Summary Preview the next document number
// @Description Returns the advisory next number of a series, selected either by documentTypeCode or by seriesId. The number is allocated only at submission.
// @Tags series
// @Produce json
// @Param   documentTypeCode query string false "Sale document type code (01 or 03)"
// @Param   seriesId query string false "Series ID"
// @Success 200 {object} dto.SeriesReservationResponse
// @Failure 400 {object} map[string]string "Missing selector"
// @Failure 404 {object} map[string]string "Series not found"
// @Router /document-series/next-sequence [get]
func (h *seriesHandler) nextSequence(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var (
		reservation domain.SeriesReservation
		err         error
	)
	switch {
	case c.Query("seriesId") != "":
		reservation, err = h.seriesService.PreviewBySeriesID(c.Request.Context(), c.Query("seriesId"))
	case c.Query("documentTypeCode") != "":
		reservation, err = h.seriesService.PreviewByDocumentType(c.Request.Context(), c.Query("documentTypeCode"))
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "documentTypeCode or seriesId is required"})
		return
	}
	if err != nil {
		respondError(c, logger, err, "Failed to preview series")
		return
	}

	c.JSON(http.StatusOK, dto.ToSeriesReservationResponse(reservation))
}

// registerSeriesRoutes registers series specific routes.
func registerSeriesRoutes(group *gin.RouterGroup, seriesService portssvc.SeriesSvcFacade) {
	h := newSeriesHandler(seriesService)
	group.GET("/document-series/next-sequence", h.nextSequence)
}
