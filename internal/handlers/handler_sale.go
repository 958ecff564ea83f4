package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	portssvc "github.com/comerzia/comerzia_backend/internal/core/ports/services"
	"github.com/comerzia/comerzia_backend/internal/dto"
	"github.com/comerzia/comerzia_backend/internal/middleware"
)

const proofKeyPrefix = "proof_"

// saleHandler handles HTTP requests related to sales.
type saleHandler struct {
	saleService portssvc.SaleSvcFacade
	uploadsDir  string
}

// newSaleHandler creates a new saleHandler.
func newSaleHandler(saleService portssvc.SaleSvcFacade, uploadsDir string) *saleHandler {
	return &saleHandler{
		saleService: saleService,
		uploadsDir:  uploadsDir,
	}
}

// createSale godoc
// @Summary Create a sale
// @Description Saves a draft or finalizes a sale. Multipart submissions carry a "data" JSON field plus payment proof files keyed by proofKey.
// @Tags sales
// @Accept  mpfd
// @Accept  json
// @Produce json
// @Param   data formData string true "CreateSaleRequest JSON"
// @Success 201 {object} dto.SaleResponse
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 500 {object} map[string]string "Failed to create sale"
// @Router /sales [post]
func (h *saleHandler) createSale(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	req, proofPaths, err := h.bindSaleSubmission(c)
	if err != nil {
		logger.Error("Failed to bind sale submission", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	sale, err := h.saleService.CreateSale(c.Request.Context(), req, proofPaths, actorFrom(c))
	if err != nil {
		respondError(c, logger, err, "Failed to create sale")
		return
	}

	c.JSON(http.StatusCreated, dto.ToSaleResponse(sale))
}

// updateDraft godoc
// @Summary Update a draft sale
// @Description Replaces the client and items of an existing draft.
// @Tags sales
// @Accept  json
// @Produce json
// @Param   saleID path string true "Sale ID"
// @Param   sale body dto.CreateSaleRequest true "Draft content"
// @Success 200 {object} dto.SaleResponse
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 404 {object} map[string]string "Sale not found"
// @Failure 409 {object} map[string]string "Sale is not a draft"
// @Router /sales/{saleID}/draft [put]
func (h *saleHandler) updateDraft(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	saleID := c.Param("saleID")

	var req dto.CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for updateDraft", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	sale, err := h.saleService.UpdateDraft(c.Request.Context(), saleID, req, actorFrom(c))
	if err != nil {
		respondError(c, logger, err, "Failed to update draft")
		return
	}

	c.JSON(http.StatusOK, dto.ToSaleResponse(sale))
}

// getSale godoc
// @Summary Get a sale
// @Description Retrieves a sale with its items, payments and document.
// @Tags sales
// @Produce json
// @Param   saleID path string true "Sale ID"
// @Success 200 {object} dto.SaleResponse
// @Failure 404 {object} map[string]string "Sale not found"
// @Router /sales/{saleID} [get]
func (h *saleHandler) getSale(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	saleID := c.Param("saleID")

	sale, err := h.saleService.GetSaleByID(c.Request.Context(), saleID)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve sale")
		return
	}

	c.JSON(http.StatusOK, dto.ToSaleResponse(sale))
}

// listSales godoc
// @Summary List sales
// @Description Lists sales matching the optional filters, newest first.
// @Tags sales
// @Produce json
// @Param   id query string false "Sale ID"
// @Param   clientId query string false "Client ID"
// @Param   saleStatus query string false "Sale status (DRAFT or ISSUED)"
// @Param   startDate query string false "Creation date lower bound (RFC 3339)"
// @Param   endDate query string false "Creation date upper bound (RFC 3339)"
// @Success 200 {array} dto.SaleResponse
// @Failure 500 {object} map[string]string "Failed to list sales"
// @Router /sales [get]
func (h *saleHandler) listSales(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	filter := dto.SaleFilter{
		SaleID:     c.Query("id"),
		ClientID:   c.Query("clientId"),
		SaleStatus: c.Query("saleStatus"),
	}
	if v := c.Query("startDate"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid startDate"})
			return
		}
		filter.StartDate = &t
	}
	if v := c.Query("endDate"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid endDate"})
			return
		}
		filter.EndDate = &t
	}

	sales, err := h.saleService.ListSales(c.Request.Context(), filter)
	if err != nil {
		respondError(c, logger, err, "Failed to list sales")
		return
	}

	c.JSON(http.StatusOK, dto.ToSaleResponses(sales))
}

// generateQuotation godoc
// @Summary Generate a quotation PDF
// @Description Validates the composition and returns a rendered PDF. Nothing is persisted.
// @Tags sales
// @Accept  json
// @Produce application/pdf
// @Param   quotation body dto.QuotationRequest true "Quotation content"
// @Success 200 {file} binary
// @Failure 400 {object} map[string]string "Invalid request"
// @Router /sales/quotation [post]
func (h *saleHandler) generateQuotation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.QuotationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for generateQuotation", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	pdf, err := h.saleService.GenerateQuotation(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to generate quotation")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="quotation.pdf"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// bindSaleSubmission decodes a sale submission. Multipart requests carry the
// payload in a "data" field plus proof files keyed proof_<index>_<unixms>;
// plain JSON bodies (drafts have no files) bind directly.
func (h *saleHandler) bindSaleSubmission(c *gin.Context) (dto.CreateSaleRequest, map[string]string, error) {
	var req dto.CreateSaleRequest

	if !strings.HasPrefix(c.ContentType(), "multipart/") {
		err := c.ShouldBindJSON(&req)
		return req, nil, err
	}

	form, err := c.MultipartForm()
	if err != nil {
		return req, nil, err
	}
	if err := json.Unmarshal([]byte(c.PostForm("data")), &req); err != nil {
		return req, nil, err
	}

	proofPaths := map[string]string{}
	for key, files := range form.File {
		if !strings.HasPrefix(key, proofKeyPrefix) || len(files) == 0 {
			continue
		}
		file := files[0]
		dst := filepath.Join(h.uploadsDir, uuid.NewString()+filepath.Ext(file.Filename))
		if err := c.SaveUploadedFile(file, dst); err != nil {
			return req, nil, err
		}
		proofPaths[key] = dst
	}
	return req, proofPaths, nil
}

// registerSaleRoutes registers sale specific routes.
func registerSaleRoutes(group *gin.RouterGroup, saleService portssvc.SaleSvcFacade, uploadsDir string) {
	h := newSaleHandler(saleService, uploadsDir)

	sales := group.Group("/sales")
	{
		sales.GET("", h.listSales)
		sales.POST("", h.createSale)
		sales.POST("/quotation", h.generateQuotation)
		sales.GET("/:saleID", h.getSale)
		sales.PUT("/:saleID/draft", h.updateDraft)
	}
}
