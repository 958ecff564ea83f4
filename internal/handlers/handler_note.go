package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/comerzia/comerzia_backend/internal/core/ports/services"
	"github.com/comerzia/comerzia_backend/internal/dto"
	"github.com/comerzia/comerzia_backend/internal/middleware"
)

// noteHandler handles HTTP requests related to credit/debit notes.
type noteHandler struct {
	noteService portssvc.NoteSvcFacade
}

// newNoteHandler creates a new noteHandler.
func newNoteHandler(noteService portssvc.NoteSvcFacade) *noteHandler {
	return &noteHandler{noteService: noteService}
}

// createNote godoc
// @Summary Create a credit/debit note
// @Description Issues a note against a previously issued sale, allocating its document number.
// @Tags notes
// @Accept  json
// @Produce json
// @Param   note body dto.CreateNoteRequest true "Note content"
// @Success 201 {object} dto.NoteResponse
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 404 {object} map[string]string "Sale or note type not found"
// @Router /credit-debit-notes [post]
func (h *noteHandler) createNote(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for createNote", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	note, err := h.noteService.CreateNote(c.Request.Context(), req, actorFrom(c))
	if err != nil {
		respondError(c, logger, err, "Failed to create note")
		return
	}

	c.JSON(http.StatusCreated, dto.ToNoteResponse(note))
}

// getNote godoc
// @Summary Get a note
// @Description Retrieves a note with its items and document.
// @Tags notes
// @Produce json
// @Param   noteID path string true "Note ID"
// @Success 200 {object} dto.NoteResponse
// @Failure 404 {object} map[string]string "Note not found"
// @Router /credit-debit-notes/{noteID} [get]
func (h *noteHandler) getNote(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	noteID := c.Param("noteID")

	note, err := h.noteService.GetNoteByID(c.Request.Context(), noteID)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve note")
		return
	}

	c.JSON(http.StatusOK, dto.ToNoteResponse(note))
}

// listNotes godoc
// @Summary List notes
// @Description Lists all issued notes, newest first.
// @Tags notes
// @Produce json
// @Success 200 {array} dto.NoteResponse
// @Failure 500 {object} map[string]string "Failed to list notes"
// @Router /credit-debit-notes [get]
func (h *noteHandler) listNotes(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	notes, err := h.noteService.ListNotes(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list notes")
		return
	}

	c.JSON(http.StatusOK, dto.ToNoteResponses(notes))
}

// listNoteTypes godoc
// @Summary List note types
// @Description Lists the active credit/debit note type catalog.
// @Tags notes
// @Produce json
// @Success 200 {array} dto.NoteTypeResponse
// @Failure 500 {object} map[string]string "Failed to list note types"
// @Router /credit-debit-note-types [get]
func (h *noteHandler) listNoteTypes(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	types, err := h.noteService.ListNoteTypes(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list note types")
		return
	}

	c.JSON(http.StatusOK, dto.ToNoteTypeResponses(types))
}

// registerNoteRoutes registers note specific routes.
func registerNoteRoutes(group *gin.RouterGroup, noteService portssvc.NoteSvcFacade) {
	h := newNoteHandler(noteService)

	notes := group.Group("/credit-debit-notes")
	{
		notes.GET("", h.listNotes)
		notes.POST("", h.createNote)
		notes.GET("/:noteID", h.getNote)
	}
	group.GET("/credit-debit-note-types", h.listNoteTypes)
}
