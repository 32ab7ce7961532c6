package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pageza/fittrack/backend/internal/middleware"
	"github.com/pageza/fittrack/backend/internal/service"
	"github.com/pageza/fittrack/backend/internal/types"
)

// JournalHandler serves the food and workout journal.
type JournalHandler struct {
	journal service.IJournalService
}

func NewJournalHandler(journal service.IJournalService) *JournalHandler {
	return &JournalHandler{journal: journal}
}

func (h *JournalHandler) RegisterRoutes(router *gin.RouterGroup) {
	journal := router.Group("/journal")
	{
		journal.POST("", h.CreateEntry)
		journal.GET("", h.ListEntries)
		journal.GET("/summary", h.Summary)
		journal.DELETE("/:id", h.DeleteEntry)
	}
}

func (h *JournalHandler) CreateEntry(c *gin.Context) {
	var req types.CreateJournalEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c, err)
		return
	}

	entry, err := h.journal.CreateEntry(c.Request.Context(), middleware.UserID(c), &req)
	if err != nil {
		respondError(c, err, "failed to create journal entry")
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// ListEntries returns the caller's entries grouped by day for ?period=.
func (h *JournalHandler) ListEntries(c *gin.Context) {
	days, err := h.journal.ListEntries(c.Request.Context(), middleware.UserID(c), c.Query("period"))
	if err != nil {
		respondError(c, err, "failed to list journal entries")
		return
	}
	c.JSON(http.StatusOK, days)
}

func (h *JournalHandler) Summary(c *gin.Context) {
	summary, err := h.journal.Summary(c.Request.Context(), middleware.UserID(c), c.Query("period"))
	if err != nil {
		respondError(c, err, "failed to summarize journal")
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *JournalHandler) DeleteEntry(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid entry id"})
		return
	}

	if err := h.journal.DeleteEntry(c.Request.Context(), middleware.UserID(c), id); err != nil {
		respondError(c, err, "failed to delete journal entry")
		return
	}
	c.Status(http.StatusNoContent)
}
