package delivery

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"mindjournal-backend/internal/journal/dto"
	"mindjournal-backend/internal/journal/usecase"

	"github.com/gin-gonic/gin"
)

// JournalHandler handles journal entry HTTP requests
type JournalHandler struct {
	journalUsecase usecase.JournalUsecase
}

// NewJournalHandler creates a new JournalHandler
func NewJournalHandler(journalUsecase usecase.JournalUsecase) *JournalHandler {
	return &JournalHandler{
		journalUsecase: journalUsecase,
	}
}

func userID(c *gin.Context) string {
	id, _ := c.Get("userID")
	s, _ := id.(string)
	return s
}

// CreateEntry creates a journal entry with AI enrichment
// POST /api/journal/entries
func (h *JournalHandler) CreateEntry(c *gin.Context) {
	var req dto.CreateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := h.journalUsecase.CreateEntry(c.Request.Context(), userID(c), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create entry"})
		return
	}

	c.JSON(http.StatusCreated, entry)
}

// ListEntries lists the user's active entries, newest first
// GET /api/journal/entries?limit=50
func (h *JournalHandler) ListEntries(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	entries, err := h.journalUsecase.ListEntries(userID(c), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list entries"})
		return
	}

	c.JSON(http.StatusOK, entries)
}

// GetEntry returns a single entry
// GET /api/journal/entries/:id
func (h *JournalHandler) GetEntry(c *gin.Context) {
	entry, err := h.journalUsecase.GetEntry(userID(c), c.Param("id"))
	if err != nil {
		if errors.Is(err, usecase.ErrEntryNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "entry not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get entry"})
		return
	}

	c.JSON(http.StatusOK, entry)
}

// UpdateEntry edits an entry, re-running enrichment when the content changed
// PUT /api/journal/entries/:id
func (h *JournalHandler) UpdateEntry(c *gin.Context) {
	var req dto.UpdateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := h.journalUsecase.UpdateEntry(c.Request.Context(), userID(c), c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, usecase.ErrEntryNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "entry not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update entry"})
		return
	}

	c.JSON(http.StatusOK, entry)
}

// ArchiveEntry soft-deletes an entry
// DELETE /api/journal/entries/:id
func (h *JournalHandler) ArchiveEntry(c *gin.Context) {
	err := h.journalUsecase.ArchiveEntry(c.Request.Context(), userID(c), c.Param("id"))
	if err != nil {
		if errors.Is(err, usecase.ErrEntryNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "entry not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to archive entry"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Entry archived successfully"})
}

// SearchEntries searches entry content, optionally filtered by themes
// GET /api/journal/search?q=work&themes=work,stress
func (h *JournalHandler) SearchEntries(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter q is required"})
		return
	}

	var themes []string
	if raw := c.Query("themes"); raw != "" {
		for _, t := range strings.Split(raw, ",") {
			if t = strings.TrimSpace(t); t != "" {
				themes = append(themes, t)
			}
		}
	}

	entries, err := h.journalUsecase.SearchEntries(userID(c), query, themes)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to search entries"})
		return
	}

	c.JSON(http.StatusOK, entries)
}

// SemanticSearch searches entries by embedding similarity
// POST /api/journal/search/semantic
func (h *JournalHandler) SemanticSearch(c *gin.Context) {
	var req dto.SemanticSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entries, err := h.journalUsecase.SemanticSearch(c.Request.Context(), userID(c), req.Query, req.Limit)
	if err != nil {
		if errors.Is(err, usecase.ErrSemanticUnavailable) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "semantic search is not configured"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to search entries"})
		return
	}

	c.JSON(http.StatusOK, entries)
}

// SearchSuggestions suggests search terms from recent titles and themes
// GET /api/journal/search/suggestions?q=wor
func (h *JournalHandler) SearchSuggestions(c *gin.Context) {
	suggestions, err := h.journalUsecase.SearchSuggestions(userID(c), c.Query("q"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get suggestions"})
		return
	}

	c.JSON(http.StatusOK, suggestions)
}
