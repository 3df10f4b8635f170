package delivery

import (
	"errors"
	"net/http"
	"strconv"

	"mindjournal-backend/internal/journal/usecase"

	"github.com/gin-gonic/gin"
)

// InsightHandler handles insight HTTP requests
type InsightHandler struct {
	insightUsecase usecase.InsightUsecase
}

// NewInsightHandler creates a new InsightHandler
func NewInsightHandler(insightUsecase usecase.InsightUsecase) *InsightHandler {
	return &InsightHandler{
		insightUsecase: insightUsecase,
	}
}

// GenerateInsights analyzes recent entries and persists new insights
// POST /api/insights/generate
func (h *InsightHandler) GenerateInsights(c *gin.Context) {
	insights, err := h.insightUsecase.GenerateInsights(c.Request.Context(), userID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate insights"})
		return
	}

	c.JSON(http.StatusOK, insights)
}

// ListInsights lists the user's newest insights
// GET /api/insights?limit=10
func (h *InsightHandler) ListInsights(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	insights, err := h.insightUsecase.ListInsights(userID(c), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list insights"})
		return
	}

	c.JSON(http.StatusOK, insights)
}

// ViewInsight marks an insight as viewed
// POST /api/insights/:id/view
func (h *InsightHandler) ViewInsight(c *gin.Context) {
	err := h.insightUsecase.ViewInsight(userID(c), c.Param("id"))
	if err != nil {
		if errors.Is(err, usecase.ErrInsightNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "insight not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to view insight"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Insight marked as viewed"})
}
