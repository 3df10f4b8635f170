package delivery

import (
	"net/http"
	"strconv"

	"mindjournal-backend/internal/analytics/usecase"

	"github.com/gin-gonic/gin"
)

// AnalyticsHandler handles analytics HTTP requests
type AnalyticsHandler struct {
	analyticsUsecase usecase.AnalyticsUsecase
}

// NewAnalyticsHandler creates a new AnalyticsHandler
func NewAnalyticsHandler(analyticsUsecase usecase.AnalyticsUsecase) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsUsecase: analyticsUsecase,
	}
}

func userID(c *gin.Context) string {
	id, _ := c.Get("userID")
	s, _ := id.(string)
	return s
}

// GetUserStats returns entry count, streak, average mood and weekly insights
// GET /api/analytics/stats
func (h *AnalyticsHandler) GetUserStats(c *gin.Context) {
	stats, err := h.analyticsUsecase.GetUserStats(userID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get stats"})
		return
	}

	c.JSON(http.StatusOK, stats)
}

// GetMoodTrends returns mood points over the trailing window
// GET /api/analytics/mood-trends?days=7
func (h *AnalyticsHandler) GetMoodTrends(c *gin.Context) {
	days, _ := strconv.Atoi(c.DefaultQuery("days", "7"))

	trends, err := h.analyticsUsecase.GetMoodTrends(userID(c), days)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get mood trends"})
		return
	}

	c.JSON(http.StatusOK, trends)
}

// GetThemeAnalysis returns the most frequent themes of the trailing window
// GET /api/analytics/themes?days=30
func (h *AnalyticsHandler) GetThemeAnalysis(c *gin.Context) {
	days, _ := strconv.Atoi(c.DefaultQuery("days", "30"))

	themes, err := h.analyticsUsecase.GetThemeAnalysis(userID(c), days)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get theme analysis"})
		return
	}

	c.JSON(http.StatusOK, themes)
}
