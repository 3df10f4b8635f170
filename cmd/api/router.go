package api

import (
	"net/http"

	analyticsDelivery "mindjournal-backend/internal/analytics/delivery"
	"mindjournal-backend/internal/auth/delivery"
	authUsecase "mindjournal-backend/internal/auth/usecase"
	journalDelivery "mindjournal-backend/internal/journal/delivery"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, authUsecase authUsecase.AuthUsecase, journalHandler *journalDelivery.JournalHandler, promptHandler *journalDelivery.PromptHandler, insightHandler *journalDelivery.InsightHandler, analyticsHandler *analyticsDelivery.AnalyticsHandler) {
	authHandler := delivery.NewAuthHandler(authUsecase)

	api := r.Group("/api")
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/google", authHandler.GoogleSignIn)
			auth.POST("/refresh", authHandler.RefreshToken)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/user", delivery.AuthMiddleware(authUsecase), authHandler.Me)
		}

		// Journal routes (protected)
		journal := api.Group("/journal")
		journal.Use(delivery.AuthMiddleware(authUsecase))
		{
			journal.POST("/entries", journalHandler.CreateEntry)
			journal.GET("/entries", journalHandler.ListEntries)
			journal.GET("/entries/:id", journalHandler.GetEntry)
			journal.PUT("/entries/:id", journalHandler.UpdateEntry)
			journal.DELETE("/entries/:id", journalHandler.ArchiveEntry)

			journal.GET("/search", journalHandler.SearchEntries)
			journal.POST("/search/semantic", journalHandler.SemanticSearch)
			journal.GET("/search/suggestions", journalHandler.SearchSuggestions)
		}

		// AI prompt routes (protected)
		prompts := api.Group("/ai/prompts")
		prompts.Use(delivery.AuthMiddleware(authUsecase))
		{
			prompts.GET("/current", promptHandler.CurrentPrompt)
			prompts.POST("/generate", promptHandler.GeneratePrompt)
			prompts.POST("/:id/use", promptHandler.UsePrompt)
		}

		// Insight routes (protected)
		insights := api.Group("/insights")
		insights.Use(delivery.AuthMiddleware(authUsecase))
		{
			insights.GET("", insightHandler.ListInsights)
			insights.POST("/generate", insightHandler.GenerateInsights)
			insights.POST("/:id/view", insightHandler.ViewInsight)
		}

		// Analytics routes (protected)
		analytics := api.Group("/analytics")
		analytics.Use(delivery.AuthMiddleware(authUsecase))
		{
			analytics.GET("/stats", analyticsHandler.GetUserStats)
			analytics.GET("/mood-trends", analyticsHandler.GetMoodTrends)
			analytics.GET("/themes", analyticsHandler.GetThemeAnalysis)
		}

		// Settings routes (public) - Runtime configuration
		settings := api.Group("/settings")
		{
			settings.GET("/ollama", GetOllamaSettings)
			settings.PUT("/ollama", UpdateOllamaSettings)
			settings.POST("/ollama/test", TestOllamaConnection)
		}
	}
}
