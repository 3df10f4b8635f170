package api

import (
	"log"

	analyticsDelivery "mindjournal-backend/internal/analytics/delivery"
	analyticsUsecasePkg "mindjournal-backend/internal/analytics/usecase"
	authUsecase "mindjournal-backend/internal/auth/usecase"
	journalDelivery "mindjournal-backend/internal/journal/delivery"
	journalRepo "mindjournal-backend/internal/journal/repository"
	journalUsecasePkg "mindjournal-backend/internal/journal/usecase"
	"mindjournal-backend/pkg/ai"
	"mindjournal-backend/pkg/chroma"
	"mindjournal-backend/pkg/config"
	"mindjournal-backend/pkg/gemini"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	authUsecase      authUsecase.AuthUsecase
	config           *config.Config
	journalHandler   *journalDelivery.JournalHandler
	promptHandler    *journalDelivery.PromptHandler
	insightHandler   *journalDelivery.InsightHandler
	analyticsHandler *analyticsDelivery.AnalyticsHandler
}

// newEnrichmentService builds the AI provider chain from config. The
// Ollama side reads its settings through runtime getters so updates via
// the settings API take effect immediately.
func newEnrichmentService(cfg *config.Config) ai.EnrichmentService {
	ollamaService := ai.NewOllamaServiceWithGetters(GetRuntimeOllamaBaseURL, GetRuntimeOllamaModel)

	switch ai.ProviderType(cfg.AIProvider) {
	case ai.ProviderOllama:
		return ollamaService
	case ai.ProviderGemini:
		if cfg.GeminiApiKey == "" {
			log.Println("Warning: GEMINI_API_KEY not set, AI enrichment disabled")
			return nil
		}
		return gemini.NewGeminiService(cfg.GeminiApiKey)
	default:
		// auto: Gemini first with Ollama fallback
		if cfg.GeminiApiKey == "" {
			log.Println("Warning: GEMINI_API_KEY not set, using Ollama only")
			return ollamaService
		}
		return ai.NewFallbackService(gemini.NewGeminiService(cfg.GeminiApiKey), ollamaService)
	}
}

func NewHandler(authUc authUsecase.AuthUsecase, cfg *config.Config, entryRepo journalRepo.EntryRepository, promptRepo journalRepo.PromptRepository, insightRepo journalRepo.InsightRepository) *Handler {
	// Initialize runtime config for settings API
	InitRuntimeConfig(cfg.OllamaBaseURL, cfg.OllamaModel)

	enrichment := newEnrichmentService(cfg)
	if enrichment != nil {
		log.Printf("AI enrichment service initialized with provider: %s", cfg.AIProvider)
	}

	// Initialize Chroma client for semantic search
	var vector journalUsecasePkg.VectorSearchService
	if cfg.ChromaAPIKey != "" {
		chromaClient, err := chroma.NewChromaClient(cfg)
		if err != nil {
			log.Printf("Warning: Failed to initialize Chroma client: %v. Semantic search will not be available.", err)
		} else {
			vector = chromaClient
			log.Println("Chroma client initialized successfully")
		}
	} else {
		log.Println("Warning: CHROMA_API_KEY not set. Semantic search will not be available.")
	}

	// Initialize use cases (dependency injection)
	journalUc := journalUsecasePkg.NewJournalUsecase(entryRepo, enrichment, vector)
	promptUc := journalUsecasePkg.NewPromptUsecase(promptRepo, entryRepo, enrichment)
	insightUc := journalUsecasePkg.NewInsightUsecase(insightRepo, entryRepo, enrichment)
	analyticsUc := analyticsUsecasePkg.NewAnalyticsUsecase(entryRepo, insightRepo)

	return &Handler{
		authUsecase:      authUc,
		config:           cfg,
		journalHandler:   journalDelivery.NewJournalHandler(journalUc),
		promptHandler:    journalDelivery.NewPromptHandler(promptUc),
		insightHandler:   journalDelivery.NewInsightHandler(insightUc),
		analyticsHandler: analyticsDelivery.NewAnalyticsHandler(analyticsUc),
	}
}

func (h *Handler) Start(addr string) error {
	r := gin.Default()
	gin.SetMode(gin.ReleaseMode)

	// CORS middleware
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Setup routes
	SetupRoutes(r, h.authUsecase, h.journalHandler, h.promptHandler, h.insightHandler, h.analyticsHandler)

	return r.Run(addr)
}
