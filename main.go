package main

import (
	"log"
	"os"

	api "mindjournal-backend/cmd/api"
	authdomain "mindjournal-backend/internal/auth/domain"
	authRepo "mindjournal-backend/internal/auth/repository"
	authUsecase "mindjournal-backend/internal/auth/usecase"
	journaldomain "mindjournal-backend/internal/journal/domain"
	journalRepo "mindjournal-backend/internal/journal/repository"
	"mindjournal-backend/pkg/config"
	"mindjournal-backend/pkg/database"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(&authdomain.User{}, &authdomain.RefreshToken{}, &journaldomain.JournalEntry{}, &journaldomain.AiPrompt{}, &journaldomain.Insight{}); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize repositories (dependency injection)
	userRepo := authRepo.NewUserRepository(db)
	entryRepo := journalRepo.NewEntryRepository(db)
	promptRepo := journalRepo.NewPromptRepository(db)
	insightRepo := journalRepo.NewInsightRepository(db)

	// Initialize use cases (dependency injection)
	authUsecaseInstance := authUsecase.NewAuthUsecase(userRepo, cfg)

	// Initialize HTTP handler
	handler := api.NewHandler(authUsecaseInstance, cfg, entryRepo, promptRepo, insightRepo)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Port
	}
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	if err := handler.Start(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
