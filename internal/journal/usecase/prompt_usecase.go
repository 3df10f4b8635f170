package usecase

import (
	"context"
	"errors"
	"log"

	journaldomain "mindjournal-backend/internal/journal/domain"
	"mindjournal-backend/internal/journal/repository"
	"mindjournal-backend/pkg/ai"
)

// ErrPromptNotFound is returned when a prompt does not exist or belongs
// to another user.
var ErrPromptNotFound = errors.New("prompt not found")

// PromptUsecase defines writing prompt business logic
type PromptUsecase interface {
	// CurrentPrompt returns the latest unused prompt, generating one
	// lazily when the user has none.
	CurrentPrompt(ctx context.Context, userID string) (*journaldomain.AiPrompt, error)
	GeneratePrompt(ctx context.Context, userID, userContext string) (*journaldomain.AiPrompt, error)
	UsePrompt(userID, id string) error
}

type promptUsecase struct {
	promptRepo repository.PromptRepository
	entryRepo  repository.EntryRepository
	enrichment ai.EnrichmentService
}

// NewPromptUsecase creates a new instance of promptUsecase
func NewPromptUsecase(promptRepo repository.PromptRepository, entryRepo repository.EntryRepository, enrichment ai.EnrichmentService) PromptUsecase {
	return &promptUsecase{
		promptRepo: promptRepo,
		entryRepo:  entryRepo,
		enrichment: enrichment,
	}
}

func (u *promptUsecase) CurrentPrompt(ctx context.Context, userID string) (*journaldomain.AiPrompt, error) {
	prompt, err := u.promptRepo.FindLatestUnused(userID)
	if err != nil {
		return nil, err
	}
	if prompt != nil {
		return prompt, nil
	}
	return u.GeneratePrompt(ctx, userID, "")
}

func (u *promptUsecase) GeneratePrompt(ctx context.Context, userID, userContext string) (*journaldomain.AiPrompt, error) {
	recent, err := u.entryRepo.FindActiveByUser(userID, 5)
	if err != nil {
		return nil, err
	}

	entryContexts := make([]ai.EntryContext, 0, len(recent))
	for _, entry := range recent {
		entryContexts = append(entryContexts, ai.EntryContext{
			CreatedAt: entry.CreatedAt,
			Mood:      entry.Mood,
			Content:   entry.Content,
		})
	}

	// Prompt generation is best-effort: a failed provider call falls
	// back to the default empathetic prompt instead of erroring out.
	generated := ai.FallbackPrompt
	if u.enrichment != nil {
		result, err := u.enrichment.GeneratePrompt(ctx, entryContexts, userContext)
		if err != nil {
			log.Printf("[Prompt] Generation failed, using fallback prompt: %v", err)
		} else {
			generated = result
		}
	}

	prompt := &journaldomain.AiPrompt{
		UserID:  userID,
		Prompt:  generated.Prompt,
		Context: generated.Context,
	}
	if err := u.promptRepo.Create(prompt); err != nil {
		return nil, err
	}

	return prompt, nil
}

func (u *promptUsecase) UsePrompt(userID, id string) error {
	used, err := u.promptRepo.MarkUsed(id, userID)
	if err != nil {
		return err
	}
	if !used {
		return ErrPromptNotFound
	}
	return nil
}
