package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	journaldomain "mindjournal-backend/internal/journal/domain"
	"mindjournal-backend/pkg/ai"
)

// fakePromptRepo is an in-memory PromptRepository for tests
type fakePromptRepo struct {
	prompts []*journaldomain.AiPrompt
	nextID  int
}

func (r *fakePromptRepo) Create(prompt *journaldomain.AiPrompt) error {
	if prompt.ID == "" {
		r.nextID++
		prompt.ID = fmt.Sprintf("prompt-%d", r.nextID)
	}
	prompt.CreatedAt = time.Now()
	r.prompts = append(r.prompts, prompt)
	return nil
}

func (r *fakePromptRepo) FindLatestUnused(userID string) (*journaldomain.AiPrompt, error) {
	var latest *journaldomain.AiPrompt
	for _, p := range r.prompts {
		if p.UserID != userID || p.Used {
			continue
		}
		if latest == nil || p.CreatedAt.After(latest.CreatedAt) {
			latest = p
		}
	}
	return latest, nil
}

func (r *fakePromptRepo) MarkUsed(id, userID string) (bool, error) {
	for _, p := range r.prompts {
		if p.ID == id && p.UserID == userID {
			p.Used = true
			return true, nil
		}
	}
	return false, nil
}

func TestCurrentPromptReturnsExistingUnused(t *testing.T) {
	promptRepo := &fakePromptRepo{}
	enricher := &stubEnrichment{prompt: ai.GeneratedPrompt{Prompt: "fresh", Context: "ctx"}}
	uc := NewPromptUsecase(promptRepo, &fakeEntryRepo{}, enricher)

	promptRepo.Create(&journaldomain.AiPrompt{UserID: "user-1", Prompt: "existing"})

	prompt, err := uc.CurrentPrompt(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("CurrentPrompt failed: %v", err)
	}
	if prompt.Prompt != "existing" {
		t.Fatalf("got %q, want the existing unused prompt", prompt.Prompt)
	}
	if enricher.promptCalls != 0 {
		t.Fatalf("prompt generation ran %d times, want 0", enricher.promptCalls)
	}
}

func TestCurrentPromptGeneratesLazily(t *testing.T) {
	promptRepo := &fakePromptRepo{}
	enricher := &stubEnrichment{prompt: ai.GeneratedPrompt{Prompt: "What made you smile today?", Context: "recent positivity"}}
	uc := NewPromptUsecase(promptRepo, &fakeEntryRepo{}, enricher)

	prompt, err := uc.CurrentPrompt(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("CurrentPrompt failed: %v", err)
	}
	if prompt.Prompt != "What made you smile today?" {
		t.Fatalf("got %q, want generated prompt", prompt.Prompt)
	}
	if enricher.promptCalls != 1 {
		t.Fatalf("prompt generation ran %d times, want 1", enricher.promptCalls)
	}
	if len(promptRepo.prompts) != 1 {
		t.Fatalf("generated prompt was not persisted")
	}
}

func TestGeneratePromptFallsBackOnFailure(t *testing.T) {
	promptRepo := &fakePromptRepo{}
	enricher := &stubEnrichment{err: errors.New("provider down")}
	uc := NewPromptUsecase(promptRepo, &fakeEntryRepo{}, enricher)

	prompt, err := uc.GeneratePrompt(context.Background(), "user-1", "")
	if err != nil {
		t.Fatalf("GeneratePrompt must not fail on provider errors: %v", err)
	}
	if prompt.Prompt != ai.FallbackPrompt.Prompt {
		t.Fatalf("got %q, want the fallback prompt", prompt.Prompt)
	}
	if len(promptRepo.prompts) != 1 {
		t.Fatalf("fallback prompt was not persisted")
	}
}

func TestUsePrompt(t *testing.T) {
	promptRepo := &fakePromptRepo{}
	uc := NewPromptUsecase(promptRepo, &fakeEntryRepo{}, nil)

	promptRepo.Create(&journaldomain.AiPrompt{UserID: "user-1", Prompt: "p"})

	if err := uc.UsePrompt("user-1", "prompt-1"); err != nil {
		t.Fatalf("UsePrompt failed: %v", err)
	}
	if !promptRepo.prompts[0].Used {
		t.Fatal("prompt was not marked used")
	}

	if err := uc.UsePrompt("user-1", "no-such-id"); !errors.Is(err, ErrPromptNotFound) {
		t.Fatalf("got %v, want ErrPromptNotFound", err)
	}
	if err := uc.UsePrompt("user-2", "prompt-1"); !errors.Is(err, ErrPromptNotFound) {
		t.Fatalf("cross-user: got %v, want ErrPromptNotFound", err)
	}
}
