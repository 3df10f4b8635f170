package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	journaldomain "mindjournal-backend/internal/journal/domain"
	"mindjournal-backend/internal/journal/repository"
	"mindjournal-backend/pkg/ai"

	"gorm.io/datatypes"
)

// ErrInsightNotFound is returned when an insight does not exist or
// belongs to another user.
var ErrInsightNotFound = errors.New("insight not found")

// minEntriesForInsights is the minimum history needed before insight
// generation is attempted at all.
const minEntriesForInsights = 3

// InsightUsecase defines insight business logic
type InsightUsecase interface {
	// GenerateInsights analyzes the user's recent entries and persists
	// any insights found. With too little history or a failed provider
	// call it returns an empty list rather than an error.
	GenerateInsights(ctx context.Context, userID string) ([]*journaldomain.Insight, error)
	ListInsights(userID string, limit int) ([]*journaldomain.Insight, error)
	ViewInsight(userID, id string) error
}

type insightUsecase struct {
	insightRepo repository.InsightRepository
	entryRepo   repository.EntryRepository
	enrichment  ai.EnrichmentService
}

// NewInsightUsecase creates a new instance of insightUsecase
func NewInsightUsecase(insightRepo repository.InsightRepository, entryRepo repository.EntryRepository, enrichment ai.EnrichmentService) InsightUsecase {
	return &insightUsecase{
		insightRepo: insightRepo,
		entryRepo:   entryRepo,
		enrichment:  enrichment,
	}
}

func (u *insightUsecase) GenerateInsights(ctx context.Context, userID string) ([]*journaldomain.Insight, error) {
	entries, err := u.entryRepo.FindActiveByUser(userID, 20)
	if err != nil {
		return nil, err
	}

	if len(entries) < minEntriesForInsights {
		return []*journaldomain.Insight{}, nil
	}

	entryContexts := make([]ai.EntryContext, 0, len(entries))
	for _, entry := range entries {
		entryContexts = append(entryContexts, ai.EntryContext{
			CreatedAt: entry.CreatedAt,
			Mood:      entry.Mood,
			Content:   entry.Content,
		})
	}

	if u.enrichment == nil {
		return []*journaldomain.Insight{}, nil
	}

	drafts, err := u.enrichment.GenerateInsights(ctx, entryContexts)
	if err != nil {
		log.Printf("[Insight] Generation failed for user %s: %v", userID, err)
		return []*journaldomain.Insight{}, nil
	}

	// Entries come back newest first
	periodEnd := entries[0].CreatedAt
	periodStart := entries[len(entries)-1].CreatedAt

	data, _ := json.Marshal(map[string]interface{}{
		"entry_count": len(entries),
	})

	insights := make([]*journaldomain.Insight, 0, len(drafts))
	for _, draft := range drafts {
		insight := &journaldomain.Insight{
			UserID:      userID,
			Type:        draft.Type,
			Title:       draft.Title,
			Description: draft.Description,
			Data:        datatypes.JSON(data),
			Confidence:  draft.Confidence,
			PeriodStart: &periodStart,
			PeriodEnd:   &periodEnd,
		}
		if err := u.insightRepo.Create(insight); err != nil {
			return nil, err
		}
		insights = append(insights, insight)
	}

	return insights, nil
}

func (u *insightUsecase) ListInsights(userID string, limit int) ([]*journaldomain.Insight, error) {
	return u.insightRepo.FindRecentByUser(userID, limit)
}

func (u *insightUsecase) ViewInsight(userID, id string) error {
	viewed, err := u.insightRepo.MarkViewed(id, userID)
	if err != nil {
		return err
	}
	if !viewed {
		return ErrInsightNotFound
	}
	return nil
}
