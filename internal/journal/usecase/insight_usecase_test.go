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

// fakeInsightRepo is an in-memory InsightRepository for tests
type fakeInsightRepo struct {
	insights []*journaldomain.Insight
	nextID   int
}

func (r *fakeInsightRepo) Create(insight *journaldomain.Insight) error {
	if insight.ID == "" {
		r.nextID++
		insight.ID = fmt.Sprintf("insight-%d", r.nextID)
	}
	insight.CreatedAt = time.Now()
	r.insights = append(r.insights, insight)
	return nil
}

func (r *fakeInsightRepo) FindRecentByUser(userID string, limit int) ([]*journaldomain.Insight, error) {
	if limit <= 0 {
		limit = 10
	}
	var out []*journaldomain.Insight
	for _, i := range r.insights {
		if i.UserID == userID {
			out = append(out, i)
		}
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeInsightRepo) MarkViewed(id, userID string) (bool, error) {
	for _, i := range r.insights {
		if i.ID == id && i.UserID == userID {
			i.Viewed = true
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeInsightRepo) CountSince(userID string, since time.Time) (int64, error) {
	var n int64
	for _, i := range r.insights {
		if i.UserID == userID && !i.CreatedAt.Before(since) {
			n++
		}
	}
	return n, nil
}

func seedEntries(repo *fakeEntryRepo, userID string, n int) {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		repo.Create(&journaldomain.JournalEntry{
			UserID:    userID,
			Content:   fmt.Sprintf("entry %d", i),
			Mood:      journaldomain.MoodNeutral,
			CreatedAt: base.AddDate(0, 0, i),
		})
	}
}

func TestGenerateInsightsNeedsHistory(t *testing.T) {
	entryRepo := &fakeEntryRepo{}
	insightRepo := &fakeInsightRepo{}
	enricher := &stubEnrichment{insights: []ai.InsightDraft{{Type: "trend", Title: "t", Description: "d"}}}
	uc := NewInsightUsecase(insightRepo, entryRepo, enricher)

	seedEntries(entryRepo, "user-1", 2)

	insights, err := uc.GenerateInsights(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("GenerateInsights failed: %v", err)
	}
	if len(insights) != 0 {
		t.Fatalf("got %d insights with only 2 entries, want 0", len(insights))
	}
	if enricher.insightCalls != 0 {
		t.Fatalf("insight generation ran with too little history")
	}
}

func TestGenerateInsightsPersistsDrafts(t *testing.T) {
	entryRepo := &fakeEntryRepo{}
	insightRepo := &fakeInsightRepo{}
	enricher := &stubEnrichment{insights: []ai.InsightDraft{
		{Type: "pattern", Title: "Evening writer", Description: "Most entries happen after 8pm", Confidence: 0.7},
		{Type: "trend", Title: "Mood climbing", Description: "Average mood rose this week", Confidence: 0.6},
	}}
	uc := NewInsightUsecase(insightRepo, entryRepo, enricher)

	seedEntries(entryRepo, "user-1", 5)

	insights, err := uc.GenerateInsights(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("GenerateInsights failed: %v", err)
	}
	if len(insights) != 2 {
		t.Fatalf("got %d insights, want 2", len(insights))
	}
	if len(insightRepo.insights) != 2 {
		t.Fatalf("insights were not persisted")
	}

	first := insights[0]
	if first.PeriodStart == nil || first.PeriodEnd == nil {
		t.Fatal("insight period was not set")
	}
	if !first.PeriodStart.Before(*first.PeriodEnd) {
		t.Fatalf("period start %v is not before end %v", first.PeriodStart, first.PeriodEnd)
	}
	if first.Type != "pattern" || first.Confidence != 0.7 {
		t.Fatalf("draft fields not carried over: %+v", first)
	}
}

func TestGenerateInsightsSwallowsProviderFailure(t *testing.T) {
	entryRepo := &fakeEntryRepo{}
	insightRepo := &fakeInsightRepo{}
	enricher := &stubEnrichment{err: errors.New("provider down")}
	uc := NewInsightUsecase(insightRepo, entryRepo, enricher)

	seedEntries(entryRepo, "user-1", 4)

	insights, err := uc.GenerateInsights(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("GenerateInsights must not fail on provider errors: %v", err)
	}
	if len(insights) != 0 {
		t.Fatalf("got %d insights from a failed provider, want 0", len(insights))
	}
}

func TestViewInsight(t *testing.T) {
	insightRepo := &fakeInsightRepo{}
	uc := NewInsightUsecase(insightRepo, &fakeEntryRepo{}, nil)

	insightRepo.Create(&journaldomain.Insight{UserID: "user-1", Type: "pattern", Title: "t", Description: "d"})

	if err := uc.ViewInsight("user-1", "insight-1"); err != nil {
		t.Fatalf("ViewInsight failed: %v", err)
	}
	if !insightRepo.insights[0].Viewed {
		t.Fatal("insight was not marked viewed")
	}

	if err := uc.ViewInsight("user-1", "no-such-id"); !errors.Is(err, ErrInsightNotFound) {
		t.Fatalf("got %v, want ErrInsightNotFound", err)
	}
}
