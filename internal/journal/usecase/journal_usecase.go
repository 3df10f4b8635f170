package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"

	journaldomain "mindjournal-backend/internal/journal/domain"
	"mindjournal-backend/internal/journal/dto"
	"mindjournal-backend/internal/journal/repository"
	"mindjournal-backend/pkg/ai"
	"mindjournal-backend/pkg/fuzzy"

	"github.com/lib/pq"
)

// ErrEntryNotFound is returned when an entry does not exist or belongs
// to another user.
var ErrEntryNotFound = errors.New("entry not found")

// VectorSearchService stores and queries entry embeddings. Wiring it is
// optional; without it semantic search returns ErrSemanticUnavailable.
type VectorSearchService interface {
	UpsertEntryEmbedding(ctx context.Context, entryID, userID, title, content string) error
	SemanticSearch(ctx context.Context, userID, query string, limit int) ([]string, []float64, error)
	DeleteEntryEmbedding(ctx context.Context, entryID string) error
}

// ErrSemanticUnavailable is returned when no vector search backend is configured
var ErrSemanticUnavailable = errors.New("semantic search is not configured")

// JournalUsecase defines journal entry business logic
type JournalUsecase interface {
	CreateEntry(ctx context.Context, userID string, req *dto.CreateEntryRequest) (*journaldomain.JournalEntry, error)
	GetEntry(userID, id string) (*journaldomain.JournalEntry, error)
	ListEntries(userID string, limit int) ([]*journaldomain.JournalEntry, error)
	UpdateEntry(ctx context.Context, userID, id string, req *dto.UpdateEntryRequest) (*journaldomain.JournalEntry, error)
	ArchiveEntry(ctx context.Context, userID, id string) error
	SearchEntries(userID, query string, themes []string) ([]*journaldomain.JournalEntry, error)
	SemanticSearch(ctx context.Context, userID, query string, limit int) ([]*journaldomain.JournalEntry, error)
	SearchSuggestions(userID, query string) ([]dto.SuggestionResponse, error)
}

type journalUsecase struct {
	entryRepo  repository.EntryRepository
	enrichment ai.EnrichmentService
	vector     VectorSearchService
}

// NewJournalUsecase creates a new instance of journalUsecase.
// vector may be nil when no embedding backend is configured.
func NewJournalUsecase(entryRepo repository.EntryRepository, enrichment ai.EnrichmentService, vector VectorSearchService) JournalUsecase {
	return &journalUsecase{
		entryRepo:  entryRepo,
		enrichment: enrichment,
		vector:     vector,
	}
}

// countWords counts whitespace-separated tokens of the trimmed content
func countWords(content string) int {
	return len(strings.Fields(strings.TrimSpace(content)))
}

// enrich runs sentiment analysis and theme extraction concurrently.
// Enrichment is best-effort: on failure the neutral sentiment and an
// empty theme list are substituted so the write itself never fails.
func (u *journalUsecase) enrich(ctx context.Context, content string) (ai.SentimentResult, []string) {
	sentiment := ai.NeutralSentiment
	themes := []string{}

	if u.enrichment == nil {
		return sentiment, themes
	}

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		result, err := u.enrichment.AnalyzeSentiment(ctx, content)
		if err != nil {
			log.Printf("[Journal] Sentiment analysis failed, using neutral default: %v", err)
			return
		}
		sentiment = result
	}()

	go func() {
		defer wg.Done()
		extracted, err := u.enrichment.ExtractThemes(ctx, content)
		if err != nil {
			log.Printf("[Journal] Theme extraction failed, using empty themes: %v", err)
			return
		}
		themes = extracted
	}()

	wg.Wait()
	return sentiment, themes
}

// indexEntry upserts the entry embedding, best-effort
func (u *journalUsecase) indexEntry(ctx context.Context, entry *journaldomain.JournalEntry) {
	if u.vector == nil {
		return
	}
	if err := u.vector.UpsertEntryEmbedding(ctx, entry.ID, entry.UserID, entry.Title, entry.Content); err != nil {
		log.Printf("[Journal] Failed to index entry %s: %v", entry.ID, err)
	}
}

func (u *journalUsecase) CreateEntry(ctx context.Context, userID string, req *dto.CreateEntryRequest) (*journaldomain.JournalEntry, error) {
	sentiment, themes := u.enrich(ctx, req.Content)

	entry := &journaldomain.JournalEntry{
		UserID:              userID,
		Title:               req.Title,
		Content:             req.Content,
		Mood:                req.Mood,
		SentimentScore:      sentiment.Rating,
		SentimentConfidence: sentiment.Confidence,
		Themes:              pq.StringArray(themes),
		Tags:                pq.StringArray(req.Tags),
		WordCount:           countWords(req.Content),
	}

	if err := u.entryRepo.Create(entry); err != nil {
		return nil, err
	}

	u.indexEntry(ctx, entry)

	return entry, nil
}

func (u *journalUsecase) GetEntry(userID, id string) (*journaldomain.JournalEntry, error) {
	entry, err := u.entryRepo.FindByID(id, userID)
	if err != nil {
		return nil, err
	}
	if entry == nil || entry.IsArchived {
		return nil, ErrEntryNotFound
	}
	return entry, nil
}

func (u *journalUsecase) ListEntries(userID string, limit int) ([]*journaldomain.JournalEntry, error) {
	return u.entryRepo.FindActiveByUser(userID, limit)
}

func (u *journalUsecase) UpdateEntry(ctx context.Context, userID, id string, req *dto.UpdateEntryRequest) (*journaldomain.JournalEntry, error) {
	entry, err := u.entryRepo.FindByID(id, userID)
	if err != nil {
		return nil, err
	}
	if entry == nil || entry.IsArchived {
		return nil, ErrEntryNotFound
	}

	contentChanged := false
	if req.Title != nil {
		entry.Title = *req.Title
	}
	if req.Content != nil && *req.Content != entry.Content {
		entry.Content = *req.Content
		entry.WordCount = countWords(entry.Content)
		contentChanged = true
	}
	if req.Mood != nil {
		entry.Mood = *req.Mood
	}
	if req.Tags != nil {
		entry.Tags = pq.StringArray(*req.Tags)
	}

	// Re-run enrichment only when the content actually changed
	if contentChanged {
		sentiment, themes := u.enrich(ctx, entry.Content)
		entry.SentimentScore = sentiment.Rating
		entry.SentimentConfidence = sentiment.Confidence
		entry.Themes = pq.StringArray(themes)
	}

	if err := u.entryRepo.Update(entry); err != nil {
		return nil, err
	}

	if contentChanged || req.Title != nil {
		u.indexEntry(ctx, entry)
	}

	return entry, nil
}

func (u *journalUsecase) ArchiveEntry(ctx context.Context, userID, id string) error {
	archived, err := u.entryRepo.Archive(id, userID)
	if err != nil {
		return err
	}
	if !archived {
		return ErrEntryNotFound
	}

	// Archived entries must stop surfacing in semantic search
	if u.vector != nil {
		if err := u.vector.DeleteEntryEmbedding(ctx, id); err != nil {
			log.Printf("[Journal] Failed to remove embedding for entry %s: %v", id, err)
		}
	}

	return nil
}

func (u *journalUsecase) SearchEntries(userID, query string, themes []string) ([]*journaldomain.JournalEntry, error) {
	return u.entryRepo.Search(userID, query, themes)
}

func (u *journalUsecase) SemanticSearch(ctx context.Context, userID, query string, limit int) ([]*journaldomain.JournalEntry, error) {
	if u.vector == nil {
		return nil, ErrSemanticUnavailable
	}
	if limit <= 0 {
		limit = 10
	}

	ids, _, err := u.vector.SemanticSearch(ctx, userID, query, limit)
	if err != nil {
		return nil, err
	}

	// Resolve IDs back to entries, preserving the ranking. Entries
	// archived since indexing are skipped.
	entries := make([]*journaldomain.JournalEntry, 0, len(ids))
	for _, id := range ids {
		entry, err := u.entryRepo.FindByID(id, userID)
		if err != nil {
			return nil, err
		}
		if entry == nil || entry.IsArchived {
			continue
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

func (u *journalUsecase) SearchSuggestions(userID, query string) ([]dto.SuggestionResponse, error) {
	if strings.TrimSpace(query) == "" {
		return []dto.SuggestionResponse{}, nil
	}

	recent, err := u.entryRepo.FindActiveByUser(userID, 50)
	if err != nil {
		return nil, err
	}

	threshold := fuzzy.Threshold(query)
	seen := map[string]bool{}
	suggestions := []dto.SuggestionResponse{}

	add := func(text, source string) {
		key := strings.ToLower(text)
		if text == "" || seen[key] {
			return
		}
		if fuzzy.FuzzyMatch(query, text, threshold) {
			seen[key] = true
			suggestions = append(suggestions, dto.SuggestionResponse{Text: text, Source: source})
		}
	}

	for _, entry := range recent {
		add(entry.Title, "title")
		for _, theme := range entry.Themes {
			add(theme, "theme")
		}
	}

	if len(suggestions) > 10 {
		suggestions = suggestions[:10]
	}

	return suggestions, nil
}
