package delivery

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	journaldomain "mindjournal-backend/internal/journal/domain"
	"mindjournal-backend/internal/journal/dto"
	"mindjournal-backend/internal/journal/usecase"

	"github.com/gin-gonic/gin"
)

// stubJournalUsecase returns canned responses for HTTP mapping tests
type stubJournalUsecase struct {
	entry *journaldomain.JournalEntry
	err   error
}

func (s *stubJournalUsecase) CreateEntry(ctx context.Context, userID string, req *dto.CreateEntryRequest) (*journaldomain.JournalEntry, error) {
	return s.entry, s.err
}

func (s *stubJournalUsecase) GetEntry(userID, id string) (*journaldomain.JournalEntry, error) {
	return s.entry, s.err
}

func (s *stubJournalUsecase) ListEntries(userID string, limit int) ([]*journaldomain.JournalEntry, error) {
	if s.entry == nil {
		return []*journaldomain.JournalEntry{}, s.err
	}
	return []*journaldomain.JournalEntry{s.entry}, s.err
}

func (s *stubJournalUsecase) UpdateEntry(ctx context.Context, userID, id string, req *dto.UpdateEntryRequest) (*journaldomain.JournalEntry, error) {
	return s.entry, s.err
}

func (s *stubJournalUsecase) ArchiveEntry(ctx context.Context, userID, id string) error {
	return s.err
}

func (s *stubJournalUsecase) SearchEntries(userID, query string, themes []string) ([]*journaldomain.JournalEntry, error) {
	return []*journaldomain.JournalEntry{}, s.err
}

func (s *stubJournalUsecase) SemanticSearch(ctx context.Context, userID, query string, limit int) ([]*journaldomain.JournalEntry, error) {
	return nil, s.err
}

func (s *stubJournalUsecase) SearchSuggestions(userID, query string) ([]dto.SuggestionResponse, error) {
	return []dto.SuggestionResponse{}, s.err
}

func newTestRouter(uc usecase.JournalUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("userID", "user-1")
		c.Next()
	})

	h := NewJournalHandler(uc)
	r.POST("/api/journal/entries", h.CreateEntry)
	r.GET("/api/journal/entries/:id", h.GetEntry)
	r.DELETE("/api/journal/entries/:id", h.ArchiveEntry)
	r.GET("/api/journal/search", h.SearchEntries)
	r.POST("/api/journal/search/semantic", h.SemanticSearch)
	return r
}

func TestCreateEntryEndpoint(t *testing.T) {
	uc := &stubJournalUsecase{entry: &journaldomain.JournalEntry{
		ID:        "entry-1",
		UserID:    "user-1",
		Content:   "I had a great day at work",
		WordCount: 7,
	}}
	r := newTestRouter(uc)

	body := `{"content": "I had a great day at work", "mood": "happy"}`
	req := httptest.NewRequest("POST", "/api/journal/entries", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", w.Code, w.Body.String())
	}

	var entry journaldomain.JournalEntry
	if err := json.Unmarshal(w.Body.Bytes(), &entry); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if entry.WordCount != 7 {
		t.Fatalf("word_count = %d, want 7", entry.WordCount)
	}
}

func TestCreateEntryRequiresContent(t *testing.T) {
	r := newTestRouter(&stubJournalUsecase{})

	req := httptest.NewRequest("POST", "/api/journal/entries", strings.NewReader(`{"title": "no content"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestCreateEntryRejectsUnknownMood(t *testing.T) {
	r := newTestRouter(&stubJournalUsecase{})

	req := httptest.NewRequest("POST", "/api/journal/entries", strings.NewReader(`{"content": "x", "mood": "ecstatic"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestGetEntryNotFoundMapsTo404(t *testing.T) {
	r := newTestRouter(&stubJournalUsecase{err: usecase.ErrEntryNotFound})

	req := httptest.NewRequest("GET", "/api/journal/entries/no-such-id", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestArchiveEntryNotFoundMapsTo404(t *testing.T) {
	r := newTestRouter(&stubJournalUsecase{err: usecase.ErrEntryNotFound})

	req := httptest.NewRequest("DELETE", "/api/journal/entries/no-such-id", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestSearchEntriesNoMatchReturnsJSONArray(t *testing.T) {
	r := newTestRouter(&stubJournalUsecase{})

	req := httptest.NewRequest("GET", "/api/journal/search?q=zebra", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if body := strings.TrimSpace(w.Body.String()); body != "[]" {
		t.Fatalf("body = %q, want [] for an empty result", body)
	}
}

func TestSearchEntriesRequiresQuery(t *testing.T) {
	r := newTestRouter(&stubJournalUsecase{})

	req := httptest.NewRequest("GET", "/api/journal/search", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestSemanticSearchUnavailableMapsTo503(t *testing.T) {
	r := newTestRouter(&stubJournalUsecase{err: usecase.ErrSemanticUnavailable})

	req := httptest.NewRequest("POST", "/api/journal/search/semantic", strings.NewReader(`{"query": "stress"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", w.Code)
	}
}
