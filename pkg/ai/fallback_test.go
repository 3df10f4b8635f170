package ai

import (
	"context"
	"errors"
	"testing"
)

// scriptedProvider returns canned results for fallback routing tests
type scriptedProvider struct {
	sentiment SentimentResult
	err       error
	calls     int
}

func (p *scriptedProvider) AnalyzeSentiment(ctx context.Context, text string) (SentimentResult, error) {
	p.calls++
	return p.sentiment, p.err
}

func (p *scriptedProvider) ExtractThemes(ctx context.Context, text string) ([]string, error) {
	p.calls++
	return nil, p.err
}

func (p *scriptedProvider) GeneratePrompt(ctx context.Context, recent []EntryContext, userContext string) (GeneratedPrompt, error) {
	p.calls++
	return GeneratedPrompt{}, p.err
}

func (p *scriptedProvider) GenerateInsights(ctx context.Context, entries []EntryContext) ([]InsightDraft, error) {
	p.calls++
	return nil, p.err
}

func TestIsQuotaError(t *testing.T) {
	if !isQuotaError(errors.New("googleapi: Error 429: quota exceeded")) {
		t.Fatal("429 quota error not detected")
	}
	if !isQuotaError(errors.New("RESOURCE EXHAUSTED")) {
		t.Fatal("resource exhausted not detected")
	}
	if isQuotaError(errors.New("invalid request")) {
		t.Fatal("false positive quota error")
	}
	if isQuotaError(nil) {
		t.Fatal("nil error treated as quota error")
	}
}

func TestIsConnectionError(t *testing.T) {
	if !isConnectionError(errors.New("dial tcp 127.0.0.1:11434: connection refused")) {
		t.Fatal("connection refused not detected")
	}
	if isConnectionError(errors.New("bad JSON")) {
		t.Fatal("false positive connection error")
	}
}

func TestFallbackUsesGeminiFirst(t *testing.T) {
	gemini := &scriptedProvider{sentiment: SentimentResult{Rating: 4, Confidence: 0.9}}
	ollama := NewOllamaService("http://127.0.0.1:1", "llama3")
	svc := NewFallbackService(gemini, ollama)

	result, err := svc.AnalyzeSentiment(context.Background(), "text")
	if err != nil {
		t.Fatalf("AnalyzeSentiment failed: %v", err)
	}
	if result.Rating != 4 {
		t.Fatalf("got rating %d, want Gemini's 4", result.Rating)
	}
	if gemini.calls != 1 {
		t.Fatalf("gemini calls = %d, want 1", gemini.calls)
	}
}

func TestFallbackWithoutProviders(t *testing.T) {
	svc := NewFallbackService(nil, nil)
	if _, err := svc.AnalyzeSentiment(context.Background(), "text"); err == nil {
		t.Fatal("expected an error with no providers configured")
	}
}
