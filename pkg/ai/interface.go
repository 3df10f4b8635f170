package ai

import (
	"context"
	"time"
)

// SentimentResult is a 1-5 sentiment rating with a 0-1 confidence
type SentimentResult struct {
	Rating     int     `json:"rating"`
	Confidence float64 `json:"confidence"`
}

// GeneratedPrompt is a writing prompt with the context that inspired it
type GeneratedPrompt struct {
	Prompt  string `json:"prompt"`
	Context string `json:"context"`
}

// InsightDraft is an unsaved insight produced from a window of entries
type InsightDraft struct {
	Type        string  `json:"type"` // pattern, correlation, trend
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Confidence  float64 `json:"confidence"`
}

// EntryContext is the slice of an entry the enrichment service sees
type EntryContext struct {
	CreatedAt time.Time
	Mood      string
	Content   string
}

// Safe defaults substituted by callers when a provider call fails.
// Enrichment is best-effort; a failed call must never fail the
// surrounding write or read.
var (
	NeutralSentiment = SentimentResult{Rating: 3, Confidence: 0.5}
	FallbackPrompt   = GeneratedPrompt{
		Prompt:  "How did you show kindness to yourself or others today?",
		Context: "Default empathetic prompt",
	}
)

// EnrichmentService is the interface for AI sentiment scoring, theme
// extraction, prompt generation and insight generation.
// Implement this interface to add new AI providers (Gemini, Ollama, OpenAI, etc.)
type EnrichmentService interface {
	AnalyzeSentiment(ctx context.Context, text string) (SentimentResult, error)
	ExtractThemes(ctx context.Context, text string) ([]string, error)
	GeneratePrompt(ctx context.Context, recent []EntryContext, userContext string) (GeneratedPrompt, error)
	GenerateInsights(ctx context.Context, entries []EntryContext) ([]InsightDraft, error)
}

// ProviderType represents the AI provider type
type ProviderType string

const (
	ProviderGemini ProviderType = "gemini"
	ProviderOllama ProviderType = "ollama"
	ProviderAuto   ProviderType = "auto"
)

// ClampRating bounds a model-reported rating to the 1-5 scale
func ClampRating(rating int) int {
	if rating < 1 {
		return 1
	}
	if rating > 5 {
		return 5
	}
	return rating
}

// ClampConfidence bounds a model-reported confidence to [0,1]
func ClampConfidence(confidence float64) float64 {
	if confidence < 0 {
		return 0
	}
	if confidence > 1 {
		return 1
	}
	return confidence
}
