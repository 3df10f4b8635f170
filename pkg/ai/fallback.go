package ai

import (
	"context"
	"fmt"
	"log"
	"net"
	"strings"
)

// FallbackService routes enrichment calls between providers:
// Gemini first (better structured output), Ollama on quota or
// connection errors. Either provider may be nil.
type FallbackService struct {
	gemini EnrichmentService
	ollama *OllamaService
}

// NewFallbackService creates a new fallback service with both providers
func NewFallbackService(gemini EnrichmentService, ollama *OllamaService) *FallbackService {
	return &FallbackService{
		gemini: gemini,
		ollama: ollama,
	}
}

// isConnectionError checks if the error is a network/connection error
func isConnectionError(err error) bool {
	if err == nil {
		return false
	}

	if _, ok := err.(net.Error); ok {
		return true
	}

	errStr := strings.ToLower(err.Error())
	connectionIndicators := []string{
		"connection refused",
		"no such host",
		"network is unreachable",
		"connection reset",
		"timeout",
		"dial tcp",
		"eof",
	}

	for _, indicator := range connectionIndicators {
		if strings.Contains(errStr, indicator) {
			return true
		}
	}

	return false
}

// isQuotaError checks if the error indicates API quota exhaustion (429)
func isQuotaError(err error) bool {
	if err == nil {
		return false
	}

	errStr := strings.ToLower(err.Error())
	quotaIndicators := []string{
		"429",
		"quota",
		"rate limit",
		"too many requests",
		"resource exhausted",
	}

	for _, indicator := range quotaIndicators {
		if strings.Contains(errStr, indicator) {
			return true
		}
	}

	return false
}

// run tries Gemini first, falling back to Ollama. If Ollama then fails
// with a connection error while Gemini failed only on quota, there is
// nothing left to try and the last error is returned.
func (f *FallbackService) run(op string, gemini func() error, ollama func() error) error {
	if f.gemini != nil {
		err := gemini()
		if err == nil {
			return nil
		}
		if isQuotaError(err) {
			log.Printf("[AI] Gemini quota exhausted for %s: %v, falling back to Ollama", op, err)
		} else {
			log.Printf("[AI] Gemini error for %s: %v, falling back to Ollama", op, err)
		}
		if f.ollama == nil {
			return fmt.Errorf("gemini %s failed: %w", op, err)
		}
	}

	if f.ollama != nil {
		err := ollama()
		if err == nil {
			return nil
		}
		if isConnectionError(err) {
			log.Printf("[AI] Ollama connection failed for %s: %v", op, err)
		}
		return fmt.Errorf("ollama %s failed: %w", op, err)
	}

	return fmt.Errorf("no AI provider available for %s", op)
}

// AnalyzeSentiment implements EnrichmentService
func (f *FallbackService) AnalyzeSentiment(ctx context.Context, text string) (SentimentResult, error) {
	var result SentimentResult
	err := f.run("sentiment analysis",
		func() (err error) { result, err = f.gemini.AnalyzeSentiment(ctx, text); return },
		func() (err error) { result, err = f.ollama.AnalyzeSentiment(ctx, text); return },
	)
	return result, err
}

// ExtractThemes implements EnrichmentService
func (f *FallbackService) ExtractThemes(ctx context.Context, text string) ([]string, error) {
	var themes []string
	err := f.run("theme extraction",
		func() (err error) { themes, err = f.gemini.ExtractThemes(ctx, text); return },
		func() (err error) { themes, err = f.ollama.ExtractThemes(ctx, text); return },
	)
	return themes, err
}

// GeneratePrompt implements EnrichmentService
func (f *FallbackService) GeneratePrompt(ctx context.Context, recent []EntryContext, userContext string) (GeneratedPrompt, error) {
	var prompt GeneratedPrompt
	err := f.run("prompt generation",
		func() (err error) { prompt, err = f.gemini.GeneratePrompt(ctx, recent, userContext); return },
		func() (err error) { prompt, err = f.ollama.GeneratePrompt(ctx, recent, userContext); return },
	)
	return prompt, err
}

// GenerateInsights implements EnrichmentService
func (f *FallbackService) GenerateInsights(ctx context.Context, entries []EntryContext) ([]InsightDraft, error) {
	var drafts []InsightDraft
	err := f.run("insight generation",
		func() (err error) { drafts, err = f.gemini.GenerateInsights(ctx, entries); return },
		func() (err error) { drafts, err = f.ollama.GenerateInsights(ctx, entries); return },
	)
	return drafts, err
}
