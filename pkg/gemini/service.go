package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"mindjournal-backend/pkg/ai"
)

// GeminiService implements ai.EnrichmentService against the Gemini REST API
type GeminiService struct {
	ApiKey string
	Model  string
}

// NewGeminiService creates a new Gemini service
func NewGeminiService(apiKey string) *GeminiService {
	return &GeminiService{
		ApiKey: apiKey,
		Model:  "gemini-2.5-flash",
	}
}

// generateContent sends a prompt to the Gemini generateContent endpoint
// and returns the text of the first candidate.
func (g *GeminiService) generateContent(ctx context.Context, prompt string) (string, error) {
	url := fmt.Sprintf("https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent?key=%s", g.Model, g.ApiKey)

	payload := map[string]interface{}{
		"contents": []map[string]interface{}{
			{"parts": []map[string]string{{"text": prompt}}},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("Gemini API error: %s", string(respBody))
	}

	var result struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", fmt.Errorf("failed to decode Gemini response: %w", err)
	}

	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no candidates returned")
	}
	return result.Candidates[0].Content.Parts[0].Text, nil
}

// AnalyzeSentiment implements ai.EnrichmentService
func (g *GeminiService) AnalyzeSentiment(ctx context.Context, text string) (ai.SentimentResult, error) {
	out, err := g.generateContent(ctx, ai.BuildSentimentPrompt(text))
	if err != nil {
		return ai.SentimentResult{}, err
	}
	return ai.DecodeSentiment(out)
}

// ExtractThemes implements ai.EnrichmentService
func (g *GeminiService) ExtractThemes(ctx context.Context, text string) ([]string, error) {
	out, err := g.generateContent(ctx, ai.BuildThemesPrompt(text))
	if err != nil {
		return nil, err
	}
	return ai.DecodeThemes(out)
}

// GeneratePrompt implements ai.EnrichmentService
func (g *GeminiService) GeneratePrompt(ctx context.Context, recent []ai.EntryContext, userContext string) (ai.GeneratedPrompt, error) {
	out, err := g.generateContent(ctx, ai.BuildPromptPrompt(recent, userContext))
	if err != nil {
		return ai.GeneratedPrompt{}, err
	}
	return ai.DecodePrompt(out)
}

// GenerateInsights implements ai.EnrichmentService
func (g *GeminiService) GenerateInsights(ctx context.Context, entries []ai.EntryContext) ([]ai.InsightDraft, error) {
	out, err := g.generateContent(ctx, ai.BuildInsightsPrompt(entries))
	if err != nil {
		return nil, err
	}
	return ai.DecodeInsights(out)
}
