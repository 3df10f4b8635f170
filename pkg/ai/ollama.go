package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// OllamaService implements EnrichmentService using an Ollama local LLM
type OllamaService struct {
	getBaseURL func() string // Dynamic getter for BaseURL
	getModel   func() string // Dynamic getter for Model
}

// NewOllamaService creates a new Ollama service
func NewOllamaService(baseURL, model string) *OllamaService {
	if baseURL == "" {
		baseURL = "http://localhost:11434"
	}
	if model == "" {
		model = "llama3"
	}
	return &OllamaService{
		getBaseURL: func() string { return baseURL },
		getModel:   func() string { return model },
	}
}

// NewOllamaServiceWithGetters creates a new Ollama service with dynamic getters
// so settings updated at runtime take effect without a restart.
func NewOllamaServiceWithGetters(getBaseURL, getModel func() string) *OllamaService {
	return &OllamaService{
		getBaseURL: getBaseURL,
		getModel:   getModel,
	}
}

// generate sends a prompt to Ollama's generate endpoint and returns the raw response text
func (o *OllamaService) generate(ctx context.Context, prompt string) (string, error) {
	url := o.getBaseURL() + "/api/generate"

	payload := map[string]interface{}{
		"model":  o.getModel(),
		"prompt": prompt,
		"stream": false,
		"options": map[string]interface{}{
			"temperature": 0.3,
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
		return "", fmt.Errorf("ollama request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("ollama API error: %s", string(respBody))
	}

	var result struct {
		Response string `json:"response"`
	}
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", fmt.Errorf("failed to decode ollama response: %w", err)
	}
	if result.Response == "" {
		return "", fmt.Errorf("empty response from ollama")
	}
	return result.Response, nil
}

// AnalyzeSentiment implements EnrichmentService
func (o *OllamaService) AnalyzeSentiment(ctx context.Context, text string) (SentimentResult, error) {
	out, err := o.generate(ctx, BuildSentimentPrompt(text))
	if err != nil {
		return SentimentResult{}, err
	}
	return DecodeSentiment(out)
}

// ExtractThemes implements EnrichmentService
func (o *OllamaService) ExtractThemes(ctx context.Context, text string) ([]string, error) {
	out, err := o.generate(ctx, BuildThemesPrompt(text))
	if err != nil {
		return nil, err
	}
	return DecodeThemes(out)
}

// GeneratePrompt implements EnrichmentService
func (o *OllamaService) GeneratePrompt(ctx context.Context, recent []EntryContext, userContext string) (GeneratedPrompt, error) {
	out, err := o.generate(ctx, BuildPromptPrompt(recent, userContext))
	if err != nil {
		return GeneratedPrompt{}, err
	}
	return DecodePrompt(out)
}

// GenerateInsights implements EnrichmentService
func (o *OllamaService) GenerateInsights(ctx context.Context, entries []EntryContext) ([]InsightDraft, error) {
	out, err := o.generate(ctx, BuildInsightsPrompt(entries))
	if err != nil {
		return nil, err
	}
	return DecodeInsights(out)
}

// TestConnection checks whether the configured Ollama server is reachable
func (o *OllamaService) TestConnection(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, "GET", o.getBaseURL()+"/api/tags", nil)
	if err != nil {
		return err
	}
	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("ollama unreachable: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("ollama returned status %d", resp.StatusCode)
	}
	return nil
}
