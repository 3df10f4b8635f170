package ai

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ExtractJSONObject pulls the first JSON object out of raw model text.
// Models frequently wrap JSON in markdown fences or prose.
func ExtractJSONObject(text string) (string, error) {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end < start {
		return "", fmt.Errorf("no JSON object in model output")
	}
	return text[start : end+1], nil
}

// DecodeSentiment parses model output into a clamped SentimentResult
func DecodeSentiment(text string) (SentimentResult, error) {
	raw, err := ExtractJSONObject(text)
	if err != nil {
		return SentimentResult{}, err
	}
	var parsed struct {
		Rating     float64 `json:"rating"`
		Confidence float64 `json:"confidence"`
	}
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return SentimentResult{}, fmt.Errorf("failed to decode sentiment: %w", err)
	}
	return SentimentResult{
		Rating:     ClampRating(int(parsed.Rating + 0.5)),
		Confidence: ClampConfidence(parsed.Confidence),
	}, nil
}

// DecodeThemes parses model output into at most 5 theme labels
func DecodeThemes(text string) ([]string, error) {
	raw, err := ExtractJSONObject(text)
	if err != nil {
		return nil, err
	}
	var parsed struct {
		Themes []string `json:"themes"`
	}
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return nil, fmt.Errorf("failed to decode themes: %w", err)
	}
	themes := make([]string, 0, len(parsed.Themes))
	for _, t := range parsed.Themes {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		themes = append(themes, t)
		if len(themes) == 5 {
			break
		}
	}
	return themes, nil
}

// DecodePrompt parses model output into a GeneratedPrompt
func DecodePrompt(text string) (GeneratedPrompt, error) {
	raw, err := ExtractJSONObject(text)
	if err != nil {
		return GeneratedPrompt{}, err
	}
	var parsed GeneratedPrompt
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return GeneratedPrompt{}, fmt.Errorf("failed to decode prompt: %w", err)
	}
	if parsed.Prompt == "" {
		parsed.Prompt = "What's one thing you learned about yourself today?"
	}
	if parsed.Context == "" {
		parsed.Context = "General reflection prompt"
	}
	return parsed, nil
}

// DecodeInsights parses model output into at most 3 insight drafts
func DecodeInsights(text string) ([]InsightDraft, error) {
	raw, err := ExtractJSONObject(text)
	if err != nil {
		return nil, err
	}
	var parsed struct {
		Insights []InsightDraft `json:"insights"`
	}
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return nil, fmt.Errorf("failed to decode insights: %w", err)
	}
	drafts := make([]InsightDraft, 0, len(parsed.Insights))
	for _, d := range parsed.Insights {
		if d.Title == "" || d.Description == "" {
			continue
		}
		if d.Type == "" {
			d.Type = "pattern"
		}
		d.Confidence = ClampConfidence(d.Confidence)
		drafts = append(drafts, d)
		if len(drafts) == 3 {
			break
		}
	}
	return drafts, nil
}
