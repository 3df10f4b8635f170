package ai

import (
	"fmt"
	"strings"
)

// Prompt templates shared by all providers so output stays consistent
// when the fallback router switches between them.

const sentimentPromptTemplate = `You are a sentiment analysis expert. Analyze the sentiment of the journal entry below and provide a rating from 1 to 5 (1 = very negative, 2 = negative, 3 = neutral, 4 = positive, 5 = very positive) and a confidence score between 0 and 1.
Respond with ONLY a JSON object in this format: {"rating": number, "confidence": number}

JOURNAL ENTRY:
%s`

const themesPromptTemplate = `You are a text analysis expert. Extract the main themes from the journal entry below. Focus on life categories like work, family, health, relationships, personal growth, stress, gratitude, exercise, creativity, etc. Return up to 5 most relevant themes.
Respond with ONLY a JSON object in this format: {"themes": ["theme1", "theme2"]}

JOURNAL ENTRY:
%s`

const promptPromptTemplate = `You are an empathetic journaling companion. Based on the user's recent journal entries, generate a thoughtful, personalized writing prompt that encourages reflection and self-discovery. The prompt should be:
- Empathetic and non-judgmental
- Specific to their recent experiences or patterns
- Encouraging of deeper reflection
- About 1-2 sentences long
- Focused on growth and self-awareness

Respond with ONLY a JSON object in this format: {"prompt": "your prompt here", "context": "brief explanation of what inspired this prompt"}

Recent journal entries:
%s

Additional context: %s`

const insightsPromptTemplate = `You are a personal insights analyst. Analyze the journal entries below and identify meaningful patterns, correlations, or trends that could help the user understand themselves better. Look for:
- Mood patterns related to activities, times, or situations
- Recurring themes or concerns
- Growth or positive changes
- Correlations between different aspects of life

Generate up to 3 insights. Each insight should be encouraging and constructive.
Respond with ONLY a JSON object in this format: {"insights": [{"type": "pattern|correlation|trend", "title": "brief title", "description": "helpful description", "confidence": 0.8}]}

Journal entries to analyze:
%s`

func BuildSentimentPrompt(text string) string {
	return fmt.Sprintf(sentimentPromptTemplate, text)
}

func BuildThemesPrompt(text string) string {
	return fmt.Sprintf(themesPromptTemplate, text)
}

func BuildPromptPrompt(recent []EntryContext, userContext string) string {
	lines := make([]string, 0, len(recent))
	for i, e := range recent {
		if i >= 5 {
			break
		}
		mood := e.Mood
		if mood == "" {
			mood = "neutral"
		}
		lines = append(lines, fmt.Sprintf("%s: %s", mood, truncate(e.Content, 200)))
	}
	if userContext == "" {
		userContext = "None"
	}
	return fmt.Sprintf(promptPromptTemplate, strings.Join(lines, "\n\n"), userContext)
}

func BuildInsightsPrompt(entries []EntryContext) string {
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		mood := e.Mood
		if mood == "" {
			mood = "not specified"
		}
		lines = append(lines, fmt.Sprintf("Date: %s, Mood: %s, Content: %s",
			e.CreatedAt.Format("Mon Jan 2 2006"), mood, truncate(e.Content, 300)))
	}
	return fmt.Sprintf(insightsPromptTemplate, strings.Join(lines, "\n\n"))
}

// truncate cuts on rune boundaries so multibyte content is never split
// mid-sequence.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
