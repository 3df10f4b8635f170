package dto

// CreateEntryRequest represents a new journal entry
type CreateEntryRequest struct {
	Title   string   `json:"title"`
	Content string   `json:"content" binding:"required"`
	Mood    string   `json:"mood" binding:"omitempty,oneof=happy content neutral sad stressed"`
	Tags    []string `json:"tags"`
}

// UpdateEntryRequest represents a partial edit of an entry. Pointer
// fields distinguish "not provided" from an explicit empty value.
type UpdateEntryRequest struct {
	Title   *string   `json:"title"`
	Content *string   `json:"content"`
	Mood    *string   `json:"mood" binding:"omitempty,oneof=happy content neutral sad stressed"`
	Tags    *[]string `json:"tags"`
}

// SemanticSearchRequest represents an embedding-based search over entries
type SemanticSearchRequest struct {
	Query string `json:"query" binding:"required"`
	Limit int    `json:"limit"`
}

// GeneratePromptRequest carries optional context for prompt generation
type GeneratePromptRequest struct {
	Context string `json:"context"`
}

// SuggestionResponse is a search suggestion drawn from recent entries
type SuggestionResponse struct {
	Text   string `json:"text"`
	Source string `json:"source"` // title or theme
}
