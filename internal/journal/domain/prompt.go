package domain

import "time"

// AiPrompt is a generated writing prompt. Prompts are created lazily
// when a user has no unused prompt, and flipped to used exactly once.
type AiPrompt struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	UserID    string    `json:"user_id" gorm:"index;not null"`
	Prompt    string    `json:"prompt" gorm:"type:text;not null"`
	Context   string    `json:"context,omitempty" gorm:"type:text"` // what inspired the prompt
	Used      bool      `json:"used" gorm:"default:false"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for GORM
func (AiPrompt) TableName() string {
	return "ai_prompts"
}
