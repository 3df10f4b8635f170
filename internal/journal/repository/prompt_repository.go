package repository

import (
	"errors"
	"time"

	journaldomain "mindjournal-backend/internal/journal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PromptRepository defines AI prompt persistence, scoped by user
type PromptRepository interface {
	Create(prompt *journaldomain.AiPrompt) error
	// FindLatestUnused returns the most recent unused prompt, or nil if none.
	FindLatestUnused(userID string) (*journaldomain.AiPrompt, error)
	// MarkUsed flips the prompt to used and reports whether a row was affected.
	MarkUsed(id, userID string) (bool, error)
}

type promptRepository struct {
	db *gorm.DB
}

// NewPromptRepository creates a new instance of promptRepository
func NewPromptRepository(db *gorm.DB) PromptRepository {
	return &promptRepository{
		db: db,
	}
}

func (r *promptRepository) Create(prompt *journaldomain.AiPrompt) error {
	if prompt.ID == "" {
		prompt.ID = uuid.New().String()
	}
	prompt.CreatedAt = time.Now()
	return r.db.Create(prompt).Error
}

func (r *promptRepository) FindLatestUnused(userID string) (*journaldomain.AiPrompt, error) {
	var prompt journaldomain.AiPrompt
	err := r.db.
		Where("user_id = ? AND used = ?", userID, false).
		Order("created_at DESC").
		First(&prompt).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &prompt, nil
}

func (r *promptRepository) MarkUsed(id, userID string) (bool, error) {
	res := r.db.Model(&journaldomain.AiPrompt{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("used", true)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
