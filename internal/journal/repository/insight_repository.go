package repository

import (
	"time"

	journaldomain "mindjournal-backend/internal/journal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InsightRepository defines insight persistence, scoped by user
type InsightRepository interface {
	Create(insight *journaldomain.Insight) error
	// FindRecentByUser returns the newest insights, capped at limit.
	FindRecentByUser(userID string, limit int) ([]*journaldomain.Insight, error)
	// MarkViewed flips the insight to viewed and reports whether a row was affected.
	MarkViewed(id, userID string) (bool, error)
	// CountSince counts insights created at or after the given time.
	CountSince(userID string, since time.Time) (int64, error)
}

type insightRepository struct {
	db *gorm.DB
}

// NewInsightRepository creates a new instance of insightRepository
func NewInsightRepository(db *gorm.DB) InsightRepository {
	return &insightRepository{
		db: db,
	}
}

func (r *insightRepository) Create(insight *journaldomain.Insight) error {
	if insight.ID == "" {
		insight.ID = uuid.New().String()
	}
	insight.CreatedAt = time.Now()
	return r.db.Create(insight).Error
}

func (r *insightRepository) FindRecentByUser(userID string, limit int) ([]*journaldomain.Insight, error) {
	if limit <= 0 {
		limit = 10
	}
	// Initialized so an empty result serializes as [] rather than null
	insights := make([]*journaldomain.Insight, 0)
	err := r.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&insights).Error
	if err != nil {
		return nil, err
	}
	return insights, nil
}

func (r *insightRepository) MarkViewed(id, userID string) (bool, error) {
	res := r.db.Model(&journaldomain.Insight{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("viewed", true)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *insightRepository) CountSince(userID string, since time.Time) (int64, error) {
	var total int64
	err := r.db.Model(&journaldomain.Insight{}).
		Where("user_id = ? AND created_at >= ?", userID, since).
		Count(&total).Error
	return total, err
}
