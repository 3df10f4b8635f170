package domain

import (
	"time"

	"gorm.io/datatypes"
)

// Insight types produced by the enrichment service
const (
	InsightTypePattern     = "pattern"
	InsightTypeCorrelation = "correlation"
	InsightTypeTrend       = "trend"
)

// Insight is a generated observation about patterns across a user's
// recent entries. Created in batches, flipped to viewed exactly once.
type Insight struct {
	ID          string         `json:"id" gorm:"primaryKey"`
	UserID      string         `json:"user_id" gorm:"index;not null"`
	Type        string         `json:"type" gorm:"not null"`
	Title       string         `json:"title" gorm:"not null"`
	Description string         `json:"description" gorm:"type:text;not null"`
	Data        datatypes.JSON `json:"data,omitempty"` // structured insight payload
	Confidence  float64        `json:"confidence"`     // 0-1
	PeriodStart *time.Time     `json:"period_start,omitempty"`
	PeriodEnd   *time.Time     `json:"period_end,omitempty"`
	Viewed      bool           `json:"viewed" gorm:"default:false"`
	CreatedAt   time.Time      `json:"created_at"`
}

// TableName specifies the table name for GORM
func (Insight) TableName() string {
	return "insights"
}
