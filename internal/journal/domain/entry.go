package domain

import (
	"math"
	"time"

	"github.com/lib/pq"
)

// Mood values a user can attach to an entry
const (
	MoodHappy    = "happy"
	MoodContent  = "content"
	MoodNeutral  = "neutral"
	MoodSad      = "sad"
	MoodStressed = "stressed"
)

// JournalEntry is a single journal entry with its AI enrichment.
// Entries are never hard-deleted; IsArchived acts as a soft delete and
// archived entries are excluded from listing, search and analytics.
type JournalEntry struct {
	ID                  string         `json:"id" gorm:"primaryKey"`
	UserID              string         `json:"user_id" gorm:"index;not null"`
	Title               string         `json:"title,omitempty"`
	Content             string         `json:"content" gorm:"type:text;not null"`
	Mood                string         `json:"mood,omitempty"`
	SentimentScore      int            `json:"sentiment_score"`           // 1-5 rating
	SentimentConfidence float64        `json:"sentiment_confidence"`      // 0-1
	Themes              pq.StringArray `json:"themes" gorm:"type:text[]"` // extracted life categories
	Tags                pq.StringArray `json:"tags" gorm:"type:text[]"`   // user-added tags
	WordCount           int            `json:"word_count" gorm:"default:0"`
	IsArchived          bool           `json:"is_archived" gorm:"index;default:false"`
	CreatedAt           time.Time      `json:"created_at"`
	UpdatedAt           time.Time      `json:"updated_at"`
}

// TableName specifies the table name for GORM
func (JournalEntry) TableName() string {
	return "journal_entries"
}

// MoodScore maps a categorical mood to its numeric value for analytics.
// Unknown or missing moods map to the neutral midpoint.
func MoodScore(mood string) float64 {
	switch mood {
	case MoodHappy:
		return 9
	case MoodContent:
		return 7
	case MoodNeutral:
		return 5
	case MoodSad:
		return 3
	case MoodStressed:
		return 2
	default:
		return 5
	}
}

// AverageMood returns the mean mood score rounded to one decimal.
// With no mood data it returns the neutral midpoint 5.
func AverageMood(moods []string) float64 {
	if len(moods) == 0 {
		return 5
	}
	var sum float64
	for _, m := range moods {
		sum += MoodScore(m)
	}
	return math.Round(sum/float64(len(moods))*10) / 10
}
