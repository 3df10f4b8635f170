package repository

import (
	"errors"
	"time"

	journaldomain "mindjournal-backend/internal/journal/domain"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// EntryRepository defines journal entry persistence. Every operation is
// scoped by userID; a wrong id or a cross-user id behaves exactly like
// a missing row.
type EntryRepository interface {
	Create(entry *journaldomain.JournalEntry) error
	// FindActiveByUser returns non-archived entries, newest first, capped at limit.
	FindActiveByUser(userID string, limit int) ([]*journaldomain.JournalEntry, error)
	// FindByID returns nil when the entry does not exist or belongs to another user.
	FindByID(id, userID string) (*journaldomain.JournalEntry, error)
	Update(entry *journaldomain.JournalEntry) error
	// Archive soft-deletes an entry and reports whether a row was affected.
	Archive(id, userID string) (bool, error)
	// Search matches content case-insensitively, optionally intersected with
	// entries whose theme set overlaps themes. Archived entries are excluded.
	Search(userID, query string, themes []string) ([]*journaldomain.JournalEntry, error)

	// Analytics queries
	CountActive(userID string) (int64, error)
	FindMoodsByUser(userID string) ([]string, error)
	FindCreatedAtDesc(userID string) ([]time.Time, error)
	FindWithMoodSince(userID string, since time.Time) ([]*journaldomain.JournalEntry, error)
	FindThemesSince(userID string, since time.Time) ([][]string, error)
}

// entryRepository implements EntryRepository on GORM/PostgreSQL
type entryRepository struct {
	db *gorm.DB
}

// NewEntryRepository creates a new instance of entryRepository
func NewEntryRepository(db *gorm.DB) EntryRepository {
	return &entryRepository{
		db: db,
	}
}

func (r *entryRepository) Create(entry *journaldomain.JournalEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	now := time.Now()
	entry.CreatedAt = now
	entry.UpdatedAt = now
	return r.db.Create(entry).Error
}

func (r *entryRepository) FindActiveByUser(userID string, limit int) ([]*journaldomain.JournalEntry, error) {
	if limit <= 0 {
		limit = 50
	}
	// Initialized so an empty result serializes as [] rather than null
	entries := make([]*journaldomain.JournalEntry, 0)
	err := r.db.
		Where("user_id = ? AND is_archived = ?", userID, false).
		Order("created_at DESC").
		Limit(limit).
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *entryRepository) FindByID(id, userID string) (*journaldomain.JournalEntry, error) {
	var entry journaldomain.JournalEntry
	err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}

func (r *entryRepository) Update(entry *journaldomain.JournalEntry) error {
	entry.UpdatedAt = time.Now()
	return r.db.Save(entry).Error
}

func (r *entryRepository) Archive(id, userID string) (bool, error) {
	res := r.db.Model(&journaldomain.JournalEntry{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(map[string]interface{}{"is_archived": true, "updated_at": time.Now()})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *entryRepository) Search(userID, query string, themes []string) ([]*journaldomain.JournalEntry, error) {
	q := r.db.
		Where("user_id = ? AND is_archived = ?", userID, false).
		Where("content ILIKE ?", "%"+query+"%")

	if len(themes) > 0 {
		q = q.Where("themes && ?", pq.StringArray(themes))
	}

	entries := make([]*journaldomain.JournalEntry, 0)
	err := q.Order("created_at DESC").Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *entryRepository) CountActive(userID string) (int64, error) {
	var total int64
	err := r.db.Model(&journaldomain.JournalEntry{}).
		Where("user_id = ? AND is_archived = ?", userID, false).
		Count(&total).Error
	return total, err
}

func (r *entryRepository) FindMoodsByUser(userID string) ([]string, error) {
	var moods []string
	err := r.db.Model(&journaldomain.JournalEntry{}).
		Where("user_id = ? AND is_archived = ? AND mood IS NOT NULL AND mood <> ''", userID, false).
		Pluck("mood", &moods).Error
	if err != nil {
		return nil, err
	}
	return moods, nil
}

func (r *entryRepository) FindCreatedAtDesc(userID string) ([]time.Time, error) {
	var timestamps []time.Time
	err := r.db.Model(&journaldomain.JournalEntry{}).
		Where("user_id = ? AND is_archived = ?", userID, false).
		Order("created_at DESC").
		Pluck("created_at", &timestamps).Error
	if err != nil {
		return nil, err
	}
	return timestamps, nil
}

func (r *entryRepository) FindWithMoodSince(userID string, since time.Time) ([]*journaldomain.JournalEntry, error) {
	entries := make([]*journaldomain.JournalEntry, 0)
	err := r.db.
		Where("user_id = ? AND is_archived = ? AND mood IS NOT NULL AND mood <> ''", userID, false).
		Where("created_at >= ?", since).
		Order("created_at ASC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *entryRepository) FindThemesSince(userID string, since time.Time) ([][]string, error) {
	var entries []*journaldomain.JournalEntry
	err := r.db.
		Select("themes").
		Where("user_id = ? AND is_archived = ? AND themes IS NOT NULL", userID, false).
		Where("created_at >= ?", since).
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	themes := make([][]string, 0, len(entries))
	for _, e := range entries {
		themes = append(themes, []string(e.Themes))
	}
	return themes, nil
}
