package usecase

import (
	"math"
	"sort"
	"time"

	journaldomain "mindjournal-backend/internal/journal/domain"
	"mindjournal-backend/internal/journal/repository"
)

// UserStats summarizes a user's journaling activity
type UserStats struct {
	TotalEntries   int64   `json:"total_entries"`
	CurrentStreak  int     `json:"current_streak"`
	AverageMood    float64 `json:"average_mood"`
	WeeklyInsights int64   `json:"weekly_insights"`
}

// MoodTrendPoint is one mood-tagged entry plotted on a timeline
type MoodTrendPoint struct {
	Date string  `json:"date"` // YYYY-MM-DD
	Mood float64 `json:"mood"`
}

// ThemeFrequency is how often a theme appears across recent entries
type ThemeFrequency struct {
	Theme      string `json:"theme"`
	Count      int    `json:"count"`
	Percentage int    `json:"percentage"`
}

// AnalyticsUsecase defines analytics over a user's journal
type AnalyticsUsecase interface {
	GetUserStats(userID string) (*UserStats, error)
	// GetMoodTrends returns one point per mood-tagged entry in the
	// trailing window, oldest first. days defaults to 7.
	GetMoodTrends(userID string, days int) ([]MoodTrendPoint, error)
	// GetThemeAnalysis returns the top themes of the trailing window,
	// most frequent first. days defaults to 30.
	GetThemeAnalysis(userID string, days int) ([]ThemeFrequency, error)
}

type analyticsUsecase struct {
	entryRepo   repository.EntryRepository
	insightRepo repository.InsightRepository
	now         func() time.Time
}

// NewAnalyticsUsecase creates a new instance of analyticsUsecase
func NewAnalyticsUsecase(entryRepo repository.EntryRepository, insightRepo repository.InsightRepository) AnalyticsUsecase {
	return &analyticsUsecase{
		entryRepo:   entryRepo,
		insightRepo: insightRepo,
		now:         time.Now,
	}
}

func (u *analyticsUsecase) GetUserStats(userID string) (*UserStats, error) {
	total, err := u.entryRepo.CountActive(userID)
	if err != nil {
		return nil, err
	}

	moods, err := u.entryRepo.FindMoodsByUser(userID)
	if err != nil {
		return nil, err
	}

	timestamps, err := u.entryRepo.FindCreatedAtDesc(userID)
	if err != nil {
		return nil, err
	}

	weekAgo := u.now().AddDate(0, 0, -7)
	weeklyInsights, err := u.insightRepo.CountSince(userID, weekAgo)
	if err != nil {
		return nil, err
	}

	return &UserStats{
		TotalEntries:   total,
		CurrentStreak:  currentStreak(timestamps, u.now()),
		AverageMood:    journaldomain.AverageMood(moods),
		WeeklyInsights: weeklyInsights,
	}, nil
}

// currentStreak counts how many consecutive calendar days ending today
// have at least one entry. Multiple entries on a day count once; a day
// without an entry breaks the streak, including today itself.
func currentStreak(timestamps []time.Time, now time.Time) int {
	if len(timestamps) == 0 {
		return 0
	}

	days := map[string]bool{}
	for _, ts := range timestamps {
		days[ts.Format("2006-01-02")] = true
	}

	streak := 0
	for {
		day := now.AddDate(0, 0, -streak).Format("2006-01-02")
		if !days[day] {
			break
		}
		streak++
	}
	return streak
}

func (u *analyticsUsecase) GetMoodTrends(userID string, days int) ([]MoodTrendPoint, error) {
	if days <= 0 {
		days = 7
	}
	since := u.now().AddDate(0, 0, -days)

	entries, err := u.entryRepo.FindWithMoodSince(userID, since)
	if err != nil {
		return nil, err
	}

	points := make([]MoodTrendPoint, 0, len(entries))
	for _, entry := range entries {
		points = append(points, MoodTrendPoint{
			Date: entry.CreatedAt.Format("2006-01-02"),
			Mood: journaldomain.MoodScore(entry.Mood),
		})
	}
	return points, nil
}

func (u *analyticsUsecase) GetThemeAnalysis(userID string, days int) ([]ThemeFrequency, error) {
	if days <= 0 {
		days = 30
	}
	since := u.now().AddDate(0, 0, -days)

	themeLists, err := u.entryRepo.FindThemesSince(userID, since)
	if err != nil {
		return nil, err
	}

	// Percentage is the theme's share of all theme occurrences
	counts := map[string]int{}
	total := 0
	for _, themes := range themeLists {
		for _, theme := range themes {
			counts[theme]++
			total++
		}
	}

	if total == 0 {
		return []ThemeFrequency{}, nil
	}

	frequencies := make([]ThemeFrequency, 0, len(counts))
	for theme, count := range counts {
		frequencies = append(frequencies, ThemeFrequency{
			Theme:      theme,
			Count:      count,
			Percentage: int(math.Round(float64(count) / float64(total) * 100)),
		})
	}

	sort.Slice(frequencies, func(i, j int) bool {
		if frequencies[i].Count != frequencies[j].Count {
			return frequencies[i].Count > frequencies[j].Count
		}
		return frequencies[i].Theme < frequencies[j].Theme
	})

	if len(frequencies) > 10 {
		frequencies = frequencies[:10]
	}

	return frequencies, nil
}
