package services

import (
	"time"

	"github.com/hafiz-app/hafiz/internal/models"
)

type ActivityStats struct {
	TotalLogs        int     `json:"totalLogs"`
	TotalDays        int     `json:"totalDays"`
	TotalPages       int     `json:"totalPages"`
	AvgNewQuality    float64 `json:"avgNewQuality"`
	AvgReviewQuality float64 `json:"avgReviewQuality"`
	CurrentStreak    int     `json:"currentStreak"`
}

// CalculateActivityStats aggregates one user's log entries. TotalPages is
// the count of unique page numbers seen in NewPages ranges, an activity
// signal rather than the progress source of truth (that lives in the Juz
// records).
func CalculateActivityStats(entries []models.LogEntry, today time.Time) ActivityStats {
	if len(entries) == 0 {
		return ActivityStats{}
	}

	stats := ActivityStats{TotalLogs: len(entries)}

	var newSum, newCount, reviewSum, reviewCount int
	uniquePages := make(map[int]struct{})
	uniqueDays := make(map[time.Time]struct{})

	for _, entry := range entries {
		if entry.NewRating > 0 {
			newSum += entry.NewRating
			newCount++
		}
		if entry.ReviewRating > 0 {
			reviewSum += entry.ReviewRating
			reviewCount++
		}
		for page := range ParsePageSet(entry.NewPages) {
			uniquePages[page] = struct{}{}
		}
		uniqueDays[UTCDay(entry.Date)] = struct{}{}
	}

	stats.TotalDays = len(uniqueDays)
	stats.TotalPages = len(uniquePages)
	if newCount > 0 {
		stats.AvgNewQuality = roundOneDecimal(float64(newSum) / float64(newCount))
	}
	if reviewCount > 0 {
		stats.AvgReviewQuality = roundOneDecimal(float64(reviewSum) / float64(reviewCount))
	}
	stats.CurrentStreak = currentStreak(uniqueDays, today)

	return stats
}

// currentStreak anchors at today and walks backward one calendar day at a
// time. A user who has not logged today reports a streak of 0 even with an
// unbroken run ending yesterday; that matches the product's definition.
func currentStreak(days map[time.Time]struct{}, today time.Time) int {
	cursor := UTCDay(today)
	streak := 0
	for {
		if _, logged := days[cursor]; !logged {
			return streak
		}
		streak++
		cursor = cursor.AddDate(0, 0, -1)
	}
}
