package services

import (
	"context"
	"sort"
	"time"

	"github.com/hafiz-app/hafiz/internal/models"
	"golang.org/x/sync/errgroup"
)

// leaderboardFetchConcurrency bounds the per-user aggregation fan-out. Each
// user's rows are independent, so the fetches are safe to run in parallel.
const leaderboardFetchConcurrency = 8

type LeaderboardEntry struct {
	UserID       uint      `json:"userId"`
	Name         string    `json:"name"`
	TotalPages   int       `json:"totalPages"`
	CompletedJuz int       `json:"completedJuz"`
	Streak       int       `json:"streak"`
	Rank         int       `json:"rank"`
	JoinedAt     time.Time `json:"joinedAt"`
}

type LeaderboardUserSource interface {
	ListOptedIn() ([]models.User, error)
}

type LeaderboardJuzSource interface {
	ListByUser(userID uint) ([]models.Juz, error)
}

type LeaderboardLogSource interface {
	ListByUser(userID uint) ([]models.LogEntry, error)
}

type LeaderboardService struct {
	users LeaderboardUserSource
	juz   LeaderboardJuzSource
	logs  LeaderboardLogSource
	now   func() time.Time
}

func NewLeaderboardService(users LeaderboardUserSource, juz LeaderboardJuzSource, logs LeaderboardLogSource) *LeaderboardService {
	return &LeaderboardService{
		users: users,
		juz:   juz,
		logs:  logs,
		now:   time.Now,
	}
}

// Compute produces the full ranked list of opted-in users. TotalPages sums
// the user's Juz records; logs feed the streak only. Sorting is stable so
// users tied on all three keys keep their relative order.
func (service *LeaderboardService) Compute(ctx context.Context) ([]LeaderboardEntry, error) {
	users, err := service.users.ListOptedIn()
	if err != nil {
		return nil, err
	}

	entries := make([]LeaderboardEntry, len(users))
	group, _ := errgroup.WithContext(ctx)
	group.SetLimit(leaderboardFetchConcurrency)

	for index, user := range users {
		index, user := index, user
		group.Go(func() error {
			entry, err := service.aggregateUser(user)
			if err != nil {
				return err
			}
			entries[index] = entry
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].TotalPages != entries[j].TotalPages {
			return entries[i].TotalPages > entries[j].TotalPages
		}
		if entries[i].CompletedJuz != entries[j].CompletedJuz {
			return entries[i].CompletedJuz > entries[j].CompletedJuz
		}
		return entries[i].Streak > entries[j].Streak
	})

	for index := range entries {
		entries[index].Rank = index + 1
	}
	return entries, nil
}

func (service *LeaderboardService) aggregateUser(user models.User) (LeaderboardEntry, error) {
	records, err := service.juz.ListByUser(user.ID)
	if err != nil {
		return LeaderboardEntry{}, err
	}
	logs, err := service.logs.ListByUser(user.ID)
	if err != nil {
		return LeaderboardEntry{}, err
	}

	totalPages := 0
	completed := 0
	for _, record := range records {
		totalPages += record.Pages
		if record.Status == models.StatusCompleted {
			completed++
		}
	}

	stats := CalculateActivityStats(logs, service.now())

	return LeaderboardEntry{
		UserID:       user.ID,
		Name:         user.DisplayNameForLeaderboard(),
		TotalPages:   totalPages,
		CompletedJuz: completed,
		Streak:       stats.CurrentStreak,
		JoinedAt:     user.CreatedAt,
	}, nil
}
