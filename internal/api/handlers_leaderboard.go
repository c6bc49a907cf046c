package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/hafiz-app/hafiz/internal/services"
)

const defaultLeaderboardLimit = 25

func (handler *Handler) GetLeaderboard(c *fiber.Ctx) error {
	snapshot, err := handler.leaderboardSnapshot(c)
	if err != nil {
		return serviceError(c, err, "failed to load leaderboard")
	}

	limit := c.QueryInt("limit", defaultLeaderboardLimit)
	if limit <= 0 {
		limit = defaultLeaderboardLimit
	}
	entries := snapshot.Entries
	if limit < len(entries) {
		entries = entries[:limit]
	}

	return c.JSON(fiber.Map{
		"success":     true,
		"leaderboard": entries,
		"totalUsers":  len(snapshot.Entries),
		"cached":      snapshot.Cached,
		"lastUpdated": snapshot.ComputedAt.UTC().Format(time.RFC3339),
	})
}

// GetMyRank reports the caller's position plus a small window of neighbours.
// Users who opted out of the leaderboard get onLeaderboard=false.
func (handler *Handler) GetMyRank(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	snapshot, err := handler.leaderboardSnapshot(c)
	if err != nil {
		return serviceError(c, err, "failed to load leaderboard")
	}

	index := -1
	for i, entry := range snapshot.Entries {
		if entry.UserID == user.ID {
			index = i
			break
		}
	}
	if index < 0 {
		return c.JSON(fiber.Map{"success": true, "onLeaderboard": false})
	}

	start := index - 3
	if start < 0 {
		start = 0
	}
	end := index + 4
	if end > len(snapshot.Entries) {
		end = len(snapshot.Entries)
	}

	me := snapshot.Entries[index]
	return c.JSON(fiber.Map{
		"success":       true,
		"onLeaderboard": true,
		"rank":          me.Rank,
		"totalUsers":    len(snapshot.Entries),
		"stats":         me,
		"nearbyUsers":   snapshot.Entries[start:end],
	})
}

func (handler *Handler) leaderboardSnapshot(c *fiber.Ctx) (services.LeaderboardSnapshot, error) {
	enabled, err := handler.appSettingsService.LeaderboardEnabled()
	if err != nil {
		return services.LeaderboardSnapshot{}, err
	}
	if !enabled {
		return services.LeaderboardSnapshot{}, services.NewValidationError("leaderboard is disabled")
	}

	forceRefresh := c.QueryBool("forceRefresh", false)
	return handler.leaderboardCache.Get(c.Context(), forceRefresh)
}
