package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/hafiz-app/hafiz/internal/services"
)

type settingsUpdateRequest struct {
	Name                   *string `json:"name"`
	Language               *string `json:"language"`
	Theme                  *string `json:"theme"`
	ShowOnLeaderboard      *bool   `json:"showOnLeaderboard"`
	LeaderboardDisplayName *string `json:"leaderboardDisplayName"`
}

func (handler *Handler) UpdateMySettings(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var request settingsUpdateRequest
	if err := c.BodyParser(&request); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	updated, err := handler.settingsService.UpdateSettings(user.ID, services.UserSettingsPatch{
		Name:                   request.Name,
		Language:               request.Language,
		Theme:                  request.Theme,
		ShowOnLeaderboard:      request.ShowOnLeaderboard,
		LeaderboardDisplayName: request.LeaderboardDisplayName,
	})
	if err != nil {
		return serviceError(c, err, "failed to update settings")
	}
	return c.JSON(fiber.Map{"success": true, "user": updated})
}
