package api

import "github.com/gofiber/fiber/v2"

// GetCombinedStats joins memorization progress with activity metrics so the
// dashboard needs a single round trip.
func (handler *Handler) GetCombinedStats(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	summary, err := handler.juzService.Summary(user.ID)
	if err != nil {
		return serviceError(c, err, "failed to build summary")
	}

	activity, err := handler.logService.StatsForUser(user.ID)
	if err != nil {
		return serviceError(c, err, "failed to compute stats")
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"juz":      summary,
		"activity": activity,
	})
}
