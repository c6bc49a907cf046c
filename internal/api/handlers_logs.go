package api

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/hafiz-app/hafiz/internal/services"
)

type logCreateRequest struct {
	Date         optionalDate `json:"date"`
	NewPages     string       `json:"newPages"`
	NewRating    int          `json:"newRating"`
	ReviewPages  string       `json:"reviewPages"`
	ReviewRating int          `json:"reviewRating"`
	Notes        string       `json:"notes"`
}

type logUpdateRequest struct {
	NewPages     *string `json:"newPages"`
	NewRating    *int    `json:"newRating"`
	ReviewPages  *string `json:"reviewPages"`
	ReviewRating *int    `json:"reviewRating"`
	Notes        *string `json:"notes"`
}

func (handler *Handler) CreateLog(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var request logCreateRequest
	if err := c.BodyParser(&request); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	entry, created, err := handler.logService.CreateLog(user.ID, services.LogInput{
		Date:         request.Date.value,
		NewPages:     request.NewPages,
		NewRating:    request.NewRating,
		ReviewPages:  request.ReviewPages,
		ReviewRating: request.ReviewRating,
		Notes:        request.Notes,
	})
	if err != nil {
		return serviceError(c, err, "failed to save log")
	}

	status := fiber.StatusOK
	if created {
		status = fiber.StatusCreated
	}
	return c.Status(status).JSON(fiber.Map{"success": true, "log": entry, "created": created})
}

func (handler *Handler) GetLogs(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	limit := c.QueryInt("limit", 50)
	offset := c.QueryInt("offset", 0)

	from, err := queryDate(c, "startDate")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid startDate")
	}
	to, err := queryDate(c, "endDate")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid endDate")
	}

	page, err := handler.logService.ListLogs(user.ID, limit, offset, from, to)
	if err != nil {
		return serviceError(c, err, "failed to load logs")
	}
	return c.JSON(fiber.Map{
		"success": true,
		"logs":    page.Logs,
		"total":   page.Total,
		"limit":   page.Limit,
		"offset":  page.Offset,
		"hasMore": page.HasMore,
	})
}

func (handler *Handler) GetLogByID(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	entryID, err := pathID(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid log id")
	}

	entry, err := handler.logService.GetLog(user.ID, entryID)
	if err != nil {
		return serviceError(c, err, "failed to load log")
	}
	return c.JSON(fiber.Map{"success": true, "log": entry})
}

func (handler *Handler) UpdateLog(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	entryID, err := pathID(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid log id")
	}

	var request logUpdateRequest
	if err := c.BodyParser(&request); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	entry, err := handler.logService.UpdateLog(user.ID, entryID, services.LogPatch{
		NewPages:     request.NewPages,
		NewRating:    request.NewRating,
		ReviewPages:  request.ReviewPages,
		ReviewRating: request.ReviewRating,
		Notes:        request.Notes,
	})
	if err != nil {
		return serviceError(c, err, "failed to update log")
	}
	return c.JSON(fiber.Map{"success": true, "log": entry})
}

func (handler *Handler) DeleteLog(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	entryID, err := pathID(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid log id")
	}

	if err := handler.logService.DeleteLog(user.ID, entryID); err != nil {
		return serviceError(c, err, "failed to delete log")
	}
	return c.JSON(fiber.Map{"success": true})
}

func (handler *Handler) GetLogStats(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	stats, err := handler.logService.StatsForUser(user.ID)
	if err != nil {
		return serviceError(c, err, "failed to compute stats")
	}
	return c.JSON(fiber.Map{"success": true, "stats": stats})
}

func pathID(c *fiber.Ctx, name string) (uint, error) {
	value, err := strconv.ParseUint(c.Params(name), 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(value), nil
}

func queryDate(c *fiber.Ctx, name string) (*time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	parsed, err := parseFlexibleDate(raw)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}
