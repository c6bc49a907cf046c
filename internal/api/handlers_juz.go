package api

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/hafiz-app/hafiz/internal/services"
)

type juzUpdateRequest struct {
	Status    *string      `json:"status"`
	Pages     *int         `json:"pages"`
	StartDate optionalDate `json:"startDate"`
	EndDate   optionalDate `json:"endDate"`
	Notes     *string      `json:"notes"`
}

func (handler *Handler) GetAllJuz(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	records, err := handler.juzService.ListForUser(user.ID)
	if err != nil {
		return serviceError(c, err, "failed to load juz progress")
	}
	return c.JSON(fiber.Map{"success": true, "juz": records, "count": len(records)})
}

func (handler *Handler) GetJuzByNumber(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	juzNumber, err := strconv.Atoi(c.Params("juzNumber"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "juz number must be between 1 and 30")
	}

	record, err := handler.juzService.GetByNumber(user.ID, juzNumber)
	if err != nil {
		return serviceError(c, err, "failed to load juz")
	}
	return c.JSON(fiber.Map{"success": true, "juz": record})
}

func (handler *Handler) UpdateJuz(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	juzNumber, err := strconv.Atoi(c.Params("juzNumber"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "juz number must be between 1 and 30")
	}

	var request juzUpdateRequest
	if err := c.BodyParser(&request); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	record, err := handler.juzService.UpdateJuz(user.ID, juzNumber, services.JuzPatch{
		Status:    request.Status,
		Pages:     request.Pages,
		StartDate: services.OptionalTime{Set: request.StartDate.set, Value: request.StartDate.value},
		EndDate:   services.OptionalTime{Set: request.EndDate.set, Value: request.EndDate.value},
		Notes:     request.Notes,
	})
	if err != nil {
		return serviceError(c, err, "failed to update juz")
	}
	return c.JSON(fiber.Map{"success": true, "juz": record})
}

func (handler *Handler) GetJuzSummary(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	summary, err := handler.juzService.Summary(user.ID)
	if err != nil {
		return serviceError(c, err, "failed to build summary")
	}
	return c.JSON(fiber.Map{"success": true, "summary": summary})
}
