package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/hafiz-app/hafiz/internal/services"
)

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"success": false, "error": message})
}

// serviceError maps the service taxonomy onto HTTP statuses. Anything
// unrecognized is a 500 with the caller-supplied generic message.
func serviceError(c *fiber.Ctx, err error, fallback string) error {
	var validation *services.ValidationError
	switch {
	case errors.As(err, &validation):
		return apiError(c, fiber.StatusBadRequest, validation.Message)
	case errors.Is(err, services.ErrNotFound):
		return apiError(c, fiber.StatusNotFound, "not found")
	case errors.Is(err, services.ErrInvalidCredentials):
		return apiError(c, fiber.StatusUnauthorized, "invalid email or password")
	default:
		return apiError(c, fiber.StatusInternalServerError, fallback)
	}
}
