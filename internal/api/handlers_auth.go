package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/hafiz-app/hafiz/internal/services"
)

type registerRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	InviteCode string `json:"inviteCode"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignupStatus tells the (unauthenticated) signup page whether an invite
// code field must be shown.
func (handler *Handler) SignupStatus(c *fiber.Ctx) error {
	required, err := handler.appSettingsService.RequireInviteCode()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load signup status")
	}
	return c.JSON(fiber.Map{"success": true, "requireInviteCode": required})
}

func (handler *Handler) Register(c *fiber.Ctx) error {
	var request registerRequest
	if err := c.BodyParser(&request); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	user, err := handler.authService.Register(services.RegisterInput{
		Name:       request.Name,
		Email:      request.Email,
		Password:   request.Password,
		InviteCode: request.InviteCode,
	})
	if err != nil {
		return serviceError(c, err, "registration failed")
	}

	token, err := handler.buildToken(&user, defaultAuthTokenTTL)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to issue token")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"token":   token,
		"user":    user,
	})
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	var request loginRequest
	if err := c.BodyParser(&request); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	user, err := handler.authService.Login(request.Email, request.Password)
	if err != nil {
		return serviceError(c, err, "login failed")
	}

	token, err := handler.buildToken(&user, defaultAuthTokenTTL)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to issue token")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"token":   token,
		"user":    user,
	})
}

func (handler *Handler) Me(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	return c.JSON(fiber.Map{"success": true, "user": user})
}
