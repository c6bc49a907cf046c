package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/hafiz-app/hafiz/internal/services"
)

type inviteCreateRequest struct {
	MaxUses     int          `json:"maxUses"`
	ExpiresAt   optionalDate `json:"expiresAt"`
	Description string       `json:"description"`
}

type roleUpdateRequest struct {
	Role string `json:"role"`
}

type appSettingsRequest struct {
	RequireInviteCode  *bool `json:"requireInviteCode"`
	LeaderboardEnabled *bool `json:"leaderboardEnabled"`
}

func (handler *Handler) AdminDashboard(c *fiber.Ctx) error {
	stats, err := handler.adminService.Dashboard()
	if err != nil {
		return serviceError(c, err, "failed to load dashboard")
	}
	return c.JSON(fiber.Map{"success": true, "stats": stats})
}

func (handler *Handler) AdminListUsers(c *fiber.Ctx) error {
	page, err := handler.adminService.ListUsers(
		c.Query("search"),
		c.Query("role"),
		c.QueryInt("page", 1),
		c.QueryInt("limit", 20),
	)
	if err != nil {
		return serviceError(c, err, "failed to list users")
	}
	return c.JSON(fiber.Map{
		"success":     true,
		"users":       page.Users,
		"currentPage": page.CurrentPage,
		"totalPages":  page.TotalPages,
		"totalCount":  page.TotalCount,
		"hasMore":     page.HasMore,
	})
}

// AdminGetUser returns the account together with its memorization summary and
// activity stats, so the admin detail page needs one request.
func (handler *Handler) AdminGetUser(c *fiber.Ctx) error {
	userID, err := pathID(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid user id")
	}

	target, err := handler.adminService.GetUser(userID)
	if err != nil {
		return serviceError(c, err, "failed to load user")
	}

	summary, err := handler.juzService.Summary(target.ID)
	if err != nil {
		return serviceError(c, err, "failed to load user")
	}
	activity, err := handler.logService.StatsForUser(target.ID)
	if err != nil {
		return serviceError(c, err, "failed to load user")
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"user":     target,
		"juz":      summary,
		"activity": activity,
	})
}

func (handler *Handler) AdminUpdateUserRole(c *fiber.Ctx) error {
	admin, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	userID, err := pathID(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid user id")
	}
	if userID == admin.ID {
		return apiError(c, fiber.StatusBadRequest, "cannot change your own role")
	}

	var request roleUpdateRequest
	if err := c.BodyParser(&request); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	updated, err := handler.adminService.UpdateUserRole(userID, request.Role)
	if err != nil {
		return serviceError(c, err, "failed to update role")
	}
	return c.JSON(fiber.Map{"success": true, "user": updated})
}

func (handler *Handler) AdminDeleteUser(c *fiber.Ctx) error {
	admin, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	userID, err := pathID(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid user id")
	}
	if userID == admin.ID {
		return apiError(c, fiber.StatusBadRequest, "cannot delete your own account")
	}

	if err := handler.adminService.DeleteUser(userID); err != nil {
		return serviceError(c, err, "failed to delete user")
	}
	return c.JSON(fiber.Map{"success": true})
}

func (handler *Handler) AdminListInviteCodes(c *fiber.Ctx) error {
	codes, err := handler.inviteService.List()
	if err != nil {
		return serviceError(c, err, "failed to list invite codes")
	}
	return c.JSON(fiber.Map{"success": true, "inviteCodes": codes, "count": len(codes)})
}

func (handler *Handler) AdminCreateInviteCode(c *fiber.Ctx) error {
	admin, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var request inviteCreateRequest
	if err := c.BodyParser(&request); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	var expiresAt *time.Time
	if request.ExpiresAt.set {
		expiresAt = request.ExpiresAt.value
	}

	code, err := handler.inviteService.CreateCode(services.CreateInviteInput{
		CreatedBy:   admin.ID,
		MaxUses:     request.MaxUses,
		ExpiresAt:   expiresAt,
		Description: request.Description,
	})
	if err != nil {
		return serviceError(c, err, "failed to create invite code")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "inviteCode": code})
}

func (handler *Handler) AdminDeactivateInviteCode(c *fiber.Ctx) error {
	codeID, err := pathID(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid invite code id")
	}

	code, err := handler.inviteService.Deactivate(codeID)
	if err != nil {
		return serviceError(c, err, "failed to deactivate invite code")
	}
	return c.JSON(fiber.Map{"success": true, "inviteCode": code})
}

func (handler *Handler) AdminDeleteInviteCode(c *fiber.Ctx) error {
	codeID, err := pathID(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid invite code id")
	}

	if err := handler.inviteService.Delete(codeID); err != nil {
		return serviceError(c, err, "failed to delete invite code")
	}
	return c.JSON(fiber.Map{"success": true})
}

func (handler *Handler) AdminGetAppSettings(c *fiber.Ctx) error {
	settings, err := handler.appSettingsService.Get()
	if err != nil {
		return serviceError(c, err, "failed to load settings")
	}
	return c.JSON(fiber.Map{"success": true, "settings": settings})
}

func (handler *Handler) AdminUpdateAppSettings(c *fiber.Ctx) error {
	var request appSettingsRequest
	if err := c.BodyParser(&request); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	settings, err := handler.appSettingsService.Update(services.AppSettingsPatch{
		RequireInviteCode:  request.RequireInviteCode,
		LeaderboardEnabled: request.LeaderboardEnabled,
	})
	if err != nil {
		return serviceError(c, err, "failed to update settings")
	}
	return c.JSON(fiber.Map{"success": true, "settings": settings})
}

func (handler *Handler) AdminRefreshLeaderboard(c *fiber.Ctx) error {
	snapshot, err := handler.leaderboardCache.Refresh(c.Context())
	if err != nil {
		return serviceError(c, err, "failed to refresh leaderboard")
	}
	return c.JSON(fiber.Map{
		"success":     true,
		"totalUsers":  len(snapshot.Entries),
		"lastUpdated": snapshot.ComputedAt.UTC().Format(time.RFC3339),
	})
}
