package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Get("/signup-status", handler.SignupStatus)
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Get("/me", handler.AuthRequired, handler.Me)

	juz := api.Group("/juz", handler.AuthRequired)
	juz.Get("", handler.GetAllJuz)
	juz.Get("/summary", handler.GetJuzSummary)
	juz.Get("/:juzNumber", handler.GetJuzByNumber)
	juz.Put("/:juzNumber", handler.UpdateJuz)

	logs := api.Group("/logs", handler.AuthRequired)
	logs.Post("", handler.CreateLog)
	logs.Get("", handler.GetLogs)
	logs.Get("/stats", handler.GetLogStats)
	logs.Get("/:id", handler.GetLogByID)
	logs.Put("/:id", handler.UpdateLog)
	logs.Delete("/:id", handler.DeleteLog)

	stats := api.Group("/stats", handler.AuthRequired)
	stats.Get("/combined", handler.GetCombinedStats)

	leaderboard := api.Group("/leaderboard", handler.AuthRequired)
	leaderboard.Get("", handler.GetLeaderboard)
	leaderboard.Get("/me", handler.GetMyRank)

	users := api.Group("/users", handler.AuthRequired)
	users.Put("/me/settings", handler.UpdateMySettings)

	admin := api.Group("/admin", handler.AuthRequired, handler.AdminRequired)
	admin.Get("/stats", handler.AdminDashboard)
	admin.Get("/users", handler.AdminListUsers)
	admin.Get("/users/:id", handler.AdminGetUser)
	admin.Patch("/users/:id/role", handler.AdminUpdateUserRole)
	admin.Delete("/users/:id", handler.AdminDeleteUser)
	admin.Get("/invite-codes", handler.AdminListInviteCodes)
	admin.Post("/invite-codes", handler.AdminCreateInviteCode)
	admin.Patch("/invite-codes/:id/deactivate", handler.AdminDeactivateInviteCode)
	admin.Delete("/invite-codes/:id", handler.AdminDeleteInviteCode)
	admin.Get("/settings", handler.AdminGetAppSettings)
	admin.Put("/settings", handler.AdminUpdateAppSettings)
	admin.Post("/leaderboard/refresh", handler.AdminRefreshLeaderboard)
}

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}
