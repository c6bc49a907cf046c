package api

import (
	"time"

	"github.com/hafiz-app/hafiz/internal/db"
	"github.com/hafiz-app/hafiz/internal/services"
	"gorm.io/gorm"
)

const (
	contextUserKey = "current_user"

	defaultAuthTokenTTL = 7 * 24 * time.Hour
)

type Handler struct {
	secretKey []byte

	repositories *db.Repositories

	authService        *services.AuthService
	juzService         *services.JuzService
	logService         *services.LogService
	inviteService      *services.InviteService
	settingsService    *services.SettingsService
	appSettingsService *services.AppSettingsService
	adminService       *services.AdminService
	leaderboardCache   *services.LeaderboardCache
}

func NewHandler(database *gorm.DB, secretKey string) *Handler {
	repositories := db.NewRepositories(database)

	appSettings := services.NewAppSettingsService(repositories.AppSettings)
	invites := services.NewInviteService(repositories.InviteCodes)
	leaderboard := services.NewLeaderboardService(repositories.Users, repositories.Juz, repositories.Logs)

	return &Handler{
		secretKey:          []byte(secretKey),
		repositories:       repositories,
		authService:        services.NewAuthService(repositories.Users, appSettings, invites),
		juzService:         services.NewJuzService(repositories.Juz),
		logService:         services.NewLogService(repositories.Logs),
		inviteService:      invites,
		settingsService:    services.NewSettingsService(repositories.Users),
		appSettingsService: appSettings,
		adminService:       services.NewAdminService(repositories.Users, repositories.Juz, repositories.Logs),
		leaderboardCache:   services.NewLeaderboardCache(leaderboard, services.DefaultLeaderboardTTL),
	}
}
