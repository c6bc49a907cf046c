package services

import (
	"strings"

	"github.com/hafiz-app/hafiz/internal/models"
)

type SettingsUserRepository interface {
	FindByID(userID uint) (models.User, error)
	UpdateByID(userID uint, updates map[string]any) error
}

type SettingsService struct {
	users SettingsUserRepository
}

func NewSettingsService(users SettingsUserRepository) *SettingsService {
	return &SettingsService{users: users}
}

// UserSettingsPatch carries only the fields present in the request.
type UserSettingsPatch struct {
	Name                   *string
	Language               *string
	Theme                  *string
	ShowOnLeaderboard      *bool
	LeaderboardDisplayName *string
}

// UpdateSettings applies a partial settings update and returns the stored
// user. Leaderboard-visibility changes do not touch the cached ranking; the
// caller reads their rank with forceRefresh to see the change.
func (service *SettingsService) UpdateSettings(userID uint, patch UserSettingsPatch) (models.User, error) {
	updates := make(map[string]any)

	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" || len(name) > models.MaxNameLength {
			return models.User{}, NewValidationError("name is required and cannot exceed 100 characters")
		}
		updates["name"] = name
	}
	if patch.Language != nil {
		switch *patch.Language {
		case models.LanguageArabic, models.LanguageEnglish:
			updates["language"] = *patch.Language
		default:
			return models.User{}, NewValidationError("invalid language")
		}
	}
	if patch.Theme != nil {
		switch *patch.Theme {
		case models.ThemeDefault, models.ThemeDark:
			updates["theme"] = *patch.Theme
		default:
			return models.User{}, NewValidationError("invalid theme")
		}
	}
	if patch.ShowOnLeaderboard != nil {
		updates["show_on_leaderboard"] = *patch.ShowOnLeaderboard
	}
	if patch.LeaderboardDisplayName != nil {
		displayName := strings.TrimSpace(*patch.LeaderboardDisplayName)
		if len(displayName) > models.MaxLeaderboardDisplayNameLength {
			return models.User{}, NewValidationError("display name cannot exceed 50 characters")
		}
		updates["leaderboard_display_name"] = displayName
	}

	if len(updates) == 0 {
		return models.User{}, NewValidationError("no settings provided")
	}

	if err := service.users.UpdateByID(userID, updates); err != nil {
		return models.User{}, err
	}
	return service.users.FindByID(userID)
}
