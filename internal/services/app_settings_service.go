package services

import "github.com/hafiz-app/hafiz/internal/models"

type AppSettingsStore interface {
	Load() (models.AppSettings, error)
	Save(settings *models.AppSettings) error
}

// AppSettingsService owns the app-wide singleton: invite-code gating and the
// leaderboard kill switch.
type AppSettingsService struct {
	store AppSettingsStore
}

func NewAppSettingsService(store AppSettingsStore) *AppSettingsService {
	return &AppSettingsService{store: store}
}

func (service *AppSettingsService) Get() (models.AppSettings, error) {
	return service.store.Load()
}

func (service *AppSettingsService) RequireInviteCode() (bool, error) {
	settings, err := service.store.Load()
	if err != nil {
		return false, err
	}
	return settings.RequireInviteCode, nil
}

func (service *AppSettingsService) LeaderboardEnabled() (bool, error) {
	settings, err := service.store.Load()
	if err != nil {
		return false, err
	}
	return settings.LeaderboardEnabled, nil
}

type AppSettingsPatch struct {
	RequireInviteCode  *bool
	LeaderboardEnabled *bool
}

func (service *AppSettingsService) Update(patch AppSettingsPatch) (models.AppSettings, error) {
	settings, err := service.store.Load()
	if err != nil {
		return models.AppSettings{}, err
	}

	if patch.RequireInviteCode != nil {
		settings.RequireInviteCode = *patch.RequireInviteCode
	}
	if patch.LeaderboardEnabled != nil {
		settings.LeaderboardEnabled = *patch.LeaderboardEnabled
	}

	if err := service.store.Save(&settings); err != nil {
		return models.AppSettings{}, err
	}
	return settings, nil
}
