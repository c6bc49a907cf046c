package db

import (
	"github.com/hafiz-app/hafiz/internal/models"
	"gorm.io/gorm"
)

type AppSettingsRepository struct {
	database *gorm.DB
}

func NewAppSettingsRepository(database *gorm.DB) *AppSettingsRepository {
	return &AppSettingsRepository{database: database}
}

// Load returns the singleton settings row, creating it with defaults when
// none exists yet.
func (repo *AppSettingsRepository) Load() (models.AppSettings, error) {
	var settings models.AppSettings
	result := repo.database.Order("id ASC").Limit(1).Find(&settings)
	if result.Error != nil {
		return models.AppSettings{}, result.Error
	}
	if result.RowsAffected > 0 {
		return settings, nil
	}

	settings = models.AppSettings{
		RequireInviteCode:  false,
		LeaderboardEnabled: true,
	}
	if err := repo.database.Create(&settings).Error; err != nil {
		return models.AppSettings{}, err
	}
	return settings, nil
}

func (repo *AppSettingsRepository) Save(settings *models.AppSettings) error {
	return repo.database.Save(settings).Error
}
