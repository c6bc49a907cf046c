package db

import (
	"time"

	"github.com/hafiz-app/hafiz/internal/models"
	"gorm.io/gorm"
)

type LogRepository struct {
	database *gorm.DB
}

func NewLogRepository(database *gorm.DB) *LogRepository {
	return &LogRepository{database: database}
}

func (repo *LogRepository) ListByUser(userID uint) ([]models.LogEntry, error) {
	entries := make([]models.LogEntry, 0)
	if err := repo.database.Where("user_id = ?", userID).Order("date DESC, id DESC").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (repo *LogRepository) ListPage(userID uint, limit int, offset int, from *time.Time, to *time.Time) ([]models.LogEntry, int64, error) {
	query := repo.database.Model(&models.LogEntry{}).Where("user_id = ?", userID)
	if from != nil {
		query = query.Where("date >= ?", *from)
	}
	if to != nil {
		query = query.Where("date <= ?", *to)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	entries := make([]models.LogEntry, 0)
	if err := query.Order("date DESC, id DESC").Limit(limit).Offset(offset).Find(&entries).Error; err != nil {
		return nil, 0, err
	}
	return entries, total, nil
}

func (repo *LogRepository) FindByIDAndUser(entryID uint, userID uint) (models.LogEntry, bool, error) {
	var entry models.LogEntry
	result := repo.database.
		Where("id = ? AND user_id = ?", entryID, userID).
		Limit(1).
		Find(&entry)
	if result.Error != nil {
		return models.LogEntry{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.LogEntry{}, false, nil
	}
	return entry, true, nil
}

func (repo *LogRepository) FindByUserAndDate(userID uint, day time.Time) (models.LogEntry, bool, error) {
	var entry models.LogEntry
	result := repo.database.
		Where("user_id = ? AND date >= ? AND date < ?", userID, day, day.AddDate(0, 0, 1)).
		Order("id DESC").
		Limit(1).
		Find(&entry)
	if result.Error != nil {
		return models.LogEntry{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.LogEntry{}, false, nil
	}
	return entry, true, nil
}

func (repo *LogRepository) Create(entry *models.LogEntry) error {
	return repo.database.Create(entry).Error
}

func (repo *LogRepository) Save(entry *models.LogEntry) error {
	return repo.database.Save(entry).Error
}

func (repo *LogRepository) Delete(entryID uint, userID uint) error {
	return repo.database.Where("id = ? AND user_id = ?", entryID, userID).Delete(&models.LogEntry{}).Error
}

func (repo *LogRepository) CountAll() (int64, error) {
	var count int64
	if err := repo.database.Model(&models.LogEntry{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
