package db

import (
	"github.com/hafiz-app/hafiz/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type JuzRepository struct {
	database *gorm.DB
}

func NewJuzRepository(database *gorm.DB) *JuzRepository {
	return &JuzRepository{database: database}
}

func (repo *JuzRepository) ListByUser(userID uint) ([]models.Juz, error) {
	records := make([]models.Juz, 0, models.JuzCount)
	if err := repo.database.Where("user_id = ?", userID).Order("juz_number ASC").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (repo *JuzRepository) CountByUser(userID uint) (int64, error) {
	var count int64
	if err := repo.database.Model(&models.Juz{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (repo *JuzRepository) FindByUserAndNumber(userID uint, juzNumber int) (models.Juz, bool, error) {
	var record models.Juz
	result := repo.database.
		Where("user_id = ? AND juz_number = ?", userID, juzNumber).
		Limit(1).
		Find(&record)
	if result.Error != nil {
		return models.Juz{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Juz{}, false, nil
	}
	return record, true, nil
}

// InitializeForUser creates the 30 not-started records, skipping any that
// already exist so concurrent first reads stay idempotent.
func (repo *JuzRepository) InitializeForUser(userID uint) error {
	records := make([]models.Juz, 0, models.JuzCount)
	for number := 1; number <= models.JuzCount; number++ {
		records = append(records, models.Juz{
			UserID:    userID,
			JuzNumber: number,
			Status:    models.StatusNotStarted,
			Pages:     0,
		})
	}
	return repo.database.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "juz_number"}},
			DoNothing: true,
		}).
		Create(&records).Error
}

func (repo *JuzRepository) Save(record *models.Juz) error {
	return repo.database.Save(record).Error
}

func (repo *JuzRepository) CountCompletedAll() (int64, error) {
	var count int64
	if err := repo.database.Model(&models.Juz{}).
		Where("status = ?", models.StatusCompleted).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (repo *JuzRepository) SumPagesAll() (int64, error) {
	var total int64
	if err := repo.database.Model(&models.Juz{}).
		Select("COALESCE(SUM(pages), 0)").
		Scan(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}
