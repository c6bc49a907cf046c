package db

import (
	"github.com/hafiz-app/hafiz/internal/models"
	"gorm.io/gorm"
)

type InviteCodeRepository struct {
	database *gorm.DB
}

func NewInviteCodeRepository(database *gorm.DB) *InviteCodeRepository {
	return &InviteCodeRepository{database: database}
}

func (repo *InviteCodeRepository) List() ([]models.InviteCode, error) {
	codes := make([]models.InviteCode, 0)
	if err := repo.database.Order("created_at DESC, id DESC").Find(&codes).Error; err != nil {
		return nil, err
	}
	return codes, nil
}

func (repo *InviteCodeRepository) FindByID(codeID uint) (models.InviteCode, bool, error) {
	var code models.InviteCode
	result := repo.database.Limit(1).Find(&code, codeID)
	if result.Error != nil {
		return models.InviteCode{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.InviteCode{}, false, nil
	}
	return code, true, nil
}

func (repo *InviteCodeRepository) FindByCode(code string) (models.InviteCode, bool, error) {
	var record models.InviteCode
	result := repo.database.Where("code = ?", code).Limit(1).Find(&record)
	if result.Error != nil {
		return models.InviteCode{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.InviteCode{}, false, nil
	}
	return record, true, nil
}

func (repo *InviteCodeRepository) ExistsByCode(code string) (bool, error) {
	var matched int64
	if err := repo.database.Model(&models.InviteCode{}).Where("code = ?", code).Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}

func (repo *InviteCodeRepository) Create(code *models.InviteCode) error {
	return repo.database.Create(code).Error
}

func (repo *InviteCodeRepository) Save(code *models.InviteCode) error {
	return repo.database.Save(code).Error
}

func (repo *InviteCodeRepository) Delete(codeID uint) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("invite_code_id = ?", codeID).Delete(&models.InviteCodeUse{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.InviteCode{}, codeID).Error
	})
}

// MarkUsed bumps the use counter, records the redemption, and deactivates the
// code once its last use is consumed.
func (repo *InviteCodeRepository) MarkUsed(code *models.InviteCode, use *models.InviteCodeUse) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		code.UsedCount++
		if code.UsedCount >= code.MaxUses {
			code.IsActive = false
		}
		if err := tx.Save(code).Error; err != nil {
			return err
		}
		return tx.Create(use).Error
	})
}
