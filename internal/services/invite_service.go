package services

import (
	"errors"
	"strings"
	"time"

	"github.com/hafiz-app/hafiz/internal/models"
	"github.com/hafiz-app/hafiz/internal/security"
)

var errCodeGenerationExhausted = errors.New("failed to generate a unique invite code")

const codeGenerationAttempts = 10

type InviteCodeStore interface {
	List() ([]models.InviteCode, error)
	FindByID(codeID uint) (models.InviteCode, bool, error)
	FindByCode(code string) (models.InviteCode, bool, error)
	ExistsByCode(code string) (bool, error)
	Create(code *models.InviteCode) error
	Save(code *models.InviteCode) error
	Delete(codeID uint) error
	MarkUsed(code *models.InviteCode, use *models.InviteCodeUse) error
}

type InviteService struct {
	codes InviteCodeStore
	now   func() time.Time
}

func NewInviteService(codes InviteCodeStore) *InviteService {
	return &InviteService{
		codes: codes,
		now:   time.Now,
	}
}

type CreateInviteInput struct {
	CreatedBy   uint
	MaxUses     int
	ExpiresAt   *time.Time
	Description string
}

func (service *InviteService) CreateCode(input CreateInviteInput) (models.InviteCode, error) {
	if input.MaxUses < 1 {
		input.MaxUses = 1
	}
	description := strings.TrimSpace(input.Description)
	if len(description) > models.MaxInviteDescriptionLength {
		return models.InviteCode{}, NewValidationError("description cannot exceed 200 characters")
	}

	value, err := service.generateUniqueCode()
	if err != nil {
		return models.InviteCode{}, err
	}

	code := models.InviteCode{
		Code:        value,
		CreatedBy:   input.CreatedBy,
		MaxUses:     input.MaxUses,
		ExpiresAt:   input.ExpiresAt,
		IsActive:    true,
		Description: description,
	}
	if err := service.codes.Create(&code); err != nil {
		return models.InviteCode{}, err
	}
	return code, nil
}

func (service *InviteService) List() ([]models.InviteCode, error) {
	return service.codes.List()
}

// ValidateCode checks a code without consuming a use.
func (service *InviteService) ValidateCode(code string) (models.InviteCode, error) {
	record, found, err := service.codes.FindByCode(normalizeInviteCode(code))
	if err != nil {
		return models.InviteCode{}, err
	}
	if !found {
		return models.InviteCode{}, NewValidationError("invalid invite code")
	}
	if usable, reason := record.Usable(service.now()); !usable {
		return models.InviteCode{}, NewValidationError("invite " + reason)
	}
	return record, nil
}

func (service *InviteService) RedeemCode(code string, userID uint) error {
	record, err := service.ValidateCode(code)
	if err != nil {
		return err
	}
	use := models.InviteCodeUse{
		InviteCodeID: record.ID,
		UserID:       userID,
		UsedAt:       service.now(),
	}
	return service.codes.MarkUsed(&record, &use)
}

func (service *InviteService) Deactivate(codeID uint) (models.InviteCode, error) {
	record, found, err := service.codes.FindByID(codeID)
	if err != nil {
		return models.InviteCode{}, err
	}
	if !found {
		return models.InviteCode{}, ErrNotFound
	}

	record.IsActive = false
	if err := service.codes.Save(&record); err != nil {
		return models.InviteCode{}, err
	}
	return record, nil
}

func (service *InviteService) Delete(codeID uint) error {
	_, found, err := service.codes.FindByID(codeID)
	if err != nil {
		return err
	}
	if !found {
		return ErrNotFound
	}
	return service.codes.Delete(codeID)
}

func (service *InviteService) generateUniqueCode() (string, error) {
	for attempt := 0; attempt < codeGenerationAttempts; attempt++ {
		value, err := security.RandomString(models.InviteCodeLength, security.InviteCodeAlphabet)
		if err != nil {
			return "", err
		}
		exists, err := service.codes.ExistsByCode(value)
		if err != nil {
			return "", err
		}
		if !exists {
			return value, nil
		}
	}
	return "", errCodeGenerationExhausted
}

func normalizeInviteCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
