package models

import "time"

const (
	InviteCodeLength           = 8
	MaxInviteDescriptionLength = 200
)

type InviteCode struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Code        string     `gorm:"uniqueIndex;not null" json:"code"`
	CreatedBy   uint       `gorm:"not null;index" json:"createdBy"`
	MaxUses     int        `gorm:"not null;default:1" json:"maxUses"`
	UsedCount   int        `gorm:"not null;default:0" json:"usedCount"`
	ExpiresAt   *time.Time `json:"expiresAt"`
	IsActive    bool       `gorm:"not null;default:true" json:"isActive"`
	Description string     `gorm:"not null;default:''" json:"description"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// InviteCodeUse records a single redemption of an invite code.
type InviteCodeUse struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	InviteCodeID uint      `gorm:"not null;index" json:"inviteCodeId"`
	UserID       uint      `gorm:"not null;index" json:"userId"`
	UsedAt       time.Time `gorm:"not null" json:"usedAt"`
}

// Usable reports whether the code can still be redeemed at the given moment.
func (code *InviteCode) Usable(now time.Time) (bool, string) {
	if !code.IsActive {
		return false, "code is inactive"
	}
	if code.ExpiresAt != nil && code.ExpiresAt.Before(now) {
		return false, "code has expired"
	}
	if code.UsedCount >= code.MaxUses {
		return false, "code has been fully used"
	}
	return true, ""
}
