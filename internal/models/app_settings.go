package models

import "time"

// AppSettings is a singleton row controlling app-wide behavior.
type AppSettings struct {
	ID                 uint      `gorm:"primaryKey" json:"-"`
	RequireInviteCode  bool      `gorm:"not null;default:false" json:"requireInviteCode"`
	LeaderboardEnabled bool      `gorm:"not null;default:true" json:"leaderboardEnabled"`
	CreatedAt          time.Time `json:"-"`
	UpdatedAt          time.Time `json:"updatedAt"`
}
