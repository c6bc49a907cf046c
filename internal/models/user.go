package models

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

const (
	LanguageArabic  = "ar"
	LanguageEnglish = "en"
)

const (
	ThemeDefault = "default"
	ThemeDark    = "dark"
)

const (
	MaxNameLength                   = 100
	MaxLeaderboardDisplayNameLength = 50
)

type User struct {
	ID                     uint      `gorm:"primaryKey" json:"id"`
	Email                  string    `gorm:"uniqueIndex;not null" json:"email"`
	Name                   string    `gorm:"not null" json:"name"`
	PasswordHash           string    `gorm:"not null" json:"-"`
	Role                   string    `gorm:"not null;default:user" json:"role"`
	Language               string    `gorm:"not null;default:ar" json:"language"`
	Theme                  string    `gorm:"not null;default:'default'" json:"theme"`
	ShowOnLeaderboard      bool      `gorm:"not null;default:true" json:"showOnLeaderboard"`
	LeaderboardDisplayName string    `gorm:"not null;default:''" json:"leaderboardDisplayName"`
	LastLoginAt            time.Time `json:"lastLoginAt"`
	CreatedAt              time.Time `gorm:"not null" json:"createdAt"`
	UpdatedAt              time.Time `json:"updatedAt"`
}

func (user *User) IsAdmin() bool {
	return user.Role == RoleAdmin
}

// DisplayNameForLeaderboard falls back to the real name when no override is set.
func (user *User) DisplayNameForLeaderboard() string {
	if user.LeaderboardDisplayName != "" {
		return user.LeaderboardDisplayName
	}
	return user.Name
}
