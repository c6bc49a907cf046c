package models

import "time"

const (
	MaxPageRangeLength = 100
	MaxLogNotesLength  = 1000

	MinRating = 0
	MaxRating = 5
)

// LogEntry is one day of memorization activity. Dates are stored normalized
// to midnight UTC; at most one entry exists per user per calendar day.
type LogEntry struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       uint      `gorm:"not null;uniqueIndex:uidx_user_log_date" json:"userId"`
	Date         time.Time `gorm:"type:date;not null;uniqueIndex:uidx_user_log_date" json:"date"`
	NewPages     string    `gorm:"not null;default:''" json:"newPages"`
	NewRating    int       `gorm:"not null;default:0" json:"newRating"`
	ReviewPages  string    `gorm:"not null;default:''" json:"reviewPages"`
	ReviewRating int       `gorm:"not null;default:0" json:"reviewRating"`
	Notes        string    `gorm:"not null;default:''" json:"notes"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func ValidRating(rating int) bool {
	return rating >= MinRating && rating <= MaxRating
}
