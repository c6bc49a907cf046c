package models

import "time"

const (
	StatusNotStarted = "not-started"
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"
)

const (
	JuzCount    = 30
	PagesPerJuz = 20
	// TotalJuzPages is the full memorization target: 30 Juz of 20 pages each.
	TotalJuzPages = JuzCount * PagesPerJuz

	MaxJuzNotesLength = 500
)

type Juz struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	UserID    uint       `gorm:"not null;uniqueIndex:uidx_user_juz" json:"userId"`
	JuzNumber int        `gorm:"not null;uniqueIndex:uidx_user_juz" json:"juzNumber"`
	Status    string     `gorm:"not null;default:not-started" json:"status"`
	Pages     int        `gorm:"not null;default:0" json:"pages"`
	StartDate *time.Time `json:"startDate"`
	EndDate   *time.Time `json:"endDate"`
	Notes     string     `gorm:"not null;default:''" json:"notes"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

func (Juz) TableName() string {
	return "juz_records"
}

func ValidJuzNumber(number int) bool {
	return number >= 1 && number <= JuzCount
}

func ValidJuzStatus(status string) bool {
	switch status {
	case StatusNotStarted, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}
