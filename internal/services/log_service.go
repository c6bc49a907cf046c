package services

import (
	"strings"
	"time"

	"github.com/hafiz-app/hafiz/internal/models"
)

type LogRepository interface {
	ListByUser(userID uint) ([]models.LogEntry, error)
	ListPage(userID uint, limit int, offset int, from *time.Time, to *time.Time) ([]models.LogEntry, int64, error)
	FindByIDAndUser(entryID uint, userID uint) (models.LogEntry, bool, error)
	FindByUserAndDate(userID uint, day time.Time) (models.LogEntry, bool, error)
	Create(entry *models.LogEntry) error
	Save(entry *models.LogEntry) error
	Delete(entryID uint, userID uint) error
}

type LogService struct {
	logs LogRepository
	now  func() time.Time
}

func NewLogService(logs LogRepository) *LogService {
	return &LogService{
		logs: logs,
		now:  time.Now,
	}
}

type LogInput struct {
	Date         *time.Time
	NewPages     string
	NewRating    int
	ReviewPages  string
	ReviewRating int
	Notes        string
}

// LogPatch is a partial update; nil fields were absent from the request.
type LogPatch struct {
	NewPages     *string
	NewRating    *int
	ReviewPages  *string
	ReviewRating *int
	Notes        *string
}

// CreateLog stores one day of activity. One entry exists per user per
// calendar day: logging twice on the same day updates the existing entry in
// place instead of double counting it into totalDays.
func (service *LogService) CreateLog(userID uint, input LogInput) (models.LogEntry, bool, error) {
	day := service.now()
	if input.Date != nil {
		day = *input.Date
	}

	entry := models.LogEntry{
		UserID:       userID,
		Date:         UTCDay(day),
		NewPages:     strings.TrimSpace(input.NewPages),
		NewRating:    input.NewRating,
		ReviewPages:  strings.TrimSpace(input.ReviewPages),
		ReviewRating: input.ReviewRating,
		Notes:        strings.TrimSpace(input.Notes),
	}
	if err := validateLogEntry(&entry); err != nil {
		return models.LogEntry{}, false, err
	}

	existing, found, err := service.logs.FindByUserAndDate(userID, entry.Date)
	if err != nil {
		return models.LogEntry{}, false, err
	}
	if found {
		existing.NewPages = entry.NewPages
		existing.NewRating = entry.NewRating
		existing.ReviewPages = entry.ReviewPages
		existing.ReviewRating = entry.ReviewRating
		existing.Notes = entry.Notes
		if err := service.logs.Save(&existing); err != nil {
			return models.LogEntry{}, false, err
		}
		return existing, false, nil
	}

	if err := service.logs.Create(&entry); err != nil {
		return models.LogEntry{}, false, err
	}
	return entry, true, nil
}

func (service *LogService) GetLog(userID uint, entryID uint) (models.LogEntry, error) {
	entry, found, err := service.logs.FindByIDAndUser(entryID, userID)
	if err != nil {
		return models.LogEntry{}, err
	}
	if !found {
		return models.LogEntry{}, ErrNotFound
	}
	return entry, nil
}

func (service *LogService) UpdateLog(userID uint, entryID uint, patch LogPatch) (models.LogEntry, error) {
	entry, err := service.GetLog(userID, entryID)
	if err != nil {
		return models.LogEntry{}, err
	}

	if patch.NewPages != nil {
		entry.NewPages = strings.TrimSpace(*patch.NewPages)
	}
	if patch.NewRating != nil {
		entry.NewRating = *patch.NewRating
	}
	if patch.ReviewPages != nil {
		entry.ReviewPages = strings.TrimSpace(*patch.ReviewPages)
	}
	if patch.ReviewRating != nil {
		entry.ReviewRating = *patch.ReviewRating
	}
	if patch.Notes != nil {
		entry.Notes = strings.TrimSpace(*patch.Notes)
	}

	if err := validateLogEntry(&entry); err != nil {
		return models.LogEntry{}, err
	}
	if err := service.logs.Save(&entry); err != nil {
		return models.LogEntry{}, err
	}
	return entry, nil
}

func (service *LogService) DeleteLog(userID uint, entryID uint) error {
	if _, err := service.GetLog(userID, entryID); err != nil {
		return err
	}
	return service.logs.Delete(entryID, userID)
}

type LogPage struct {
	Logs    []models.LogEntry `json:"logs"`
	Total   int64             `json:"total"`
	Limit   int               `json:"limit"`
	Offset  int               `json:"offset"`
	HasMore bool              `json:"hasMore"`
}

func (service *LogService) ListLogs(userID uint, limit int, offset int, from *time.Time, to *time.Time) (LogPage, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	var fromDay, toDay *time.Time
	if from != nil {
		day := UTCDay(*from)
		fromDay = &day
	}
	if to != nil {
		day := UTCDay(*to)
		toDay = &day
	}

	entries, total, err := service.logs.ListPage(userID, limit, offset, fromDay, toDay)
	if err != nil {
		return LogPage{}, err
	}
	return LogPage{
		Logs:    entries,
		Total:   total,
		Limit:   limit,
		Offset:  offset,
		HasMore: int64(offset+len(entries)) < total,
	}, nil
}

func (service *LogService) StatsForUser(userID uint) (ActivityStats, error) {
	entries, err := service.logs.ListByUser(userID)
	if err != nil {
		return ActivityStats{}, err
	}
	return CalculateActivityStats(entries, service.now()), nil
}

func validateLogEntry(entry *models.LogEntry) error {
	if entry.NewPages == "" && entry.ReviewPages == "" {
		return NewValidationError("at least one of newPages or reviewPages must be provided")
	}
	if len(entry.NewPages) > models.MaxPageRangeLength || len(entry.ReviewPages) > models.MaxPageRangeLength {
		return NewValidationError("page ranges cannot exceed 100 characters")
	}
	if !ValidPageRangeString(entry.NewPages) || !ValidPageRangeString(entry.ReviewPages) {
		return NewValidationError("invalid page format, use numbers, commas, spaces, and hyphens only")
	}
	if !models.ValidRating(entry.NewRating) || !models.ValidRating(entry.ReviewRating) {
		return NewValidationError("rating must be between 0 and 5")
	}
	if len(entry.Notes) > models.MaxLogNotesLength {
		return NewValidationError("notes cannot exceed 1000 characters")
	}
	return nil
}
