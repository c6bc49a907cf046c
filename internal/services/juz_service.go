package services

import (
	"math"
	"time"

	"github.com/hafiz-app/hafiz/internal/models"
)

type JuzRepository interface {
	ListByUser(userID uint) ([]models.Juz, error)
	CountByUser(userID uint) (int64, error)
	FindByUserAndNumber(userID uint, juzNumber int) (models.Juz, bool, error)
	InitializeForUser(userID uint) error
	Save(record *models.Juz) error
}

type JuzService struct {
	juz JuzRepository
	now func() time.Time
}

func NewJuzService(juz JuzRepository) *JuzService {
	return &JuzService{
		juz: juz,
		now: time.Now,
	}
}

// EnsureInitialized lazily creates the 30 not-started records for a user.
// Safe to call before every progress read.
func (service *JuzService) EnsureInitialized(userID uint) error {
	count, err := service.juz.CountByUser(userID)
	if err != nil {
		return err
	}
	if count >= models.JuzCount {
		return nil
	}
	return service.juz.InitializeForUser(userID)
}

func (service *JuzService) ListForUser(userID uint) ([]models.Juz, error) {
	if err := service.EnsureInitialized(userID); err != nil {
		return nil, err
	}
	return service.juz.ListByUser(userID)
}

func (service *JuzService) GetByNumber(userID uint, juzNumber int) (models.Juz, error) {
	if !models.ValidJuzNumber(juzNumber) {
		return models.Juz{}, NewValidationError("juz number must be between 1 and 30")
	}
	if err := service.EnsureInitialized(userID); err != nil {
		return models.Juz{}, err
	}

	record, found, err := service.juz.FindByUserAndNumber(userID, juzNumber)
	if err != nil {
		return models.Juz{}, err
	}
	if !found {
		return models.Juz{}, ErrNotFound
	}
	return record, nil
}

// UpdateJuz loads the record, runs the patch through the sync engine, and
// persists the result. A rejected patch leaves the stored row untouched.
// Concurrent writes to the same record are last-write-wins; the sync engine
// keeps each individual write internally consistent.
func (service *JuzService) UpdateJuz(userID uint, juzNumber int, patch JuzPatch) (models.Juz, error) {
	existing, err := service.GetByNumber(userID, juzNumber)
	if err != nil {
		return models.Juz{}, err
	}

	synced, err := ApplyJuzPatch(existing, patch, service.now())
	if err != nil {
		return models.Juz{}, err
	}
	if err := checkJuzConsistency(synced); err != nil {
		return models.Juz{}, err
	}

	if err := service.juz.Save(&synced); err != nil {
		return models.Juz{}, err
	}
	return synced, nil
}

// checkJuzConsistency refuses to persist a status/pages pair the sync engine
// can never produce. Hitting it means a bug upstream, so the write fails
// instead of storing the inconsistency.
func checkJuzConsistency(record models.Juz) error {
	switch record.Status {
	case models.StatusCompleted:
		if record.Pages != models.PagesPerJuz {
			return &StateError{Message: "completed juz must carry all pages"}
		}
	case models.StatusNotStarted:
		if record.Pages != 0 {
			return &StateError{Message: "not started juz cannot carry pages"}
		}
	}
	return nil
}

type JuzSummary struct {
	Total                   int     `json:"total"`
	NotStarted              int     `json:"notStarted"`
	InProgress              int     `json:"inProgress"`
	Completed               int     `json:"completed"`
	TotalPages              int     `json:"totalPages"`
	CompletionPercentage    int     `json:"completionPercentage"`
	JuzCompletionPercentage float64 `json:"juzCompletionPercentage"`
	PageProgressPercentage  float64 `json:"pageProgressPercentage"`
}

func (service *JuzService) Summary(userID uint) (JuzSummary, error) {
	records, err := service.ListForUser(userID)
	if err != nil {
		return JuzSummary{}, err
	}
	return BuildJuzSummary(records), nil
}

func BuildJuzSummary(records []models.Juz) JuzSummary {
	summary := JuzSummary{Total: models.JuzCount}
	for _, record := range records {
		summary.TotalPages += record.Pages
		switch record.Status {
		case models.StatusCompleted:
			summary.Completed++
		case models.StatusInProgress:
			summary.InProgress++
		}
	}
	summary.NotStarted = models.JuzCount - summary.Completed - summary.InProgress

	summary.CompletionPercentage = int(math.Round(float64(summary.Completed) / models.JuzCount * 100))
	summary.JuzCompletionPercentage = roundOneDecimal(float64(summary.Completed) / models.JuzCount * 100)
	summary.PageProgressPercentage = roundOneDecimal(float64(summary.TotalPages) / models.TotalJuzPages * 100)
	return summary
}

func roundOneDecimal(value float64) float64 {
	return math.Round(value*10) / 10
}
