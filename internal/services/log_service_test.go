package services

import (
	"strings"
	"testing"
	"time"

	"github.com/hafiz-app/hafiz/internal/models"
)

type stubLogRepository struct {
	entries []models.LogEntry
	nextID  uint
}

func (stub *stubLogRepository) ListByUser(userID uint) ([]models.LogEntry, error) {
	result := make([]models.LogEntry, 0, len(stub.entries))
	for _, entry := range stub.entries {
		if entry.UserID == userID {
			result = append(result, entry)
		}
	}
	return result, nil
}

func (stub *stubLogRepository) ListPage(userID uint, limit int, offset int, from *time.Time, to *time.Time) ([]models.LogEntry, int64, error) {
	matched := make([]models.LogEntry, 0, len(stub.entries))
	for _, entry := range stub.entries {
		if entry.UserID != userID {
			continue
		}
		if from != nil && entry.Date.Before(*from) {
			continue
		}
		if to != nil && entry.Date.After(*to) {
			continue
		}
		matched = append(matched, entry)
	}
	total := int64(len(matched))
	if offset >= len(matched) {
		return nil, total, nil
	}
	matched = matched[offset:]
	if limit < len(matched) {
		matched = matched[:limit]
	}
	return matched, total, nil
}

func (stub *stubLogRepository) FindByIDAndUser(entryID uint, userID uint) (models.LogEntry, bool, error) {
	for _, entry := range stub.entries {
		if entry.ID == entryID && entry.UserID == userID {
			return entry, true, nil
		}
	}
	return models.LogEntry{}, false, nil
}

func (stub *stubLogRepository) FindByUserAndDate(userID uint, day time.Time) (models.LogEntry, bool, error) {
	for _, entry := range stub.entries {
		if entry.UserID == userID && entry.Date.Equal(day) {
			return entry, true, nil
		}
	}
	return models.LogEntry{}, false, nil
}

func (stub *stubLogRepository) Create(entry *models.LogEntry) error {
	stub.nextID++
	entry.ID = stub.nextID
	stub.entries = append(stub.entries, *entry)
	return nil
}

func (stub *stubLogRepository) Save(entry *models.LogEntry) error {
	for index := range stub.entries {
		if stub.entries[index].ID == entry.ID {
			stub.entries[index] = *entry
			return nil
		}
	}
	stub.entries = append(stub.entries, *entry)
	return nil
}

func (stub *stubLogRepository) Delete(entryID uint, userID uint) error {
	for index, entry := range stub.entries {
		if entry.ID == entryID && entry.UserID == userID {
			stub.entries = append(stub.entries[:index], stub.entries[index+1:]...)
			return nil
		}
	}
	return nil
}

func newLogServiceFixture(t *testing.T, today string) (*LogService, *stubLogRepository) {
	t.Helper()
	repo := &stubLogRepository{}
	service := NewLogService(repo)
	now := mustParseDay(t, today).Add(14 * time.Hour)
	service.now = func() time.Time { return now }
	return service, repo
}

func TestCreateLogNormalizesDateToUTCDay(t *testing.T) {
	service, _ := newLogServiceFixture(t, "2026-03-10")

	entry, created, err := service.CreateLog(1, LogInput{NewPages: "1-2", NewRating: 4})
	if err != nil {
		t.Fatalf("CreateLog() unexpected error: %v", err)
	}
	if !created {
		t.Fatalf("expected a new entry")
	}
	if !entry.Date.Equal(mustParseDay(t, "2026-03-10")) {
		t.Fatalf("expected date normalized to midnight UTC, got %v", entry.Date)
	}
}

func TestCreateLogSameDayUpdatesInPlace(t *testing.T) {
	service, repo := newLogServiceFixture(t, "2026-03-10")

	if _, _, err := service.CreateLog(1, LogInput{NewPages: "1", NewRating: 3}); err != nil {
		t.Fatalf("first CreateLog() unexpected error: %v", err)
	}

	entry, created, err := service.CreateLog(1, LogInput{NewPages: "1-2", NewRating: 5, Notes: "better run"})
	if err != nil {
		t.Fatalf("second CreateLog() unexpected error: %v", err)
	}
	if created {
		t.Fatalf("expected the same-day entry to be updated, not created")
	}
	if len(repo.entries) != 1 {
		t.Fatalf("expected one stored entry, got %d", len(repo.entries))
	}
	if entry.NewPages != "1-2" || entry.NewRating != 5 || entry.Notes != "better run" {
		t.Fatalf("expected updated fields, got %#v", entry)
	}
}

func TestCreateLogValidation(t *testing.T) {
	service, _ := newLogServiceFixture(t, "2026-03-10")

	tests := []struct {
		name  string
		input LogInput
	}{
		{name: "no pages at all", input: LogInput{NewRating: 3}},
		{name: "bad page grammar", input: LogInput{NewPages: "1;2"}},
		{name: "range too long", input: LogInput{NewPages: strings.Repeat("1,", models.MaxPageRangeLength)}},
		{name: "rating out of range", input: LogInput{NewPages: "1", NewRating: 6}},
		{name: "notes too long", input: LogInput{NewPages: "1", Notes: strings.Repeat("x", models.MaxLogNotesLength+1)}},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			if _, _, err := service.CreateLog(1, testCase.input); !IsValidationError(err) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestUpdateLogMergesPatch(t *testing.T) {
	service, _ := newLogServiceFixture(t, "2026-03-10")
	entry, _, err := service.CreateLog(1, LogInput{NewPages: "1", NewRating: 3, ReviewPages: "10-12", ReviewRating: 4})
	if err != nil {
		t.Fatalf("CreateLog() unexpected error: %v", err)
	}

	updated, err := service.UpdateLog(1, entry.ID, LogPatch{NewRating: intPtr(5)})
	if err != nil {
		t.Fatalf("UpdateLog() unexpected error: %v", err)
	}
	if updated.NewRating != 5 {
		t.Fatalf("expected patched rating, got %d", updated.NewRating)
	}
	if updated.NewPages != "1" || updated.ReviewPages != "10-12" {
		t.Fatalf("expected untouched fields preserved, got %#v", updated)
	}
}

func TestUpdateLogClearingAllPagesFails(t *testing.T) {
	service, _ := newLogServiceFixture(t, "2026-03-10")
	entry, _, err := service.CreateLog(1, LogInput{NewPages: "1"})
	if err != nil {
		t.Fatalf("CreateLog() unexpected error: %v", err)
	}

	if _, err := service.UpdateLog(1, entry.ID, LogPatch{NewPages: stringPtr("")}); !IsValidationError(err) {
		t.Fatalf("expected validation error when both page fields end up empty, got %v", err)
	}
}

func TestGetLogScopedToOwner(t *testing.T) {
	service, _ := newLogServiceFixture(t, "2026-03-10")
	entry, _, err := service.CreateLog(1, LogInput{NewPages: "1"})
	if err != nil {
		t.Fatalf("CreateLog() unexpected error: %v", err)
	}

	if _, err := service.GetLog(2, entry.ID); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound for another user's log, got %v", err)
	}
}

func TestDeleteLogMissingEntry(t *testing.T) {
	service, _ := newLogServiceFixture(t, "2026-03-10")
	if err := service.DeleteLog(1, 42); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListLogsPagination(t *testing.T) {
	service, repo := newLogServiceFixture(t, "2026-03-10")
	for day := 1; day <= 5; day++ {
		repo.entries = append(repo.entries, models.LogEntry{
			ID:       uint(day),
			UserID:   1,
			Date:     mustParseDay(t, "2026-03-10").AddDate(0, 0, -day),
			NewPages: "1",
		})
	}

	page, err := service.ListLogs(1, 2, 2, nil, nil)
	if err != nil {
		t.Fatalf("ListLogs() unexpected error: %v", err)
	}
	if page.Total != 5 || len(page.Logs) != 2 {
		t.Fatalf("expected 2 of 5 logs, got %#v", page)
	}
	if !page.HasMore {
		t.Fatalf("expected more pages available")
	}
}

func TestStatsForUserUsesInjectedClock(t *testing.T) {
	service, repo := newLogServiceFixture(t, "2026-03-10")
	repo.entries = append(repo.entries,
		models.LogEntry{ID: 1, UserID: 1, Date: mustParseDay(t, "2026-03-10"), NewPages: "1", NewRating: 4},
		models.LogEntry{ID: 2, UserID: 1, Date: mustParseDay(t, "2026-03-09"), NewPages: "2", NewRating: 4},
	)

	stats, err := service.StatsForUser(1)
	if err != nil {
		t.Fatalf("StatsForUser() unexpected error: %v", err)
	}
	if stats.CurrentStreak != 2 {
		t.Fatalf("expected streak 2, got %d", stats.CurrentStreak)
	}
}
