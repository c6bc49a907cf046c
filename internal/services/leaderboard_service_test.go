package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hafiz-app/hafiz/internal/models"
)

type stubLeaderboardUsers struct {
	users []models.User
	err   error
}

func (stub *stubLeaderboardUsers) ListOptedIn() ([]models.User, error) {
	if stub.err != nil {
		return nil, stub.err
	}
	result := make([]models.User, len(stub.users))
	copy(result, stub.users)
	return result, nil
}

type stubLeaderboardJuz struct {
	byUser map[uint][]models.Juz
	err    error
}

func (stub *stubLeaderboardJuz) ListByUser(userID uint) ([]models.Juz, error) {
	if stub.err != nil {
		return nil, stub.err
	}
	return stub.byUser[userID], nil
}

type stubLeaderboardLogs struct {
	byUser map[uint][]models.LogEntry
}

func (stub *stubLeaderboardLogs) ListByUser(userID uint) ([]models.LogEntry, error) {
	return stub.byUser[userID], nil
}

func newLeaderboardFixture(t *testing.T) *LeaderboardService {
	t.Helper()
	today := mustParseDay(t, "2026-03-10")

	users := &stubLeaderboardUsers{users: []models.User{
		{ID: 1, Name: "Aisha"},
		{ID: 2, Name: "Bilal", LeaderboardDisplayName: "AbuBakr"},
		{ID: 3, Name: "Khalid"},
	}}
	juz := &stubLeaderboardJuz{byUser: map[uint][]models.Juz{
		1: {
			{JuzNumber: 1, Status: models.StatusCompleted, Pages: 20},
			{JuzNumber: 2, Status: models.StatusInProgress, Pages: 10},
		},
		2: {
			{JuzNumber: 1, Status: models.StatusCompleted, Pages: 20},
			{JuzNumber: 2, Status: models.StatusCompleted, Pages: 20},
		},
		3: {
			{JuzNumber: 1, Status: models.StatusInProgress, Pages: 30},
		},
	}}
	logs := &stubLeaderboardLogs{byUser: map[uint][]models.LogEntry{
		1: {{Date: today, NewPages: "1"}},
	}}

	service := NewLeaderboardService(users, juz, logs)
	service.now = func() time.Time { return today }
	return service
}

func TestLeaderboardComputeOrderingAndRanks(t *testing.T) {
	service := newLeaderboardFixture(t)

	entries, err := service.Compute(context.Background())
	if err != nil {
		t.Fatalf("Compute() unexpected error: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}

	// User 2 leads on total pages; users 1 and 3 tie on pages, so the
	// completed-juz count breaks the tie in user 1's favour.
	if entries[0].UserID != 2 || entries[1].UserID != 1 || entries[2].UserID != 3 {
		t.Fatalf("unexpected order: %#v", entries)
	}
	for index, entry := range entries {
		if entry.Rank != index+1 {
			t.Fatalf("expected rank %d at position %d, got %d", index+1, index, entry.Rank)
		}
	}
	if entries[0].TotalPages != 40 || entries[0].CompletedJuz != 2 {
		t.Fatalf("unexpected aggregation for leader: %#v", entries[0])
	}
	if entries[1].Streak != 1 {
		t.Fatalf("expected streak 1 for user 1, got %d", entries[1].Streak)
	}
}

func TestLeaderboardComputeDisplayNameFallback(t *testing.T) {
	service := newLeaderboardFixture(t)

	entries, err := service.Compute(context.Background())
	if err != nil {
		t.Fatalf("Compute() unexpected error: %v", err)
	}

	names := map[uint]string{}
	for _, entry := range entries {
		names[entry.UserID] = entry.Name
	}
	if names[1] != "Aisha" {
		t.Fatalf("expected real name fallback, got %q", names[1])
	}
	if names[2] != "AbuBakr" {
		t.Fatalf("expected display name override, got %q", names[2])
	}
}

func TestLeaderboardComputeStreakBreaksPageTie(t *testing.T) {
	today := mustParseDay(t, "2026-03-10")
	users := &stubLeaderboardUsers{users: []models.User{
		{ID: 1, Name: "First"},
		{ID: 2, Name: "Second"},
	}}
	juz := &stubLeaderboardJuz{byUser: map[uint][]models.Juz{
		1: {{JuzNumber: 1, Status: models.StatusCompleted, Pages: 20}},
		2: {{JuzNumber: 1, Status: models.StatusCompleted, Pages: 20}},
	}}
	logs := &stubLeaderboardLogs{byUser: map[uint][]models.LogEntry{
		2: {{Date: today, NewPages: "1"}},
	}}

	service := NewLeaderboardService(users, juz, logs)
	service.now = func() time.Time { return today }

	entries, err := service.Compute(context.Background())
	if err != nil {
		t.Fatalf("Compute() unexpected error: %v", err)
	}
	if entries[0].UserID != 2 {
		t.Fatalf("expected streak to break the tie, got %#v", entries)
	}
}

func TestLeaderboardComputeFullTiesKeepInputOrder(t *testing.T) {
	today := mustParseDay(t, "2026-03-10")
	users := &stubLeaderboardUsers{users: []models.User{
		{ID: 11, Name: "Earlier"},
		{ID: 22, Name: "Later"},
	}}
	sharedJuz := []models.Juz{
		{JuzNumber: 1, Status: models.StatusCompleted, Pages: 20},
		{JuzNumber: 2, Status: models.StatusInProgress, Pages: 5},
	}
	juz := &stubLeaderboardJuz{byUser: map[uint][]models.Juz{
		11: sharedJuz,
		22: sharedJuz,
	}}

	service := NewLeaderboardService(users, juz, &stubLeaderboardLogs{})
	service.now = func() time.Time { return today }

	entries, err := service.Compute(context.Background())
	if err != nil {
		t.Fatalf("Compute() unexpected error: %v", err)
	}
	// Identical on all three sort keys, so the listing order decides.
	if entries[0].UserID != 11 || entries[1].UserID != 22 {
		t.Fatalf("expected full ties to keep input order, got %#v", entries)
	}
	if entries[0].Rank != 1 || entries[1].Rank != 2 {
		t.Fatalf("expected ranks 1 and 2 despite the tie, got %#v", entries)
	}
}

func TestLeaderboardComputePropagatesErrors(t *testing.T) {
	users := &stubLeaderboardUsers{users: []models.User{{ID: 1, Name: "A"}}}
	juz := &stubLeaderboardJuz{err: errors.New("load failed")}
	service := NewLeaderboardService(users, juz, &stubLeaderboardLogs{})

	if _, err := service.Compute(context.Background()); err == nil {
		t.Fatalf("expected error when juz loading fails")
	}
}
