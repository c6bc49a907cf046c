package services

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// DefaultLeaderboardTTL is the window during which cached rankings are
// served without recomputation.
const DefaultLeaderboardTTL = time.Hour

type LeaderboardComputer interface {
	Compute(ctx context.Context) ([]LeaderboardEntry, error)
}

// LeaderboardCache memoizes one generation of the computed ranking. It is
// in-memory and process-local; horizontally scaled instances each hold their
// own copy, which is an accepted scaling boundary for this product.
//
// A privacy or progress change never patches the cached entries surgically;
// callers that must observe their own change immediately pass forceRefresh.
type LeaderboardCache struct {
	computer LeaderboardComputer
	ttl      time.Duration
	now      func() time.Time

	flight singleflight.Group

	mu         sync.Mutex
	entries    []LeaderboardEntry
	computedAt time.Time
}

type LeaderboardSnapshot struct {
	Entries    []LeaderboardEntry
	ComputedAt time.Time
	Cached     bool
}

func NewLeaderboardCache(computer LeaderboardComputer, ttl time.Duration) *LeaderboardCache {
	if ttl <= 0 {
		ttl = DefaultLeaderboardTTL
	}
	return &LeaderboardCache{
		computer: computer,
		ttl:      ttl,
		now:      time.Now,
	}
}

// Get serves the cached ranking while it is fresh, otherwise recomputes.
// Concurrent cache misses share a single compute call instead of stampeding
// the store; every reader receives its own copy of the entries.
func (cache *LeaderboardCache) Get(ctx context.Context, forceRefresh bool) (LeaderboardSnapshot, error) {
	if !forceRefresh {
		cache.mu.Lock()
		if cache.entries != nil && cache.now().Sub(cache.computedAt) < cache.ttl {
			snapshot := cache.snapshotLocked(true)
			cache.mu.Unlock()
			return snapshot, nil
		}
		cache.mu.Unlock()
	}

	_, err, _ := cache.flight.Do("leaderboard", func() (any, error) {
		entries, err := cache.computer.Compute(ctx)
		if err != nil {
			return nil, err
		}
		cache.mu.Lock()
		cache.entries = entries
		cache.computedAt = cache.now()
		cache.mu.Unlock()
		return nil, nil
	})
	if err != nil {
		return LeaderboardSnapshot{}, err
	}

	cache.mu.Lock()
	snapshot := cache.snapshotLocked(false)
	cache.mu.Unlock()
	return snapshot, nil
}

// Refresh bypasses the time window unconditionally.
func (cache *LeaderboardCache) Refresh(ctx context.Context) (LeaderboardSnapshot, error) {
	return cache.Get(ctx, true)
}

func (cache *LeaderboardCache) snapshotLocked(cached bool) LeaderboardSnapshot {
	entries := make([]LeaderboardEntry, len(cache.entries))
	copy(entries, cache.entries)
	return LeaderboardSnapshot{
		Entries:    entries,
		ComputedAt: cache.computedAt,
		Cached:     cached,
	}
}
