package usecase

import (
	"sync"
	"time"

	"SentiPulse/internal/domain/models"
)

// SnapshotCache holds the most recent market snapshot and the scores
// computed from it. The refresh cycle writes it, the API reads it.
type SnapshotCache struct {
	mu       sync.RWMutex
	snapshot *models.MarketSnapshot
	scores   map[models.Index]*models.IndexScores
	updated  time.Time
}

func NewSnapshotCache() *SnapshotCache {
	return &SnapshotCache{scores: make(map[models.Index]*models.IndexScores)}
}

func (c *SnapshotCache) Set(s *models.MarketSnapshot, scores map[models.Index]*models.IndexScores) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.snapshot = s
	c.scores = scores
	c.updated = time.Now()
}

// Snapshot returns the latest snapshot, or nil before the first refresh.
func (c *SnapshotCache) Snapshot() *models.MarketSnapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snapshot
}

// Scores returns the latest computed scores for an index, or nil.
func (c *SnapshotCache) Scores(idx models.Index) *models.IndexScores {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.scores[idx]
}

// LastUpdate reports when the cache was last written; zero before the
// first refresh.
func (c *SnapshotCache) LastUpdate() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.updated
}

func (c *SnapshotCache) HasData() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snapshot != nil
}
