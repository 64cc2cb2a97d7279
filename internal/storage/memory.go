package storage

import (
	"sort"
	"sync"
	"time"
)

// MemoryStore keeps highscores in process memory.
// Used when the database cannot be opened; scores vanish on exit.
type MemoryStore struct {
	mu      sync.Mutex
	entries []ScoreEntry
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// HighestScore returns the best entry, or ("", 0) when empty.
func (m *MemoryStore) HighestScore() (string, int) {
	top, _ := m.TopScores(1)
	if len(top) == 0 {
		return "", 0
	}
	return top[0].Name, top[0].Score
}

// AddScore appends an entry.
func (m *MemoryStore) AddScore(name string, score int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries = append(m.entries, ScoreEntry{
		ID:        int64(len(m.entries) + 1),
		Name:      name,
		Score:     score,
		CreatedAt: time.Now(),
	})
	return nil
}

// TopScores returns up to limit entries, best first.
func (m *MemoryStore) TopScores(limit int) ([]ScoreEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	sorted := append([]ScoreEntry(nil), m.entries...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score > sorted[j].Score
	})
	if limit > 0 && len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted, nil
}

// Close is a no-op.
func (m *MemoryStore) Close() error { return nil }

var _ Backend = (*MemoryStore)(nil)
