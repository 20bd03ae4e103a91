package flappy

import "sync"

// ScoreStore persists the best score between sessions.
// Load is called once when an engine is created; Save whenever the best
// score goes up. The engine treats every error as "no prior best" on load
// and ignores it on save.
type ScoreStore interface {
	Load() (int, error)
	Save(score int) error
}

// MemoryStore keeps the best score in process memory. It is used when no
// durable store is available, and in tests.
type MemoryStore struct {
	mu    sync.Mutex
	best  int
	saves []int
}

// NewMemoryStore creates a store that starts with the given best score.
func NewMemoryStore(best int) *MemoryStore {
	return &MemoryStore{best: best}
}

// Load returns the stored best score.
func (s *MemoryStore) Load() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.best, nil
}

// Save records a new best score.
func (s *MemoryStore) Save(score int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.best = score
	s.saves = append(s.saves, score)
	return nil
}

// Saves returns every value passed to Save, oldest first.
func (s *MemoryStore) Saves() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]int, len(s.saves))
	copy(out, s.saves)
	return out
}

type nopStore struct{}

func (nopStore) Load() (int, error) { return 0, nil }
func (nopStore) Save(int) error     { return nil }
