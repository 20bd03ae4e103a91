package storage

import "github.com/vovakirdan/tui-flappy/internal/games/flappy"

// BestScore exposes one best-score key of a Store as a flappy.ScoreStore.
type BestScore struct {
	store *Store
	key   string
}

// NewBestScore binds key in store.
func NewBestScore(store *Store, key string) *BestScore {
	return &BestScore{store: store, key: key}
}

// Load returns the stored best score.
func (b *BestScore) Load() (int, error) {
	return b.store.LoadBest(b.key)
}

// Save stores a new best score.
func (b *BestScore) Save(score int) error {
	return b.store.SaveBest(b.key, score)
}

// Key returns the namespaced key the score lives under.
func (b *BestScore) Key() string {
	return b.key
}

var _ flappy.ScoreStore = (*BestScore)(nil)
