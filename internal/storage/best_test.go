package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

func TestBestScoreMissingKey(t *testing.T) {
	store := openTestStore(t)
	best := NewBestScore(store, "flappyBirdHighScore")

	got, err := best.Load()
	require.NoError(t, err)
	assert.Equal(t, 0, got)
}

func TestBestScoreRoundTrip(t *testing.T) {
	store := openTestStore(t)
	best := NewBestScore(store, "flappyBirdHighScore")

	require.NoError(t, best.Save(9))
	got, err := best.Load()
	require.NoError(t, err)
	assert.Equal(t, 9, got)
}

func TestBestScoreNeverDecreases(t *testing.T) {
	store := openTestStore(t)
	best := NewBestScore(store, "flappyBirdHighScore")

	require.NoError(t, best.Save(15))
	require.NoError(t, best.Save(4))

	got, err := best.Load()
	require.NoError(t, err)
	assert.Equal(t, 15, got)
}

func TestBestScoreKeysAreIndependent(t *testing.T) {
	store := openTestStore(t)
	a := NewBestScore(store, "a")
	b := NewBestScore(store, "b")

	require.NoError(t, a.Save(3))

	got, err := b.Load()
	require.NoError(t, err)
	assert.Equal(t, 0, got)
	assert.Equal(t, "a", a.Key())
}

func TestBestScoreLoadAfterClose(t *testing.T) {
	store := openTestStore(t)
	best := NewBestScore(store, "k")
	require.NoError(t, store.Close())

	_, err := best.Load()
	assert.Error(t, err)
}

func TestBestScoreBacksEngine(t *testing.T) {
	store := openTestStore(t)
	cfg := config.DefaultFlappyConfig()
	best := NewBestScore(store, cfg.Store.Key)
	require.NoError(t, best.Save(6))

	e := flappy.NewEngine(cfg, flappy.WithSeed(1), flappy.WithStore(best))
	assert.Equal(t, 6, e.Best())
}
