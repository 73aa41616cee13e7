package store

import (
	"context"
	"sync"

	"github.com/lgbarn/abysschess-go/internal/chess"
	"github.com/lgbarn/abysschess-go/internal/stats"
)

// MemoryStore keeps copies of the snapshot and leaderboard in memory.
// It is safe for concurrent use.
type MemoryStore struct {
	mu    sync.Mutex
	state *chess.GameState
	lb    stats.Leaderboard
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) LoadGame(_ context.Context) (*chess.GameState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.Clone(), nil
}

func (m *MemoryStore) SaveGame(_ context.Context, state *chess.GameState) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = state.Clone()
	return nil
}

func (m *MemoryStore) LoadLeaderboard(_ context.Context) (stats.Leaderboard, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lb.Clone(), nil
}

func (m *MemoryStore) SaveLeaderboard(_ context.Context, lb stats.Leaderboard) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lb = lb.Clone()
	return nil
}

// SaveAll replaces both under one lock.
func (m *MemoryStore) SaveAll(_ context.Context, state *chess.GameState, lb stats.Leaderboard) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = state.Clone()
	m.lb = lb.Clone()
	return nil
}

func (m *MemoryStore) Close() error { return nil }
