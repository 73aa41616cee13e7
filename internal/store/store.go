// Package store persists the game snapshot and the leaderboard. FileStore
// keeps the JSON files the workflow commits back to the repository,
// PostgresStore keeps both in one database, and MemoryStore backs tests.
package store

import (
	"context"
	"fmt"

	"github.com/lgbarn/abysschess-go/internal/chess"
	"github.com/lgbarn/abysschess-go/internal/errors"
	"github.com/lgbarn/abysschess-go/internal/stats"
)

// Backend names accepted by the configuration.
const (
	KindFile     = "file"
	KindPostgres = "postgres"
	KindMemory   = "memory"
)

// Store is the full persistence contract shared by every backend.
type Store interface {
	LoadGame(ctx context.Context) (*chess.GameState, error)
	SaveGame(ctx context.Context, state *chess.GameState) error
	LoadLeaderboard(ctx context.Context) (stats.Leaderboard, error)
	SaveLeaderboard(ctx context.Context, lb stats.Leaderboard) error
	Close() error
}

// Open returns the backend named by kind. dir is used by the file backend
// and dsn by the postgres backend.
func Open(ctx context.Context, kind, dir, dsn string) (Store, error) {
	switch kind {
	case "", KindFile:
		return NewFileStore(dir), nil
	case KindPostgres:
		s, err := OpenPostgres(ctx, dsn)
		if err != nil {
			return nil, errors.Storage(err, "opening postgres store")
		}
		return s, nil
	case KindMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("store %q: %w", kind, errors.ErrInvalidConfig)
	}
}
