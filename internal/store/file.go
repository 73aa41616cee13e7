package store

import (
	"context"
	"os"
	"path/filepath"

	"github.com/lgbarn/abysschess-go/internal/chess"
	"github.com/lgbarn/abysschess-go/internal/errors"
	"github.com/lgbarn/abysschess-go/internal/output"
	"github.com/lgbarn/abysschess-go/internal/stats"
)

// File names inside a FileStore directory.
const (
	DefaultDir      = "chess_data"
	GameFile        = "game.json"
	LeaderboardFile = "leaderboard.json"
)

// FileStore keeps the snapshot and leaderboard as two JSON files in Dir.
// Each file is replaced atomically; the pair is not.
type FileStore struct {
	Dir string
}

// NewFileStore returns a FileStore rooted at dir, or DefaultDir if empty.
func NewFileStore(dir string) *FileStore {
	if dir == "" {
		dir = DefaultDir
	}
	return &FileStore{Dir: dir}
}

// GamePath returns the snapshot file path.
func (s *FileStore) GamePath() string {
	return filepath.Join(s.Dir, GameFile)
}

// LeaderboardPath returns the leaderboard file path.
func (s *FileStore) LeaderboardPath() string {
	return filepath.Join(s.Dir, LeaderboardFile)
}

// LoadGame reads the snapshot. A missing file yields nil, nil.
func (s *FileStore) LoadGame(_ context.Context) (*chess.GameState, error) {
	data, err := os.ReadFile(s.GamePath())
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "reading snapshot")
	}
	return output.UnmarshalGame(data)
}

// SaveGame writes the snapshot.
func (s *FileStore) SaveGame(_ context.Context, state *chess.GameState) error {
	data, err := output.MarshalGame(state)
	if err != nil {
		return err
	}
	return s.write(s.GamePath(), data)
}

// LoadLeaderboard reads the leaderboard. A missing file yields an empty one.
func (s *FileStore) LoadLeaderboard(_ context.Context) (stats.Leaderboard, error) {
	data, err := os.ReadFile(s.LeaderboardPath())
	if os.IsNotExist(err) {
		return stats.Leaderboard{}, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "reading leaderboard")
	}
	return output.UnmarshalLeaderboard(data)
}

// SaveLeaderboard writes the leaderboard.
func (s *FileStore) SaveLeaderboard(_ context.Context, lb stats.Leaderboard) error {
	data, err := output.MarshalLeaderboard(lb)
	if err != nil {
		return err
	}
	return s.write(s.LeaderboardPath(), data)
}

// Close is a no-op.
func (s *FileStore) Close() error { return nil }

func (s *FileStore) write(path string, data []byte) error {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil { //nolint:gosec // G301: data dir is committed to the repository
		return errors.Wrap(err, "creating data directory")
	}
	return writeFileAtomic(path, data)
}

// writeFileAtomic writes data to a temp file next to path and renames it
// into place, so readers never see a partial file.
func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return errors.Wrapf(err, "writing %s", path)
	}
	name := tmp.Name()
	defer os.Remove(name) //nolint:errcheck // already renamed on success

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return errors.Wrapf(err, "writing %s", path)
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrapf(err, "writing %s", path)
	}
	if err := os.Chmod(name, 0o644); err != nil { //nolint:gosec // G302: snapshot is world-readable
		return errors.Wrapf(err, "writing %s", path)
	}
	return errors.Wrapf(os.Rename(name, path), "writing %s", path)
}
