package game

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lgbarn/abysschess-go/internal/chess"
	"github.com/lgbarn/abysschess-go/internal/errors"
	"github.com/lgbarn/abysschess-go/internal/stats"
)

// AnonymousPlayer is recorded when a move arrives without an identity.
const AnonymousPlayer = "anonymous"

// GameStore loads and saves the game snapshot. LoadGame returns a nil
// state and nil error when no snapshot exists yet.
type GameStore interface {
	LoadGame(ctx context.Context) (*chess.GameState, error)
	SaveGame(ctx context.Context, state *chess.GameState) error
}

// LeaderboardStore loads and saves the leaderboard. LoadLeaderboard
// returns an empty leaderboard when none exists yet.
type LeaderboardStore interface {
	LoadLeaderboard(ctx context.Context) (stats.Leaderboard, error)
	SaveLeaderboard(ctx context.Context, lb stats.Leaderboard) error
}

// Store is a backend holding both the snapshot and the leaderboard.
type Store interface {
	GameStore
	LeaderboardStore
}

// AtomicStore is implemented by stores that can persist the snapshot and
// the leaderboard together, so neither is written without the other.
type AtomicStore interface {
	SaveAll(ctx context.Context, state *chess.GameState, lb stats.Leaderboard) error
}

// Snapshot is the state and leaderboard after a command.
type Snapshot struct {
	State       *chess.GameState
	Leaderboard stats.Leaderboard
}

// Service runs commands against a Store.
type Service struct {
	store  Store
	logger *zap.Logger
	now    func() time.Time
	newID  func() string
}

// Option configures a Service.
type Option func(*Service)

// WithClock sets the time source used to stamp move records.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithIDGenerator sets the function that mints new game IDs.
func WithIDGenerator(newID func() string) Option {
	return func(s *Service) {
		if newID != nil {
			s.newID = newID
		}
	}
}

// NewService creates a Service. A nil logger disables logging.
func NewService(store Store, logger *zap.Logger, opts ...Option) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Service{
		store:  store,
		logger: logger,
		now:    time.Now,
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Current loads the persisted state and leaderboard. If no game has been
// saved yet, a fresh game 1 is returned (but not saved).
func (s *Service) Current(ctx context.Context) (*Snapshot, error) {
	state, err := s.loadState(ctx)
	if err != nil {
		return nil, err
	}
	lb, err := s.loadLeaderboard(ctx)
	if err != nil {
		return nil, err
	}
	return &Snapshot{State: state, Leaderboard: lb}, nil
}

// NewGame starts the next game and saves it. The leaderboard carries over.
func (s *Service) NewGame(ctx context.Context) (*Snapshot, error) {
	current, err := s.Current(ctx)
	if err != nil {
		return nil, err
	}

	state := NewGame(current.State, s.newID())
	if err := s.store.SaveGame(ctx, state); err != nil {
		return nil, errors.Storage(err, "saving game")
	}

	s.logger.Info("new game started",
		zap.String("game_id", state.ID),
		zap.Int("game_num", state.GameNum))

	return &Snapshot{State: state, Leaderboard: current.Leaderboard}, nil
}

// Move applies token on behalf of player and persists the new state and
// leaderboard. Rejected moves return a *errors.MoveError and write nothing.
func (s *Service) Move(ctx context.Context, token, player string) (*Snapshot, error) {
	player = strings.TrimSpace(player)
	if player == "" {
		player = AnonymousPlayer
	}

	current, err := s.Current(ctx)
	if err != nil {
		return nil, err
	}

	state, err := ApplyMove(current.State, token, player, s.now())
	if err != nil {
		s.logger.Debug("move rejected",
			zap.String("game_id", current.State.ID),
			zap.String("move", token),
			zap.String("player", player),
			zap.Error(err))
		return nil, err
	}

	lb := current.Leaderboard.Clone()
	count := lb.Increment(player)

	if err := s.save(ctx, state, lb); err != nil {
		return nil, err
	}

	s.logger.Info("move applied",
		zap.String("game_id", state.ID),
		zap.Int("game_num", state.GameNum),
		zap.String("move", lastMove(state)),
		zap.String("player", player),
		zap.Int("player_moves", count),
		zap.Int("total_moves", lb.Total()),
		zap.Stringer("to_move", state.ToMove))

	return &Snapshot{State: state, Leaderboard: lb}, nil
}

// save writes both halves, in one call when the store supports it.
// Otherwise the leaderboard goes first; a failure between the two writes
// leaves them out of step.
func (s *Service) save(ctx context.Context, state *chess.GameState, lb stats.Leaderboard) error {
	if atomic, ok := s.store.(AtomicStore); ok {
		return errors.Storage(atomic.SaveAll(ctx, state, lb), "saving game and leaderboard")
	}
	if err := s.store.SaveLeaderboard(ctx, lb); err != nil {
		return errors.Storage(err, "saving leaderboard")
	}
	if err := s.store.SaveGame(ctx, state); err != nil {
		return errors.Storage(err, "saving game")
	}
	return nil
}

func (s *Service) loadState(ctx context.Context) (*chess.GameState, error) {
	state, err := s.store.LoadGame(ctx)
	if err != nil {
		return nil, errors.Storage(err, "loading game")
	}
	if state == nil {
		state = NewGame(nil, s.newID())
		s.logger.Debug("no saved game, starting game 1", zap.String("game_id", state.ID))
	}
	if state.ID == "" {
		state.ID = s.newID()
	}
	return state, nil
}

func (s *Service) loadLeaderboard(ctx context.Context) (stats.Leaderboard, error) {
	lb, err := s.store.LoadLeaderboard(ctx)
	if err != nil {
		return nil, errors.Storage(err, "loading leaderboard")
	}
	if lb == nil {
		lb = stats.Leaderboard{}
	}
	return lb, nil
}

// lastMove returns the token of the latest move in the log.
func lastMove(state *chess.GameState) string {
	if len(state.Moves) == 0 {
		return ""
	}
	return state.Moves[len(state.Moves)-1].Move
}
