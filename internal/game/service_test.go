package game

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/lgbarn/abysschess-go/internal/chess"
	cerrors "github.com/lgbarn/abysschess-go/internal/errors"
	"github.com/lgbarn/abysschess-go/internal/stats"
	"github.com/lgbarn/abysschess-go/internal/store"
	"github.com/lgbarn/abysschess-go/internal/testutil"
)

var errDiskFull = errors.New("disk full")

// recordingStore wraps a MemoryStore without SaveAll, records the order of
// writes and can be told to fail.
type recordingStore struct {
	mem       *store.MemoryStore
	writes    []string
	failLoad  bool
	failGame  bool
	failBoard bool
}

func newRecordingStore() *recordingStore {
	return &recordingStore{mem: store.NewMemoryStore()}
}

func (r *recordingStore) LoadGame(ctx context.Context) (*chess.GameState, error) {
	if r.failLoad {
		return nil, errDiskFull
	}
	return r.mem.LoadGame(ctx)
}

func (r *recordingStore) SaveGame(ctx context.Context, state *chess.GameState) error {
	if r.failGame {
		return errDiskFull
	}
	r.writes = append(r.writes, "game")
	return r.mem.SaveGame(ctx, state)
}

func (r *recordingStore) LoadLeaderboard(ctx context.Context) (stats.Leaderboard, error) {
	return r.mem.LoadLeaderboard(ctx)
}

func (r *recordingStore) SaveLeaderboard(ctx context.Context, lb stats.Leaderboard) error {
	if r.failBoard {
		return errDiskFull
	}
	r.writes = append(r.writes, "leaderboard")
	return r.mem.SaveLeaderboard(ctx, lb)
}

// atomicStore counts SaveAll calls on top of a MemoryStore.
type atomicStore struct {
	*store.MemoryStore
	saveAll int
}

func (a *atomicStore) SaveAll(ctx context.Context, state *chess.GameState, lb stats.Leaderboard) error {
	a.saveAll++
	return a.MemoryStore.SaveAll(ctx, state, lb)
}

func newTestService(st Store, logger *zap.Logger) *Service {
	n := 0
	return NewService(st, logger,
		WithClock(func() time.Time { return testutil.FixedTime }),
		WithIDGenerator(func() string {
			n++
			return fmt.Sprintf("id-%d", n)
		}))
}

func TestService_CurrentWithoutSnapshot(t *testing.T) {
	st := newRecordingStore()
	svc := newTestService(st, nil)

	snap, err := svc.Current(context.Background())
	testutil.AssertNoError(t, err)

	if snap.State.GameNum != 1 || snap.State.ToMove != chess.Black || snap.State.ID != "id-1" {
		t.Errorf("Current() state = %+v, want fresh game 1", snap.State)
	}
	if snap.Leaderboard == nil || len(snap.Leaderboard) != 0 {
		t.Errorf("Current() leaderboard = %v, want empty", snap.Leaderboard)
	}
	if len(st.writes) != 0 {
		t.Errorf("Current() wrote %v", st.writes)
	}
}

// TestService_MoveByAlice is the first-move scenario: black's e7e5 from a
// fresh repository.
func TestService_MoveByAlice(t *testing.T) {
	ctx := context.Background()
	st := newRecordingStore()
	svc := newTestService(st, nil)

	snap, err := svc.Move(ctx, "e7e5", "alice")
	testutil.AssertNoError(t, err)

	if snap.State.ToMove != chess.White {
		t.Errorf("ToMove = %v, want white", snap.State.ToMove)
	}
	testutil.AssertEqual(t, snap.State.Moves, []chess.MoveRecord{
		{Move: "E7E5", Player: "alice", Time: testutil.FixedTime},
	})
	testutil.AssertEqual(t, snap.Leaderboard, stats.Leaderboard{"alice": 1})

	// Without SaveAll the leaderboard is written before the game.
	testutil.AssertEqual(t, st.writes, []string{"leaderboard", "game"})

	saved, _ := st.LoadGame(ctx)
	testutil.AssertEqual(t, saved, snap.State, "persisted state")
}

// TestService_WrongTurn submits a white move while black is to move.
func TestService_WrongTurn(t *testing.T) {
	ctx := context.Background()
	st := newRecordingStore()
	svc := newTestService(st, nil)

	_, err := svc.Move(ctx, "e2e4", "bob")

	var moveErr *cerrors.MoveError
	if !errors.As(err, &moveErr) {
		t.Fatalf("Move() error = %v, want *MoveError", err)
	}
	testutil.AssertErrorIs(t, err, cerrors.ErrIllegalMove)
	testutil.AssertContains(t, moveErr.Reason, "black's turn")
	if len(st.writes) != 0 {
		t.Errorf("rejected move wrote %v", st.writes)
	}
}

func TestService_MalformedMove(t *testing.T) {
	st := newRecordingStore()
	svc := newTestService(st, nil)

	_, err := svc.Move(context.Background(), "e9e4", "bob")
	testutil.AssertErrorIs(t, err, cerrors.ErrMalformedMove)
	if len(st.writes) != 0 {
		t.Errorf("malformed move wrote %v", st.writes)
	}
}

func TestService_AnonymousPlayer(t *testing.T) {
	svc := newTestService(newRecordingStore(), nil)

	snap, err := svc.Move(context.Background(), "e7e5", "   ")
	testutil.AssertNoError(t, err)
	if got := snap.State.Moves[0].Player; got != AnonymousPlayer {
		t.Errorf("player = %q, want %q", got, AnonymousPlayer)
	}
	testutil.AssertEqual(t, snap.Leaderboard, stats.Leaderboard{AnonymousPlayer: 1})
}

// TestService_LeaderboardGrows checks counts only increase, and only for
// the mover.
func TestService_LeaderboardGrows(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newRecordingStore(), nil)

	moves := []struct{ token, player string }{
		{"e7e5", "alice"},
		{"e2e4", "bob"},
		{"d7d5", "alice"},
		{"a1a2", "bob"}, // own capture, rejected
		{"d2d4", "bob"},
	}

	prev := stats.Leaderboard{}
	for _, m := range moves {
		snap, err := svc.Move(ctx, m.token, m.player)
		if err != nil {
			continue
		}
		for player, n := range prev {
			if snap.Leaderboard[player] < n {
				t.Errorf("after %s, %s dropped from %d to %d", m.token, player, n, snap.Leaderboard[player])
			}
		}
		if got, want := snap.Leaderboard.Total(), prev.Total()+1; got != want {
			t.Errorf("after %s, total = %d, want %d", m.token, got, want)
		}
		prev = snap.Leaderboard
	}

	testutil.AssertEqual(t, prev, stats.Leaderboard{"alice": 2, "bob": 2})
}

func TestService_NewGame(t *testing.T) {
	ctx := context.Background()
	st := newRecordingStore()
	svc := newTestService(st, nil)

	_, err := svc.Move(ctx, "e7e5", "alice")
	testutil.AssertNoError(t, err)
	st.writes = nil

	snap, err := svc.NewGame(ctx)
	testutil.AssertNoError(t, err)

	if snap.State.GameNum != 2 {
		t.Errorf("GameNum = %d, want 2", snap.State.GameNum)
	}
	if len(snap.State.Moves) != 0 || snap.State.ToMove != chess.Black {
		t.Errorf("NewGame() state = %+v, want fresh board", snap.State)
	}
	// The leaderboard carries over and is not rewritten.
	testutil.AssertEqual(t, snap.Leaderboard, stats.Leaderboard{"alice": 1})
	testutil.AssertEqual(t, st.writes, []string{"game"})
}

func TestService_UsesSaveAll(t *testing.T) {
	st := &atomicStore{MemoryStore: store.NewMemoryStore()}
	svc := newTestService(st, nil)

	_, err := svc.Move(context.Background(), "e7e5", "alice")
	testutil.AssertNoError(t, err)
	if st.saveAll != 1 {
		t.Errorf("SaveAll called %d times, want 1", st.saveAll)
	}
}

func TestService_StorageFailures(t *testing.T) {
	tests := []struct {
		name  string
		setup func(*recordingStore)
		run   func(*Service) error
	}{
		{"load", func(s *recordingStore) { s.failLoad = true }, func(svc *Service) error {
			_, err := svc.Current(context.Background())
			return err
		}},
		{"save leaderboard", func(s *recordingStore) { s.failBoard = true }, func(svc *Service) error {
			_, err := svc.Move(context.Background(), "e7e5", "alice")
			return err
		}},
		{"save game", func(s *recordingStore) { s.failGame = true }, func(svc *Service) error {
			_, err := svc.Move(context.Background(), "e7e5", "alice")
			return err
		}},
		{"new game", func(s *recordingStore) { s.failGame = true }, func(svc *Service) error {
			_, err := svc.NewGame(context.Background())
			return err
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := newRecordingStore()
			tt.setup(st)
			err := tt.run(newTestService(st, nil))

			testutil.AssertErrorIs(t, err, cerrors.ErrStorageUnavailable)
			testutil.AssertErrorIs(t, err, errDiskFull)
		})
	}
}

func TestService_Logging(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	svc := newTestService(newRecordingStore(), zap.New(core))
	ctx := context.Background()

	_, _ = svc.Move(ctx, "e2e4", "bob")
	_, err := svc.Move(ctx, "e7e5", "alice")
	testutil.AssertNoError(t, err)

	if n := logs.FilterMessage("move rejected").Len(); n != 1 {
		t.Errorf("logged %d rejections, want 1", n)
	}

	applied := logs.FilterMessage("move applied").All()
	if len(applied) != 1 {
		t.Fatalf("logged %d applied moves, want 1", len(applied))
	}
	fields := applied[0].ContextMap()
	if fields["move"] != "E7E5" || fields["player"] != "alice" || fields["to_move"] != "white" {
		t.Errorf("move applied fields = %v", fields)
	}
	if fields["player_moves"] != int64(1) {
		t.Errorf("player_moves = %v, want 1", fields["player_moves"])
	}
	if fields["total_moves"] != int64(1) {
		t.Errorf("total_moves = %v, want 1", fields["total_moves"])
	}
}
