// Package game implements the game state machine: starting new games and
// applying submitted moves, plus the Service that couples each transition
// to persistence and the leaderboard.
package game

import (
	"strings"
	"time"

	"github.com/lgbarn/abysschess-go/internal/chess"
	"github.com/lgbarn/abysschess-go/internal/engine"
	"github.com/lgbarn/abysschess-go/internal/errors"
)

// FirstToMove is the side that moves first in a new game.
const FirstToMove = chess.Black

// NewGame returns a fresh game following prev: standard position, black to
// move, empty log, and the next game number (1 when prev is nil).
func NewGame(prev *chess.GameState, id string) *chess.GameState {
	num := 1
	if prev != nil {
		num = prev.GameNum + 1
	}
	return &chess.GameState{
		ID:      id,
		Board:   chess.InitialBoard(),
		ToMove:  FirstToMove,
		Moves:   []chess.MoveRecord{},
		GameNum: num,
	}
}

// ApplyMove validates token against state and returns the successor state.
// state is never modified; on error the caller still holds the unchanged
// state. Errors are *errors.MoveError wrapping ErrMalformedMove or
// ErrIllegalMove.
func ApplyMove(state *chess.GameState, token, player string, at time.Time) (*chess.GameState, error) {
	from, to, ok := engine.ParseMove(token)
	if !ok {
		return nil, &errors.MoveError{
			Err:    errors.ErrMalformedMove,
			Move:   strings.TrimSpace(token),
			Reason: "expected a token like e2e4",
		}
	}

	if err := engine.CheckMove(state.Board, from, to, state.ToMove); err != nil {
		return nil, err
	}

	next := &chess.GameState{
		ID:      state.ID,
		Board:   engine.ApplyMove(state.Board, from, to),
		ToMove:  state.ToMove.Opposite(),
		Moves:   make([]chess.MoveRecord, len(state.Moves), len(state.Moves)+1),
		GameNum: state.GameNum,
	}
	copy(next.Moves, state.Moves)
	next.Moves = append(next.Moves, chess.MoveRecord{
		Move:   engine.NormalizeMove(token),
		Player: player,
		Time:   at.UTC(),
	})

	return next, nil
}
