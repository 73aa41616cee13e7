package testutil

import (
	"strings"
	"testing"
	"time"

	"github.com/lgbarn/abysschess-go/internal/chess"
	"github.com/lgbarn/abysschess-go/internal/engine"
)

// FixedTime is the clock used by fixtures and service tests.
var FixedTime = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

// MustBoardFromFEN parses fen and calls t.Fatal on error.
func MustBoardFromFEN(t *testing.T, fen string) (chess.Board, chess.Colour) {
	t.Helper()
	board, toMove, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		t.Fatalf("bad test FEN %q: %v", fen, err)
	}
	return board, toMove
}

// NewTestState returns game 1 at fen with the given moves already in the
// log. Each move is credited to "tester" at FixedTime; the board is not
// replayed.
func NewTestState(t *testing.T, fen string, moves ...string) *chess.GameState {
	t.Helper()
	board, toMove := MustBoardFromFEN(t, fen)
	log := make([]chess.MoveRecord, 0, len(moves))
	for _, m := range moves {
		log = append(log, chess.MoveRecord{Move: strings.ToUpper(m), Player: "tester", Time: FixedTime})
	}
	return &chess.GameState{
		ID:      "test-game",
		Board:   board,
		ToMove:  toMove,
		Moves:   log,
		GameNum: 1,
	}
}

// BoardDiff returns "" when the boards match, otherwise both boards in
// FEN placement form.
func BoardDiff(want, got chess.Board) string {
	if want == got {
		return ""
	}
	return "want " + placement(want) + "\n got " + placement(got)
}

func placement(b chess.Board) string {
	fen := engine.BoardToFEN(b, chess.White, 1)
	if i := strings.IndexByte(fen, ' '); i >= 0 {
		return fen[:i]
	}
	return fen
}
