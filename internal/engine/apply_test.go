package engine

import (
	"testing"

	"github.com/lgbarn/abysschess-go/internal/chess"
)

func TestApplyMove(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		move    string
		wantFEN string
	}{
		{
			name:    "black pawn push",
			fen:     InitialFEN,
			move:    "e7e5",
			wantFEN: "rnbqkbnr/pppp1ppp/8/4p3/8/8/PPPPPPPP/RNBQKBNR",
		},
		{
			name:    "capture overwrites",
			fen:     "4k3/8/8/3p4/4P3/8/8/4K3 w",
			move:    "e4d5",
			wantFEN: "4k3/8/8/3P4/8/8/8/4K3",
		},
		{
			name:    "white promotion",
			fen:     "8/4P3/8/8/8/8/8/8 w",
			move:    "e7e8",
			wantFEN: "4Q3/8/8/8/8/8/8/8",
		},
		{
			name:    "white promotion with capture",
			fen:     "3r4/4P3/8/8/8/8/8/8 w",
			move:    "e7d8",
			wantFEN: "3Q4/8/8/8/8/8/8/8",
		},
		{
			name:    "black promotion",
			fen:     "8/8/8/8/8/8/3p4/8 b",
			move:    "d2d1",
			wantFEN: "8/8/8/8/8/8/8/3q4",
		},
		{
			name:    "black pawn reaching row 0 stays a pawn",
			fen:     "8/8/8/8/8/8/p7/8 b",
			move:    "a2a8",
			wantFEN: "p7/8/8/8/8/8/8/8",
		},
		{
			name:    "white pawn dropped onto row 7 stays a pawn",
			fen:     "8/8/8/P7/8/8/8/8 w",
			move:    "a5b1",
			wantFEN: "8/8/8/8/8/8/8/1P6",
		},
		{
			name:    "rook on last rank does not promote",
			fen:     "8/R7/8/8/8/8/8/8 w",
			move:    "a7a8",
			wantFEN: "R7/8/8/8/8/8/8/8",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, toMove, err := NewBoardFromFEN(tt.fen)
			if err != nil {
				t.Fatalf("NewBoardFromFEN(%q) error: %v", tt.fen, err)
			}
			from, to := mustParse(t, tt.move)

			next := ApplyMove(board, from, to)

			want := tt.wantFEN + " " + sideLetter(toMove) + " - - 0 1"
			if got := BoardToFEN(next, toMove, 1); got != want {
				t.Errorf("ApplyMove(%s) = %q, want %q", tt.move, got, want)
			}
		})
	}
}

func sideLetter(c chess.Colour) string {
	if c == chess.White {
		return "w"
	}
	return "b"
}

func TestApplyMove_DoesNotMutateInput(t *testing.T) {
	board := chess.InitialBoard()
	before := board
	from, to := mustParse(t, "e2e4")

	next := ApplyMove(board, from, to)

	if board != before {
		t.Error("ApplyMove() modified its input board")
	}
	if next == board {
		t.Error("ApplyMove() returned an unchanged board")
	}
	if got := next.Get(to); got != chess.W(chess.Pawn) {
		t.Errorf("next.Get(e4) = %v, want white Pawn", got)
	}
	if got := next.Get(from); got != chess.NoPiece {
		t.Errorf("next.Get(e2) = %v, want Empty", got)
	}
}

// TestApplyMove_CaptureIsDestructive applies a capture and then the reverse
// move: the captured piece does not come back.
func TestApplyMove_CaptureIsDestructive(t *testing.T) {
	board, _, err := NewBoardFromFEN("4k3/8/8/3p4/4P3/8/8/4K3 w")
	if err != nil {
		t.Fatal(err)
	}
	from, to := mustParse(t, "e4d5")

	after := ApplyMove(board, from, to)
	back := ApplyMove(after, to, from)

	if back == board {
		t.Fatal("reverse move restored the original position after a capture")
	}
	if got := back.Get(to); got != chess.NoPiece {
		t.Errorf("d5 after reverse = %v, want Empty (black pawn gone)", got)
	}
	if got := back.Count(chess.Black); got != board.Count(chess.Black)-1 {
		t.Errorf("black piece count = %d, want %d", got, board.Count(chess.Black)-1)
	}
}

// TestApplyMove_PromotionBothColours covers promotion for every file.
func TestApplyMove_PromotionBothColours(t *testing.T) {
	for col := 0; col < chess.BoardSize; col++ {
		whiteFrom := chess.Square{Row: 1, Col: col}
		whiteTo := chess.Square{Row: 0, Col: col}
		board := chess.NewBoard().With(whiteFrom, chess.W(chess.Pawn))
		if got := ApplyMove(board, whiteFrom, whiteTo).Get(whiteTo); got != chess.W(chess.Queen) {
			t.Errorf("white pawn to %v = %v, want white Queen", whiteTo, got)
		}

		blackFrom := chess.Square{Row: 6, Col: col}
		blackTo := chess.Square{Row: 7, Col: col}
		board = chess.NewBoard().With(blackFrom, chess.B(chess.Pawn))
		if got := ApplyMove(board, blackFrom, blackTo).Get(blackTo); got != chess.B(chess.Queen) {
			t.Errorf("black pawn to %v = %v, want black Queen", blackTo, got)
		}
	}
}
