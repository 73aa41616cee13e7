package engine

import (
	"fmt"
	"testing"

	"github.com/lgbarn/abysschess-go/internal/chess"
)

func TestParseMove(t *testing.T) {
	tests := []struct {
		name     string
		token    string
		wantFrom chess.Square
		wantTo   chess.Square
		wantOK   bool
	}{
		{"king pawn", "e2e4", chess.Square{Row: 6, Col: 4}, chess.Square{Row: 4, Col: 4}, true},
		{"black reply", "e7e5", chess.Square{Row: 1, Col: 4}, chess.Square{Row: 3, Col: 4}, true},
		{"uppercase", "E7E5", chess.Square{Row: 1, Col: 4}, chess.Square{Row: 3, Col: 4}, true},
		{"mixed case", "g1F3", chess.Square{Row: 7, Col: 6}, chess.Square{Row: 5, Col: 5}, true},
		{"corners", "a8h1", chess.Square{Row: 0, Col: 0}, chess.Square{Row: 7, Col: 7}, true},
		{"surrounding whitespace", "  b8c6\n", chess.Square{Row: 0, Col: 1}, chess.Square{Row: 2, Col: 2}, true},
		{"rank nine", "e9e4", chess.Square{}, chess.Square{}, false},
		{"rank zero", "e2e0", chess.Square{}, chess.Square{}, false},
		{"file i", "i2i4", chess.Square{}, chess.Square{}, false},
		{"too short", "e2e", chess.Square{}, chess.Square{}, false},
		{"too long", "e2e4q", chess.Square{}, chess.Square{}, false},
		{"empty", "", chess.Square{}, chess.Square{}, false},
		{"hyphenated", "e2-e", chess.Square{}, chess.Square{}, false},
		{"digits first", "2e4e", chess.Square{}, chess.Square{}, false},
		{"san", "Nf3", chess.Square{}, chess.Square{}, false},
		{"inner space", "e2 4", chess.Square{}, chess.Square{}, false},
		{"space between squares", "e2 e4", chess.Square{}, chess.Square{}, false},
		{"tab between squares", "e2\te4", chess.Square{}, chess.Square{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			from, to, ok := ParseMove(tt.token)
			if ok != tt.wantOK {
				t.Fatalf("ParseMove(%q) ok = %v, want %v", tt.token, ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if from != tt.wantFrom || to != tt.wantTo {
				t.Errorf("ParseMove(%q) = %v, %v; want %v, %v", tt.token, from, to, tt.wantFrom, tt.wantTo)
			}
		})
	}
}

// TestParseMove_AllWellFormed checks every file-rank-file-rank combination
// maps to row 8-rank and column file-index.
func TestParseMove_AllWellFormed(t *testing.T) {
	files := "abcdefgh"
	count := 0
	for f1 := 0; f1 < 8; f1++ {
		for r1 := 1; r1 <= 8; r1++ {
			for f2 := 0; f2 < 8; f2++ {
				for r2 := 1; r2 <= 8; r2++ {
					token := fmt.Sprintf("%c%d%c%d", files[f1], r1, files[f2], r2)
					from, to, ok := ParseMove(token)
					if !ok {
						t.Fatalf("ParseMove(%q) failed", token)
					}
					wantFrom := chess.Square{Row: 8 - r1, Col: f1}
					wantTo := chess.Square{Row: 8 - r2, Col: f2}
					if from != wantFrom || to != wantTo {
						t.Fatalf("ParseMove(%q) = %v, %v; want %v, %v", token, from, to, wantFrom, wantTo)
					}
					if got := FormatMove(from, to); got != token {
						t.Fatalf("FormatMove(ParseMove(%q)) = %q", token, got)
					}
					count++
				}
			}
		}
	}
	if count != 64*64 {
		t.Errorf("checked %d tokens, want %d", count, 64*64)
	}
}

// TestParseMove_RejectsOutsideAlphabet checks every byte outside the accepted
// alphabets in each position is rejected.
func TestParseMove_RejectsOutsideAlphabet(t *testing.T) {
	valid := []byte("e2e4")
	for pos := 0; pos < 4; pos++ {
		for c := 0; c < 256; c++ {
			b := byte(c)
			var accepted bool
			if pos%2 == 0 {
				accepted = (b >= 'a' && b <= 'h') || (b >= 'A' && b <= 'H')
			} else {
				accepted = b >= '1' && b <= '8'
			}
			token := make([]byte, 4)
			copy(token, valid)
			token[pos] = b
			if pos == 0 || pos == 3 {
				// Leading or trailing whitespace is trimmed and shortens the token.
				if b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\v' || b == '\f' {
					continue
				}
			}
			_, _, ok := ParseMove(string(token))
			if ok != accepted {
				t.Errorf("ParseMove(%q) ok = %v, want %v", token, ok, accepted)
			}
		}
	}
}

func TestParseSquare(t *testing.T) {
	sq, ok := ParseSquare("h8")
	if !ok || sq != (chess.Square{Row: 0, Col: 7}) {
		t.Errorf("ParseSquare(h8) = %v, %v", sq, ok)
	}
	if _, ok := ParseSquare("h"); ok {
		t.Error("ParseSquare(h) succeeded")
	}
}

func TestNormalizeMove(t *testing.T) {
	if got := NormalizeMove(" e7e5 "); got != "E7E5" {
		t.Errorf("NormalizeMove() = %q, want E7E5", got)
	}
}
