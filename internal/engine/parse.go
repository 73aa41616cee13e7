// Package engine provides move parsing, the ownership-only legality model,
// move application and FEN conversion.
package engine

import (
	"strings"

	"github.com/lgbarn/abysschess-go/internal/chess"
)

// MoveTokenLen is the length of a move token such as "e2e4".
const MoveTokenLen = 4

// ParseSquare parses a square label such as "e2" (any case).
func ParseSquare(s string) (chess.Square, bool) {
	if len(s) != 2 {
		return chess.Square{}, false
	}
	file := s[0] | 0x20 // lowercase ASCII letters; digits and others fail below
	rank := s[1]
	if file < chess.ColBase || file > chess.LastCol {
		return chess.Square{}, false
	}
	if rank < chess.RankBase || rank > chess.LastRank {
		return chess.Square{}, false
	}
	return chess.Square{
		Row: chess.BoardSize - 1 - int(rank-chess.RankBase),
		Col: int(file - chess.ColBase),
	}, true
}

// ParseMove parses a token of the form file-rank-file-rank ("e2e4", "E7E5").
// Surrounding whitespace is ignored. ok is false for anything else.
func ParseMove(token string) (from, to chess.Square, ok bool) {
	token = strings.TrimSpace(token)
	if len(token) != MoveTokenLen {
		return chess.Square{}, chess.Square{}, false
	}
	from, ok = ParseSquare(token[:2])
	if !ok {
		return chess.Square{}, chess.Square{}, false
	}
	to, ok = ParseSquare(token[2:])
	if !ok {
		return chess.Square{}, chess.Square{}, false
	}
	return from, to, true
}

// FormatMove renders a move as a lowercase token, e.g. "e2e4".
func FormatMove(from, to chess.Square) string {
	return from.String() + to.String()
}

// NormalizeMove returns the form stored in the move log: trimmed and uppercase.
func NormalizeMove(token string) string {
	return strings.ToUpper(strings.TrimSpace(token))
}
