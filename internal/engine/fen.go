package engine

import (
	"fmt"
	"strings"

	"github.com/lgbarn/abysschess-go/internal/chess"
	"github.com/lgbarn/abysschess-go/internal/errors"
)

// InitialFEN is the placement and side-to-move of a fresh game.
// Black moves first: the community plays black.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR b"

// NewBoardFromFEN parses the piece placement field of a FEN string and,
// when present, the side to move. Castling, en passant and clock fields
// are accepted but ignored. The side defaults to Black.
func NewBoardFromFEN(fen string) (chess.Board, chess.Colour, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return chess.Board{}, chess.Black, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	board, err := parsePiecePositions(parts[0])
	if err != nil {
		return chess.Board{}, chess.Black, err
	}

	toMove, err := parseSideToMove(parts)
	if err != nil {
		return chess.Board{}, chess.Black, err
	}

	return board, toMove, nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(positions string) (chess.Board, error) {
	board := chess.NewBoard()
	ranks := strings.Split(positions, "/")
	if len(ranks) != chess.BoardSize {
		return board, fmt.Errorf("expected %d ranks, got %d: %w", chess.BoardSize, len(ranks), errors.ErrInvalidFEN)
	}

	for row, rank := range ranks {
		col := 0
		for i := 0; i < len(rank); i++ {
			c := rank[i]
			if c >= '1' && c <= '8' {
				col += int(c - '0')
				continue
			}
			piece, ok := chess.PieceFromLetter(c)
			if !ok || c == '.' {
				return board, fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
			}
			if col >= chess.BoardSize {
				return board, fmt.Errorf("position out of bounds: %w", errors.ErrInvalidFEN)
			}
			board = board.With(chess.Square{Row: row, Col: col}, piece)
			col++
		}
		if col != chess.BoardSize {
			return board, fmt.Errorf("rank %d has %d squares: %w", chess.BoardSize-row, col, errors.ErrInvalidFEN)
		}
	}
	return board, nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(parts []string) (chess.Colour, error) {
	if len(parts) < 2 {
		return chess.Black, nil
	}
	switch parts[1] {
	case "w":
		return chess.White, nil
	case "b":
		return chess.Black, nil
	default:
		return chess.Black, fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidFEN)
	}
}

// BoardToFEN converts a board and side to move to a FEN string. Castling
// and en passant are always "-" since the model has neither.
func BoardToFEN(board chess.Board, toMove chess.Colour, moveNumber int) string {
	var sb strings.Builder

	writePiecePositions(&sb, board)
	sb.WriteByte(' ')
	if toMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	fmt.Fprintf(&sb, " - - 0 %d", moveNumber)

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board chess.Board) {
	for row := 0; row < chess.BoardSize; row++ {
		emptyCount := 0
		for col := 0; col < chess.BoardSize; col++ {
			piece := board.Get(chess.Square{Row: row, Col: col})
			if piece.IsEmpty() {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if row < chess.BoardSize-1 {
			sb.WriteByte('/')
		}
	}
}
