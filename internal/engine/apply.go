package engine

import (
	"github.com/lgbarn/abysschess-go/internal/chess"
)

// ApplyMove returns the board after moving the piece on from to to.
// Whatever stood on to is removed. A white pawn reaching row 0 or a black
// pawn reaching row 7 becomes a queen of its colour. board itself is not
// modified.
func ApplyMove(board chess.Board, from, to chess.Square) chess.Board {
	piece := board.Get(from)

	if promotes(piece, to) {
		piece = chess.MakeColouredPiece(piece.Colour, chess.Queen)
	}

	next := board.With(to, piece)
	return next.With(from, chess.NoPiece)
}

// promotes reports whether piece is a pawn arriving on its last rank.
func promotes(piece chess.Piece, to chess.Square) bool {
	if piece.Kind != chess.Pawn {
		return false
	}
	if piece.Colour == chess.White {
		return to.Row == 0
	}
	return to.Row == chess.BoardSize-1
}
