package engine

import (
	"github.com/lgbarn/abysschess-go/internal/chess"
	"github.com/lgbarn/abysschess-go/internal/errors"
)

// Rejection reasons reported by CheckMove.
const (
	ReasonNoPiece    = "no piece at source"
	ReasonOwnCapture = "cannot capture own piece"
)

// WrongTurnReason returns the rejection reason naming the side expected to move.
func WrongTurnReason(toMove chess.Colour) string {
	return "it is " + toMove.String() + "'s turn"
}

// CheckMove validates a move under the ownership-only rule set:
// the source must hold a piece of the side to move, and the destination
// must not hold a piece of the same colour. Movement geometry, blocking
// and king safety are not considered, so any of the other squares is
// reachable. It returns nil or a *errors.MoveError wrapping ErrIllegalMove.
func CheckMove(board chess.Board, from, to chess.Square, toMove chess.Colour) error {
	piece := board.Get(from)
	if piece.IsEmpty() {
		return illegal(from, to, ReasonNoPiece)
	}

	if piece.Colour != toMove {
		return illegal(from, to, WrongTurnReason(toMove))
	}

	if board.Get(to).Belongs(piece.Colour) {
		return illegal(from, to, ReasonOwnCapture)
	}

	return nil
}

func illegal(from, to chess.Square, reason string) error {
	return &errors.MoveError{
		Err:    errors.ErrIllegalMove,
		Move:   FormatMove(from, to),
		Reason: reason,
	}
}
