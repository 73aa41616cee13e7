package engine

import "github.com/lgbarn/abysschess-go/internal/chess"

// LegalMoves enumerates every move CheckMove accepts for colour.
// Sources are scanned row by row (row 0 first, columns 0..7 within a row)
// and, for each source, destinations in the same order. Callers rely on
// this order.
func LegalMoves(board chess.Board, colour chess.Colour) []string {
	var moves []string
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			from := chess.Square{Row: row, Col: col}
			if !board.Get(from).Belongs(colour) {
				continue
			}
			moves = appendMovesFrom(moves, board, from, colour)
		}
	}
	return moves
}

// LegalMovesFrom enumerates the accepted moves of the piece on from.
func LegalMovesFrom(board chess.Board, from chess.Square, colour chess.Colour) []string {
	if !board.Get(from).Belongs(colour) {
		return nil
	}
	return appendMovesFrom(nil, board, from, colour)
}

func appendMovesFrom(moves []string, board chess.Board, from chess.Square, colour chess.Colour) []string {
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			to := chess.Square{Row: row, Col: col}
			if CheckMove(board, from, to, colour) == nil {
				moves = append(moves, FormatMove(from, to))
			}
		}
	}
	return moves
}
