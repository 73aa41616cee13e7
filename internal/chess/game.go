package chess

import "time"

// MoveRecord is one entry of a game's move log.
type MoveRecord struct {
	// Move is the 4-character token, uppercase (e.g. "E7E5").
	Move string

	// Player is the identity of whoever submitted the move.
	Player string

	// Time is when the move was applied, in UTC.
	Time time.Time
}

// GameState is the complete persisted state of one game.
type GameState struct {
	// ID uniquely identifies this game across restarts.
	ID string

	// Board is the current position.
	Board Board

	// ToMove is the side permitted to move next.
	ToMove Colour

	// Moves is the move log, oldest first.
	Moves []MoveRecord

	// GameNum counts games since the first one, starting at 1.
	GameNum int
}

// Clone returns a deep copy of the state.
func (g *GameState) Clone() *GameState {
	if g == nil {
		return nil
	}
	c := *g
	if g.Moves != nil {
		c.Moves = make([]MoveRecord, len(g.Moves))
		copy(c.Moves, g.Moves)
	}
	return &c
}

// RecentMoves returns up to n of the latest moves, most recent first.
func (g *GameState) RecentMoves(n int) []MoveRecord {
	if n <= 0 || len(g.Moves) == 0 {
		return nil
	}
	if n > len(g.Moves) {
		n = len(g.Moves)
	}
	recent := make([]MoveRecord, 0, n)
	for i := len(g.Moves) - 1; i >= len(g.Moves)-n; i-- {
		recent = append(recent, g.Moves[i])
	}
	return recent
}
