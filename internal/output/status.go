package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/lgbarn/abysschess-go/internal/chess"
	"github.com/lgbarn/abysschess-go/internal/engine"
)

// StatusFormat selects how WriteStatus prints.
type StatusFormat int

const (
	StatusText StatusFormat = iota
	StatusJSON
)

// Status is a compact summary of the current game.
type Status struct {
	GameID     string `json:"gameId,omitempty"`
	GameNum    int    `json:"gameNum"`
	ToMove     string `json:"toMove"`
	FEN        string `json:"fen"`
	MoveCount  int    `json:"moveCount"`
	LegalMoves int    `json:"legalMoves"`
	LastMove   string `json:"lastMove,omitempty"`
	LastPlayer string `json:"lastPlayer,omitempty"`
}

// NewStatus summarises state. legal is the move list for the side to move.
func NewStatus(state *chess.GameState, legal []string) Status {
	st := Status{
		GameID:     state.ID,
		GameNum:    state.GameNum,
		ToMove:     state.ToMove.String(),
		FEN:        engine.BoardToFEN(state.Board, state.ToMove, len(state.Moves)/2+1),
		MoveCount:  len(state.Moves),
		LegalMoves: len(legal),
	}
	if n := len(state.Moves); n > 0 {
		st.LastMove = state.Moves[n-1].Move
		st.LastPlayer = state.Moves[n-1].Player
	}
	return st
}

// WriteStatus prints the status of state to w.
func WriteStatus(w io.Writer, state *chess.GameState, legal []string, format StatusFormat) error {
	st := NewStatus(state, legal)

	if format == StatusJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(st)
	}

	_, err := fmt.Fprintf(w, "Game #%d, %s to move, %d move(s) played, %d legal move(s)\nFEN: %s\n",
		st.GameNum, st.ToMove, st.MoveCount, st.LegalMoves, st.FEN)
	if err != nil {
		return err
	}
	if st.LastMove != "" {
		_, err = fmt.Fprintf(w, "Last move: %s by %s\n", st.LastMove, st.LastPlayer)
	}
	return err
}
