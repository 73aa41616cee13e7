// Package output renders game state: Markdown fragments for the README,
// plain-text and JSON status reports, and the JSON snapshot format used by
// the stores.
package output

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/lgbarn/abysschess-go/internal/chess"
	"github.com/lgbarn/abysschess-go/internal/errors"
	"github.com/lgbarn/abysschess-go/internal/stats"
)

// legacyTimeLayout matches timestamps written without a zone suffix.
// They are interpreted as UTC.
const legacyTimeLayout = "2006-01-02T15:04:05"

// JSONGame is the persisted form of a chess.GameState.
type JSONGame struct {
	ID      string     `json:"id,omitempty"`
	Board   [][]string `json:"board"`
	Turn    string     `json:"turn"`
	Moves   []JSONMove `json:"moves"`
	GameNum int        `json:"game_num"`
}

// JSONMove is the persisted form of a chess.MoveRecord.
type JSONMove struct {
	Move   string `json:"move"`
	Player string `json:"player"`
	Time   string `json:"time"`
}

// GameToJSON converts a game state to its JSON form.
func GameToJSON(state *chess.GameState) *JSONGame {
	jg := &JSONGame{
		ID:      state.ID,
		Board:   make([][]string, chess.BoardSize),
		Turn:    state.ToMove.String(),
		Moves:   make([]JSONMove, 0, len(state.Moves)),
		GameNum: state.GameNum,
	}

	for row := 0; row < chess.BoardSize; row++ {
		jg.Board[row] = make([]string, chess.BoardSize)
		for col := 0; col < chess.BoardSize; col++ {
			piece := state.Board.Get(chess.Square{Row: row, Col: col})
			jg.Board[row][col] = string(piece.Letter())
		}
	}

	for _, m := range state.Moves {
		jg.Moves = append(jg.Moves, JSONMove{
			Move:   m.Move,
			Player: m.Player,
			Time:   formatTime(m.Time),
		})
	}

	return jg
}

// GameFromJSON validates and converts the JSON form back to a game state.
func GameFromJSON(jg *JSONGame) (*chess.GameState, error) {
	state := &chess.GameState{
		ID:      jg.ID,
		GameNum: jg.GameNum,
		Moves:   make([]chess.MoveRecord, 0, len(jg.Moves)),
	}
	if state.GameNum < 1 {
		state.GameNum = 1
	}

	board, err := boardFromJSON(jg.Board)
	if err != nil {
		return nil, err
	}
	state.Board = board

	toMove, ok := chess.ParseColour(jg.Turn)
	if !ok {
		return nil, fmt.Errorf("turn %q: %w", jg.Turn, errors.ErrInvalidSnapshot)
	}
	state.ToMove = toMove

	for i, m := range jg.Moves {
		at, err := parseTime(m.Time)
		if err != nil {
			return nil, fmt.Errorf("move %d time %q: %w", i+1, m.Time, errors.ErrInvalidSnapshot)
		}
		state.Moves = append(state.Moves, chess.MoveRecord{
			Move:   m.Move,
			Player: m.Player,
			Time:   at,
		})
	}

	return state, nil
}

// boardFromJSON decodes an 8x8 grid of one-letter cells.
func boardFromJSON(rows [][]string) (chess.Board, error) {
	board := chess.NewBoard()
	if len(rows) != chess.BoardSize {
		return board, fmt.Errorf("board has %d rows: %w", len(rows), errors.ErrInvalidSnapshot)
	}
	for row, cells := range rows {
		if len(cells) != chess.BoardSize {
			return board, fmt.Errorf("board row %d has %d cells: %w", row, len(cells), errors.ErrInvalidSnapshot)
		}
		for col, cell := range cells {
			if len(cell) != 1 {
				return board, fmt.Errorf("board cell %d,%d %q: %w", row, col, cell, errors.ErrInvalidSnapshot)
			}
			piece, ok := chess.PieceFromLetter(cell[0])
			if !ok {
				return board, fmt.Errorf("board cell %d,%d %q: %w", row, col, cell, errors.ErrInvalidSnapshot)
			}
			board = board.With(chess.Square{Row: row, Col: col}, piece)
		}
	}
	return board, nil
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t.UTC(), nil
	}
	return time.ParseInLocation(legacyTimeLayout, s, time.UTC)
}

// MarshalGame encodes a game state as indented JSON.
func MarshalGame(state *chess.GameState) ([]byte, error) {
	return json.MarshalIndent(GameToJSON(state), "", "  ")
}

// UnmarshalGame decodes a game state written by MarshalGame or by the
// earlier releases of the bot.
func UnmarshalGame(data []byte) (*chess.GameState, error) {
	var jg JSONGame
	if err := json.Unmarshal(data, &jg); err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrInvalidSnapshot, err)
	}
	return GameFromJSON(&jg)
}

// MarshalLeaderboard encodes a leaderboard as an indented JSON object.
func MarshalLeaderboard(lb stats.Leaderboard) ([]byte, error) {
	if lb == nil {
		lb = stats.Leaderboard{}
	}
	return json.MarshalIndent(lb, "", "  ")
}

// UnmarshalLeaderboard decodes a leaderboard, rejecting negative counts.
func UnmarshalLeaderboard(data []byte) (stats.Leaderboard, error) {
	lb := stats.Leaderboard{}
	if err := json.Unmarshal(data, &lb); err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrInvalidSnapshot, err)
	}
	for player, n := range lb {
		if n < 0 {
			return nil, fmt.Errorf("leaderboard entry %q is %d: %w", player, n, errors.ErrInvalidSnapshot)
		}
	}
	return lb, nil
}
