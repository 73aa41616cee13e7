package store

import (
	"context"
	"database/sql"
	stderrors "errors"

	"github.com/lib/pq"

	"github.com/lgbarn/abysschess-go/internal/chess"
	"github.com/lgbarn/abysschess-go/internal/errors"
	"github.com/lgbarn/abysschess-go/internal/output"
	"github.com/lgbarn/abysschess-go/internal/stats"
)

// Table names used by PostgresStore.
const (
	StateTable       = "abysschess_state"
	LeaderboardTable = "abysschess_leaderboard"
)

// stateRowID is the key of the single snapshot row.
const stateRowID = 1

var schema = []string{
	`CREATE TABLE IF NOT EXISTS ` + StateTable + ` (
		id         INT PRIMARY KEY,
		snapshot   JSONB NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS ` + LeaderboardTable + ` (
		player TEXT PRIMARY KEY,
		moves  INT NOT NULL CHECK (moves >= 0)
	)`,
}

// execer is satisfied by *sql.DB and *sql.Tx.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	PrepareContext(ctx context.Context, query string) (*sql.Stmt, error)
}

// PostgresStore keeps the snapshot as a JSONB row and the leaderboard as
// one row per player. SaveAll writes both in a single transaction.
type PostgresStore struct {
	db *sql.DB
}

// OpenPostgres connects to dsn, checks the connection and creates the
// tables if needed.
func OpenPostgres(ctx context.Context, dsn string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "sql.Open")
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "db.Ping")
	}

	s := NewPostgresStore(db)
	if err := s.EnsureSchema(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// NewPostgresStore wraps an open database handle.
func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// EnsureSchema creates the tables if they do not exist.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return errors.Wrap(err, "creating schema")
		}
	}
	return nil
}

// LoadGame returns the stored snapshot, or nil, nil if there is none.
func (s *PostgresStore) LoadGame(ctx context.Context) (*chess.GameState, error) {
	var data []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT snapshot FROM `+StateTable+` WHERE id = $1`, stateRowID).Scan(&data)
	if isNoRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "loading snapshot")
	}
	return output.UnmarshalGame(data)
}

// SaveGame upserts the snapshot row.
func (s *PostgresStore) SaveGame(ctx context.Context, state *chess.GameState) error {
	return saveGame(ctx, s.db, state)
}

// LoadLeaderboard reads every player row.
func (s *PostgresStore) LoadLeaderboard(ctx context.Context) (stats.Leaderboard, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT player, moves FROM `+LeaderboardTable)
	if err != nil {
		return nil, errors.Wrap(err, "loading leaderboard")
	}
	defer rows.Close()

	lb := stats.Leaderboard{}
	for rows.Next() {
		var player string
		var moves int
		if err := rows.Scan(&player, &moves); err != nil {
			return nil, errors.Wrap(err, "scanning leaderboard")
		}
		lb[player] = moves
	}
	return lb, errors.Wrap(rows.Err(), "loading leaderboard")
}

// SaveLeaderboard replaces the leaderboard rows in one transaction.
func (s *PostgresStore) SaveLeaderboard(ctx context.Context, lb stats.Leaderboard) error {
	return s.inTx(ctx, func(tx *sql.Tx) error {
		return saveLeaderboard(ctx, tx, lb)
	})
}

// SaveAll writes the snapshot and the leaderboard in one transaction.
func (s *PostgresStore) SaveAll(ctx context.Context, state *chess.GameState, lb stats.Leaderboard) error {
	return s.inTx(ctx, func(tx *sql.Tx) error {
		if err := saveLeaderboard(ctx, tx, lb); err != nil {
			return err
		}
		return saveGame(ctx, tx, state)
	})
}

// Close closes the database handle.
func (s *PostgresStore) Close() error {
	return s.db.Close()
}

func (s *PostgresStore) inTx(ctx context.Context, fn func(*sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return errors.Wrap(err, "begin transaction")
	}
	defer tx.Rollback() //nolint:errcheck // no-op after Commit

	if err := fn(tx); err != nil {
		return err
	}
	return errors.Wrap(tx.Commit(), "commit")
}

func saveGame(ctx context.Context, ex execer, state *chess.GameState) error {
	data, err := output.MarshalGame(state)
	if err != nil {
		return err
	}
	_, err = ex.ExecContext(ctx, `
		INSERT INTO `+StateTable+` (id, snapshot, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (id) DO UPDATE
		SET snapshot = EXCLUDED.snapshot, updated_at = EXCLUDED.updated_at`,
		stateRowID, string(data))
	return errors.Wrap(err, "saving snapshot")
}

// saveLeaderboard truncates the table and bulk-loads lb with COPY.
func saveLeaderboard(ctx context.Context, ex execer, lb stats.Leaderboard) error {
	if _, err := ex.ExecContext(ctx, `DELETE FROM `+LeaderboardTable); err != nil {
		return errors.Wrap(err, "clearing leaderboard")
	}
	if len(lb) == 0 {
		return nil
	}

	stmt, err := ex.PrepareContext(ctx, pq.CopyIn(LeaderboardTable, "player", "moves"))
	if err != nil {
		return errors.Wrap(err, "preparing leaderboard copy")
	}
	defer stmt.Close()

	for _, e := range lb.Ranked(0) {
		if _, err := stmt.ExecContext(ctx, e.Player, e.Moves); err != nil {
			return errors.Wrapf(err, "copying %q", e.Player)
		}
	}
	if _, err := stmt.ExecContext(ctx); err != nil {
		return errors.Wrap(err, "finishing leaderboard copy")
	}
	return nil
}

// isNoRows reports whether err means the queried row does not exist.
func isNoRows(err error) bool {
	return stderrors.Is(err, sql.ErrNoRows)
}
