package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/abysschess-go/internal/stats"
)

func TestIsNoRows(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"bare", sql.ErrNoRows, true},
		{"wrapped", fmt.Errorf("scanning snapshot: %w", sql.ErrNoRows), true},
		{"other", sql.ErrConnDone, false},
		{"nil", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isNoRows(tt.err); got != tt.want {
				t.Errorf("isNoRows(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

// openTestPostgres connects to ABYSSCHESS_TEST_DSN and empties the tables.
func openTestPostgres(t *testing.T) *PostgresStore {
	t.Helper()
	dsn := os.Getenv("ABYSSCHESS_TEST_DSN")
	if dsn == "" {
		t.Skip("ABYSSCHESS_TEST_DSN not set")
	}

	ctx := context.Background()
	s, err := OpenPostgres(ctx, dsn)
	if err != nil {
		t.Fatalf("OpenPostgres() error = %v", err)
	}
	t.Cleanup(func() { s.Close() })

	for _, table := range []string{StateTable, LeaderboardTable} {
		if _, err := s.db.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			t.Fatalf("clearing %s: %v", table, err)
		}
	}
	return s
}

func TestPostgresStore_RoundTrip(t *testing.T) {
	s := openTestPostgres(t)
	ctx := context.Background()

	state, err := s.LoadGame(ctx)
	if err != nil || state != nil {
		t.Fatalf("LoadGame() on empty table = %v, %v", state, err)
	}

	want := sampleState()
	wantLB := stats.Leaderboard{"alice": 3, "bob": 1}
	if err := s.SaveAll(ctx, want, wantLB); err != nil {
		t.Fatalf("SaveAll() error = %v", err)
	}

	got, err := s.LoadGame(ctx)
	if err != nil {
		t.Fatalf("LoadGame() error = %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("LoadGame() mismatch (-want +got):\n%s", diff)
	}

	gotLB, err := s.LoadLeaderboard(ctx)
	if err != nil {
		t.Fatalf("LoadLeaderboard() error = %v", err)
	}
	if diff := cmp.Diff(wantLB, gotLB); diff != "" {
		t.Errorf("LoadLeaderboard() mismatch (-want +got):\n%s", diff)
	}

	// A smaller leaderboard replaces the old rows.
	if err := s.SaveLeaderboard(ctx, stats.Leaderboard{"carol": 1}); err != nil {
		t.Fatalf("SaveLeaderboard() error = %v", err)
	}
	gotLB, _ = s.LoadLeaderboard(ctx)
	if diff := cmp.Diff(stats.Leaderboard{"carol": 1}, gotLB); diff != "" {
		t.Errorf("LoadLeaderboard() after replace (-want +got):\n%s", diff)
	}
}
