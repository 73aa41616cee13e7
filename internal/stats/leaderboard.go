// Package stats tracks how many successful moves each player has made.
package stats

import "sort"

// Leaderboard maps a player identity to their move count.
// Storage is unordered; Ranked imposes the display order.
type Leaderboard map[string]int

// Entry is one ranked leaderboard row.
type Entry struct {
	Rank   int
	Player string
	Moves  int
}

// Increment records one more move by player and returns the new count.
// A player seen for the first time starts at 1.
func (lb Leaderboard) Increment(player string) int {
	lb[player]++
	return lb[player]
}

// Clone returns an independent copy. Cloning a nil leaderboard yields an
// empty, writable one.
func (lb Leaderboard) Clone() Leaderboard {
	c := make(Leaderboard, len(lb))
	for player, n := range lb {
		c[player] = n
	}
	return c
}

// Ranked returns up to limit entries ordered by move count, highest first.
// Ties are broken by player name so the order is deterministic.
// A limit of zero or less returns every entry.
func (lb Leaderboard) Ranked(limit int) []Entry {
	entries := make([]Entry, 0, len(lb))
	for player, n := range lb {
		entries = append(entries, Entry{Player: player, Moves: n})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Moves != entries[j].Moves {
			return entries[i].Moves > entries[j].Moves
		}
		return entries[i].Player < entries[j].Player
	})

	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries
}

// Total returns the sum of all move counts.
func (lb Leaderboard) Total() int {
	total := 0
	for _, n := range lb {
		total += n
	}
	return total
}
