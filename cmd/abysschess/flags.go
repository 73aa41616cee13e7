// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"strings"

	"github.com/lgbarn/abysschess-go/internal/config"
)

var (
	// Command
	cmdKind  = flag.String("cmd", "", "Command: new, move or render (default: $CHESS_CMD, else move)")
	moveArg  = flag.String("move", "", "Move token such as e7e5 (default: $CHESS_MOVE)")
	player   = flag.String("player", "", "Player credited with the move (default: $CHESS_PLAYER)")
	dataDir  = flag.String("data", "", "Directory holding game.json and leaderboard.json")
	storeArg = flag.String("store", "", "Snapshot store: file, postgres or memory")
	dsn      = flag.String("dsn", "", "Postgres connection string for -store postgres")

	// Document
	readme     = flag.String("readme", "", "Document to splice (default README.md)")
	noReadme   = flag.Bool("noreadme", false, "Don't render or splice the document")
	prefix     = flag.String("prefix", "", "Marker prefix (default CHESS)")
	strictMode = flag.Bool("strict", false, "Fail instead of warning when a marker is missing")
	repository = flag.String("repo", "", "owner/name used in move links (default: $GITHUB_REPOSITORY)")

	// Configuration sources
	configFile = flag.String("config", "", "JSON config file (default: search XDG config dirs)")
	envFile    = flag.String("env", ".env", "Environment file loaded before reading the environment")

	// Reporting
	showStatus = flag.Bool("status", false, "Print the game status after the command")
	jsonStatus = flag.Bool("json", false, "Print the status as JSON (implies -status)")
	showFEN    = flag.Bool("fen", false, "Print the position as FEN after the command")
	listMoves  = flag.Bool("moves", false, "Print the legal moves after the command")
	movesFrom  = flag.String("from", "", "Restrict -moves to the piece on this square, e.g. e7 (implies -moves)")

	// Logging
	verbosity = flag.Int("v", -1, "Verbosity: 0=warnings, 1=info, 2=debug")
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	appendLog = flag.String("L", "", "Append diagnostics to log file")

	// Other options
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration. Flags left
// at their defaults keep the value from the earlier layers.
func applyFlags(cfg *config.Config) error {
	if err := applyCommandFlags(cfg); err != nil {
		return err
	}
	applyStorageFlags(cfg)
	applyDocumentFlags(cfg)

	if *verbosity >= 0 {
		cfg.Verbosity = *verbosity
	}
	return nil
}

// applyCommandFlags configures the command to run.
func applyCommandFlags(cfg *config.Config) error {
	if *cmdKind != "" {
		kind, err := config.ParseCommandKind(*cmdKind)
		if err != nil {
			return err
		}
		cfg.Command.Kind = kind
	}
	if s := strings.TrimSpace(*moveArg); s != "" {
		cfg.Command.Move = s
	}
	if s := strings.TrimSpace(*player); s != "" {
		cfg.Command.Player = s
	}
	return nil
}

// applyStorageFlags configures the snapshot store.
func applyStorageFlags(cfg *config.Config) {
	if *storeArg != "" {
		cfg.Storage.Kind = strings.ToLower(*storeArg)
	}
	if *dataDir != "" {
		cfg.Storage.DataDir = *dataDir
	}
	if *dsn != "" {
		cfg.Storage.DSN = *dsn
	}
}

// applyDocumentFlags configures README rendering.
func applyDocumentFlags(cfg *config.Config) {
	switch {
	case *noReadme:
		cfg.Document.Path = ""
	case *readme != "":
		cfg.Document.Path = *readme
	}
	if *prefix != "" {
		cfg.Document.MarkerPrefix = *prefix
	}
	if *strictMode {
		cfg.Document.Strict = true
	}
	if *repository != "" {
		cfg.Document.Repository = *repository
	}
}

// reportOptions collects the flags that add output after the command.
func reportOptions() report {
	return report{
		status: *showStatus || *jsonStatus,
		json:   *jsonStatus,
		fen:    *showFEN,
		moves:  *listMoves || *movesFrom != "",
		from:   strings.ToLower(strings.TrimSpace(*movesFrom)),
	}
}
