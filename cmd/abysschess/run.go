package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/lgbarn/abysschess-go/internal/config"
	"github.com/lgbarn/abysschess-go/internal/document"
	"github.com/lgbarn/abysschess-go/internal/engine"
	cerrors "github.com/lgbarn/abysschess-go/internal/errors"
	"github.com/lgbarn/abysschess-go/internal/game"
	"github.com/lgbarn/abysschess-go/internal/output"
	"github.com/lgbarn/abysschess-go/internal/store"
)

// Exit codes.
const (
	exitOK       = 0
	exitRejected = 1
	exitUsage    = 2
)

// report selects what is printed after the command.
type report struct {
	status bool
	json   bool
	fen    bool
	moves  bool
	from   string // restricts moves to one source square
}

// execute runs the configured command and returns the process exit code.
func execute(ctx context.Context, cfg *config.Config, rep report, logger *zap.Logger) int {
	out := cfg.OutputFile
	logger = logger.With(zap.String("store", cfg.Storage.Kind))

	if rep.from != "" {
		if _, ok := engine.ParseSquare(rep.from); !ok {
			return fail(out, logger, fmt.Errorf("%w: -from %q is not a square", cerrors.ErrInvalidConfig, rep.from))
		}
	}

	// In strict mode every marker must be present before anything is saved.
	if cfg.Document.Path != "" && cfg.Document.Strict {
		if err := document.CheckFile(cfg.Document.Path, cfg.Document.MarkerPrefix, output.FragmentNames()...); err != nil {
			return fail(out, logger, err)
		}
	}

	st, err := store.Open(ctx, cfg.Storage.Kind, cfg.Storage.DataDir, cfg.Storage.DSN)
	if err != nil {
		return fail(out, logger, err)
	}
	defer st.Close()

	svc := game.NewService(st, logger)
	snap, err := runCommand(ctx, svc, cfg.Command, out)
	if err != nil {
		return fail(out, logger, err)
	}

	legal := engine.LegalMoves(snap.State.Board, snap.State.ToMove)
	if err := printReport(out, snap, legal, rep); err != nil {
		return fail(out, logger, err)
	}

	if cfg.Document.Path == "" {
		return exitOK
	}
	return updateDocument(out, logger, cfg.Document, snap, legal)
}

// runCommand dispatches on the command kind and prints the outcome line.
func runCommand(ctx context.Context, svc *game.Service, cmd config.CommandConfig, out io.Writer) (*game.Snapshot, error) {
	switch cmd.Kind {
	case config.CommandNew:
		snap, err := svc.NewGame(ctx)
		if err != nil {
			return nil, err
		}
		fmt.Fprintf(out, "[+] New game #%d started\n", snap.State.GameNum)
		return snap, nil

	case config.CommandMove, "":
		snap, err := svc.Move(ctx, cmd.Move, cmd.Player)
		if err != nil {
			return nil, err
		}
		last := snap.State.Moves[len(snap.State.Moves)-1]
		fmt.Fprintf(out, "[+] Move %s by @%s accepted, %s to move\n", last.Move, last.Player, snap.State.ToMove)
		return snap, nil

	case config.CommandRender:
		return svc.Current(ctx)

	default:
		return nil, fmt.Errorf("%w: %q", cerrors.ErrUnknownCommand, cmd.Kind)
	}
}

// printReport writes the status, FEN and move list requested by rep.
func printReport(out io.Writer, snap *game.Snapshot, legal []string, rep report) error {
	if rep.status {
		format := output.StatusText
		if rep.json {
			format = output.StatusJSON
		}
		if err := output.WriteStatus(out, snap.State, legal, format); err != nil {
			return err
		}
	}
	if rep.fen {
		fen := engine.BoardToFEN(snap.State.Board, snap.State.ToMove, len(snap.State.Moves)/2+1)
		if _, err := fmt.Fprintln(out, fen); err != nil {
			return err
		}
	}
	if rep.moves {
		if rep.from != "" {
			from, _ := engine.ParseSquare(rep.from)
			legal = engine.LegalMovesFrom(snap.State.Board, from, snap.State.ToMove)
		}
		if _, err := fmt.Fprintln(out, strings.Join(legal, " ")); err != nil {
			return err
		}
	}
	return nil
}

// updateDocument renders the fragments and splices them into the README.
func updateDocument(out io.Writer, logger *zap.Logger, cfg config.DocumentConfig, snap *game.Snapshot, legal []string) int {
	r := output.NewRenderer(
		output.WithRepository(cfg.Repository),
		output.WithIssueBody(cfg.IssueBody),
		output.WithLimits(cfg.RecentLimit, cfg.LeaderboardLimit),
	)
	frags := r.Render(snap.State, legal, snap.Leaderboard).Named()

	err := document.UpdateFile(cfg.Path, cfg.MarkerPrefix, frags, cfg.Strict)
	switch {
	case err == nil:
	case errors.Is(err, cerrors.ErrMarkerMissing) && !cfg.Strict:
		logger.Warn("document markers missing", zap.String("path", cfg.Path), zap.Error(err))
		fmt.Fprintf(out, "[!] %s: %v\n", cfg.Path, err)
	default:
		return fail(out, logger, err)
	}

	fmt.Fprintf(out, "[+] %s updated\n", cfg.Path)
	return exitOK
}

// fail prints err as a rejection line and maps it to an exit code.
func fail(out io.Writer, logger *zap.Logger, err error) int {
	var moveErr *cerrors.MoveError
	switch {
	case errors.As(err, &moveErr):
		fmt.Fprintf(out, "[-] %v\n", moveErr)
		return exitRejected
	case errors.Is(err, cerrors.ErrUnknownCommand), errors.Is(err, cerrors.ErrInvalidConfig):
		fmt.Fprintf(out, "[-] %v\n", err)
		return exitUsage
	default:
		logger.Error("command failed", zap.Error(err))
		fmt.Fprintf(out, "[-] %v\n", err)
		return exitRejected
	}
}
