// Package errors provides sentinel errors and error types for abysschess.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrMalformedMove indicates a move token that could not be parsed.
	ErrMalformedMove = errors.New("malformed move")

	// ErrIllegalMove indicates a move rejected by the legality checker.
	ErrIllegalMove = errors.New("illegal move")

	// ErrStorageUnavailable indicates the snapshot or leaderboard store failed.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrMarkerMissing indicates a document lacks a START/END marker pair.
	ErrMarkerMissing = errors.New("document marker missing")

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidSnapshot indicates a persisted game snapshot that cannot be decoded.
	ErrInvalidSnapshot = errors.New("invalid snapshot")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrUnknownCommand indicates a command kind other than new, move or render.
	ErrUnknownCommand = errors.New("unknown command")
)

// MoveError wraps a move rejection with the submitted token and the
// human-readable reason. Err is ErrMalformedMove or ErrIllegalMove.
type MoveError struct {
	Err    error  // The underlying sentinel
	Move   string // The move token as submitted (may be empty)
	Reason string // Why the move was rejected (may be empty)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Err != nil {
		parts = append(parts, e.Err.Error())
	} else {
		parts = append(parts, "move rejected")
	}

	if e.Move != "" {
		parts[0] = fmt.Sprintf("%s %q", parts[0], e.Move)
	}

	if e.Reason != "" {
		parts = append(parts, e.Reason)
	}

	return strings.Join(parts, ": ")
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// Storage marks err as a storage failure. The original error stays
// reachable through errors.Is and errors.As.
func Storage(err error, op string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w: %w", op, ErrStorageUnavailable, err)
}
