package config

import (
	"fmt"
	"strings"

	"github.com/lgbarn/abysschess-go/internal/errors"
)

// CommandKind names what an invocation does.
type CommandKind string

const (
	CommandNew    CommandKind = "new"    // Start the next game
	CommandMove   CommandKind = "move"   // Apply one move
	CommandRender CommandKind = "render" // Re-render the README only
)

// DefaultPlayer is used when no player identity is supplied.
const DefaultPlayer = "anonymous"

// CommandConfig holds the command being run and its arguments.
type CommandConfig struct {
	// Kind is new, move or render.
	Kind CommandKind

	// Move is the submitted move token, e.g. e2e4.
	Move string

	// Player is the identity credited with the move.
	Player string
}

// NewCommandConfig creates a CommandConfig with default values.
func NewCommandConfig() *CommandConfig {
	return &CommandConfig{
		Kind:   CommandMove,
		Player: DefaultPlayer,
	}
}

// ParseCommandKind accepts a command name in any case with surrounding
// whitespace. An empty name means CommandMove.
func ParseCommandKind(s string) (CommandKind, error) {
	switch kind := CommandKind(strings.ToLower(strings.TrimSpace(s))); kind {
	case "":
		return CommandMove, nil
	case CommandNew, CommandMove, CommandRender:
		return kind, nil
	default:
		return "", fmt.Errorf("%w: %q", errors.ErrUnknownCommand, strings.TrimSpace(s))
	}
}

// Validate checks the command kind.
func (c *CommandConfig) Validate() error {
	_, err := ParseCommandKind(string(c.Kind))
	return err
}
