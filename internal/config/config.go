// Package config provides configuration for abysschess.
//
// Values are layered: NewConfig defaults, then a JSON config file, then a
// .env file, then the process environment, then command-line flags.
package config

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"regexp"

	"github.com/adrg/xdg"

	"github.com/lgbarn/abysschess-go/internal/errors"
)

// ConfigFileName is the path searched for under the XDG config directories.
const ConfigFileName = "abysschess/config.json"

// Config holds all program configuration.
type Config struct {
	// Command is the single command this invocation runs.
	Command CommandConfig `json:"-"`

	// Storage selects and locates the snapshot store.
	Storage StorageConfig `json:"storage"`

	// Document controls README rendering and splicing.
	Document DocumentConfig `json:"document"`

	// Verbosity: 0=warnings only, 1=info, 2=debug
	Verbosity int `json:"verbosity"`

	// LogPath names the diagnostics file; empty means LogFile as set.
	LogPath string `json:"log_file"`

	// Output streams
	OutputFile io.Writer `json:"-"`
	LogFile    io.Writer `json:"-"`
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Command:    *NewCommandConfig(),
		Storage:    *NewStorageConfig(),
		Document:   *NewDocumentConfig(),
		Verbosity:  0,
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the stream for user-facing messages.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLogFile sets the diagnostics stream.
func (c *Config) SetLogFile(w io.Writer) {
	c.LogFile = w
}

var prefixPattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	if err := c.Command.Validate(); err != nil {
		return err
	}
	if err := c.Storage.Validate(); err != nil {
		return err
	}
	if err := c.Document.Validate(); err != nil {
		return err
	}
	if c.Verbosity < 0 {
		return fmt.Errorf("%w: verbosity %d is negative", errors.ErrInvalidConfig, c.Verbosity)
	}
	return nil
}

// LoadFile merges the JSON file at path into c. Keys absent from the file
// keep their current values.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path) //nolint:gosec // G304: path is the user's config file
	if err != nil {
		return errors.Wrapf(err, "reading config %s", path)
	}
	if err := json.Unmarshal(data, c); err != nil {
		return fmt.Errorf("%w: %s: %w", errors.ErrInvalidConfig, path, err)
	}
	return nil
}

// FindConfigFile returns the first ConfigFileName found in the XDG config
// directories, or "" if there is none.
func FindConfigFile() string {
	path, err := xdg.SearchConfigFile(ConfigFileName)
	if err != nil {
		return ""
	}
	return path
}
