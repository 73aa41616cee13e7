package config

import (
	"fmt"

	"github.com/lgbarn/abysschess-go/internal/errors"
)

// Storage backends.
const (
	StoreFile     = "file"
	StorePostgres = "postgres"
	StoreMemory   = "memory"
)

// StorageConfig holds settings for snapshot persistence.
type StorageConfig struct {
	// Kind selects the backend: file, postgres or memory
	Kind string `json:"kind"`

	// DataDir is the directory holding game.json and leaderboard.json
	DataDir string `json:"data_dir"`

	// DSN is the Postgres connection string
	DSN string `json:"dsn"`
}

// NewStorageConfig creates a StorageConfig with default values.
func NewStorageConfig() *StorageConfig {
	return &StorageConfig{
		Kind:    StoreFile,
		DataDir: "chess_data",
	}
}

// Validate checks the backend selection.
func (c *StorageConfig) Validate() error {
	switch c.Kind {
	case StoreFile:
		if c.DataDir == "" {
			return fmt.Errorf("%w: file store needs a data directory", errors.ErrInvalidConfig)
		}
	case StorePostgres:
		if c.DSN == "" {
			return fmt.Errorf("%w: postgres store needs a DSN", errors.ErrInvalidConfig)
		}
	case StoreMemory:
	default:
		return fmt.Errorf("%w: unknown store %q", errors.ErrInvalidConfig, c.Kind)
	}
	return nil
}
