package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/lgbarn/abysschess-go/internal/errors"
)

// Environment variables read by ApplyEnv.
const (
	EnvCommand          = "CHESS_CMD"
	EnvMove             = "CHESS_MOVE"
	EnvPlayer           = "CHESS_PLAYER"
	EnvRepository       = "GITHUB_REPOSITORY"
	EnvStore            = "ABYSSCHESS_STORE"
	EnvDataDir          = "ABYSSCHESS_DATA_DIR"
	EnvDSN              = "ABYSSCHESS_DSN"
	EnvReadme           = "ABYSSCHESS_README"
	EnvMarkerPrefix     = "ABYSSCHESS_MARKER_PREFIX"
	EnvStrict           = "ABYSSCHESS_STRICT"
	EnvVerbosity        = "ABYSSCHESS_VERBOSITY"
	EnvRecentLimit      = "ABYSSCHESS_RECENT_LIMIT"
	EnvLeaderboardLimit = "ABYSSCHESS_LEADERBOARD_LIMIT"
)

// LoadEnvFile loads variables from a .env file into the process
// environment without overriding ones already set. A missing file is not
// an error.
func LoadEnvFile(path string) error {
	if path == "" {
		path = ".env"
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return errors.Wrapf(err, "loading %s", path)
	}
	return nil
}

// ApplyEnv overrides c with the variables getenv reports. Values are
// trimmed; empty values are ignored.
func (c *Config) ApplyEnv(getenv func(string) string) error {
	get := func(key string) (string, bool) {
		v := strings.TrimSpace(getenv(key))
		return v, v != ""
	}

	if v, ok := get(EnvCommand); ok {
		kind, err := ParseCommandKind(v)
		if err != nil {
			return err
		}
		c.Command.Kind = kind
	}
	if v, ok := get(EnvMove); ok {
		c.Command.Move = v
	}
	if v, ok := get(EnvPlayer); ok {
		c.Command.Player = v
	}
	if v, ok := get(EnvRepository); ok {
		c.Document.Repository = v
	}
	if v, ok := get(EnvStore); ok {
		c.Storage.Kind = strings.ToLower(v)
	}
	if v, ok := get(EnvDataDir); ok {
		c.Storage.DataDir = v
	}
	if v, ok := get(EnvDSN); ok {
		c.Storage.DSN = v
	}
	if v, ok := get(EnvReadme); ok {
		c.Document.Path = v
	}
	if v, ok := get(EnvMarkerPrefix); ok {
		c.Document.MarkerPrefix = v
	}

	if v, ok := get(EnvStrict); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return envError(EnvStrict, v)
		}
		c.Document.Strict = b
	}

	ints := []struct {
		key string
		dst *int
	}{
		{EnvVerbosity, &c.Verbosity},
		{EnvRecentLimit, &c.Document.RecentLimit},
		{EnvLeaderboardLimit, &c.Document.LeaderboardLimit},
	}
	for _, in := range ints {
		v, ok := get(in.key)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return envError(in.key, v)
		}
		*in.dst = n
	}
	return nil
}

func envError(key, value string) error {
	return fmt.Errorf("%w: %s=%q", errors.ErrInvalidConfig, key, value)
}
