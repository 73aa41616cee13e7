// abysschess plays a community chess game stored in a repository and
// renders it into the repository's README.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/lgbarn/abysschess-go/internal/config"
	"github.com/lgbarn/abysschess-go/internal/logging"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("abysschess version %s\n", programVersion)
		os.Exit(0)
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitUsage)
	}

	setupLogFile(cfg)
	logger := logging.New(cfg.LogFile, cfg.Verbosity)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := execute(ctx, cfg, reportOptions(), logger)
	stop()

	_ = logger.Sync()
	os.Exit(code)
}

// loadConfig layers defaults, the config file, the .env file, the
// environment and the flags, then validates the result.
func loadConfig() (*config.Config, error) {
	cfg := config.NewConfig()

	path := *configFile
	if path == "" {
		path = config.FindConfigFile()
	}
	if path != "" {
		if err := cfg.LoadFile(path); err != nil {
			return nil, err
		}
	}

	if err := config.LoadEnvFile(*envFile); err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(os.Getenv); err != nil {
		return nil, err
	}
	if err := applyFlags(cfg); err != nil {
		return nil, err
	}

	if cfg.LogPath != "" && *logFile == "" && *appendLog == "" {
		*appendLog = cfg.LogPath
	}

	return cfg, cfg.Validate()
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile != "" {
		file, err := os.Create(*logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
			os.Exit(exitUsage)
		}
		cfg.SetLogFile(file)
	}

	if *appendLog != "" {
		file, err := os.OpenFile(*appendLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *appendLog, err)
			os.Exit(exitUsage)
		}
		cfg.SetLogFile(file)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: abysschess [options]\n\n")
	fmt.Fprintf(os.Stderr, "Applies one command to the stored game and re-renders the README.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nCommands (-cmd or $CHESS_CMD):\n")
	fmt.Fprintf(os.Stderr, "  move    Apply $CHESS_MOVE for $CHESS_PLAYER (default)\n")
	fmt.Fprintf(os.Stderr, "  new     Start the next game; the leaderboard carries over\n")
	fmt.Fprintf(os.Stderr, "  render  Re-render the README without changing the game\n")
	fmt.Fprintf(os.Stderr, "\nExit status: 0 success, 1 rejected move or storage failure, 2 usage error.\n")
}
