/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>

*/
package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/jfmyers9/tidalbar/internal/automation"
	"github.com/jfmyers9/tidalbar/internal/config"
	"github.com/jfmyers9/tidalbar/internal/dispatch"
	"github.com/jfmyers9/tidalbar/internal/music"
	"github.com/jfmyers9/tidalbar/internal/playback"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// Version information (set via ldflags during build)
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

var (
	logFile  string
	logLevel string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "tidalbar",
	Short: "Menu bar controls for the TIDAL desktop app",
	Long: `tidalbar shows what the TIDAL desktop app is playing and controls it.

It talks to TIDAL through osascript and System Events, so it needs
Accessibility permission for the terminal it runs in.

Run 'tidalbar menu' for the interactive menu, or use the one-shot
commands (now, status, pause, next, prev, shuffle) from scripts and
status bars.`,
	Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildDate),
	SilenceUsage:  true,
	SilenceErrors: true,
}

// errSilent makes a command exit 1 after the user was already told why.
// Execute does not print it.
var errSilent = errors.New("exit status 1")

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		if !errors.Is(err, errSilent) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Log file path (default: stderr)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
}

// setupLogger creates a logger with the specified configuration
func setupLogger(logFile, logLevel string) zerolog.Logger {
	level, err := zerolog.ParseLevel(logLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	// Set up output
	var output *os.File
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
			output = os.Stderr
		} else {
			output = f
		}
	} else {
		output = os.Stderr
	}

	logger := zerolog.New(output).
		Level(level).
		With().
		Timestamp().
		Logger()

	// Use pretty console output if logging to stderr
	if output == os.Stderr {
		logger = logger.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}

	return logger
}

// engine is the automation stack shared by every command
type engine struct {
	cfg        *config.Config
	logger     zerolog.Logger
	runner     automation.Runner
	client     *music.TidalClient
	dispatcher *dispatch.Dispatcher
	store      *playback.Store
}

// newEngine wires runner, client, dispatcher and store from cfg.
// notifier receives the "not available" message of non-silent dispatches.
func newEngine(cfg *config.Config, logger zerolog.Logger, notifier dispatch.Notifier) *engine {
	runner := automation.NewOsascriptRunner(automation.WithTimeout(cfg.ScriptTimeoutDuration()))
	return newEngineWithRunner(cfg, logger, runner, notifier)
}

func newEngineWithRunner(cfg *config.Config, logger zerolog.Logger, runner automation.Runner, notifier dispatch.Notifier) *engine {
	client := music.NewTidalClient(runner, music.Options{
		ProcessName:  cfg.ProcessName,
		Sentinel:     cfg.SentinelTitle,
		PlaybackMenu: cfg.PlaybackMenu,
		Logger:       logger,
	})
	dispatcher := dispatch.New(client, notifier, logger)

	return &engine{
		cfg:        cfg,
		logger:     logger,
		runner:     runner,
		client:     client,
		dispatcher: dispatcher,
		store:      playback.NewStore(dispatcher, client, logger),
	}
}

// loadConfig loads configuration and the logger for a command
func loadConfig() (*config.Config, zerolog.Logger, error) {
	logger := setupLogger(logFile, logLevel)

	cfg, err := config.Load()
	if err != nil {
		return nil, logger, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, logger, nil
}
