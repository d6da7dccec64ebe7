package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jfmyers9/tidalbar/internal/config"
	"github.com/jfmyers9/tidalbar/internal/daemon"
	"github.com/jfmyers9/tidalbar/internal/dispatch"
	"github.com/jfmyers9/tidalbar/internal/music"
	"github.com/jfmyers9/tidalbar/internal/playback"
	"github.com/jfmyers9/tidalbar/internal/tui"
	"github.com/spf13/cobra"
)

// menuCmd represents the menu command
var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Show the TIDAL menu in the terminal",
	Long: `Show a terminal menu bar for TIDAL with real-time updates.

The title line shows the song TIDAL is playing, shortened to 20
characters. Below it the full title and the menu items:
- Pause, Next Song, Previous Song, Shuffle (only while a song is shown)
- Open TIDAL, Refresh, Quit

The state refreshes every poll_interval seconds, after every playback
command and on Refresh. Logs go to ~/.local/share/tidalbar/menu.log
unless --log-file is set.

Press 'q' or Esc to quit.`,
	RunE: runMenu,
}

func init() {
	rootCmd.AddCommand(menuCmd)
}

func runMenu(cmd *cobra.Command, args []string) error {
	// stderr belongs to the terminal UI
	if logFile == "" {
		dataDir := config.GetDataDir()
		if err := os.MkdirAll(dataDir, 0755); err != nil {
			return fmt.Errorf("failed to create data directory: %w", err)
		}
		logFile = filepath.Join(dataDir, "menu.log")
	}

	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	var app *tui.App
	notifier := dispatch.FuncNotifier(func(message string) {
		app.Notify(message)
	})

	e := newEngine(cfg, logger, notifier)
	poller := daemon.NewPoller(e.store, cfg.PollDuration(), logger)
	controller := playback.NewController(ctx, e.store, e.dispatcher, e.client)
	launcher := music.NewLauncher(cfg.AppPath)

	app = tui.New(e.store, tui.Actions{
		Verbs: controller.Verbs(),
		Open: func() {
			openCtx, cancel := context.WithTimeout(ctx, openTimeout)
			defer cancel()
			if err := launcher.Open(openCtx); err != nil {
				logger.Error().Err(err).Msg("Failed to open TIDAL")
				app.Notify("Could not open TIDAL")
				return
			}
			poller.Trigger()
		},
		Refresh: poller.Trigger,
	})

	logger.Info().
		Str("version", version).
		Dur("poll_interval", cfg.PollDuration()).
		Msg("Starting tidalbar menu")

	go func() {
		if err := poller.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error().Err(err).Msg("Poller error")
		}
	}()

	return app.Run(ctx)
}
