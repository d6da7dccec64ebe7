package cmd

import (
	"fmt"
	"os"

	"github.com/jfmyers9/tidalbar/internal/daemon"
	"github.com/jfmyers9/tidalbar/internal/dispatch"
	"github.com/jfmyers9/tidalbar/internal/display"
	"github.com/jfmyers9/tidalbar/internal/playback"
	"github.com/spf13/cobra"
)

var watchWidth int

// watchCmd represents the watch command
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Print the playback state whenever it changes",
	Long: `Run the refresh loop in the foreground and print one line each time
the playback state changes. Useful as a feed for status bars.

The state is refreshed every poll_interval seconds. While TIDAL is not
running the interval doubles up to eight times poll_interval.

Stops on SIGINT/SIGTERM; a second signal forces exit.`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().IntVarP(&watchWidth, "width", "w", 0, "Fixed output width (0=disabled)")
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}

	logger.Info().
		Str("version", version).
		Dur("poll_interval", cfg.PollDuration()).
		Msg("Starting tidalbar watch")

	e := newEngine(cfg, logger, dispatch.WriterNotifier{W: os.Stderr})
	poller := daemon.NewPoller(e.store, cfg.PollDuration(), logger)
	w := daemon.NewWatcher(e.store, poller, watchLine(watchWidth), cmd.OutOrStdout(), logger)

	if err := w.Run(); err != nil {
		return fmt.Errorf("watch error: %w", err)
	}
	return nil
}

// watchLine renders the short title, or an empty line when nothing is shown
func watchLine(width int) daemon.LineFunc {
	return func(snap playback.Snapshot) string {
		text := ""
		if snap.Display != nil {
			text = snap.Display.Short
		}
		return display.PadToWidth(text, width)
	}
}
