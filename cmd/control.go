package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/jfmyers9/tidalbar/internal/dispatch"
	"github.com/jfmyers9/tidalbar/internal/music"
	"github.com/jfmyers9/tidalbar/internal/playback"
	"github.com/spf13/cobra"
)

var controlShowNow bool

// pauseCmd represents the pause command
var pauseCmd = &cobra.Command{
	Use:   "pause",
	Short: "Toggle pause in TIDAL",
	Long:  `Click Pause in TIDAL's Playback menu. TIDAL toggles between playing and paused.`,
	RunE:  verbRunner(music.VerbPause),
}

// nextCmd represents the next command
var nextCmd = &cobra.Command{
	Use:   "next",
	Short: "Skip to the next song in TIDAL",
	Long:  `Click Next in TIDAL's Playback menu.`,
	RunE:  verbRunner(music.VerbNext),
}

// prevCmd represents the prev command
var prevCmd = &cobra.Command{
	Use:   "prev",
	Short: "Go to the previous song in TIDAL",
	Long:  `Click Previous in TIDAL's Playback menu.`,
	RunE:  verbRunner(music.VerbPrevious),
}

// shuffleCmd represents the shuffle command
var shuffleCmd = &cobra.Command{
	Use:   "shuffle",
	Short: "Toggle shuffle in TIDAL",
	Long:  `Click Shuffle in TIDAL's Playback menu. TIDAL toggles shuffle on or off.`,
	RunE:  verbRunner(music.VerbShuffle),
}

func init() {
	for _, c := range []*cobra.Command{pauseCmd, nextCmd, prevCmd, shuffleCmd} {
		c.Flags().BoolVar(&controlShowNow, "now", false, "Print the song shown after the command")
		rootCmd.AddCommand(c)
	}
}

func verbRunner(verb music.Verb) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := loadConfig()
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		e := newEngine(cfg, logger, dispatch.WriterNotifier{W: os.Stderr})
		return runVerb(ctx, e, verb, controlShowNow, cmd.OutOrStdout())
	}
}

// runVerb sends verb through the dispatcher and maps the outcome to an exit status
func runVerb(ctx context.Context, e *engine, verb music.Verb, showNow bool, out io.Writer) error {
	controller := playback.NewController(ctx, e.store, e.dispatcher, e.client)

	outcome := controller.Do(ctx, verb)
	if err := outcomeErr(string(verb), outcome); err != nil {
		return err
	}

	if showNow {
		if d := e.store.Snapshot().Display; d != nil {
			fmt.Fprintln(out, d.Short)
		}
	}
	return nil
}

// outcomeErr converts a dispatch outcome into a command error
func outcomeErr(name string, outcome dispatch.Outcome) error {
	switch outcome {
	case dispatch.OutcomeRan:
		return nil
	case dispatch.OutcomeNotRunning:
		return errSilent
	default:
		return fmt.Errorf("%s failed, rerun with --log-level debug for details", name)
	}
}
