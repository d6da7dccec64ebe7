/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"text/template"

	"github.com/jfmyers9/tidalbar/internal/automation"
	"github.com/jfmyers9/tidalbar/internal/dispatch"
	"github.com/jfmyers9/tidalbar/internal/display"
	"github.com/jfmyers9/tidalbar/internal/music"
	"github.com/spf13/cobra"
)

// nothingPlayingMessage is shown when TIDAL is open without a track
const nothingPlayingMessage = "Now Playing is Not Available - Open Tidal"

// notificationTitle titles every macOS notification tidalbar posts
const notificationTitle = "TIDAL"

// nowCmd represents the now command
var nowCmd = &cobra.Command{
	Use:   "now",
	Short: "Display the song TIDAL is playing",
	Long: `Read TIDAL's window title and display the current song.

The output format can be customized in ~/.config/tidalbar/config.yaml
using a Go template. Available fields: .Raw, .Name, .Artist, .Full, .Short

Exit codes:
  0 - A song is shown
  1 - Nothing playing, or TIDAL not running`,
	RunE: runNow,
}

func init() {
	rootCmd.AddCommand(nowCmd)

	// Add format flag to override config
	nowCmd.Flags().StringP("format", "f", "", "Output format template (overrides config)")
	// Add width flag to set fixed output width
	nowCmd.Flags().IntP("width", "w", 0, "Fixed output width (0=disabled, overrides config)")
	// Post a notification instead of printing
	nowCmd.Flags().Bool("notify", false, "Show the song as a macOS notification")
}

// nowData is the value the output template is executed against
type nowData struct {
	music.Title
	display.Display
}

// nowOptions are the resolved flag and config values of the now command
type nowOptions struct {
	Format string
	Width  int
	Notify bool
}

func runNow(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}

	opts := nowOptions{
		Format: cfg.OutputFormat,
		Width:  cfg.OutputWidth,
	}
	if f, _ := cmd.Flags().GetString("format"); f != "" {
		opts.Format = f
	}
	if w, _ := cmd.Flags().GetInt("width"); w != 0 {
		opts.Width = w
	}
	opts.Notify, _ = cmd.Flags().GetBool("notify")

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	runner := automation.NewOsascriptRunner(automation.WithTimeout(cfg.ScriptTimeoutDuration()))

	var notifier dispatch.Notifier = dispatch.WriterNotifier{W: os.Stderr}
	if opts.Notify {
		notifier = dispatch.ScriptNotifier{Runner: runner, Title: notificationTitle}
	}

	e := newEngineWithRunner(cfg, logger, runner, notifier)
	return showNow(ctx, e, opts, cmd.OutOrStdout())
}

// showNow fetches the current title through the dispatcher and writes it to out,
// or posts it as a notification
func showNow(ctx context.Context, e *engine, opts nowOptions, out io.Writer) error {
	tmpl, err := template.New("output").Parse(opts.Format)
	if err != nil {
		return fmt.Errorf("invalid template: %w", err)
	}

	var data nowData
	outcome := e.dispatcher.Dispatch(ctx, "now", func(ctx context.Context) error {
		title, err := e.client.NowPlaying(ctx)
		if err != nil {
			return err
		}
		data.Title = title
		if !title.NoTrack {
			data.Display = display.Format(title.Raw)
		}
		return nil
	}, dispatch.Options{})
	if err := outcomeErr("now", outcome); err != nil {
		return err
	}

	text := nothingPlayingMessage
	if !data.NoTrack {
		text, err = formatNow(tmpl, data)
		if err != nil {
			return err
		}
		text = display.PadToWidth(text, opts.Width)
	}

	if opts.Notify {
		if err := automation.Notify(ctx, e.runner, notificationTitle, text); err != nil {
			return fmt.Errorf("failed to show notification: %w", err)
		}
	} else {
		fmt.Fprintln(out, text)
	}

	if data.NoTrack {
		return errSilent
	}
	return nil
}

// formatNow applies the template to the now playing data
func formatNow(tmpl *template.Template, data nowData) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("template execution failed: %w", err)
	}

	return buf.String(), nil
}
