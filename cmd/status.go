package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/jfmyers9/tidalbar/internal/dispatch"
	"github.com/jfmyers9/tidalbar/internal/playback"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var statusOutput string

// statusCmd represents the status command
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Print one refreshed playback snapshot",
	Long: `Refresh the playback state once and print it.

Output formats:
  text - state and the short title on one line (default)
  json - the full snapshot as JSON
  yaml - the full snapshot as YAML

The command never notifies; a TIDAL that is not running is reported
as state "not_running".`,
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)

	statusCmd.Flags().StringVarP(&statusOutput, "output", "o", "text", "Output format (text, json, yaml)")
}

// statusReport is a snapshot with its derived state spelled out
type statusReport struct {
	State             string `json:"state" yaml:"state"`
	playback.Snapshot `yaml:",inline"`
}

func runStatus(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	e := newEngine(cfg, logger, dispatch.WriterNotifier{W: os.Stderr})
	e.store.Refresh(ctx)
	return writeStatus(cmd.OutOrStdout(), e.store.Snapshot(), statusOutput)
}

// writeStatus encodes snap to out in the requested format
func writeStatus(out io.Writer, snap playback.Snapshot, format string) error {
	report := statusReport{
		State:    snap.State().String(),
		Snapshot: snap,
	}

	switch format {
	case "text", "":
		_, err := fmt.Fprintln(out, statusLine(snap))
		return err
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	case "yaml":
		enc := yaml.NewEncoder(out)
		if err := enc.Encode(report); err != nil {
			enc.Close()
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q (must be text, json or yaml)", format)
	}
}

// statusLine renders snap as "<state>" or "<state>\t<short title>"
func statusLine(snap playback.Snapshot) string {
	state := snap.State().String()
	if snap.Display == nil {
		return state
	}
	return state + "\t" + snap.Display.Short
}
