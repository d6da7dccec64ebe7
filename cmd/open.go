package cmd

import (
	"context"
	"time"

	"github.com/jfmyers9/tidalbar/internal/music"
	"github.com/spf13/cobra"
)

// openTimeout bounds `open -a`, which returns once TIDAL has launched
const openTimeout = 10 * time.Second

// openCmd represents the open command
var openCmd = &cobra.Command{
	Use:   "open",
	Short: "Open the TIDAL app",
	Long:  `Launch TIDAL, or bring it to the front if it is already running.`,
	RunE:  runOpen,
}

func init() {
	rootCmd.AddCommand(openCmd)
}

func runOpen(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), openTimeout)
	defer cancel()

	logger.Debug().Str("app_path", cfg.AppPath).Msg("Opening TIDAL")
	return music.NewLauncher(cfg.AppPath).Open(ctx)
}
