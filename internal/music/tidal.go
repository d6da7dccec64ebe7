package music

import (
	"context"
	"fmt"

	"github.com/jfmyers9/tidalbar/internal/automation"
	"github.com/rs/zerolog"
)

// Options configures how TidalClient finds and drives TIDAL
type Options struct {
	ProcessName  string // Process name as listed by System Events
	Sentinel     string // Window title shown when nothing is playing
	PlaybackMenu string // Menu bar menu that holds the playback items
	Logger       zerolog.Logger
}

// DefaultOptions returns options matching a stock TIDAL install
func DefaultOptions() Options {
	return Options{
		ProcessName:  "TIDAL",
		Sentinel:     "TIDAL",
		PlaybackMenu: "Playback",
		Logger:       zerolog.Nop(),
	}
}

// TidalClient implements the Client interface by UI scripting TIDAL through System Events
type TidalClient struct {
	runner automation.Runner
	opts   Options
	logger zerolog.Logger
}

// NewTidalClient creates a new TIDAL client on top of an automation runner
func NewTidalClient(runner automation.Runner, opts Options) *TidalClient {
	defaults := DefaultOptions()
	if opts.ProcessName == "" {
		opts.ProcessName = defaults.ProcessName
	}
	if opts.Sentinel == "" {
		opts.Sentinel = defaults.Sentinel
	}
	if opts.PlaybackMenu == "" {
		opts.PlaybackMenu = defaults.PlaybackMenu
	}
	return &TidalClient{
		runner: runner,
		opts:   opts,
		logger: opts.Logger.With().Str("component", "tidal").Logger(),
	}
}

// IsRunningScript returns the script asking whether process exists
func IsRunningScript(process string) string {
	return fmt.Sprintf(`tell application "System Events" to (name of processes) contains %s`, automation.Quote(process))
}

// NowPlayingScript returns the script reading the front window title of process
func NowPlayingScript(process string) string {
	return fmt.Sprintf(`tell application "System Events" to tell process %s to get name of window 1`, automation.Quote(process))
}

// VerbScript returns the script clicking the menu item for verb
func VerbScript(process, menu string, verb Verb) string {
	return fmt.Sprintf(
		`tell application "System Events" to tell process %s to click menu item %s of menu %s of menu bar 1`,
		automation.Quote(process), automation.Quote(string(verb)), automation.Quote(menu),
	)
}

// IsRunning checks if TIDAL is currently running.
// Only an exact "true" counts; any automation failure is treated as not running.
func (c *TidalClient) IsRunning(ctx context.Context) bool {
	result, err := c.runner.Run(ctx, IsRunningScript(c.opts.ProcessName))
	if err != nil {
		c.logger.Debug().Err(err).Msg("Running check failed, assuming TIDAL is not running")
		return false
	}
	return result == "true"
}

// NowPlaying reads TIDAL's window title
func (c *TidalClient) NowPlaying(ctx context.Context) (Title, error) {
	result, err := c.runner.Run(ctx, NowPlayingScript(c.opts.ProcessName))
	if err != nil {
		return Title{}, fmt.Errorf("failed to read now playing: %w", err)
	}
	return ParseTitle(result, c.opts.Sentinel), nil
}

// Send clicks the playback menu item for verb
func (c *TidalClient) Send(ctx context.Context, verb Verb) error {
	if _, err := c.runner.Run(ctx, VerbScript(c.opts.ProcessName, c.opts.PlaybackMenu, verb)); err != nil {
		return fmt.Errorf("failed to send %s: %w", verb, err)
	}
	return nil
}

// Pause pauses playback in TIDAL
func (c *TidalClient) Pause(ctx context.Context) error {
	return c.Send(ctx, VerbPause)
}

// NextTrack skips to the next track in TIDAL
func (c *TidalClient) NextTrack(ctx context.Context) error {
	return c.Send(ctx, VerbNext)
}

// PreviousTrack goes back to the previous track in TIDAL
func (c *TidalClient) PreviousTrack(ctx context.Context) error {
	return c.Send(ctx, VerbPrevious)
}

// Shuffle toggles shuffle mode in TIDAL
func (c *TidalClient) Shuffle(ctx context.Context) error {
	return c.Send(ctx, VerbShuffle)
}
