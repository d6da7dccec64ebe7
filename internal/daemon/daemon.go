package daemon

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/jfmyers9/tidalbar/internal/playback"
	"github.com/rs/zerolog"
)

// Store is the part of playback.Store the watcher reads
type Store interface {
	Refresher
	Changed() <-chan struct{}
	Unmount()
}

// LineFunc renders a snapshot as one status line
type LineFunc func(playback.Snapshot) string

// Watcher runs the refresh loop headless and prints a line whenever the
// rendered snapshot changes
type Watcher struct {
	store  Store
	poller *Poller
	render LineFunc
	out    io.Writer
	logger zerolog.Logger
}

// NewWatcher creates a new Watcher instance
func NewWatcher(store Store, poller *Poller, render LineFunc, out io.Writer, logger zerolog.Logger) *Watcher {
	return &Watcher{
		store:  store,
		poller: poller,
		render: render,
		out:    out,
		logger: logger.With().Str("component", "watcher").Logger(),
	}
}

// Run starts the watcher and blocks until shutdown signal received
func (w *Watcher) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Set up signal handling
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	// Handle first signal gracefully, second signal forces exit
	go func() {
		select {
		case <-sigChan:
		case <-ctx.Done():
			return
		}
		w.logger.Info().Msg("Shutdown signal received, stopping")
		cancel()

		<-sigChan
		w.logger.Warn().Msg("Second shutdown signal received, forcing exit")
		os.Exit(1)
	}()

	return w.RunContext(ctx)
}

// RunContext runs the watcher until ctx is cancelled
func (w *Watcher) RunContext(ctx context.Context) error {
	w.logger.Info().Msg("Starting watcher")
	defer w.store.Unmount()

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := w.poller.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			w.logger.Error().Err(err).Msg("Poller error")
		}
	}()

	err := w.printChanges(ctx)
	wg.Wait()

	w.logger.Info().Msg("Watcher stopped")
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// printChanges writes a line each time the rendered snapshot changes
func (w *Watcher) printChanges(ctx context.Context) error {
	var last string
	first := true

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-w.store.Changed():
			snap := w.store.Snapshot()
			if snap.Loading {
				continue
			}
			line := w.render(snap)
			if !first && line == last {
				continue
			}
			first = false
			last = line
			if _, err := fmt.Fprintln(w.out, line); err != nil {
				return fmt.Errorf("failed to write status line: %w", err)
			}
		}
	}
}
