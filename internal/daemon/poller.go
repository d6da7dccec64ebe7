package daemon

import (
	"context"
	"time"

	"github.com/jfmyers9/tidalbar/internal/playback"
	"github.com/rs/zerolog"
)

// Refresher re-derives a playback snapshot
type Refresher interface {
	Refresh(ctx context.Context)
	Snapshot() playback.Snapshot
}

// Poller refreshes the store at regular intervals and on demand.
// Its own refreshes run on its goroutine, one at a time; other callers
// (playback verbs) may refresh the same store concurrently.
type Poller struct {
	store       Refresher
	interval    time.Duration
	maxInterval time.Duration
	trigger     chan struct{}
	logger      zerolog.Logger
}

// NewPoller creates a new Poller instance.
// While TIDAL is not running the interval doubles up to 8x interval.
func NewPoller(store Refresher, interval time.Duration, logger zerolog.Logger) *Poller {
	if interval <= 0 {
		interval = 10 * time.Second
	}
	return &Poller{
		store:       store,
		interval:    interval,
		maxInterval: 8 * interval,
		trigger:     make(chan struct{}, 1),
		logger:      logger.With().Str("component", "poller").Logger(),
	}
}

// Trigger requests an immediate refresh. Requests made while one is
// pending are coalesced.
func (p *Poller) Trigger() {
	select {
	case p.trigger <- struct{}{}:
	default:
	}
}

// Run starts the polling loop
// Blocks until context is cancelled
func (p *Poller) Run(ctx context.Context) error {
	p.logger.Info().
		Dur("interval", p.interval).
		Msg("Starting poller")

	interval := p.interval
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	// Poll immediately on start
	interval = p.poll(ctx, ticker, interval)

	for {
		select {
		case <-ctx.Done():
			p.logger.Info().Msg("Poller stopped")
			return ctx.Err()
		case <-ticker.C:
			interval = p.poll(ctx, ticker, interval)
		case <-p.trigger:
			interval = p.poll(ctx, ticker, interval)
		}
	}
}

// poll refreshes the store and returns the next interval
func (p *Poller) poll(ctx context.Context, ticker *time.Ticker, interval time.Duration) time.Duration {
	p.store.Refresh(ctx)
	snap := p.store.Snapshot()

	next := p.interval
	if !snap.Running {
		next = min(interval*2, p.maxInterval)
	}

	if next != interval {
		p.logger.Debug().
			Dur("interval", next).
			Bool("running", snap.Running).
			Msg("Adjusting poll interval")
		ticker.Reset(next)
	}
	return next
}
