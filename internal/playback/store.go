// Package playback holds the last-known TIDAL playback state for one
// presentation instance and re-derives it from live automation queries.
package playback

import (
	"context"
	"fmt"
	"sync"

	"github.com/jfmyers9/tidalbar/internal/dispatch"
	"github.com/jfmyers9/tidalbar/internal/display"
	"github.com/jfmyers9/tidalbar/internal/music"
	"github.com/rs/zerolog"
)

// Snapshot is the complete playback state shown by a presentation surface
type Snapshot struct {
	Running bool             `json:"running" yaml:"running"`
	Display *display.Display `json:"display" yaml:"display"` // nil when nothing is playing
	Loading bool             `json:"loading" yaml:"loading"`
}

// State names the three states a snapshot can be in
type State int

const (
	StateNotRunning     State = iota // TIDAL is not running
	StateRunningIdle                 // TIDAL is running without a track
	StateRunningPlaying              // TIDAL is showing a track
)

// String returns a human-readable representation of the State
func (s State) String() string {
	switch s {
	case StateNotRunning:
		return "not_running"
	case StateRunningIdle:
		return "idle"
	case StateRunningPlaying:
		return "playing"
	default:
		return "unknown"
	}
}

// State classifies the snapshot
func (s Snapshot) State() State {
	switch {
	case !s.Running:
		return StateNotRunning
	case s.Display == nil:
		return StateRunningIdle
	default:
		return StateRunningPlaying
	}
}

// Dispatcher runs actions through the availability guard
type Dispatcher interface {
	Dispatch(ctx context.Context, name string, action dispatch.Action, opts dispatch.Options) dispatch.Outcome
}

// Fetcher reads the now-playing title. Only called once TIDAL is known to be running.
type Fetcher interface {
	NowPlaying(ctx context.Context) (music.Title, error)
}

// Store owns the Snapshot of one presentation instance
type Store struct {
	dispatcher Dispatcher
	fetcher    Fetcher
	logger     zerolog.Logger

	mu       sync.Mutex
	snapshot Snapshot
	mounted  bool
	inflight int // Refreshes in progress; Loading is cleared when it drops to 0
	changed  chan struct{}
}

// NewStore creates a mounted store in the loading state
func NewStore(dispatcher Dispatcher, fetcher Fetcher, logger zerolog.Logger) *Store {
	return &Store{
		dispatcher: dispatcher,
		fetcher:    fetcher,
		logger:     logger.With().Str("component", "store").Logger(),
		snapshot:   Snapshot{Loading: true},
		mounted:    true,
		changed:    make(chan struct{}, 1),
	}
}

// Snapshot returns a copy of the current snapshot
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := s.snapshot
	if snap.Display != nil {
		d := *snap.Display
		snap.Display = &d
	}
	return snap
}

// Changed returns a channel that receives after every snapshot write.
// Notifications are coalesced; readers should call Snapshot on receipt.
func (s *Store) Changed() <-chan struct{} {
	return s.changed
}

// Unmount marks the presentation surface as destroyed.
// Writes from refreshes still in flight become no-ops.
func (s *Store) Unmount() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mounted = false
}

// Mounted reports whether the store still accepts writes
func (s *Store) Mounted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mounted
}

// Refresh re-derives the snapshot from live automation queries.
// It never notifies the user; failures only show up as state.
// Refreshes may overlap; Loading stays set until the last one finishes.
func (s *Store) Refresh(ctx context.Context) {
	s.update(func(snap *Snapshot) {
		s.inflight++
		snap.Loading = true
	})
	defer s.update(func(snap *Snapshot) {
		s.inflight--
		snap.Loading = s.inflight > 0
	})

	var title music.Title
	var formatted display.Display
	outcome := s.dispatcher.Dispatch(ctx, "refresh", func(ctx context.Context) error {
		t, err := s.fetcher.NowPlaying(ctx)
		if err != nil {
			return fmt.Errorf("failed to fetch now playing: %w", err)
		}
		title = t
		if !t.NoTrack {
			formatted = display.Format(t.Raw)
		}
		return nil
	}, dispatch.Options{Silent: true})

	s.update(func(snap *Snapshot) {
		switch {
		case outcome == dispatch.OutcomeNotRunning:
			snap.Running = false
			snap.Display = nil
		case outcome == dispatch.OutcomeRan && !title.NoTrack:
			snap.Running = true
			snap.Display = &formatted
		default:
			// Running without a track, or the title could not be read
			snap.Running = true
			snap.Display = nil
		}
	})

	s.logger.Debug().
		Str("outcome", outcome.String()).
		Str("title", title.Raw).
		Msg("Refreshed")
}

// update applies fn to the snapshot unless the store was unmounted
func (s *Store) update(fn func(*Snapshot)) {
	s.mu.Lock()
	if !s.mounted {
		s.mu.Unlock()
		return
	}
	fn(&s.snapshot)
	s.mu.Unlock()

	select {
	case s.changed <- struct{}{}:
	default:
	}
}
