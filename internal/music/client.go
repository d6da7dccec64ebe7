package music

import (
	"context"
	"strings"
)

// Title represents the now-playing information read from TIDAL's window title
type Title struct {
	Raw     string // Window title exactly as TIDAL reports it
	Name    string // Track name (the part before the last " - ")
	Artist  string // Artist name (empty when the title has no separator)
	NoTrack bool   // Title is the sentinel or empty: nothing is playing
}

// titleSeparator is what TIDAL puts between track and artist in its window title
const titleSeparator = " - "

// ParseTitle turns a raw window title into a Title.
// sentinel is TIDAL's default window name, shown when nothing is playing.
func ParseTitle(raw, sentinel string) Title {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || trimmed == sentinel {
		return Title{Raw: raw, NoTrack: true}
	}

	t := Title{Raw: raw, Name: trimmed}
	if i := strings.LastIndex(trimmed, titleSeparator); i > 0 {
		t.Name = strings.TrimSpace(trimmed[:i])
		t.Artist = strings.TrimSpace(trimmed[i+len(titleSeparator):])
	}
	return t
}

// Verb is a fire-and-forget playback command
type Verb string

const (
	VerbPause    Verb = "Pause"
	VerbNext     Verb = "Next"
	VerbPrevious Verb = "Previous"
	VerbShuffle  Verb = "Shuffle"
)

// Verbs lists every playback verb in menu order
var Verbs = []Verb{VerbPause, VerbNext, VerbPrevious, VerbShuffle}

// Client defines the interface for interacting with the music player
type Client interface {
	// IsRunning checks if the music player application is running.
	// Automation failures count as not running.
	IsRunning(ctx context.Context) bool

	// NowPlaying returns the current window title.
	// Only valid after IsRunning returned true.
	NowPlaying(ctx context.Context) (Title, error)

	// Pause pauses playback
	Pause(ctx context.Context) error

	// NextTrack skips to the next track
	NextTrack(ctx context.Context) error

	// PreviousTrack goes to the previous track
	PreviousTrack(ctx context.Context) error

	// Shuffle toggles shuffle mode
	Shuffle(ctx context.Context) error
}
