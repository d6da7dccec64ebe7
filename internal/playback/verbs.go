package playback

import (
	"context"
	"strings"

	"github.com/jfmyers9/tidalbar/internal/dispatch"
	"github.com/jfmyers9/tidalbar/internal/music"
)

// Sender sends one playback verb to TIDAL
type Sender interface {
	Send(ctx context.Context, verb music.Verb) error
}

// Verbs are the zero-argument callbacks handed to a presentation surface
type Verbs struct {
	Pause    func()
	Next     func()
	Previous func()
	Shuffle  func()
}

// Controller sends playback verbs through the dispatcher and refreshes the store afterwards
type Controller struct {
	store      *Store
	dispatcher Dispatcher
	sender     Sender
	ctx        context.Context
}

// NewController creates a controller bound to ctx for the lifetime of the surface
func NewController(ctx context.Context, store *Store, dispatcher Dispatcher, sender Sender) *Controller {
	return &Controller{
		store:      store,
		dispatcher: dispatcher,
		sender:     sender,
		ctx:        ctx,
	}
}

// Do sends verb and refreshes the snapshot.
// The "not available" notice is shown when TIDAL is not running.
func (c *Controller) Do(ctx context.Context, verb music.Verb) dispatch.Outcome {
	outcome := c.dispatcher.Dispatch(ctx, strings.ToLower(string(verb)), func(ctx context.Context) error {
		return c.sender.Send(ctx, verb)
	}, dispatch.Options{})

	c.store.Refresh(ctx)
	return outcome
}

// Verbs returns the four callbacks for the presentation surface
func (c *Controller) Verbs() Verbs {
	bind := func(verb music.Verb) func() {
		return func() { c.Do(c.ctx, verb) }
	}
	return Verbs{
		Pause:    bind(music.VerbPause),
		Next:     bind(music.VerbNext),
		Previous: bind(music.VerbPrevious),
		Shuffle:  bind(music.VerbShuffle),
	}
}
