// Package dispatch funnels every interaction with TIDAL through one guarded
// entry point. It checks that TIDAL is running, applies the caller's silence
// policy when it is not, and reports action failures without returning them.
package dispatch

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
)

// NotAvailableMessage is shown by non-silent dispatches when TIDAL is not running
const NotAvailableMessage = "TIDAL is not available - open TIDAL and try again"

// AvailabilityChecker reports whether the target application is running
type AvailabilityChecker interface {
	IsRunning(ctx context.Context) bool
}

// Action is the work performed once the application is known to be running
type Action func(ctx context.Context) error

// Options controls a single dispatch
type Options struct {
	// Silent swallows the "not running" condition instead of notifying the user
	Silent bool
}

// Outcome describes how a dispatch ended
type Outcome int

const (
	OutcomeRan        Outcome = iota // Action ran and returned nil
	OutcomeNotRunning                // Application was not running, action skipped
	OutcomeFailed                    // Action returned an error or panicked
)

// String returns a human-readable representation of the Outcome
func (o Outcome) String() string {
	switch o {
	case OutcomeRan:
		return "ran"
	case OutcomeNotRunning:
		return "not_running"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Dispatcher runs actions against the application with uniform error handling
type Dispatcher struct {
	checker  AvailabilityChecker
	notifier Notifier
	logger   zerolog.Logger
}

// New creates a new Dispatcher
func New(checker AvailabilityChecker, notifier Notifier, logger zerolog.Logger) *Dispatcher {
	return &Dispatcher{
		checker:  checker,
		notifier: notifier,
		logger:   logger.With().Str("component", "dispatch").Logger(),
	}
}

// Dispatch runs action if the application is running.
// It never returns the action's error: failures are reported here and
// summarised in the returned Outcome.
func (d *Dispatcher) Dispatch(ctx context.Context, name string, action Action, opts Options) Outcome {
	if !d.checker.IsRunning(ctx) {
		d.logger.Debug().
			Str("action", name).
			Bool("silent", opts.Silent).
			Msg("TIDAL not running, skipping action")

		if !opts.Silent {
			if err := d.notifier.Notify(ctx, NotAvailableMessage); err != nil {
				d.report(name, fmt.Errorf("failed to notify: %w", err))
			}
		}
		return OutcomeNotRunning
	}

	if err := d.run(ctx, action); err != nil {
		d.report(name, err)
		return OutcomeFailed
	}

	d.logger.Debug().Str("action", name).Msg("Action completed")
	return OutcomeRan
}

// run calls action, converting a panic into an error
func (d *Dispatcher) run(ctx context.Context, action Action) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("action panicked: %v", r)
		}
	}()
	return action(ctx)
}

// report is the single place dispatch failures are surfaced
func (d *Dispatcher) report(name string, err error) {
	d.logger.Error().
		Err(err).
		Str("action", name).
		Msg("Action failed")
}
