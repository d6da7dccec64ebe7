// Package automation runs AppleScript expressions against macOS through
// osascript. It is the only place in tidalbar that spawns osascript; every
// query and playback verb sent to TIDAL goes through a Runner.
package automation

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

//go:generate mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks

// Runner executes a single automation script and returns its raw result
type Runner interface {
	// Run executes script and returns its trimmed output.
	// Any failure of the automation layer is returned as *Error.
	Run(ctx context.Context, script string) (string, error)
}

// Error is returned when the OS automation layer rejects or fails a script
type Error struct {
	Script     string // Script that was executed
	Diagnostic string // Original diagnostic text from osascript
	Err        error  // Underlying exec error
}

func (e *Error) Error() string {
	if e.Diagnostic != "" {
		return fmt.Sprintf("osascript error: %s", e.Diagnostic)
	}
	return fmt.Sprintf("osascript error: %v", e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsError reports whether err is (or wraps) an automation *Error
func IsError(err error) bool {
	var automationErr *Error
	return errors.As(err, &automationErr)
}

// OsascriptRunner implements Runner by shelling out to osascript
type OsascriptRunner struct {
	timeout time.Duration

	// execCommand creates the exec.Cmd. Injected for testing.
	execCommand func(ctx context.Context, name string, args ...string) *exec.Cmd
}

// Option configures an OsascriptRunner
type Option func(*OsascriptRunner)

// WithTimeout bounds every script execution. Zero disables the timeout.
func WithTimeout(d time.Duration) Option {
	return func(r *OsascriptRunner) {
		r.timeout = d
	}
}

// NewOsascriptRunner creates a new osascript-based runner
func NewOsascriptRunner(opts ...Option) *OsascriptRunner {
	r := &OsascriptRunner{
		execCommand: exec.CommandContext,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes script with osascript -e and returns the trimmed stdout
func (r *OsascriptRunner) Run(ctx context.Context, script string) (string, error) {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	var stdout, stderr bytes.Buffer
	cmd := r.execCommand(ctx, "osascript", "-e", script)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		diagnostic := strings.TrimSpace(stderr.String())
		if diagnostic == "" && ctx.Err() != nil {
			err = ctx.Err()
		}
		return "", &Error{
			Script:     script,
			Diagnostic: diagnostic,
			Err:        err,
		}
	}

	return strings.TrimSpace(stdout.String()), nil
}
