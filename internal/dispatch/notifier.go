package dispatch

import (
	"context"
	"fmt"
	"io"

	"github.com/jfmyers9/tidalbar/internal/automation"
)

// Notifier surfaces a one-line message to the user
type Notifier interface {
	Notify(ctx context.Context, message string) error
}

// WriterNotifier prints messages on their own line, typically to stderr
type WriterNotifier struct {
	W io.Writer
}

func (n WriterNotifier) Notify(_ context.Context, message string) error {
	_, err := fmt.Fprintln(n.W, message)
	return err
}

// ScriptNotifier posts messages as macOS notifications
type ScriptNotifier struct {
	Runner automation.Runner
	Title  string
}

func (n ScriptNotifier) Notify(ctx context.Context, message string) error {
	return automation.Notify(ctx, n.Runner, n.Title, message)
}

// FuncNotifier adapts a plain function to Notifier
type FuncNotifier func(message string)

func (f FuncNotifier) Notify(_ context.Context, message string) error {
	f(message)
	return nil
}
