package music

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Launcher starts or foregrounds the TIDAL application
type Launcher struct {
	appPath string

	execCommand func(ctx context.Context, name string, args ...string) *exec.Cmd
}

// NewLauncher creates a launcher for the application bundle at appPath
func NewLauncher(appPath string) *Launcher {
	return &Launcher{
		appPath:     appPath,
		execCommand: exec.CommandContext,
	}
}

// Open runs `open -a` on the application bundle
func (l *Launcher) Open(ctx context.Context) error {
	cmd := l.execCommand(ctx, "open", "-a", l.appPath)
	if output, err := cmd.CombinedOutput(); err != nil {
		if msg := strings.TrimSpace(string(output)); msg != "" {
			return fmt.Errorf("failed to open %s: %s", l.appPath, msg)
		}
		return fmt.Errorf("failed to open %s: %w", l.appPath, err)
	}
	return nil
}
