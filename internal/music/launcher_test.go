package music

import (
	"context"
	"os/exec"
	"strings"
	"testing"
)

// shellLauncher returns a launcher whose "open" is replaced by a shell snippet
func shellLauncher(snippet string, gotArgs *[]string) *Launcher {
	l := NewLauncher("/Applications/TIDAL.app")
	l.execCommand = func(ctx context.Context, name string, args ...string) *exec.Cmd {
		*gotArgs = append([]string{name}, args...)
		return exec.CommandContext(ctx, "sh", "-c", snippet)
	}
	return l
}

func TestLauncher_Open(t *testing.T) {
	var args []string
	if err := shellLauncher("exit 0", &args).Open(context.Background()); err != nil {
		t.Fatalf("Open() error = %v", err)
	}

	want := "open -a /Applications/TIDAL.app"
	if got := strings.Join(args, " "); got != want {
		t.Errorf("command = %q, want %q", got, want)
	}
}

func TestLauncher_OpenFails(t *testing.T) {
	tests := []struct {
		name    string
		snippet string
		want    string
	}{
		{
			name:    "reports open output",
			snippet: "echo 'Unable to find application named TIDAL' >&2; exit 1",
			want:    "Unable to find application named TIDAL",
		},
		{
			name:    "falls back to exit status",
			snippet: "exit 1",
			want:    "exit status 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var args []string
			err := shellLauncher(tt.snippet, &args).Open(context.Background())
			if err == nil {
				t.Fatal("Open() error = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Open() error = %q, want it to contain %q", err, tt.want)
			}
		})
	}
}
